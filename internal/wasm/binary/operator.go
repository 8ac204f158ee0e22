package binary

import (
	wasm "github.com/rajatjindal/wasm-tools/internal/wasm"
	"github.com/rajatjindal/wasm-tools/internal/wasm/opcode"
)

// readEntry reads one opcode's (prefix?, code) pair and resolves it against
// the opcode table (§4.A, §6.2). Offset is the position of the leading byte.
// Gating is per-opcode, not per-section (§4.A "Proposal filtering"): an
// opcode whose proposal isn't enabled in fs fails here, before any immediate
// bytes are consumed.
func readEntry(c *Cursor, fs opcode.FeatureSet) (*opcode.Entry, int, error) {
	start := c.Position()
	b, err := c.ReadU8()
	if err != nil {
		return nil, start, err
	}
	if opcode.IsPrefixByte(b) {
		sub, err := c.ReadU32Leb128()
		if err != nil {
			return nil, start, err
		}
		e, ok := opcode.ByCode(b, true, sub)
		if !ok {
			return nil, start, newErr(ErrUnknownOpcode, start, "unknown opcode 0x%02x/%d", b, sub)
		}
		if !fs.Enabled(e.Proposal) {
			return nil, start, newErr(ErrUnsupportedFeature, start, "opcode %s requires disabled proposal %q", e.Mnemonic, e.Proposal)
		}
		return e, start, nil
	}
	e, ok := opcode.ByCode(0, false, uint32(b))
	if !ok {
		return nil, start, newErr(ErrUnknownOpcode, start, "unknown opcode 0x%02x", b)
	}
	if !fs.Enabled(e.Proposal) {
		return nil, start, newErr(ErrUnsupportedFeature, start, "opcode %s requires disabled proposal %q", e.Mnemonic, e.Proposal)
	}
	return e, start, nil
}

// readBlockType reads the blocktype grammar: 0x40 (empty), a single valtype
// byte (inline one-result block), or a signed LEB128 type index (§4.F).
func readBlockType(c *Cursor) (wasm.BlockTypeImm, error) {
	start := c.Position()
	b, err := c.ReadU8()
	if err != nil {
		return wasm.BlockTypeImm{}, err
	}
	switch b {
	case 0x40:
		return wasm.BlockTypeImm{Kind: wasm.BlockTypeEmpty}, nil
	case 0x7F, 0x7E, 0x7D, 0x7C, 0x7B, 0x70, 0x6F:
		return wasm.BlockTypeImm{Kind: wasm.BlockTypeValue, ValType: wasm.ValueType(b)}, nil
	default:
		// Not a recognized empty/value marker: re-decode as a signed s33
		// type index by rewinding to the marker byte.
		c2 := NewCursor(append([]byte{b}, c.data[c.pos:]...), start)
		v, err := c2.ReadI64Leb128()
		if err != nil {
			return wasm.BlockTypeImm{}, err
		}
		if v < 0 {
			return wasm.BlockTypeImm{}, newErr(ErrInvalidEncoding, start, "invalid block type byte 0x%02x", b)
		}
		if err := c.Skip(c2.Position() - start - 1); err != nil {
			return wasm.BlockTypeImm{}, err
		}
		return wasm.BlockTypeImm{Kind: wasm.BlockTypeIndex, TypeIndex: uint32(v)}, nil
	}
}

// readImmediate reads the immediate payload of entry e (§4.A/§4.F), already
// past the opcode byte(s).
func readImmediate(c *Cursor, e *opcode.Entry) (any, error) {
	switch e.Imm {
	case opcode.ImmNone:
		return nil, nil
	case opcode.ImmBlockType:
		return readBlockType(c)
	case opcode.ImmIndex:
		v, err := c.ReadU32Leb128()
		return wasm.IndexImm{Index: v}, err
	case opcode.ImmIndex2:
		a, err := c.ReadU32Leb128()
		if err != nil {
			return nil, err
		}
		b, err := c.ReadU32Leb128()
		return wasm.Index2Imm{A: a, B: b}, err
	case opcode.ImmMemArg:
		align, err := c.ReadU32Leb128()
		if err != nil {
			return nil, err
		}
		offset, err := c.ReadU32Leb128()
		return wasm.MemArg{Align: align, Offset: offset}, err
	case opcode.ImmMemArgLane:
		align, err := c.ReadU32Leb128()
		if err != nil {
			return nil, err
		}
		offset, err := c.ReadU32Leb128()
		if err != nil {
			return nil, err
		}
		lane, err := c.ReadU8()
		return wasm.MemArgLane{MemArg: wasm.MemArg{Align: align, Offset: offset}, Lane: lane}, err
	case opcode.ImmBrTable:
		n, err := c.ReadVarU32AsUsize()
		if err != nil {
			return nil, err
		}
		labels := make([]uint32, n)
		for i := 0; i < n; i++ {
			labels[i], err = c.ReadU32Leb128()
			if err != nil {
				return nil, err
			}
		}
		def, err := c.ReadU32Leb128()
		return wasm.BrTableImm{Labels: labels, Default: def}, err
	case opcode.ImmI32Const:
		return c.ReadI32Leb128()
	case opcode.ImmI64Const:
		return c.ReadI64Leb128()
	case opcode.ImmF32Const:
		return c.ReadF32()
	case opcode.ImmF64Const:
		return c.ReadF64()
	case opcode.ImmV128Const:
		b, err := c.ReadBytes(16)
		if err != nil {
			return nil, err
		}
		var v wasm.V128Const
		copy(v[:], b)
		return v, nil
	case opcode.ImmLane:
		b, err := c.ReadU8()
		return wasm.LaneImm{Lane: b}, err
	case opcode.ImmShuffle:
		b, err := c.ReadBytes(16)
		if err != nil {
			return nil, err
		}
		var s wasm.ShuffleImm
		copy(s.Lanes[:], b)
		return s, nil
	case opcode.ImmSelectTypes:
		types, err := readValTypeVec(c)
		return wasm.SelectTypesImm{Types: types}, err
	case opcode.ImmHeapType:
		return readHeapTypeImm(c, e.Mnemonic)
	case opcode.ImmTagIndex:
		v, err := c.ReadU32Leb128()
		return wasm.IndexImm{Index: v}, err
	case opcode.ImmCatch:
		return readCatchImm(c)
	case opcode.ImmResumeTable:
		return readResumeTableImm(c)
	case opcode.ImmStructField:
		t, err := c.ReadU32Leb128()
		if err != nil {
			return nil, err
		}
		f, err := c.ReadU32Leb128()
		return wasm.StructFieldImm{TypeIndex: t, FieldIndex: f}, err
	case opcode.ImmArrayNewFixed:
		t, err := c.ReadU32Leb128()
		if err != nil {
			return nil, err
		}
		n, err := c.ReadU32Leb128()
		return wasm.ArrayNewFixedImm{TypeIndex: t, Count: n}, err
	case opcode.ImmByte:
		return c.ReadU8()
	default:
		return nil, c.invalid("unhandled immediate kind for %s", e.Mnemonic)
	}
}

func readHeapTypeImm(c *Cursor, mnemonic string) (wasm.HeapTypeImm, error) {
	if mnemonic == "br_on_cast" || mnemonic == "br_on_cast_fail" {
		flags, err := c.ReadU8()
		if err != nil {
			return wasm.HeapTypeImm{}, err
		}
		label, err := c.ReadU32Leb128()
		if err != nil {
			return wasm.HeapTypeImm{}, err
		}
		src, err := readHeapType(c)
		if err != nil {
			return wasm.HeapTypeImm{}, err
		}
		dst, err := readHeapType(c)
		if err != nil {
			return wasm.HeapTypeImm{}, err
		}
		return wasm.HeapTypeImm{
			Heap: dst, SourceHeap: src, Label: label,
			SourceNullable: flags&0x01 != 0, TargetNullable: flags&0x02 != 0,
		}, nil
	}
	ht, err := readHeapType(c)
	return wasm.HeapTypeImm{Heap: ht}, err
}

func readCatchImm(c *Cursor) (wasm.CatchImm, error) {
	bt, err := readBlockType(c)
	if err != nil {
		return wasm.CatchImm{}, err
	}
	n, err := c.ReadVarU32AsUsize()
	if err != nil {
		return wasm.CatchImm{}, err
	}
	clauses := make([]wasm.CatchClause, n)
	for i := 0; i < n; i++ {
		kind, err := c.ReadU8()
		if err != nil {
			return wasm.CatchImm{}, err
		}
		cc := wasm.CatchClause{Kind: wasm.CatchKind(kind)}
		if kind == byte(wasm.CatchTag) || kind == byte(wasm.CatchTagRef) {
			cc.Tag, err = c.ReadU32Leb128()
			if err != nil {
				return wasm.CatchImm{}, err
			}
		}
		cc.Label, err = c.ReadU32Leb128()
		if err != nil {
			return wasm.CatchImm{}, err
		}
		clauses[i] = cc
	}
	return wasm.CatchImm{BlockType: bt, Clauses: clauses}, nil
}

func readResumeTableImm(c *Cursor) (wasm.ResumeTableImm, error) {
	contType, err := c.ReadU32Leb128()
	if err != nil {
		return wasm.ResumeTableImm{}, err
	}
	n, err := c.ReadVarU32AsUsize()
	if err != nil {
		return wasm.ResumeTableImm{}, err
	}
	handlers := make([]wasm.ResumeHandler, n)
	for i := 0; i < n; i++ {
		tag, err := c.ReadU32Leb128()
		if err != nil {
			return wasm.ResumeTableImm{}, err
		}
		sw, err := c.ReadU8()
		if err != nil {
			return wasm.ResumeTableImm{}, err
		}
		h := wasm.ResumeHandler{Tag: tag, Switch: sw != 0}
		if !h.Switch {
			h.Label, err = c.ReadU32Leb128()
			if err != nil {
				return wasm.ResumeTableImm{}, err
			}
		}
		handlers[i] = h
	}
	return wasm.ResumeTableImm{ContTypeIndex: contType, Handlers: handlers}, nil
}

// decodeInstruction reads one complete instruction (opcode plus immediate).
func decodeInstruction(c *Cursor, fs opcode.FeatureSet) (wasm.Instruction, error) {
	e, start, err := readEntry(c, fs)
	if err != nil {
		return wasm.Instruction{}, err
	}
	imm, err := readImmediate(c, e)
	if err != nil {
		return wasm.Instruction{}, err
	}
	return wasm.Instruction{Op: e, Imm: imm, Offset: uint32(start)}, nil
}

// decodeInstructionStream reads instructions up to and including the `end`
// at depth 0 (a function body's or a constant expression's closing `end`).
// It never recurses: block/loop/if/try_table nesting is tracked
// with a plain depth counter, keeping an attacker-controlled instruction
// stream from blowing the Go call stack (§5 "No recursion over attacker
// input").
func decodeInstructionStream(c *Cursor, fs opcode.FeatureSet) ([]wasm.Instruction, error) {
	var out []wasm.Instruction
	depth := 0
	for {
		in, err := decodeInstruction(c, fs)
		if err != nil {
			return nil, err
		}
		out = append(out, in)
		switch in.Mnemonic() {
		case "block", "loop", "if", "try", "try_table":
			depth++
		case "end":
			if depth == 0 {
				return out, nil
			}
			depth--
		}
	}
}

// decodeConstExpr reads one constant expression: a (possibly extended-const,
// multi-instruction) sequence terminated by `end` (§4.C, §4.F).
func decodeConstExpr(c *Cursor, fs opcode.FeatureSet) (*wasm.ConstantExpression, error) {
	instrs, err := decodeInstructionStream(c, fs)
	if err != nil {
		return nil, err
	}
	return &wasm.ConstantExpression{Instructions: instrs}, nil
}
