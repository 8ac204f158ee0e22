package wat

import (
	"strings"

	wasm "github.com/rajatjindal/wasm-tools/internal/wasm"
	"github.com/rajatjindal/wasm-tools/internal/wasm/opcode"
)

// parseInstrSeq parses a flat sequence of instructions, folded and plain
// alike, until the enclosing paren closes (stopAtRParen) or a bare `end`
// keyword is hit (a plain block/loop/if body). Folded sub-expressions are
// flattened to their plain equivalent by parseFoldedInstr below. The text
// parser recurses on the Go call stack: every nested folded instruction and
// every nested block/loop/if body adds a level of Go calls, and no explicit
// heap stack bounds the depth. (The binary decoder's
// decodeInstructionStream, by contrast, tracks nesting with a counter and
// never recurses — see §5 "No recursion over attacker input".)
func parseInstrSeq(c *TokenCursor, pc *ParseContext, source []byte, stopAtRParen bool) ([]wasm.Instruction, error) {
	var out []wasm.Instruction
	for {
		if stopAtRParen {
			if c.AtRParen() || c.AtEnd() {
				return out, nil
			}
		} else {
			if c.PeekIsKeyword("end") {
				c.Next()
				pc.popLabel()
				return out, nil
			}
			if c.AtRParen() || c.AtEnd() {
				return out, unexpectedToken(source, c.Peek())
			}
		}

		tok := c.Peek()
		switch tok.Type {
		case TokenLParen:
			kw, _ := c.PeekFieldName()
			var instrs []wasm.Instruction
			var err error
			switch kw {
			case "block", "loop":
				instrs, err = parseFoldedBlockLike(c, pc, source, kw)
			case "if":
				instrs, err = parseFoldedIf(c, pc, source)
			default:
				instrs, err = parseFoldedInstr(c, pc, source)
			}
			if err != nil {
				return nil, err
			}
			out = append(out, instrs...)
		case TokenKeyword:
			switch tok.Value {
			case "block", "loop":
				instrs, err := parsePlainBlockLike(c, pc, source, tok.Value)
				if err != nil {
					return nil, err
				}
				out = append(out, instrs...)
			case "if":
				instrs, err := parsePlainIf(c, pc, source)
				if err != nil {
					return nil, err
				}
				out = append(out, instrs...)
			default:
				in, err := parsePlainInstr(c, pc, source)
				if err != nil {
					return nil, err
				}
				out = append(out, in)
			}
		default:
			return nil, unexpectedToken(source, tok)
		}
	}
}

// parsePlainInstr parses one non-block plain instruction: a keyword, then
// whatever textual immediate(s) its opcode-table entry calls for.
func parsePlainInstr(c *TokenCursor, pc *ParseContext, source []byte) (wasm.Instruction, error) {
	tok := c.Next()
	e, ok := resolveEntry(c, tok.Value)
	if !ok {
		return wasm.Instruction{}, unexpectedToken(source, tok)
	}
	if !pc.features.Enabled(e.Proposal) {
		return wasm.Instruction{}, unsupportedFeature(source, tok, e.Mnemonic, string(e.Proposal))
	}
	imm, err := parseTextImmediate(c, pc, source, e)
	if err != nil {
		return wasm.Instruction{}, err
	}
	return wasm.Instruction{Op: e, Imm: imm}, nil
}

// parseFoldedInstr parses `(op imm* operand*)`, flattening each operand
// (itself a full folded-or-plain instruction, parsed by a recursive call
// through parseOneFoldedOperand) before the instruction itself.
func parseFoldedInstr(c *TokenCursor, pc *ParseContext, source []byte) ([]wasm.Instruction, error) {
	if err := c.ExpectLParen(); err != nil {
		return nil, err
	}
	tok := c.Next()
	if tok == nil || tok.Type != TokenKeyword {
		return nil, unexpectedToken(source, tok)
	}
	e, ok := resolveEntry(c, tok.Value)
	if !ok {
		return nil, unexpectedToken(source, tok)
	}
	if !pc.features.Enabled(e.Proposal) {
		return nil, unsupportedFeature(source, tok, e.Mnemonic, string(e.Proposal))
	}
	imm, err := parseTextImmediate(c, pc, source, e)
	if err != nil {
		return nil, err
	}

	var operands []wasm.Instruction
	for !c.AtRParen() {
		in, err := parseOneFoldedOperand(c, pc, source)
		if err != nil {
			return nil, err
		}
		operands = append(operands, in...)
	}
	if err := c.ExpectRParen(); err != nil {
		return nil, err
	}
	return append(operands, wasm.Instruction{Op: e, Imm: imm}), nil
}

// parseOneFoldedOperand parses a single operand position inside a folded
// instruction's parens: it is itself a folded or plain instruction.
func parseOneFoldedOperand(c *TokenCursor, pc *ParseContext, source []byte) ([]wasm.Instruction, error) {
	tok := c.Peek()
	if tok == nil {
		return nil, unexpectedToken(source, nil)
	}
	if tok.Type == TokenLParen {
		kw, _ := c.PeekFieldName()
		switch kw {
		case "block", "loop":
			return parseFoldedBlockLike(c, pc, source, kw)
		case "if":
			return parseFoldedIf(c, pc, source)
		default:
			return parseFoldedInstr(c, pc, source)
		}
	}
	in, err := parsePlainInstr(c, pc, source)
	if err != nil {
		return nil, err
	}
	return []wasm.Instruction{in}, nil
}

// resolveEntry looks up mnemonic's opcode-table entry, special-casing
// `select`: the table carries it as two distinct rows (plain 0x1B ImmNone
// and the reference-types 0x1C "select t" ImmSelectTypes row) because the
// binary encoding differs on whether any result type is present, but the
// text grammar spells both the same way (`select` optionally followed by
// `(result ...)`) — so the lookahead for a following `(result` decides
// which row this occurrence resolves to (§6.3).
func resolveEntry(c *TokenCursor, mnemonic string) (*opcode.Entry, bool) {
	if mnemonic == "select" {
		if kw, ok := c.PeekFieldName(); ok && kw == "result" {
			return opcode.ByMnemonic("select t")
		}
	}
	return opcode.ByMnemonic(mnemonic)
}

func blockOp(kw string) *opcode.Entry {
	e, _ := opcode.ByMnemonic(kw)
	return e
}

func endOp() *opcode.Entry {
	e, _ := opcode.ByMnemonic("end")
	return e
}

func elseOp() *opcode.Entry {
	e, _ := opcode.ByMnemonic("else")
	return e
}

// parseBlockTypeAndLabel consumes an optional $label and an optional
// (type $t)/(param ...)/(result ...) type use, common to block/loop/if
// (§4.F "Block signatures").
func parseBlockTypeAndLabel(c *TokenCursor, pc *ParseContext, source []byte) (string, wasm.BlockTypeImm, error) {
	label, _ := c.ConsumeOptionalID()

	bt := wasm.BlockTypeImm{Kind: wasm.BlockTypeEmpty}
	var results []wasm.ValueType
	sawType := false
	for {
		kw, ok := c.PeekFieldName()
		if !ok {
			break
		}
		switch kw {
		case "type":
			c.Next()
			c.Next()
			idxTok := c.Next()
			idx, err := pc.resolveIndex(source, idxTok, &pc.types, "type")
			if err != nil {
				return "", wasm.BlockTypeImm{}, err
			}
			if err := c.ExpectRParen(); err != nil {
				return "", wasm.BlockTypeImm{}, err
			}
			bt = wasm.BlockTypeImm{Kind: wasm.BlockTypeIndex, TypeIndex: idx}
			sawType = true
		case "param":
			// `(param ...)` groups in a block signature are consumed and
			// ignored: the resulting BlockTypeImm records results only.
			if err := skipParenGroup(c, source); err != nil {
				return "", wasm.BlockTypeImm{}, err
			}
		case "result":
			c.Next()
			c.Next()
			for !c.AtRParen() {
				tok := c.Next()
				vt, err := valueTypeFromKeyword(source, tok)
				if err != nil {
					return "", wasm.BlockTypeImm{}, err
				}
				results = append(results, vt)
			}
			if err := c.ExpectRParen(); err != nil {
				return "", wasm.BlockTypeImm{}, err
			}
		default:
			goto done
		}
	}
done:
	if !sawType && len(results) == 1 {
		bt = wasm.BlockTypeImm{Kind: wasm.BlockTypeValue, ValType: results[0]}
	} else if !sawType && len(results) > 1 {
		// Multi-value block signatures need an explicit (type $t) resolving
		// to a predeclared function type; a bare multi-result list has no
		// type index to carry in BlockTypeImm's single-ValType slot.
		return "", wasm.BlockTypeImm{}, newParseError(source, 0, 0, "multi-value block signature requires an explicit (type $t)")
	}
	return label, bt, nil
}

func skipParenGroup(c *TokenCursor, source []byte) error {
	if err := c.ExpectLParen(); err != nil {
		return err
	}
	depth := 1
	for depth > 0 {
		t := c.Next()
		if t == nil {
			return unexpectedToken(source, nil)
		}
		switch t.Type {
		case TokenLParen:
			depth++
		case TokenRParen:
			depth--
		}
	}
	return nil
}

func valueTypeFromKeyword(source []byte, tok *Token) (wasm.ValueType, error) {
	if tok == nil || tok.Type != TokenKeyword {
		return 0, unexpectedToken(source, tok)
	}
	switch tok.Value {
	case "i32":
		return wasm.ValueTypeI32, nil
	case "i64":
		return wasm.ValueTypeI64, nil
	case "f32":
		return wasm.ValueTypeF32, nil
	case "f64":
		return wasm.ValueTypeF64, nil
	case "v128":
		return wasm.ValueTypeV128, nil
	case "funcref":
		return wasm.ValueTypeFuncref, nil
	case "externref":
		return wasm.ValueTypeExternref, nil
	default:
		return 0, unexpectedToken(source, tok)
	}
}

// parsePlainBlockLike parses `block|loop $label? sig? instr* end`.
func parsePlainBlockLike(c *TokenCursor, pc *ParseContext, source []byte, kw string) ([]wasm.Instruction, error) {
	c.Next() // block/loop keyword
	label, bt, err := parseBlockTypeAndLabel(c, pc, source)
	if err != nil {
		return nil, err
	}
	pc.pushLabel(label)
	body, err := parseInstrSeq(c, pc, source, false)
	if err != nil {
		return nil, err
	}
	out := make([]wasm.Instruction, 0, len(body)+2)
	out = append(out, wasm.Instruction{Op: blockOp(kw), Imm: bt})
	out = append(out, body...)
	out = append(out, wasm.Instruction{Op: endOp()})
	return out, nil
}

// parseFoldedBlockLike parses `(block|loop $label? sig? instr*)`.
func parseFoldedBlockLike(c *TokenCursor, pc *ParseContext, source []byte, kw string) ([]wasm.Instruction, error) {
	if err := c.ExpectLParen(); err != nil {
		return nil, err
	}
	c.Next() // block/loop keyword
	label, bt, err := parseBlockTypeAndLabel(c, pc, source)
	if err != nil {
		return nil, err
	}
	pc.pushLabel(label)
	body, err := parseInstrSeq(c, pc, source, true)
	if err != nil {
		return nil, err
	}
	pc.popLabel()
	if err := c.ExpectRParen(); err != nil {
		return nil, err
	}
	out := make([]wasm.Instruction, 0, len(body)+2)
	out = append(out, wasm.Instruction{Op: blockOp(kw), Imm: bt})
	out = append(out, body...)
	out = append(out, wasm.Instruction{Op: endOp()})
	return out, nil
}

// parsePlainIf parses `if $label? sig? instr* (else instr*)? end`; the
// condition was already pushed by the caller's preceding plain instruction.
func parsePlainIf(c *TokenCursor, pc *ParseContext, source []byte) ([]wasm.Instruction, error) {
	c.Next() // if
	label, bt, err := parseBlockTypeAndLabel(c, pc, source)
	if err != nil {
		return nil, err
	}
	pc.pushLabel(label)
	then, err := parseIfArm(c, pc, source)
	if err != nil {
		return nil, err
	}
	out := []wasm.Instruction{{Op: blockOp("if"), Imm: bt}}
	out = append(out, then...)
	if c.PeekIsKeyword("else") {
		c.Next()
		out = append(out, wasm.Instruction{Op: elseOp()})
		elseBody, err := parseIfArm(c, pc, source)
		if err != nil {
			return nil, err
		}
		out = append(out, elseBody...)
	}
	if c.PeekIsKeyword("end") {
		c.Next()
	}
	pc.popLabel()
	out = append(out, wasm.Instruction{Op: endOp()})
	return out, nil
}

// parseIfArm parses instructions up to (but not past) the next `else` or
// `end` keyword at this nesting level.
func parseIfArm(c *TokenCursor, pc *ParseContext, source []byte) ([]wasm.Instruction, error) {
	var out []wasm.Instruction
	for {
		if c.PeekIsKeyword("else") || c.PeekIsKeyword("end") || c.AtEnd() {
			return out, nil
		}
		if c.AtRParen() {
			return out, unexpectedToken(source, c.Peek())
		}
		tok := c.Peek()
		switch tok.Type {
		case TokenLParen:
			kw, _ := c.PeekFieldName()
			var instrs []wasm.Instruction
			var err error
			switch kw {
			case "block", "loop":
				instrs, err = parseFoldedBlockLike(c, pc, source, kw)
			case "if":
				instrs, err = parseFoldedIf(c, pc, source)
			default:
				instrs, err = parseFoldedInstr(c, pc, source)
			}
			if err != nil {
				return nil, err
			}
			out = append(out, instrs...)
		case TokenKeyword:
			switch tok.Value {
			case "block", "loop":
				instrs, err := parsePlainBlockLike(c, pc, source, tok.Value)
				if err != nil {
					return nil, err
				}
				out = append(out, instrs...)
			case "if":
				instrs, err := parsePlainIf(c, pc, source)
				if err != nil {
					return nil, err
				}
				out = append(out, instrs...)
			default:
				in, err := parsePlainInstr(c, pc, source)
				if err != nil {
					return nil, err
				}
				out = append(out, in)
			}
		default:
			return nil, unexpectedToken(source, tok)
		}
	}
}

// parseFoldedIf parses `(if $label? sig? cond (then instr*) (else instr*)?)`.
func parseFoldedIf(c *TokenCursor, pc *ParseContext, source []byte) ([]wasm.Instruction, error) {
	if err := c.ExpectLParen(); err != nil {
		return nil, err
	}
	c.Next() // if
	label, bt, err := parseBlockTypeAndLabel(c, pc, source)
	if err != nil {
		return nil, err
	}
	pc.pushLabel(label)

	var cond []wasm.Instruction
	for {
		kw, _ := c.PeekFieldName()
		if kw == "then" {
			break
		}
		in, err := parseOneFoldedOperand(c, pc, source)
		if err != nil {
			return nil, err
		}
		cond = append(cond, in...)
	}

	if err := c.ExpectLParen(); err != nil {
		return nil, err
	}
	if err := c.ExpectKeyword("then"); err != nil {
		return nil, err
	}
	thenBody, err := parseInstrSeq(c, pc, source, true)
	if err != nil {
		return nil, err
	}
	if err := c.ExpectRParen(); err != nil {
		return nil, err
	}

	out := append([]wasm.Instruction{}, cond...)
	out = append(out, wasm.Instruction{Op: blockOp("if"), Imm: bt})
	out = append(out, thenBody...)

	if kw, _ := c.PeekFieldName(); kw == "else" {
		if err := c.ExpectLParen(); err != nil {
			return nil, err
		}
		if err := c.ExpectKeyword("else"); err != nil {
			return nil, err
		}
		elseBody, err := parseInstrSeq(c, pc, source, true)
		if err != nil {
			return nil, err
		}
		if err := c.ExpectRParen(); err != nil {
			return nil, err
		}
		out = append(out, wasm.Instruction{Op: elseOp()})
		out = append(out, elseBody...)
	}
	pc.popLabel()
	out = append(out, wasm.Instruction{Op: endOp()})
	if err := c.ExpectRParen(); err != nil {
		return nil, err
	}
	return out, nil
}

// parseTextImmediate parses the textual form of e's immediate, if any,
// covering every MVP/reference-types/bulk-memory immediate shape the text
// grammar names (§4.F): index, numeric const, memarg, call_indirect/
// memory.init/table.init/*.copy's index pairs, select's repeatable (result
// …) list, and br_table's label vector. Block types are handled by the
// block/loop/if/try_table callers instead. Heap types, SIMD lane/shuffle/
// v128 literals, GC struct/array field literals, and resume-table syntax
// remain binary-format-complete (internal/wasm/binary) but text-grammar-
// out-of-scope for this parser — see DESIGN.md Open Questions. An
// unsupported kind falls through to the default case and parses as ImmNone,
// rather than silently mis-parsing; this is an accepted limitation for
// proposal-exotica, not for the MVP/reference-types shapes above.
func parseTextImmediate(c *TokenCursor, pc *ParseContext, source []byte, e *opcode.Entry) (any, error) {
	switch e.Imm {
	case opcode.ImmNone:
		return nil, nil
	case opcode.ImmIndex, opcode.ImmTagIndex:
		if isLabelMnemonic(e.Mnemonic) {
			tok := c.Next()
			idx, err := pc.resolveLabel(source, tok)
			return wasm.IndexImm{Index: idx}, err
		}
		ns := namespaceFor(pc, e.Mnemonic)
		tok := c.Next()
		idx, err := pc.resolveIndex(source, tok, ns, "index")
		return wasm.IndexImm{Index: idx}, err
	case opcode.ImmIndex2:
		return parseIndex2Imm(c, pc, source, e.Mnemonic)
	case opcode.ImmSelectTypes:
		return parseSelectTypesImm(c, source)
	case opcode.ImmBrTable:
		return parseBrTableImm(c, pc, source)
	case opcode.ImmI32Const:
		tok := c.Next()
		v, err := parseI64(tok.Value)
		return int32(v), err
	case opcode.ImmI64Const:
		tok := c.Next()
		return parseI64(tok.Value)
	case opcode.ImmF32Const:
		tok := c.Next()
		return parseF32(tok.Value)
	case opcode.ImmF64Const:
		tok := c.Next()
		return parseF64(tok.Value)
	case opcode.ImmMemArg:
		return parseMemArg(c)
	case opcode.ImmBlockType:
		// Handled by the block/loop/if/try_table-specific parsers; a bare
		// opcode-table entry with this kind should never reach here.
		return wasm.BlockTypeImm{Kind: wasm.BlockTypeEmpty}, nil
	default:
		// Unsupported in text form for now (see doc comment above).
		return nil, nil
	}
}

// parseIndex2Imm parses the two-index immediates: call_indirect/
// return_call_indirect's table-index-plus-typeuse, the bulk-memory *.init
// ops' (segment, memory-or-table) pair and the *.copy ops' (destination,
// source) pair (§4.F).
func parseIndex2Imm(c *TokenCursor, pc *ParseContext, source []byte, mnemonic string) (wasm.Index2Imm, error) {
	switch mnemonic {
	case "call_indirect", "return_call_indirect":
		tableIdx := uint32(0)
		if tok := c.Peek(); tok != nil && (tok.Type == TokenUN || tok.Type == TokenID) {
			idx, err := pc.resolveIndex(source, c.Next(), &pc.tables, "table")
			if err != nil {
				return wasm.Index2Imm{}, err
			}
			tableIdx = idx
		}
		typeIdx, params, results, _, err := parseTypeUse(c, pc, source)
		if err != nil {
			return wasm.Index2Imm{}, err
		}
		var idx uint32
		if typeIdx != nil {
			idx = *typeIdx
		} else {
			idx = internFuncType(pc.module, wasm.FunctionType{Params: params, Results: results})
		}
		return wasm.Index2Imm{A: idx, B: tableIdx}, nil
	case "memory.init":
		return parseTwoIndices(c, pc, source, &pc.data, &pc.mems, "data", "mem")
	case "table.init":
		return parseTwoIndices(c, pc, source, &pc.elems, &pc.tables, "elem", "table")
	case "memory.copy":
		return parseTwoIndices(c, pc, source, &pc.mems, &pc.mems, "mem", "mem")
	case "table.copy":
		return parseTwoIndices(c, pc, source, &pc.tables, &pc.tables, "table", "table")
	default:
		return wasm.Index2Imm{}, nil
	}
}

// parseTwoIndices consumes zero, one, or two leading index tokens (bare uN or
// $id), resolving the first against nsA and the second against nsB; a
// missing index (the common single-memory/single-table shorthand) defaults
// to 0.
func parseTwoIndices(c *TokenCursor, pc *ParseContext, source []byte, nsA, nsB *namespace, kindA, kindB string) (wasm.Index2Imm, error) {
	var toks []*Token
	for len(toks) < 2 {
		t := c.Peek()
		if t == nil || (t.Type != TokenUN && t.Type != TokenID) {
			break
		}
		toks = append(toks, c.Next())
	}
	var imm wasm.Index2Imm
	if len(toks) > 0 {
		a, err := pc.resolveIndex(source, toks[0], nsA, kindA)
		if err != nil {
			return wasm.Index2Imm{}, err
		}
		imm.A = a
	}
	if len(toks) > 1 {
		b, err := pc.resolveIndex(source, toks[1], nsB, kindB)
		if err != nil {
			return wasm.Index2Imm{}, err
		}
		imm.B = b
	}
	return imm, nil
}

// parseSelectTypesImm parses select's optional, repeatable `(result T)`
// clauses (§6.3), concatenating every listed type.
func parseSelectTypesImm(c *TokenCursor, source []byte) (wasm.SelectTypesImm, error) {
	var types []wasm.ValueType
	for {
		kw, ok := c.PeekFieldName()
		if !ok || kw != "result" {
			return wasm.SelectTypesImm{Types: types}, nil
		}
		c.Next()
		c.Next()
		vts, err := parseValTypeList(c, source)
		if err != nil {
			return wasm.SelectTypesImm{}, err
		}
		types = append(types, vts...)
		if err := c.ExpectRParen(); err != nil {
			return wasm.SelectTypesImm{}, err
		}
	}
}

// parseBrTableImm parses br_table's label vector: one or more labels, the
// last of which doubles as both the final vec entry and the default target.
func parseBrTableImm(c *TokenCursor, pc *ParseContext, source []byte) (wasm.BrTableImm, error) {
	var toks []*Token
	for {
		t := c.Peek()
		if t == nil || (t.Type != TokenUN && t.Type != TokenID) {
			break
		}
		toks = append(toks, c.Next())
	}
	if len(toks) == 0 {
		return wasm.BrTableImm{}, unexpectedToken(source, c.Peek())
	}
	labels := make([]uint32, len(toks)-1)
	for i, t := range toks[:len(toks)-1] {
		idx, err := pc.resolveLabel(source, t)
		if err != nil {
			return wasm.BrTableImm{}, err
		}
		labels[i] = idx
	}
	def, err := pc.resolveLabel(source, toks[len(toks)-1])
	if err != nil {
		return wasm.BrTableImm{}, err
	}
	return wasm.BrTableImm{Labels: labels, Default: def}, nil
}

// isLabelMnemonic reports whether mnemonic's ImmIndex immediate is a branch
// label (resolved by relative nesting depth, see ParseContext.resolveLabel)
// rather than an index into one of the module's persistent namespaces.
func isLabelMnemonic(mnemonic string) bool {
	switch mnemonic {
	case "br", "br_if", "br_on_null", "br_on_non_null":
		return true
	default:
		return false
	}
}

// namespaceFor picks which identifier namespace a non-label ImmIndex/
// ImmTagIndex mnemonic resolves against: locals, globals, tables, memories,
// data segments, element segments or tags by mnemonic; call and any other
// single-index mnemonic resolve against funcs.
func namespaceFor(pc *ParseContext, mnemonic string) *namespace {
	switch {
	case strings.HasPrefix(mnemonic, "local."):
		return &pc.locals
	case strings.HasPrefix(mnemonic, "global."):
		return &pc.globals
	case mnemonic == "call":
		return &pc.funcs
	case strings.HasPrefix(mnemonic, "table."):
		return &pc.tables
	case strings.HasPrefix(mnemonic, "memory."):
		return &pc.mems
	case mnemonic == "data.drop":
		return &pc.data
	case mnemonic == "elem.drop":
		return &pc.elems
	case mnemonic == "throw" || mnemonic == "catch":
		return &pc.tags
	default:
		return &pc.funcs
	}
}

func parseMemArg(c *TokenCursor) (wasm.MemArg, error) {
	var ma wasm.MemArg
	for {
		tok := c.Peek()
		if tok == nil || tok.Type != TokenKeyword {
			break
		}
		if v, ok := strings.CutPrefix(tok.Value, "offset="); ok {
			c.Next()
			u, err := parseU64(v)
			if err != nil {
				return ma, err
			}
			ma.Offset = uint32(u)
			continue
		}
		if v, ok := strings.CutPrefix(tok.Value, "align="); ok {
			c.Next()
			u, err := parseU64(v)
			if err != nil {
				return ma, err
			}
			// Text gives the alignment in bytes; MemArg.Align holds its log2.
			if u == 0 || u&(u-1) != 0 {
				return ma, newParseError(c.source, tok.Line, tok.Col, "alignment %d is not a power of two", u)
			}
			ma.Align = 0
			for ; u > 1; u >>= 1 {
				ma.Align++
			}
			continue
		}
		break
	}
	return ma, nil
}
