package binary

import (
	wasm "github.com/rajatjindal/wasm-tools/internal/wasm"
	"github.com/rajatjindal/wasm-tools/internal/wasm/opcode"
)

// Encode serializes m to the canonical binary format (component I). The
// encoder owns its output buffer outright: nothing it returns aliases m's
// slices except where m's own byte slices (data-segment payloads, custom
// section bytes) are copied in verbatim (§5).
func Encode(m *wasm.Module) ([]byte, error) {
	w := &writer{}
	w.raw(magic[:])
	w.raw([]byte{1, 0, 0, 0})

	if len(m.TypeSection) > 0 {
		encodeVecSection(w, wasm.SectionIDType, m.TypeSection, encodeFunctionType)
	}
	if len(m.ImportSection) > 0 {
		encodeVecSection(w, wasm.SectionIDImport, m.ImportSection, encodeImport)
	}
	if len(m.FunctionSection) > 0 {
		encodeVecSection(w, wasm.SectionIDFunction, m.FunctionSection, func(sw *writer, idx uint32) { sw.uleb32(idx) })
	}
	if len(m.TableSection) > 0 {
		encodeVecSection(w, wasm.SectionIDTable, m.TableSection, encodeTableType)
	}
	if len(m.MemorySection) > 0 {
		encodeVecSection(w, wasm.SectionIDMemory, m.MemorySection, encodeMemoryType)
	}
	if len(m.TagSection) > 0 {
		encodeVecSection(w, wasm.SectionIDTag, m.TagSection, encodeTagType)
	}
	if len(m.GlobalSection) > 0 {
		encodeVecSection(w, wasm.SectionIDGlobal, m.GlobalSection, encodeGlobal)
	}
	if len(m.ExportSection) > 0 {
		encodeExportSection(w, m.ExportSection)
	}
	if m.StartSection != nil {
		body := &writer{}
		body.uleb32(*m.StartSection)
		encodeSection(w, wasm.SectionIDStart, body.bytes())
	}
	if len(m.ElementSection) > 0 {
		encodeVecSection(w, wasm.SectionIDElement, m.ElementSection, encodeElementSegment)
	}
	if m.NeedsDataCount() || m.DataCountSection != nil {
		body := &writer{}
		body.uleb32(uint32(len(m.DataSection)))
		encodeSection(w, wasm.SectionIDDataCount, body.bytes())
	}
	if len(m.CodeSection) > 0 {
		encodeVecSection(w, wasm.SectionIDCode, m.CodeSection, encodeCode)
	}
	if len(m.DataSection) > 0 {
		encodeVecSection(w, wasm.SectionIDData, m.DataSection, encodeDataSegment)
	}
	for _, cs := range m.CustomSections {
		encodeCustomSection(w, cs.Name, cs.Data)
	}
	if m.NameSection != nil {
		encodeCustomSection(w, "name", encodeNameSection(m.NameSection))
	}
	return w.bytes(), nil
}

func encodeSection(w *writer, id wasm.SectionID, body []byte) {
	w.u8(byte(id))
	w.withLengthPrefix(body)
}

func encodeVecSection[T any](w *writer, id wasm.SectionID, items []T, enc func(*writer, T)) {
	body := &writer{}
	body.uleb32(uint32(len(items)))
	for _, it := range items {
		enc(body, it)
	}
	encodeSection(w, id, body.bytes())
}

func encodeCustomSection(w *writer, name string, data []byte) {
	body := &writer{}
	body.name(name)
	body.raw(data)
	encodeSection(w, wasm.SectionIDCustom, body.bytes())
}

func encodeFunctionType(w *writer, ft *wasm.FunctionType) {
	w.u8(0x60)
	w.uleb32(uint32(len(ft.Params)))
	for _, p := range ft.Params {
		w.u8(byte(p))
	}
	w.uleb32(uint32(len(ft.Results)))
	for _, r := range ft.Results {
		w.u8(byte(r))
	}
}

func encodeLimits(w *writer, l wasm.Limits) { writeLimits(w, l) }

func encodeTableType(w *writer, t *wasm.TableType) {
	encodeRefType(w, t.RefType)
	encodeLimits(w, t.Limits)
}

func encodeRefType(w *writer, rt wasm.RefType) {
	switch {
	case rt.Heap.Abstract == wasm.HeapTypeFunc && rt.Nullable:
		w.u8(0x70)
	case rt.Heap.Abstract == wasm.HeapTypeExtern && rt.Nullable:
		w.u8(0x6F)
	default:
		if rt.Nullable {
			w.u8(0x64)
		} else {
			w.u8(0x63)
		}
		encodeHeapType(w, rt.Heap)
	}
}

func encodeHeapType(w *writer, ht wasm.HeapType) {
	if ht.Abstract == wasm.HeapTypeConcrete {
		w.sleb64(int64(ht.Index))
		return
	}
	var code int64
	switch ht.Abstract {
	case wasm.HeapTypeFunc:
		code = -0x10
	case wasm.HeapTypeExtern:
		code = -0x11
	case wasm.HeapTypeAny:
		code = -0x12
	case wasm.HeapTypeEq:
		code = -0x13
	case wasm.HeapTypeI31:
		code = -0x14
	case wasm.HeapTypeStruct:
		code = -0x15
	case wasm.HeapTypeArray:
		code = -0x16
	case wasm.HeapTypeNone:
		code = -0x17
	case wasm.HeapTypeNoExtern:
		code = -0x18
	case wasm.HeapTypeNoFunc:
		code = -0x19
	case wasm.HeapTypeNoExn:
		code = -0x1A
	case wasm.HeapTypeExn:
		code = -0x1B
	case wasm.HeapTypeCont:
		code = -0x1C
	case wasm.HeapTypeNoCont:
		code = -0x1D
	}
	w.sleb64(code)
}

func encodeValType(w *writer, vt wasm.ValueType, rt *wasm.RefType) {
	if vt == wasm.ValueTypeRef && rt != nil {
		encodeRefType(w, *rt)
		return
	}
	w.u8(byte(vt))
}

func encodeMemoryType(w *writer, m *wasm.MemoryType) { encodeLimits(w, m.Limits) }

func encodeTagType(w *writer, t *wasm.TagType) {
	w.u8(0)
	w.uleb32(t.TypeIndex)
}

func encodeImport(w *writer, im *wasm.Import) {
	w.name(im.Module)
	w.name(im.Name)
	w.u8(byte(im.Kind))
	switch im.Kind {
	case wasm.ImportKindFunc:
		w.uleb32(im.DescFunc)
	case wasm.ImportKindTable:
		encodeTableType(w, im.DescTable)
	case wasm.ImportKindMemory:
		encodeMemoryType(w, im.DescMem)
	case wasm.ImportKindGlobal:
		encodeGlobalType(w, im.DescGlobal)
	case wasm.ImportKindTag:
		encodeTagType(w, im.DescTag)
	}
}

func encodeGlobalType(w *writer, gt *wasm.GlobalType) {
	w.u8(byte(gt.ValType))
	if gt.Mutable {
		w.u8(1)
	} else {
		w.u8(0)
	}
}

func encodeGlobal(w *writer, g *wasm.Global) {
	encodeGlobalType(w, g.Type)
	encodeConstExpr(w, g.Init)
}

func encodeExportSection(w *writer, exports map[string]*wasm.Export) {
	body := &writer{}
	body.uleb32(uint32(len(exports)))
	for _, name := range sortedExportNames(exports) {
		e := exports[name]
		body.name(e.Name)
		body.u8(byte(e.Kind))
		body.uleb32(e.Index)
	}
	encodeSection(w, wasm.SectionIDExport, body.bytes())
}

// sortedExportNames gives the export section a deterministic encoding order
// (Module.ExportSection is a map because lookup-by-name is the common
// access pattern, but the wire format is a vector).
func sortedExportNames(exports map[string]*wasm.Export) []string {
	names := make([]string, 0, len(exports))
	for n := range exports {
		names = append(names, n)
	}
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j-1] > names[j]; j-- {
			names[j-1], names[j] = names[j], names[j-1]
		}
	}
	return names
}

// encodeElementSegment follows the element-section flag table of §6.2: bit 0
// selects active vs passive/declarative, bit 1 selects an explicit table
// index (active) or declarative-vs-passive (otherwise), bit 2 selects the
// vec(expr) form over vec(funcidx)+elemkind. The implicit-funcref active
// forms (flags 0 and 4) omit the reftype/elemkind byte entirely.
func encodeElementSegment(w *writer, seg *wasm.ElementSegment) {
	exprForm := seg.FuncIndices == nil
	explicitTable := seg.Mode == wasm.ElemModeActive && seg.TableIndex != 0
	declarative := seg.Mode == wasm.ElemModeDeclarative

	var flags uint32
	if seg.Mode != wasm.ElemModeActive {
		flags |= 0x01
	}
	if explicitTable || declarative {
		flags |= 0x02
	}
	if exprForm {
		flags |= 0x04
	}
	w.uleb32(flags)

	switch {
	case seg.Mode == wasm.ElemModeActive:
		if explicitTable {
			w.uleb32(seg.TableIndex)
		}
		encodeConstExpr(w, seg.Offset)
		if explicitTable {
			if exprForm {
				encodeRefType(w, seg.RefType)
			} else {
				w.u8(0x00)
			}
		}
	default:
		if exprForm {
			encodeRefType(w, seg.RefType)
		} else {
			w.u8(0x00)
		}
	}

	if exprForm {
		w.uleb32(uint32(len(seg.Init)))
		for _, ce := range seg.Init {
			encodeConstExpr(w, &ce)
		}
	} else {
		w.uleb32(uint32(len(seg.FuncIndices)))
		for _, fi := range seg.FuncIndices {
			w.uleb32(fi)
		}
	}
}

func encodeDataSegment(w *writer, seg *wasm.DataSegment) {
	switch seg.Mode {
	case wasm.DataModePassive:
		w.uleb32(1)
	default:
		if seg.MemIndex != 0 {
			w.uleb32(2)
			w.uleb32(seg.MemIndex)
		} else {
			w.uleb32(0)
		}
		encodeConstExpr(w, seg.Offset)
	}
	w.uleb32(uint32(len(seg.Init)))
	w.raw(seg.Init)
}

func encodeCode(w *writer, c *wasm.Code) {
	body := &writer{}
	body.uleb32(uint32(len(c.Locals)))
	for _, l := range c.Locals {
		body.uleb32(l.Count)
		encodeValType(body, l.Type, l.Ref)
	}
	for _, in := range c.Body {
		encodeInstruction(body, in)
	}
	w.withLengthPrefix(body.bytes())
}

func encodeConstExpr(w *writer, ce *wasm.ConstantExpression) {
	for _, in := range ce.Instructions {
		encodeInstruction(w, in)
	}
}

func encodeInstruction(w *writer, in wasm.Instruction) {
	e := in.Op
	if e.HasPrefix {
		w.u8(e.Prefix)
		w.uleb32(e.Code)
	} else {
		w.u8(byte(e.Code))
	}
	encodeImmediate(w, e, in.Imm)
}

func encodeImmediate(w *writer, e *opcode.Entry, imm any) {
	switch e.Imm {
	case opcode.ImmNone:
	case opcode.ImmBlockType:
		bt := imm.(wasm.BlockTypeImm)
		switch bt.Kind {
		case wasm.BlockTypeEmpty:
			w.u8(0x40)
		case wasm.BlockTypeValue:
			w.u8(byte(bt.ValType))
		case wasm.BlockTypeIndex:
			w.sleb64(int64(bt.TypeIndex))
		}
	case opcode.ImmIndex, opcode.ImmTagIndex:
		w.uleb32(imm.(wasm.IndexImm).Index)
	case opcode.ImmIndex2:
		v := imm.(wasm.Index2Imm)
		w.uleb32(v.A)
		w.uleb32(v.B)
	case opcode.ImmMemArg:
		v := imm.(wasm.MemArg)
		w.uleb32(v.Align)
		w.uleb32(v.Offset)
	case opcode.ImmMemArgLane:
		v := imm.(wasm.MemArgLane)
		w.uleb32(v.Align)
		w.uleb32(v.Offset)
		w.u8(v.Lane)
	case opcode.ImmBrTable:
		v := imm.(wasm.BrTableImm)
		w.uleb32(uint32(len(v.Labels)))
		for _, l := range v.Labels {
			w.uleb32(l)
		}
		w.uleb32(v.Default)
	case opcode.ImmI32Const:
		w.sleb32(imm.(int32))
	case opcode.ImmI64Const:
		w.sleb64(imm.(int64))
	case opcode.ImmF32Const:
		w.f32(imm.(float32))
	case opcode.ImmF64Const:
		w.f64(imm.(float64))
	case opcode.ImmV128Const:
		v := imm.(wasm.V128Const)
		w.raw(v[:])
	case opcode.ImmLane:
		w.u8(imm.(wasm.LaneImm).Lane)
	case opcode.ImmShuffle:
		v := imm.(wasm.ShuffleImm)
		w.raw(v.Lanes[:])
	case opcode.ImmSelectTypes:
		v := imm.(wasm.SelectTypesImm)
		w.uleb32(uint32(len(v.Types)))
		for _, t := range v.Types {
			w.u8(byte(t))
		}
	case opcode.ImmHeapType:
		v := imm.(wasm.HeapTypeImm)
		if e.Mnemonic == "br_on_cast" || e.Mnemonic == "br_on_cast_fail" {
			var flags byte
			if v.SourceNullable {
				flags |= 0x01
			}
			if v.TargetNullable {
				flags |= 0x02
			}
			w.u8(flags)
			w.uleb32(v.Label)
			encodeHeapType(w, v.SourceHeap)
			encodeHeapType(w, v.Heap)
		} else {
			encodeHeapType(w, v.Heap)
		}
	case opcode.ImmCatch:
		v := imm.(wasm.CatchImm)
		encodeImmediate(w, &opcode.Entry{Imm: opcode.ImmBlockType}, v.BlockType)
		w.uleb32(uint32(len(v.Clauses)))
		for _, cl := range v.Clauses {
			w.u8(byte(cl.Kind))
			if cl.Kind == wasm.CatchTag || cl.Kind == wasm.CatchTagRef {
				w.uleb32(cl.Tag)
			}
			w.uleb32(cl.Label)
		}
	case opcode.ImmResumeTable:
		v := imm.(wasm.ResumeTableImm)
		w.uleb32(v.ContTypeIndex)
		w.uleb32(uint32(len(v.Handlers)))
		for _, h := range v.Handlers {
			w.uleb32(h.Tag)
			if h.Switch {
				w.u8(1)
			} else {
				w.u8(0)
				w.uleb32(h.Label)
			}
		}
	case opcode.ImmStructField:
		v := imm.(wasm.StructFieldImm)
		w.uleb32(v.TypeIndex)
		w.uleb32(v.FieldIndex)
	case opcode.ImmArrayNewFixed:
		v := imm.(wasm.ArrayNewFixedImm)
		w.uleb32(v.TypeIndex)
		w.uleb32(v.Count)
	case opcode.ImmByte:
		w.u8(imm.(byte))
	}
}
