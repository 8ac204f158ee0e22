package binary

import (
	wasm "github.com/rajatjindal/wasm-tools/internal/wasm"
	"github.com/rajatjindal/wasm-tools/internal/wasm/opcode"
)

// The *Item aliases give section.go's SectionReader instantiations their own
// names without introducing a second type for what is, underneath, just the
// shared wasm IR type (§3 "Module as parsed" is the one currency every
// component trades in).
type (
	FunctionTypeItem = wasm.FunctionType
	ImportItem       = wasm.Import
	TableTypeItem    = wasm.TableType
	MemoryTypeItem   = wasm.MemoryType
	TagTypeItem      = wasm.TagType
	GlobalItem       = wasm.Global
	ExportItem       = wasm.Export
	ElementItem      = wasm.ElementSegment
	DataItem         = wasm.DataSegment
	FunctionBodyItem = wasm.Code
)

func decodeImport(c *Cursor) (*ImportItem, error) {
	mod, err := c.ReadName()
	if err != nil {
		return nil, err
	}
	name, err := c.ReadName()
	if err != nil {
		return nil, err
	}
	kind, err := c.ReadU8()
	if err != nil {
		return nil, err
	}
	im := &wasm.Import{Module: mod, Name: name, Kind: wasm.ImportKind(kind)}
	switch im.Kind {
	case wasm.ImportKindFunc:
		im.DescFunc, err = c.ReadU32Leb128()
	case wasm.ImportKindTable:
		tt, e := decodeTableType(c)
		im.DescTable, err = tt, e
	case wasm.ImportKindMemory:
		mt, e := decodeMemoryType(c)
		im.DescMem, err = mt, e
	case wasm.ImportKindGlobal:
		gt, e := decodeGlobalType(c)
		im.DescGlobal, err = gt, e
	case wasm.ImportKindTag:
		tt, e := decodeTagType(c)
		im.DescTag, err = tt, e
	default:
		return nil, c.invalid("unknown import kind 0x%02x", kind)
	}
	if err != nil {
		return nil, err
	}
	return im, nil
}

func decodeTableType(c *Cursor) (*wasm.TableType, error) {
	_, rt, err := readValType(c)
	if err != nil {
		return nil, err
	}
	if rt == nil {
		return nil, c.invalid("table element type must be a reference type")
	}
	lim, err := readLimits(c)
	if err != nil {
		return nil, err
	}
	return &wasm.TableType{RefType: *rt, Limits: lim}, nil
}

func decodeMemoryType(c *Cursor) (*wasm.MemoryType, error) {
	lim, err := readLimits(c)
	if err != nil {
		return nil, err
	}
	return &wasm.MemoryType{Limits: lim}, nil
}

func decodeGlobalType(c *Cursor) (*wasm.GlobalType, error) {
	vt, _, err := readValType(c)
	if err != nil {
		return nil, err
	}
	mut, err := c.ReadU8()
	if err != nil {
		return nil, err
	}
	return &wasm.GlobalType{ValType: vt, Mutable: mut != 0}, nil
}

func decodeTagType(c *Cursor) (*wasm.TagType, error) {
	attr, err := c.ReadU8()
	if err != nil {
		return nil, err
	}
	if attr != 0 {
		return nil, c.invalid("unsupported tag attribute %d", attr)
	}
	idx, err := c.ReadU32Leb128()
	if err != nil {
		return nil, err
	}
	return &wasm.TagType{TypeIndex: idx}, nil
}

func decodeGlobal(c *Cursor, fs opcode.FeatureSet) (*GlobalItem, error) {
	gt, err := decodeGlobalType(c)
	if err != nil {
		return nil, err
	}
	init, err := decodeConstExpr(c, fs)
	if err != nil {
		return nil, err
	}
	return &wasm.Global{Type: gt, Init: init}, nil
}

func decodeExport(c *Cursor) (*ExportItem, error) {
	name, err := c.ReadName()
	if err != nil {
		return nil, err
	}
	kind, err := c.ReadU8()
	if err != nil {
		return nil, err
	}
	idx, err := c.ReadU32Leb128()
	if err != nil {
		return nil, err
	}
	return &wasm.Export{Name: name, Kind: wasm.ExportKind(kind), Index: idx}, nil
}

func decodeElementSegment(c *Cursor, fs opcode.FeatureSet) (*ElementItem, error) {
	flags, err := c.ReadU32Leb128()
	if err != nil {
		return nil, err
	}
	seg := &wasm.ElementSegment{}
	// Flag-bit grammar per §6.2's element section encoding: bit 0 selects
	// passive/declarative vs active; bit 1 selects, for an active segment,
	// an explicit table index followed by an element kind/type, and for a
	// non-active segment, declarative vs passive; bit 2 selects the
	// expression form.
	active := flags&0x01 == 0
	hasExplicitIndexOrIsFuncref := flags&0x02 != 0
	exprForm := flags&0x04 != 0

	if active {
		seg.Mode = wasm.ElemModeActive
		if hasExplicitIndexOrIsFuncref {
			seg.TableIndex, err = c.ReadU32Leb128()
			if err != nil {
				return nil, err
			}
		}
		seg.Offset, err = decodeConstExpr(c, fs)
		if err != nil {
			return nil, err
		}
	} else {
		if hasExplicitIndexOrIsFuncref {
			seg.Mode = wasm.ElemModeDeclarative
		} else {
			seg.Mode = wasm.ElemModePassive
		}
	}

	if !active || hasExplicitIndexOrIsFuncref {
		if exprForm {
			_, rt, err := readValType(c)
			if err != nil {
				return nil, err
			}
			if rt != nil {
				seg.RefType = *rt
			} else {
				seg.RefType = wasm.FuncRef()
			}
		} else {
			et, err := c.ReadU8()
			if err != nil {
				return nil, err
			}
			if et != 0x00 {
				return nil, c.invalid("expected elemkind 0x00 (funcref), got 0x%02x", et)
			}
			seg.RefType = wasm.FuncRef()
		}
	} else {
		seg.RefType = wasm.FuncRef()
	}

	n, err := c.ReadVarU32AsUsize()
	if err != nil {
		return nil, err
	}
	if exprForm {
		seg.Init = make([]wasm.ConstantExpression, n)
		for i := 0; i < n; i++ {
			ce, err := decodeConstExpr(c, fs)
			if err != nil {
				return nil, err
			}
			seg.Init[i] = *ce
		}
	} else {
		seg.FuncIndices = make([]uint32, n)
		for i := 0; i < n; i++ {
			seg.FuncIndices[i], err = c.ReadU32Leb128()
			if err != nil {
				return nil, err
			}
		}
	}
	return seg, nil
}

func decodeDataSegment(c *Cursor, fs opcode.FeatureSet) (*DataItem, error) {
	flags, err := c.ReadU32Leb128()
	if err != nil {
		return nil, err
	}
	seg := &wasm.DataSegment{}
	switch flags {
	case 0:
		seg.Mode = wasm.DataModeActive
		seg.Offset, err = decodeConstExpr(c, fs)
	case 1:
		seg.Mode = wasm.DataModePassive
	case 2:
		seg.Mode = wasm.DataModeActive
		seg.MemIndex, err = c.ReadU32Leb128()
		if err == nil {
			seg.Offset, err = decodeConstExpr(c, fs)
		}
	default:
		return nil, c.invalid("invalid data segment flags %d", flags)
	}
	if err != nil {
		return nil, err
	}
	n, err := c.ReadVarU32AsUsize()
	if err != nil {
		return nil, err
	}
	seg.Init, err = c.ReadBytes(n)
	if err != nil {
		return nil, err
	}
	return seg, nil
}
