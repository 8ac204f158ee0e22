package binary

import wasm "github.com/rajatjindal/wasm-tools/internal/wasm"

// readValType reads a single value-type byte (0x7F..0x7B, the 0x70 funcref
// and 0x6F externref shorthands, or 0x63 `ref` / 0x64 `ref null` followed by
// a heap type) into a wasm.ValueType plus an out-of-band wasm.RefType for the
// reference types. Any other byte is rejected.
func readValType(c *Cursor) (wasm.ValueType, *wasm.RefType, error) {
	b, err := c.ReadU8()
	if err != nil {
		return 0, nil, err
	}
	switch b {
	case 0x7F, 0x7E, 0x7D, 0x7C, 0x7B:
		return wasm.ValueType(b), nil, nil
	case 0x70:
		rt := wasm.FuncRef()
		return wasm.ValueTypeFuncref, &rt, nil
	case 0x6F:
		rt := wasm.ExternRef()
		return wasm.ValueTypeExternref, &rt, nil
	case 0x63, 0x64: // ref $t / ref null $t
		nullable := b == 0x64
		ht, err := readHeapType(c)
		if err != nil {
			return 0, nil, err
		}
		rt := wasm.RefType{Nullable: nullable, Heap: ht}
		return wasm.ValueTypeRef, &rt, nil
	default:
		return 0, nil, c.invalid("invalid value type byte 0x%02x", b)
	}
}

// readHeapType decodes the heap-type grammar (§4.C "Heap-type / ref-type
// decoding"): a negative small s33 denotes an abstract type, non-negative
// denotes a concrete type index.
func readHeapType(c *Cursor) (wasm.HeapType, error) {
	start := c.Position()
	v, err := c.ReadI64Leb128() // s33 fits comfortably in an i64 read
	if err != nil {
		return wasm.HeapType{}, err
	}
	if v >= 0 {
		return wasm.HeapType{Abstract: wasm.HeapTypeConcrete, Index: uint32(v)}, nil
	}
	switch v {
	case -0x10: // func
		return wasm.HeapType{Abstract: wasm.HeapTypeFunc}, nil
	case -0x11: // extern
		return wasm.HeapType{Abstract: wasm.HeapTypeExtern}, nil
	case -0x12: // any
		return wasm.HeapType{Abstract: wasm.HeapTypeAny}, nil
	case -0x13: // eq
		return wasm.HeapType{Abstract: wasm.HeapTypeEq}, nil
	case -0x14: // i31
		return wasm.HeapType{Abstract: wasm.HeapTypeI31}, nil
	case -0x15: // struct
		return wasm.HeapType{Abstract: wasm.HeapTypeStruct}, nil
	case -0x16: // array
		return wasm.HeapType{Abstract: wasm.HeapTypeArray}, nil
	case -0x17: // none
		return wasm.HeapType{Abstract: wasm.HeapTypeNone}, nil
	case -0x18: // noextern
		return wasm.HeapType{Abstract: wasm.HeapTypeNoExtern}, nil
	case -0x19: // nofunc
		return wasm.HeapType{Abstract: wasm.HeapTypeNoFunc}, nil
	case -0x1A: // noexn
		return wasm.HeapType{Abstract: wasm.HeapTypeNoExn}, nil
	case -0x1B: // exn
		return wasm.HeapType{Abstract: wasm.HeapTypeExn}, nil
	case -0x1C: // cont
		return wasm.HeapType{Abstract: wasm.HeapTypeCont}, nil
	case -0x1D: // nocont
		return wasm.HeapType{Abstract: wasm.HeapTypeNoCont}, nil
	default:
		return wasm.HeapType{}, newErr(ErrInvalidEncoding, start, "unknown abstract heap type %d", v)
	}
}

func readLimits(c *Cursor) (wasm.Limits, error) {
	flags, err := c.ReadU8()
	if err != nil {
		return wasm.Limits{}, err
	}
	hasMax := flags&0x01 != 0
	shared := flags&0x02 != 0
	min, err := c.ReadU32Leb128()
	if err != nil {
		return wasm.Limits{}, err
	}
	lim := wasm.Limits{Min: min, Shared: shared}
	if hasMax {
		max, err := c.ReadU32Leb128()
		if err != nil {
			return wasm.Limits{}, err
		}
		lim.Max = &max
	}
	return lim, nil
}

func writeLimits(w *writer, l wasm.Limits) {
	flags := byte(0)
	if l.Max != nil {
		flags |= 0x01
	}
	if l.Shared {
		flags |= 0x02
	}
	w.u8(flags)
	w.uleb32(l.Min)
	if l.Max != nil {
		w.uleb32(*l.Max)
	}
}

func readFunctionType(c *Cursor) (*wasm.FunctionType, error) {
	tag, err := c.ReadU8()
	if err != nil {
		return nil, err
	}
	if tag != 0x60 {
		return nil, c.invalid("expected function type tag 0x60, got 0x%02x", tag)
	}
	params, err := readValTypeVec(c)
	if err != nil {
		return nil, err
	}
	results, err := readValTypeVec(c)
	if err != nil {
		return nil, err
	}
	return &wasm.FunctionType{Params: params, Results: results}, nil
}

func readValTypeVec(c *Cursor) ([]wasm.ValueType, error) {
	n, err := c.ReadVarU32AsUsize()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	out := make([]wasm.ValueType, n)
	for i := 0; i < n; i++ {
		vt, _, err := readValType(c)
		if err != nil {
			return nil, err
		}
		out[i] = vt
	}
	return out, nil
}
