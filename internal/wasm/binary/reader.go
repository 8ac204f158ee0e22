package binary

import (
	wasm "github.com/rajatjindal/wasm-tools/internal/wasm"
	"github.com/rajatjindal/wasm-tools/internal/wasm/opcode"
)

var magic = [4]byte{0x00, 0x61, 0x73, 0x6D}

type readerState int

const (
	stateBeforeHeader readerState = iota
	stateSections
	stateInCode
	stateEnd
)

// ReaderOption configures a Reader, mirroring the teacher's functional-option
// configuration style (§1.1 ambient config stack).
type ReaderOption func(*Reader)

// WithFeatures overrides the default (ratified-only) feature set a Reader
// rejects unknown/gated opcodes against.
func WithFeatures(fs opcode.FeatureSet) ReaderOption {
	return func(r *Reader) { r.features = fs }
}

// Reader is the streaming, event-driven binary decoder (component C): it
// never builds an in-memory IR of its own, emitting one Payload per call to
// Read and leaving accumulation (if any) to the caller (§5 Non-goals).
type Reader struct {
	cur      *Cursor
	features opcode.FeatureSet
	state    readerState

	lastSectionID  int // canonical-order rank of the last numbered section (see readSection); -1 before any
	seenDataCount  bool
	seenSectionIDs map[wasm.SectionID]bool

	codeCursor    *Cursor
	codeRemaining uint32
}

// NewReader wraps data for streaming decode starting at the module header.
func NewReader(data []byte, opts ...ReaderOption) *Reader {
	r := &Reader{
		cur:            NewCursor(data, 0),
		features:       opcode.DefaultFeatures(),
		state:          stateBeforeHeader,
		lastSectionID:  -1,
		seenSectionIDs: map[wasm.SectionID]bool{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Read returns the next Payload: an EndPayload once the input is exhausted,
// or an *Error when it is malformed. Calling Read again after an EndPayload or
// an error is undefined;
// callers should stop (§4.C "Reader protocol").
func (r *Reader) Read() (Payload, error) {
	switch r.state {
	case stateBeforeHeader:
		return r.readHeader()
	case stateInCode:
		return r.readCodeEntry()
	case stateSections:
		return r.readSection()
	default:
		return EndPayload{Offset: r.cur.Position()}, nil
	}
}

func (r *Reader) readHeader() (Payload, error) {
	got, err := r.cur.ReadBytes(4)
	if err != nil {
		return nil, wrapErr(ErrBadMagic, 0, err, "truncated magic number")
	}
	if [4]byte(got) != magic {
		return nil, newErr(ErrBadMagic, 0, "bad magic number, got % x", got)
	}
	verBytes, err := r.cur.ReadBytes(4)
	if err != nil {
		return nil, wrapErr(ErrUnexpectedEof, 4, err, "truncated version field")
	}
	ver := uint32(verBytes[0]) | uint32(verBytes[1])<<8 | uint32(verBytes[2])<<16 | uint32(verBytes[3])<<24
	if ver != 1 {
		return nil, newErr(ErrUnsupportedVersion, 4, "unsupported binary version %d", ver)
	}
	r.state = stateSections
	return VersionPayload{Num: ver}, nil
}

func (r *Reader) readSection() (Payload, error) {
	if r.cur.Remaining() == 0 {
		r.state = stateEnd
		return EndPayload{Offset: r.cur.Position()}, nil
	}
	idOffset := r.cur.Position()
	idByte, err := r.cur.ReadU8()
	if err != nil {
		return nil, err
	}
	size, err := r.cur.ReadVarU32AsUsize()
	if err != nil {
		return nil, err
	}
	id := wasm.SectionID(idByte)
	sub, err := r.cur.Window(size)
	if err != nil {
		return nil, err
	}

	if id != wasm.SectionIDCustom {
		if r.seenSectionIDs[id] {
			return nil, newErr(ErrInvalidEncoding, idOffset, "duplicate %s section", wasm.SectionIDName(id))
		}
		// Canonical order follows the raw ids except for tag (13), which sits
		// between memory and global, and datacount (12), which sits between
		// element and code.
		rank := 2 * int(id)
		switch id {
		case wasm.SectionIDTag:
			rank = 2*int(wasm.SectionIDMemory) + 1
		case wasm.SectionIDDataCount:
			rank = 2*int(wasm.SectionIDElement) + 1
		}
		if rank <= r.lastSectionID {
			return nil, newErr(ErrInvalidEncoding, idOffset, "%s section out of order", wasm.SectionIDName(id))
		}
		r.seenSectionIDs[id] = true
		r.lastSectionID = rank
	}

	switch id {
	case wasm.SectionIDCustom:
		name, err := sub.ReadName()
		if err != nil {
			return nil, err
		}
		data, err := sub.ReadBytes(sub.Remaining())
		if err != nil {
			return nil, err
		}
		return CustomSectionPayload{Name: name, Data: data}, nil
	case wasm.SectionIDType:
		n, err := sub.ReadVarU32AsUsize()
		if err != nil {
			return nil, err
		}
		return TypeSectionPayload{Reader: newSectionReader(sub, uint32(n), readFunctionType)}, nil
	case wasm.SectionIDImport:
		n, err := sub.ReadVarU32AsUsize()
		if err != nil {
			return nil, err
		}
		return ImportSectionPayload{Reader: newSectionReader(sub, uint32(n), decodeImport)}, nil
	case wasm.SectionIDFunction:
		n, err := sub.ReadVarU32AsUsize()
		if err != nil {
			return nil, err
		}
		return FunctionSectionPayload{Reader: newSectionReader(sub, uint32(n), func(c *Cursor) (uint32, error) {
			return c.ReadU32Leb128()
		})}, nil
	case wasm.SectionIDTable:
		n, err := sub.ReadVarU32AsUsize()
		if err != nil {
			return nil, err
		}
		return TableSectionPayload{Reader: newSectionReader(sub, uint32(n), decodeTableType)}, nil
	case wasm.SectionIDMemory:
		n, err := sub.ReadVarU32AsUsize()
		if err != nil {
			return nil, err
		}
		return MemorySectionPayload{Reader: newSectionReader(sub, uint32(n), decodeMemoryType)}, nil
	case wasm.SectionIDTag:
		n, err := sub.ReadVarU32AsUsize()
		if err != nil {
			return nil, err
		}
		return TagSectionPayload{Reader: newSectionReader(sub, uint32(n), decodeTagType)}, nil
	case wasm.SectionIDGlobal:
		n, err := sub.ReadVarU32AsUsize()
		if err != nil {
			return nil, err
		}
		return GlobalSectionPayload{Reader: newSectionReader(sub, uint32(n), func(c *Cursor) (*GlobalItem, error) {
			return decodeGlobal(c, r.features)
		})}, nil
	case wasm.SectionIDExport:
		n, err := sub.ReadVarU32AsUsize()
		if err != nil {
			return nil, err
		}
		return ExportSectionPayload{Reader: newSectionReader(sub, uint32(n), decodeExport)}, nil
	case wasm.SectionIDStart:
		idx, err := sub.ReadU32Leb128()
		if err != nil {
			return nil, err
		}
		return StartSectionPayload{FuncIndex: idx}, nil
	case wasm.SectionIDElement:
		n, err := sub.ReadVarU32AsUsize()
		if err != nil {
			return nil, err
		}
		return ElementSectionPayload{Reader: newSectionReader(sub, uint32(n), func(c *Cursor) (*ElementItem, error) {
			return decodeElementSegment(c, r.features)
		})}, nil
	case wasm.SectionIDDataCount:
		n, err := sub.ReadU32Leb128()
		if err != nil {
			return nil, err
		}
		r.seenDataCount = true
		return DataCountSectionPayload{Count: n}, nil
	case wasm.SectionIDCode:
		n, err := sub.ReadVarU32AsUsize()
		if err != nil {
			return nil, err
		}
		r.state = stateInCode
		r.codeRemaining = uint32(n)
		r.codeCursor = sub
		return CodeSectionStartPayload{Count: uint32(n), Offset: sub.Position(), Size: size}, nil
	case wasm.SectionIDData:
		n, err := sub.ReadVarU32AsUsize()
		if err != nil {
			return nil, err
		}
		return DataSectionPayload{Reader: newSectionReader(sub, uint32(n), func(c *Cursor) (*DataItem, error) {
			return decodeDataSegment(c, r.features)
		})}, nil
	default:
		return nil, newErr(ErrUnknownSection, idOffset, "unknown section id %d", idByte)
	}
}

func (r *Reader) readCodeEntry() (Payload, error) {
	if r.codeRemaining == 0 {
		r.state = stateSections
		return r.Read()
	}
	bodySize, err := r.codeCursor.ReadVarU32AsUsize()
	if err != nil {
		return nil, err
	}
	bodyStart := r.codeCursor.Position()
	bodyCur, err := r.codeCursor.Window(bodySize)
	if err != nil {
		return nil, err
	}
	body, err := decodeFunctionBody(bodyCur, bodyStart, bodySize, r.features)
	if err != nil {
		return nil, err
	}
	r.codeRemaining--
	return CodeSectionEntryPayload{Body: body}, nil
}
