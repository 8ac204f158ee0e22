// Package wasm holds the data model shared by the binary reader/encoder
// (internal/wasm/binary) and the text parser/resolver (internal/wat): value
// types, module-level IR, and the single Instruction type that both halves
// of the opcode table (internal/wasm/opcode) produce and consume.
package wasm

// ValueType is a single byte value type, holding the binary encoding's byte
// (the text parser maps each keyword to it in internal/wat).
type ValueType byte

const (
	ValueTypeI32       ValueType = 0x7F
	ValueTypeI64       ValueType = 0x7E
	ValueTypeF32       ValueType = 0x7D
	ValueTypeF64       ValueType = 0x7C
	ValueTypeV128      ValueType = 0x7B
	ValueTypeFuncref   ValueType = 0x70
	ValueTypeExternref ValueType = 0x6F
	// ValueTypeRef is not a concrete byte value; it marks a ValueType field
	// that actually holds a full RefType (GC / function-references), stored
	// out of band. Decoders that hit 0x63/0x64 (ref/ref null) in a valtype
	// position populate a RefType and return this sentinel, whatever the heap
	// type; only the 0x70/0x6F shorthand bytes decode to ValueTypeFuncref or
	// ValueTypeExternref.
	ValueTypeRef ValueType = 0x00
)

func (v ValueType) String() string {
	switch v {
	case ValueTypeI32:
		return "i32"
	case ValueTypeI64:
		return "i64"
	case ValueTypeF32:
		return "f32"
	case ValueTypeF64:
		return "f64"
	case ValueTypeV128:
		return "v128"
	case ValueTypeFuncref:
		return "funcref"
	case ValueTypeExternref:
		return "externref"
	default:
		return "unknown"
	}
}

// HeapType is the abstract-or-concrete referent of a RefType (§4.C "Heap-type
// / ref-type decoding"). Abstract heap types are encoded as small negative
// LEB128 s33 values in the binary format; Index >= 0 denotes a concrete type
// index.
type HeapType struct {
	Abstract AbstractHeapType
	Index    uint32 // valid only when Abstract == HeapTypeConcrete
}

type AbstractHeapType int8

const (
	HeapTypeConcrete AbstractHeapType = iota
	HeapTypeFunc
	HeapTypeExtern
	HeapTypeAny
	HeapTypeEq
	HeapTypeI31
	HeapTypeStruct
	HeapTypeArray
	HeapTypeNone
	HeapTypeNoExtern
	HeapTypeNoFunc
	HeapTypeNoExn
	HeapTypeExn
	HeapTypeCont
	HeapTypeNoCont
)

// RefType is a (possibly nullable) reference to a HeapType.
type RefType struct {
	Nullable bool
	Heap     HeapType
}

func FuncRef() RefType   { return RefType{Nullable: true, Heap: HeapType{Abstract: HeapTypeFunc}} }
func ExternRef() RefType { return RefType{Nullable: true, Heap: HeapType{Abstract: HeapTypeExtern}} }
