package wasm

// FunctionType is a type-section row: the `(in) -> (out)` signature any
// opcode with custom arity (call, call_indirect, block/loop/if with a type
// use, ...) ultimately resolves against.
type FunctionType struct {
	Params  []ValueType
	Results []ValueType
}

// Limits is the (min, max?) pair shared by table and memory types; Shared
// marks a memory as usable by the threads/shared-everything-threads
// proposals.
type Limits struct {
	Min    uint32
	Max    *uint32
	Shared bool
}

type TableType struct {
	RefType RefType
	Limits  Limits
}

type MemoryType struct {
	Limits Limits
}

type GlobalType struct {
	ValType ValueType
	Mutable bool
}

// TagType is an exception tag (legacy exceptions and try_table/throw_ref):
// it names the function type describing the exception's payload.
type TagType struct {
	TypeIndex uint32
}

// SectionID identifies a binary module section (§6.1).
type SectionID byte

const (
	SectionIDCustom SectionID = iota
	SectionIDType
	SectionIDImport
	SectionIDFunction
	SectionIDTable
	SectionIDMemory
	SectionIDGlobal
	SectionIDExport
	SectionIDStart
	SectionIDElement
	SectionIDCode
	SectionIDData
	SectionIDDataCount
	SectionIDTag
)

func SectionIDName(id SectionID) string {
	switch id {
	case SectionIDCustom:
		return "custom"
	case SectionIDType:
		return "type"
	case SectionIDImport:
		return "import"
	case SectionIDFunction:
		return "function"
	case SectionIDTable:
		return "table"
	case SectionIDMemory:
		return "memory"
	case SectionIDGlobal:
		return "global"
	case SectionIDExport:
		return "export"
	case SectionIDStart:
		return "start"
	case SectionIDElement:
		return "element"
	case SectionIDCode:
		return "code"
	case SectionIDData:
		return "data"
	case SectionIDDataCount:
		return "datacount"
	case SectionIDTag:
		return "tag"
	default:
		return "unknown"
	}
}

type ImportKind byte

const (
	ImportKindFunc ImportKind = iota
	ImportKindTable
	ImportKindMemory
	ImportKindGlobal
	ImportKindTag
)

type ExportKind = ImportKind

const (
	ExportKindFunc   = ImportKindFunc
	ExportKindTable  = ImportKindTable
	ExportKindMemory = ImportKindMemory
	ExportKindGlobal = ImportKindGlobal
	ExportKindTag    = ImportKindTag
)

// Import is one row of the import section. Exactly one Desc* field is valid,
// selected by Kind.
type Import struct {
	Module, Name string
	Kind         ImportKind
	DescFunc     uint32
	DescTable    *TableType
	DescMem      *MemoryType
	DescGlobal   *GlobalType
	DescTag      *TagType
}

// Export is one row of the export section.
type Export struct {
	Name  string
	Kind  ExportKind
	Index uint32
}

// ConstantExpression is an instruction sequence usable where the grammar
// requires a constant expression (global initializers, offsets, element/data
// segment offsets). It is more than one instruction only under the
// extended-const proposal (arithmetic on constants).
type ConstantExpression struct {
	Instructions []Instruction
}

type Global struct {
	Type *GlobalType
	Init *ConstantExpression
}

// LocalEntry is one run of the function body's run-length-encoded local
// declaration table (§4.C).
type LocalEntry struct {
	Count uint32
	Type  ValueType
	Ref   *RefType // non-nil when Type == ValueTypeRef
}

// BranchHint is one (@metadata.code.branch_hint) annotation, recorded by
// instruction index into Code.Body (§4.G, §9).
type BranchHint struct {
	InstructionIndex uint32
	LikelyTaken      bool
}

// Code is one function body: the local declarations plus its instruction
// stream. Body always ends with an explicit End instruction.
type Code struct {
	Locals       []LocalEntry
	Body         []Instruction
	BranchHints  []BranchHint
	BodyOffset   uint32 // absolute byte offset of the first instruction (set by the binary decoder)
	BodySize     uint32
}

type ElemMode byte

const (
	ElemModeActive ElemMode = iota
	ElemModePassive
	ElemModeDeclarative
)

// ElementSegment is one element-section row. Init holds one constant
// expression per element when the segment uses the expression form
// (reference-types+); FuncIndices holds plain function indices for the
// legacy vec(funcidx) form — exactly one of the two is populated.
type ElementSegment struct {
	Mode        ElemMode
	TableIndex  uint32
	Offset      *ConstantExpression
	RefType     RefType
	FuncIndices []uint32
	Init        []ConstantExpression
}

type DataMode byte

const (
	DataModeActive DataMode = iota
	DataModePassive
)

type DataSegment struct {
	Mode      DataMode
	MemIndex  uint32
	Offset    *ConstantExpression
	Init      []byte
}

// NameAssoc is one (index, name) pair of a name-subsection map.
type NameAssoc struct {
	Index uint32
	Name  string
}

// NameSection is the decoded form of the custom "name" section (§9
// supplemented feature).
type NameSection struct {
	ModuleName    string
	FunctionNames []NameAssoc
	LocalNames    map[uint32][]NameAssoc
}

// CustomSection is any custom section other than "name", preserved verbatim
// for round-tripping.
type CustomSection struct {
	Name string
	Data []byte
}

// Module is the fully decoded/resolved module IR: the common currency
// between the binary decoder's accumulated payloads, the text parser's
// resolved AST, and the encoder (§3 "Module as parsed").
type Module struct {
	TypeSection       []*FunctionType
	ImportSection     []*Import
	FunctionSection   []uint32 // type indices, one per locally defined function
	TableSection      []*TableType
	MemorySection     []*MemoryType
	TagSection        []*TagType
	GlobalSection     []*Global
	ExportSection     map[string]*Export
	StartSection      *uint32
	ElementSection    []*ElementSegment
	DataCountSection  *uint32
	CodeSection       []*Code
	DataSection       []*DataSegment
	NameSection       *NameSection
	CustomSections    []*CustomSection
}

// NeedsDataCount reports whether the module contains an instruction that
// requires a preceding datacount section (§4.I).
func (m *Module) NeedsDataCount() bool {
	for _, c := range m.CodeSection {
		for _, in := range c.Body {
			if needsDataCount(in.Mnemonic()) {
				return true
			}
		}
	}
	return false
}

func needsDataCount(mnemonic string) bool {
	switch mnemonic {
	case "memory.init", "data.drop", "array.new_data", "array.init_data":
		return true
	default:
		return false
	}
}
