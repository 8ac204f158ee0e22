package wasm

import "github.com/rajatjindal/wasm-tools/internal/wasm/opcode"

// Instruction is the one instruction representation shared by the binary
// reader, the text AST, and the encoder (§3 invariant 5: at most eleven
// machine words). Op is a pointer into the opcode table (component A) so
// Instruction itself carries no duplicated mnemonic/arity data; Imm holds
// one of the Immediate* types below, chosen by Op.Imm, or nil for ImmNone.
type Instruction struct {
	Op     *opcode.Entry
	Imm    any
	Offset uint32 // absolute byte offset this instruction started at (binary decode); 0 when parsed from text, and the encoder never sets it
}

func (in Instruction) Mnemonic() string {
	if in.Op == nil {
		return ""
	}
	return in.Op.Mnemonic
}

// MemArg is the (align, offset) pair attached to every typed load/store
// (§4.F "Memory arguments").
type MemArg struct {
	Align  uint32 // log2 of the natural alignment, as encoded
	Offset uint32
}

// MemArgLane is a MemArg plus a SIMD lane index (v128.load_lane family).
type MemArgLane struct {
	MemArg
	Lane byte
}

// BlockTypeKind distinguishes the three shapes a block type can take.
type BlockTypeKind byte

const (
	BlockTypeEmpty BlockTypeKind = iota
	BlockTypeValue
	BlockTypeIndex
)

// BlockTypeImm is block/loop/if/try_table's optional `(type …)` or inline
// `(param …) (result …)` signature (§4.F).
type BlockTypeImm struct {
	Kind      BlockTypeKind
	ValType   ValueType
	TypeIndex uint32
}

// IndexImm is any single numeric index immediate (local/global/func/table/
// elem/data/type/tag/label).
type IndexImm struct {
	Index uint32
}

// Index2Imm is a pair of indices, in source order (call_indirect: type then
// table; memory.init: data then mem; table.init: elem then table;
// memory.copy/table.copy: dst then src).
type Index2Imm struct {
	A, B uint32
}

// BrTableImm is br_table's label list. Labels is materialized eagerly: the
// binary reader decodes every label while scanning (see
// internal/wasm/binary/operator.go) and keeps no lazy view over the
// encoded byte range.
type BrTableImm struct {
	Labels  []uint32
	Default uint32
}

// V128Const is a 16-byte SIMD constant.
type V128Const [16]byte

// LaneImm is a single lane-index byte (SIMD extract/replace_lane).
type LaneImm struct {
	Lane byte
}

// ShuffleImm is i8x16.shuffle's 16 lane-index bytes.
type ShuffleImm struct {
	Lanes [16]byte
}

// SelectTypesImm is select's optional, repeatable (result T) list (§6.3).
type SelectTypesImm struct {
	Types []ValueType
}

// HeapTypeImm carries a heap type immediate (ref.null, ref.test, ref.cast,
// br_on_cast*). For the plain single-heap-type forms only Heap is populated;
// br_on_cast/br_on_cast_fail additionally populate SourceHeap and Label.
type HeapTypeImm struct {
	Heap      HeapType
	SourceHeap HeapType
	// SourceNullable/TargetNullable record the (null1, null2) bits
	// br_on_cast and br_on_cast_fail carry alongside the two heap types.
	SourceNullable bool
	TargetNullable bool
	Label          uint32 // valid for br_on_cast/br_on_cast_fail
}

// StructFieldImm is struct.get/set's (type index, field index) pair.
type StructFieldImm struct {
	TypeIndex  uint32
	FieldIndex uint32
}

// ArrayNewFixedImm is array.new_fixed's (type index, element count) pair.
type ArrayNewFixedImm struct {
	TypeIndex uint32
	Count     uint32
}

// CatchClause is one row of try_table's catch-clause vector.
type CatchClause struct {
	Kind  CatchKind
	Tag   uint32 // valid unless Kind is CatchAll/CatchAllRef
	Label uint32
}

type CatchKind byte

const (
	CatchTag CatchKind = iota
	CatchTagRef
	CatchAll
	CatchAllRef
)

// CatchImm is try_table's immediate: its block type plus catch clauses.
type CatchImm struct {
	BlockType BlockTypeImm
	Clauses   []CatchClause
}

// ResumeHandler is one `(on $tag $label)` or `(on $tag switch)` entry.
type ResumeHandler struct {
	Tag    uint32
	Label  uint32
	Switch bool
}

// ResumeTableImm is resume/resume_throw's handler list (§4.F "Resume
// tables") plus the continuation type index.
type ResumeTableImm struct {
	ContTypeIndex uint32
	Handlers      []ResumeHandler
}
