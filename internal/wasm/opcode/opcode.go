// Package opcode is the single source of truth for every Wasm instruction
// (§4.A): one Entry per opcode, consumed identically by the binary reader,
// the text lexer/parser, and the encoder. Adding or changing an instruction
// means editing exactly one row in table.go.
package opcode

// Proposal tags the originating Wasm proposal of an opcode, used for
// per-opcode feature gating (§4.A "Proposal filtering").
type Proposal string

const (
	ProposalMVP                      Proposal = "mvp"
	ProposalSIMD                     Proposal = "simd"
	ProposalGC                       Proposal = "gc"
	ProposalThreads                  Proposal = "threads"
	ProposalExceptions               Proposal = "exceptions"
	ProposalLegacyExceptions         Proposal = "legacy-exceptions"
	ProposalTailCall                 Proposal = "tail-call"
	ProposalReferenceTypes           Proposal = "reference-types"
	ProposalBulkMemory               Proposal = "bulk-memory"
	ProposalSignExtension            Proposal = "sign-extension"
	ProposalSaturatingFloatToInt     Proposal = "saturating-float-to-int"
	ProposalRelaxedSIMD              Proposal = "relaxed-simd"
	ProposalStackSwitching           Proposal = "stack-switching"
	ProposalWideArithmetic           Proposal = "wide-arithmetic"
	ProposalSharedEverythingThreads  Proposal = "shared-everything-threads"
	ProposalFunctionReferences       Proposal = "function-references"
	ProposalMemoryControl            Proposal = "memory-control"
)

// ratifiedProposals mirrors spec.md §6.5's default-enabled set; the rest
// (relaxed-simd, stack-switching, shared-everything-threads, wide-arithmetic,
// memory-control, legacy-exceptions) default off.
var ratifiedProposals = map[Proposal]bool{
	ProposalMVP:                  true,
	ProposalSIMD:                 true,
	ProposalGC:                   true,
	ProposalThreads:              true,
	ProposalExceptions:           true,
	ProposalTailCall:             true,
	ProposalReferenceTypes:       true,
	ProposalBulkMemory:           true,
	ProposalSignExtension:        true,
	ProposalSaturatingFloatToInt: true,
	ProposalFunctionReferences:   true,
}

// FeatureSet is the flat, non-hierarchical set of enabled proposals (§9
// "Feature flags as a set, not a hierarchy").
type FeatureSet map[Proposal]bool

// DefaultFeatures returns the ratified-as-of-this-revision set (§6.5).
func DefaultFeatures() FeatureSet {
	fs := make(FeatureSet, len(ratifiedProposals))
	for p, v := range ratifiedProposals {
		fs[p] = v
	}
	return fs
}

// Enabled reports whether p is turned on in fs; an unset proposal defaults to
// disabled, so a nil/zero-value FeatureSet enables nothing.
func (fs FeatureSet) Enabled(p Proposal) bool {
	return fs[p]
}

// With returns a copy of fs with p set to enabled.
func (fs FeatureSet) With(p Proposal) FeatureSet {
	out := make(FeatureSet, len(fs)+1)
	for k, v := range fs {
		out[k] = v
	}
	out[p] = true
	return out
}

// Without returns a copy of fs with p set to disabled.
func (fs FeatureSet) Without(p Proposal) FeatureSet {
	out := make(FeatureSet, len(fs)+1)
	for k, v := range fs {
		out[k] = v
	}
	out[p] = false
	return out
}

// ImmKind describes the shape of an opcode's immediate payload (§4.A); the
// binary reader, the text grammar, and the encoder all switch on it.
type ImmKind int

const (
	ImmNone ImmKind = iota
	ImmBlockType
	ImmIndex          // a single LEB128 u32 index (local, global, func, table, elem, data, type, tag, label)
	ImmIndex2         // two u32 indices (call_indirect: type+table; memory.init: data+mem; table.init: elem+table; memory/table.copy: dst+src)
	ImmMemArg         // (align, offset)
	ImmMemArgLane     // memarg + lane index (SIMD load_lane/store_lane)
	ImmBrTable        // vec(label) + default label
	ImmI32Const
	ImmI64Const
	ImmF32Const
	ImmF64Const
	ImmV128Const      // 16 bytes
	ImmLane           // single lane index byte
	ImmShuffle        // 16 lane index bytes
	ImmSelectTypes    // vec(valtype), possibly empty
	ImmHeapType       // ref.null, ref.test, ref.cast, ...
	ImmTagIndex       // throw, catch (single tag index)
	ImmCatch          // try_table's vec(catch clause)
	ImmResumeTable    // resume / resume_throw handler list
	ImmStructField    // type index + field index
	ImmArrayNewFixed  // type index + element count
	ImmByte           // a single raw byte immediate (rare; memory.discard's mem index uses ImmIndex instead)
)

// Arity is an opcode's symbolic stack effect (§3, §8 property 5). Custom
// arity opcodes (block/loop/if/call/call_indirect/return_call* /try_table/
// resume...) derive their effect from their immediates and are not checked
// by the simple simulator.
type Arity struct {
	In, Out int
	Custom  bool
}

func FixedArity(in, out int) Arity { return Arity{In: in, Out: out} }
func CustomArity() Arity           { return Arity{Custom: true} }

// Entry is one opcode-table row: the five artefacts named in §4.A.
type Entry struct {
	Mnemonic string
	Prefix   byte // 0 if HasPrefix is false
	HasPrefix bool
	Code     uint32 // single byte when !HasPrefix, else a LEB128 u32 sub-opcode
	Imm      ImmKind
	Arity    Arity
	Proposal Proposal
}

type codeKey struct {
	prefix    byte
	hasPrefix bool
	code      uint32
}

var (
	byMnemonic = map[string]*Entry{}
	byCode     = map[codeKey]*Entry{}
)

func init() {
	for i := range table {
		e := &table[i]
		if _, dup := byMnemonic[e.Mnemonic]; dup {
			panic("opcode: duplicate mnemonic " + e.Mnemonic)
		}
		byMnemonic[e.Mnemonic] = e
		key := codeKey{prefix: e.Prefix, hasPrefix: e.HasPrefix, code: e.Code}
		if _, dup := byCode[key]; dup {
			panic("opcode: duplicate (prefix,code) for " + e.Mnemonic)
		}
		byCode[key] = e
	}
}

// ByMnemonic looks up an opcode by its textual mnemonic (used by the lexer/
// parser, component D/F).
func ByMnemonic(mnemonic string) (*Entry, bool) {
	e, ok := byMnemonic[mnemonic]
	return e, ok
}

// ByCode looks up an opcode by its binary (prefix, code) pair (used by the
// operator reader, component C).
func ByCode(prefix byte, hasPrefix bool, code uint32) (*Entry, bool) {
	e, ok := byCode[codeKey{prefix: prefix, hasPrefix: hasPrefix, code: code}]
	return e, ok
}

// All returns every table row, for callers that need to enumerate the full
// opcode set (disassembly, fuzz-corpus generation, coverage tests — §4.A).
func All() []Entry {
	out := make([]Entry, len(table))
	copy(out, table)
	return out
}

// IsPrefixByte reports whether b is one of the four prefix bytes that
// introduce a LEB128-encoded sub-opcode (§6.2).
func IsPrefixByte(b byte) bool {
	switch b {
	case 0xFB, 0xFC, 0xFD, 0xFE:
		return true
	default:
		return false
	}
}
