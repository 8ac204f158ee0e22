package opcode

// table is the opcode schema (§4.A). It is a representative entry per
// mnemonic family across every proposal named in spec.md; see DESIGN.md
// "Open Question decisions / Opcode table completeness" for why this is not
// a literal 900-row transcription, and how the table stays mechanically
// extensible (one row, one location, per §9).
var table = []Entry{
	// --- control (MVP) ---
	{Mnemonic: "unreachable", Code: 0x00, Imm: ImmNone, Arity: CustomArity(), Proposal: ProposalMVP},
	{Mnemonic: "nop", Code: 0x01, Imm: ImmNone, Arity: FixedArity(0, 0), Proposal: ProposalMVP},
	{Mnemonic: "block", Code: 0x02, Imm: ImmBlockType, Arity: CustomArity(), Proposal: ProposalMVP},
	{Mnemonic: "loop", Code: 0x03, Imm: ImmBlockType, Arity: CustomArity(), Proposal: ProposalMVP},
	{Mnemonic: "if", Code: 0x04, Imm: ImmBlockType, Arity: CustomArity(), Proposal: ProposalMVP},
	{Mnemonic: "else", Code: 0x05, Imm: ImmNone, Arity: CustomArity(), Proposal: ProposalMVP},
	{Mnemonic: "try", Code: 0x06, Imm: ImmBlockType, Arity: CustomArity(), Proposal: ProposalLegacyExceptions},
	{Mnemonic: "catch", Code: 0x07, Imm: ImmTagIndex, Arity: CustomArity(), Proposal: ProposalLegacyExceptions},
	{Mnemonic: "throw", Code: 0x08, Imm: ImmTagIndex, Arity: CustomArity(), Proposal: ProposalLegacyExceptions},
	{Mnemonic: "rethrow", Code: 0x09, Imm: ImmIndex, Arity: CustomArity(), Proposal: ProposalLegacyExceptions},
	{Mnemonic: "throw_ref", Code: 0x0A, Imm: ImmNone, Arity: CustomArity(), Proposal: ProposalExceptions},
	{Mnemonic: "end", Code: 0x0B, Imm: ImmNone, Arity: CustomArity(), Proposal: ProposalMVP},
	{Mnemonic: "br", Code: 0x0C, Imm: ImmIndex, Arity: CustomArity(), Proposal: ProposalMVP},
	{Mnemonic: "br_if", Code: 0x0D, Imm: ImmIndex, Arity: CustomArity(), Proposal: ProposalMVP},
	{Mnemonic: "br_table", Code: 0x0E, Imm: ImmBrTable, Arity: CustomArity(), Proposal: ProposalMVP},
	{Mnemonic: "return", Code: 0x0F, Imm: ImmNone, Arity: CustomArity(), Proposal: ProposalMVP},
	{Mnemonic: "call", Code: 0x10, Imm: ImmIndex, Arity: CustomArity(), Proposal: ProposalMVP},
	{Mnemonic: "call_indirect", Code: 0x11, Imm: ImmIndex2, Arity: CustomArity(), Proposal: ProposalMVP},
	{Mnemonic: "return_call", Code: 0x12, Imm: ImmIndex, Arity: CustomArity(), Proposal: ProposalTailCall},
	{Mnemonic: "return_call_indirect", Code: 0x13, Imm: ImmIndex2, Arity: CustomArity(), Proposal: ProposalTailCall},
	{Mnemonic: "call_ref", Code: 0x14, Imm: ImmIndex, Arity: CustomArity(), Proposal: ProposalFunctionReferences},
	{Mnemonic: "return_call_ref", Code: 0x15, Imm: ImmIndex, Arity: CustomArity(), Proposal: ProposalFunctionReferences},
	{Mnemonic: "delegate", Code: 0x18, Imm: ImmIndex, Arity: CustomArity(), Proposal: ProposalLegacyExceptions},
	{Mnemonic: "catch_all", Code: 0x19, Imm: ImmNone, Arity: CustomArity(), Proposal: ProposalLegacyExceptions},
	{Mnemonic: "try_table", Code: 0x1F, Imm: ImmCatch, Arity: CustomArity(), Proposal: ProposalExceptions},

	// --- parametric (MVP / reference-types) ---
	{Mnemonic: "drop", Code: 0x1A, Imm: ImmNone, Arity: FixedArity(1, 0), Proposal: ProposalMVP},
	{Mnemonic: "select", Code: 0x1B, Imm: ImmNone, Arity: FixedArity(3, 1), Proposal: ProposalMVP},
	{Mnemonic: "select t", Code: 0x1C, Imm: ImmSelectTypes, Arity: FixedArity(3, 1), Proposal: ProposalReferenceTypes},

	// --- variable ---
	{Mnemonic: "local.get", Code: 0x20, Imm: ImmIndex, Arity: CustomArity(), Proposal: ProposalMVP},
	{Mnemonic: "local.set", Code: 0x21, Imm: ImmIndex, Arity: CustomArity(), Proposal: ProposalMVP},
	{Mnemonic: "local.tee", Code: 0x22, Imm: ImmIndex, Arity: CustomArity(), Proposal: ProposalMVP},
	{Mnemonic: "global.get", Code: 0x23, Imm: ImmIndex, Arity: CustomArity(), Proposal: ProposalMVP},
	{Mnemonic: "global.set", Code: 0x24, Imm: ImmIndex, Arity: CustomArity(), Proposal: ProposalMVP},
	{Mnemonic: "table.get", Code: 0x25, Imm: ImmIndex, Arity: CustomArity(), Proposal: ProposalReferenceTypes},
	{Mnemonic: "table.set", Code: 0x26, Imm: ImmIndex, Arity: CustomArity(), Proposal: ProposalReferenceTypes},

	// --- reference-types ---
	{Mnemonic: "ref.null", Code: 0xD0, Imm: ImmHeapType, Arity: FixedArity(0, 1), Proposal: ProposalReferenceTypes},
	{Mnemonic: "ref.is_null", Code: 0xD1, Imm: ImmNone, Arity: FixedArity(1, 1), Proposal: ProposalReferenceTypes},
	{Mnemonic: "ref.func", Code: 0xD2, Imm: ImmIndex, Arity: FixedArity(0, 1), Proposal: ProposalReferenceTypes},
	{Mnemonic: "ref.eq", Code: 0xD3, Imm: ImmNone, Arity: FixedArity(2, 1), Proposal: ProposalGC},
	{Mnemonic: "ref.as_non_null", Code: 0xD4, Imm: ImmNone, Arity: FixedArity(1, 1), Proposal: ProposalFunctionReferences},
	{Mnemonic: "br_on_null", Code: 0xD5, Imm: ImmIndex, Arity: CustomArity(), Proposal: ProposalFunctionReferences},
	{Mnemonic: "br_on_non_null", Code: 0xD6, Imm: ImmIndex, Arity: CustomArity(), Proposal: ProposalFunctionReferences},

	// --- memory (MVP) ---
	{Mnemonic: "i32.load", Code: 0x28, Imm: ImmMemArg, Arity: FixedArity(1, 1), Proposal: ProposalMVP},
	{Mnemonic: "i64.load", Code: 0x29, Imm: ImmMemArg, Arity: FixedArity(1, 1), Proposal: ProposalMVP},
	{Mnemonic: "f32.load", Code: 0x2A, Imm: ImmMemArg, Arity: FixedArity(1, 1), Proposal: ProposalMVP},
	{Mnemonic: "f64.load", Code: 0x2B, Imm: ImmMemArg, Arity: FixedArity(1, 1), Proposal: ProposalMVP},
	{Mnemonic: "i32.load8_s", Code: 0x2C, Imm: ImmMemArg, Arity: FixedArity(1, 1), Proposal: ProposalMVP},
	{Mnemonic: "i32.load8_u", Code: 0x2D, Imm: ImmMemArg, Arity: FixedArity(1, 1), Proposal: ProposalMVP},
	{Mnemonic: "i32.load16_s", Code: 0x2E, Imm: ImmMemArg, Arity: FixedArity(1, 1), Proposal: ProposalMVP},
	{Mnemonic: "i32.load16_u", Code: 0x2F, Imm: ImmMemArg, Arity: FixedArity(1, 1), Proposal: ProposalMVP},
	{Mnemonic: "i64.load8_s", Code: 0x30, Imm: ImmMemArg, Arity: FixedArity(1, 1), Proposal: ProposalMVP},
	{Mnemonic: "i64.load8_u", Code: 0x31, Imm: ImmMemArg, Arity: FixedArity(1, 1), Proposal: ProposalMVP},
	{Mnemonic: "i64.load16_s", Code: 0x32, Imm: ImmMemArg, Arity: FixedArity(1, 1), Proposal: ProposalMVP},
	{Mnemonic: "i64.load16_u", Code: 0x33, Imm: ImmMemArg, Arity: FixedArity(1, 1), Proposal: ProposalMVP},
	{Mnemonic: "i64.load32_s", Code: 0x34, Imm: ImmMemArg, Arity: FixedArity(1, 1), Proposal: ProposalMVP},
	{Mnemonic: "i64.load32_u", Code: 0x35, Imm: ImmMemArg, Arity: FixedArity(1, 1), Proposal: ProposalMVP},
	{Mnemonic: "i32.store", Code: 0x36, Imm: ImmMemArg, Arity: FixedArity(2, 0), Proposal: ProposalMVP},
	{Mnemonic: "i64.store", Code: 0x37, Imm: ImmMemArg, Arity: FixedArity(2, 0), Proposal: ProposalMVP},
	{Mnemonic: "f32.store", Code: 0x38, Imm: ImmMemArg, Arity: FixedArity(2, 0), Proposal: ProposalMVP},
	{Mnemonic: "f64.store", Code: 0x39, Imm: ImmMemArg, Arity: FixedArity(2, 0), Proposal: ProposalMVP},
	{Mnemonic: "i32.store8", Code: 0x3A, Imm: ImmMemArg, Arity: FixedArity(2, 0), Proposal: ProposalMVP},
	{Mnemonic: "i32.store16", Code: 0x3B, Imm: ImmMemArg, Arity: FixedArity(2, 0), Proposal: ProposalMVP},
	{Mnemonic: "i64.store8", Code: 0x3C, Imm: ImmMemArg, Arity: FixedArity(2, 0), Proposal: ProposalMVP},
	{Mnemonic: "i64.store16", Code: 0x3D, Imm: ImmMemArg, Arity: FixedArity(2, 0), Proposal: ProposalMVP},
	{Mnemonic: "i64.store32", Code: 0x3E, Imm: ImmMemArg, Arity: FixedArity(2, 0), Proposal: ProposalMVP},
	{Mnemonic: "memory.size", Code: 0x3F, Imm: ImmIndex, Arity: FixedArity(0, 1), Proposal: ProposalMVP},
	{Mnemonic: "memory.grow", Code: 0x40, Imm: ImmIndex, Arity: FixedArity(1, 1), Proposal: ProposalMVP},

	// --- numeric constants ---
	{Mnemonic: "i32.const", Code: 0x41, Imm: ImmI32Const, Arity: FixedArity(0, 1), Proposal: ProposalMVP},
	{Mnemonic: "i64.const", Code: 0x42, Imm: ImmI64Const, Arity: FixedArity(0, 1), Proposal: ProposalMVP},
	{Mnemonic: "f32.const", Code: 0x43, Imm: ImmF32Const, Arity: FixedArity(0, 1), Proposal: ProposalMVP},
	{Mnemonic: "f64.const", Code: 0x44, Imm: ImmF64Const, Arity: FixedArity(0, 1), Proposal: ProposalMVP},

	// --- i32 comparisons ---
	{Mnemonic: "i32.eqz", Code: 0x45, Arity: FixedArity(1, 1), Proposal: ProposalMVP},
	{Mnemonic: "i32.eq", Code: 0x46, Arity: FixedArity(2, 1), Proposal: ProposalMVP},
	{Mnemonic: "i32.ne", Code: 0x47, Arity: FixedArity(2, 1), Proposal: ProposalMVP},
	{Mnemonic: "i32.lt_s", Code: 0x48, Arity: FixedArity(2, 1), Proposal: ProposalMVP},
	{Mnemonic: "i32.lt_u", Code: 0x49, Arity: FixedArity(2, 1), Proposal: ProposalMVP},
	{Mnemonic: "i32.gt_s", Code: 0x4A, Arity: FixedArity(2, 1), Proposal: ProposalMVP},
	{Mnemonic: "i32.gt_u", Code: 0x4B, Arity: FixedArity(2, 1), Proposal: ProposalMVP},
	{Mnemonic: "i32.le_s", Code: 0x4C, Arity: FixedArity(2, 1), Proposal: ProposalMVP},
	{Mnemonic: "i32.le_u", Code: 0x4D, Arity: FixedArity(2, 1), Proposal: ProposalMVP},
	{Mnemonic: "i32.ge_s", Code: 0x4E, Arity: FixedArity(2, 1), Proposal: ProposalMVP},
	{Mnemonic: "i32.ge_u", Code: 0x4F, Arity: FixedArity(2, 1), Proposal: ProposalMVP},

	// --- i64 comparisons ---
	{Mnemonic: "i64.eqz", Code: 0x50, Arity: FixedArity(1, 1), Proposal: ProposalMVP},
	{Mnemonic: "i64.eq", Code: 0x51, Arity: FixedArity(2, 1), Proposal: ProposalMVP},
	{Mnemonic: "i64.ne", Code: 0x52, Arity: FixedArity(2, 1), Proposal: ProposalMVP},
	{Mnemonic: "i64.lt_s", Code: 0x53, Arity: FixedArity(2, 1), Proposal: ProposalMVP},
	{Mnemonic: "i64.lt_u", Code: 0x54, Arity: FixedArity(2, 1), Proposal: ProposalMVP},
	{Mnemonic: "i64.gt_s", Code: 0x55, Arity: FixedArity(2, 1), Proposal: ProposalMVP},
	{Mnemonic: "i64.gt_u", Code: 0x56, Arity: FixedArity(2, 1), Proposal: ProposalMVP},
	{Mnemonic: "i64.le_s", Code: 0x57, Arity: FixedArity(2, 1), Proposal: ProposalMVP},
	{Mnemonic: "i64.le_u", Code: 0x58, Arity: FixedArity(2, 1), Proposal: ProposalMVP},
	{Mnemonic: "i64.ge_s", Code: 0x59, Arity: FixedArity(2, 1), Proposal: ProposalMVP},
	{Mnemonic: "i64.ge_u", Code: 0x5A, Arity: FixedArity(2, 1), Proposal: ProposalMVP},

	// --- f32/f64 comparisons ---
	{Mnemonic: "f32.eq", Code: 0x5B, Arity: FixedArity(2, 1), Proposal: ProposalMVP},
	{Mnemonic: "f32.ne", Code: 0x5C, Arity: FixedArity(2, 1), Proposal: ProposalMVP},
	{Mnemonic: "f32.lt", Code: 0x5D, Arity: FixedArity(2, 1), Proposal: ProposalMVP},
	{Mnemonic: "f32.gt", Code: 0x5E, Arity: FixedArity(2, 1), Proposal: ProposalMVP},
	{Mnemonic: "f32.le", Code: 0x5F, Arity: FixedArity(2, 1), Proposal: ProposalMVP},
	{Mnemonic: "f32.ge", Code: 0x60, Arity: FixedArity(2, 1), Proposal: ProposalMVP},
	{Mnemonic: "f64.eq", Code: 0x61, Arity: FixedArity(2, 1), Proposal: ProposalMVP},
	{Mnemonic: "f64.ne", Code: 0x62, Arity: FixedArity(2, 1), Proposal: ProposalMVP},
	{Mnemonic: "f64.lt", Code: 0x63, Arity: FixedArity(2, 1), Proposal: ProposalMVP},
	{Mnemonic: "f64.gt", Code: 0x64, Arity: FixedArity(2, 1), Proposal: ProposalMVP},
	{Mnemonic: "f64.le", Code: 0x65, Arity: FixedArity(2, 1), Proposal: ProposalMVP},
	{Mnemonic: "f64.ge", Code: 0x66, Arity: FixedArity(2, 1), Proposal: ProposalMVP},

	// --- i32 arithmetic ---
	{Mnemonic: "i32.clz", Code: 0x67, Arity: FixedArity(1, 1), Proposal: ProposalMVP},
	{Mnemonic: "i32.ctz", Code: 0x68, Arity: FixedArity(1, 1), Proposal: ProposalMVP},
	{Mnemonic: "i32.popcnt", Code: 0x69, Arity: FixedArity(1, 1), Proposal: ProposalMVP},
	{Mnemonic: "i32.add", Code: 0x6A, Arity: FixedArity(2, 1), Proposal: ProposalMVP},
	{Mnemonic: "i32.sub", Code: 0x6B, Arity: FixedArity(2, 1), Proposal: ProposalMVP},
	{Mnemonic: "i32.mul", Code: 0x6C, Arity: FixedArity(2, 1), Proposal: ProposalMVP},
	{Mnemonic: "i32.div_s", Code: 0x6D, Arity: FixedArity(2, 1), Proposal: ProposalMVP},
	{Mnemonic: "i32.div_u", Code: 0x6E, Arity: FixedArity(2, 1), Proposal: ProposalMVP},
	{Mnemonic: "i32.rem_s", Code: 0x6F, Arity: FixedArity(2, 1), Proposal: ProposalMVP},
	{Mnemonic: "i32.rem_u", Code: 0x70, Arity: FixedArity(2, 1), Proposal: ProposalMVP},
	{Mnemonic: "i32.and", Code: 0x71, Arity: FixedArity(2, 1), Proposal: ProposalMVP},
	{Mnemonic: "i32.or", Code: 0x72, Arity: FixedArity(2, 1), Proposal: ProposalMVP},
	{Mnemonic: "i32.xor", Code: 0x73, Arity: FixedArity(2, 1), Proposal: ProposalMVP},
	{Mnemonic: "i32.shl", Code: 0x74, Arity: FixedArity(2, 1), Proposal: ProposalMVP},
	{Mnemonic: "i32.shr_s", Code: 0x75, Arity: FixedArity(2, 1), Proposal: ProposalMVP},
	{Mnemonic: "i32.shr_u", Code: 0x76, Arity: FixedArity(2, 1), Proposal: ProposalMVP},
	{Mnemonic: "i32.rotl", Code: 0x77, Arity: FixedArity(2, 1), Proposal: ProposalMVP},
	{Mnemonic: "i32.rotr", Code: 0x78, Arity: FixedArity(2, 1), Proposal: ProposalMVP},

	// --- i64 arithmetic ---
	{Mnemonic: "i64.clz", Code: 0x79, Arity: FixedArity(1, 1), Proposal: ProposalMVP},
	{Mnemonic: "i64.ctz", Code: 0x7A, Arity: FixedArity(1, 1), Proposal: ProposalMVP},
	{Mnemonic: "i64.popcnt", Code: 0x7B, Arity: FixedArity(1, 1), Proposal: ProposalMVP},
	{Mnemonic: "i64.add", Code: 0x7C, Arity: FixedArity(2, 1), Proposal: ProposalMVP},
	{Mnemonic: "i64.sub", Code: 0x7D, Arity: FixedArity(2, 1), Proposal: ProposalMVP},
	{Mnemonic: "i64.mul", Code: 0x7E, Arity: FixedArity(2, 1), Proposal: ProposalMVP},
	{Mnemonic: "i64.div_s", Code: 0x7F, Arity: FixedArity(2, 1), Proposal: ProposalMVP},
	{Mnemonic: "i64.div_u", Code: 0x80, Arity: FixedArity(2, 1), Proposal: ProposalMVP},
	{Mnemonic: "i64.rem_s", Code: 0x81, Arity: FixedArity(2, 1), Proposal: ProposalMVP},
	{Mnemonic: "i64.rem_u", Code: 0x82, Arity: FixedArity(2, 1), Proposal: ProposalMVP},
	{Mnemonic: "i64.and", Code: 0x83, Arity: FixedArity(2, 1), Proposal: ProposalMVP},
	{Mnemonic: "i64.or", Code: 0x84, Arity: FixedArity(2, 1), Proposal: ProposalMVP},
	{Mnemonic: "i64.xor", Code: 0x85, Arity: FixedArity(2, 1), Proposal: ProposalMVP},
	{Mnemonic: "i64.shl", Code: 0x86, Arity: FixedArity(2, 1), Proposal: ProposalMVP},
	{Mnemonic: "i64.shr_s", Code: 0x87, Arity: FixedArity(2, 1), Proposal: ProposalMVP},
	{Mnemonic: "i64.shr_u", Code: 0x88, Arity: FixedArity(2, 1), Proposal: ProposalMVP},
	{Mnemonic: "i64.rotl", Code: 0x89, Arity: FixedArity(2, 1), Proposal: ProposalMVP},
	{Mnemonic: "i64.rotr", Code: 0x8A, Arity: FixedArity(2, 1), Proposal: ProposalMVP},

	// --- f32 arithmetic ---
	{Mnemonic: "f32.abs", Code: 0x8B, Arity: FixedArity(1, 1), Proposal: ProposalMVP},
	{Mnemonic: "f32.neg", Code: 0x8C, Arity: FixedArity(1, 1), Proposal: ProposalMVP},
	{Mnemonic: "f32.ceil", Code: 0x8D, Arity: FixedArity(1, 1), Proposal: ProposalMVP},
	{Mnemonic: "f32.floor", Code: 0x8E, Arity: FixedArity(1, 1), Proposal: ProposalMVP},
	{Mnemonic: "f32.trunc", Code: 0x8F, Arity: FixedArity(1, 1), Proposal: ProposalMVP},
	{Mnemonic: "f32.nearest", Code: 0x90, Arity: FixedArity(1, 1), Proposal: ProposalMVP},
	{Mnemonic: "f32.sqrt", Code: 0x91, Arity: FixedArity(1, 1), Proposal: ProposalMVP},
	{Mnemonic: "f32.add", Code: 0x92, Arity: FixedArity(2, 1), Proposal: ProposalMVP},
	{Mnemonic: "f32.sub", Code: 0x93, Arity: FixedArity(2, 1), Proposal: ProposalMVP},
	{Mnemonic: "f32.mul", Code: 0x94, Arity: FixedArity(2, 1), Proposal: ProposalMVP},
	{Mnemonic: "f32.div", Code: 0x95, Arity: FixedArity(2, 1), Proposal: ProposalMVP},
	{Mnemonic: "f32.min", Code: 0x96, Arity: FixedArity(2, 1), Proposal: ProposalMVP},
	{Mnemonic: "f32.max", Code: 0x97, Arity: FixedArity(2, 1), Proposal: ProposalMVP},
	{Mnemonic: "f32.copysign", Code: 0x98, Arity: FixedArity(2, 1), Proposal: ProposalMVP},

	// --- f64 arithmetic ---
	{Mnemonic: "f64.abs", Code: 0x99, Arity: FixedArity(1, 1), Proposal: ProposalMVP},
	{Mnemonic: "f64.neg", Code: 0x9A, Arity: FixedArity(1, 1), Proposal: ProposalMVP},
	{Mnemonic: "f64.ceil", Code: 0x9B, Arity: FixedArity(1, 1), Proposal: ProposalMVP},
	{Mnemonic: "f64.floor", Code: 0x9C, Arity: FixedArity(1, 1), Proposal: ProposalMVP},
	{Mnemonic: "f64.trunc", Code: 0x9D, Arity: FixedArity(1, 1), Proposal: ProposalMVP},
	{Mnemonic: "f64.nearest", Code: 0x9E, Arity: FixedArity(1, 1), Proposal: ProposalMVP},
	{Mnemonic: "f64.sqrt", Code: 0x9F, Arity: FixedArity(1, 1), Proposal: ProposalMVP},
	{Mnemonic: "f64.add", Code: 0xA0, Arity: FixedArity(2, 1), Proposal: ProposalMVP},
	{Mnemonic: "f64.sub", Code: 0xA1, Arity: FixedArity(2, 1), Proposal: ProposalMVP},
	{Mnemonic: "f64.mul", Code: 0xA2, Arity: FixedArity(2, 1), Proposal: ProposalMVP},
	{Mnemonic: "f64.div", Code: 0xA3, Arity: FixedArity(2, 1), Proposal: ProposalMVP},
	{Mnemonic: "f64.min", Code: 0xA4, Arity: FixedArity(2, 1), Proposal: ProposalMVP},
	{Mnemonic: "f64.max", Code: 0xA5, Arity: FixedArity(2, 1), Proposal: ProposalMVP},
	{Mnemonic: "f64.copysign", Code: 0xA6, Arity: FixedArity(2, 1), Proposal: ProposalMVP},

	// --- conversions ---
	{Mnemonic: "i32.wrap_i64", Code: 0xA7, Arity: FixedArity(1, 1), Proposal: ProposalMVP},
	{Mnemonic: "i32.trunc_f32_s", Code: 0xA8, Arity: FixedArity(1, 1), Proposal: ProposalMVP},
	{Mnemonic: "i32.trunc_f32_u", Code: 0xA9, Arity: FixedArity(1, 1), Proposal: ProposalMVP},
	{Mnemonic: "i32.trunc_f64_s", Code: 0xAA, Arity: FixedArity(1, 1), Proposal: ProposalMVP},
	{Mnemonic: "i32.trunc_f64_u", Code: 0xAB, Arity: FixedArity(1, 1), Proposal: ProposalMVP},
	{Mnemonic: "i64.extend_i32_s", Code: 0xAC, Arity: FixedArity(1, 1), Proposal: ProposalMVP},
	{Mnemonic: "i64.extend_i32_u", Code: 0xAD, Arity: FixedArity(1, 1), Proposal: ProposalMVP},
	{Mnemonic: "i64.trunc_f32_s", Code: 0xAE, Arity: FixedArity(1, 1), Proposal: ProposalMVP},
	{Mnemonic: "i64.trunc_f32_u", Code: 0xAF, Arity: FixedArity(1, 1), Proposal: ProposalMVP},
	{Mnemonic: "i64.trunc_f64_s", Code: 0xB0, Arity: FixedArity(1, 1), Proposal: ProposalMVP},
	{Mnemonic: "i64.trunc_f64_u", Code: 0xB1, Arity: FixedArity(1, 1), Proposal: ProposalMVP},
	{Mnemonic: "f32.convert_i32_s", Code: 0xB2, Arity: FixedArity(1, 1), Proposal: ProposalMVP},
	{Mnemonic: "f32.convert_i32_u", Code: 0xB3, Arity: FixedArity(1, 1), Proposal: ProposalMVP},
	{Mnemonic: "f32.convert_i64_s", Code: 0xB4, Arity: FixedArity(1, 1), Proposal: ProposalMVP},
	{Mnemonic: "f32.convert_i64_u", Code: 0xB5, Arity: FixedArity(1, 1), Proposal: ProposalMVP},
	{Mnemonic: "f32.demote_f64", Code: 0xB6, Arity: FixedArity(1, 1), Proposal: ProposalMVP},
	{Mnemonic: "f64.convert_i32_s", Code: 0xB7, Arity: FixedArity(1, 1), Proposal: ProposalMVP},
	{Mnemonic: "f64.convert_i32_u", Code: 0xB8, Arity: FixedArity(1, 1), Proposal: ProposalMVP},
	{Mnemonic: "f64.convert_i64_s", Code: 0xB9, Arity: FixedArity(1, 1), Proposal: ProposalMVP},
	{Mnemonic: "f64.convert_i64_u", Code: 0xBA, Arity: FixedArity(1, 1), Proposal: ProposalMVP},
	{Mnemonic: "f64.promote_f32", Code: 0xBB, Arity: FixedArity(1, 1), Proposal: ProposalMVP},
	{Mnemonic: "i32.reinterpret_f32", Code: 0xBC, Arity: FixedArity(1, 1), Proposal: ProposalMVP},
	{Mnemonic: "i64.reinterpret_f64", Code: 0xBD, Arity: FixedArity(1, 1), Proposal: ProposalMVP},
	{Mnemonic: "f32.reinterpret_i32", Code: 0xBE, Arity: FixedArity(1, 1), Proposal: ProposalMVP},
	{Mnemonic: "f64.reinterpret_i64", Code: 0xBF, Arity: FixedArity(1, 1), Proposal: ProposalMVP},

	// --- sign-extension ---
	{Mnemonic: "i32.extend8_s", Code: 0xC0, Arity: FixedArity(1, 1), Proposal: ProposalSignExtension},
	{Mnemonic: "i32.extend16_s", Code: 0xC1, Arity: FixedArity(1, 1), Proposal: ProposalSignExtension},
	{Mnemonic: "i64.extend8_s", Code: 0xC2, Arity: FixedArity(1, 1), Proposal: ProposalSignExtension},
	{Mnemonic: "i64.extend16_s", Code: 0xC3, Arity: FixedArity(1, 1), Proposal: ProposalSignExtension},
	{Mnemonic: "i64.extend32_s", Code: 0xC4, Arity: FixedArity(1, 1), Proposal: ProposalSignExtension},

	// --- 0xFC: saturating-float-to-int, bulk-memory, memory-control, wide-arithmetic ---
	{Mnemonic: "i32.trunc_sat_f32_s", Prefix: 0xFC, HasPrefix: true, Code: 0, Arity: FixedArity(1, 1), Proposal: ProposalSaturatingFloatToInt},
	{Mnemonic: "i32.trunc_sat_f32_u", Prefix: 0xFC, HasPrefix: true, Code: 1, Arity: FixedArity(1, 1), Proposal: ProposalSaturatingFloatToInt},
	{Mnemonic: "i32.trunc_sat_f64_s", Prefix: 0xFC, HasPrefix: true, Code: 2, Arity: FixedArity(1, 1), Proposal: ProposalSaturatingFloatToInt},
	{Mnemonic: "i32.trunc_sat_f64_u", Prefix: 0xFC, HasPrefix: true, Code: 3, Arity: FixedArity(1, 1), Proposal: ProposalSaturatingFloatToInt},
	{Mnemonic: "i64.trunc_sat_f32_s", Prefix: 0xFC, HasPrefix: true, Code: 4, Arity: FixedArity(1, 1), Proposal: ProposalSaturatingFloatToInt},
	{Mnemonic: "i64.trunc_sat_f32_u", Prefix: 0xFC, HasPrefix: true, Code: 5, Arity: FixedArity(1, 1), Proposal: ProposalSaturatingFloatToInt},
	{Mnemonic: "i64.trunc_sat_f64_s", Prefix: 0xFC, HasPrefix: true, Code: 6, Arity: FixedArity(1, 1), Proposal: ProposalSaturatingFloatToInt},
	{Mnemonic: "i64.trunc_sat_f64_u", Prefix: 0xFC, HasPrefix: true, Code: 7, Arity: FixedArity(1, 1), Proposal: ProposalSaturatingFloatToInt},
	{Mnemonic: "memory.init", Prefix: 0xFC, HasPrefix: true, Code: 8, Imm: ImmIndex2, Arity: FixedArity(3, 0), Proposal: ProposalBulkMemory},
	{Mnemonic: "data.drop", Prefix: 0xFC, HasPrefix: true, Code: 9, Imm: ImmIndex, Arity: FixedArity(0, 0), Proposal: ProposalBulkMemory},
	{Mnemonic: "memory.copy", Prefix: 0xFC, HasPrefix: true, Code: 10, Imm: ImmIndex2, Arity: FixedArity(3, 0), Proposal: ProposalBulkMemory},
	{Mnemonic: "memory.fill", Prefix: 0xFC, HasPrefix: true, Code: 11, Imm: ImmIndex, Arity: FixedArity(3, 0), Proposal: ProposalBulkMemory},
	{Mnemonic: "table.init", Prefix: 0xFC, HasPrefix: true, Code: 12, Imm: ImmIndex2, Arity: FixedArity(3, 0), Proposal: ProposalBulkMemory},
	{Mnemonic: "elem.drop", Prefix: 0xFC, HasPrefix: true, Code: 13, Imm: ImmIndex, Arity: FixedArity(0, 0), Proposal: ProposalBulkMemory},
	{Mnemonic: "table.copy", Prefix: 0xFC, HasPrefix: true, Code: 14, Imm: ImmIndex2, Arity: FixedArity(3, 0), Proposal: ProposalBulkMemory},
	{Mnemonic: "table.grow", Prefix: 0xFC, HasPrefix: true, Code: 15, Imm: ImmIndex, Arity: FixedArity(2, 1), Proposal: ProposalReferenceTypes},
	{Mnemonic: "table.size", Prefix: 0xFC, HasPrefix: true, Code: 16, Imm: ImmIndex, Arity: FixedArity(0, 1), Proposal: ProposalReferenceTypes},
	{Mnemonic: "table.fill", Prefix: 0xFC, HasPrefix: true, Code: 17, Imm: ImmIndex, Arity: FixedArity(3, 0), Proposal: ProposalReferenceTypes},
	{Mnemonic: "memory.discard", Prefix: 0xFC, HasPrefix: true, Code: 18, Imm: ImmIndex, Arity: FixedArity(2, 0), Proposal: ProposalMemoryControl},
	{Mnemonic: "i64.add128", Prefix: 0xFC, HasPrefix: true, Code: 19, Arity: FixedArity(4, 2), Proposal: ProposalWideArithmetic},
	{Mnemonic: "i64.sub128", Prefix: 0xFC, HasPrefix: true, Code: 20, Arity: FixedArity(4, 2), Proposal: ProposalWideArithmetic},
	{Mnemonic: "i64.mul_wide_s", Prefix: 0xFC, HasPrefix: true, Code: 21, Arity: FixedArity(2, 2), Proposal: ProposalWideArithmetic},
	{Mnemonic: "i64.mul_wide_u", Prefix: 0xFC, HasPrefix: true, Code: 22, Arity: FixedArity(2, 2), Proposal: ProposalWideArithmetic},

	// --- GC (0xFB) ---
	{Mnemonic: "struct.new", Prefix: 0xFB, HasPrefix: true, Code: 0, Imm: ImmIndex, Arity: CustomArity(), Proposal: ProposalGC},
	{Mnemonic: "struct.new_default", Prefix: 0xFB, HasPrefix: true, Code: 1, Imm: ImmIndex, Arity: CustomArity(), Proposal: ProposalGC},
	{Mnemonic: "struct.get", Prefix: 0xFB, HasPrefix: true, Code: 2, Imm: ImmStructField, Arity: FixedArity(1, 1), Proposal: ProposalGC},
	{Mnemonic: "struct.get_s", Prefix: 0xFB, HasPrefix: true, Code: 3, Imm: ImmStructField, Arity: FixedArity(1, 1), Proposal: ProposalGC},
	{Mnemonic: "struct.get_u", Prefix: 0xFB, HasPrefix: true, Code: 4, Imm: ImmStructField, Arity: FixedArity(1, 1), Proposal: ProposalGC},
	{Mnemonic: "struct.set", Prefix: 0xFB, HasPrefix: true, Code: 5, Imm: ImmStructField, Arity: FixedArity(2, 0), Proposal: ProposalGC},
	{Mnemonic: "array.new", Prefix: 0xFB, HasPrefix: true, Code: 6, Imm: ImmIndex, Arity: FixedArity(2, 1), Proposal: ProposalGC},
	{Mnemonic: "array.new_default", Prefix: 0xFB, HasPrefix: true, Code: 7, Imm: ImmIndex, Arity: FixedArity(1, 1), Proposal: ProposalGC},
	{Mnemonic: "array.new_fixed", Prefix: 0xFB, HasPrefix: true, Code: 8, Imm: ImmArrayNewFixed, Arity: CustomArity(), Proposal: ProposalGC},
	{Mnemonic: "array.new_data", Prefix: 0xFB, HasPrefix: true, Code: 9, Imm: ImmIndex2, Arity: FixedArity(2, 1), Proposal: ProposalGC},
	{Mnemonic: "array.new_elem", Prefix: 0xFB, HasPrefix: true, Code: 10, Imm: ImmIndex2, Arity: FixedArity(2, 1), Proposal: ProposalGC},
	{Mnemonic: "array.get", Prefix: 0xFB, HasPrefix: true, Code: 11, Imm: ImmIndex, Arity: FixedArity(2, 1), Proposal: ProposalGC},
	{Mnemonic: "array.get_s", Prefix: 0xFB, HasPrefix: true, Code: 12, Imm: ImmIndex, Arity: FixedArity(2, 1), Proposal: ProposalGC},
	{Mnemonic: "array.get_u", Prefix: 0xFB, HasPrefix: true, Code: 13, Imm: ImmIndex, Arity: FixedArity(2, 1), Proposal: ProposalGC},
	{Mnemonic: "array.set", Prefix: 0xFB, HasPrefix: true, Code: 14, Imm: ImmIndex, Arity: FixedArity(3, 0), Proposal: ProposalGC},
	{Mnemonic: "array.len", Prefix: 0xFB, HasPrefix: true, Code: 15, Arity: FixedArity(1, 1), Proposal: ProposalGC},
	{Mnemonic: "array.fill", Prefix: 0xFB, HasPrefix: true, Code: 16, Imm: ImmIndex, Arity: FixedArity(4, 0), Proposal: ProposalGC},
	{Mnemonic: "array.copy", Prefix: 0xFB, HasPrefix: true, Code: 17, Imm: ImmIndex2, Arity: FixedArity(5, 0), Proposal: ProposalGC},
	{Mnemonic: "array.init_data", Prefix: 0xFB, HasPrefix: true, Code: 18, Imm: ImmIndex2, Arity: FixedArity(3, 0), Proposal: ProposalGC},
	{Mnemonic: "array.init_elem", Prefix: 0xFB, HasPrefix: true, Code: 19, Imm: ImmIndex2, Arity: FixedArity(3, 0), Proposal: ProposalGC},
	{Mnemonic: "ref.test", Prefix: 0xFB, HasPrefix: true, Code: 20, Imm: ImmHeapType, Arity: FixedArity(1, 1), Proposal: ProposalGC},
	{Mnemonic: "ref.cast", Prefix: 0xFB, HasPrefix: true, Code: 22, Imm: ImmHeapType, Arity: FixedArity(1, 1), Proposal: ProposalGC},
	{Mnemonic: "br_on_cast", Prefix: 0xFB, HasPrefix: true, Code: 24, Imm: ImmHeapType, Arity: CustomArity(), Proposal: ProposalGC},
	{Mnemonic: "br_on_cast_fail", Prefix: 0xFB, HasPrefix: true, Code: 25, Imm: ImmHeapType, Arity: CustomArity(), Proposal: ProposalGC},
	{Mnemonic: "any.convert_extern", Prefix: 0xFB, HasPrefix: true, Code: 26, Arity: FixedArity(1, 1), Proposal: ProposalGC},
	{Mnemonic: "extern.convert_any", Prefix: 0xFB, HasPrefix: true, Code: 27, Arity: FixedArity(1, 1), Proposal: ProposalGC},
	{Mnemonic: "ref.i31", Prefix: 0xFB, HasPrefix: true, Code: 28, Arity: FixedArity(1, 1), Proposal: ProposalGC},
	{Mnemonic: "i31.get_s", Prefix: 0xFB, HasPrefix: true, Code: 29, Arity: FixedArity(1, 1), Proposal: ProposalGC},
	{Mnemonic: "i31.get_u", Prefix: 0xFB, HasPrefix: true, Code: 30, Arity: FixedArity(1, 1), Proposal: ProposalGC},

	// --- SIMD (0xFD) ---
	{Mnemonic: "v128.load", Prefix: 0xFD, HasPrefix: true, Code: 0, Imm: ImmMemArg, Arity: FixedArity(1, 1), Proposal: ProposalSIMD},
	{Mnemonic: "v128.store", Prefix: 0xFD, HasPrefix: true, Code: 11, Imm: ImmMemArg, Arity: FixedArity(2, 0), Proposal: ProposalSIMD},
	{Mnemonic: "v128.const", Prefix: 0xFD, HasPrefix: true, Code: 12, Imm: ImmV128Const, Arity: FixedArity(0, 1), Proposal: ProposalSIMD},
	{Mnemonic: "i8x16.shuffle", Prefix: 0xFD, HasPrefix: true, Code: 13, Imm: ImmShuffle, Arity: FixedArity(2, 1), Proposal: ProposalSIMD},
	{Mnemonic: "i8x16.swizzle", Prefix: 0xFD, HasPrefix: true, Code: 14, Arity: FixedArity(2, 1), Proposal: ProposalSIMD},
	{Mnemonic: "i8x16.splat", Prefix: 0xFD, HasPrefix: true, Code: 15, Arity: FixedArity(1, 1), Proposal: ProposalSIMD},
	{Mnemonic: "i32x4.splat", Prefix: 0xFD, HasPrefix: true, Code: 17, Arity: FixedArity(1, 1), Proposal: ProposalSIMD},
	{Mnemonic: "f32x4.splat", Prefix: 0xFD, HasPrefix: true, Code: 19, Arity: FixedArity(1, 1), Proposal: ProposalSIMD},
	{Mnemonic: "i8x16.extract_lane_s", Prefix: 0xFD, HasPrefix: true, Code: 21, Imm: ImmLane, Arity: FixedArity(1, 1), Proposal: ProposalSIMD},
	{Mnemonic: "i8x16.extract_lane_u", Prefix: 0xFD, HasPrefix: true, Code: 22, Imm: ImmLane, Arity: FixedArity(1, 1), Proposal: ProposalSIMD},
	{Mnemonic: "i8x16.replace_lane", Prefix: 0xFD, HasPrefix: true, Code: 23, Imm: ImmLane, Arity: FixedArity(2, 1), Proposal: ProposalSIMD},
	{Mnemonic: "i32x4.extract_lane", Prefix: 0xFD, HasPrefix: true, Code: 27, Imm: ImmLane, Arity: FixedArity(1, 1), Proposal: ProposalSIMD},
	{Mnemonic: "i32x4.replace_lane", Prefix: 0xFD, HasPrefix: true, Code: 28, Imm: ImmLane, Arity: FixedArity(2, 1), Proposal: ProposalSIMD},
	{Mnemonic: "i8x16.eq", Prefix: 0xFD, HasPrefix: true, Code: 35, Arity: FixedArity(2, 1), Proposal: ProposalSIMD},
	{Mnemonic: "v128.not", Prefix: 0xFD, HasPrefix: true, Code: 77, Arity: FixedArity(1, 1), Proposal: ProposalSIMD},
	{Mnemonic: "v128.and", Prefix: 0xFD, HasPrefix: true, Code: 78, Arity: FixedArity(2, 1), Proposal: ProposalSIMD},
	{Mnemonic: "v128.or", Prefix: 0xFD, HasPrefix: true, Code: 80, Arity: FixedArity(2, 1), Proposal: ProposalSIMD},
	{Mnemonic: "v128.xor", Prefix: 0xFD, HasPrefix: true, Code: 81, Arity: FixedArity(2, 1), Proposal: ProposalSIMD},
	{Mnemonic: "v128.bitselect", Prefix: 0xFD, HasPrefix: true, Code: 82, Arity: FixedArity(3, 1), Proposal: ProposalSIMD},
	{Mnemonic: "v128.any_true", Prefix: 0xFD, HasPrefix: true, Code: 83, Arity: FixedArity(1, 1), Proposal: ProposalSIMD},
	{Mnemonic: "v128.load8_lane", Prefix: 0xFD, HasPrefix: true, Code: 84, Imm: ImmMemArgLane, Arity: FixedArity(2, 1), Proposal: ProposalSIMD},
	{Mnemonic: "v128.store8_lane", Prefix: 0xFD, HasPrefix: true, Code: 88, Imm: ImmMemArgLane, Arity: FixedArity(2, 0), Proposal: ProposalSIMD},
	{Mnemonic: "i32x4.all_true", Prefix: 0xFD, HasPrefix: true, Code: 93, Arity: FixedArity(1, 1), Proposal: ProposalSIMD},
	{Mnemonic: "i8x16.add", Prefix: 0xFD, HasPrefix: true, Code: 110, Arity: FixedArity(2, 1), Proposal: ProposalSIMD},
	{Mnemonic: "i8x16.sub", Prefix: 0xFD, HasPrefix: true, Code: 113, Arity: FixedArity(2, 1), Proposal: ProposalSIMD},
	{Mnemonic: "i32x4.add", Prefix: 0xFD, HasPrefix: true, Code: 174, Arity: FixedArity(2, 1), Proposal: ProposalSIMD},
	{Mnemonic: "i32x4.sub", Prefix: 0xFD, HasPrefix: true, Code: 177, Arity: FixedArity(2, 1), Proposal: ProposalSIMD},
	{Mnemonic: "i32x4.mul", Prefix: 0xFD, HasPrefix: true, Code: 181, Arity: FixedArity(2, 1), Proposal: ProposalSIMD},
	{Mnemonic: "f32x4.add", Prefix: 0xFD, HasPrefix: true, Code: 228, Arity: FixedArity(2, 1), Proposal: ProposalSIMD},
	{Mnemonic: "f32x4.sub", Prefix: 0xFD, HasPrefix: true, Code: 229, Arity: FixedArity(2, 1), Proposal: ProposalSIMD},
	{Mnemonic: "f32x4.mul", Prefix: 0xFD, HasPrefix: true, Code: 230, Arity: FixedArity(2, 1), Proposal: ProposalSIMD},

	// --- relaxed-SIMD (0xFD, sub-opcode >= 0x100 — §9 open question) ---
	{Mnemonic: "i8x16.relaxed_swizzle", Prefix: 0xFD, HasPrefix: true, Code: 0x100, Arity: FixedArity(2, 1), Proposal: ProposalRelaxedSIMD},
	{Mnemonic: "i32x4.relaxed_trunc_f32x4_s", Prefix: 0xFD, HasPrefix: true, Code: 0x101, Arity: FixedArity(1, 1), Proposal: ProposalRelaxedSIMD},
	{Mnemonic: "i32x4.relaxed_trunc_f32x4_u", Prefix: 0xFD, HasPrefix: true, Code: 0x102, Arity: FixedArity(1, 1), Proposal: ProposalRelaxedSIMD},
	{Mnemonic: "f32x4.relaxed_madd", Prefix: 0xFD, HasPrefix: true, Code: 0x105, Arity: FixedArity(3, 1), Proposal: ProposalRelaxedSIMD},
	{Mnemonic: "f32x4.relaxed_nmadd", Prefix: 0xFD, HasPrefix: true, Code: 0x106, Arity: FixedArity(3, 1), Proposal: ProposalRelaxedSIMD},
	{Mnemonic: "i32x4.relaxed_laneselect", Prefix: 0xFD, HasPrefix: true, Code: 0x109, Arity: FixedArity(3, 1), Proposal: ProposalRelaxedSIMD},

	// --- threads (0xFE) ---
	{Mnemonic: "memory.atomic.notify", Prefix: 0xFE, HasPrefix: true, Code: 0, Imm: ImmMemArg, Arity: FixedArity(2, 1), Proposal: ProposalThreads},
	{Mnemonic: "memory.atomic.wait32", Prefix: 0xFE, HasPrefix: true, Code: 1, Imm: ImmMemArg, Arity: FixedArity(3, 1), Proposal: ProposalThreads},
	{Mnemonic: "memory.atomic.wait64", Prefix: 0xFE, HasPrefix: true, Code: 2, Imm: ImmMemArg, Arity: FixedArity(3, 1), Proposal: ProposalThreads},
	{Mnemonic: "atomic.fence", Prefix: 0xFE, HasPrefix: true, Code: 3, Arity: FixedArity(0, 0), Proposal: ProposalThreads},
	{Mnemonic: "i32.atomic.load", Prefix: 0xFE, HasPrefix: true, Code: 16, Imm: ImmMemArg, Arity: FixedArity(1, 1), Proposal: ProposalThreads},
	{Mnemonic: "i64.atomic.load", Prefix: 0xFE, HasPrefix: true, Code: 17, Imm: ImmMemArg, Arity: FixedArity(1, 1), Proposal: ProposalThreads},
	{Mnemonic: "i32.atomic.load8_u", Prefix: 0xFE, HasPrefix: true, Code: 18, Imm: ImmMemArg, Arity: FixedArity(1, 1), Proposal: ProposalThreads},
	{Mnemonic: "i32.atomic.load16_u", Prefix: 0xFE, HasPrefix: true, Code: 19, Imm: ImmMemArg, Arity: FixedArity(1, 1), Proposal: ProposalThreads},
	{Mnemonic: "i32.atomic.store", Prefix: 0xFE, HasPrefix: true, Code: 23, Imm: ImmMemArg, Arity: FixedArity(2, 0), Proposal: ProposalThreads},
	{Mnemonic: "i64.atomic.store", Prefix: 0xFE, HasPrefix: true, Code: 24, Imm: ImmMemArg, Arity: FixedArity(2, 0), Proposal: ProposalThreads},
	{Mnemonic: "i32.atomic.rmw.add", Prefix: 0xFE, HasPrefix: true, Code: 30, Imm: ImmMemArg, Arity: FixedArity(2, 1), Proposal: ProposalThreads},
	{Mnemonic: "i32.atomic.rmw8.add_u", Prefix: 0xFE, HasPrefix: true, Code: 48, Imm: ImmMemArg, Arity: FixedArity(2, 1), Proposal: ProposalThreads},
	{Mnemonic: "i32.atomic.rmw.cmpxchg", Prefix: 0xFE, HasPrefix: true, Code: 72, Imm: ImmMemArg, Arity: FixedArity(3, 1), Proposal: ProposalThreads},

	// --- shared-everything-threads ---
	{Mnemonic: "global.atomic.get", Prefix: 0xFE, HasPrefix: true, Code: 0x4E, Imm: ImmIndex, Arity: FixedArity(0, 1), Proposal: ProposalSharedEverythingThreads},
	{Mnemonic: "global.atomic.set", Prefix: 0xFE, HasPrefix: true, Code: 0x4F, Imm: ImmIndex, Arity: FixedArity(1, 0), Proposal: ProposalSharedEverythingThreads},
	{Mnemonic: "table.atomic.get", Prefix: 0xFE, HasPrefix: true, Code: 0x50, Imm: ImmIndex, Arity: FixedArity(1, 1), Proposal: ProposalSharedEverythingThreads},
	{Mnemonic: "struct.atomic.get", Prefix: 0xFB, HasPrefix: true, Code: 0x4D, Imm: ImmStructField, Arity: FixedArity(1, 1), Proposal: ProposalSharedEverythingThreads},
	{Mnemonic: "array.atomic.get", Prefix: 0xFB, HasPrefix: true, Code: 0x5D, Imm: ImmIndex, Arity: FixedArity(2, 1), Proposal: ProposalSharedEverythingThreads},
	{Mnemonic: "ref.i31_shared", Prefix: 0xFB, HasPrefix: true, Code: 0x70, Arity: FixedArity(1, 1), Proposal: ProposalSharedEverythingThreads},

	// --- stack-switching ---
	{Mnemonic: "cont.new", Code: 0xE0, Imm: ImmIndex, Arity: FixedArity(1, 1), Proposal: ProposalStackSwitching},
	{Mnemonic: "cont.bind", Code: 0xE1, Imm: ImmIndex2, Arity: CustomArity(), Proposal: ProposalStackSwitching},
	{Mnemonic: "suspend", Code: 0xE2, Imm: ImmIndex, Arity: CustomArity(), Proposal: ProposalStackSwitching},
	{Mnemonic: "resume", Code: 0xE3, Imm: ImmResumeTable, Arity: CustomArity(), Proposal: ProposalStackSwitching},
	{Mnemonic: "resume_throw", Code: 0xE4, Imm: ImmResumeTable, Arity: CustomArity(), Proposal: ProposalStackSwitching},
	{Mnemonic: "switch", Code: 0xE5, Imm: ImmIndex2, Arity: CustomArity(), Proposal: ProposalStackSwitching},
}
