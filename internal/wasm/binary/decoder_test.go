package binary

import (
	"testing"

	"github.com/stretchr/testify/require"

	wasm "github.com/rajatjindal/wasm-tools/internal/wasm"
	"github.com/rajatjindal/wasm-tools/internal/wasm/opcode"
)

// TestDecodeModule relies on Encode being correct: round-tripping a Module
// through Encode then Decode should reproduce it field for field.
func TestDecodeModule(t *testing.T) {
	i32, f32 := wasm.ValueTypeI32, wasm.ValueTypeF32
	zero := uint32(0)

	endInsn := wasm.Instruction{Op: mustOp(t, "end")}

	tests := []struct {
		name  string
		input *wasm.Module
	}{
		{
			name:  "empty",
			input: &wasm.Module{ExportSection: map[string]*wasm.Export{}},
		},
		{
			name:  "only name section",
			input: &wasm.Module{ExportSection: map[string]*wasm.Export{}, NameSection: &wasm.NameSection{ModuleName: "simple"}},
		},
		{
			name: "type section",
			input: &wasm.Module{
				ExportSection: map[string]*wasm.Export{},
				TypeSection: []*wasm.FunctionType{
					{},
					{Params: []wasm.ValueType{i32, i32}, Results: []wasm.ValueType{i32}},
					{Params: []wasm.ValueType{i32, i32, i32, i32}, Results: []wasm.ValueType{i32}},
				},
			},
		},
		{
			name: "type and import section",
			input: &wasm.Module{
				ExportSection: map[string]*wasm.Export{},
				TypeSection: []*wasm.FunctionType{
					{Params: []wasm.ValueType{i32, i32}, Results: []wasm.ValueType{i32}},
					{Params: []wasm.ValueType{f32, f32}, Results: []wasm.ValueType{f32}},
				},
				ImportSection: []*wasm.Import{
					{Module: "Math", Name: "Mul", Kind: wasm.ImportKindFunc, DescFunc: 1},
					{Module: "Math", Name: "Add", Kind: wasm.ImportKindFunc, DescFunc: 0},
				},
			},
		},
		{
			name: "memory and export section",
			input: &wasm.Module{
				MemorySection: []*wasm.MemoryType{{Limits: wasm.Limits{Min: 0, Max: &zero}}},
				ExportSection: map[string]*wasm.Export{
					"mem": {Name: "mem", Kind: wasm.ExportKindMemory, Index: 0},
				},
			},
		},
		{
			name: "function and code section",
			input: &wasm.Module{
				ExportSection:   map[string]*wasm.Export{},
				TypeSection:     []*wasm.FunctionType{{}},
				FunctionSection: []uint32{0},
				CodeSection: []*wasm.Code{
					// Decode records where the body sits in the encoded bytes:
					// 8-byte header, 6-byte type section, 4-byte function
					// section, then the code section's id, size, entry count and
					// body size put the body (locals count + end) at offset 22
					// and its first instruction at offset 23.
					{Body: []wasm.Instruction{{Op: endInsn.Op, Offset: 23}}, BodyOffset: 23, BodySize: 2},
				},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := Encode(tt.input)
			require.NoError(t, err)
			require.Equal(t, []byte{0x00, 0x61, 0x73, 0x6D, 1, 0, 0, 0}, encoded[:8])

			got, err := Decode(encoded)
			require.NoError(t, err)
			require.Equal(t, tt.input, got)
		})
	}
}

func TestDecodeModuleEmptyIsEightBytes(t *testing.T) {
	encoded, err := Encode(&wasm.Module{ExportSection: map[string]*wasm.Export{}})
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0x61, 0x73, 0x6D, 1, 0, 0, 0}, encoded)
}

func TestDecodeRejectsBadMagic(t *testing.T) {
	_, err := Decode([]byte{1, 2, 3, 4, 1, 0, 0, 0})
	require.Error(t, err)
	var bErr *Error
	require.ErrorAs(t, err, &bErr)
	require.Equal(t, ErrBadMagic, bErr.Kind)
}

func TestDecodeRejectsUnsupportedVersion(t *testing.T) {
	_, err := Decode([]byte{0x00, 0x61, 0x73, 0x6D, 2, 0, 0, 0})
	require.Error(t, err)
	var bErr *Error
	require.ErrorAs(t, err, &bErr)
	require.Equal(t, ErrUnsupportedVersion, bErr.Kind)
}

func TestEncodeEmitsDataCountForMemoryInit(t *testing.T) {
	m := &wasm.Module{
		ExportSection:   map[string]*wasm.Export{},
		TypeSection:     []*wasm.FunctionType{{}},
		FunctionSection: []uint32{0},
		DataSection:     []*wasm.DataSegment{{Mode: wasm.DataModePassive, Init: []byte{1}}},
		CodeSection: []*wasm.Code{{Body: []wasm.Instruction{
			{Op: mustOp(t, "i32.const"), Imm: int32(0)},
			{Op: mustOp(t, "i32.const"), Imm: int32(0)},
			{Op: mustOp(t, "i32.const"), Imm: int32(1)},
			{Op: mustOp(t, "memory.init"), Imm: wasm.Index2Imm{A: 0, B: 0}},
			endInsnFor(t),
		}}},
	}
	encoded, err := Encode(m)
	require.NoError(t, err)
	// Encode always derives the datacount section when NeedsDataCount is
	// true (memory.init needs it), so the decoded module carries one.
	got, err := Decode(encoded)
	require.NoError(t, err)
	require.NotNil(t, got.DataCountSection)
}

func mustOp(t *testing.T, mnemonic string) *opcode.Entry {
	t.Helper()
	e, ok := opcode.ByMnemonic(mnemonic)
	require.True(t, ok, "no opcode table entry for %s", mnemonic)
	return e
}

func endInsnFor(t *testing.T) wasm.Instruction {
	return wasm.Instruction{Op: mustOp(t, "end")}
}
