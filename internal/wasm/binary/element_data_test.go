package binary

import (
	"testing"

	"github.com/stretchr/testify/require"

	wasm "github.com/rajatjindal/wasm-tools/internal/wasm"
	"github.com/rajatjindal/wasm-tools/internal/wasm/opcode"
)

func constExprI32(t *testing.T, v int32) *wasm.ConstantExpression {
	return &wasm.ConstantExpression{Instructions: []wasm.Instruction{
		{Op: mustOp(t, "i32.const"), Imm: v},
		{Op: mustOp(t, "end")},
	}}
}

func TestElementSegmentRoundTrip(t *testing.T) {
	tests := []*wasm.ElementSegment{
		{
			Mode:        wasm.ElemModeActive,
			Offset:      constExprI32(t, 0),
			RefType:     wasm.FuncRef(),
			FuncIndices: []uint32{0, 1, 2},
		},
		{
			Mode:    wasm.ElemModePassive,
			RefType: wasm.FuncRef(),
			Init:    []wasm.ConstantExpression{*constExprI32(t, 0)},
		},
		{
			Mode:       wasm.ElemModeActive,
			TableIndex: 1,
			Offset:     constExprI32(t, 4),
			RefType:    wasm.FuncRef(),
			Init:       []wasm.ConstantExpression{*constExprI32(t, 7)},
		},
		{
			Mode:    wasm.ElemModeDeclarative,
			RefType: wasm.FuncRef(),
			Init:    nil,
		},
	}
	for i, seg := range tests {
		w := &writer{}
		encodeElementSegment(w, seg)
		c := NewCursor(w.bytes(), 0)
		got, err := decodeElementSegment(c, opcode.DefaultFeatures())
		require.NoError(t, err, "case %d", i)
		require.Equal(t, seg.Mode, got.Mode)
		require.Equal(t, seg.TableIndex, got.TableIndex)
		require.Equal(t, seg.FuncIndices, got.FuncIndices)
	}
}

func TestDataSegmentRoundTrip(t *testing.T) {
	tests := []*wasm.DataSegment{
		{Mode: wasm.DataModeActive, Offset: constExprI32(t, 0), Init: []byte("hi")},
		{Mode: wasm.DataModePassive, Init: []byte{1, 2, 3}},
		{Mode: wasm.DataModeActive, MemIndex: 1, Offset: constExprI32(t, 8), Init: []byte{}},
	}
	for i, seg := range tests {
		w := &writer{}
		encodeDataSegment(w, seg)
		c := NewCursor(w.bytes(), 0)
		got, err := decodeDataSegment(c, opcode.DefaultFeatures())
		require.NoError(t, err, "case %d", i)
		require.Equal(t, seg.Mode, got.Mode)
		require.Equal(t, seg.MemIndex, got.MemIndex)
		require.Equal(t, seg.Init, got.Init)
	}
}
