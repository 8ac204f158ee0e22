package binary

import (
	"testing"

	"github.com/stretchr/testify/require"

	wasm "github.com/rajatjindal/wasm-tools/internal/wasm"
)

func TestCursorLeb128RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		u32   uint32
		i32   int32
		u64   uint64
		i64   int64
	}{
		{name: "zero"},
		{name: "small", u32: 5, i32: -5, u64: 5, i64: -5},
		{name: "max u32", u32: 0xFFFFFFFF, u64: 0xFFFFFFFFFFFFFFFF},
		{name: "min i32", i32: -2147483648, i64: -9223372036854775808},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &writer{}
			w.uleb32(tt.u32)
			w.sleb32(tt.i32)
			w.uleb64(tt.u64)
			w.sleb64(tt.i64)

			c := NewCursor(w.bytes(), 0)
			gotU32, err := c.ReadU32Leb128()
			require.NoError(t, err)
			require.Equal(t, tt.u32, gotU32)
			gotI32, err := c.ReadI32Leb128()
			require.NoError(t, err)
			require.Equal(t, tt.i32, gotI32)
			gotU64, err := c.ReadU64Leb128()
			require.NoError(t, err)
			require.Equal(t, tt.u64, gotU64)
			gotI64, err := c.ReadI64Leb128()
			require.NoError(t, err)
			require.Equal(t, tt.i64, gotI64)
			require.Zero(t, c.Remaining())
		})
	}
}

func TestCursorRejectsOverlongLeb128(t *testing.T) {
	// five bytes whose last byte sets bits above bit 31: the value does not
	// fit in a u32, so the read is rejected as an invalid encoding.
	over := []byte{0x80, 0x80, 0x80, 0x80, 0x70}
	c := NewCursor(over, 0)
	_, err := c.ReadU32Leb128()
	require.Error(t, err)
	var bErr *Error
	require.ErrorAs(t, err, &bErr)
	require.Equal(t, ErrInvalidEncoding, bErr.Kind)
}

func TestCursorReadNameRejectsInvalidUtf8(t *testing.T) {
	data := []byte{2, 0xff, 0xfe}
	c := NewCursor(data, 0)
	_, err := c.ReadName()
	require.Error(t, err)
	var bErr *Error
	require.ErrorAs(t, err, &bErr)
	require.Equal(t, ErrInvalidUtf8Name, bErr.Kind)
}

func TestValueTypeRoundTrip(t *testing.T) {
	w := &writer{}
	encodeValType(w, wasm.ValueTypeI32, nil)
	fref := wasm.FuncRef()
	encodeValType(w, wasm.ValueTypeRef, &fref)
	nonNullStruct := wasm.RefType{Nullable: false, Heap: wasm.HeapType{Abstract: wasm.HeapTypeConcrete, Index: 7}}
	encodeValType(w, wasm.ValueTypeRef, &nonNullStruct)

	c := NewCursor(w.bytes(), 0)
	vt, rt, err := readValType(c)
	require.NoError(t, err)
	require.Equal(t, wasm.ValueTypeI32, vt)
	require.Nil(t, rt)

	vt, rt, err = readValType(c)
	require.NoError(t, err)
	require.Equal(t, wasm.ValueTypeFuncref, vt)
	require.NotNil(t, rt)
	require.True(t, rt.Nullable)

	vt, rt, err = readValType(c)
	require.NoError(t, err)
	require.Equal(t, wasm.ValueTypeRef, vt)
	require.False(t, rt.Nullable)
	require.Equal(t, uint32(7), rt.Heap.Index)
}

func TestLimitsRoundTrip(t *testing.T) {
	max := uint32(10)
	tests := []wasm.Limits{
		{Min: 0},
		{Min: 1, Max: &max},
		{Min: 2, Max: &max, Shared: true},
	}
	for _, lim := range tests {
		w := &writer{}
		writeLimits(w, lim)
		c := NewCursor(w.bytes(), 0)
		got, err := readLimits(c)
		require.NoError(t, err)
		require.Equal(t, lim.Min, got.Min)
		require.Equal(t, lim.Shared, got.Shared)
		if lim.Max == nil {
			require.Nil(t, got.Max)
		} else {
			require.Equal(t, *lim.Max, *got.Max)
		}
	}
}

func TestFunctionTypeRoundTrip(t *testing.T) {
	ft := &wasm.FunctionType{
		Params:  []wasm.ValueType{wasm.ValueTypeI32, wasm.ValueTypeI64},
		Results: []wasm.ValueType{wasm.ValueTypeF64},
	}
	w := &writer{}
	encodeFunctionType(w, ft)
	c := NewCursor(w.bytes(), 0)
	got, err := readFunctionType(c)
	require.NoError(t, err)
	require.Equal(t, ft, got)
}
