package binary

import (
	"testing"

	"github.com/stretchr/testify/require"

	wasm "github.com/rajatjindal/wasm-tools/internal/wasm"
	"github.com/rajatjindal/wasm-tools/internal/wasm/opcode"
)

func TestFunctionBodyRoundTrip(t *testing.T) {
	addOp := mustOp(t, "i32.add")
	localGet := mustOp(t, "local.get")
	constOp := mustOp(t, "i32.const")
	end := mustOp(t, "end")

	c := &wasm.Code{
		Locals: []wasm.LocalEntry{{Count: 2, Type: wasm.ValueTypeI32}},
		Body: []wasm.Instruction{
			{Op: localGet, Imm: wasm.IndexImm{Index: 0}},
			{Op: localGet, Imm: wasm.IndexImm{Index: 1}},
			{Op: addOp},
			{Op: constOp, Imm: int32(1)},
			{Op: addOp},
			{Op: end},
		},
	}

	w := &writer{}
	encodeCode(w, c)
	outer := NewCursor(w.bytes(), 0)
	size, err := outer.ReadVarU32AsUsize()
	require.NoError(t, err)
	bodyCur, err := outer.Window(size)
	require.NoError(t, err)

	got, err := decodeFunctionBody(bodyCur, bodyCur.Position(), size, opcode.DefaultFeatures())
	require.NoError(t, err)
	require.Equal(t, c.Locals, got.Locals)
	require.Len(t, got.Body, len(c.Body))
	for i, in := range c.Body {
		require.Equal(t, in.Op.Mnemonic, got.Body[i].Mnemonic())
		require.Equal(t, in.Imm, got.Body[i].Imm)
	}
}

func TestDecodeFunctionBodyRejectsTooManyLocals(t *testing.T) {
	w := &writer{}
	w.uleb32(1) // one local-entry run
	w.uleb32(maxLocals + 1)
	w.u8(byte(wasm.ValueTypeI32))

	c := NewCursor(w.bytes(), 0)
	_, err := decodeFunctionBody(c, 0, len(w.bytes()), opcode.DefaultFeatures())
	require.Error(t, err)
	var bErr *Error
	require.ErrorAs(t, err, &bErr)
	require.Equal(t, ErrTooManyLocals, bErr.Kind)
}
