package binary

import (
	"testing"

	"github.com/stretchr/testify/require"

	wasm "github.com/rajatjindal/wasm-tools/internal/wasm"
)

func TestNameSectionRoundTrip(t *testing.T) {
	ns := &wasm.NameSection{
		ModuleName:    "mymod",
		FunctionNames: []wasm.NameAssoc{{Index: 0, Name: "main"}, {Index: 1, Name: "helper"}},
		LocalNames: map[uint32][]wasm.NameAssoc{
			0: {{Index: 0, Name: "x"}},
		},
	}
	data := encodeNameSection(ns)
	got, err := decodeNameSection(data)
	require.NoError(t, err)
	require.Equal(t, ns.ModuleName, got.ModuleName)
	require.Equal(t, ns.FunctionNames, got.FunctionNames)
	require.Equal(t, ns.LocalNames, got.LocalNames)
}
