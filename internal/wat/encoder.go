package wat

import (
	wasm "github.com/rajatjindal/wasm-tools/internal/wasm"
	"github.com/rajatjindal/wasm-tools/internal/wasm/binary"
)

// Encode serializes a resolved Module to the canonical binary encoding
// (component I). The text format has no independent encoder: a parsed
// Module is already the same IR the binary package encodes, so this is a
// re-export rather than a second implementation (§6 component table).
func Encode(m *wasm.Module) ([]byte, error) {
	return binary.Encode(m)
}
