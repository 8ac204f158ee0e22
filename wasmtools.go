// Package wasmtools is the public front door to this module's WebAssembly
// toolchain: binary decode/encode (internal/wasm/binary) and text-format
// parsing (internal/wat), both producing or consuming the shared
// internal/wasm.Module IR (§6 "Public API").
package wasmtools

import (
	wasm "github.com/rajatjindal/wasm-tools/internal/wasm"
	"github.com/rajatjindal/wasm-tools/internal/wasm/binary"
	"github.com/rajatjindal/wasm-tools/internal/wasm/opcode"
	"github.com/rajatjindal/wasm-tools/internal/wat"
)

// Module is the decoded/resolved module IR shared by every entry point in
// this package.
type Module = wasm.Module

// FeatureSet selects which proposal-gated opcodes a Reader or ParseModule
// call accepts (internal/wasm/opcode.FeatureSet).
type FeatureSet = opcode.FeatureSet

// DecodeBinary eagerly decodes a complete `.wasm` binary into a Module. It
// is a thin convenience wrapper over the streaming Reader for callers who
// want the whole module at once.
func DecodeBinary(data []byte, opts ...binary.ReaderOption) (*Module, error) {
	return binary.Decode(data, opts...)
}

// NewBinaryReader returns a streaming, event-driven binary decoder: one
// Payload per call to Read, with no module-wide accumulation of its own.
// Use this over DecodeBinary when the caller wants to react to sections (or
// function bodies) as they stream past rather than holding the whole module
// in memory at once.
func NewBinaryReader(data []byte, opts ...binary.ReaderOption) *binary.Reader {
	return binary.NewReader(data, opts...)
}

// EncodeBinary serializes a Module back to the canonical `.wasm` binary
// encoding.
func EncodeBinary(m *Module) ([]byte, error) {
	return binary.Encode(m)
}

// ParseText parses a complete WAT text module into a resolved Module.
func ParseText(src []byte, opts ...wat.ParserOption) (*Module, error) {
	return wat.ParseModule(src, opts...)
}

// WithFeatures overrides the default feature set a binary Reader accepts.
func WithFeatures(fs FeatureSet) binary.ReaderOption {
	return binary.WithFeatures(fs)
}

// WithTextFeatures overrides the default feature set ParseText accepts.
func WithTextFeatures(fs FeatureSet) wat.ParserOption {
	return wat.WithFeatures(fs)
}
