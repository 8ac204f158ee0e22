package binary

import (
	wasm "github.com/rajatjindal/wasm-tools/internal/wasm"
	"github.com/rajatjindal/wasm-tools/internal/wasm/opcode"
)

// maxLocals bounds the total (summed) local count a single function body may
// declare, matching the engine-independent limit most toolchains enforce
// (§7 TooManyLocals).
const maxLocals = 50_000

// decodeFunctionBody reads one code-section entry's body: its run-length
// encoded local declarations followed by its instruction stream, ending with
// an explicit `end` (§4.C "Code section entries").
func decodeFunctionBody(c *Cursor, bodyOffset int, bodySize int, fs opcode.FeatureSet) (*wasm.Code, error) {
	nLocalEntries, err := c.ReadVarU32AsUsize()
	if err != nil {
		return nil, err
	}
	var locals []wasm.LocalEntry
	if nLocalEntries > 0 {
		locals = make([]wasm.LocalEntry, nLocalEntries)
	}
	var total uint64
	for i := 0; i < nLocalEntries; i++ {
		count, err := c.ReadU32Leb128()
		if err != nil {
			return nil, err
		}
		total += uint64(count)
		if total > maxLocals {
			return nil, newErr(ErrTooManyLocals, c.Position(), "function declares more than %d locals", maxLocals)
		}
		vt, rt, err := readValType(c)
		if err != nil {
			return nil, err
		}
		locals[i] = wasm.LocalEntry{Count: count, Type: vt, Ref: rt}
	}

	instrStart := c.Position()
	body, err := decodeInstructionStream(c, fs)
	if err != nil {
		return nil, err
	}
	return &wasm.Code{
		Locals:     locals,
		Body:       body,
		BodyOffset: uint32(instrStart),
		BodySize:   uint32(bodySize),
	}, nil
}
