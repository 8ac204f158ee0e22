package wat

import (
	wasm "github.com/rajatjindal/wasm-tools/internal/wasm"
	"github.com/rajatjindal/wasm-tools/internal/wasm/opcode"
)

// ParseContext tracks the identifier→index bindings for every namespace the
// text format names (types, funcs, tables, mems, globals, elem, data, tags,
// and, per function, locals and labels — §4.E "Identifier namespaces are
// per-kind and per-function"). A first Collect pass populates the
// module-level namespaces before any function body is parsed, so forward
// references (`call $later_defined_func`) resolve correctly.
type ParseContext struct {
	types   namespace
	funcs   namespace
	tables  namespace
	mems    namespace
	globals namespace
	elems   namespace
	data    namespace
	tags    namespace

	// locals and labels reset per function; labels is a stack (innermost
	// last) since block/loop/if nest.
	locals namespace
	labels []string

	// features gates each decoded mnemonic against its originating proposal
	// (§4.A "Proposal filtering"), set once from ParseModule's ParserOption
	// before any field is parsed.
	features opcode.FeatureSet

	// module lets an instruction's text immediate (e.g. call_indirect's
	// inline typeuse) intern a new function type while a function body is
	// being parsed.
	module *wasm.Module
}

// namespace maps an identifier to the index it was declared at, in
// declaration order; index -1 / not-found is reported by ok=false.
type namespace struct {
	byName map[string]uint32
	count  uint32
}

func (ns *namespace) declare(name string) {
	ns.count++
	if name == "" {
		return
	}
	if ns.byName == nil {
		ns.byName = map[string]uint32{}
	}
	// A duplicate identifier does not rebind the name: lookups resolve to
	// the first declaration, and no error is reported.
	if _, exists := ns.byName[name]; !exists {
		ns.byName[name] = ns.count - 1
	}
}

func (ns *namespace) lookup(name string) (uint32, bool) {
	idx, ok := ns.byName[name]
	return idx, ok
}

func newParseContext() *ParseContext { return &ParseContext{} }

// resolveIndex parses tok as either a bare uN index or a $identifier looked
// up in ns.
func (pc *ParseContext) resolveIndex(source []byte, tok *Token, ns *namespace, kind string) (uint32, error) {
	if tok == nil {
		return 0, newParseError(source, 0, 0, "expected %s index, got end of input", kind)
	}
	switch tok.Type {
	case TokenUN:
		v, err := parseU64(tok.Value)
		if err != nil {
			return 0, newParseError(source, tok.Line, tok.Col, "invalid %s index: %s", kind, err)
		}
		return uint32(v), nil
	case TokenID:
		idx, ok := ns.lookup(stripDollar(tok.Value))
		if !ok {
			return 0, undefinedIdentifier(source, tok, kind)
		}
		return idx, nil
	default:
		return 0, unexpectedToken(source, tok)
	}
}

// pushLabel/popLabel maintain the innermost-last block-label stack used to
// resolve `br $label` against its nesting depth.
func (pc *ParseContext) pushLabel(name string) { pc.labels = append(pc.labels, name) }

func (pc *ParseContext) popLabel() {
	if len(pc.labels) > 0 {
		pc.labels = pc.labels[:len(pc.labels)-1]
	}
}

// resolveLabel resolves a branch target to its relative depth (0 =
// innermost enclosing block), by bare integer or by name.
func (pc *ParseContext) resolveLabel(source []byte, tok *Token) (uint32, error) {
	if tok == nil {
		return 0, newParseError(source, 0, 0, "expected label, got end of input")
	}
	switch tok.Type {
	case TokenUN:
		v, err := parseU64(tok.Value)
		if err != nil {
			return 0, newParseError(source, tok.Line, tok.Col, "invalid label: %s", err)
		}
		return uint32(v), nil
	case TokenID:
		name := stripDollar(tok.Value)
		for depth, l := range reverse(pc.labels) {
			if l == name {
				return uint32(depth), nil
			}
		}
		return 0, undefinedIdentifier(source, tok, "label")
	default:
		return 0, unexpectedToken(source, tok)
	}
}

func reverse(s []string) []string {
	out := make([]string, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}
