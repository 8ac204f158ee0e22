package wat

import (
	wasm "github.com/rajatjindal/wasm-tools/internal/wasm"
	"github.com/rajatjindal/wasm-tools/internal/wasm/opcode"
)

// ParserOption configures ParseModule (see WithFeatures); the shape mirrors
// ReaderOption in the binary package so callers have one consistent
// functional-options story across both decoders (§6 "Configuration").
type ParserOption func(*parserConfig)

type parserConfig struct {
	features opcode.FeatureSet
}

// WithFeatures overrides the default (ratified-only) feature set ParseModule
// gates each decoded mnemonic against, mirroring binary.WithFeatures (§6.5)
// so both front ends share one gating story and one FeatureSet type.
func WithFeatures(fs opcode.FeatureSet) ParserOption {
	return func(cfg *parserConfig) { cfg.features = fs }
}

// fieldSpan is one top-level module field's token range, [start,end]
// inclusive of its own parens, found by splitTopLevelFields.
type fieldSpan struct {
	keyword    string
	start, end int
}

// ParseModule parses a complete WAT text module: lex, split into top-level
// fields, run a Collect pass over all fields so forward references resolve
// (`call $later`), then parse each field in source order into a resolved
// *wasm.Module (§6 "Text format front end").
func ParseModule(src []byte, opts ...ParserOption) (*wasm.Module, error) {
	cfg := &parserConfig{features: opcode.DefaultFeatures()}
	for _, o := range opts {
		o(cfg)
	}

	tokens, err := Lex(src)
	if err != nil {
		return nil, err
	}
	c := NewTokenCursor(tokens, src)
	if err := c.ExpectLParen(); err != nil {
		return nil, err
	}
	if err := c.ExpectKeyword("module"); err != nil {
		return nil, err
	}
	c.ConsumeOptionalID() // module name, not retained

	spans, err := splitTopLevelFields(tokens, c.pos, src)
	if err != nil {
		return nil, err
	}

	pc := newParseContext()
	pc.features = cfg.features
	for _, span := range spans {
		if err := declareField(pc, tokens, span, src); err != nil {
			return nil, err
		}
	}

	m := &wasm.Module{ExportSection: map[string]*wasm.Export{}}
	pc.module = m
	for _, span := range spans {
		fc := NewTokenCursor(tokens[span.start:span.end+1], src)
		if err := parseField(fc, pc, src, span.keyword, m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// splitTopLevelFields scans the module's immediate children, returning the
// [start,end] token index range of each one. It never recurses: nesting
// depth is tracked with a plain counter that only cares about matching
// parens, not instruction semantics. (Parsing each field's body afterwards
// does recurse per nesting level, see expr.go.)
func splitTopLevelFields(tokens []*Token, start int, source []byte) ([]fieldSpan, error) {
	var spans []fieldSpan
	depth := 0
	fieldStart := -1
	i := start
	for ; i < len(tokens); i++ {
		switch tokens[i].Type {
		case TokenLParen:
			if depth == 0 {
				fieldStart = i
			}
			depth++
		case TokenRParen:
			depth--
			if depth == 0 {
				kw := ""
				if fieldStart+1 < len(tokens) {
					kw = tokens[fieldStart+1].Value
				}
				spans = append(spans, fieldSpan{keyword: kw, start: fieldStart, end: i})
			}
			if depth < 0 {
				// This is the module form's own closing paren.
				return spans, nil
			}
		}
	}
	return nil, newParseError(source, 0, 0, "unterminated module")
}

// declareField runs the Collect pass for one field: it registers the
// field's identifier (if any) into the namespace its kind owns, without
// parsing types, bodies, or initializers.
func declareField(pc *ParseContext, tokens []*Token, span fieldSpan, source []byte) error {
	tc := NewTokenCursor(tokens[span.start:span.end+1], source)
	tc.ExpectLParen()
	kw := tc.Next()
	if kw == nil {
		return nil
	}
	switch kw.Value {
	case "type":
		id, _ := tc.ConsumeOptionalID()
		pc.types.declare(id)
	case "func":
		id, _ := tc.ConsumeOptionalID()
		pc.funcs.declare(id)
	case "table":
		id, _ := tc.ConsumeOptionalID()
		pc.tables.declare(id)
	case "memory":
		id, _ := tc.ConsumeOptionalID()
		pc.mems.declare(id)
	case "global":
		id, _ := tc.ConsumeOptionalID()
		pc.globals.declare(id)
	case "elem":
		id, _ := tc.ConsumeOptionalID()
		pc.elems.declare(id)
	case "data":
		id, _ := tc.ConsumeOptionalID()
		pc.data.declare(id)
	case "tag":
		id, _ := tc.ConsumeOptionalID()
		pc.tags.declare(id)
	case "import":
		tc.Next() // module name string
		tc.Next() // import name string
		if tc.ExpectLParen() != nil {
			return nil
		}
		descKw := tc.Next()
		id, _ := tc.ConsumeOptionalID()
		if descKw == nil {
			return nil
		}
		switch descKw.Value {
		case "func":
			pc.funcs.declare(id)
		case "table":
			pc.tables.declare(id)
		case "memory":
			pc.mems.declare(id)
		case "global":
			pc.globals.declare(id)
		case "tag":
			pc.tags.declare(id)
		}
	}
	return nil
}

func parseField(c *TokenCursor, pc *ParseContext, source []byte, kw string, m *wasm.Module) error {
	switch kw {
	case "type":
		return parseTypeField(c, source, m)
	case "import":
		return parseImportField(c, pc, source, m)
	case "func":
		return parseFuncField(c, pc, source, m)
	case "table":
		return parseTableField(c, pc, source, m)
	case "memory":
		return parseMemoryField(c, pc, source, m)
	case "global":
		return parseGlobalField(c, pc, source, m)
	case "export":
		return parseExportField(c, pc, source, m)
	case "start":
		return parseStartField(c, pc, source, m)
	case "elem":
		return parseElemField(c, pc, source, m)
	case "data":
		return parseDataField(c, pc, source, m)
	case "tag":
		return parseTagField(c, pc, source, m)
	default:
		// Unknown top-level field kinds (e.g. a stray custom annotation) are
		// skipped rather than rejected, mirroring the binary reader's
		// tolerance for unrecognized custom sections.
		return nil
	}
}

// parseValTypeList reads value types until the enclosing paren closes.
func parseValTypeList(c *TokenCursor, source []byte) ([]wasm.ValueType, error) {
	var out []wasm.ValueType
	for !c.AtRParen() {
		tok := c.Next()
		vt, err := valueTypeFromKeyword(source, tok)
		if err != nil {
			return nil, err
		}
		out = append(out, vt)
	}
	return out, nil
}

// parseTypeUse parses an optional `(type $t)` plus zero or more `(param
// ...)`/`(result ...)` groups, returning an explicit type index when named
// and the literal params/results otherwise (§4.B "Type uses").
func parseTypeUse(c *TokenCursor, pc *ParseContext, source []byte) (typeIdx *uint32, params, results []wasm.ValueType, paramNames []string, err error) {
	if kw, ok := c.PeekFieldName(); ok && kw == "type" {
		c.Next()
		c.Next()
		idxTok := c.Next()
		idx, e := pc.resolveIndex(source, idxTok, &pc.types, "type")
		if e != nil {
			return nil, nil, nil, nil, e
		}
		if e := c.ExpectRParen(); e != nil {
			return nil, nil, nil, nil, e
		}
		typeIdx = &idx
	}
	for {
		kw, ok := c.PeekFieldName()
		if !ok || kw != "param" {
			break
		}
		c.Next()
		c.Next()
		if id, has := c.ConsumeOptionalID(); has {
			tok := c.Next()
			vt, e := valueTypeFromKeyword(source, tok)
			if e != nil {
				return nil, nil, nil, nil, e
			}
			params = append(params, vt)
			paramNames = append(paramNames, id)
		} else {
			vts, e := parseValTypeList(c, source)
			if e != nil {
				return nil, nil, nil, nil, e
			}
			for range vts {
				paramNames = append(paramNames, "")
			}
			params = append(params, vts...)
		}
		if e := c.ExpectRParen(); e != nil {
			return nil, nil, nil, nil, e
		}
	}
	for {
		kw, ok := c.PeekFieldName()
		if !ok || kw != "result" {
			break
		}
		c.Next()
		c.Next()
		vts, e := parseValTypeList(c, source)
		if e != nil {
			return nil, nil, nil, nil, e
		}
		results = append(results, vts...)
		if e := c.ExpectRParen(); e != nil {
			return nil, nil, nil, nil, e
		}
	}
	return typeIdx, params, results, paramNames, nil
}

func internFuncType(m *wasm.Module, ft wasm.FunctionType) uint32 {
	for i, t := range m.TypeSection {
		if sameFuncType(*t, ft) {
			return uint32(i)
		}
	}
	m.TypeSection = append(m.TypeSection, &ft)
	return uint32(len(m.TypeSection) - 1)
}

func sameFuncType(a, b wasm.FunctionType) bool {
	if len(a.Params) != len(b.Params) || len(a.Results) != len(b.Results) {
		return false
	}
	for i := range a.Params {
		if a.Params[i] != b.Params[i] {
			return false
		}
	}
	for i := range a.Results {
		if a.Results[i] != b.Results[i] {
			return false
		}
	}
	return true
}

func parseTypeField(c *TokenCursor, source []byte, m *wasm.Module) error {
	c.ExpectLParen()
	c.Next() // "type"
	c.ConsumeOptionalID()
	if err := c.ExpectLParen(); err != nil {
		return err
	}
	if err := c.ExpectKeyword("func"); err != nil {
		return err
	}
	var params, results []wasm.ValueType
	for {
		kw, ok := c.PeekFieldName()
		if !ok {
			break
		}
		c.Next()
		c.Next()
		if kw == "param" {
			if _, has := c.ConsumeOptionalID(); has {
				tok := c.Next()
				vt, err := valueTypeFromKeyword(source, tok)
				if err != nil {
					return err
				}
				params = append(params, vt)
			} else {
				vts, err := parseValTypeList(c, source)
				if err != nil {
					return err
				}
				params = append(params, vts...)
			}
		} else if kw == "result" {
			vts, err := parseValTypeList(c, source)
			if err != nil {
				return err
			}
			results = append(results, vts...)
		} else {
			break
		}
		if err := c.ExpectRParen(); err != nil {
			return err
		}
	}
	m.TypeSection = append(m.TypeSection, &wasm.FunctionType{Params: params, Results: results})
	return nil
}

func parseImportField(c *TokenCursor, pc *ParseContext, source []byte, m *wasm.Module) error {
	c.ExpectLParen()
	c.Next() // "import"
	modTok := c.Next()
	nameTok := c.Next()
	if err := c.ExpectLParen(); err != nil {
		return err
	}
	descKw := c.Next()
	c.ConsumeOptionalID()
	im := &wasm.Import{Module: modTok.Value, Name: nameTok.Value}
	switch descKw.Value {
	case "func":
		typeIdx, params, results, _, err := parseTypeUse(c, pc, source)
		if err != nil {
			return err
		}
		im.Kind = wasm.ImportKindFunc
		if typeIdx != nil {
			im.DescFunc = *typeIdx
		} else {
			im.DescFunc = internFuncType(m, wasm.FunctionType{Params: params, Results: results})
		}
	case "table":
		tt, err := parseTableTypeBody(c, source)
		if err != nil {
			return err
		}
		im.Kind = wasm.ImportKindTable
		im.DescTable = tt
	case "memory":
		mt, err := parseMemoryTypeBody(c, source)
		if err != nil {
			return err
		}
		im.Kind = wasm.ImportKindMemory
		im.DescMem = mt
	case "global":
		gt, err := parseGlobalTypeBody(c, source)
		if err != nil {
			return err
		}
		im.Kind = wasm.ImportKindGlobal
		im.DescGlobal = gt
	case "tag":
		typeIdx, params, _, _, err := parseTypeUse(c, pc, source)
		if err != nil {
			return err
		}
		tt := &wasm.TagType{}
		if typeIdx != nil {
			tt.TypeIndex = *typeIdx
		} else {
			tt.TypeIndex = internFuncType(m, wasm.FunctionType{Params: params})
		}
		im.Kind = wasm.ImportKindTag
		im.DescTag = tt
	default:
		return unexpectedToken(source, descKw)
	}
	if err := c.ExpectRParen(); err != nil {
		return err
	}
	m.ImportSection = append(m.ImportSection, im)
	return nil
}

func parseTableTypeBody(c *TokenCursor, source []byte) (*wasm.TableType, error) {
	lim, err := parseLimits(c, source)
	if err != nil {
		return nil, err
	}
	tok := c.Next()
	rt, err := refTypeFromKeyword(source, tok)
	if err != nil {
		return nil, err
	}
	return &wasm.TableType{RefType: rt, Limits: lim}, nil
}

func parseMemoryTypeBody(c *TokenCursor, source []byte) (*wasm.MemoryType, error) {
	lim, err := parseLimits(c, source)
	if err != nil {
		return nil, err
	}
	return &wasm.MemoryType{Limits: lim}, nil
}

func parseGlobalTypeBody(c *TokenCursor, source []byte) (*wasm.GlobalType, error) {
	if c.AtLParen() { // (mut valtype)
		c.Next()
		if err := c.ExpectKeyword("mut"); err != nil {
			return nil, err
		}
		tok := c.Next()
		vt, err := valueTypeFromKeyword(source, tok)
		if err != nil {
			return nil, err
		}
		if err := c.ExpectRParen(); err != nil {
			return nil, err
		}
		return &wasm.GlobalType{ValType: vt, Mutable: true}, nil
	}
	tok := c.Next()
	vt, err := valueTypeFromKeyword(source, tok)
	if err != nil {
		return nil, err
	}
	return &wasm.GlobalType{ValType: vt, Mutable: false}, nil
}

func parseLimits(c *TokenCursor, source []byte) (wasm.Limits, error) {
	minTok := c.Next()
	min, err := parseU64(minTok.Value)
	if err != nil {
		return wasm.Limits{}, err
	}
	lim := wasm.Limits{Min: uint32(min)}
	if t := c.Peek(); t != nil && (t.Type == TokenUN) {
		c.Next()
		max, err := parseU64(t.Value)
		if err != nil {
			return wasm.Limits{}, err
		}
		m := uint32(max)
		lim.Max = &m
	}
	if c.PeekIsKeyword("shared") {
		c.Next()
		lim.Shared = true
	}
	return lim, nil
}

func refTypeFromKeyword(source []byte, tok *Token) (wasm.RefType, error) {
	if tok == nil || tok.Type != TokenKeyword {
		return wasm.RefType{}, unexpectedToken(source, tok)
	}
	switch tok.Value {
	case "funcref":
		return wasm.FuncRef(), nil
	case "externref":
		return wasm.ExternRef(), nil
	default:
		return wasm.RefType{}, unexpectedToken(source, tok)
	}
}

func parseFuncField(c *TokenCursor, pc *ParseContext, source []byte, m *wasm.Module) error {
	c.ExpectLParen()
	c.Next() // "func"
	c.ConsumeOptionalID()

	var exportNames []string
	for {
		kw, ok := c.PeekFieldName()
		if !ok || kw != "export" {
			break
		}
		c.Next()
		c.Next()
		nameTok := c.Next()
		exportNames = append(exportNames, nameTok.Value)
		if err := c.ExpectRParen(); err != nil {
			return err
		}
	}

	typeIdx, params, results, paramNames, err := parseTypeUse(c, pc, source)
	if err != nil {
		return err
	}

	funcIdx := uint32(len(m.FunctionSection) + countFuncImports(m))

	pc.locals = namespace{}
	for _, n := range paramNames {
		pc.locals.declare(n)
	}
	var locals []wasm.LocalEntry
	for {
		kw, ok := c.PeekFieldName()
		if !ok || kw != "local" {
			break
		}
		c.Next()
		c.Next()
		if id, has := c.ConsumeOptionalID(); has {
			tok := c.Next()
			vt, err := valueTypeFromKeyword(source, tok)
			if err != nil {
				return err
			}
			pc.locals.declare(id)
			locals = append(locals, wasm.LocalEntry{Count: 1, Type: vt})
		} else {
			vts, err := parseValTypeList(c, source)
			if err != nil {
				return err
			}
			for _, vt := range vts {
				pc.locals.declare("")
				locals = append(locals, wasm.LocalEntry{Count: 1, Type: vt})
			}
		}
		if err := c.ExpectRParen(); err != nil {
			return err
		}
	}

	pc.labels = nil
	body, err := parseInstrSeq(c, pc, source, true)
	if err != nil {
		return err
	}
	body = append(body, wasm.Instruction{Op: endOp()})

	var idx uint32
	if typeIdx != nil {
		idx = *typeIdx
	} else {
		idx = internFuncType(m, wasm.FunctionType{Params: params, Results: results})
	}
	m.FunctionSection = append(m.FunctionSection, idx)
	m.CodeSection = append(m.CodeSection, &wasm.Code{Locals: locals, Body: body})

	for _, name := range exportNames {
		m.ExportSection[name] = &wasm.Export{Name: name, Kind: wasm.ExportKindFunc, Index: funcIdx}
	}
	return nil
}

func countFuncImports(m *wasm.Module) int {
	n := 0
	for _, im := range m.ImportSection {
		if im.Kind == wasm.ImportKindFunc {
			n++
		}
	}
	return n
}

func parseTableField(c *TokenCursor, pc *ParseContext, source []byte, m *wasm.Module) error {
	c.ExpectLParen()
	c.Next() // "table"
	c.ConsumeOptionalID()
	for {
		kw, ok := c.PeekFieldName()
		if !ok || kw != "export" {
			break
		}
		c.Next()
		c.Next()
		nameTok := c.Next()
		c.ExpectRParen()
		idx := uint32(len(m.TableSection) + countImportsOf(m, wasm.ImportKindTable))
		m.ExportSection[nameTok.Value] = &wasm.Export{Name: nameTok.Value, Kind: wasm.ExportKindTable, Index: idx}
	}
	tt, err := parseTableTypeBody(c, source)
	if err != nil {
		return err
	}
	m.TableSection = append(m.TableSection, tt)
	return nil
}

func parseMemoryField(c *TokenCursor, pc *ParseContext, source []byte, m *wasm.Module) error {
	c.ExpectLParen()
	c.Next() // "memory"
	c.ConsumeOptionalID()
	for {
		kw, ok := c.PeekFieldName()
		if !ok || kw != "export" {
			break
		}
		c.Next()
		c.Next()
		nameTok := c.Next()
		c.ExpectRParen()
		idx := uint32(len(m.MemorySection) + countImportsOf(m, wasm.ImportKindMemory))
		m.ExportSection[nameTok.Value] = &wasm.Export{Name: nameTok.Value, Kind: wasm.ExportKindMemory, Index: idx}
	}
	mt, err := parseMemoryTypeBody(c, source)
	if err != nil {
		return err
	}
	m.MemorySection = append(m.MemorySection, mt)
	return nil
}

func parseGlobalField(c *TokenCursor, pc *ParseContext, source []byte, m *wasm.Module) error {
	c.ExpectLParen()
	c.Next() // "global"
	c.ConsumeOptionalID()
	for {
		kw, ok := c.PeekFieldName()
		if !ok || kw != "export" {
			break
		}
		c.Next()
		c.Next()
		nameTok := c.Next()
		c.ExpectRParen()
		idx := uint32(len(m.GlobalSection) + countImportsOf(m, wasm.ImportKindGlobal))
		m.ExportSection[nameTok.Value] = &wasm.Export{Name: nameTok.Value, Kind: wasm.ExportKindGlobal, Index: idx}
	}
	gt, err := parseGlobalTypeBody(c, source)
	if err != nil {
		return err
	}
	init, err := parseInstrSeq(c, pc, source, true)
	if err != nil {
		return err
	}
	init = append(init, wasm.Instruction{Op: endOp()})
	m.GlobalSection = append(m.GlobalSection, &wasm.Global{Type: gt, Init: &wasm.ConstantExpression{Instructions: init}})
	return nil
}

func countImportsOf(m *wasm.Module, kind wasm.ImportKind) int {
	n := 0
	for _, im := range m.ImportSection {
		if im.Kind == kind {
			n++
		}
	}
	return n
}

func parseExportField(c *TokenCursor, pc *ParseContext, source []byte, m *wasm.Module) error {
	c.ExpectLParen()
	c.Next() // "export"
	nameTok := c.Next()
	if err := c.ExpectLParen(); err != nil {
		return err
	}
	kwTok := c.Next()
	var kind wasm.ExportKind
	var ns *namespace
	switch kwTok.Value {
	case "func":
		kind, ns = wasm.ExportKindFunc, &pc.funcs
	case "table":
		kind, ns = wasm.ExportKindTable, &pc.tables
	case "memory":
		kind, ns = wasm.ExportKindMemory, &pc.mems
	case "global":
		kind, ns = wasm.ExportKindGlobal, &pc.globals
	case "tag":
		kind, ns = wasm.ExportKindTag, &pc.tags
	default:
		return unexpectedToken(source, kwTok)
	}
	idxTok := c.Next()
	idx, err := pc.resolveIndex(source, idxTok, ns, kwTok.Value)
	if err != nil {
		return err
	}
	if err := c.ExpectRParen(); err != nil {
		return err
	}
	m.ExportSection[nameTok.Value] = &wasm.Export{Name: nameTok.Value, Kind: kind, Index: idx}
	return nil
}

func parseStartField(c *TokenCursor, pc *ParseContext, source []byte, m *wasm.Module) error {
	c.ExpectLParen()
	c.Next() // "start"
	idxTok := c.Next()
	idx, err := pc.resolveIndex(source, idxTok, &pc.funcs, "func")
	if err != nil {
		return err
	}
	m.StartSection = &idx
	return nil
}

func parseElemField(c *TokenCursor, pc *ParseContext, source []byte, m *wasm.Module) error {
	c.ExpectLParen()
	c.Next() // "elem"
	c.ConsumeOptionalID()

	mode := wasm.ElemModeActive
	tableIdx := uint32(0)
	var offset *wasm.ConstantExpression

	switch {
	case c.PeekIsKeyword("declare"):
		c.Next()
		mode = wasm.ElemModeDeclarative
	case c.PeekIsKeyword("func"), c.AtRParen():
		mode = wasm.ElemModePassive
	case c.AtLParen():
		kw, _ := c.PeekFieldName()
		if kw == "table" {
			c.Next()
			c.Next()
			idxTok := c.Next()
			idx, err := pc.resolveIndex(source, idxTok, &pc.tables, "table")
			if err != nil {
				return err
			}
			tableIdx = idx
			c.ExpectRParen()
		}
		off, err := parseOffsetClause(c, pc, source)
		if err != nil {
			return err
		}
		offset = off
	}

	rt := wasm.FuncRef()
	var funcIndices []uint32
	var init []wasm.ConstantExpression
	if c.PeekIsKeyword("func") {
		c.Next()
		for !c.AtRParen() {
			idxTok := c.Next()
			idx, err := pc.resolveIndex(source, idxTok, &pc.funcs, "func")
			if err != nil {
				return err
			}
			funcIndices = append(funcIndices, idx)
		}
	} else {
		if tok := c.Peek(); tok != nil && tok.Type == TokenKeyword {
			vt, err := refTypeFromKeyword(source, tok)
			if err == nil {
				c.Next()
				rt = vt
			}
		}
		for !c.AtRParen() {
			expr, err := parseInstrSeq(c, pc, source, true)
			if err != nil {
				return err
			}
			expr = append(expr, wasm.Instruction{Op: endOp()})
			init = append(init, wasm.ConstantExpression{Instructions: expr})
		}
	}

	m.ElementSection = append(m.ElementSection, &wasm.ElementSegment{
		Mode: mode, TableIndex: tableIdx, Offset: offset, RefType: rt,
		FuncIndices: funcIndices, Init: init,
	})
	return nil
}

// parseOffsetClause parses `(offset instr*)` or the bare folded-expr
// shorthand the text format also allows in this position.
func parseOffsetClause(c *TokenCursor, pc *ParseContext, source []byte) (*wasm.ConstantExpression, error) {
	if kw, ok := c.PeekFieldName(); ok && kw == "offset" {
		c.Next()
		c.Next()
		in, err := parseInstrSeq(c, pc, source, true)
		if err != nil {
			return nil, err
		}
		in = append(in, wasm.Instruction{Op: endOp()})
		if err := c.ExpectRParen(); err != nil {
			return nil, err
		}
		return &wasm.ConstantExpression{Instructions: in}, nil
	}
	in, err := parseOneFoldedOperand(c, pc, source)
	if err != nil {
		return nil, err
	}
	in = append(in, wasm.Instruction{Op: endOp()})
	return &wasm.ConstantExpression{Instructions: in}, nil
}

func parseDataField(c *TokenCursor, pc *ParseContext, source []byte, m *wasm.Module) error {
	c.ExpectLParen()
	c.Next() // "data"
	c.ConsumeOptionalID()

	mode := wasm.DataModePassive
	memIdx := uint32(0)
	var offset *wasm.ConstantExpression
	if c.AtLParen() {
		mode = wasm.DataModeActive
		kw, _ := c.PeekFieldName()
		if kw == "memory" {
			c.Next()
			c.Next()
			idxTok := c.Next()
			idx, err := pc.resolveIndex(source, idxTok, &pc.mems, "memory")
			if err != nil {
				return err
			}
			memIdx = idx
			c.ExpectRParen()
		}
		off, err := parseOffsetClause(c, pc, source)
		if err != nil {
			return err
		}
		offset = off
	}

	var init []byte
	for {
		t := c.Peek()
		if t == nil || t.Type != TokenString {
			break
		}
		c.Next()
		init = append(init, []byte(t.Value)...)
	}

	m.DataSection = append(m.DataSection, &wasm.DataSegment{Mode: mode, MemIndex: memIdx, Offset: offset, Init: init})
	return nil
}

func parseTagField(c *TokenCursor, pc *ParseContext, source []byte, m *wasm.Module) error {
	c.ExpectLParen()
	c.Next() // "tag"
	c.ConsumeOptionalID()
	typeIdx, params, _, _, err := parseTypeUse(c, pc, source)
	if err != nil {
		return err
	}
	tt := &wasm.TagType{}
	if typeIdx != nil {
		tt.TypeIndex = *typeIdx
	} else {
		tt.TypeIndex = internFuncType(m, wasm.FunctionType{Params: params})
	}
	m.TagSection = append(m.TagSection, tt)
	return nil
}
