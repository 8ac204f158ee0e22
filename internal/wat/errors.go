package wat

import (
	"fmt"
	"strings"
)

// ParseErrorKind enumerates the text-parser error kinds of spec.md §7,
// mirroring binary.ErrorKind for the text front end.
type ParseErrorKind string

const (
	KindSyntax             ParseErrorKind = "Syntax"
	KindUnexpectedToken    ParseErrorKind = "UnexpectedToken"
	KindExpectedField      ParseErrorKind = "ExpectedField"
	KindUnexpectedField    ParseErrorKind = "UnexpectedField"
	KindUnhandledField     ParseErrorKind = "UnhandledField"
	KindUndefinedIdentifier ParseErrorKind = "UndefinedIdentifier"
	KindUnsupportedFeature  ParseErrorKind = "UnsupportedFeature"
)

// ParseError is the error type the lexer, token cursor and parser raise for
// syntax and resolution failures (§6.4): it always carries a Kind, the
// offending line/column, a message, and (when available) a rendered source
// snippet. A malformed numeric literal (limits, constants, memarg values) is
// returned as the underlying strconv error instead, without a line/column. Path is set post-hoc by
// SetPath when the caller knows where the input came from but the parser
// didn't (e.g. ParseText was handed a []byte with no associated file).
type ParseError struct {
	Kind      ParseErrorKind
	Line, Col int
	Msg       string
	Context   string
	Path      string
	cause     error
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s:%d:%d: %s", e.Path, e.Line, e.Col, e.Msg)
	}
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Col, e.Msg)
}

func (e *ParseError) Unwrap() error { return e.cause }

// SetPath annotates an already-constructed error with a source file path
// (§6.4 "Setting a file path on an already-constructed error").
func (e *ParseError) SetPath(path string) { e.Path = path }

// snippet renders the offending source line with a caret under the column,
// mirroring wast's `Error::message` rendering (§9 supplemented feature).
func snippet(source []byte, line, col int) string {
	if source == nil || line < 1 {
		return ""
	}
	lines := strings.Split(string(source), "\n")
	if line > len(lines) {
		return ""
	}
	text := lines[line-1]
	if col < 1 {
		col = 1
	}
	if col > len(text)+1 {
		col = len(text) + 1
	}
	return text + "\n" + strings.Repeat(" ", col-1) + "^"
}

func newKindErr(kind ParseErrorKind, source []byte, line, col int, format string, args ...any) *ParseError {
	return &ParseError{
		Kind:    kind,
		Line:    line,
		Col:     col,
		Msg:     fmt.Sprintf(format, args...),
		Context: snippet(source, line, col),
	}
}

func newParseError(source []byte, line, col int, format string, args ...any) *ParseError {
	return newKindErr(KindSyntax, source, line, col, format, args...)
}

func unexpectedToken(source []byte, tok *Token) *ParseError {
	if tok == nil {
		return newKindErr(KindUnexpectedToken, source, 0, 0, "unexpected end of input")
	}
	return newKindErr(KindUnexpectedToken, source, tok.Line, tok.Col, "unexpected token %s %q", tok.Type, tok.Value)
}

func expectedField(source []byte, tok *Token, want string) *ParseError {
	if tok == nil {
		return newKindErr(KindExpectedField, source, 0, 0, "expected field %q, got end of input", want)
	}
	return newKindErr(KindExpectedField, source, tok.Line, tok.Col, "expected field %q, got %q", want, tok.Value)
}

func unexpectedFieldName(source []byte, tok *Token) *ParseError {
	return newKindErr(KindUnexpectedField, source, tok.Line, tok.Col, "unexpected field name %q", tok.Value)
}

func unhandledSection(source []byte, tok *Token) *ParseError {
	return newKindErr(KindUnhandledField, source, tok.Line, tok.Col, "unhandled module field %q", tok.Value)
}

func undefinedIdentifier(source []byte, tok *Token, namespace string) *ParseError {
	return newKindErr(KindUndefinedIdentifier, source, tok.Line, tok.Col, "undefined %s identifier %q", namespace, tok.Value)
}

func unsupportedFeature(source []byte, tok *Token, mnemonic string, proposal string) *ParseError {
	return newKindErr(KindUnsupportedFeature, source, tok.Line, tok.Col, "opcode %s requires disabled proposal %q", mnemonic, proposal)
}
