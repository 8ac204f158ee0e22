package wat

// TokenCursor walks a flat token stream one token at a time (component E).
// TokenCursor itself is just a plain index and nothing here is recursive;
// the expression parser in expr.go that drives it does recurse once per
// nesting level of folded expressions and blocks.
type TokenCursor struct {
	tokens []*Token
	pos    int
	source []byte
}

func NewTokenCursor(tokens []*Token, source []byte) *TokenCursor {
	return &TokenCursor{tokens: tokens, source: source}
}

// Peek returns the current token, or nil at end of stream.
func (c *TokenCursor) Peek() *Token {
	if c.pos >= len(c.tokens) {
		return nil
	}
	return c.tokens[c.pos]
}

// Peek2 looks one token past the current one.
func (c *TokenCursor) Peek2() *Token {
	if c.pos+1 >= len(c.tokens) {
		return nil
	}
	return c.tokens[c.pos+1]
}

// Next consumes and returns the current token.
func (c *TokenCursor) Next() *Token {
	t := c.Peek()
	if t != nil {
		c.pos++
	}
	return t
}

// AtRParen reports whether the cursor is sitting on a closing paren (the
// common "are we done with this field" check).
func (c *TokenCursor) AtRParen() bool {
	t := c.Peek()
	return t != nil && t.Type == TokenRParen
}

// AtLParen reports whether the cursor is sitting on an opening paren.
func (c *TokenCursor) AtLParen() bool {
	t := c.Peek()
	return t != nil && t.Type == TokenLParen
}

// AtEnd reports whether the cursor has no more tokens.
func (c *TokenCursor) AtEnd() bool { return c.pos >= len(c.tokens) }

// ExpectLParen consumes an opening paren or fails.
func (c *TokenCursor) ExpectLParen() error {
	t := c.Next()
	if t == nil || t.Type != TokenLParen {
		return unexpectedToken(c.source, t)
	}
	return nil
}

// ExpectRParen consumes a closing paren or fails.
func (c *TokenCursor) ExpectRParen() error {
	t := c.Next()
	if t == nil || t.Type != TokenRParen {
		return unexpectedToken(c.source, t)
	}
	return nil
}

// ExpectKeyword consumes a keyword token matching kw or fails.
func (c *TokenCursor) ExpectKeyword(kw string) error {
	t := c.Next()
	if t == nil || t.Type != TokenKeyword || t.Value != kw {
		return expectedField(c.source, t, kw)
	}
	return nil
}

// PeekIsKeyword reports whether the current token is the keyword kw without
// consuming it.
func (c *TokenCursor) PeekIsKeyword(kw string) bool {
	t := c.Peek()
	return t != nil && t.Type == TokenKeyword && t.Value == kw
}

// PeekFieldName reports the keyword naming the field about to be entered:
// callers use this to decide which field parser to dispatch to without
// consuming the `(` + keyword pair.
func (c *TokenCursor) PeekFieldName() (string, bool) {
	if !c.AtLParen() {
		return "", false
	}
	t := c.Peek2()
	if t == nil || t.Type != TokenKeyword {
		return "", false
	}
	return t.Value, true
}

// ConsumeOptionalID consumes and returns a leading $id token if present,
// stripped of its '$', and reports whether one was found.
func (c *TokenCursor) ConsumeOptionalID() (string, bool) {
	t := c.Peek()
	if t == nil || t.Type != TokenID {
		return "", false
	}
	c.Next()
	return stripDollar(t.Value), true
}

func (c *TokenCursor) errorAtCurrent(format string, args ...any) error {
	t := c.Peek()
	if t == nil {
		return newParseError(c.source, 0, 0, format, args...)
	}
	return newParseError(c.source, t.Line, t.Col, format, args...)
}
