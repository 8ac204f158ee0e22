package wat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLexBasicTokens(t *testing.T) {
	toks, err := Lex([]byte(`(module $m (func $f (param $x i32)))`))
	require.NoError(t, err)
	var kinds []TokenType
	for _, tok := range toks {
		kinds = append(kinds, tok.Type)
	}
	require.Equal(t, []TokenType{
		TokenLParen, TokenKeyword, TokenID,
		TokenLParen, TokenKeyword, TokenID,
		TokenLParen, TokenKeyword, TokenID, TokenKeyword, TokenRParen,
		TokenRParen, TokenRParen,
	}, kinds)
}

func TestLexLineComment(t *testing.T) {
	toks, err := Lex([]byte("(module ;; comment\n  (func))"))
	require.NoError(t, err)
	require.Len(t, toks, 6) // ( module ( func ) )
}

func TestLexNestedBlockComment(t *testing.T) {
	toks, err := Lex([]byte("(module (; outer (; inner ;) still outer ;) (func))"))
	require.NoError(t, err)
	require.Len(t, toks, 6) // ( module ( func ) )
}

func TestLexUnterminatedBlockComment(t *testing.T) {
	_, err := Lex([]byte("(module (; never closes"))
	require.Error(t, err)
}

func TestLexStringEscapes(t *testing.T) {
	toks, err := Lex([]byte(`"a\nb\t\"\u{48}\u{49}"`))
	require.NoError(t, err)
	require.Len(t, toks, 1)
	require.Equal(t, "a\nb\t\"HI", toks[0].Value)
}

func TestLexUnterminatedString(t *testing.T) {
	_, err := Lex([]byte(`"unterminated`))
	require.Error(t, err)
}

func TestLexClassifiesNumbersAndKeywords(t *testing.T) {
	toks, err := Lex([]byte("i32.add 42 -7 0x1F"))
	require.NoError(t, err)
	require.Equal(t, TokenKeyword, toks[0].Type)
	require.Equal(t, TokenUN, toks[1].Type)
	require.Equal(t, TokenSN, toks[2].Type)
	require.Equal(t, TokenUN, toks[3].Type)
}

func TestParseU64DecimalAndHex(t *testing.T) {
	v, err := parseU64("100_000")
	require.NoError(t, err)
	require.Equal(t, uint64(100000), v)

	v, err = parseU64("0xFF")
	require.NoError(t, err)
	require.Equal(t, uint64(255), v)
}

func TestParseF64Special(t *testing.T) {
	v, err := parseF64("inf")
	require.NoError(t, err)
	require.True(t, v > 0 && v*2 == v) // +Inf

	v, err = parseF64("-inf")
	require.NoError(t, err)
	require.True(t, v < 0)

	v, err = parseF64("nan")
	require.NoError(t, err)
	require.True(t, v != v) // NaN is never equal to itself
}

func TestParseF64HexFloat(t *testing.T) {
	v, err := parseF64("0x1.8p1")
	require.NoError(t, err)
	require.Equal(t, 3.0, v)
}
