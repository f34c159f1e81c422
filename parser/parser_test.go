package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/andrewvc/interrotron/lexer"
)

func parseSrc(t *testing.T, src string) []*Node {
	t.Helper()
	toks, err := lexer.Lex(src)
	require.NoError(t, err)
	forms, err := Parse(toks)
	require.NoError(t, err)
	return forms
}

func TestParseAtom(t *testing.T) {
	forms := parseSrc(t, `42`)
	require.Len(t, forms, 1)
	require.True(t, forms[0].IsAtom())
	require.Equal(t, "42", forms[0].String())
}

func TestParseNestedList(t *testing.T) {
	forms := parseSrc(t, `(+ (* 2 2) (% 5 4))`)
	require.Len(t, forms, 1)
	root := forms[0]
	require.False(t, root.IsAtom())
	require.Len(t, root.Items, 3)
	require.Equal(t, "(+ (* 2 2) (% 5 4))", root.String())
}

func TestParseMultipleTopLevelForms(t *testing.T) {
	forms := parseSrc(t, `(setglobal x 1) (+ x 1)`)
	require.Len(t, forms, 2)
}

func TestParseEmptySource(t *testing.T) {
	forms := parseSrc(t, ``)
	require.Empty(t, forms)
}

func TestParseEmptyList(t *testing.T) {
	forms := parseSrc(t, `()`)
	require.Len(t, forms, 1)
	require.False(t, forms[0].IsAtom())
	require.Empty(t, forms[0].Items)
}

func TestParseUnbalancedParens(t *testing.T) {
	toks, err := lexer.Lex(`(+ 1 2`)
	require.NoError(t, err)
	_, err = Parse(toks)
	require.Error(t, err)
	var perr *Error
	require.ErrorAs(t, err, &perr)
	require.Contains(t, perr.Msg, "unbalanced parentheses")
}

func TestParseUnexpectedCloseParen(t *testing.T) {
	toks, err := lexer.Lex(`)`)
	require.NoError(t, err)
	_, err = Parse(toks)
	require.Error(t, err)
}
