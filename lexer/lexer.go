// Package lexer implements the longest-prefix regular scanner that turns
// interrotron source text into a flat token.Token stream.
//
// Rules are tried in declared order at each position and the first
// anchored match wins. NUM is tried before VAR so that a leading minus
// sign attached to digits is always consumed as part of a signed numeric
// literal rather than being claimed by VAR's operator-charset symbol rule
// (VAR's pattern also accepts '-').
package lexer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/andrewvc/interrotron/token"
)

type rule struct {
	kind Kind
	re   *regexp.Regexp
}

// Kind aliases token.Kind so callers of this package don't need a second
// import for rule configuration.
type Kind = token.Kind

var rules = []rule{
	{token.LPAR, regexp.MustCompile(`^\(`)},
	{token.RPAR, regexp.MustCompile(`^\)`)},
	{token.TIME, regexp.MustCompile(`^#t\{([^{}]+)\}`)},
	{token.STR, regexp.MustCompile(`^(?:"(?:[^"\\]|\\.)*"|'(?:[^'\\]|\\.)*')`)},
	{token.FNKeyword, regexp.MustCompile(`^fn\b`)},
	{token.NUM, regexp.MustCompile(`^-?[0-9]+(?:\.[0-9]+)?`)},
	{token.VAR, regexp.MustCompile(`^[A-Za-z_><+!=*/%?\-]+`)},
	{token.SPC, regexp.MustCompile(`^\s+`)},
}

// TimeLayout is the layout used to parse the text inside a #t{...}
// literal and by the "time" conversion builtin.
const TimeLayout = time.RFC3339

// Error reports a lexical failure: the lexer could not match any rule at
// the current position.
type Error struct {
	Pos  token.Pos
	Text string // the unmatched remainder truncated for display, or why a matched literal could not be decoded
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid-token at %s: %s", e.Pos, e.Text)
}

// Lex scans src and returns the flat sequence of tokens it contains.
// Whitespace tokens are matched and discarded; they never appear in the
// returned slice. Lex fails eagerly with *Error when no rule matches at
// the current offset.
func Lex(src string) ([]*token.Token, error) {
	var out []*token.Token
	line, col := 1, 1
	rest := src
	offset := 0
	for len(rest) > 0 {
		matched := false
		for _, r := range rules {
			loc := r.re.FindStringIndex(rest)
			if loc == nil || loc[0] != 0 {
				continue
			}
			text := rest[:loc[1]]
			pos := token.Pos{Offset: offset, Line: line, Col: col}
			if r.kind != token.SPC {
				tok, err := build(r.kind, text, pos)
				if err != nil {
					return nil, err
				}
				out = append(out, tok)
			}
			advLine, advCol := advance(text, line, col)
			line, col = advLine, advCol
			offset += len(text)
			rest = rest[loc[1]:]
			matched = true
			break
		}
		if !matched {
			trunc := rest
			if len(trunc) > 24 {
				trunc = trunc[:24] + "..."
			}
			return nil, &Error{Pos: token.Pos{Offset: offset, Line: line, Col: col}, Text: trunc}
		}
	}
	return out, nil
}

func advance(text string, line, col int) (int, int) {
	for _, r := range text {
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

func build(kind token.Kind, text string, pos token.Pos) (*token.Token, error) {
	tok := &token.Token{Kind: kind, Text: text, Pos: pos}
	switch kind {
	case token.NUM:
		tok.IsFloat = strings.Contains(text, ".")
		if tok.IsFloat {
			f, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, &Error{Pos: pos, Text: fmt.Sprintf("bad number %q: %v", text, err)}
			}
			tok.Float = f
		} else {
			n, err := strconv.ParseInt(text, 10, 64)
			if err != nil {
				return nil, &Error{Pos: pos, Text: fmt.Sprintf("bad number %q: %v", text, err)}
			}
			tok.Int = n
		}
	case token.STR:
		unescaped, err := unescape(text[1 : len(text)-1])
		if err != nil {
			return nil, &Error{Pos: pos, Text: err.Error()}
		}
		tok.Text = unescaped
	case token.TIME:
		inner := text[3 : len(text)-1] // strip "#t{" and "}"
		inner = strings.TrimSpace(inner)
		t, err := time.Parse(TimeLayout, inner)
		if err != nil {
			return nil, &Error{Pos: pos, Text: fmt.Sprintf("bad time literal %q: %v", inner, err)}
		}
		tok.Time = t
		tok.Text = inner
	case token.VAR:
		// Text is the symbol itself; nothing further to compute.
	}
	return tok, nil
}

func unescape(s string) (string, error) {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		c := s[i]
		if c != '\\' {
			r, size := utf8.DecodeRuneInString(s[i:])
			b.WriteRune(r)
			i += size
			continue
		}
		if i+1 >= len(s) {
			return "", fmt.Errorf("unterminated escape sequence")
		}
		switch s[i+1] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case '\\':
			b.WriteByte('\\')
		case '"':
			b.WriteByte('"')
		case '\'':
			b.WriteByte('\'')
		default:
			b.WriteByte(s[i+1])
		}
		i += 2
	}
	return b.String(), nil
}
