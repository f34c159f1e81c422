// Package parser implements a recursive descent parser over the
// following grammar:
//
//	Program   := Form*
//	Form      := Atom | List
//	List      := '(' Form* ')'
//	Atom      := VAR | NUM | STR | TIME | FN_KEYWORD
//
// It never invents an explicit "expr" marker; a parenthesized form is
// simply an ordered sequence of child Nodes.
package parser

import (
	"fmt"

	"github.com/andrewvc/interrotron/token"
)

// Node is either an atom (Tok != nil) or a list of child Nodes (Tok ==
// nil, Items holds the sequence, possibly empty).
type Node struct {
	Tok   *token.Token
	Items []*Node
}

// IsAtom reports whether n is a leaf token rather than a parenthesized
// form.
func (n *Node) IsAtom() bool {
	return n.Tok != nil
}

func (n *Node) String() string {
	if n.IsAtom() {
		return n.Tok.Text
	}
	s := "("
	for i, c := range n.Items {
		if i > 0 {
			s += " "
		}
		s += c.String()
	}
	return s + ")"
}

// Error reports a parse failure: unbalanced parentheses or a token
// appearing where the grammar forbids it (a lone ')').
type Error struct {
	Pos token.Pos
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("syntax-error at %s: %s", e.Pos, e.Msg)
}

// Parse consumes the entire token stream and returns the sequence of
// top-level forms. An empty token stream yields an empty, non-nil slice.
func Parse(toks []*token.Token) ([]*Node, error) {
	p := &parser{toks: toks}
	forms := []*Node{}
	for !p.atEnd() {
		n, err := p.form()
		if err != nil {
			return nil, err
		}
		forms = append(forms, n)
	}
	return forms, nil
}

type parser struct {
	toks []*token.Token
	pos  int
}

func (p *parser) atEnd() bool {
	return p.pos >= len(p.toks)
}

func (p *parser) peek() *token.Token {
	if p.atEnd() {
		return nil
	}
	return p.toks[p.pos]
}

func (p *parser) next() *token.Token {
	t := p.toks[p.pos]
	p.pos++
	return t
}

func (p *parser) form() (*Node, error) {
	t := p.peek()
	if t == nil {
		return nil, &Error{Msg: "unexpected end of input"}
	}
	switch t.Kind {
	case token.LPAR:
		return p.list()
	case token.RPAR:
		return nil, &Error{Pos: t.Pos, Msg: "unexpected ')'"}
	case token.VAR, token.NUM, token.STR, token.TIME, token.FNKeyword:
		p.next()
		return &Node{Tok: t}, nil
	default:
		return nil, &Error{Pos: t.Pos, Msg: fmt.Sprintf("unexpected token %s", t.Kind)}
	}
}

func (p *parser) list() (*Node, error) {
	open := p.next() // consume '('
	var items []*Node
	for {
		t := p.peek()
		if t == nil {
			return nil, &Error{Pos: open.Pos, Msg: "unbalanced parentheses: missing ')'"}
		}
		if t.Kind == token.RPAR {
			p.next()
			return &Node{Items: items}, nil
		}
		n, err := p.form()
		if err != nil {
			return nil, err
		}
		items = append(items, n)
	}
}
