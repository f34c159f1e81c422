package interrotron

import (
	"github.com/andrewvc/interrotron/lexer"
	"github.com/andrewvc/interrotron/parser"
)

// Program is a compiled (lexed and parsed) source text, ready to be run
// any number of times, including concurrently, against different
// bindings, without the compile step and any one run sharing mutable
// state.
type Program struct {
	forms []*Node
}

// Compile lexes and parses source eagerly, returning a Program that can
// be Run repeatedly without re-parsing.
func Compile(source string) (*Program, error) {
	toks, err := lexer.Lex(source)
	if err != nil {
		if lerr, ok := err.(*lexer.Error); ok {
			return nil, newError(InvalidToken, "%s", lerr.Error())
		}
		return nil, err
	}
	forms, err := parser.Parse(toks)
	if err != nil {
		if perr, ok := err.(*parser.Error); ok {
			return nil, newError(SyntaxError, "%s", perr.Error())
		}
		return nil, err
	}
	return &Program{forms: forms}, nil
}

// Run evaluates p's forms in sequence against a fresh root frame and
// returns the value of the last form (Nil for an empty program). Every
// call builds its own Frame chain and evaluation state, so the same
// *Program can be Run concurrently from multiple goroutines.
func (p *Program) Run(opts ...Option) (Value, error) {
	cfg := newRunConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	root := newRootFrame(cfg.bindings)
	ev := &evaluation{maxOps: cfg.maxOps, rng: cfg.randSource()}

	var result Value = Nil
	for _, form := range p.forms {
		v, err := Eval(ev, root, form)
		if err != nil {
			return Value{}, err
		}
		result = v
	}
	return result, nil
}

// Interpreter is a stateless convenience wrapper around Compile+Run for
// callers that don't need to reuse a compiled Program across calls. It
// holds no mutable state and is safe for concurrent use.
type Interpreter struct{}

// NewInterpreter returns an Interpreter.
func NewInterpreter() *Interpreter {
	return &Interpreter{}
}

// Run compiles and immediately runs source once.
func (in *Interpreter) Run(source string, opts ...Option) (Value, error) {
	prog, err := Compile(source)
	if err != nil {
		return Value{}, err
	}
	return prog.Run(opts...)
}
