package interrotron

import (
	"math/rand"

	"github.com/andrewvc/interrotron/parser"
	"github.com/andrewvc/interrotron/token"
)

// Node is re-exported so callers never have to import package parser
// directly to hold onto a compiled form.
type Node = parser.Node

// Unbounded disables the operation governor for a Run/Program.Run call.
const Unbounded = -1

// evaluation carries the per-call mutable state for one Run: an
// operation counter and its configured cap, plus a random source. A
// fresh evaluation is constructed for every top-level Run so that state
// never leaks between calls, even when the same *Program is invoked
// concurrently.
type evaluation struct {
	ops    int
	maxOps int // Unbounded, or a non-negative cap
	rng    *rand.Rand
}

// charge increments the operation counter and fails with
// OpsThresholdExceeded once it exceeds the configured maximum. It must
// be called exactly once per list-evaluation step and once per macro
// re-entry.
func (ev *evaluation) charge() error {
	ev.ops++
	if ev.maxOps >= 0 && ev.ops > ev.maxOps {
		return newError(OpsThresholdExceeded, "operation count exceeded maximum of %d", ev.maxOps)
	}
	return nil
}

// Eval evaluates node in frame under ev's governor.
func Eval(ev *evaluation, frame *Frame, node *Node) (Value, error) {
	if node.IsAtom() {
		return evalAtom(frame, node)
	}
	if len(node.Items) == 0 {
		return Nil, nil
	}
	if err := ev.charge(); err != nil {
		return Value{}, err
	}
	return evalFormBody(ev, frame, node)
}

func evalAtom(frame *Frame, node *Node) (Value, error) {
	tok := node.Tok
	switch tok.Kind {
	case token.NUM:
		if tok.IsFloat {
			return Float(tok.Float), nil
		}
		return Int(tok.Int), nil
	case token.STR:
		return Str(tok.Text), nil
	case token.TIME:
		return Time(tok.Time), nil
	case token.VAR:
		return frame.Get(tok.Text)
	case token.FNKeyword:
		return Value{}, argErrorf("reserved token used in value position: %s", tok.Text)
	default:
		return Value{}, argErrorf("unexpected token kind in value position: %s", tok.Kind)
	}
}

// evalFormBody evaluates a non-empty list node. It assumes the caller has
// already charged this step against the operation counter; it is also
// called directly (bypassing a second charge) when re-entering for a
// macro-returned node, so that a macro expansion costs exactly one
// additional step regardless of what the returned node dispatches to.
func evalFormBody(ev *evaluation, frame *Frame, node *Node) (Value, error) {
	head, err := Eval(ev, frame, node.Items[0])
	if err != nil {
		return Value{}, err
	}
	args := node.Items[1:]

	switch head.Kind {
	case KindMacro:
		val, reeval, err := head.Macro(ev, frame, args)
		if err != nil {
			return Value{}, err
		}
		if reeval == nil {
			return val, nil
		}
		if err := ev.charge(); err != nil {
			return Value{}, err
		}
		if reeval.IsAtom() {
			return evalAtom(frame, reeval)
		}
		if len(reeval.Items) == 0 {
			return Nil, nil
		}
		return evalFormBody(ev, frame, reeval)
	case KindHostFn:
		argv := make([]Value, len(args))
		for i, a := range args {
			v, err := Eval(ev, frame, a)
			if err != nil {
				return Value{}, err
			}
			argv[i] = v
		}
		return apply(ev, head, argv)
	default:
		return Value{}, argErrorf("non-callable in head position: %s", head.Kind)
	}
}

// apply invokes a HostFn Value (builtin or lambda closure) with already
// evaluated arguments.
func apply(ev *evaluation, fn Value, argv []Value) (Value, error) {
	if fn.Kind != KindHostFn {
		return Value{}, argErrorf("non-callable in head position: %s", fn.Kind)
	}
	if fn.Fn != nil {
		return fn.Fn(ev, argv)
	}
	if len(argv) != len(fn.Params) {
		return Value{}, argErrorf("%s: expects %d arguments (got %d)", displayName(fn), len(fn.Params), len(argv))
	}
	callFrame := fn.Env.NewChild()
	for i, p := range fn.Params {
		callFrame.SetLocal(p, argv[i])
	}
	var result Value
	for _, form := range fn.Body {
		v, err := Eval(ev, callFrame, form)
		if err != nil {
			return Value{}, err
		}
		result = v
	}
	return result, nil
}

func displayName(fn Value) string {
	if fn.Name != "" {
		return fn.Name
	}
	return "lambda"
}
