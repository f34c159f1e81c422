package interrotron

import "time"

// Kind identifies the tag of a Value. There is no separate "user
// callable" tag: a lambda-produced closure is a HostFn whose
// Params/Body/Env fields are populated instead of Fn.
type Kind uint8

const (
	KindNil Kind = iota
	KindBool
	KindInt
	KindFloat
	KindStr
	KindTime
	KindArray
	KindHostFn
	KindMacro
)

var kindNames = [...]string{
	KindNil:    "nil",
	KindBool:   "bool",
	KindInt:    "int",
	KindFloat:  "float",
	KindStr:    "string",
	KindTime:   "time",
	KindArray:  "array",
	KindHostFn: "function",
	KindMacro:  "macro",
}

func (k Kind) String() string {
	if int(k) >= len(kindNames) {
		return "invalid"
	}
	return kindNames[k]
}

// HostFunc is the signature a host or a builtin implements: it receives
// the active evaluation (needed only by the handful of builtins, such as
// "apply", that must recursively invoke a user closure) and
// already-evaluated arguments, and returns a result or a failure.
type HostFunc func(ev *evaluation, args []Value) (Value, error)

// Evaluation names the per-call evaluation state a HostFunc receives, so
// that a host package can write a HostFunc of its own.
type Evaluation = evaluation

// MacroFunc implements a special form. It receives the un-evaluated
// argument nodes and the frame the form appears in, and either returns a
// Value directly (used as-is) or a Node to re-evaluate exactly once (see
// evalFormBody's re-entry accounting in eval.go).
type MacroFunc func(ev *evaluation, frame *Frame, args []*Node) (Value, *Node, error)

// Value is the tagged union that flows through the evaluator.
type Value struct {
	Kind Kind

	Bool  bool
	Int   int64
	Float float64
	Str   string
	Time  time.Time
	Array []Value

	// KindHostFn: exactly one of Fn or (Body != nil) is set.
	Fn     HostFunc
	Name   string // diagnostic name, builtins and defn-bound closures
	Params []string
	Body   []*Node
	Env    *Frame

	// KindMacro.
	Macro MacroFunc
}

// Nil is the canonical nil Value.
var Nil = Value{Kind: KindNil}

// Bool constructs a boolean Value.
func Bool(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// Int constructs an integer Value.
func Int(n int64) Value { return Value{Kind: KindInt, Int: n} }

// Float constructs a floating point Value.
func Float(f float64) Value { return Value{Kind: KindFloat, Float: f} }

// Str constructs a string Value.
func Str(s string) Value { return Value{Kind: KindStr, Str: s} }

// Time constructs a Value representing an absolute instant.
func Time(t time.Time) Value { return Value{Kind: KindTime, Time: t} }

// Array constructs an array Value from the given elements. The backing
// slice is copied so that later mutation of vs by the caller cannot
// retroactively change the Value.
func Array(vs []Value) Value {
	cp := make([]Value, len(vs))
	copy(cp, vs)
	return Value{Kind: KindArray, Array: cp}
}

// NewHostFunc constructs a callable Value backed by a native Go function.
// This is what a host uses to register an adapter in a binding map (Sec
// 6).
func NewHostFunc(name string, fn HostFunc) Value {
	return Value{Kind: KindHostFn, Name: name, Fn: fn}
}

func newMacro(name string, fn MacroFunc) Value {
	return Value{Kind: KindMacro, Name: name, Macro: fn}
}

// IsNumeric reports whether v is an Int or a Float.
func (v Value) IsNumeric() bool {
	return v.Kind == KindInt || v.Kind == KindFloat
}

// IsCallable reports whether v can appear in head position and be applied
// to evaluated arguments (builtins and lambda closures alike).
func (v Value) IsCallable() bool {
	return v.Kind == KindHostFn
}

// Truthy reports whether v is truthy: false and nil are falsy,
// everything else (including 0, "", and empty arrays) is truthy.
func (v Value) Truthy() bool {
	if v.Kind == KindNil {
		return false
	}
	if v.Kind == KindBool {
		return v.Bool
	}
	return true
}

// asFloat returns v's numeric value widened to float64. The caller must
// have already checked IsNumeric.
func (v Value) asFloat() float64 {
	if v.Kind == KindInt {
		return float64(v.Int)
	}
	return v.Float
}
