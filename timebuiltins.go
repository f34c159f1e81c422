package interrotron

import (
	"time"

	"github.com/andrewvc/interrotron/lexer"
)

// parseInstant parses s the same way a #t{...} literal's interior is
// parsed, so that (time "...") and a literal agree on accepted formats.
func parseInstant(s string) (time.Time, error) {
	return time.Parse(lexer.TimeLayout, s)
}

// approxMonthSeconds is the fixed 30-day approximation "months" uses
// rather than a calendar-aware duration type.
const approxMonthSeconds = 30 * 86400

func requireOptionalMultiplicand(name string, args []Value) (float64, error) {
	switch len(args) {
	case 0:
		return 1, nil
	case 1:
		if !args[0].IsNumeric() {
			return 0, notNumeric(name, args[0])
		}
		return args[0].asFloat(), nil
	default:
		return 0, argErrorf("%s: expected 0 or 1 argument(s) (got %d)", name, len(args))
	}
}

// durationBuiltin builds a (seconds|minutes|hours|days|months) builtin
// that returns an integer count of seconds, per secondsPerUnit.
func durationBuiltin(name string, secondsPerUnit int64) HostFunc {
	return func(ev *evaluation, args []Value) (Value, error) {
		n, err := requireOptionalMultiplicand(name, args)
		if err != nil {
			return Value{}, err
		}
		return Int(int64(n) * secondsPerUnit), nil
	}
}

func builtinNow(ev *evaluation, args []Value) (Value, error) {
	if len(args) != 0 {
		return Value{}, arityError("now", 0, len(args))
	}
	return Time(time.Now().UTC()), nil
}

// (ago secs) returns the instant secs seconds before now.
func builtinAgo(ev *evaluation, args []Value) (Value, error) {
	if len(args) != 1 {
		return Value{}, arityError("ago", 1, len(args))
	}
	if !args[0].IsNumeric() {
		return Value{}, notNumeric("ago", args[0])
	}
	d := time.Duration(args[0].asFloat() * float64(time.Second))
	return Time(time.Now().UTC().Add(-d)), nil
}

// (from-now secs) returns the instant secs seconds after now.
func builtinFromNow(ev *evaluation, args []Value) (Value, error) {
	if len(args) != 1 {
		return Value{}, arityError("from-now", 1, len(args))
	}
	if !args[0].IsNumeric() {
		return Value{}, notNumeric("from-now", args[0])
	}
	d := time.Duration(args[0].asFloat() * float64(time.Second))
	return Time(time.Now().UTC().Add(d)), nil
}

// builtinRand implements the "rand" builtin using the per-evaluation
// random source (ev.rng) rather than the global math/rand source, so
// that concurrent Run calls on the same Program never share entropy
// state. (rand) returns a float in [0,1); (rand n) returns a value in
// [0,n) of the same kind as n.
func builtinRand(ev *evaluation, args []Value) (Value, error) {
	switch len(args) {
	case 0:
		return Float(ev.rng.Float64()), nil
	case 1:
		n := args[0]
		switch n.Kind {
		case KindInt:
			if n.Int <= 0 {
				return Value{}, argErrorf("rand: argument must be positive (got %d)", n.Int)
			}
			return Int(ev.rng.Int63n(n.Int)), nil
		case KindFloat:
			if n.Float <= 0 {
				return Value{}, argErrorf("rand: argument must be positive (got %g)", n.Float)
			}
			return Float(ev.rng.Float64() * n.Float), nil
		default:
			return Value{}, notNumeric("rand", n)
		}
	default:
		return Value{}, argErrorf("rand: expected 0 or 1 argument(s) (got %d)", len(args))
	}
}

func init() {
	builtins["now"] = builtinNow
	builtins["seconds"] = durationBuiltin("seconds", 1)
	builtins["minutes"] = durationBuiltin("minutes", 60)
	builtins["hours"] = durationBuiltin("hours", 3600)
	builtins["days"] = durationBuiltin("days", 86400)
	builtins["months"] = durationBuiltin("months", approxMonthSeconds)
	builtins["ago"] = builtinAgo
	builtins["from-now"] = builtinFromNow
	builtins["rand"] = builtinRand
}
