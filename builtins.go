package interrotron

import (
	"math"
	"strconv"
	"strings"
)

// builtins is the fixed set of callables bound in every root frame
// besides the special forms: arithmetic, comparison, logic, string,
// conversion, array, and meta operations a rule author can call.
var builtins = map[string]HostFunc{
	"+": builtinAdd,
	"-": builtinSub,
	"*": builtinMul,
	"/": builtinDiv,
	"%": builtinMod,

	"<":  builtinLT,
	"<=": builtinLEq,
	">":  builtinGT,
	">=": builtinGEq,
	"=":  builtinEq,
	"!=": builtinNEq,

	"not": builtinNot,
	"!":   builtinNot,

	"str":     builtinStr,
	"upcase":  builtinUpcase,
	"downcase": builtinDowncase,
	"strip":   builtinStrip,

	"int":   builtinToInt,
	"float": builtinToFloat,
	"time":  builtinToTime,

	"array":    builtinArray,
	"first":    builtinFirst,
	"last":     builtinLast,
	"nth":      builtinNth,
	"length":   builtinLength,
	"max":      builtinArrayMax,
	"min":      builtinArrayMin,
	"member?":  builtinMemberP,

	"identity": builtinIdentity,
	"apply":    builtinApply,
}

func arityError(name string, want, got int) error {
	return argErrorf("%s: expected %d argument(s) (got %d)", name, want, got)
}

func notNumeric(name string, v Value) error {
	return argErrorf("%s: argument is not a number: %s", name, v.Kind)
}

// --- arithmetic ---

func numericPromote(vs []Value) (bool, error) {
	anyFloat := false
	for _, v := range vs {
		if !v.IsNumeric() {
			return false, nil
		}
		if v.Kind == KindFloat {
			anyFloat = true
		}
	}
	return anyFloat, nil
}

// builtinAdd doubles as string concatenation: when every argument is a
// string, "+" joins them exactly like "str"; when every argument is
// numeric, it reduces by numeric addition; mixing the two kinds is an
// argument-error rather than a silent coercion.
func builtinAdd(ev *evaluation, args []Value) (Value, error) {
	if len(args) == 0 {
		return Int(0), nil
	}
	if allStrings(args) {
		return builtinStr(ev, args)
	}
	for _, a := range args {
		if !a.IsNumeric() {
			return Value{}, notNumeric("+", a)
		}
	}
	if anyFloat(args) {
		sum := 0.0
		for _, a := range args {
			sum += a.asFloat()
		}
		return Float(sum), nil
	}
	var sum int64
	for _, a := range args {
		sum += a.Int
	}
	return Int(sum), nil
}

func allStrings(vs []Value) bool {
	for _, v := range vs {
		if v.Kind != KindStr {
			return false
		}
	}
	return true
}

func builtinSub(ev *evaluation, args []Value) (Value, error) {
	if len(args) == 0 {
		return Int(0), nil
	}
	for _, a := range args {
		if !a.IsNumeric() {
			return Value{}, notNumeric("-", a)
		}
	}
	if len(args) == 1 {
		if args[0].Kind == KindFloat {
			return Float(-args[0].Float), nil
		}
		return Int(-args[0].Int), nil
	}
	if anyFloat(args) {
		diff := args[0].asFloat()
		for _, a := range args[1:] {
			diff -= a.asFloat()
		}
		return Float(diff), nil
	}
	diff := args[0].Int
	for _, a := range args[1:] {
		diff -= a.Int
	}
	return Int(diff), nil
}

func builtinMul(ev *evaluation, args []Value) (Value, error) {
	if len(args) == 0 {
		return Int(1), nil
	}
	for _, a := range args {
		if !a.IsNumeric() {
			return Value{}, notNumeric("*", a)
		}
	}
	if anyFloat(args) {
		prod := 1.0
		for _, a := range args {
			prod *= a.asFloat()
		}
		return Float(prod), nil
	}
	prod := int64(1)
	for _, a := range args {
		prod *= a.Int
	}
	return Int(prod), nil
}

func builtinDiv(ev *evaluation, args []Value) (Value, error) {
	if len(args) != 2 {
		return Value{}, arityError("/", 2, len(args))
	}
	a, b := args[0], args[1]
	if !a.IsNumeric() {
		return Value{}, notNumeric("/", a)
	}
	if !b.IsNumeric() {
		return Value{}, notNumeric("/", b)
	}
	if a.Kind == KindInt && b.Kind == KindInt {
		if b.Int == 0 {
			return Value{}, argErrorf("/: division by zero")
		}
		return Int(a.Int / b.Int), nil
	}
	if b.asFloat() == 0 {
		return Value{}, argErrorf("/: division by zero")
	}
	return Float(a.asFloat() / b.asFloat()), nil
}

func builtinMod(ev *evaluation, args []Value) (Value, error) {
	if len(args) != 2 {
		return Value{}, arityError("%", 2, len(args))
	}
	a, b := args[0], args[1]
	if !a.IsNumeric() {
		return Value{}, notNumeric("%", a)
	}
	if !b.IsNumeric() {
		return Value{}, notNumeric("%", b)
	}
	if a.Kind == KindInt && b.Kind == KindInt {
		if b.Int == 0 {
			return Value{}, argErrorf("%%: division by zero")
		}
		return Int(a.Int % b.Int), nil
	}
	bf := b.asFloat()
	if bf == 0 {
		return Value{}, argErrorf("%%: division by zero")
	}
	return Float(math.Mod(a.asFloat(), bf)), nil
}

func anyFloat(vs []Value) bool {
	for _, v := range vs {
		if v.Kind == KindFloat {
			return true
		}
	}
	return false
}

// --- comparison ---

// orderable returns (result, true) for a and b of the same orderable kind
// (numeric-vs-numeric with promotion, string-vs-string, time-vs-time).
// The second return is false when a and b cannot be ordered at all.
func orderable(a, b Value) (int, bool) {
	switch {
	case a.IsNumeric() && b.IsNumeric():
		af, bf := a.asFloat(), b.asFloat()
		switch {
		case af < bf:
			return -1, true
		case af > bf:
			return 1, true
		default:
			return 0, true
		}
	case a.Kind == KindStr && b.Kind == KindStr:
		return strings.Compare(a.Str, b.Str), true
	case a.Kind == KindTime && b.Kind == KindTime:
		switch {
		case a.Time.Before(b.Time):
			return -1, true
		case a.Time.After(b.Time):
			return 1, true
		default:
			return 0, true
		}
	default:
		return 0, false
	}
}

func compareBuiltin(name string, args []Value, accept func(int) bool) (Value, error) {
	if len(args) != 2 {
		return Value{}, arityError(name, 2, len(args))
	}
	cmp, ok := orderable(args[0], args[1])
	if !ok {
		return Value{}, argErrorf("%s: arguments are not comparable: %s and %s", name, args[0].Kind, args[1].Kind)
	}
	return Bool(accept(cmp)), nil
}

func builtinLT(ev *evaluation, args []Value) (Value, error) {
	return compareBuiltin("<", args, func(c int) bool { return c < 0 })
}

func builtinLEq(ev *evaluation, args []Value) (Value, error) {
	return compareBuiltin("<=", args, func(c int) bool { return c <= 0 })
}

func builtinGT(ev *evaluation, args []Value) (Value, error) {
	return compareBuiltin(">", args, func(c int) bool { return c > 0 })
}

func builtinGEq(ev *evaluation, args []Value) (Value, error) {
	return compareBuiltin(">=", args, func(c int) bool { return c >= 0 })
}

// equalValue is deterministic and total: numeric kinds compare across
// Int/Float via promotion; same-kind values compare structurally, except
// that functions and special forms never compare equal, not even to
// themselves; values of unrelated kinds are simply unequal rather than an
// error.
func equalValue(a, b Value) bool {
	if a.IsNumeric() && b.IsNumeric() {
		return a.asFloat() == b.asFloat()
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindNil:
		return true
	case KindBool:
		return a.Bool == b.Bool
	case KindStr:
		return a.Str == b.Str
	case KindTime:
		return a.Time.Equal(b.Time)
	case KindArray:
		if len(a.Array) != len(b.Array) {
			return false
		}
		for i := range a.Array {
			if !equalValue(a.Array[i], b.Array[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func builtinEq(ev *evaluation, args []Value) (Value, error) {
	if len(args) != 2 {
		return Value{}, arityError("=", 2, len(args))
	}
	return Bool(equalValue(args[0], args[1])), nil
}

func builtinNEq(ev *evaluation, args []Value) (Value, error) {
	if len(args) != 2 {
		return Value{}, arityError("!=", 2, len(args))
	}
	return Bool(!equalValue(args[0], args[1])), nil
}

// --- logic ---

func builtinNot(ev *evaluation, args []Value) (Value, error) {
	if len(args) != 1 {
		return Value{}, arityError("not", 1, len(args))
	}
	return Bool(!args[0].Truthy()), nil
}

// --- strings ---

func builtinStr(ev *evaluation, args []Value) (Value, error) {
	var b strings.Builder
	for _, a := range args {
		b.WriteString(a.String())
	}
	return Str(b.String()), nil
}

func requireStr(name string, v Value) (string, error) {
	if v.Kind != KindStr {
		return "", argErrorf("%s: argument is not a string: %s", name, v.Kind)
	}
	return v.Str, nil
}

func builtinUpcase(ev *evaluation, args []Value) (Value, error) {
	if len(args) != 1 {
		return Value{}, arityError("upcase", 1, len(args))
	}
	s, err := requireStr("upcase", args[0])
	if err != nil {
		return Value{}, err
	}
	return Str(strings.ToUpper(s)), nil
}

func builtinDowncase(ev *evaluation, args []Value) (Value, error) {
	if len(args) != 1 {
		return Value{}, arityError("downcase", 1, len(args))
	}
	s, err := requireStr("downcase", args[0])
	if err != nil {
		return Value{}, err
	}
	return Str(strings.ToLower(s)), nil
}

func builtinStrip(ev *evaluation, args []Value) (Value, error) {
	if len(args) != 1 {
		return Value{}, arityError("strip", 1, len(args))
	}
	s, err := requireStr("strip", args[0])
	if err != nil {
		return Value{}, err
	}
	return Str(strings.TrimSpace(s)), nil
}

// --- conversions ---

func builtinToInt(ev *evaluation, args []Value) (Value, error) {
	if len(args) != 1 {
		return Value{}, arityError("int", 1, len(args))
	}
	v := args[0]
	switch v.Kind {
	case KindInt:
		return v, nil
	case KindFloat:
		return Int(int64(v.Float)), nil
	case KindBool:
		if v.Bool {
			return Int(1), nil
		}
		return Int(0), nil
	case KindStr:
		if n, err := strconv.ParseInt(strings.TrimSpace(v.Str), 10, 64); err == nil {
			return Int(n), nil
		}
		if f, err := strconv.ParseFloat(strings.TrimSpace(v.Str), 64); err == nil {
			return Int(int64(f)), nil
		}
		return Value{}, argErrorf("int: cannot parse %q as a number", v.Str)
	default:
		return Value{}, argErrorf("int: cannot convert %s to int", v.Kind)
	}
}

func builtinToFloat(ev *evaluation, args []Value) (Value, error) {
	if len(args) != 1 {
		return Value{}, arityError("float", 1, len(args))
	}
	v := args[0]
	switch v.Kind {
	case KindFloat:
		return v, nil
	case KindInt:
		return Float(float64(v.Int)), nil
	case KindStr:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.Str), 64)
		if err != nil {
			return Value{}, argErrorf("float: cannot parse %q as a number", v.Str)
		}
		return Float(f), nil
	default:
		return Value{}, argErrorf("float: cannot convert %s to float", v.Kind)
	}
}

func builtinToTime(ev *evaluation, args []Value) (Value, error) {
	if len(args) != 1 {
		return Value{}, arityError("time", 1, len(args))
	}
	s, err := requireStr("time", args[0])
	if err != nil {
		return Value{}, err
	}
	t, perr := parseInstant(s)
	if perr != nil {
		return Value{}, argErrorf("time: %v", perr)
	}
	return Time(t), nil
}

// --- arrays ---

func builtinArray(ev *evaluation, args []Value) (Value, error) {
	return Array(args), nil
}

func requireArray(name string, v Value) ([]Value, error) {
	if v.Kind != KindArray {
		return nil, argErrorf("%s: argument is not an array: %s", name, v.Kind)
	}
	return v.Array, nil
}

func builtinFirst(ev *evaluation, args []Value) (Value, error) {
	if len(args) != 1 {
		return Value{}, arityError("first", 1, len(args))
	}
	arr, err := requireArray("first", args[0])
	if err != nil {
		return Value{}, err
	}
	if len(arr) == 0 {
		return Value{}, argErrorf("first: array is empty")
	}
	return arr[0], nil
}

func builtinLast(ev *evaluation, args []Value) (Value, error) {
	if len(args) != 1 {
		return Value{}, arityError("last", 1, len(args))
	}
	arr, err := requireArray("last", args[0])
	if err != nil {
		return Value{}, err
	}
	if len(arr) == 0 {
		return Value{}, argErrorf("last: array is empty")
	}
	return arr[len(arr)-1], nil
}

func builtinNth(ev *evaluation, args []Value) (Value, error) {
	if len(args) != 2 {
		return Value{}, arityError("nth", 2, len(args))
	}
	if args[0].Kind != KindInt {
		return Value{}, argErrorf("nth: position is not an int: %s", args[0].Kind)
	}
	arr, err := requireArray("nth", args[1])
	if err != nil {
		return Value{}, err
	}
	pos := args[0].Int
	if pos < 0 || pos >= int64(len(arr)) {
		return Value{}, argErrorf("nth: index %d out of range (length %d)", pos, len(arr))
	}
	return arr[pos], nil
}

func builtinLength(ev *evaluation, args []Value) (Value, error) {
	if len(args) != 1 {
		return Value{}, arityError("length", 1, len(args))
	}
	switch args[0].Kind {
	case KindArray:
		return Int(int64(len(args[0].Array))), nil
	case KindStr:
		return Int(int64(len(args[0].Str))), nil
	default:
		return Value{}, argErrorf("length: argument is not an array or string: %s", args[0].Kind)
	}
}

func builtinArrayMax(ev *evaluation, args []Value) (Value, error) {
	if len(args) != 1 {
		return Value{}, arityError("max", 1, len(args))
	}
	arr, err := requireArray("max", args[0])
	if err != nil {
		return Value{}, err
	}
	if len(arr) == 0 {
		return Value{}, argErrorf("max: array is empty")
	}
	best := arr[0]
	if !best.IsNumeric() {
		return Value{}, notNumeric("max", best)
	}
	for _, v := range arr[1:] {
		if !v.IsNumeric() {
			return Value{}, notNumeric("max", v)
		}
		if v.asFloat() > best.asFloat() {
			best = v
		}
	}
	return best, nil
}

func builtinArrayMin(ev *evaluation, args []Value) (Value, error) {
	if len(args) != 1 {
		return Value{}, arityError("min", 1, len(args))
	}
	arr, err := requireArray("min", args[0])
	if err != nil {
		return Value{}, err
	}
	if len(arr) == 0 {
		return Value{}, argErrorf("min: array is empty")
	}
	best := arr[0]
	if !best.IsNumeric() {
		return Value{}, notNumeric("min", best)
	}
	for _, v := range arr[1:] {
		if !v.IsNumeric() {
			return Value{}, notNumeric("min", v)
		}
		if v.asFloat() < best.asFloat() {
			best = v
		}
	}
	return best, nil
}

func builtinMemberP(ev *evaluation, args []Value) (Value, error) {
	if len(args) != 2 {
		return Value{}, arityError("member?", 2, len(args))
	}
	arr, err := requireArray("member?", args[1])
	if err != nil {
		return Value{}, err
	}
	for _, v := range arr {
		if equalValue(args[0], v) {
			return Bool(true), nil
		}
	}
	return Bool(false), nil
}

// --- meta ---

func builtinIdentity(ev *evaluation, args []Value) (Value, error) {
	if len(args) != 1 {
		return Value{}, arityError("identity", 1, len(args))
	}
	return args[0], nil
}

// builtinApply implements "apply fn arr", splatting arr's elements as
// fn's arguments. A non-array second argument is treated as a
// single-element argument list, so "(apply f 2)" needs no "(array 2)"
// wrapper for a single-argument call.
func builtinApply(ev *evaluation, args []Value) (Value, error) {
	if len(args) != 2 {
		return Value{}, arityError("apply", 2, len(args))
	}
	fn := args[0]
	if !fn.IsCallable() {
		return Value{}, argErrorf("apply: first argument is not callable: %s", fn.Kind)
	}
	splat := args[1].Array
	if args[1].Kind != KindArray {
		splat = []Value{args[1]}
	}
	return apply(ev, fn, splat)
}
