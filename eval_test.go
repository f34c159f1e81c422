package interrotron

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/andrewvc/interrotron/lexer"
	"github.com/andrewvc/interrotron/parser"
)

func evalSrc(t *testing.T, src string, maxOps int, bindings map[string]Value) (Value, error) {
	t.Helper()
	toks, err := lexer.Lex(src)
	require.NoError(t, err)
	forms, err := parser.Parse(toks)
	require.NoError(t, err)
	root := newRootFrame(bindings)
	ev := &evaluation{maxOps: maxOps, rng: rand.New(rand.NewSource(1))}
	var result Value = Nil
	for _, f := range forms {
		result, err = Eval(ev, root, f)
		if err != nil {
			return Value{}, err
		}
	}
	return result, nil
}

func TestEvalEmptyListIsNil(t *testing.T) {
	v, err := evalSrc(t, `()`, Unbounded, nil)
	require.NoError(t, err)
	require.Equal(t, Nil, v)
}

func TestEvalNonCallableHead(t *testing.T) {
	_, err := evalSrc(t, `(1)`, Unbounded, nil)
	require.Error(t, err)
	evalErr := err.(*EvalError)
	require.Equal(t, ArgumentError, evalErr.Kind)
}

func TestEvalOpsThresholdExceeded(t *testing.T) {
	_, err := evalSrc(t, `(str (+ 1 2) (+ 3 4) (+ 5 7))`, 3, nil)
	require.Error(t, err)
	evalErr := err.(*EvalError)
	require.Equal(t, OpsThresholdExceeded, evalErr.Kind)
}

func TestEvalOpsThresholdSucceedsWithRoom(t *testing.T) {
	v, err := evalSrc(t, `(str (+ 1 2) (+ 3 4) (+ 5 7))`, 5, nil)
	require.NoError(t, err)
	require.Equal(t, Str("3712"), v)
}

func TestEvalMacroReentryCostsOneStep(t *testing.T) {
	// (if true 1 2) costs: 1 for the (if ...) dispatch, 1 for the
	// re-entry into the branch atom "1". An atom costs nothing extra on
	// its own, so maxOps=2 must succeed and maxOps=1 must fail.
	_, err := evalSrc(t, `(if true 1 2)`, 1, nil)
	require.Error(t, err)
	_, err = evalSrc(t, `(if true 1 2)`, 2, nil)
	require.NoError(t, err)
}

func TestEvalHostBindingVisible(t *testing.T) {
	v, err := evalSrc(t, `(> 51 custom_var)`, Unbounded, map[string]Value{"custom_var": Int(10)})
	require.NoError(t, err)
	require.Equal(t, Bool(true), v)
}

func TestEvalScopeIsolation(t *testing.T) {
	_, err := evalSrc(t, `(let (x 1) x) x`, Unbounded, nil)
	require.Error(t, err)
	evalErr := err.(*EvalError)
	require.Equal(t, UndefinedVar, evalErr.Kind)
}
