package interrotron_test

import (
	"testing"

	"github.com/andrewvc/interrotron"
	"github.com/andrewvc/interrotron/interrotrontest"
)

// TestEndToEndScenarios walks every end-to-end scenario a rule author
// would recognize from a tour of the language: literal source in,
// literal value or error kind out.
func TestEndToEndScenarios(t *testing.T) {
	interrotrontest.Run(t, interrotrontest.Suite{
		{
			Name:   "arithmetic and modulo",
			Source: `(+ (* 2 2) (% 5 4))`,
			Result: "5",
		},
		{
			Name:   "if with nested arithmetic",
			Source: `(if false (+ 4 -3) (- 10 (+ 2 (+ 1 1))))`,
			Result: "6",
		},
		{
			Name:   "cond first matching clause",
			Source: `(cond (> 1 2) (* 2 2) (< 5 10) 'ohai')`,
			Result: `ohai`,
		},
		{
			Name:   "cond no matching clause is nil",
			Source: `(cond (> 1 2) (* 2 2) false 'ohai')`,
			Result: "nil",
		},
		{
			Name:     "host binding visible in root frame",
			Source:   `(> 51 custom_var)`,
			Bindings: map[string]interrotron.Value{"custom_var": interrotron.Int(10)},
			Result:   "true",
		},
		{
			Name:   "let with sequential bindings",
			Source: `(let (x 2 y 4) (* x y))`,
			Result: "8",
		},
		{
			Name:        "let with odd binding list is an argument error",
			Source:      `(let (x 1 y) 1 2)`,
			WantErrKind: interrotron.ArgumentError,
		},
		{
			Name:   "apply splats a bare scalar as a single argument",
			Source: `(apply (lambda (x) (* x 2) (* x 3)) 2)`,
			Result: "6",
		},
		{
			Name:   "defn then call",
			Source: `(defn say_hi (name) (+ 'hi there, ' name '!')) (say_hi 'Justin')`,
			Result: "hi there, Justin!",
		},
		{
			Name:   "ops threshold succeeds with room to spare",
			Source: `(str (+ 1 2) (+ 3 4) (+ 5 7))`,
			MaxOps: 5,
			Result: "3712",
		},
		{
			Name:        "ops threshold exceeded",
			Source:      `(str (+ 1 2) (+ 3 4) (+ 5 7))`,
			MaxOps:      3,
			WantErrKind: interrotron.OpsThresholdExceeded,
		},
		{
			Name:   "empty source is nil",
			Source: ``,
			Result: "nil",
		},
		{
			Name:        "non-callable head is an argument error",
			Source:      `(1)`,
			WantErrKind: interrotron.ArgumentError,
		},
	})
}

func TestCompileThenRunMultipleTimes(t *testing.T) {
	prog, err := interrotron.Compile(`(+ x 1)`)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	for i, want := range []int64{2, 3, 4} {
		v, err := prog.Run(interrotron.WithBindings(map[string]interrotron.Value{
			"x": interrotron.Int(int64(i) + 1),
		}))
		if err != nil {
			t.Fatalf("Run %d: %v", i, err)
		}
		if v.Int != want {
			t.Fatalf("Run %d: got %d, want %d", i, v.Int, want)
		}
	}
}

func TestInvalidTokenReportedAsLexError(t *testing.T) {
	_, err := interrotron.Compile(`(@)`)
	if err == nil {
		t.Fatal("expected an error")
	}
	evalErr, ok := err.(*interrotron.EvalError)
	if !ok {
		t.Fatalf("expected *interrotron.EvalError, got %T", err)
	}
	if evalErr.Kind != interrotron.InvalidToken {
		t.Fatalf("expected InvalidToken, got %s", evalErr.Kind)
	}
}

func TestSyntaxErrorOnUnbalancedParens(t *testing.T) {
	_, err := interrotron.Compile(`(+ 1 2`)
	if err == nil {
		t.Fatal("expected an error")
	}
	evalErr, ok := err.(*interrotron.EvalError)
	if !ok {
		t.Fatalf("expected *interrotron.EvalError, got %T", err)
	}
	if evalErr.Kind != interrotron.SyntaxError {
		t.Fatalf("expected SyntaxError, got %s", evalErr.Kind)
	}
}
