// Package interrotrontest provides small table-driven test helpers for
// exercising interrotron programs end to end: one source string per
// case, checked against an expected result or error kind.
package interrotrontest

import (
	"testing"

	"github.com/andrewvc/interrotron"
	"github.com/google/go-cmp/cmp"
)

// Case is one source program and its expected outcome. Result checks the
// program's final Value.String() form; WantErrKind checks the ErrorKind of
// a failing Run/Compile call; WantErr expects a failure of any kind. A
// WantErrKind of zero counts as unset, so InvalidToken (the zero kind)
// cannot be checked through WantErrKind; WantErr still expects the failure.
type Case struct {
	Name        string
	Source      string
	Bindings    map[string]interrotron.Value
	// MaxOps caps the operation count, like interrotron.WithMaxOps. The
	// zero value here means Unbounded, not a cap of zero.
	MaxOps int
	Result      string
	WantErrKind interrotron.ErrorKind
	WantErr     bool
}

// Suite is a named collection of Cases.
type Suite []Case

// Run compiles and runs every case in s on its own isolated root frame,
// reporting each as a subtest the way RunTestSuite runs each
// TestSequence in elpstest.
func Run(t *testing.T, s Suite) {
	for _, c := range s {
		c := c
		t.Run(c.Name, func(t *testing.T) {
			maxOps := c.MaxOps
			if maxOps == 0 {
				maxOps = interrotron.Unbounded
			}
			opts := []interrotron.Option{interrotron.WithMaxOps(maxOps)}
			if c.Bindings != nil {
				opts = append(opts, interrotron.WithBindings(c.Bindings))
			}
			in := interrotron.NewInterpreter()
			v, err := in.Run(c.Source, opts...)
			if c.WantErr || c.WantErrKind != 0 {
				if err == nil {
					t.Fatalf("expected an error, got result %q", v.String())
				}
				if c.WantErrKind != 0 {
					evalErr, ok := err.(*interrotron.EvalError)
					if !ok {
						t.Fatalf("expected *interrotron.EvalError, got %T: %v", err, err)
					}
					if evalErr.Kind != c.WantErrKind {
						t.Fatalf("expected error kind %s, got %s (%v)", c.WantErrKind, evalErr.Kind, err)
					}
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(c.Result, v.String()); diff != "" {
				t.Fatalf("result mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
