package interrotron

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRootFrameBindsSpecialFormsAndBuiltins(t *testing.T) {
	root := newRootFrame(nil)

	v, err := root.Get("if")
	require.NoError(t, err)
	require.Equal(t, KindMacro, v.Kind)

	v, err = root.Get("+")
	require.NoError(t, err)
	require.Equal(t, KindHostFn, v.Kind)
}

func TestNewRootFrameHostBindingsOverrideNothingElse(t *testing.T) {
	root := newRootFrame(map[string]Value{"custom_var": Int(10)})
	v, err := root.Get("custom_var")
	require.NoError(t, err)
	require.Equal(t, Int(10), v)

	// Builtins are still present alongside host bindings.
	_, err = root.Get("+")
	require.NoError(t, err)
}

func TestNewRootFrameIsFreshPerCall(t *testing.T) {
	a := newRootFrame(map[string]Value{"x": Int(1)})
	b := newRootFrame(nil)
	a.SetLocal("y", Int(2))

	_, err := b.Get("y")
	require.Error(t, err)
}
