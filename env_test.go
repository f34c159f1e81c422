package interrotron

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFrameGetWalksParents(t *testing.T) {
	root := NewFrame()
	root.SetLocal("x", Int(1))
	child := root.NewChild()
	child.SetLocal("y", Int(2))

	v, err := child.Get("x")
	require.NoError(t, err)
	require.Equal(t, Int(1), v)

	v, err = child.Get("y")
	require.NoError(t, err)
	require.Equal(t, Int(2), v)
}

func TestFrameGetUndefined(t *testing.T) {
	root := NewFrame()
	_, err := root.Get("missing")
	require.Error(t, err)
	evalErr, ok := err.(*EvalError)
	require.True(t, ok)
	require.Equal(t, UndefinedVar, evalErr.Kind)
}

func TestFrameSetLocalShadowsParent(t *testing.T) {
	root := NewFrame()
	root.SetLocal("x", Int(1))
	child := root.NewChild()
	child.SetLocal("x", Int(2))

	v, err := child.Get("x")
	require.NoError(t, err)
	require.Equal(t, Int(2), v)

	v, err = root.Get("x")
	require.NoError(t, err)
	require.Equal(t, Int(1), v)
}

func TestFrameSetRootWritesToRoot(t *testing.T) {
	root := NewFrame()
	child := root.NewChild().NewChild()
	child.SetRoot("g", Int(9))

	v, err := root.Get("g")
	require.NoError(t, err)
	require.Equal(t, Int(9), v)

	_, ok := child.vars["g"]
	require.False(t, ok)
}
