package interrotron

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestValueStringScalars(t *testing.T) {
	require.Equal(t, "nil", Nil.String())
	require.Equal(t, "true", Bool(true).String())
	require.Equal(t, "false", Bool(false).String())
	require.Equal(t, "42", Int(42).String())
	require.Equal(t, "2.5", Float(2.5).String())
	require.Equal(t, "hi", Str("hi").String())
}

func TestValueStringTime(t *testing.T) {
	ts := time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC)
	require.Equal(t, "2024-01-02T15:04:05Z", Time(ts).String())
}

func TestValueStringArray(t *testing.T) {
	require.Equal(t, "(array 1 2 3)", Array([]Value{Int(1), Int(2), Int(3)}).String())
	require.Equal(t, "(array)", Array(nil).String())
}

func TestValueStringCallables(t *testing.T) {
	fn := NewHostFunc("upcase", builtinUpcase)
	require.Equal(t, "<builtin upcase>", fn.String())

	lam := Value{Kind: KindHostFn, Params: []string{"x"}}
	require.Equal(t, "<lambda lambda>", lam.String())

	m := newMacro("if", opIf)
	require.Equal(t, "<special-form if>", m.String())
}
