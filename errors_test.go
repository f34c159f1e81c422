package interrotron

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorKindString(t *testing.T) {
	require.Equal(t, "argument-error", ArgumentError.String())
	require.Equal(t, "ops-threshold-exceeded", OpsThresholdExceeded.String())
	require.Equal(t, "unknown-error", ErrorKind(255).String())
}

func TestEvalErrorMessage(t *testing.T) {
	err := argErrorf("bad thing: %d", 7)
	require.Equal(t, "argument-error: bad thing: 7", err.Error())
	require.Equal(t, ArgumentError, err.Kind)
}
