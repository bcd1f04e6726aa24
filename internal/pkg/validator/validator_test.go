package validator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheck_BuiltinTags(t *testing.T) {
	require.NoError(t, Check("Jane Doe", "min=2"))
	require.Error(t, Check("J", "min=2"))
	require.Error(t, Check("", "min=1"))
	require.NoError(t, Check("5125551234", "min=10"))
}

func TestCheck_PositiveNumber(t *testing.T) {
	for _, ok := range []string{"34", " 34 ", "0.5", "1e2"} {
		require.NoError(t, Check(ok, "positivenumber"), ok)
	}
	for _, bad := range []string{"", "0", "-3", "abc", "NaN", "Inf"} {
		require.Error(t, Check(bad, "positivenumber"), bad)
	}
}

func TestCheck_WholeNumber(t *testing.T) {
	require.NoError(t, Check("34", "wholenumber"))
	require.NoError(t, Check("34.0", "wholenumber"))
	require.Error(t, Check("34.5", "wholenumber"))
	require.Error(t, Check("99999999999", "wholenumber"))
}

func TestIsValidDate(t *testing.T) {
	require.True(t, IsValidDate("2024-01-01"))
	require.False(t, IsValidDate("2024-02-30"))
	require.False(t, IsValidDate("01/01/2024"))
	require.Error(t, Check("2024-13-01", "isodate"))
}
