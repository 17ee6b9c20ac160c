package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	h, err := HashPassword("123456")
	require.NoError(t, err)
	require.NotEmpty(t, h)
	require.NotEqual(t, "123456", h)

	require.True(t, CheckPassword(h, "123456"))
	require.False(t, CheckPassword(h, "654321"))
}

func TestHashesAreSalted(t *testing.T) {
	h1, err := HashPassword("123456")
	require.NoError(t, err)
	h2, err := HashPassword("123456")
	require.NoError(t, err)

	require.NotEqual(t, h1, h2)
}
