package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("p1")
	require.NoError(t, err)
	require.NotContains(t, string(hash), "p1")

	require.True(t, CheckPassword(hash, "p1"))
	require.False(t, CheckPassword(hash, "wrong"))
	require.False(t, CheckPassword(hash, ""))
}

func TestHashPassword_Unique(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("same")
	require.NoError(t, err)
	h2, err := HashPassword("same")
	require.NoError(t, err)

	// bcrypt salts per call
	require.NotEqual(t, h1, h2)
}
