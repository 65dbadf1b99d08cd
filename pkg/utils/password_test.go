package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("swasthya123")
	require.NoError(t, err)
	require.NotEqual(t, "swasthya123", hash)

	require.True(t, CheckPassword("swasthya123", hash))
	require.False(t, CheckPassword("wrong-password", hash))
	require.False(t, CheckPassword("swasthya123", "not-a-bcrypt-hash"))
}
