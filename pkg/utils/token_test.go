package utils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	signed, err := GenerateToken(42, "admin")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	token, err := ValidateToken(signed)
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	require.Equal(t, float64(42), claims["user_id"])
	require.Equal(t, "admin", claims["role"])
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := ValidateToken("not.a.token")
	require.Error(t, err)
}

func TestValidateToken_WrongAlgorithm(t *testing.T) {
	// Unsigned token must be rejected even with a matching payload.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"user_id": 1.0,
		"role":    "admin",
	})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	token, err := ValidateToken(raw)
	if err == nil {
		require.False(t, token.Valid)
	}
}
