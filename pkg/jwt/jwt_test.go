package jwt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(7, "admin", "Administrator", "admin")
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	require.EqualValues(t, 7, claims.UserID)
	require.Equal(t, "admin", claims.Username)
	require.Equal(t, "Administrator", claims.FullName)
	require.Equal(t, "admin", claims.Role)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := ValidateToken("not-a-token")
	require.ErrorIs(t, err, ErrInvalidToken)

	token, err := GenerateToken(1, "u", "", "staff")
	require.NoError(t, err)
	_, err = ValidateToken(token + "x")
	require.ErrorIs(t, err, ErrInvalidToken)
}
