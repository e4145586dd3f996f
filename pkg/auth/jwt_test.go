package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")

	token, err := GenerateToken("user-1", "bank-1", "manager", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "bank-1", claims.BankID)
	assert.Equal(t, "manager", claims.Role)
}

func TestValidateTokenExpired(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")

	token, err := GenerateToken("user-1", "bank-1", "manager", -time.Minute)
	require.NoError(t, err)

	_, err = ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenTampered(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")

	token, err := GenerateToken("user-1", "bank-1", "manager", time.Hour)
	require.NoError(t, err)

	_, err = ValidateToken(token + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGenerateTokenWithoutSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := GenerateToken("user-1", "bank-1", "manager", time.Hour)
	assert.Error(t, err)
}

func TestRefreshToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")

	token, err := GenerateToken("user-1", "bank-1", "manager", time.Hour)
	require.NoError(t, err)

	refreshed, err := RefreshToken(token)
	require.NoError(t, err)

	claims, err := ValidateToken(refreshed)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "bank-1", claims.BankID)
}
