package lib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT(42)
	require.NoError(t, err)

	claims, err := VerifyJWT(token)
	require.NoError(t, err)

	userID, ok := claims["userId"].(float64)
	require.True(t, ok)
	assert.EqualValues(t, 42, userID)
}

func TestVerifyJWTRejectsGarbage(t *testing.T) {
	_, err := VerifyJWT("not-a-token")
	assert.Error(t, err)
}

func TestVerifyJWTRejectsWrongSecret(t *testing.T) {
	old := JWTSecret
	defer func() { JWTSecret = old }()

	token, err := GenerateJWT(42)
	require.NoError(t, err)

	JWTSecret = "another-secret"
	_, err = VerifyJWT(token)
	assert.Error(t, err)
}
