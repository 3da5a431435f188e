package utils

import (
	"testing"
	"time"

	"github.com/RajRabadiya018/CarringNanny/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndExtractIdentity(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := GenerateToken("user-42", "parent", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	sub, role, err := ExtractIdentityFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", sub)
	assert.Equal(t, "parent", role)
}

func TestExpiredTokenRejected(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := GenerateToken("user-42", "parent", -time.Minute)
	require.NoError(t, err)

	_, _, err = ExtractIdentityFromToken(token)
	assert.Error(t, err)
}

func TestTamperedTokenRejected(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := GenerateToken("user-42", "parent", time.Hour)
	require.NoError(t, err)

	config.AppConfig.JWTSecret = "other-secret"
	_, _, err = ExtractIdentityFromToken(token)
	assert.Error(t, err)
}

func TestHashTokenIsStable(t *testing.T) {
	h1 := HashToken("abc")
	h2 := HashToken("abc")
	assert.Equal(t, h1, h2)
	assert.Len(t, h1, 64)
	assert.NotEqual(t, h1, HashToken("abd"))
}
