package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestGenerateAndValidateJWT(t *testing.T) {
	token, err := GenerateJWT(7, "founder@example.com", "founder", testSecret, 1)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "founder@example.com", claims.Email)
	assert.Equal(t, "founder", claims.Role)
}

func TestValidateJWT_WrongSecret(t *testing.T) {
	token, err := GenerateJWT(7, "founder@example.com", "founder", testSecret, 1)
	require.NoError(t, err)

	_, err = ValidateJWT(token, "other-secret")
	assert.Error(t, err)
}

func TestValidateJWT_Garbage(t *testing.T) {
	_, err := ValidateJWT("not.a.token", testSecret)
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-password", hash)

	assert.True(t, CheckPassword(hash, "s3cret-password"))
	assert.False(t, CheckPassword(hash, "wrong-password"))
}
