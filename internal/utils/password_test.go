package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)
	require.NotEqual(t, "secret1", hash)

	assert.NoError(t, VerifyPassword(hash, "secret1"))
	assert.Error(t, VerifyPassword(hash, "wrong"))
}

func TestHashPasswordRejectsBadInput(t *testing.T) {
	_, err := HashPassword("")
	assert.Error(t, err)

	_, err = HashPassword(strings.Repeat("p", 73))
	assert.Error(t, err)

	// 72 bytes is still fine
	_, err = HashPassword(strings.Repeat("p", 72))
	assert.NoError(t, err)
}

func TestVerifyPasswordEmptyInputs(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)

	assert.Error(t, VerifyPassword("", "secret1"))
	assert.Error(t, VerifyPassword(hash, ""))
}
