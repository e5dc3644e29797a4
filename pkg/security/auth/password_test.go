package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	digest, err := HashPassword("correct horse")
	require.NoError(t, err)

	assert.NotEqual(t, "correct horse", digest)
	assert.True(t, VerifyPassword("correct horse", digest))
	assert.False(t, VerifyPassword("wrong horse", digest))
	assert.False(t, VerifyPassword("", digest))
}

func TestHashPasswordProducesUniqueDigests(t *testing.T) {
	first, err := HashPassword("same password")
	require.NoError(t, err)
	second, err := HashPassword("same password")
	require.NoError(t, err)

	// bcrypt salts every digest
	assert.NotEqual(t, first, second)
}
