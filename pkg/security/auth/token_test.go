package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSessionTokenFormat(t *testing.T) {
	token, err := GenerateSessionToken()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(token, "session_"))

	parts := strings.SplitN(token, "_", 3)
	require.Len(t, parts, 3)
	assert.NotEmpty(t, parts[1], "timestamp segment")
	// 32 random bytes base64-encoded without padding
	assert.Len(t, parts[2], 43)
}

func TestGenerateSessionTokenIsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := GenerateSessionToken()
		require.NoError(t, err)
		assert.False(t, seen[token], "token collision on iteration %d", i)
		seen[token] = true
	}
}
