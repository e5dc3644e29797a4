package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"
)

const tokenEntropyBytes = 32

// GenerateSessionToken mints an opaque, unguessable session token. The
// random part carries 256 bits of entropy; the timestamp prefix only aids
// debugging and contributes nothing to unpredictability.
func GenerateSessionToken() (string, error) {
	buf := make([]byte, tokenEntropyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating session token: %w", err)
	}
	random := base64.RawURLEncoding.EncodeToString(buf)
	return fmt.Sprintf("session_%d_%s", time.Now().UTC().Unix(), random), nil
}
