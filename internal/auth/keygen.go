package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// GenerateKey returns a random URL-safe string built from n random bytes.
// Access keys, secret keys, API keys and opaque auth tokens all use it.
func GenerateKey(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate key: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
