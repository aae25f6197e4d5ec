package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// GenerateURLSafeToken returns a cryptographically random, URL-safe string
// built from n random bytes. Used for single-use password reset tokens.
func GenerateURLSafeToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("error generating random token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
