package security

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

const (
	// MinSecretBytes is the smallest accepted entropy for an opaque secret.
	MinSecretBytes = 16
	// DefaultSecretBytes is the entropy used for refresh secrets unless configured otherwise.
	DefaultSecretBytes = 32
)

// GenerateOpaqueSecret returns n cryptographically random bytes encoded as unpadded URL-safe base64.
// Returns ErrInvalidParameters when n is below MinSecretBytes.
func GenerateOpaqueSecret(n int) (string, error) {
	if n < MinSecretBytes {
		return "", fmt.Errorf("%w: secret length %d below %d bytes", ErrInvalidParameters, n, MinSecretBytes)
	}
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
