package security

import (
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// MinKDFIterations is the iteration floor for DeriveKey.
	MinKDFIterations = 100_000
	// MinDerivedKeyLength is the shortest key DeriveKey will produce, in bytes.
	MinDerivedKeyLength = 16
)

// DeriveKey derives a deterministic keyLength-byte key from secret and salt with PBKDF2-HMAC-SHA256.
// Use it where a stable symmetric key is needed rather than a hash for storage.
func DeriveKey(secret, salt []byte, iterations, keyLength int) ([]byte, error) {
	if iterations < MinKDFIterations {
		return nil, fmt.Errorf("%w: iterations %d below %d", ErrInvalidParameters, iterations, MinKDFIterations)
	}
	if keyLength < MinDerivedKeyLength {
		return nil, fmt.Errorf("%w: key length %d below %d", ErrInvalidParameters, keyLength, MinDerivedKeyLength)
	}
	return pbkdf2.Key(secret, salt, iterations, keyLength, sha256.New), nil
}
