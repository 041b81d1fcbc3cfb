package security

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Hash algorithms accepted by NewSecretHasher.
const (
	AlgorithmBcrypt   = "bcrypt"
	AlgorithmArgon2id = "argon2id"
)

// SecretHasher derives and checks adaptive one-way hashes of secrets for storage at rest.
// Callers must not log or persist plaintext secrets.
type SecretHasher interface {
	// Hash returns an encoded hash of secret suitable for storage.
	Hash(secret string) (string, error)
	// Verify reports whether secret matches hash. Comparison is constant time in the
	// length of the derived key; a malformed hash never verifies.
	Verify(secret, hash string) bool
}

// DefaultBcryptCost is the bcrypt cost used when no work factor is configured.
const DefaultBcryptCost = 12

// DefaultWorkFactor returns the work factor a zero setting stands for: the bcrypt cost, or the
// argon2id time cost. The two scales are unrelated, so each algorithm has its own default.
// Unknown algorithms return 0.
func DefaultWorkFactor(algorithm string) int {
	switch strings.ToLower(strings.TrimSpace(algorithm)) {
	case "", AlgorithmBcrypt:
		return DefaultBcryptCost
	case AlgorithmArgon2id:
		return int(DefaultArgon2idParams().Time)
	default:
		return 0
	}
}

// NewSecretHasher returns the hasher for algorithm with the given work factor.
// For bcrypt the work factor is the cost (4-31); for argon2id it is the time cost (passes).
// A zero work factor selects DefaultWorkFactor(algorithm).
func NewSecretHasher(algorithm string, workFactor int) (SecretHasher, error) {
	if workFactor <= 0 {
		workFactor = DefaultWorkFactor(algorithm)
	}
	switch strings.ToLower(strings.TrimSpace(algorithm)) {
	case "", AlgorithmBcrypt:
		return NewBcryptHasher(workFactor), nil
	case AlgorithmArgon2id:
		p := DefaultArgon2idParams()
		p.Time = uint32(workFactor) // #nosec G115 -- config validation bounds the work factor.
		return NewArgon2idHasher(p), nil
	default:
		return nil, fmt.Errorf("%w: unknown hash algorithm %q", ErrInvalidParameters, algorithm)
	}
}

// BcryptHasher hashes secrets with bcrypt.
type BcryptHasher struct {
	Cost int
}

// NewBcryptHasher returns a BcryptHasher with the given cost clamped to bcrypt's range.
// Cost 12 is a reasonable default for interactive use.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	if cost < bcrypt.MinCost {
		cost = bcrypt.MinCost
	}
	if cost > bcrypt.MaxCost {
		cost = bcrypt.MaxCost
	}
	return &BcryptHasher{Cost: cost}
}

// Hash produces a bcrypt hash of secret.
func (h *BcryptHasher) Hash(secret string) (string, error) {
	b, err := bcrypt.GenerateFromPassword(prehash(secret), h.Cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports whether secret matches the stored bcrypt hash.
func (h *BcryptHasher) Verify(secret, hash string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), prehash(secret)) == nil
}

// prehash folds secrets of any length into 44 bytes; bcrypt rejects inputs over 72 bytes.
func prehash(secret string) []byte {
	sum := sha256.Sum256([]byte(secret))
	return []byte(base64.StdEncoding.EncodeToString(sum[:]))
}
