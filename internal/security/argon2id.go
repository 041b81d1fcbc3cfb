package security

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2idParams are the Argon2id cost parameters.
type Argon2idParams struct {
	Time      uint32
	MemoryKiB uint32
	Threads   uint8
	SaltLen   uint32
	KeyLen    uint32
}

// DefaultArgon2idParams returns the RFC 9106 second recommended option (t=3, m=64MiB).
func DefaultArgon2idParams() Argon2idParams {
	return Argon2idParams{Time: 3, MemoryKiB: 64 * 1024, Threads: 2, SaltLen: 16, KeyLen: 32}
}

// Argon2idHasher hashes secrets with Argon2id and encodes them in PHC string format:
// $argon2id$v=19$m=<mem>,t=<time>,p=<threads>$<salt>$<key>
type Argon2idHasher struct {
	Params Argon2idParams
}

// NewArgon2idHasher returns an Argon2idHasher with p.
func NewArgon2idHasher(p Argon2idParams) *Argon2idHasher {
	return &Argon2idHasher{Params: p}
}

// Hash produces an Argon2id PHC string for secret.
func (h *Argon2idHasher) Hash(secret string) (string, error) {
	p := h.Params
	salt := make([]byte, p.SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("salt: %w", err)
	}
	key := argon2.IDKey([]byte(secret), salt, p.Time, p.MemoryKiB, p.Threads, p.KeyLen)
	b64 := base64.RawStdEncoding
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, p.MemoryKiB, p.Time, p.Threads, b64.EncodeToString(salt), b64.EncodeToString(key)), nil
}

// Verify recomputes the key with the parameters embedded in hash and compares in constant time.
// Hashes whose parameters are more than twice the configured ones are refused.
func (h *Argon2idHasher) Verify(secret, hash string) bool {
	p, salt, want, err := decodeArgon2id(hash)
	if err != nil {
		return false
	}
	if p.MemoryKiB > h.Params.MemoryKiB*2 || p.Time > h.Params.Time*2 || p.Threads > h.Params.Threads*2 {
		return false
	}
	got := argon2.IDKey([]byte(secret), salt, p.Time, p.MemoryKiB, p.Threads, uint32(len(want))) // #nosec G115 -- bounded by decode.
	return subtle.ConstantTimeCompare(got, want) == 1
}

func decodeArgon2id(encoded string) (Argon2idParams, []byte, []byte, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return Argon2idParams{}, nil, nil, ErrInvalidHash
	}
	if parts[2] != fmt.Sprintf("v=%d", argon2.Version) {
		return Argon2idParams{}, nil, nil, ErrInvalidHash
	}
	var mem, t, threads uint32
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &mem, &t, &threads); err != nil {
		return Argon2idParams{}, nil, nil, ErrInvalidHash
	}
	if mem == 0 || t == 0 || threads == 0 || threads > 255 {
		return Argon2idParams{}, nil, nil, ErrInvalidHash
	}
	b64 := base64.RawStdEncoding
	salt, err := b64.DecodeString(parts[4])
	if err != nil || len(salt) < 8 {
		return Argon2idParams{}, nil, nil, ErrInvalidHash
	}
	key, err := b64.DecodeString(parts[5])
	if err != nil || len(key) < 16 || len(key) > 128 {
		return Argon2idParams{}, nil, nil, ErrInvalidHash
	}
	return Argon2idParams{
		Time:      t,
		MemoryKiB: mem,
		Threads:   uint8(threads),
		SaltLen:   uint32(len(salt)), // #nosec G115
		KeyLen:    uint32(len(key)),  // #nosec G115
	}, salt, key, nil
}
