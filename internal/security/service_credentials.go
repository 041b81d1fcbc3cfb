package security

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
)

// MinServiceCredentialLength is the shortest service credential accepted.
const MinServiceCredentialLength = 32

// ErrWeakServiceCredential is returned for a service credential shorter than MinServiceCredentialLength.
var ErrWeakServiceCredential = errors.New("security: service credential too short")

// ServiceCredentials is the set of shared credentials that trusted upstream services present to
// call methods reserved for them. Several may be active at once so that a credential can be
// rotated without downtime. Only SHA-256 digests are kept.
type ServiceCredentials struct {
	digests []string
}

// NewServiceCredentials builds the trusted set. Blank entries are ignored.
func NewServiceCredentials(credentials ...string) (*ServiceCredentials, error) {
	sc := &ServiceCredentials{}
	for _, c := range credentials {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if len(c) < MinServiceCredentialLength {
			return nil, ErrWeakServiceCredential
		}
		sc.digests = append(sc.digests, digest(c))
	}
	return sc, nil
}

// Len returns the number of trusted credentials.
func (s *ServiceCredentials) Len() int {
	if s == nil {
		return 0
	}
	return len(s.digests)
}

// Verify reports whether presented is one of the trusted credentials. Every digest is compared
// so the running time does not reveal which one matched. An empty set trusts nobody.
func (s *ServiceCredentials) Verify(presented string) bool {
	if s == nil || presented == "" {
		return false
	}
	d := digest(presented)
	ok := false
	for _, want := range s.digests {
		if ConstantTimeEquals(want, d) {
			ok = true
		}
	}
	return ok
}

func digest(v string) string {
	sum := sha256.Sum256([]byte(v))
	return hex.EncodeToString(sum[:])
}
