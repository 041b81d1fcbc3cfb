package service

import (
	"errors"
	"fmt"

	"github.com/advancia-platform/credential-lifecycle/internal/security"
)

// Sentinel errors for the session manager; handlers map them to transport codes.
var (
	// ErrInvalidParameters is caller misuse. It is the same value as security.ErrInvalidParameters.
	ErrInvalidParameters = security.ErrInvalidParameters

	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionRevoked covers explicit revocation and implicit expiry.
	ErrSessionRevoked = errors.New("session revoked")
	ErrSecretMismatch = errors.New("refresh secret mismatch")
	ErrUnauthorized   = errors.New("unauthorized")

	// ErrConcurrentRotation means another rotation won the compare-and-swap. The caller may retry
	// once with the secret that rotation issued.
	ErrConcurrentRotation = errors.New("concurrent refresh rotation")

	// ErrStoreUnavailable wraps any store or ledger failure, including timeouts.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// IsAuthFailure reports whether err is one of the authentication failures that callers must
// present identically.
func IsAuthFailure(err error) bool {
	return errors.Is(err, ErrSessionNotFound) ||
		errors.Is(err, ErrSessionRevoked) ||
		errors.Is(err, ErrSecretMismatch) ||
		errors.Is(err, ErrUnauthorized)
}

func storeError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStoreUnavailable, err)
}
