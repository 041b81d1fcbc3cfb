package security

import "errors"

var (
	// ErrInvalidParameters is returned for caller misuse such as a secret length or key length
	// below the enforced floor. It is never retried.
	ErrInvalidParameters = errors.New("invalid parameters")

	// ErrInvalidToken is returned when an access credential is malformed, badly signed, expired,
	// or carries the wrong issuer or audience.
	ErrInvalidToken = errors.New("invalid token")

	// ErrInvalidHash is returned when a stored hash cannot be decoded.
	ErrInvalidHash = errors.New("invalid hash")
)
