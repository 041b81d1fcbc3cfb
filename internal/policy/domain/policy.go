package domain

import "time"

// SessionPolicy is the per-principal policy applied when a session is created.
type SessionPolicy struct {
	// MaxConcurrentSessions caps active sessions per principal; <= 0 means unbounded.
	MaxConcurrentSessions int
	// RefreshTTL is the session lifetime from creation.
	RefreshTTL time.Duration
	// ExtendOnActivity allows touchActivity to push expiry forward.
	ExtendOnActivity bool
}

// Limits are the configured inputs to policy evaluation.
type Limits struct {
	MaxConcurrentStandard int
	MaxConcurrentElevated int
	RefreshTTLDefault     time.Duration
	RefreshTTLPersistent  time.Duration
}
