package repository

import (
	"context"
	"time"

	"github.com/advancia-platform/credential-lifecycle/internal/session/domain"
)

// Repository defines persistence for sessions. Implementations must make SwapCredential and
// SwapStatus atomic compare-and-swap operations: the write happens only when the stored value
// still equals the expected one, and the boolean reports whether it did.
type Repository interface {
	// GetByID returns the session for id, or nil if not found.
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	Create(ctx context.Context, s *domain.Session) error
	// SwapCredential replaces the refresh hash and bumps credential_version to expectedVersion+1
	// iff the session is active and its version equals expectedVersion. at becomes last activity.
	SwapCredential(ctx context.Context, id string, expectedVersion int64, newHash string, at time.Time) (bool, error)
	// SwapStatus moves the session from expected to next. reason and at are recorded when next is revoked.
	SwapStatus(ctx context.Context, id string, expected, next domain.Status, reason string, at time.Time) (bool, error)
	// TouchActivity records activity on an active, unexpired session and, when expiresAt is non-nil,
	// moves its expiry. Lost updates under concurrency are acceptable.
	TouchActivity(ctx context.Context, id string, at time.Time, expiresAt *time.Time) error
	// ListActiveByPrincipal returns every status=active session for the principal ordered by
	// last activity ascending. Expired rows are included; callers filter by time.
	ListActiveByPrincipal(ctx context.Context, principalID string) ([]*domain.Session, error)
	// ListRetired returns up to limit ids of sessions revoked before cutoff or expired before cutoff.
	ListRetired(ctx context.Context, cutoff time.Time, limit int) ([]string, error)
	Delete(ctx context.Context, id string) error
}

// PrincipalLocker is implemented by repositories shared between processes. LockPrincipal blocks
// until it holds an exclusive admission lock for the principal across every process using the
// store; unlock releases it and must be called exactly once.
type PrincipalLocker interface {
	LockPrincipal(ctx context.Context, principalID string) (unlock func(), err error)
}
