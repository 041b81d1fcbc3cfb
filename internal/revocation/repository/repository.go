package repository

import (
	"context"
	"time"

	"github.com/advancia-platform/credential-lifecycle/internal/revocation/domain"
)

// Repository persists revoked-credential entries keyed by credential id.
type Repository interface {
	// Insert stores e. Inserting an id that is already present is a no-op.
	Insert(ctx context.Context, e *domain.Entry) error
	// Exists reports whether an entry for credentialID is stored. It does not look at expiry.
	Exists(ctx context.Context, credentialID string) (bool, error)
	// DeleteExpiredBefore removes entries whose natural expiry is before t and returns how many.
	DeleteExpiredBefore(ctx context.Context, t time.Time) (int64, error)
}
