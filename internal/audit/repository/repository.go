package repository

import (
	"context"

	"github.com/advancia-platform/credential-lifecycle/internal/audit/domain"
)

// Repository defines persistence for audit events.
type Repository interface {
	Create(ctx context.Context, e *domain.Event) error
	// ListByPrincipal returns the principal's most recent events, newest first.
	ListByPrincipal(ctx context.Context, principalID string, limit int) ([]*domain.Event, error)
}
