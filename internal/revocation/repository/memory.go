package repository

import (
	"context"
	"sync"
	"time"

	"github.com/advancia-platform/credential-lifecycle/internal/revocation/domain"
)

// MemoryRepository is an in-process Repository for tests and single-instance development.
type MemoryRepository struct {
	mu      sync.RWMutex
	entries map[string]domain.Entry
}

// NewMemoryRepository returns an empty MemoryRepository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{entries: make(map[string]domain.Entry)}
}

func (r *MemoryRepository) Insert(ctx context.Context, e *domain.Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[e.CredentialID]; !ok {
		r.entries[e.CredentialID] = *e
	}
	return nil
}

func (r *MemoryRepository) Exists(ctx context.Context, credentialID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.RLock()
	_, ok := r.entries[credentialID]
	r.mu.RUnlock()
	return ok, nil
}

func (r *MemoryRepository) DeleteExpiredBefore(ctx context.Context, t time.Time) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, e := range r.entries {
		if e.NaturalExpiry.Before(t) {
			delete(r.entries, id)
			n++
		}
	}
	return n, nil
}

// Len returns the number of stored entries.
func (r *MemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
