package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/advancia-platform/credential-lifecycle/internal/session/domain"
)

// MemoryRepository is an in-process Repository. It backs tests and single-instance development
// runs without a database. Stored sessions are copied on the way in and out.
type MemoryRepository struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
}

// NewMemoryRepository returns an empty MemoryRepository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{sessions: make(map[string]*domain.Session)}
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, nil
	}
	return clone(s), nil
}

func (r *MemoryRepository) Create(ctx context.Context, s *domain.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[s.ID]; ok {
		return ErrDuplicateID
	}
	r.sessions[s.ID] = clone(s)
	return nil
}

func (r *MemoryRepository) SwapCredential(ctx context.Context, id string, expectedVersion int64, newHash string, at time.Time) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok || s.Status != domain.StatusActive || s.CredentialVersion != expectedVersion {
		return false, nil
	}
	s.RefreshCredentialHash = newHash
	s.CredentialVersion++
	if at.After(s.LastActivityAt) {
		s.LastActivityAt = at
	}
	return true, nil
}

func (r *MemoryRepository) SwapStatus(ctx context.Context, id string, expected, next domain.Status, reason string, at time.Time) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok || s.Status != expected {
		return false, nil
	}
	s.Status = next
	s.RevokeReason = reason
	if next == domain.StatusRevoked {
		t := at
		s.RevokedAt = &t
	} else {
		s.RevokedAt = nil
	}
	return true, nil
}

func (r *MemoryRepository) TouchActivity(ctx context.Context, id string, at time.Time, expiresAt *time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok || s.Status != domain.StatusActive || !at.Before(s.ExpiresAt) {
		return nil
	}
	if at.After(s.LastActivityAt) {
		s.LastActivityAt = at
	}
	if expiresAt != nil && expiresAt.After(s.ExpiresAt) {
		s.ExpiresAt = *expiresAt
	}
	return nil
}

func (r *MemoryRepository) ListActiveByPrincipal(ctx context.Context, principalID string) ([]*domain.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	var out []*domain.Session
	for _, s := range r.sessions {
		if s.PrincipalID == principalID && s.Status == domain.StatusActive {
			out = append(out, clone(s))
		}
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		if out[i].LastActivityAt.Equal(out[j].LastActivityAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].LastActivityAt.Before(out[j].LastActivityAt)
	})
	return out, nil
}

func (r *MemoryRepository) ListRetired(ctx context.Context, cutoff time.Time, limit int) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var ids []string
	for id, s := range r.sessions {
		if limit > 0 && len(ids) >= limit {
			break
		}
		revoked := s.Status == domain.StatusRevoked && s.RevokedAt != nil && s.RevokedAt.Before(cutoff)
		if revoked || s.ExpiresAt.Before(cutoff) {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
	return nil
}

func clone(s *domain.Session) *domain.Session {
	c := *s
	if s.RevokedAt != nil {
		t := *s.RevokedAt
		c.RevokedAt = &t
	}
	return &c
}
