package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	auditdomain "github.com/advancia-platform/credential-lifecycle/internal/audit/domain"
	"github.com/advancia-platform/credential-lifecycle/internal/policy/engine"
	"github.com/advancia-platform/credential-lifecycle/internal/security"
	"github.com/advancia-platform/credential-lifecycle/internal/session/domain"
	"github.com/advancia-platform/credential-lifecycle/internal/session/repository"
)

// ReasonEvicted is the revoke reason written by admission control.
const ReasonEvicted = "evicted: concurrent session limit"

// DeviceContext describes the client a session is bound to.
type DeviceContext struct {
	UserAgent string
	IPAddress string
	Extra     map[string]string
}

// CreateRequest is the input to CreateSession.
type CreateRequest struct {
	PrincipalID string
	// Class defaults to domain.ClassStandard.
	Class      domain.PrincipalClass
	Device     DeviceContext
	Persistent bool
}

// Credentials is what the client receives after CreateSession or a rotation. RefreshCredential
// is shown exactly once and is never retrievable again.
type Credentials struct {
	SessionID         string
	RefreshCredential string // <sessionID>.<secret>
	AccessCredential  string
	CredentialID      string
	AccessExpiresAt   time.Time
	CredentialVersion int64
	ExpiresAt         time.Time
}

// CreateSession admits a new session for the principal, evicting the least recently active
// sessions when the principal is at its cap, and returns fresh credentials.
func (m *Manager) CreateSession(ctx context.Context, req CreateRequest) (_ *Credentials, err error) {
	ctx, span := m.startSpan(ctx, "CreateSession", attribute.String("principal.id", req.PrincipalID))
	defer func() { endSpan(span, err) }()

	req.PrincipalID = strings.TrimSpace(req.PrincipalID)
	if req.Class == "" {
		req.Class = domain.ClassStandard
	}
	if req.PrincipalID == "" || !req.Class.Valid() {
		return nil, ErrInvalidParameters
	}

	pol, err := m.policy.Resolve(ctx, engine.Request{
		PrincipalID: req.PrincipalID,
		Class:       req.Class,
		Persistent:  req.Persistent,
	})
	if err != nil {
		return nil, fmt.Errorf("resolve session policy: %w", err)
	}
	if pol.RefreshTTL <= 0 {
		return nil, fmt.Errorf("resolve session policy: %w", engine.ErrInvalidDecision)
	}

	secret, err := security.GenerateOpaqueSecret(m.cfg.SecretBytes)
	if err != nil {
		return nil, err
	}
	hash, err := m.hasher.Hash(secret)
	if err != nil {
		return nil, fmt.Errorf("hash refresh secret: %w", err)
	}

	unlock, err := m.lockPrincipal(ctx, req.PrincipalID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	now := m.clock()
	if err := m.admit(ctx, req.PrincipalID, pol.MaxConcurrentSessions, now); err != nil {
		return nil, err
	}

	s := &domain.Session{
		ID:                    uuid.New().String(),
		PrincipalID:           req.PrincipalID,
		PrincipalClass:        req.Class,
		RefreshCredentialHash: hash,
		CredentialVersion:     1,
		DeviceFingerprint:     security.Fingerprint(req.Device.UserAgent, req.Device.IPAddress, req.Device.Extra),
		IPAddress:             req.Device.IPAddress,
		UserAgent:             req.Device.UserAgent,
		Status:                domain.StatusActive,
		CreatedAt:             now,
		LastActivityAt:        now,
		ExpiresAt:             now.Add(pol.RefreshTTL),
		ExtendOnActivity:      pol.ExtendOnActivity,
	}
	bctx, cancel := m.bound(ctx)
	err = m.repo.Create(bctx, s)
	cancel()
	if errors.Is(err, repository.ErrDuplicateID) {
		return nil, fmt.Errorf("create session: %w", err)
	}
	if err != nil {
		return nil, storeError("create session", err)
	}

	access, err := m.tokens.IssueAccess(s.PrincipalID, s.ID, s.CredentialVersion, now)
	if err != nil {
		return nil, fmt.Errorf("issue access credential: %w", err)
	}

	m.inst.created.Add(ctx, 1)
	m.record(ctx, auditdomain.Event{
		PrincipalID: s.PrincipalID,
		SessionID:   s.ID,
		Action:      auditdomain.ActionSessionCreated,
		ActorIP:     s.IPAddress,
		UserAgent:   s.UserAgent,
		Timestamp:   now,
	})
	m.logger.InfoContext(ctx, "session created",
		slog.String("session_id", s.ID),
		slog.String("principal_id", s.PrincipalID),
		slog.String("class", string(s.PrincipalClass)),
		slog.Time("expires_at", s.ExpiresAt))

	return &Credentials{
		SessionID:         s.ID,
		RefreshCredential: FormatRefreshCredential(s.ID, secret),
		AccessCredential:  access.Token,
		CredentialID:      access.CredentialID,
		AccessExpiresAt:   access.ExpiresAt,
		CredentialVersion: s.CredentialVersion,
		ExpiresAt:         s.ExpiresAt,
	}, nil
}

// admit revokes the least recently active live sessions until the principal has room for one
// more. limit <= 0 means unbounded. Sessions past their expiry do not count against the cap.
func (m *Manager) admit(ctx context.Context, principalID string, limit int, now time.Time) error {
	if limit <= 0 {
		return nil
	}
	bctx, cancel := m.bound(ctx)
	defer cancel()
	sessions, err := m.repo.ListActiveByPrincipal(bctx, principalID)
	if err != nil {
		return storeError("list active sessions", err)
	}
	live := sessions[:0]
	for _, s := range sessions {
		if s.IsActive(now) {
			live = append(live, s)
		}
	}
	// live is ordered by last activity ascending.
	for i := 0; len(live)-i >= limit; i++ {
		victim := live[i]
		ok, err := m.repo.SwapStatus(bctx, victim.ID, domain.StatusActive, domain.StatusRevoked, ReasonEvicted, now)
		if err != nil {
			return storeError("evict session", err)
		}
		if !ok {
			continue
		}
		m.inst.evicted.Add(ctx, 1)
		m.record(ctx, auditdomain.Event{
			PrincipalID: principalID,
			SessionID:   victim.ID,
			Action:      auditdomain.ActionSessionEvicted,
			Timestamp:   now,
			Detail:      ReasonEvicted,
		})
		m.logger.InfoContext(ctx, "session evicted",
			slog.String("session_id", victim.ID),
			slog.String("principal_id", principalID),
			slog.Time("last_activity_at", victim.LastActivityAt))
	}
	return nil
}
