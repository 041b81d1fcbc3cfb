package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	auditdomain "github.com/advancia-platform/credential-lifecycle/internal/audit/domain"
	"github.com/advancia-platform/credential-lifecycle/internal/session/domain"
)

// ReasonRevokeAll is the default revoke reason for RevokeAllSessions.
const ReasonRevokeAll = "revoke all sessions"

// TouchActivity records activity on a session. When the session is within the extension window
// of its expiry and its policy allows it, expiresAt moves forward by the extension increment;
// otherwise only lastActivityAt changes. The write is best-effort and may lose to a concurrent
// touch, which only affects extension precision.
func (m *Manager) TouchActivity(ctx context.Context, sessionID string) (err error) {
	ctx, span := m.startSpan(ctx, "TouchActivity", attribute.String("session.id", sessionID))
	defer func() { endSpan(span, err) }()

	s, err := m.getSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if s == nil {
		return ErrSessionNotFound
	}
	now := m.clock()
	if !s.IsActive(now) {
		return ErrSessionRevoked
	}

	var extendTo *time.Time
	if s.ExtendOnActivity && m.cfg.ActivityExtensionIncrement > 0 && s.ExpiresAt.Sub(now) <= m.cfg.ActivityExtensionWindow {
		t := s.ExpiresAt.Add(m.cfg.ActivityExtensionIncrement)
		extendTo = &t
	}

	bctx, cancel := m.bound(ctx)
	err = m.repo.TouchActivity(bctx, s.ID, now, extendTo)
	cancel()
	if err != nil {
		return storeError("touch activity", err)
	}
	if extendTo != nil {
		m.record(ctx, auditdomain.Event{
			PrincipalID: s.PrincipalID,
			SessionID:   s.ID,
			Action:      auditdomain.ActionSessionExtended,
			Timestamp:   now,
			Detail:      "expires_at " + extendTo.Format(time.RFC3339),
		})
	}
	return nil
}

// RevokeSession marks the session revoked. Revoking an already revoked session is a no-op.
func (m *Manager) RevokeSession(ctx context.Context, sessionID, reason string) (err error) {
	ctx, span := m.startSpan(ctx, "RevokeSession", attribute.String("session.id", sessionID))
	defer func() { endSpan(span, err) }()

	s, err := m.getSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if s == nil {
		return ErrSessionNotFound
	}
	return m.revoke(ctx, s, reason)
}

// RevokeOwnSession revokes sessionID only if it belongs to principalID. A session owned by
// someone else is reported as ErrSessionNotFound.
func (m *Manager) RevokeOwnSession(ctx context.Context, principalID, sessionID, reason string) (err error) {
	ctx, span := m.startSpan(ctx, "RevokeOwnSession", attribute.String("session.id", sessionID))
	defer func() { endSpan(span, err) }()

	s, err := m.getSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if s == nil || s.PrincipalID != principalID {
		return ErrSessionNotFound
	}
	return m.revoke(ctx, s, reason)
}

func (m *Manager) revoke(ctx context.Context, s *domain.Session, reason string) error {
	if s.Status == domain.StatusRevoked {
		return nil
	}
	now := m.clock()
	bctx, cancel := m.bound(ctx)
	swapped, err := m.repo.SwapStatus(bctx, s.ID, domain.StatusActive, domain.StatusRevoked, reason, now)
	cancel()
	if err != nil {
		return storeError("revoke session", err)
	}
	if !swapped {
		// Lost to a concurrent revocation.
		return nil
	}
	m.inst.revoked.Add(ctx, 1)
	m.record(ctx, auditdomain.Event{
		PrincipalID: s.PrincipalID,
		SessionID:   s.ID,
		Action:      auditdomain.ActionSessionRevoked,
		Timestamp:   now,
		Detail:      reason,
	})
	m.logger.InfoContext(ctx, "session revoked",
		slog.String("session_id", s.ID),
		slog.String("principal_id", s.PrincipalID),
		slog.String("reason", reason))
	return nil
}

// RevokeAllSessions revokes every active session of the principal and returns how many this
// call revoked.
func (m *Manager) RevokeAllSessions(ctx context.Context, principalID, reason string) (_ int, err error) {
	ctx, span := m.startSpan(ctx, "RevokeAllSessions", attribute.String("principal.id", principalID))
	defer func() { endSpan(span, err) }()

	if principalID == "" {
		return 0, ErrInvalidParameters
	}
	if reason == "" {
		reason = ReasonRevokeAll
	}
	bctx, cancel := m.bound(ctx)
	defer cancel()
	sessions, err := m.repo.ListActiveByPrincipal(bctx, principalID)
	if err != nil {
		return 0, storeError("list active sessions", err)
	}
	now := m.clock()
	count := 0
	for _, s := range sessions {
		ok, err := m.repo.SwapStatus(bctx, s.ID, domain.StatusActive, domain.StatusRevoked, reason, now)
		if err != nil {
			return count, storeError("revoke session", err)
		}
		if ok {
			count++
		}
	}
	m.inst.revoked.Add(ctx, int64(count))
	m.record(ctx, auditdomain.Event{
		PrincipalID: principalID,
		Action:      auditdomain.ActionSessionsRevokedAll,
		Timestamp:   now,
		Detail:      fmt.Sprintf("%s: %d revoked", reason, count),
	})
	m.logger.InfoContext(ctx, "all sessions revoked",
		slog.String("principal_id", principalID),
		slog.Int("count", count))
	return count, nil
}

// ListActiveSessions returns the principal's live sessions, least recently active first.
// Refresh hashes are cleared.
func (m *Manager) ListActiveSessions(ctx context.Context, principalID string) ([]*domain.Session, error) {
	if principalID == "" {
		return nil, ErrInvalidParameters
	}
	bctx, cancel := m.bound(ctx)
	defer cancel()
	sessions, err := m.repo.ListActiveByPrincipal(bctx, principalID)
	if err != nil {
		return nil, storeError("list active sessions", err)
	}
	now := m.clock()
	out := make([]*domain.Session, 0, len(sessions))
	for _, s := range sessions {
		if !s.IsActive(now) {
			continue
		}
		s.RefreshCredentialHash = ""
		out = append(out, s)
	}
	return out, nil
}

// CleanupSessions deletes sessions that were revoked, or that expired, more than the retention
// window before now. It is meant to be called by an external scheduler and returns the number
// of sessions deleted.
func (m *Manager) CleanupSessions(ctx context.Context, now time.Time) (int, error) {
	cutoff := now.Add(-m.cfg.RetentionWindow)
	total := 0
	for {
		bctx, cancel := m.bound(ctx)
		ids, err := m.repo.ListRetired(bctx, cutoff, cleanupBatch)
		cancel()
		if err != nil {
			return total, storeError("list retired sessions", err)
		}
		for _, id := range ids {
			bctx, cancel := m.bound(ctx)
			err := m.repo.Delete(bctx, id)
			cancel()
			if err != nil {
				return total, storeError("delete session", err)
			}
			total++
		}
		if len(ids) < cleanupBatch {
			break
		}
	}
	if total > 0 {
		m.logger.InfoContext(ctx, "retired sessions deleted",
			slog.Int("count", total),
			slog.Time("cutoff", cutoff))
	}
	return total, nil
}
