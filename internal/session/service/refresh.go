package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	auditdomain "github.com/advancia-platform/credential-lifecycle/internal/audit/domain"
	"github.com/advancia-platform/credential-lifecycle/internal/security"
)

const refreshSeparator = "."

// FormatRefreshCredential joins a session id and its opaque secret into the form handed to clients.
func FormatRefreshCredential(sessionID, secret string) string {
	return sessionID + refreshSeparator + secret
}

// ParseRefreshCredential splits a refresh credential produced by FormatRefreshCredential.
// Neither part may be empty.
func ParseRefreshCredential(credential string) (sessionID, secret string, err error) {
	sessionID, secret, ok := strings.Cut(strings.TrimSpace(credential), refreshSeparator)
	if !ok || sessionID == "" || secret == "" {
		return "", "", fmt.Errorf("%w: malformed refresh credential", ErrInvalidParameters)
	}
	return sessionID, secret, nil
}

// RotateRefreshCredential parses a composite refresh credential and rotates it.
func (m *Manager) RotateRefreshCredential(ctx context.Context, credential string) (*Credentials, error) {
	sessionID, secret, err := ParseRefreshCredential(credential)
	if err != nil {
		return nil, err
	}
	return m.RotateRefreshSecret(ctx, sessionID, secret)
}

// RotateRefreshSecret verifies the presented secret against the session's current hash and
// replaces it with a new one. The write is a compare-and-swap on the credential version read
// here: if another rotation landed in between, this call fails with ErrConcurrentRotation and
// the presented secret is dead.
func (m *Manager) RotateRefreshSecret(ctx context.Context, sessionID, presentedSecret string) (_ *Credentials, err error) {
	ctx, span := m.startSpan(ctx, "RotateRefreshSecret", attribute.String("session.id", sessionID))
	defer func() { endSpan(span, err) }()

	if sessionID == "" || presentedSecret == "" {
		return nil, ErrInvalidParameters
	}
	s, err := m.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	now := m.clock()
	if s == nil {
		m.reject(ctx, "session_not_found")
		return nil, ErrSessionNotFound
	}

	rejected := func(reason string, cause error) (*Credentials, error) {
		m.reject(ctx, reason)
		m.record(ctx, auditdomain.Event{
			PrincipalID: s.PrincipalID,
			SessionID:   s.ID,
			Action:      auditdomain.ActionRefreshRejected,
			Outcome:     auditdomain.OutcomeFailure,
			Timestamp:   now,
			Detail:      reason,
		})
		return nil, cause
	}
	if !s.IsActive(now) {
		if s.Expired(now) {
			return rejected("session_expired", ErrSessionRevoked)
		}
		return rejected("session_revoked", ErrSessionRevoked)
	}
	if !m.hasher.Verify(presentedSecret, s.RefreshCredentialHash) {
		return rejected("secret_mismatch", ErrSecretMismatch)
	}

	secret, err := security.GenerateOpaqueSecret(m.cfg.SecretBytes)
	if err != nil {
		return nil, err
	}
	hash, err := m.hasher.Hash(secret)
	if err != nil {
		return nil, fmt.Errorf("hash refresh secret: %w", err)
	}

	bctx, cancel := m.bound(ctx)
	swapped, err := m.repo.SwapCredential(bctx, s.ID, s.CredentialVersion, hash, now)
	cancel()
	if err != nil {
		return nil, storeError("rotate refresh secret", err)
	}
	if !swapped {
		m.reject(ctx, "concurrent_rotation")
		m.record(ctx, auditdomain.Event{
			PrincipalID: s.PrincipalID,
			SessionID:   s.ID,
			Action:      auditdomain.ActionRefreshReuseSuspected,
			Outcome:     auditdomain.OutcomeFailure,
			Timestamp:   now,
			Detail:      fmt.Sprintf("credential version %d already rotated", s.CredentialVersion),
		})
		m.logger.WarnContext(ctx, "refresh rotation lost compare-and-swap",
			slog.String("session_id", s.ID),
			slog.String("principal_id", s.PrincipalID),
			slog.Int64("credential_version", s.CredentialVersion))
		return nil, ErrConcurrentRotation
	}

	version := s.CredentialVersion + 1
	access, err := m.tokens.IssueAccess(s.PrincipalID, s.ID, version, now)
	if err != nil {
		return nil, fmt.Errorf("issue access credential: %w", err)
	}

	m.inst.rotated.Add(ctx, 1)
	m.record(ctx, auditdomain.Event{
		PrincipalID: s.PrincipalID,
		SessionID:   s.ID,
		Action:      auditdomain.ActionRefreshRotated,
		Timestamp:   now,
	})

	return &Credentials{
		SessionID:         s.ID,
		RefreshCredential: FormatRefreshCredential(s.ID, secret),
		AccessCredential:  access.Token,
		CredentialID:      access.CredentialID,
		AccessExpiresAt:   access.ExpiresAt,
		CredentialVersion: version,
		ExpiresAt:         s.ExpiresAt,
	}, nil
}
