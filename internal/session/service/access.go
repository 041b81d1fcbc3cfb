package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	auditdomain "github.com/advancia-platform/credential-lifecycle/internal/audit/domain"
	"github.com/advancia-platform/credential-lifecycle/internal/session/domain"
)

// ReasonLogout is the default revoke reason for Logout.
const ReasonLogout = "logout"

// Principal is the identity carried by a validated access credential.
type Principal struct {
	PrincipalID       string
	SessionID         string
	CredentialID      string
	CredentialVersion int64
	Class             domain.PrincipalClass
	ExpiresAt         time.Time
}

// ValidateAccessCredential checks the credential's signature and expiry, then the revocation
// ledger, then that its session is still active, in that order so that forged or expired
// credentials never reach the store. Every rejection is ErrUnauthorized; only store failures
// surface as ErrStoreUnavailable.
//
// The session is checked for status only. A credential minted shortly before its session's
// expiry remains usable for its own short TTL.
func (m *Manager) ValidateAccessCredential(ctx context.Context, credential string) (_ Principal, err error) {
	ctx, span := m.startSpan(ctx, "ValidateAccessCredential")
	defer func() { endSpan(span, err) }()

	now := m.clock()
	claims, err := m.tokens.ValidateAccess(credential, now)
	if err != nil {
		m.reject(ctx, "invalid_token")
		return Principal{}, ErrUnauthorized
	}
	span.SetAttributes(attribute.String("session.id", claims.SessionID))

	bctx, cancel := m.bound(ctx)
	blacklisted, err := m.ledger.IsBlacklisted(bctx, claims.CredentialID)
	cancel()
	if err != nil {
		return Principal{}, storeError("check revocation ledger", err)
	}
	if blacklisted {
		m.reject(ctx, "blacklisted")
		return Principal{}, ErrUnauthorized
	}

	s, err := m.getSession(ctx, claims.SessionID)
	if err != nil {
		return Principal{}, err
	}
	if s == nil || s.Status != domain.StatusActive || s.PrincipalID != claims.PrincipalID {
		m.reject(ctx, "session_inactive")
		return Principal{}, ErrUnauthorized
	}
	return Principal{
		PrincipalID:       claims.PrincipalID,
		SessionID:         claims.SessionID,
		CredentialID:      claims.CredentialID,
		CredentialVersion: claims.CredentialVersion,
		Class:             s.PrincipalClass,
		ExpiresAt:         claims.ExpiresAt,
	}, nil
}

// RevokeAccessCredential blacklists one access credential until its natural expiry without
// touching its session. An already expired credential needs no entry and is accepted silently.
func (m *Manager) RevokeAccessCredential(ctx context.Context, credential, reason string) (err error) {
	ctx, span := m.startSpan(ctx, "RevokeAccessCredential")
	defer func() { endSpan(span, err) }()

	claims, err := m.tokens.ParseAccessAllowExpired(credential)
	if err != nil {
		return ErrUnauthorized
	}
	return m.blacklist(ctx, claims.CredentialID, claims.PrincipalID, claims.SessionID, reason, claims.ExpiresAt)
}

// Logout revokes the credential's session and blacklists the credential itself so that it
// stops working immediately on every instance. Expired but correctly signed credentials are
// accepted, since they still identify the session.
func (m *Manager) Logout(ctx context.Context, credential, reason string) (err error) {
	ctx, span := m.startSpan(ctx, "Logout")
	defer func() { endSpan(span, err) }()

	if reason == "" {
		reason = ReasonLogout
	}
	claims, err := m.tokens.ParseAccessAllowExpired(credential)
	if err != nil {
		m.reject(ctx, "invalid_token")
		return ErrUnauthorized
	}
	span.SetAttributes(attribute.String("session.id", claims.SessionID))

	if err := m.RevokeSession(ctx, claims.SessionID, reason); err != nil && !errors.Is(err, ErrSessionNotFound) {
		return err
	}
	return m.blacklist(ctx, claims.CredentialID, claims.PrincipalID, claims.SessionID, reason, claims.ExpiresAt)
}

func (m *Manager) blacklist(ctx context.Context, credentialID, principalID, sessionID, reason string, expiresAt time.Time) error {
	now := m.clock()
	if !expiresAt.After(now) {
		return nil
	}
	bctx, cancel := m.bound(ctx)
	err := m.ledger.Blacklist(bctx, credentialID, principalID, reason, expiresAt)
	cancel()
	if err != nil {
		return storeError("blacklist credential", err)
	}
	m.record(ctx, auditdomain.Event{
		PrincipalID: principalID,
		SessionID:   sessionID,
		Action:      auditdomain.ActionCredentialBlacklisted,
		Timestamp:   now,
		Detail:      reason,
	})
	m.logger.InfoContext(ctx, "access credential revoked",
		slog.String("credential_id", credentialID),
		slog.String("session_id", sessionID))
	return nil
}
