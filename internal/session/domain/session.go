package domain

import "time"

// Status is the persisted lifecycle state of a session. Expiry is implicit (now > ExpiresAt)
// and is never written as a status.
type Status string

const (
	StatusActive  Status = "active"
	StatusRevoked Status = "revoked"
)

// PrincipalClass selects the session policy applied to a principal.
type PrincipalClass string

const (
	ClassStandard PrincipalClass = "standard"
	ClassElevated PrincipalClass = "elevated"
)

// Valid reports whether c is a known class.
func (c PrincipalClass) Valid() bool {
	return c == ClassStandard || c == ClassElevated
}

// Session represents one authenticated device binding for one principal.
type Session struct {
	ID                    string
	PrincipalID           string
	PrincipalClass        PrincipalClass
	RefreshCredentialHash string // adaptive hash of the current refresh secret; plaintext is never stored
	CredentialVersion     int64
	DeviceFingerprint     string
	IPAddress             string
	UserAgent             string
	Status                Status
	RevokeReason          string
	RevokedAt             *time.Time // nil when active
	CreatedAt             time.Time
	LastActivityAt        time.Time
	ExpiresAt             time.Time
	ExtendOnActivity      bool // resolved from policy at creation
}

// IsActive reports whether the session is active and not past its expiry at now.
func (s *Session) IsActive(now time.Time) bool {
	return s.Status == StatusActive && now.Before(s.ExpiresAt)
}

// Expired reports whether the session's expiry has passed at now, regardless of status.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
