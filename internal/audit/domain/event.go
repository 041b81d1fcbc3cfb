package domain

import "time"

// Action names one session lifecycle transition.
type Action string

const (
	ActionSessionCreated        Action = "session_created"
	ActionSessionEvicted        Action = "session_evicted"
	ActionSessionRevoked        Action = "session_revoked"
	ActionSessionsRevokedAll    Action = "sessions_revoked_all"
	ActionSessionExtended       Action = "session_extended"
	ActionRefreshRotated        Action = "refresh_rotated"
	ActionRefreshRejected       Action = "refresh_rejected"
	ActionRefreshReuseSuspected Action = "refresh_reuse_suspected"
	ActionCredentialBlacklisted Action = "credential_blacklisted"
)

// Outcome is the result of the audited operation.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
)

// Event is one audit record. Detail is free text and must never carry secrets.
type Event struct {
	ID          string
	PrincipalID string
	SessionID   string
	Action      Action
	ActorIP     string
	UserAgent   string
	Timestamp   time.Time
	Outcome     Outcome
	Detail      string
}
