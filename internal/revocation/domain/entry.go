package domain

import "time"

// Entry is one blacklisted access credential. It is garbage once NaturalExpiry has passed,
// because the credential then fails its own expiry check.
type Entry struct {
	CredentialID  string
	PrincipalID   string
	Reason        string
	RevokedAt     time.Time
	NaturalExpiry time.Time
}
