package domain

import (
	"testing"
	"time"
)

func TestSession_IsActive(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		name    string
		s       Session
		active  bool
		expired bool
	}{
		{"active", Session{Status: StatusActive, ExpiresAt: now.Add(time.Hour)}, true, false},
		{"revoked", Session{Status: StatusRevoked, ExpiresAt: now.Add(time.Hour)}, false, false},
		{"expired", Session{Status: StatusActive, ExpiresAt: now.Add(-time.Second)}, false, true},
		{"expires exactly now", Session{Status: StatusActive, ExpiresAt: now}, false, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.s.IsActive(now); got != tc.active {
				t.Errorf("IsActive: want %v, got %v", tc.active, got)
			}
			if got := tc.s.Expired(now); got != tc.expired {
				t.Errorf("Expired: want %v, got %v", tc.expired, got)
			}
		})
	}
}

func TestPrincipalClass_Valid(t *testing.T) {
	if !ClassStandard.Valid() || !ClassElevated.Valid() {
		t.Error("known classes must be valid")
	}
	if PrincipalClass("admin").Valid() || PrincipalClass("").Valid() {
		t.Error("unknown class must be invalid")
	}
}
