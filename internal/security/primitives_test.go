package security

import (
	"bytes"
	"encoding/base64"
	"errors"
	"testing"
)

func TestGenerateOpaqueSecret(t *testing.T) {
	s, err := GenerateOpaqueSecret(DefaultSecretBytes)
	if err != nil {
		t.Fatalf("GenerateOpaqueSecret: %v", err)
	}
	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		t.Fatalf("secret is not unpadded URL-safe base64: %v", err)
	}
	if len(raw) != DefaultSecretBytes {
		t.Errorf("decoded length: want %d, got %d", DefaultSecretBytes, len(raw))
	}
	other, err := GenerateOpaqueSecret(DefaultSecretBytes)
	if err != nil {
		t.Fatalf("GenerateOpaqueSecret: %v", err)
	}
	if s == other {
		t.Error("two secrets are identical")
	}
	if _, err := GenerateOpaqueSecret(MinSecretBytes - 1); !errors.Is(err, ErrInvalidParameters) {
		t.Errorf("short secret: want ErrInvalidParameters, got %v", err)
	}
}

func TestConstantTimeEquals(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"", "", true},
		{"abc", "abc", true},
		{"abc", "abd", false},
		{"abc", "ab", false},
		{"ab", "abc", false},
		{"", "a", false},
		{"a\x00", "a", false},
	}
	for _, tc := range cases {
		if got := ConstantTimeEquals(tc.a, tc.b); got != tc.want {
			t.Errorf("ConstantTimeEquals(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestDeriveKey(t *testing.T) {
	k1, err := DeriveKey([]byte("secret"), []byte("salt"), MinKDFIterations, 32)
	if err != nil {
		t.Fatalf("DeriveKey: %v", err)
	}
	k2, err := DeriveKey([]byte("secret"), []byte("salt"), MinKDFIterations, 32)
	if err != nil {
		t.Fatalf("DeriveKey: %v", err)
	}
	if len(k1) != 32 || !bytes.Equal(k1, k2) {
		t.Fatal("DeriveKey is not deterministic")
	}
	k3, err := DeriveKey([]byte("secret"), []byte("pepper"), MinKDFIterations, 32)
	if err != nil {
		t.Fatalf("DeriveKey: %v", err)
	}
	if bytes.Equal(k1, k3) {
		t.Fatal("different salts produced the same key")
	}
	if _, err := DeriveKey([]byte("s"), []byte("salt"), MinKDFIterations-1, 32); !errors.Is(err, ErrInvalidParameters) {
		t.Errorf("low iterations: want ErrInvalidParameters, got %v", err)
	}
	if _, err := DeriveKey([]byte("s"), []byte("salt"), MinKDFIterations, MinDerivedKeyLength-1); !errors.Is(err, ErrInvalidParameters) {
		t.Errorf("short key: want ErrInvalidParameters, got %v", err)
	}
}

func TestFingerprint(t *testing.T) {
	base := Fingerprint("Mozilla/5.0", "10.0.0.1", map[string]string{"platform": "linux", "lang": "en"})
	if len(base) != 64 {
		t.Fatalf("want 64 hex chars, got %d", len(base))
	}
	if got := Fingerprint(" mozilla/5.0 ", "10.0.0.1", map[string]string{"lang": "en", "platform": "linux"}); got != base {
		t.Error("normalization or key order changed the fingerprint")
	}
	if got := Fingerprint("Mozilla/5.0", "10.0.0.2", map[string]string{"platform": "linux", "lang": "en"}); got == base {
		t.Error("different origin produced the same fingerprint")
	}
	// Field boundaries are length-prefixed.
	if Fingerprint("ab", "c", nil) == Fingerprint("a", "bc", nil) {
		t.Error("shifted fields collided")
	}
}

func TestServiceCredentials(t *testing.T) {
	current := "svc-credential-current-0123456789abcdef"
	previous := "svc-credential-previous-0123456789abcdef"
	sc, err := NewServiceCredentials(current, " ", previous)
	if err != nil {
		t.Fatalf("NewServiceCredentials: %v", err)
	}
	if sc.Len() != 2 {
		t.Errorf("Len = %d, want 2", sc.Len())
	}
	for _, c := range []string{current, previous} {
		if !sc.Verify(c) {
			t.Errorf("Verify(%q) = false", c)
		}
	}
	for _, c := range []string{"", "svc-credential-current", current + "x"} {
		if sc.Verify(c) {
			t.Errorf("Verify(%q) = true", c)
		}
	}

	if _, err := NewServiceCredentials("short"); !errors.Is(err, ErrWeakServiceCredential) {
		t.Errorf("short credential: want ErrWeakServiceCredential, got %v", err)
	}

	empty, err := NewServiceCredentials()
	if err != nil {
		t.Fatalf("NewServiceCredentials(): %v", err)
	}
	if empty.Verify(current) {
		t.Error("empty set trusted a credential")
	}
	var none *ServiceCredentials
	if none.Verify(current) || none.Len() != 0 {
		t.Error("nil set trusted a credential")
	}
}
