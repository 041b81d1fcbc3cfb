package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/advancia-platform/credential-lifecycle/internal/config"
	"github.com/advancia-platform/credential-lifecycle/internal/db"
	"github.com/advancia-platform/credential-lifecycle/internal/security"
)

func testConfig() *config.Config {
	return &config.Config{
		SigningAlgorithm:    "HS256",
		SigningSecret:       strings.Repeat("k", 48),
		CredentialIssuer:    "iss",
		CredentialAudience:  "aud",
		AccessCredentialTTL: 15 * time.Minute,
		RefreshTTLDefault:   7 * 24 * time.Hour,
		HashAlgorithm:       "bcrypt",
		HashWorkFactor:      4,
		StoreTimeout:        time.Second,
		LedgerCacheSize:     16,
	}
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewLogger(t *testing.T) {
	if _, ok := NewLogger("production").Handler().(*slog.JSONHandler); !ok {
		t.Error("production logger should use the JSON handler")
	}
	if _, ok := NewLogger("development").Handler().(*slog.TextHandler); !ok {
		t.Error("development logger should use the text handler")
	}
}

func TestNew_InvalidSigningConfig(t *testing.T) {
	cfg := testConfig()
	cfg.SigningSecret = "short"
	_, err := New(context.Background(), cfg, "test", discard())
	if !errors.Is(err, security.ErrInvalidKey) {
		t.Fatalf("err = %v, want ErrInvalidKey", err)
	}
}

func TestNew_InvalidHashAlgorithm(t *testing.T) {
	cfg := testConfig()
	cfg.HashAlgorithm = "md5"
	_, err := New(context.Background(), cfg, "test", discard())
	if !errors.Is(err, security.ErrInvalidParameters) {
		t.Fatalf("err = %v, want ErrInvalidParameters", err)
	}
}

func TestNew_WeakServiceCredential(t *testing.T) {
	cfg := testConfig()
	cfg.ServiceCredentials = "short"
	_, err := New(context.Background(), cfg, "test", discard())
	if !errors.Is(err, security.ErrWeakServiceCredential) {
		t.Fatalf("err = %v, want ErrWeakServiceCredential", err)
	}
}

func TestNew_RequiresDatabase(t *testing.T) {
	_, err := New(context.Background(), testConfig(), "test", discard())
	if !errors.Is(err, db.ErrEmptyDSN) {
		t.Fatalf("err = %v, want ErrEmptyDSN", err)
	}
}

func TestClose_RunsInReverseOrder(t *testing.T) {
	var order []int
	a := &App{}
	for i := 0; i < 3; i++ {
		a.closers = append(a.closers, func(context.Context) error {
			order = append(order, i)
			if i == 1 {
				return errors.New("boom")
			}
			return nil
		})
	}
	err := a.Close(context.Background())
	if err == nil || err.Error() != "boom" {
		t.Errorf("Close = %v, want boom", err)
	}
	if len(order) != 3 || order[0] != 2 || order[2] != 0 {
		t.Errorf("order = %v, want [2 1 0]", order)
	}
	if err := a.Close(context.Background()); err != nil {
		t.Errorf("second Close = %v, want nil", err)
	}
}

func TestHealthServer_NoStores(t *testing.T) {
	a := &App{Logger: discard()}
	if err := a.HealthServer().Check(context.Background()); err != nil {
		t.Errorf("Check = %v, want nil", err)
	}
}
