package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

var configKeys = []string{
	"GRPC_ADDR", "DATABASE_URL", "REDIS_ADDR", "REDIS_PASSWORD", "SERVICE_CREDENTIALS",
	"SIGNING_ALGORITHM", "SIGNING_PRIVATE_KEY", "SIGNING_PUBLIC_KEY", "SIGNING_SECRET",
	"CREDENTIAL_ISSUER", "CREDENTIAL_AUDIENCE",
	"ACCESS_CREDENTIAL_TTL", "REFRESH_TTL_DEFAULT", "REFRESH_TTL_PERSISTENT",
	"MAX_CONCURRENT_SESSIONS", "MAX_CONCURRENT_SESSIONS_ELEVATED",
	"ACTIVITY_EXTENSION_WINDOW", "ACTIVITY_EXTENSION_INCREMENT",
	"HASH_ALGORITHM", "HASH_WORK_FACTOR", "RETENTION_WINDOW_DAYS", "STORE_TIMEOUT",
	"SESSION_POLICY_FILE", "LEDGER_CACHE_SIZE",
	"OTEL_EXPORTER_OTLP_ENDPOINT", "OTEL_EXPORTER_OTLP_INSECURE",
	"AUDIT_KAFKA_BROKERS", "AUDIT_KAFKA_TOPIC", "AUDIT_QUEUE_SIZE", "AUDIT_WORKERS",
	"CLEANUP_INTERVAL", "APP_ENV",
}

// clearEnv blanks every key Load reads; viper treats empty variables as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg == nil {
		t.Fatal("Load returned nil config")
	}
	checks := []struct {
		name      string
		got, want any
	}{
		{"GRPCAddr", cfg.GRPCAddr, ":8080"},
		{"SigningAlgorithm", cfg.SigningAlgorithm, "RS256"},
		{"CredentialIssuer", cfg.CredentialIssuer, "credential-lifecycle"},
		{"AccessCredentialTTL", cfg.AccessCredentialTTL, 15 * time.Minute},
		{"RefreshTTLDefault", cfg.RefreshTTLDefault, 7 * 24 * time.Hour},
		{"RefreshTTLPersistent", cfg.RefreshTTLPersistent, 30 * 24 * time.Hour},
		{"MaxConcurrentSessions", cfg.MaxConcurrentSessions, 0},
		{"MaxConcurrentSessionsElevated", cfg.MaxConcurrentSessionsElevated, 5},
		{"ActivityExtensionWindow", cfg.ActivityExtensionWindow, 24 * time.Hour},
		{"ActivityExtensionIncrement", cfg.ActivityExtensionIncrement, 24 * time.Hour},
		{"HashAlgorithm", cfg.HashAlgorithm, "bcrypt"},
		{"HashWorkFactor", cfg.HashWorkFactor, 12},
		{"RetentionWindowDays", cfg.RetentionWindowDays, 30},
		{"StoreTimeout", cfg.StoreTimeout, 2 * time.Second},
		{"LedgerCacheSize", cfg.LedgerCacheSize, 10000},
		{"AuditKafkaTopic", cfg.AuditKafkaTopic, "credential-audit"},
		{"AuditQueueSize", cfg.AuditQueueSize, 1024},
		{"AuditWorkers", cfg.AuditWorkers, 4},
		{"CleanupInterval", cfg.CleanupInterval, time.Hour},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
	if cfg.OTelInsecure {
		t.Error("OTelInsecure should default to false")
	}
}

func TestLoad_EnvVarOverride(t *testing.T) {
	clearEnv(t)
	t.Setenv("GRPC_ADDR", ":9090")
	t.Setenv("CREDENTIAL_ISSUER", "custom-issuer")
	t.Setenv("ACCESS_CREDENTIAL_TTL", "5m")
	t.Setenv("MAX_CONCURRENT_SESSIONS", "3")
	t.Setenv("HASH_WORK_FACTOR", "14")
	t.Setenv("OTEL_EXPORTER_OTLP_INSECURE", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.GRPCAddr != ":9090" {
		t.Errorf("GRPCAddr = %q, want %q", cfg.GRPCAddr, ":9090")
	}
	if cfg.CredentialIssuer != "custom-issuer" {
		t.Errorf("CredentialIssuer = %q, want %q", cfg.CredentialIssuer, "custom-issuer")
	}
	if cfg.AccessCredentialTTL != 5*time.Minute {
		t.Errorf("AccessCredentialTTL = %v, want 5m", cfg.AccessCredentialTTL)
	}
	if cfg.MaxConcurrentSessions != 3 {
		t.Errorf("MaxConcurrentSessions = %d, want 3", cfg.MaxConcurrentSessions)
	}
	if cfg.HashWorkFactor != 14 {
		t.Errorf("HashWorkFactor = %d, want 14", cfg.HashWorkFactor)
	}
	if !cfg.OTelInsecure {
		t.Error("OTelInsecure should be true")
	}
}

func TestLoad_WithEnvFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("GRPC_ADDR=:7777\nREDIS_ADDR=localhost:6379\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Chdir(dir)
	t.Setenv("REDIS_ADDR", "redis:6380")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.GRPCAddr != ":7777" {
		t.Errorf("GRPCAddr = %q, want value from .env", cfg.GRPCAddr)
	}
	if cfg.RedisAddr != "redis:6380" {
		t.Errorf("RedisAddr = %q, want env to override .env", cfg.RedisAddr)
	}
}

func TestLoad_HashWorkFactorRange(t *testing.T) {
	testCases := []struct {
		name      string
		algorithm string
		value     string
		want      int
		err       bool
	}{
		{"bcrypt min", "bcrypt", "4", 4, false},
		{"bcrypt max", "bcrypt", "31", 31, false},
		{"bcrypt too low", "bcrypt", "3", 0, true},
		{"bcrypt too high", "bcrypt", "32", 0, true},
		{"bcrypt zero defaults", "bcrypt", "0", 12, false},
		{"argon2id", "argon2id", "3", 3, false},
		{"argon2id zero defaults", "argon2id", "0", 3, false},
		{"argon2id unset defaults", "argon2id", "", 3, false},
		{"bcrypt unset defaults", "bcrypt", "", 12, false},
		{"argon2id negative", "argon2id", "-1", 0, true},
		{"argon2id too high", "argon2id", "65", 0, true},
		{"unknown algorithm", "scrypt", "12", 0, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("HASH_ALGORITHM", tc.algorithm)
			t.Setenv("HASH_WORK_FACTOR", tc.value)

			cfg, err := Load()
			if tc.err {
				if err == nil {
					t.Fatal("Load should return error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if cfg.HashWorkFactor != tc.want {
				t.Errorf("HashWorkFactor = %d, want %d", cfg.HashWorkFactor, tc.want)
			}
		})
	}
}

func TestLoad_ValidationErrors(t *testing.T) {
	testCases := []struct {
		name    string
		env     map[string]string
		wantKey string
	}{
		{"signing algorithm", map[string]string{"SIGNING_ALGORITHM": "none"}, "SIGNING_ALGORITHM"},
		{"access ttl", map[string]string{"ACCESS_CREDENTIAL_TTL": "-1m"}, "ACCESS_CREDENTIAL_TTL"},
		{"access longer than refresh", map[string]string{"ACCESS_CREDENTIAL_TTL": "200h"}, "ACCESS_CREDENTIAL_TTL"},
		{"refresh ttl", map[string]string{"REFRESH_TTL_PERSISTENT": "-1h"}, "REFRESH_TTL_DEFAULT"},
		{"extension window", map[string]string{"ACTIVITY_EXTENSION_WINDOW": "-1h"}, "ACTIVITY_EXTENSION_WINDOW"},
		{"retention", map[string]string{"RETENTION_WINDOW_DAYS": "-1"}, "RETENTION_WINDOW_DAYS"},
		{"store timeout", map[string]string{"STORE_TIMEOUT": "0s"}, "STORE_TIMEOUT"},
		{"cache size", map[string]string{"LEDGER_CACHE_SIZE": "-5"}, "LEDGER_CACHE_SIZE"},
		{"cleanup interval", map[string]string{"CLEANUP_INTERVAL": "0s"}, "CLEANUP_INTERVAL"},
		{"audit queue", map[string]string{"AUDIT_QUEUE_SIZE": "0"}, "AUDIT_QUEUE_SIZE"},
		{"audit workers", map[string]string{"AUDIT_WORKERS": "-1"}, "AUDIT_WORKERS"},
		{"weak service credential", map[string]string{"SERVICE_CREDENTIALS": "identity-svc"}, "SERVICE_CREDENTIALS"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			if err == nil {
				t.Fatal("Load should return error")
			}
			if !strings.HasPrefix(err.Error(), "config: "+tc.wantKey) {
				t.Errorf("error = %q, want it to name %s", err, tc.wantKey)
			}
		})
	}
}

func TestRetentionWindow(t *testing.T) {
	cfg := &Config{RetentionWindowDays: 30}
	if got := cfg.RetentionWindow(); got != 720*time.Hour {
		t.Errorf("RetentionWindow = %v, want 720h", got)
	}
}

func TestLimitsAndSigning(t *testing.T) {
	cfg := &Config{
		MaxConcurrentSessions:         2,
		MaxConcurrentSessionsElevated: 1,
		RefreshTTLDefault:             time.Hour,
		RefreshTTLPersistent:          2 * time.Hour,
		SigningAlgorithm:              "HS256",
		SigningSecret:                 "secret",
		CredentialIssuer:              "iss",
		CredentialAudience:            "aud",
		AccessCredentialTTL:           time.Minute,
	}
	l := cfg.Limits()
	if l.MaxConcurrentStandard != 2 || l.MaxConcurrentElevated != 1 || l.RefreshTTLDefault != time.Hour || l.RefreshTTLPersistent != 2*time.Hour {
		t.Errorf("Limits = %+v", l)
	}
	s := cfg.Signing()
	if s.Algorithm != "HS256" || s.Secret != "secret" || s.Issuer != "iss" || s.Audience != "aud" || s.TTL != time.Minute {
		t.Errorf("Signing = %+v", s)
	}
}

func TestAuditKafkaBrokersList(t *testing.T) {
	testCases := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"localhost:9092", []string{"localhost:9092"}},
		{" a:9092 , ,b:9092 ", []string{"a:9092", "b:9092"}},
	}
	for _, tc := range testCases {
		cfg := &Config{AuditKafkaBrokers: tc.in}
		if got := cfg.AuditKafkaBrokersList(); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("AuditKafkaBrokersList(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
	var nilCfg *Config
	if got := nilCfg.AuditKafkaBrokersList(); got != nil {
		t.Errorf("nil config = %v, want nil", got)
	}
}

func TestServiceCredentialList(t *testing.T) {
	clearEnv(t)
	current := strings.Repeat("a", 32)
	next := strings.Repeat("b", 40)
	t.Setenv("SERVICE_CREDENTIALS", current+", "+next)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := cfg.ServiceCredentialList(); !reflect.DeepEqual(got, []string{current, next}) {
		t.Errorf("ServiceCredentialList = %v", got)
	}
	if got := (&Config{}).ServiceCredentialList(); got != nil {
		t.Errorf("empty config = %v, want nil", got)
	}
}
