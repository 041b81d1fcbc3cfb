// Package config loads and validates app config from env and an optional .env file using Viper.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	policydomain "github.com/advancia-platform/credential-lifecycle/internal/policy/domain"
	"github.com/advancia-platform/credential-lifecycle/internal/security"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	// GRPCAddr is the address the gRPC server listens on (e.g. :8080).
	GRPCAddr string `mapstructure:"GRPC_ADDR"`
	// DatabaseURL is the Postgres DSN for sessions, the revocation ledger and audit events.
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	// RedisAddr, when set, moves the revocation ledger to Redis.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`

	// ServiceCredentials is a comma-separated list of shared credentials upstream identity services
	// present in x-service-credential to call CreateSession. Listing two allows rotation. Empty
	// disables CreateSession over gRPC.
	ServiceCredentials string `mapstructure:"SERVICE_CREDENTIALS"`

	// SigningAlgorithm is RS256, ES256, EdDSA or HS256.
	SigningAlgorithm string `mapstructure:"SIGNING_ALGORITHM"`
	// SigningPrivateKey and SigningPublicKey are inline PEM or file paths; used by asymmetric algorithms.
	SigningPrivateKey string `mapstructure:"SIGNING_PRIVATE_KEY"`
	SigningPublicKey  string `mapstructure:"SIGNING_PUBLIC_KEY"`
	// SigningSecret is the HS256 key (base64 or raw, at least 32 bytes).
	SigningSecret      string `mapstructure:"SIGNING_SECRET"`
	CredentialIssuer   string `mapstructure:"CREDENTIAL_ISSUER"`
	CredentialAudience string `mapstructure:"CREDENTIAL_AUDIENCE"`

	AccessCredentialTTL  time.Duration `mapstructure:"ACCESS_CREDENTIAL_TTL"`
	RefreshTTLDefault    time.Duration `mapstructure:"REFRESH_TTL_DEFAULT"`
	RefreshTTLPersistent time.Duration `mapstructure:"REFRESH_TTL_PERSISTENT"`
	// MaxConcurrentSessions caps standard principals; 0 means unbounded.
	MaxConcurrentSessions         int `mapstructure:"MAX_CONCURRENT_SESSIONS"`
	MaxConcurrentSessionsElevated int `mapstructure:"MAX_CONCURRENT_SESSIONS_ELEVATED"`
	// ActivityExtensionWindow is how close to expiry a session must be before activity extends it.
	ActivityExtensionWindow    time.Duration `mapstructure:"ACTIVITY_EXTENSION_WINDOW"`
	ActivityExtensionIncrement time.Duration `mapstructure:"ACTIVITY_EXTENSION_INCREMENT"`

	// HashAlgorithm is bcrypt (default) or argon2id.
	HashAlgorithm string `mapstructure:"HASH_ALGORITHM"`
	// HashWorkFactor is the bcrypt cost (4-31, default 12) or the argon2id time cost (1-64,
	// default 3). Unset or 0 selects the default of the configured algorithm.
	HashWorkFactor int `mapstructure:"HASH_WORK_FACTOR"`

	RetentionWindowDays int           `mapstructure:"RETENTION_WINDOW_DAYS"`
	StoreTimeout        time.Duration `mapstructure:"STORE_TIMEOUT"`
	// SessionPolicyFile optionally replaces the built-in Rego session policy.
	SessionPolicyFile string `mapstructure:"SESSION_POLICY_FILE"`
	LedgerCacheSize   int    `mapstructure:"LEDGER_CACHE_SIZE"`

	// OTelEndpoint is the OTLP gRPC collector; empty disables export.
	OTelEndpoint string `mapstructure:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTelInsecure bool   `mapstructure:"OTEL_EXPORTER_OTLP_INSECURE"`

	// AuditKafkaBrokers is a comma-separated broker list; when set, audit events are also published to Kafka.
	AuditKafkaBrokers string `mapstructure:"AUDIT_KAFKA_BROKERS"`
	AuditKafkaTopic   string `mapstructure:"AUDIT_KAFKA_TOPIC"`
	// AuditQueueSize bounds events waiting for audit writers; overflow is dropped and logged.
	AuditQueueSize int `mapstructure:"AUDIT_QUEUE_SIZE"`
	AuditWorkers   int `mapstructure:"AUDIT_WORKERS"`

	// Worker-only: how often ledger pruning and session retention run.
	CleanupInterval time.Duration `mapstructure:"CLEANUP_INTERVAL"`

	// Env is the application environment (e.g. "development", "production").
	Env string `mapstructure:"APP_ENV"`
}

// Load reads .env (if present), then builds and validates Config from the environment via Viper.
// Missing .env is ignored (e.g. in CI). Env vars override .env. Returns an error if required fields are invalid.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig() // ignore ErrConfigFileNotFound

	v.AutomaticEnv()

	v.SetDefault("GRPC_ADDR", ":8080")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("SERVICE_CREDENTIALS", "")
	v.SetDefault("SIGNING_ALGORITHM", "RS256")
	v.SetDefault("SIGNING_PRIVATE_KEY", "")
	v.SetDefault("SIGNING_PUBLIC_KEY", "")
	v.SetDefault("SIGNING_SECRET", "")
	v.SetDefault("CREDENTIAL_ISSUER", "credential-lifecycle")
	v.SetDefault("CREDENTIAL_AUDIENCE", "credential-lifecycle-api")
	v.SetDefault("ACCESS_CREDENTIAL_TTL", "15m")
	v.SetDefault("REFRESH_TTL_DEFAULT", "168h")    // 7d
	v.SetDefault("REFRESH_TTL_PERSISTENT", "720h") // 30d
	v.SetDefault("MAX_CONCURRENT_SESSIONS", 0)
	v.SetDefault("MAX_CONCURRENT_SESSIONS_ELEVATED", 5)
	v.SetDefault("ACTIVITY_EXTENSION_WINDOW", "24h")
	v.SetDefault("ACTIVITY_EXTENSION_INCREMENT", "24h")
	v.SetDefault("HASH_ALGORITHM", security.AlgorithmBcrypt)
	v.SetDefault("HASH_WORK_FACTOR", 0) // per-algorithm default, resolved in validate
	v.SetDefault("RETENTION_WINDOW_DAYS", 30)
	v.SetDefault("STORE_TIMEOUT", "2s")
	v.SetDefault("SESSION_POLICY_FILE", "")
	v.SetDefault("LEDGER_CACHE_SIZE", 10000)
	v.SetDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	v.SetDefault("OTEL_EXPORTER_OTLP_INSECURE", false)
	v.SetDefault("AUDIT_KAFKA_BROKERS", "")
	v.SetDefault("AUDIT_KAFKA_TOPIC", "credential-audit")
	v.SetDefault("AUDIT_QUEUE_SIZE", 1024)
	v.SetDefault("AUDIT_WORKERS", 4)
	v.SetDefault("CLEANUP_INTERVAL", "1h")
	v.SetDefault("APP_ENV", "")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.GRPCAddr == "" {
		return errors.New("config: GRPC_ADDR must be set")
	}
	switch strings.ToUpper(c.SigningAlgorithm) {
	case "RS256", "ES256", "EDDSA", "HS256":
	default:
		return errors.New("config: SIGNING_ALGORITHM must be one of RS256, ES256, EdDSA, HS256")
	}
	for _, sc := range c.ServiceCredentialList() {
		if len(sc) < security.MinServiceCredentialLength {
			return fmt.Errorf("config: SERVICE_CREDENTIALS entries must be at least %d characters", security.MinServiceCredentialLength)
		}
	}
	if c.CredentialIssuer == "" || c.CredentialAudience == "" {
		return errors.New("config: CREDENTIAL_ISSUER and CREDENTIAL_AUDIENCE must be set")
	}
	if c.AccessCredentialTTL <= 0 {
		return errors.New("config: ACCESS_CREDENTIAL_TTL must be positive")
	}
	if c.RefreshTTLDefault <= 0 || c.RefreshTTLPersistent <= 0 {
		return errors.New("config: REFRESH_TTL_DEFAULT and REFRESH_TTL_PERSISTENT must be positive")
	}
	if c.AccessCredentialTTL >= c.RefreshTTLDefault {
		return errors.New("config: ACCESS_CREDENTIAL_TTL must be shorter than REFRESH_TTL_DEFAULT")
	}
	if c.ActivityExtensionWindow < 0 || c.ActivityExtensionIncrement < 0 {
		return errors.New("config: ACTIVITY_EXTENSION_WINDOW and ACTIVITY_EXTENSION_INCREMENT must not be negative")
	}
	if c.HashWorkFactor == 0 {
		c.HashWorkFactor = security.DefaultWorkFactor(c.HashAlgorithm)
	}
	switch strings.ToLower(c.HashAlgorithm) {
	case security.AlgorithmBcrypt:
		if c.HashWorkFactor < 4 || c.HashWorkFactor > 31 {
			return errors.New("config: HASH_WORK_FACTOR must be between 4 and 31 for bcrypt")
		}
	case security.AlgorithmArgon2id:
		if c.HashWorkFactor < 1 || c.HashWorkFactor > 64 {
			return errors.New("config: HASH_WORK_FACTOR must be between 1 and 64 for argon2id")
		}
	default:
		return errors.New("config: HASH_ALGORITHM must be bcrypt or argon2id")
	}
	if c.RetentionWindowDays < 0 {
		return errors.New("config: RETENTION_WINDOW_DAYS must not be negative")
	}
	if c.StoreTimeout <= 0 {
		return errors.New("config: STORE_TIMEOUT must be positive")
	}
	if c.LedgerCacheSize < 0 {
		return errors.New("config: LEDGER_CACHE_SIZE must not be negative")
	}
	if c.AuditQueueSize <= 0 || c.AuditWorkers <= 0 {
		return errors.New("config: AUDIT_QUEUE_SIZE and AUDIT_WORKERS must be positive")
	}
	if c.CleanupInterval <= 0 {
		return errors.New("config: CLEANUP_INTERVAL must be positive")
	}
	return nil
}

// RetentionWindow returns RetentionWindowDays as a duration.
func (c *Config) RetentionWindow() time.Duration {
	return time.Duration(c.RetentionWindowDays) * 24 * time.Hour
}

// Limits returns the session policy inputs.
func (c *Config) Limits() policydomain.Limits {
	return policydomain.Limits{
		MaxConcurrentStandard: c.MaxConcurrentSessions,
		MaxConcurrentElevated: c.MaxConcurrentSessionsElevated,
		RefreshTTLDefault:     c.RefreshTTLDefault,
		RefreshTTLPersistent:  c.RefreshTTLPersistent,
	}
}

// Signing returns the access credential signing configuration.
func (c *Config) Signing() security.SigningConfig {
	return security.SigningConfig{
		Algorithm:  c.SigningAlgorithm,
		PrivateKey: c.SigningPrivateKey,
		PublicKey:  c.SigningPublicKey,
		Secret:     c.SigningSecret,
		Issuer:     c.CredentialIssuer,
		Audience:   c.CredentialAudience,
		TTL:        c.AccessCredentialTTL,
	}
}

// AuditKafkaBrokersList returns Kafka broker addresses from the comma-separated config.
// An empty list disables the Kafka audit writer.
func (c *Config) AuditKafkaBrokersList() []string {
	if c == nil {
		return nil
	}
	return splitList(c.AuditKafkaBrokers)
}

// ServiceCredentialList returns the trusted service credentials from the comma-separated config.
func (c *Config) ServiceCredentialList() []string {
	if c == nil {
		return nil
	}
	return splitList(c.ServiceCredentials)
}

func splitList(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
