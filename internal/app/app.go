// Package app assembles the session manager and its stores from configuration. The server,
// worker and seed binaries share it.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/advancia-platform/credential-lifecycle/internal/audit"
	auditproducer "github.com/advancia-platform/credential-lifecycle/internal/audit/producer"
	auditrepo "github.com/advancia-platform/credential-lifecycle/internal/audit/repository"
	"github.com/advancia-platform/credential-lifecycle/internal/config"
	"github.com/advancia-platform/credential-lifecycle/internal/db"
	healthhandler "github.com/advancia-platform/credential-lifecycle/internal/health/handler"
	"github.com/advancia-platform/credential-lifecycle/internal/policy/engine"
	"github.com/advancia-platform/credential-lifecycle/internal/revocation"
	revrepo "github.com/advancia-platform/credential-lifecycle/internal/revocation/repository"
	"github.com/advancia-platform/credential-lifecycle/internal/security"
	"github.com/advancia-platform/credential-lifecycle/internal/server/interceptors"
	"github.com/advancia-platform/credential-lifecycle/internal/session/repository"
	"github.com/advancia-platform/credential-lifecycle/internal/session/service"
	otelsetup "github.com/advancia-platform/credential-lifecycle/internal/telemetry/otel"
)

// Version is stamped at build time with -ldflags "-X ...app.Version=...".
var Version = "dev"

// App holds the wired components. Close releases them in reverse order.
type App struct {
	Config    *config.Config
	Logger    *slog.Logger
	Pool      *pgxpool.Pool
	Redis     *redis.Client
	Ledger    *revocation.Ledger
	Policy    *engine.OPAEvaluator
	Audit     *audit.Dispatcher
	Telemetry *otelsetup.Providers
	Manager   *service.Manager
	// TrustedCallers holds the service credentials that admit upstream services to CreateSession.
	TrustedCallers *security.ServiceCredentials

	closers []func(context.Context) error
}

// NewLogger returns a JSON logger in production and a text logger otherwise.
func NewLogger(env string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if strings.EqualFold(env, "production") {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	opts.Level = slog.LevelDebug
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

// New opens every store named by cfg and builds the session manager. On error, anything already
// opened is closed.
func New(ctx context.Context, cfg *config.Config, serviceName string, logger *slog.Logger) (_ *App, err error) {
	if logger == nil {
		logger = NewLogger(cfg.Env)
	}
	a := &App{Config: cfg, Logger: logger}
	defer func() {
		if err != nil {
			_ = a.Close(context.WithoutCancel(ctx))
		}
	}()

	tokens, err := security.NewTokenProviderFromConfig(cfg.Signing())
	if err != nil {
		return nil, fmt.Errorf("token provider: %w", err)
	}
	hasher, err := security.NewSecretHasher(cfg.HashAlgorithm, cfg.HashWorkFactor)
	if err != nil {
		return nil, fmt.Errorf("secret hasher: %w", err)
	}
	a.TrustedCallers, err = security.NewServiceCredentials(cfg.ServiceCredentialList()...)
	if err != nil {
		return nil, fmt.Errorf("service credentials: %w", err)
	}

	a.Telemetry, err = otelsetup.NewProviders(ctx, otelsetup.Config{
		Endpoint:       cfg.OTelEndpoint,
		ServiceName:    serviceName,
		ServiceVersion: Version,
		Insecure:       cfg.OTelInsecure,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("telemetry: %w", err)
	}
	a.Telemetry.SetGlobal()
	a.closers = append(a.closers, a.Telemetry.Shutdown)

	a.Pool, err = db.Open(ctx, cfg.DatabaseURL, db.PoolOptions{})
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}
	a.closers = append(a.closers, func(context.Context) error { a.Pool.Close(); return nil })

	var ledgerRepo revrepo.Repository = revrepo.NewPostgresRepository(a.Pool)
	if cfg.RedisAddr != "" {
		a.Redis = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
		a.closers = append(a.closers, func(context.Context) error { return a.Redis.Close() })
		if err := a.Redis.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("redis: %w", err)
		}
		ledgerRepo = revrepo.NewRedisRepository(a.Redis, "")
	}
	a.Ledger, err = revocation.NewLedger(ledgerRepo, cfg.LedgerCacheSize,
		revocation.WithStoreTimeout(cfg.StoreTimeout),
		revocation.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("revocation ledger: %w", err)
	}

	module := ""
	if cfg.SessionPolicyFile != "" {
		b, err := os.ReadFile(cfg.SessionPolicyFile)
		if err != nil {
			return nil, fmt.Errorf("session policy: %w", err)
		}
		module = string(b)
	}
	a.Policy, err = engine.NewOPAEvaluator(ctx, cfg.Limits(), module, logger)
	if err != nil {
		return nil, err
	}

	writers := []audit.Writer{
		auditrepo.NewPostgresRepository(a.Pool),
		otelsetup.NewAuditWriter(a.Telemetry.LoggerProvider),
	}
	if kp := auditproducer.NewKafkaProducer(cfg.AuditKafkaBrokersList(), cfg.AuditKafkaTopic); kp != nil {
		writers = append(writers, kp)
		a.closers = append(a.closers, func(context.Context) error { return kp.Close() })
	}
	a.Audit = audit.NewDispatcher(logger, writers,
		audit.WithIPExtractor(interceptors.ClientIP),
		audit.WithQueueSize(cfg.AuditQueueSize),
		audit.WithWorkers(cfg.AuditWorkers))
	a.closers = append(a.closers, a.Audit.Close)

	a.Manager, err = service.NewManager(
		repository.NewPostgresRepository(a.Pool),
		a.Ledger,
		hasher,
		tokens,
		a.Policy,
		service.Config{
			ActivityExtensionWindow:    cfg.ActivityExtensionWindow,
			ActivityExtensionIncrement: cfg.ActivityExtensionIncrement,
			RetentionWindow:            cfg.RetentionWindow(),
			StoreTimeout:               cfg.StoreTimeout,
		},
		service.WithAuditSink(a.Audit),
		service.WithLogger(logger),
		service.WithTracerProvider(a.Telemetry.TracerProvider),
		service.WithMeterProvider(a.Telemetry.MeterProvider),
	)
	if err != nil {
		return nil, fmt.Errorf("session manager: %w", err)
	}
	return a, nil
}

// HealthServer returns a health service probing the stores and policy engine of a.
func (a *App) HealthServer(services ...string) *healthhandler.Server {
	pingers := map[string]healthhandler.Pinger{}
	if a.Pool != nil {
		pingers["postgres"] = healthhandler.PingFunc(a.Pool.Ping)
	}
	if a.Redis != nil {
		pingers["redis"] = healthhandler.PingFunc(func(ctx context.Context) error {
			return a.Redis.Ping(ctx).Err()
		})
	}
	var policy healthhandler.PolicyChecker
	if a.Policy != nil {
		policy = a.Policy
	}
	return healthhandler.NewServer(a.Logger, policy, pingers, services...)
}

// Close releases everything New opened, last opened first.
func (a *App) Close(ctx context.Context) error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
