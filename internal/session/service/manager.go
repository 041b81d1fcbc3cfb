// Package service implements the session lifecycle: creation with admission control, refresh
// rotation, access credential validation, activity extension, and revocation.
package service

import (
	"context"
	"errors"
	"hash/fnv"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/advancia-platform/credential-lifecycle/internal/audit"
	auditdomain "github.com/advancia-platform/credential-lifecycle/internal/audit/domain"
	"github.com/advancia-platform/credential-lifecycle/internal/policy/engine"
	"github.com/advancia-platform/credential-lifecycle/internal/security"
	"github.com/advancia-platform/credential-lifecycle/internal/session/domain"
	"github.com/advancia-platform/credential-lifecycle/internal/session/repository"
)

// DefaultStoreTimeout bounds every store and ledger call when Config.StoreTimeout is zero.
const DefaultStoreTimeout = 2 * time.Second

// cleanupBatch is the number of retired sessions deleted per ListRetired round trip.
const cleanupBatch = 500

const admissionStripes = 64

// CredentialLedger is the part of the revocation ledger the manager needs.
type CredentialLedger interface {
	Blacklist(ctx context.Context, credentialID, principalID, reason string, naturalExpiry time.Time) error
	IsBlacklisted(ctx context.Context, credentialID string) (bool, error)
}

// Config holds the manager's timing knobs. Session lifetime and concurrency caps come from the
// policy evaluator.
type Config struct {
	// ActivityExtensionWindow is how close to expiry a session must be before activity extends it.
	ActivityExtensionWindow time.Duration
	// ActivityExtensionIncrement is added to expiresAt on extension.
	ActivityExtensionIncrement time.Duration
	// RetentionWindow is how long revoked or expired sessions are kept before CleanupSessions deletes them.
	RetentionWindow time.Duration
	StoreTimeout    time.Duration
	// SecretBytes is the refresh secret entropy; security.DefaultSecretBytes when zero.
	SecretBytes int
}

// Manager owns every mutation of session state. It is safe for concurrent use.
type Manager struct {
	repo   repository.Repository
	ledger CredentialLedger
	hasher security.SecretHasher
	tokens *security.TokenProvider
	policy engine.Evaluator
	cfg    Config

	audit  audit.Sink
	logger *slog.Logger
	now    func() time.Time
	tracer trace.Tracer
	meter  metric.Meter
	inst   *instruments

	// admission serializes create-time eviction per principal within this process. Cross-process
	// exclusion comes from repository.PrincipalLocker.
	admission [admissionStripes]sync.Mutex
}

// Option configures a Manager.
type Option func(*Manager)

// WithAuditSink sets the audit sink; defaults to audit.Discard.
func WithAuditSink(s audit.Sink) Option { return func(m *Manager) { m.audit = s } }

// WithLogger sets the logger; defaults to slog.Default().
func WithLogger(l *slog.Logger) Option { return func(m *Manager) { m.logger = l } }

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option { return func(m *Manager) { m.now = now } }

// WithTracerProvider overrides the global tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(m *Manager) { m.tracer = tp.Tracer(instrumentationName) }
}

// WithMeterProvider overrides the global meter provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(m *Manager) { m.meter = mp.Meter(instrumentationName) }
}

// NewManager returns a Manager. repo, ledger, hasher, tokens and policy are required.
func NewManager(
	repo repository.Repository,
	ledger CredentialLedger,
	hasher security.SecretHasher,
	tokens *security.TokenProvider,
	policy engine.Evaluator,
	cfg Config,
	opts ...Option,
) (*Manager, error) {
	if repo == nil || ledger == nil || hasher == nil || tokens == nil || policy == nil {
		return nil, errors.New("session manager: missing dependency")
	}
	if cfg.StoreTimeout <= 0 {
		cfg.StoreTimeout = DefaultStoreTimeout
	}
	if cfg.SecretBytes == 0 {
		cfg.SecretBytes = security.DefaultSecretBytes
	}
	if cfg.SecretBytes < security.MinSecretBytes || cfg.ActivityExtensionWindow < 0 ||
		cfg.ActivityExtensionIncrement < 0 || cfg.RetentionWindow < 0 {
		return nil, ErrInvalidParameters
	}
	m := &Manager{
		repo:   repo,
		ledger: ledger,
		hasher: hasher,
		tokens: tokens,
		policy: policy,
		cfg:    cfg,
		audit:  audit.Discard,
		logger: slog.Default(),
		now:    time.Now,
		tracer: otel.Tracer(instrumentationName),
		meter:  otel.Meter(instrumentationName),
	}
	for _, opt := range opts {
		opt(m)
	}
	inst, err := newInstruments(m.meter)
	if err != nil {
		return nil, err
	}
	m.inst = inst
	return m, nil
}

func (m *Manager) clock() time.Time { return m.now().UTC() }

// bound applies the store timeout to ctx.
func (m *Manager) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, m.cfg.StoreTimeout)
}

// lockPrincipal serializes admission for principalID within this process and, when the repository
// implements repository.PrincipalLocker, across every process sharing the store.
func (m *Manager) lockPrincipal(ctx context.Context, principalID string) (func(), error) {
	h := fnv.New32a()
	_, _ = h.Write([]byte(principalID))
	mu := &m.admission[h.Sum32()%admissionStripes]
	mu.Lock()

	locker, ok := m.repo.(repository.PrincipalLocker)
	if !ok {
		return mu.Unlock, nil
	}
	bctx, cancel := m.bound(ctx)
	defer cancel()
	release, err := locker.LockPrincipal(bctx, principalID)
	if err != nil {
		mu.Unlock()
		return nil, storeError("lock principal", err)
	}
	return func() {
		release()
		mu.Unlock()
	}, nil
}

func (m *Manager) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return m.tracer.Start(ctx, "session."+name, trace.WithAttributes(attrs...))
}

// endSpan records err on span unless it is an expected authentication outcome.
func endSpan(span trace.Span, err error) {
	if err != nil && !IsAuthFailure(err) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func (m *Manager) reject(ctx context.Context, reason string) {
	m.inst.rejected.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
}

func (m *Manager) record(ctx context.Context, e auditdomain.Event) {
	if e.Outcome == "" {
		e.Outcome = auditdomain.OutcomeSuccess
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = m.clock()
	}
	m.audit.Record(ctx, e)
}

// getSession loads a session under the store timeout.
func (m *Manager) getSession(ctx context.Context, id string) (*domain.Session, error) {
	bctx, cancel := m.bound(ctx)
	defer cancel()
	s, err := m.repo.GetByID(bctx, id)
	if err != nil {
		return nil, storeError("get session", err)
	}
	return s, nil
}
