package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// DefaultProbeTimeout bounds one readiness pass.
const DefaultProbeTimeout = 2 * time.Second

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// PingFunc adapts a function to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) PingContext(ctx context.Context) error { return f(ctx) }

// PolicyChecker reports whether the policy engine can evaluate decisions.
type PolicyChecker interface {
	HealthCheck(ctx context.Context) error
}

// Server is the standard gRPC health service, with serving status derived from readiness probes
// against the session store, the revocation ledger and the policy engine.
type Server struct {
	hs       *health.Server
	pingers  map[string]Pinger
	policy   PolicyChecker
	services []string
	timeout  time.Duration
	logger   *slog.Logger
}

// NewServer returns a health server. pingers maps a probe name (e.g. "postgres") to its Pinger;
// nil entries and a nil policy are skipped. services are the service names whose status follows
// readiness in addition to the overall "" entry.
func NewServer(logger *slog.Logger, policy PolicyChecker, pingers map[string]Pinger, services ...string) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	p := make(map[string]Pinger, len(pingers))
	for name, pinger := range pingers {
		if pinger != nil {
			p[name] = pinger
		}
	}
	return &Server{
		hs:       health.NewServer(),
		pingers:  p,
		policy:   policy,
		services: services,
		timeout:  DefaultProbeTimeout,
		logger:   logger,
	}
}

// Register registers grpc.health.v1.Health on r.
func (s *Server) Register(r grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(r, s.hs)
}

// Check runs every probe once and returns their failures joined.
func (s *Server) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	var errs []error
	for _, name := range slices.Sorted(maps.Keys(s.pingers)) {
		if err := s.pingers[name].PingContext(ctx); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}
	if s.policy != nil {
		if err := s.policy.HealthCheck(ctx); err != nil {
			errs = append(errs, fmt.Errorf("policy: %w", err))
		}
	}
	return errors.Join(errs...)
}

// Refresh runs the probes and publishes the resulting serving status.
func (s *Server) Refresh(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	st := healthpb.HealthCheckResponse_SERVING
	if err := s.Check(ctx); err != nil {
		st = healthpb.HealthCheckResponse_NOT_SERVING
		s.logger.WarnContext(ctx, "readiness check failed", slog.Any("error", err))
	}
	s.hs.SetServingStatus("", st)
	for _, svc := range s.services {
		s.hs.SetServingStatus(svc, st)
	}
	return st
}

// Run refreshes the serving status every interval until ctx is done, then marks everything
// NOT_SERVING.
func (s *Server) Run(ctx context.Context, interval time.Duration) {
	s.Refresh(ctx)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.Shutdown()
			return
		case <-ticker.C:
			s.Refresh(ctx)
		}
	}
}

// Shutdown sets every service NOT_SERVING and ignores later updates. Call before GracefulStop.
func (s *Server) Shutdown() {
	s.hs.Shutdown()
}
