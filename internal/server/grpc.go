package server

import (
	"log/slog"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"

	sessionv1 "github.com/advancia-platform/credential-lifecycle/api/generated/session/v1"
	healthhandler "github.com/advancia-platform/credential-lifecycle/internal/health/handler"
	"github.com/advancia-platform/credential-lifecycle/internal/server/interceptors"
	sessionhandler "github.com/advancia-platform/credential-lifecycle/internal/session/handler"
)

// Deps holds service dependencies for gRPC handlers.
type Deps struct {
	// Sessions backs SessionService and the auth interceptor. If nil, session RPCs return Unimplemented
	// and every protected call is rejected.
	Sessions sessionhandler.Lifecycle
	// TrustedCallers verifies the service credential required by methods reserved for upstream
	// services (CreateSession). If nil, those methods reject every caller.
	TrustedCallers interceptors.CallerVerifier
	// Health is the readiness-driven health service. If nil, the health service is not registered.
	Health *healthhandler.Server
	// Logger is used by handlers and interceptors. Defaults to slog.Default().
	Logger *slog.Logger
	// TracerProvider and MeterProvider instrument the server. Nil uses the global providers.
	TracerProvider trace.TracerProvider
	MeterProvider  metric.MeterProvider
	// SkipLogMethods are full method names the logging interceptor ignores (e.g. health checks).
	SkipLogMethods map[string]bool
}

// NewGRPCServer builds a gRPC server with telemetry, request logging, trusted-caller checks and
// Bearer authentication, and registers every service.
func NewGRPCServer(deps Deps, opts ...grpc.ServerOption) *grpc.Server {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	var statsOpts []otelgrpc.Option
	if deps.TracerProvider != nil {
		statsOpts = append(statsOpts, otelgrpc.WithTracerProvider(deps.TracerProvider))
	}
	if deps.MeterProvider != nil {
		statsOpts = append(statsOpts, otelgrpc.WithMeterProvider(deps.MeterProvider))
	}

	var validator interceptors.AccessValidator = rejectAll{}
	var toucher interceptors.ActivityToucher
	if deps.Sessions != nil {
		validator = deps.Sessions
		toucher = deps.Sessions
	}

	base := []grpc.ServerOption{
		grpc.StatsHandler(otelgrpc.NewServerHandler(statsOpts...)),
		grpc.ChainUnaryInterceptor(
			interceptors.LoggingUnary(logger, deps.SkipLogMethods),
			interceptors.TrustedCallerUnary(deps.TrustedCallers, TrustedMethods(), logger),
			interceptors.AuthUnary(validator, toucher, bearerExempt(), logger),
		),
	}
	s := grpc.NewServer(append(base, opts...)...)
	RegisterServices(s, deps)
	return s
}

// PublicMethods returns every full method name served without any credential in metadata.
func PublicMethods() map[string]bool {
	m := sessionhandler.PublicMethods()
	m[healthCheckMethod] = true
	m[healthWatchMethod] = true
	m[healthListMethod] = true
	return m
}

// TrustedMethods returns the full method names that require a service credential instead of a
// Bearer access credential.
func TrustedMethods() map[string]bool {
	return sessionhandler.TrustedMethods()
}

// bearerExempt is the set AuthUnary lets through: public methods, and trusted methods, which
// TrustedCallerUnary has already gated.
func bearerExempt() map[string]bool {
	m := PublicMethods()
	for k := range TrustedMethods() {
		m[k] = true
	}
	return m
}

const (
	healthCheckMethod = "/grpc.health.v1.Health/Check"
	healthWatchMethod = "/grpc.health.v1.Health/Watch"
	healthListMethod  = "/grpc.health.v1.Health/List"
)

// RegisterServices registers all gRPC services with the given server.
//
// Service → handler mapping:
//   - credential.session.v1.SessionService → internal/session/handler
//   - grpc.health.v1.Health                → internal/health/handler
func RegisterServices(s grpc.ServiceRegistrar, deps Deps) {
	sessionv1.RegisterSessionServiceServer(s, sessionhandler.NewServer(deps.Sessions, deps.Logger))
	if deps.Health != nil {
		deps.Health.Register(s)
	}
}
