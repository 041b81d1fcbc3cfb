package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/advancia-platform/credential-lifecycle/internal/app"
	"github.com/advancia-platform/credential-lifecycle/internal/config"
	"github.com/advancia-platform/credential-lifecycle/internal/server"
	sessionhandler "github.com/advancia-platform/credential-lifecycle/internal/session/handler"
)

const (
	healthInterval  = 10 * time.Second
	shutdownTimeout = 15 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", slog.Any("error", err))
		os.Exit(1)
	}
	logger := app.NewLogger(cfg.Env)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, "credential-lifecycle", logger)
	if err != nil {
		logger.Error("startup failed", slog.Any("error", err))
		os.Exit(1)
	}

	if a.TrustedCallers.Len() == 0 {
		logger.Warn("SERVICE_CREDENTIALS not set; CreateSession will reject every caller")
	}
	health := a.HealthServer(sessionhandler.ServiceName)
	s := server.NewGRPCServer(server.Deps{
		Sessions:       a.Manager,
		TrustedCallers: a.TrustedCallers,
		Health:         health,
		Logger:         logger,
		TracerProvider: a.Telemetry.TracerProvider,
		MeterProvider:  a.Telemetry.MeterProvider,
		SkipLogMethods: map[string]bool{"/grpc.health.v1.Health/Check": true},
	})

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		logger.Error("listen", slog.String("addr", cfg.GRPCAddr), slog.Any("error", err))
		_ = a.Close(context.Background())
		os.Exit(1)
	}

	healthCtx, stopHealth := context.WithCancel(ctx)
	go health.Run(healthCtx, healthInterval)

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("gRPC server listening", slog.String("addr", cfg.GRPCAddr))
		serveErr <- s.Serve(lis)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down gRPC server")
	case err := <-serveErr:
		logger.Error("serve", slog.Any("error", err))
	}

	stopHealth()
	health.Shutdown()
	stopped := make(chan struct{})
	go func() {
		s.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(shutdownTimeout):
		logger.Warn("graceful stop timed out; forcing")
		s.Stop()
	}

	closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.Close(closeCtx); err != nil {
		logger.Error("shutdown", slog.Any("error", err))
	}
	logger.Info("gRPC server stopped")
}
