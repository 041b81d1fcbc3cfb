// Worker is the retention scheduler: every CLEANUP_INTERVAL it prunes expired revocation ledger
// entries and deletes sessions past the retention window, concurrently.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/advancia-platform/credential-lifecycle/internal/app"
	"github.com/advancia-platform/credential-lifecycle/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", slog.Any("error", err))
		os.Exit(1)
	}
	logger := app.NewLogger(cfg.Env).With(slog.String("component", "worker"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, "credential-lifecycle-worker", logger)
	if err != nil {
		logger.Error("startup failed", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := a.Close(closeCtx); err != nil {
			logger.Error("shutdown", slog.Any("error", err))
		}
	}()

	logger.Info("worker started", slog.Duration("interval", cfg.CleanupInterval))
	ticker := time.NewTicker(cfg.CleanupInterval)
	defer ticker.Stop()
	for {
		runOnce(ctx, a, logger)
		select {
		case <-ctx.Done():
			logger.Info("worker stopped")
			return
		case <-ticker.C:
		}
	}
}

func runOnce(ctx context.Context, a *app.App, logger *slog.Logger) {
	now := time.Now().UTC()
	g, gctx := errgroup.WithContext(ctx)
	var pruned int64
	var deleted int
	g.Go(func() error {
		n, err := a.Ledger.Prune(gctx, now)
		pruned = n
		return err
	})
	g.Go(func() error {
		n, err := a.Manager.CleanupSessions(gctx, now)
		deleted = n
		return err
	})
	if err := g.Wait(); err != nil {
		logger.Error("cleanup failed", slog.Any("error", err),
			slog.Int64("ledger_pruned", pruned), slog.Int("sessions_deleted", deleted))
		return
	}
	logger.Info("cleanup done", slog.Int64("ledger_pruned", pruned), slog.Int("sessions_deleted", deleted))
}
