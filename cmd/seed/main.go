// seed mints development sessions so the API can be exercised locally:
//
//	go run ./cmd/seed -principal dev-user-001 [-elevated] [-persistent]
//
// It prints the refresh and access credentials once; they are never retrievable again.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/advancia-platform/credential-lifecycle/internal/app"
	"github.com/advancia-platform/credential-lifecycle/internal/config"
	"github.com/advancia-platform/credential-lifecycle/internal/session/domain"
	"github.com/advancia-platform/credential-lifecycle/internal/session/service"
)

const devPrincipalID = "dev-user-001"

func main() {
	principal := flag.String("principal", devPrincipalID, "Principal id to open a session for")
	elevated := flag.Bool("elevated", false, "Open the session as an elevated principal")
	persistent := flag.Bool("persistent", false, "Use the persistent refresh lifetime")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	if cfg.Env == "production" {
		fmt.Fprintln(os.Stderr, "seed: refusing to run with APP_ENV=production")
		os.Exit(1)
	}
	logger := app.NewLogger(cfg.Env)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	a, err := app.New(ctx, cfg, "credential-lifecycle-seed", logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "seed:", err)
		os.Exit(1)
	}

	class := domain.ClassStandard
	if *elevated {
		class = domain.ClassElevated
	}
	creds, err := a.Manager.CreateSession(ctx, service.CreateRequest{
		PrincipalID: *principal,
		Class:       class,
		Persistent:  *persistent,
		Device:      service.DeviceContext{UserAgent: "seed", IPAddress: "127.0.0.1"},
	})
	_ = a.Close(context.Background())
	if err != nil {
		logger.Error("create session", slog.Any("error", err))
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(map[string]any{
		"principal_id":       *principal,
		"session_id":         creds.SessionID,
		"refresh_credential": creds.RefreshCredential,
		"access_credential":  creds.AccessCredential,
		"access_expires_at":  creds.AccessExpiresAt,
		"expires_at":         creds.ExpiresAt,
	})
}
