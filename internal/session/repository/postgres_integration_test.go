package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/advancia-platform/credential-lifecycle/internal/db"
	"github.com/advancia-platform/credential-lifecycle/internal/db/migrate"
)

// Integration tests are enabled when DATABASE_URL is set.

func TestPostgresRepository_Contract(t *testing.T) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL is not set; skipping Postgres integration test")
	}
	if err := migrate.Run(dsn, "up"); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	pool, err := db.Open(ctx, dsn, db.PoolOptions{})
	if err != nil {
		t.Fatalf("db.Open: %v", err)
	}
	defer pool.Close()

	prefix := uuid.NewString() + "-"
	t.Cleanup(func() {
		_, _ = pool.Exec(context.Background(), `DELETE FROM sessions WHERE id LIKE $1`, prefix+"%")
	})
	runRepositoryContract(t, NewPostgresRepository(pool), prefix)
}

func TestPostgresRepository_LockPrincipalExcludesOtherInstances(t *testing.T) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL is not set; skipping Postgres integration test")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	poolA, err := db.Open(ctx, dsn, db.PoolOptions{})
	if err != nil {
		t.Fatalf("db.Open: %v", err)
	}
	defer poolA.Close()
	poolB, err := db.Open(ctx, dsn, db.PoolOptions{})
	if err != nil {
		t.Fatalf("db.Open: %v", err)
	}
	defer poolB.Close()

	var a, b PrincipalLocker = NewPostgresRepository(poolA), NewPostgresRepository(poolB)
	principal := "lock-" + uuid.NewString()

	unlock, err := a.LockPrincipal(ctx, principal)
	if err != nil {
		t.Fatalf("LockPrincipal: %v", err)
	}

	waitCtx, waitCancel := context.WithTimeout(ctx, 200*time.Millisecond)
	if _, err := b.LockPrincipal(waitCtx, principal); err == nil {
		t.Fatal("second instance acquired a held principal lock")
	}
	waitCancel()

	other, err := b.LockPrincipal(ctx, "lock-"+uuid.NewString())
	if err != nil {
		t.Fatalf("LockPrincipal on another principal: %v", err)
	}
	other()

	unlock()
	again, err := b.LockPrincipal(ctx, principal)
	if err != nil {
		t.Fatalf("LockPrincipal after unlock: %v", err)
	}
	again()
}
