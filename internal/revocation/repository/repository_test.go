package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/advancia-platform/credential-lifecycle/internal/db"
	"github.com/advancia-platform/credential-lifecycle/internal/db/migrate"
	"github.com/advancia-platform/credential-lifecycle/internal/revocation/domain"
)

func runRepositoryContract(t *testing.T, repo Repository) {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)
	// Unique ids keep shared backends isolated between runs.
	early, late := uuid.NewString(), uuid.NewString()

	for _, e := range []*domain.Entry{
		{CredentialID: early, PrincipalID: "p1", Reason: "logout", RevokedAt: now, NaturalExpiry: now.Add(time.Minute)},
		{CredentialID: late, PrincipalID: "p1", Reason: "logout", RevokedAt: now, NaturalExpiry: now.Add(time.Hour)},
	} {
		if err := repo.Insert(ctx, e); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}
	// Idempotent.
	if err := repo.Insert(ctx, &domain.Entry{CredentialID: early, PrincipalID: "p1", RevokedAt: now, NaturalExpiry: now.Add(time.Minute)}); err != nil {
		t.Fatalf("second Insert: %v", err)
	}

	for _, id := range []string{early, late} {
		ok, err := repo.Exists(ctx, id)
		if err != nil || !ok {
			t.Fatalf("Exists(%s): ok=%v err=%v", id, ok, err)
		}
	}
	if ok, err := repo.Exists(ctx, uuid.NewString()); err != nil || ok {
		t.Fatalf("Exists(unknown): ok=%v err=%v", ok, err)
	}

	n, err := repo.DeleteExpiredBefore(ctx, now.Add(30*time.Minute))
	if err != nil {
		t.Fatalf("DeleteExpiredBefore: %v", err)
	}
	if n < 1 {
		t.Errorf("DeleteExpiredBefore: want at least 1 removed, got %d", n)
	}
	if ok, _ := repo.Exists(ctx, early); ok {
		t.Error("entry past natural expiry survived pruning")
	}
	if ok, _ := repo.Exists(ctx, late); !ok {
		t.Error("entry before natural expiry was pruned")
	}
	if _, err := repo.DeleteExpiredBefore(ctx, now.Add(2*time.Hour)); err != nil {
		t.Fatalf("DeleteExpiredBefore: %v", err)
	}
}

func TestMemoryRepository_Contract(t *testing.T) {
	repo := NewMemoryRepository()
	runRepositoryContract(t, repo)
	if repo.Len() != 0 {
		t.Errorf("Len after full prune: %d", repo.Len())
	}
}

// Integration tests are enabled when DATABASE_URL / REDIS_ADDR are set.

func TestPostgresRepository_Contract(t *testing.T) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL is not set; skipping Postgres integration test")
	}
	if err := migrate.Run(dsn, "up"); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	pool, err := db.Open(context.Background(), dsn, db.PoolOptions{})
	if err != nil {
		t.Fatalf("db.Open: %v", err)
	}
	defer pool.Close()
	runRepositoryContract(t, NewPostgresRepository(pool))
}

func TestRedisRepository_Contract(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR is not set; skipping Redis integration test")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()
	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	prefix := "ledger-test:" + uuid.NewString() + ":"
	repo := NewRedisRepository(client, prefix)
	t.Cleanup(func() {
		keys, _ := client.Keys(context.Background(), prefix+"*").Result()
		if len(keys) > 0 {
			client.Del(context.Background(), keys...)
		}
	})
	runRepositoryContract(t, repo)

	// The TTL safety net is set on every entry.
	id := uuid.NewString()
	if err := repo.Insert(ctx, &domain.Entry{CredentialID: id, RevokedAt: time.Now(), NaturalExpiry: time.Now().Add(time.Minute)}); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	ttl, err := client.TTL(ctx, prefix+"revoked:"+id).Result()
	if err != nil {
		t.Fatalf("TTL: %v", err)
	}
	if ttl <= 0 || ttl > time.Minute+RedisRetentionGrace {
		t.Errorf("unexpected TTL %v", ttl)
	}
}
