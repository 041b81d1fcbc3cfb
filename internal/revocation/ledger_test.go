package revocation

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/advancia-platform/credential-lifecycle/internal/revocation/repository"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// countingRepo wraps a repository and counts Exists calls.
type countingRepo struct {
	repository.Repository
	exists atomic.Int32
	fail   error
}

func (c *countingRepo) Exists(ctx context.Context, id string) (bool, error) {
	c.exists.Add(1)
	if c.fail != nil {
		return false, c.fail
	}
	return c.Repository.Exists(ctx, id)
}

// slowRepo blocks until the context is done.
type slowRepo struct{ repository.Repository }

func (slowRepo) Exists(ctx context.Context, _ string) (bool, error) {
	<-ctx.Done()
	return false, ctx.Err()
}

func TestLedger_BlacklistThenPrune(t *testing.T) {
	ctx := context.Background()
	l, err := NewLedger(repository.NewMemoryRepository(), 16, WithLogger(discard))
	if err != nil {
		t.Fatalf("NewLedger: %v", err)
	}
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	expiry := now.Add(15 * time.Minute)

	if err := l.Blacklist(ctx, "jti-1", "p1", "logout", expiry); err != nil {
		t.Fatalf("Blacklist: %v", err)
	}
	if err := l.Blacklist(ctx, "jti-1", "p1", "logout", expiry); err != nil {
		t.Fatalf("Blacklist is idempotent: %v", err)
	}
	for _, at := range []time.Time{now, expiry.Add(-time.Second)} {
		if n, err := l.Prune(ctx, at); err != nil || n != 0 {
			t.Fatalf("Prune(%v) before expiry: n=%d err=%v", at, n, err)
		}
		if ok, err := l.IsBlacklisted(ctx, "jti-1"); err != nil || !ok {
			t.Fatalf("IsBlacklisted before natural expiry: ok=%v err=%v", ok, err)
		}
	}
	if n, err := l.Prune(ctx, expiry.Add(time.Second)); err != nil || n != 1 {
		t.Fatalf("Prune past expiry: n=%d err=%v", n, err)
	}
	if ok, err := l.IsBlacklisted(ctx, "jti-1"); err != nil || ok {
		t.Fatalf("IsBlacklisted after prune: ok=%v err=%v", ok, err)
	}
}

func TestLedger_CachesPositivesOnly(t *testing.T) {
	ctx := context.Background()
	repo := &countingRepo{Repository: repository.NewMemoryRepository()}
	l, err := NewLedger(repo, 16, WithLogger(discard))
	if err != nil {
		t.Fatalf("NewLedger: %v", err)
	}
	if err := l.Blacklist(ctx, "jti-1", "p1", "logout", time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("Blacklist: %v", err)
	}
	for i := 0; i < 3; i++ {
		if ok, _ := l.IsBlacklisted(ctx, "jti-1"); !ok {
			t.Fatal("blacklisted id not found")
		}
	}
	if got := repo.exists.Load(); got != 0 {
		t.Errorf("cached positive still hit the store %d times", got)
	}
	for i := 0; i < 3; i++ {
		if ok, _ := l.IsBlacklisted(ctx, "jti-2"); ok {
			t.Fatal("unknown id reported blacklisted")
		}
	}
	if got := repo.exists.Load(); got != 3 {
		t.Errorf("negative lookups: want 3 store calls, got %d", got)
	}
}

func TestLedger_SeesEntriesWrittenElsewhere(t *testing.T) {
	ctx := context.Background()
	shared := repository.NewMemoryRepository()
	a, _ := NewLedger(shared, 16, WithLogger(discard))
	b, _ := NewLedger(shared, 16, WithLogger(discard))
	if ok, _ := b.IsBlacklisted(ctx, "jti-1"); ok {
		t.Fatal("unexpected positive")
	}
	if err := a.Blacklist(ctx, "jti-1", "p1", "logout", time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("Blacklist: %v", err)
	}
	if ok, _ := b.IsBlacklisted(ctx, "jti-1"); !ok {
		t.Fatal("entry written by another ledger instance not visible")
	}
}

func TestLedger_Errors(t *testing.T) {
	ctx := context.Background()
	l, _ := NewLedger(repository.NewMemoryRepository(), 0, WithLogger(discard))
	if err := l.Blacklist(ctx, "", "p1", "x", time.Now()); !errors.Is(err, ErrInvalidEntry) {
		t.Errorf("empty id: want ErrInvalidEntry, got %v", err)
	}
	if ok, err := l.IsBlacklisted(ctx, ""); ok || err != nil {
		t.Errorf("empty id lookup: ok=%v err=%v", ok, err)
	}

	storeErr := errors.New("connection refused")
	failing, _ := NewLedger(&countingRepo{Repository: repository.NewMemoryRepository(), fail: storeErr}, 16, WithLogger(discard))
	if _, err := failing.IsBlacklisted(ctx, "jti"); !errors.Is(err, storeErr) {
		t.Errorf("store failure: want wrapped store error, got %v", err)
	}

	slow, _ := NewLedger(slowRepo{repository.NewMemoryRepository()}, 16, WithLogger(discard), WithStoreTimeout(10*time.Millisecond))
	start := time.Now()
	if _, err := slow.IsBlacklisted(ctx, "jti"); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("slow store: want DeadlineExceeded, got %v", err)
	}
	if time.Since(start) > time.Second {
		t.Error("store timeout was not applied")
	}
}

func TestLedger_PruneEvictsCache(t *testing.T) {
	ctx := context.Background()
	repo := &countingRepo{Repository: repository.NewMemoryRepository()}
	l, _ := NewLedger(repo, 16, WithLogger(discard))
	now := time.Now()
	_ = l.Blacklist(ctx, "old", "p", "x", now.Add(-time.Minute))
	_ = l.Blacklist(ctx, "new", "p", "x", now.Add(time.Hour))
	if _, err := l.Prune(ctx, now); err != nil {
		t.Fatalf("Prune: %v", err)
	}
	if ok, _ := l.IsBlacklisted(ctx, "old"); ok {
		t.Error("pruned entry still cached")
	}
	if ok, _ := l.IsBlacklisted(ctx, "new"); !ok {
		t.Error("live entry lost")
	}
}

func TestLedger_PruneByAnotherInstance(t *testing.T) {
	ctx := context.Background()
	shared := repository.NewMemoryRepository()
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	server, _ := NewLedger(shared, 16, WithLogger(discard), WithClock(clock))
	worker, _ := NewLedger(shared, 16, WithLogger(discard), WithClock(clock))
	expiry := now.Add(15 * time.Minute)

	if err := server.Blacklist(ctx, "jti-1", "p1", "logout", expiry); err != nil {
		t.Fatalf("Blacklist: %v", err)
	}
	if ok, _ := server.IsBlacklisted(ctx, "jti-1"); !ok {
		t.Fatal("blacklisted id not found")
	}

	now = expiry.Add(time.Second)
	if n, err := worker.Prune(ctx, now); err != nil || n != 1 {
		t.Fatalf("worker Prune: n=%d err=%v", n, err)
	}
	if ok, err := server.IsBlacklisted(ctx, "jti-1"); err != nil || ok {
		t.Fatalf("IsBlacklisted after prune elsewhere: ok=%v err=%v", ok, err)
	}
}

func TestLedger_ExpiredCacheEntryFallsBackToStore(t *testing.T) {
	ctx := context.Background()
	repo := &countingRepo{Repository: repository.NewMemoryRepository()}
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	l, _ := NewLedger(repo, 16, WithLogger(discard), WithClock(func() time.Time { return now }))
	expiry := now.Add(time.Minute)
	if err := l.Blacklist(ctx, "jti-1", "p1", "logout", expiry); err != nil {
		t.Fatalf("Blacklist: %v", err)
	}

	if ok, _ := l.IsBlacklisted(ctx, "jti-1"); !ok || repo.exists.Load() != 0 {
		t.Fatalf("live entry: ok=%v store calls=%d, want cached hit", ok, repo.exists.Load())
	}
	now = expiry.Add(time.Second)
	// Not pruned yet: the store still holds the entry.
	if ok, _ := l.IsBlacklisted(ctx, "jti-1"); !ok {
		t.Error("unpruned entry reported clear")
	}
	if got := repo.exists.Load(); got != 1 {
		t.Errorf("store calls = %d, want 1", got)
	}
}
