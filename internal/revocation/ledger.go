// Package revocation keeps the blacklist of individually revoked access credentials.
// Entries live until the credential's natural expiry and are removed by Prune, which an
// external scheduler calls.
package revocation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/advancia-platform/credential-lifecycle/internal/revocation/domain"
	"github.com/advancia-platform/credential-lifecycle/internal/revocation/repository"
)

// DefaultCacheSize is the number of blacklisted ids the ledger keeps in process.
const DefaultCacheSize = 10_000

// ErrInvalidEntry is returned by Blacklist when the credential id is empty.
var ErrInvalidEntry = errors.New("revocation: credential id is required")

// Ledger records blacklisted credential ids in a Repository and keeps the ids it blacklisted in an
// LRU cache together with their natural expiry. A blacklist entry never disappears before that
// expiry, so a cached hit is trusted until then and falls back to the store afterwards, where
// another instance may already have pruned it. Negatives always hit the store, so a credential
// blacklisted on another instance is seen on the next lookup.
type Ledger struct {
	repo    repository.Repository
	cache   *lru.Cache[string, time.Time]
	timeout time.Duration
	logger  *slog.Logger
	now     func() time.Time
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithStoreTimeout bounds every repository call. Zero disables the bound.
func WithStoreTimeout(d time.Duration) Option { return func(l *Ledger) { l.timeout = d } }

// WithLogger sets the logger; defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option { return func(l *Ledger) { l.logger = logger } }

// WithClock overrides the time source used for revocation timestamps and cache expiry checks.
func WithClock(now func() time.Time) Option { return func(l *Ledger) { l.now = now } }

// NewLedger returns a Ledger over repo with an LRU of cacheSize entries (DefaultCacheSize if <= 0).
func NewLedger(repo repository.Repository, cacheSize int, opts ...Option) (*Ledger, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, err := lru.New[string, time.Time](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("ledger cache: %w", err)
	}
	l := &Ledger{repo: repo, cache: cache, logger: slog.Default(), now: time.Now}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Blacklist records credentialID as revoked until naturalExpiry. It is idempotent.
func (l *Ledger) Blacklist(ctx context.Context, credentialID, principalID, reason string, naturalExpiry time.Time) error {
	if credentialID == "" {
		return ErrInvalidEntry
	}
	ctx, cancel := l.bound(ctx)
	defer cancel()
	err := l.repo.Insert(ctx, &domain.Entry{
		CredentialID:  credentialID,
		PrincipalID:   principalID,
		Reason:        reason,
		RevokedAt:     l.now().UTC(),
		NaturalExpiry: naturalExpiry.UTC(),
	})
	if err != nil {
		return fmt.Errorf("ledger insert: %w", err)
	}
	l.cache.Add(credentialID, naturalExpiry)
	l.logger.InfoContext(ctx, "credential blacklisted",
		slog.String("credential_id", credentialID),
		slog.String("principal_id", principalID),
		slog.String("reason", reason),
		slog.Time("natural_expiry", naturalExpiry))
	return nil
}

// IsBlacklisted reports whether credentialID is on the ledger. It answers from the cache while
// the cached entry is within its natural expiry and performs at most one store lookup otherwise.
func (l *Ledger) IsBlacklisted(ctx context.Context, credentialID string) (bool, error) {
	if credentialID == "" {
		return false, nil
	}
	if exp, ok := l.cache.Get(credentialID); ok {
		if !exp.Before(l.now()) {
			return true, nil
		}
		// Past natural expiry the store decides; a pruner elsewhere may have removed it.
		l.cache.Remove(credentialID)
	}
	ctx, cancel := l.bound(ctx)
	defer cancel()
	ok, err := l.repo.Exists(ctx, credentialID)
	if err != nil {
		return false, fmt.Errorf("ledger lookup: %w", err)
	}
	return ok, nil
}

// Prune deletes every entry whose natural expiry is before now and drops the matching cache
// entries. It is never required for correctness.
func (l *Ledger) Prune(ctx context.Context, now time.Time) (int64, error) {
	ctx, cancel := l.bound(ctx)
	defer cancel()
	n, err := l.repo.DeleteExpiredBefore(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("ledger prune: %w", err)
	}
	for _, id := range l.cache.Keys() {
		if exp, ok := l.cache.Peek(id); ok && exp.Before(now) {
			l.cache.Remove(id)
		}
	}
	l.logger.InfoContext(ctx, "ledger pruned", slog.Int64("removed", n), slog.Time("before", now))
	return n, nil
}

func (l *Ledger) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if l.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, l.timeout)
}
