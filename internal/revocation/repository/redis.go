package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/advancia-platform/credential-lifecycle/internal/revocation/domain"
)

// DefaultRedisKeyPrefix namespaces ledger keys.
const DefaultRedisKeyPrefix = "ledger:"

// RedisRetentionGrace is how long past natural expiry Redis keeps an entry before its own TTL
// drops it. Prune normally removes entries first; the TTL only bounds memory if it never runs.
const RedisRetentionGrace = 24 * time.Hour

// RedisRepository stores each entry under <prefix>revoked:<id> and indexes ids by natural expiry
// in the sorted set <prefix>expiry so that DeleteExpiredBefore is a range scan.
type RedisRepository struct {
	client    redis.UniversalClient
	keyPrefix string
}

// NewRedisRepository returns a Redis-backed revocation repository. An empty prefix selects
// DefaultRedisKeyPrefix.
func NewRedisRepository(client redis.UniversalClient, keyPrefix string) *RedisRepository {
	if keyPrefix == "" {
		keyPrefix = DefaultRedisKeyPrefix
	}
	return &RedisRepository{client: client, keyPrefix: keyPrefix}
}

func (r *RedisRepository) revokedKey(id string) string { return r.keyPrefix + "revoked:" + id }
func (r *RedisRepository) expiryKey() string           { return r.keyPrefix + "expiry" }

type redisEntry struct {
	PrincipalID   string    `json:"principal_id"`
	Reason        string    `json:"reason"`
	RevokedAt     time.Time `json:"revoked_at"`
	NaturalExpiry time.Time `json:"natural_expiry"`
}

func (r *RedisRepository) Insert(ctx context.Context, e *domain.Entry) error {
	payload, err := json.Marshal(redisEntry{
		PrincipalID:   e.PrincipalID,
		Reason:        e.Reason,
		RevokedAt:     e.RevokedAt,
		NaturalExpiry: e.NaturalExpiry,
	})
	if err != nil {
		return err
	}
	ttl := time.Until(e.NaturalExpiry) + RedisRetentionGrace
	if ttl < time.Second {
		ttl = time.Second
	}
	_, err = r.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.SetNX(ctx, r.revokedKey(e.CredentialID), payload, ttl)
		p.ZAddNX(ctx, r.expiryKey(), redis.Z{
			Score:  float64(e.NaturalExpiry.UnixMilli()),
			Member: e.CredentialID,
		})
		return nil
	})
	return err
}

func (r *RedisRepository) Exists(ctx context.Context, credentialID string) (bool, error) {
	n, err := r.client.Exists(ctx, r.revokedKey(credentialID)).Result()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r *RedisRepository) DeleteExpiredBefore(ctx context.Context, t time.Time) (int64, error) {
	upper := "(" + strconv.FormatInt(t.UnixMilli(), 10)
	ids, err := r.client.ZRangeByScore(ctx, r.expiryKey(), &redis.ZRangeBy{Min: "-inf", Max: upper}).Result()
	if err != nil {
		return 0, fmt.Errorf("ledger expiry scan: %w", err)
	}
	if len(ids) == 0 {
		return 0, nil
	}
	keys := make([]string, len(ids))
	members := make([]interface{}, len(ids))
	for i, id := range ids {
		keys[i] = r.revokedKey(id)
		members[i] = id
	}
	var removed *redis.IntCmd
	_, err = r.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Del(ctx, keys...)
		removed = p.ZRem(ctx, r.expiryKey(), members...)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return removed.Val(), nil
}
