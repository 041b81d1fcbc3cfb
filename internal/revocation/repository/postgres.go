package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/advancia-platform/credential-lifecycle/internal/revocation/domain"
)

// PostgresRepository implements Repository on the revoked_credentials table.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository returns a revocation repository backed by pool.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

func (r *PostgresRepository) Insert(ctx context.Context, e *domain.Entry) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO revoked_credentials (credential_id, principal_id, reason, revoked_at, natural_expiry)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (credential_id) DO NOTHING
	`, e.CredentialID, e.PrincipalID, e.Reason, e.RevokedAt, e.NaturalExpiry)
	return err
}

func (r *PostgresRepository) Exists(ctx context.Context, credentialID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM revoked_credentials WHERE credential_id = $1)`,
		credentialID,
	).Scan(&exists)
	return exists, err
}

func (r *PostgresRepository) DeleteExpiredBefore(ctx context.Context, t time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM revoked_credentials WHERE natural_expiry < $1`, t)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
