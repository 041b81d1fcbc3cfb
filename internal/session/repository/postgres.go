package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/advancia-platform/credential-lifecycle/internal/session/domain"
)

const uniqueViolation = "23505"

const sessionColumns = `
	id, principal_id, principal_class, refresh_credential_hash, credential_version,
	device_fingerprint, ip_address, user_agent, status, revoke_reason, revoked_at,
	created_at, last_activity_at, expires_at, extend_on_activity`

// PostgresRepository implements Repository on the sessions table.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository returns a session repository that uses the given pool for persistence.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// GetByID returns the session for id, or nil if not found.
// It returns an error only for database failures, not for missing rows.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+sessionColumns+` FROM sessions WHERE id = $1`, id)
	s, err := scanSession(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Create inserts the session. The session must have ID set.
func (r *PostgresRepository) Create(ctx context.Context, s *domain.Session) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO sessions (`+sessionColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`, s.ID, s.PrincipalID, string(s.PrincipalClass), s.RefreshCredentialHash, s.CredentialVersion,
		s.DeviceFingerprint, nullIfEmpty(s.IPAddress), nullIfEmpty(s.UserAgent), string(s.Status),
		nullIfEmpty(s.RevokeReason), s.RevokedAt, s.CreatedAt, s.LastActivityAt, s.ExpiresAt, s.ExtendOnActivity)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrDuplicateID
	}
	return err
}

// SwapCredential is a single conditional UPDATE; zero affected rows means the version moved or
// the session is no longer active.
func (r *PostgresRepository) SwapCredential(ctx context.Context, id string, expectedVersion int64, newHash string, at time.Time) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE sessions
		SET refresh_credential_hash = $3,
		    credential_version = credential_version + 1,
		    last_activity_at = GREATEST(last_activity_at, $4)
		WHERE id = $1 AND credential_version = $2 AND status = 'active'
	`, id, expectedVersion, newHash, at)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// SwapStatus moves status from expected to next in one conditional UPDATE.
func (r *PostgresRepository) SwapStatus(ctx context.Context, id string, expected, next domain.Status, reason string, at time.Time) (bool, error) {
	var revokedAt *time.Time
	if next == domain.StatusRevoked {
		revokedAt = &at
	}
	tag, err := r.pool.Exec(ctx, `
		UPDATE sessions
		SET status = $3,
		    revoke_reason = $4,
		    revoked_at = $5
		WHERE id = $1 AND status = $2
	`, id, string(expected), string(next), nullIfEmpty(reason), revokedAt)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// TouchActivity never rewinds last_activity_at and never touches revoked or expired rows.
func (r *PostgresRepository) TouchActivity(ctx context.Context, id string, at time.Time, expiresAt *time.Time) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE sessions
		SET last_activity_at = GREATEST(last_activity_at, $2),
		    expires_at = GREATEST(expires_at, COALESCE($3, expires_at))
		WHERE id = $1 AND status = 'active' AND expires_at > $2
	`, id, at, expiresAt)
	return err
}

// ListActiveByPrincipal uses the (principal_id, status, last_activity_at) index.
func (r *PostgresRepository) ListActiveByPrincipal(ctx context.Context, principalID string) ([]*domain.Session, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+sessionColumns+`
		FROM sessions
		WHERE principal_id = $1 AND status = 'active'
		ORDER BY last_activity_at ASC, created_at ASC
	`, principalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// ListRetired returns ids of sessions eligible for retention cleanup.
func (r *PostgresRepository) ListRetired(ctx context.Context, cutoff time.Time, limit int) ([]string, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id
		FROM sessions
		WHERE (status = 'revoked' AND revoked_at < $1) OR expires_at < $1
		ORDER BY expires_at ASC
		LIMIT $2
	`, cutoff, limit)
	if err != nil {
		return nil, err
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// Delete removes the session row. Deleting a missing row is not an error.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	return err
}

// admissionLockKey namespaces the advisory lock so it cannot collide with other users of
// pg_advisory_lock on the same database.
const admissionLockKey = `hashtextextended('session-admission:' || $1, 0)`

// unlockTimeout bounds pg_advisory_unlock, which runs after the caller's context may be gone.
const unlockTimeout = 5 * time.Second

// LockPrincipal takes a session-level advisory lock keyed on principalID on a dedicated pooled
// connection. The connection is held until unlock; if the unlock statement fails the connection
// is closed so the server drops the lock with the session.
func (r *PostgresRepository) LockPrincipal(ctx context.Context, principalID string) (func(), error) {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := conn.Exec(ctx, `SELECT pg_advisory_lock(`+admissionLockKey+`)`, principalID); err != nil {
		// A cancelled wait may leave the connection mid-protocol.
		_ = conn.Conn().Close(context.Background())
		conn.Release()
		return nil, err
	}
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), unlockTimeout)
		defer cancel()
		if _, err := conn.Exec(ctx, `SELECT pg_advisory_unlock(`+admissionLockKey+`)`, principalID); err != nil {
			_ = conn.Conn().Close(ctx)
		}
		conn.Release()
	}, nil
}

func scanSession(row pgx.Row) (*domain.Session, error) {
	var (
		s                     domain.Session
		class, status         string
		ip, userAgent, reason *string
	)
	err := row.Scan(
		&s.ID,
		&s.PrincipalID,
		&class,
		&s.RefreshCredentialHash,
		&s.CredentialVersion,
		&s.DeviceFingerprint,
		&ip,
		&userAgent,
		&status,
		&reason,
		&s.RevokedAt,
		&s.CreatedAt,
		&s.LastActivityAt,
		&s.ExpiresAt,
		&s.ExtendOnActivity,
	)
	if err != nil {
		return nil, err
	}
	s.PrincipalClass = domain.PrincipalClass(class)
	s.Status = domain.Status(status)
	s.IPAddress = deref(ip)
	s.UserAgent = deref(userAgent)
	s.RevokeReason = deref(reason)
	return &s, nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
