package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/advancia-platform/credential-lifecycle/internal/audit/domain"
)

// PostgresRepository implements Repository on the audit_events table.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository returns an audit repository that uses the given pool for persistence.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Create inserts the event. The event must have ID set.
func (r *PostgresRepository) Create(ctx context.Context, e *domain.Event) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO audit_events (id, principal_id, session_id, action, actor_ip, user_agent, outcome, detail, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, e.ID, e.PrincipalID, e.SessionID, string(e.Action), e.ActorIP, e.UserAgent, string(e.Outcome), e.Detail, e.Timestamp)
	return err
}

// Write lets the repository act as a dispatcher writer.
func (r *PostgresRepository) Write(ctx context.Context, e *domain.Event) error {
	return r.Create(ctx, e)
}

func (r *PostgresRepository) ListByPrincipal(ctx context.Context, principalID string, limit int) ([]*domain.Event, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, principal_id, session_id, action, actor_ip, user_agent, outcome, detail, occurred_at
		FROM audit_events
		WHERE principal_id = $1
		ORDER BY occurred_at DESC
		LIMIT $2
	`, principalID, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (*domain.Event, error) {
		var (
			e               domain.Event
			action, outcome string
		)
		if err := row.Scan(&e.ID, &e.PrincipalID, &e.SessionID, &action, &e.ActorIP, &e.UserAgent, &outcome, &e.Detail, &e.Timestamp); err != nil {
			return nil, err
		}
		e.Action = domain.Action(action)
		e.Outcome = domain.Outcome(outcome)
		return &e, nil
	})
}
