package agent

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domainagent "github.com/quartermill/reviewdesk/internal/domain/agent"
)

// Repository implements port/agent.Repository over the agents table.
type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) Create(ctx context.Context, a domainagent.Agent) (domainagent.Agent, error) {
	query := `
		INSERT INTO agents (id, name, email, created_at)
		VALUES ($1,$2,$3,$4)
		RETURNING id, name, email, created_at`

	var created domainagent.Agent
	err := r.pool.QueryRow(ctx, query, a.ID, a.Name, a.Email, a.CreatedAt).Scan(
		&created.ID, &created.Name, &created.Email, &created.CreatedAt,
	)
	if err != nil {
		return domainagent.Agent{}, fmt.Errorf("inserting agent: %w", err)
	}
	return created, nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (domainagent.Agent, error) {
	var a domainagent.Agent
	err := r.pool.QueryRow(ctx, `SELECT id, name, email, created_at FROM agents WHERE id = $1`, id).Scan(
		&a.ID, &a.Name, &a.Email, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainagent.Agent{}, fmt.Errorf("agent %s not found", id)
		}
		return domainagent.Agent{}, fmt.Errorf("querying agent: %w", err)
	}
	return a, nil
}

func (r *Repository) List(ctx context.Context) ([]domainagent.Agent, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, email, created_at FROM agents ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("listing agents: %w", err)
	}
	defer rows.Close()

	var agents []domainagent.Agent
	for rows.Next() {
		var a domainagent.Agent
		if err := rows.Scan(&a.ID, &a.Name, &a.Email, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning agent row: %w", err)
		}
		agents = append(agents, a)
	}
	return agents, rows.Err()
}
