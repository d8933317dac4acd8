package assignment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domainassignment "github.com/quartermill/reviewdesk/internal/domain/assignment"
)

const columns = "id, agent_id, product_id, assigned_on, completed_on, unassigned_at, unassigned_by"

// Repository implements port/assignment.Repository over the assignments
// ledger table. Rows are never deleted; Complete and Unassign are CAS updates
// guarded by the active predicate so a closed record is never touched twice.
type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) Create(ctx context.Context, a domainassignment.Assignment) (domainassignment.Assignment, error) {
	query := `
		INSERT INTO assignments (id, agent_id, product_id, assigned_on)
		VALUES ($1,$2,$3,$4)
		RETURNING ` + columns

	created, err := scanOne(r.pool.QueryRow(ctx, query, a.ID, a.AgentID, a.ProductID, a.AssignedOn))
	if err != nil {
		return domainassignment.Assignment{}, fmt.Errorf("inserting assignment: %w", err)
	}
	return created, nil
}

func (r *Repository) GetActive(ctx context.Context, agentID, productID uuid.UUID) (domainassignment.Assignment, error) {
	query := `
		SELECT ` + columns + `
		FROM assignments
		WHERE agent_id = $1 AND product_id = $2
		  AND completed_on IS NULL AND unassigned_at IS NULL`

	a, err := scanOne(r.pool.QueryRow(ctx, query, agentID, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainassignment.Assignment{}, domainassignment.ErrNotFound
		}
		return domainassignment.Assignment{}, fmt.Errorf("querying active assignment: %w", err)
	}
	return a, nil
}

func (r *Repository) ListActive(ctx context.Context) ([]domainassignment.Assignment, error) {
	query := `
		SELECT ` + columns + `
		FROM assignments
		WHERE completed_on IS NULL AND unassigned_at IS NULL
		ORDER BY assigned_on`
	return r.list(ctx, query)
}

func (r *Repository) ListActiveByAgent(ctx context.Context, agentID uuid.UUID) ([]domainassignment.Assignment, error) {
	query := `
		SELECT ` + columns + `
		FROM assignments
		WHERE agent_id = $1 AND completed_on IS NULL AND unassigned_at IS NULL
		ORDER BY assigned_on`
	return r.list(ctx, query, agentID)
}

func (r *Repository) ListCompleted(ctx context.Context) ([]domainassignment.Assignment, error) {
	query := `
		SELECT ` + columns + `
		FROM assignments
		WHERE completed_on IS NOT NULL
		ORDER BY completed_on`
	return r.list(ctx, query)
}

func (r *Repository) ListUnassigned(ctx context.Context) ([]domainassignment.Assignment, error) {
	query := `
		SELECT ` + columns + `
		FROM assignments
		WHERE unassigned_at IS NOT NULL
		ORDER BY unassigned_at DESC`
	return r.list(ctx, query)
}

func (r *Repository) Complete(ctx context.Context, id uuid.UUID, at time.Time) error {
	query := `
		UPDATE assignments SET completed_on = $1
		WHERE id = $2 AND completed_on IS NULL AND unassigned_at IS NULL`

	tag, err := r.pool.Exec(ctx, query, at, id)
	if err != nil {
		return fmt.Errorf("completing assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domainassignment.ErrNotFound
	}
	return nil
}

func (r *Repository) Unassign(ctx context.Context, id uuid.UUID, at time.Time, actor string) error {
	query := `
		UPDATE assignments SET unassigned_at = $1, unassigned_by = $2
		WHERE id = $3 AND completed_on IS NULL AND unassigned_at IS NULL`

	tag, err := r.pool.Exec(ctx, query, at, actor, id)
	if err != nil {
		return fmt.Errorf("unassigning assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domainassignment.ErrNotFound
	}
	return nil
}

func (r *Repository) list(ctx context.Context, query string, args ...interface{}) ([]domainassignment.Assignment, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing assignments: %w", err)
	}
	defer rows.Close()

	var assignments []domainassignment.Assignment
	for rows.Next() {
		a, err := scanOne(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning assignment row: %w", err)
		}
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating assignment rows: %w", err)
	}
	return assignments, nil
}

func scanOne(row pgx.Row) (domainassignment.Assignment, error) {
	var a domainassignment.Assignment
	var unassignedBy *string
	err := row.Scan(&a.ID, &a.AgentID, &a.ProductID, &a.AssignedOn, &a.CompletedOn, &a.UnassignedAt, &unassignedBy)
	if err != nil {
		return domainassignment.Assignment{}, err
	}
	if unassignedBy != nil {
		a.UnassignedBy = *unassignedBy
	}
	return a, nil
}
