package product

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domainproduct "github.com/quartermill/reviewdesk/internal/domain/product"
)

// Repository implements port/product.Repository over the products table.
type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) Create(ctx context.Context, p domainproduct.Product) (domainproduct.Product, error) {
	query := `
		INSERT INTO products (id, name, priority, created_on, count, tenant_id, assigned)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id, name, priority, created_on, count, tenant_id, assigned`

	var created domainproduct.Product
	err := r.pool.QueryRow(ctx, query,
		p.ID, p.Name, p.Priority, p.CreatedOn, p.Weight(), p.TenantID, p.Assigned,
	).Scan(
		&created.ID, &created.Name, &created.Priority, &created.CreatedOn,
		&created.Count, &created.TenantID, &created.Assigned,
	)
	if err != nil {
		return domainproduct.Product{}, fmt.Errorf("inserting product: %w", err)
	}
	return created, nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (domainproduct.Product, error) {
	query := `
		SELECT id, name, priority, created_on, count, tenant_id, assigned
		FROM products WHERE id = $1`

	var p domainproduct.Product
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Priority, &p.CreatedOn, &p.Count, &p.TenantID, &p.Assigned,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainproduct.Product{}, fmt.Errorf("product %s not found", id)
		}
		return domainproduct.Product{}, fmt.Errorf("querying product: %w", err)
	}
	return p, nil
}

func (r *Repository) List(ctx context.Context, filters domainproduct.ListFilters) ([]domainproduct.Product, error) {
	query := `
		SELECT id, name, priority, created_on, count, tenant_id, assigned
		FROM products WHERE 1=1`

	args := []interface{}{}
	argIdx := 1

	if filters.Assigned != nil {
		query += fmt.Sprintf(" AND assigned = $%d", argIdx)
		args = append(args, *filters.Assigned)
		argIdx++
	}
	if filters.Priority != nil {
		query += fmt.Sprintf(" AND priority = $%d", argIdx)
		args = append(args, string(*filters.Priority))
		argIdx++
	}
	if filters.TenantID != nil {
		query += fmt.Sprintf(" AND tenant_id = $%d", argIdx)
		args = append(args, *filters.TenantID)
		argIdx++
	}

	query += " ORDER BY created_on"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	defer rows.Close()

	var products []domainproduct.Product
	for rows.Next() {
		var p domainproduct.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Priority, &p.CreatedOn, &p.Count, &p.TenantID, &p.Assigned); err != nil {
			return nil, fmt.Errorf("scanning product row: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating product rows: %w", err)
	}
	return products, nil
}

func (r *Repository) SetAssigned(ctx context.Context, id uuid.UUID, assigned bool) error {
	tag, err := r.pool.Exec(ctx, `UPDATE products SET assigned = $1 WHERE id = $2`, assigned, id)
	if err != nil {
		return fmt.Errorf("setting product assigned flag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("product %s not found", id)
	}
	return nil
}
