package product

import (
	"context"

	"github.com/google/uuid"

	domainproduct "github.com/quartermill/reviewdesk/internal/domain/product"
)

// Repository is the product catalog. The engine mutates it only to flip the
// assigned flag; rows are created by import collaborators.
type Repository interface {
	Create(ctx context.Context, p domainproduct.Product) (domainproduct.Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (domainproduct.Product, error)
	List(ctx context.Context, filters domainproduct.ListFilters) ([]domainproduct.Product, error)
	SetAssigned(ctx context.Context, id uuid.UUID, assigned bool) error
}
