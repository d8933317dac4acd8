package workload

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	portassignment "github.com/quartermill/reviewdesk/internal/port/assignment"
	portproduct "github.com/quartermill/reviewdesk/internal/port/product"
	portworkload "github.com/quartermill/reviewdesk/internal/port/workload"
)

var _ portworkload.Calculator = (*Calculator)(nil)

// Calculator recomputes an agent's workload from the ledger and catalog on
// every call. The ledger is the single source of truth — there is no cached
// counter that can drift.
type Calculator struct {
	ledger  portassignment.Repository
	catalog portproduct.Repository
}

func New(ledger portassignment.Repository, catalog portproduct.Repository) *Calculator {
	return &Calculator{ledger: ledger, catalog: catalog}
}

// Of sums the weight of every product referenced by the agent's active
// assignments.
func (c *Calculator) Of(ctx context.Context, agentID uuid.UUID) (int, error) {
	active, err := c.ledger.ListActiveByAgent(ctx, agentID)
	if err != nil {
		return 0, fmt.Errorf("list active assignments: %w", err)
	}

	total := 0
	for _, a := range active {
		p, err := c.catalog.GetByID(ctx, a.ProductID)
		if err != nil {
			return 0, fmt.Errorf("load product %s: %w", a.ProductID, err)
		}
		total += p.Weight()
	}
	return total, nil
}
