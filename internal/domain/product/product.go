package product

import (
	"time"

	"github.com/google/uuid"
)

// Priority determines a product's SLA window. Unrecognized values fall back
// to the P3 window.
type Priority string

const (
	PriorityP1 Priority = "P1"
	PriorityP2 Priority = "P2"
	PriorityP3 Priority = "P3"
)

// Product is one unit of review work held by the catalog. Assigned is true
// while exactly one active assignment references the product.
type Product struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Priority  Priority  `json:"priority"`
	CreatedOn time.Time `json:"created_on"`
	Count     int       `json:"count"`
	TenantID  string    `json:"tenant_id,omitempty"`
	Assigned  bool      `json:"assigned"`
}

func New(name string, priority Priority, count int, tenantID string) Product {
	if count < 1 {
		count = 1
	}
	return Product{
		ID:        uuid.New(),
		Name:      name,
		Priority:  priority,
		CreatedOn: time.Now().UTC(),
		Count:     count,
		TenantID:  tenantID,
	}
}

// Weight is the workload cost of the product. Records imported without an
// explicit count weigh 1.
func (p Product) Weight() int {
	if p.Count < 1 {
		return 1
	}
	return p.Count
}

type ListFilters struct {
	Assigned *bool
	Priority *Priority
	TenantID *string
}
