package assignment

import (
	"context"
	"time"

	"github.com/google/uuid"

	domainassignment "github.com/quartermill/reviewdesk/internal/domain/assignment"
)

// Repository is the assignment ledger: append-mostly, records never deleted.
// Close operations (Complete, Unassign) are CAS updates that only touch a
// still-active record; a record already closed returns assignment.ErrNotFound.
type Repository interface {
	Create(ctx context.Context, a domainassignment.Assignment) (domainassignment.Assignment, error)

	// GetActive returns the single active assignment for (agentID, productID),
	// or assignment.ErrNotFound if none exists.
	GetActive(ctx context.Context, agentID, productID uuid.UUID) (domainassignment.Assignment, error)

	ListActive(ctx context.Context) ([]domainassignment.Assignment, error)
	ListActiveByAgent(ctx context.Context, agentID uuid.UUID) ([]domainassignment.Assignment, error)
	ListCompleted(ctx context.Context) ([]domainassignment.Assignment, error)
	ListUnassigned(ctx context.Context) ([]domainassignment.Assignment, error)

	Complete(ctx context.Context, id uuid.UUID, at time.Time) error
	Unassign(ctx context.Context, id uuid.UUID, at time.Time, actor string) error
}
