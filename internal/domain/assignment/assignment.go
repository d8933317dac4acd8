package assignment

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned by repositories when no active assignment matches,
// including the case where a matching record was already closed.
var ErrNotFound = errors.New("active assignment not found")

// Assignment binds one product to one agent for one work cycle. Completion
// and unassignment are terminal and mutually exclusive; once either timestamp
// is set the record is closed and never mutated again. Records are never
// deleted — closed records remain for reporting.
type Assignment struct {
	ID           uuid.UUID  `json:"id"`
	AgentID      uuid.UUID  `json:"agent_id"`
	ProductID    uuid.UUID  `json:"product_id"`
	AssignedOn   time.Time  `json:"assigned_on"`
	CompletedOn  *time.Time `json:"completed_on,omitempty"`
	UnassignedAt *time.Time `json:"unassigned_at,omitempty"`
	UnassignedBy string     `json:"unassigned_by,omitempty"`
}

func New(agentID, productID uuid.UUID) Assignment {
	return Assignment{
		ID:         uuid.New(),
		AgentID:    agentID,
		ProductID:  productID,
		AssignedOn: time.Now().UTC(),
	}
}

// Active reports whether the assignment is still open.
func (a Assignment) Active() bool {
	return a.CompletedOn == nil && a.UnassignedAt == nil
}
