package workload

import (
	"context"

	"github.com/google/uuid"
)

// Calculator derives an agent's current load from ledger + catalog state.
// Implementations recompute on every call; no cached value is authoritative.
type Calculator interface {
	Of(ctx context.Context, agentID uuid.UUID) (int, error)
}
