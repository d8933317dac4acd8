package agent

import (
	"context"

	"github.com/google/uuid"

	domainagent "github.com/quartermill/reviewdesk/internal/domain/agent"
)

// Repository manages the agent roster.
type Repository interface {
	Create(ctx context.Context, a domainagent.Agent) (domainagent.Agent, error)
	GetByID(ctx context.Context, id uuid.UUID) (domainagent.Agent, error)
	List(ctx context.Context) ([]domainagent.Agent, error)
}
