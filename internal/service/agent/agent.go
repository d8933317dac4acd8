package agent

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	domainagent "github.com/quartermill/reviewdesk/internal/domain/agent"
	"github.com/quartermill/reviewdesk/internal/domain/event"
	portagent "github.com/quartermill/reviewdesk/internal/port/agent"
	portbus "github.com/quartermill/reviewdesk/internal/port/eventbus"
)

// Service manages the agent roster.
type Service struct {
	repo portagent.Repository
	bus  portbus.EventBus
}

func NewService(repo portagent.Repository, bus portbus.EventBus) *Service {
	return &Service{repo: repo, bus: bus}
}

func (s *Service) Register(ctx context.Context, name, email string) (domainagent.Agent, error) {
	created, err := s.repo.Create(ctx, domainagent.New(name, email))
	if err != nil {
		return domainagent.Agent{}, fmt.Errorf("register agent: %w", err)
	}

	if err := s.bus.Publish(ctx, event.New(event.TypeAgentCreated, created.ID)); err != nil {
		slog.ErrorContext(ctx, "failed to publish AgentCreated event", "agent_id", created.ID, "error", err)
	}
	return created, nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (domainagent.Agent, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domainagent.Agent{}, fmt.Errorf("get agent: %w", err)
	}
	return a, nil
}

func (s *Service) List(ctx context.Context) ([]domainagent.Agent, error) {
	agents, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list agents: %w", err)
	}
	return agents, nil
}
