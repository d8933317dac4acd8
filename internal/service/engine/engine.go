package engine

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"log/slog"
	"time"

	"github.com/google/uuid"

	domainassignment "github.com/quartermill/reviewdesk/internal/domain/assignment"
	"github.com/quartermill/reviewdesk/internal/domain/event"
	domainproduct "github.com/quartermill/reviewdesk/internal/domain/product"
	portassignment "github.com/quartermill/reviewdesk/internal/port/assignment"
	portbus "github.com/quartermill/reviewdesk/internal/port/eventbus"
	portlocker "github.com/quartermill/reviewdesk/internal/port/locker"
	portproduct "github.com/quartermill/reviewdesk/internal/port/product"
	portselector "github.com/quartermill/reviewdesk/internal/port/selector"
	portworkload "github.com/quartermill/reviewdesk/internal/port/workload"
)

// Service is the assignment engine. Every operation — single-record and
// batch — runs under one exclusive lock over the ledger+catalog pair, because
// Request must read the entire candidate set and the agent's workload before
// committing a choice. Serialisation is per backing store, not per agent.
type Service struct {
	ledger   portassignment.Repository
	catalog  portproduct.Repository
	selector portselector.Selector
	workload portworkload.Calculator
	bus      portbus.EventBus
	locker   portlocker.Locker
	cfg      Config
}

func NewService(
	ledger portassignment.Repository,
	catalog portproduct.Repository,
	selector portselector.Selector,
	workload portworkload.Calculator,
	bus portbus.EventBus,
	locker portlocker.Locker,
	cfg Config,
) *Service {
	return &Service{
		ledger:   ledger,
		catalog:  catalog,
		selector: selector,
		workload: workload,
		bus:      bus,
		locker:   locker,
		cfg:      cfg,
	}
}

// StoreLockKey serialises every engine operation and reporting read for one
// backing store. One key for the whole ledger+catalog pair — see Service doc.
var StoreLockKey = storeKey("reviewdesk/store")

func storeKey(name string) int64 {
	h := fnv.New64a()
	h.Write([]byte(name))
	return int64(h.Sum64())
}

// Request assigns the most urgent unassigned product to the agent.
// The capacity precondition is checked before any selection happens; an agent
// at or above capacity is rejected without reading the candidate pool.
func (s *Service) Request(ctx context.Context, agentID uuid.UUID) (domainassignment.Assignment, error) {
	var created domainassignment.Assignment

	err := s.locker.WithLock(ctx, StoreLockKey, func(ctx context.Context) error {
		load, err := s.workload.Of(ctx, agentID)
		if err != nil {
			return fmt.Errorf("compute workload: %w", err)
		}
		if load >= s.cfg.Capacity {
			return ErrCapacityExceeded
		}

		unassigned := false
		candidates, err := s.catalog.List(ctx, domainproduct.ListFilters{Assigned: &unassigned})
		if err != nil {
			return fmt.Errorf("list candidates: %w", err)
		}
		picked := s.selector.Next(candidates, time.Now().UTC())
		if picked == nil {
			return ErrNoAvailableWork
		}

		a, err := s.ledger.Create(ctx, domainassignment.New(agentID, picked.ID))
		if err != nil {
			return fmt.Errorf("create assignment: %w", err)
		}
		if err := s.catalog.SetAssigned(ctx, picked.ID, true); err != nil {
			return fmt.Errorf("mark product assigned: %w", err)
		}
		created = a
		return nil
	})
	if err != nil {
		return domainassignment.Assignment{}, err
	}

	s.publish(ctx, event.TypeAssignmentCreated, created.ID)
	return created, nil
}

// Complete closes the agent's active assignment for the product. The product
// stays claimed — completed work never returns to the candidate pool.
func (s *Service) Complete(ctx context.Context, agentID, productID uuid.UUID) error {
	var closed uuid.UUID

	err := s.locker.WithLock(ctx, StoreLockKey, func(ctx context.Context) error {
		a, err := s.ledger.GetActive(ctx, agentID, productID)
		if err != nil {
			if errors.Is(err, domainassignment.ErrNotFound) {
				return ErrAssignmentNotFound
			}
			return fmt.Errorf("find active assignment: %w", err)
		}
		if err := s.ledger.Complete(ctx, a.ID, time.Now().UTC()); err != nil {
			if errors.Is(err, domainassignment.ErrNotFound) {
				return ErrAssignmentNotFound
			}
			return fmt.Errorf("complete assignment: %w", err)
		}
		closed = a.ID
		return nil
	})
	if err != nil {
		return err
	}

	s.publish(ctx, event.TypeAssignmentCompleted, closed)
	return nil
}

// CompleteAllForAgent completes every active assignment of the agent.
// Best-effort: a record closed mid-batch is skipped, not fatal. The whole
// batch runs under one lock acquisition so views never see it half-applied.
// On an infrastructure error mid-batch the returned count still reflects the
// records that were closed before the failure.
func (s *Service) CompleteAllForAgent(ctx context.Context, agentID uuid.UUID) (int, error) {
	var closed []uuid.UUID

	err := s.locker.WithLock(ctx, StoreLockKey, func(ctx context.Context) error {
		active, err := s.ledger.ListActiveByAgent(ctx, agentID)
		if err != nil {
			return fmt.Errorf("list active assignments: %w", err)
		}
		now := time.Now().UTC()
		for _, a := range active {
			if err := s.ledger.Complete(ctx, a.ID, now); err != nil {
				if errors.Is(err, domainassignment.ErrNotFound) {
					continue // already closed — skip, don't abort the batch
				}
				return fmt.Errorf("complete assignment %s: %w", a.ID, err)
			}
			closed = append(closed, a.ID)
		}
		return nil
	})

	for _, id := range closed {
		s.publish(ctx, event.TypeAssignmentCompleted, id)
	}
	return len(closed), err
}

// Unassign closes the agent's active assignment for the product and returns
// the product to the candidate pool.
func (s *Service) Unassign(ctx context.Context, productID, agentID uuid.UUID, actor string) error {
	var closed uuid.UUID

	err := s.locker.WithLock(ctx, StoreLockKey, func(ctx context.Context) error {
		a, err := s.ledger.GetActive(ctx, agentID, productID)
		if err != nil {
			if errors.Is(err, domainassignment.ErrNotFound) {
				return ErrAssignmentNotFound
			}
			return fmt.Errorf("find active assignment: %w", err)
		}
		if err := s.ledger.Unassign(ctx, a.ID, time.Now().UTC(), actor); err != nil {
			if errors.Is(err, domainassignment.ErrNotFound) {
				return ErrAssignmentNotFound
			}
			return fmt.Errorf("unassign assignment: %w", err)
		}
		if err := s.catalog.SetAssigned(ctx, productID, false); err != nil {
			return fmt.Errorf("return product to pool: %w", err)
		}
		closed = a.ID
		return nil
	})
	if err != nil {
		return err
	}

	s.publish(ctx, event.TypeAssignmentUnassigned, closed)
	return nil
}

// UnassignAllForAgent releases every active assignment of the agent back to
// the pool. Same best-effort batch policy as CompleteAllForAgent.
func (s *Service) UnassignAllForAgent(ctx context.Context, agentID uuid.UUID, actor string) (int, error) {
	var closed []uuid.UUID

	err := s.locker.WithLock(ctx, StoreLockKey, func(ctx context.Context) error {
		active, err := s.ledger.ListActiveByAgent(ctx, agentID)
		if err != nil {
			return fmt.Errorf("list active assignments: %w", err)
		}
		ids, batchErr := s.unassignBatch(ctx, active, actor)
		closed = ids
		return batchErr
	})

	for _, id := range closed {
		s.publish(ctx, event.TypeAssignmentUnassigned, id)
	}
	return len(closed), err
}

// UnassignAll releases every active assignment system-wide.
func (s *Service) UnassignAll(ctx context.Context, actor string) (int, error) {
	var closed []uuid.UUID

	err := s.locker.WithLock(ctx, StoreLockKey, func(ctx context.Context) error {
		active, err := s.ledger.ListActive(ctx)
		if err != nil {
			return fmt.Errorf("list active assignments: %w", err)
		}
		ids, batchErr := s.unassignBatch(ctx, active, actor)
		closed = ids
		return batchErr
	})

	for _, id := range closed {
		s.publish(ctx, event.TypeAssignmentUnassigned, id)
	}
	return len(closed), err
}

// unassignBatch must run inside the store lock. On an infrastructure error
// it returns the records closed before the failure so callers can still
// report and publish the work that did happen.
func (s *Service) unassignBatch(ctx context.Context, active []domainassignment.Assignment, actor string) ([]uuid.UUID, error) {
	now := time.Now().UTC()
	var closed []uuid.UUID
	for _, a := range active {
		if err := s.ledger.Unassign(ctx, a.ID, now, actor); err != nil {
			if errors.Is(err, domainassignment.ErrNotFound) {
				continue // already closed — skip, don't abort the batch
			}
			return closed, fmt.Errorf("unassign assignment %s: %w", a.ID, err)
		}
		closed = append(closed, a.ID)
		if err := s.catalog.SetAssigned(ctx, a.ProductID, false); err != nil {
			return closed, fmt.Errorf("return product %s to pool: %w", a.ProductID, err)
		}
	}
	return closed, nil
}

func (s *Service) publish(ctx context.Context, t event.Type, id uuid.UUID) {
	if err := s.bus.Publish(ctx, event.New(t, id)); err != nil {
		slog.ErrorContext(ctx, "failed to publish event", "type", t, "entity_id", id, "error", err)
	}
}
