package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/quartermill/reviewdesk/internal/domain/agent"
	domainproduct "github.com/quartermill/reviewdesk/internal/domain/product"
	portagent "github.com/quartermill/reviewdesk/internal/port/agent"
	portassignment "github.com/quartermill/reviewdesk/internal/port/assignment"
	portlocker "github.com/quartermill/reviewdesk/internal/port/locker"
	portproduct "github.com/quartermill/reviewdesk/internal/port/product"
	portworkload "github.com/quartermill/reviewdesk/internal/port/workload"
	"github.com/quartermill/reviewdesk/internal/service/engine"
)

// CompletedProduct aggregates the completion-closed ledger records of one
// product: total weight delivered, the distinct agents who completed it, and
// the earliest completion time.
type CompletedProduct struct {
	ProductID   uuid.UUID              `json:"product_id"`
	Name        string                 `json:"name"`
	Priority    domainproduct.Priority `json:"priority"`
	TenantID    string                 `json:"tenant_id,omitempty"`
	Count       int                    `json:"count"`
	Agents      []string               `json:"agents"`
	CompletedOn time.Time              `json:"completed_on"`
}

// UnassignedRecord joins an unassignment-closed ledger record to its
// product's static fields.
type UnassignedRecord struct {
	AssignmentID uuid.UUID              `json:"assignment_id"`
	ProductID    uuid.UUID              `json:"product_id"`
	Name         string                 `json:"name"`
	Priority     domainproduct.Priority `json:"priority"`
	TenantID     string                 `json:"tenant_id,omitempty"`
	Count        int                    `json:"count"`
	AgentID      uuid.UUID              `json:"agent_id"`
	AssignedOn   time.Time              `json:"assigned_on"`
	UnassignedAt time.Time              `json:"unassigned_at"`
	UnassignedBy string                 `json:"unassigned_by"`
}

// AgentWorkload is one roster row on the dashboard.
type AgentWorkload struct {
	Agent       agent.Agent `json:"agent"`
	Workload    int         `json:"workload"`
	ActiveCount int         `json:"active_count"`
}

// Service computes the read-only dashboard views. Every view recomputes from
// current ledger+catalog state on each call, under the same store lock the
// engine uses, so a view never observes a half-applied batch.
type Service struct {
	ledger   portassignment.Repository
	catalog  portproduct.Repository
	agents   portagent.Repository
	workload portworkload.Calculator
	locker   portlocker.Locker
}

func NewService(
	ledger portassignment.Repository,
	catalog portproduct.Repository,
	agents portagent.Repository,
	workload portworkload.Calculator,
	locker portlocker.Locker,
) *Service {
	return &Service{ledger: ledger, catalog: catalog, agents: agents, workload: workload, locker: locker}
}

// Completed groups completion-closed assignments by product.
func (s *Service) Completed(ctx context.Context) ([]CompletedProduct, error) {
	var out []CompletedProduct
	err := s.locker.WithLock(ctx, engine.StoreLockKey, func(ctx context.Context) error {
		records, err := s.ledger.ListCompleted(ctx)
		if err != nil {
			return fmt.Errorf("list completed assignments: %w", err)
		}

		byProduct := map[uuid.UUID]*CompletedProduct{}
		agentNames := map[uuid.UUID]map[string]struct{}{}
		for _, rec := range records {
			row, ok := byProduct[rec.ProductID]
			if !ok {
				p, err := s.catalog.GetByID(ctx, rec.ProductID)
				if err != nil {
					return fmt.Errorf("load product %s: %w", rec.ProductID, err)
				}
				row = &CompletedProduct{
					ProductID:   p.ID,
					Name:        p.Name,
					Priority:    p.Priority,
					TenantID:    p.TenantID,
					CompletedOn: *rec.CompletedOn,
				}
				byProduct[rec.ProductID] = row
				agentNames[rec.ProductID] = map[string]struct{}{}
			}

			p, err := s.catalog.GetByID(ctx, rec.ProductID)
			if err != nil {
				return fmt.Errorf("load product %s: %w", rec.ProductID, err)
			}
			row.Count += p.Weight()
			if rec.CompletedOn.Before(row.CompletedOn) {
				row.CompletedOn = *rec.CompletedOn
			}

			a, err := s.agents.GetByID(ctx, rec.AgentID)
			if err != nil {
				return fmt.Errorf("load agent %s: %w", rec.AgentID, err)
			}
			agentNames[rec.ProductID][a.Name] = struct{}{}
		}

		for id, row := range byProduct {
			for name := range agentNames[id] {
				row.Agents = append(row.Agents, name)
			}
			sort.Strings(row.Agents)
			out = append(out, *row)
		}
		sort.Slice(out, func(i, j int) bool { return out[i].CompletedOn.Before(out[j].CompletedOn) })
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Available lists the candidate pool: products with no active assignment.
func (s *Service) Available(ctx context.Context) ([]domainproduct.Product, error) {
	var out []domainproduct.Product
	err := s.locker.WithLock(ctx, engine.StoreLockKey, func(ctx context.Context) error {
		unassigned := false
		products, err := s.catalog.List(ctx, domainproduct.ListFilters{Assigned: &unassigned})
		if err != nil {
			return fmt.Errorf("list available products: %w", err)
		}
		out = products
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// PreviouslyUnassigned lists every unassignment-closed ledger record joined
// to its product, newest unassignment first.
func (s *Service) PreviouslyUnassigned(ctx context.Context) ([]UnassignedRecord, error) {
	var out []UnassignedRecord
	err := s.locker.WithLock(ctx, engine.StoreLockKey, func(ctx context.Context) error {
		records, err := s.ledger.ListUnassigned(ctx)
		if err != nil {
			return fmt.Errorf("list unassigned assignments: %w", err)
		}
		for _, rec := range records {
			p, err := s.catalog.GetByID(ctx, rec.ProductID)
			if err != nil {
				return fmt.Errorf("load product %s: %w", rec.ProductID, err)
			}
			out = append(out, UnassignedRecord{
				AssignmentID: rec.ID,
				ProductID:    p.ID,
				Name:         p.Name,
				Priority:     p.Priority,
				TenantID:     p.TenantID,
				Count:        p.Weight(),
				AgentID:      rec.AgentID,
				AssignedOn:   rec.AssignedOn,
				UnassignedAt: *rec.UnassignedAt,
				UnassignedBy: rec.UnassignedBy,
			})
		}
		sort.Slice(out, func(i, j int) bool { return out[i].UnassignedAt.After(out[j].UnassignedAt) })
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AgentWorkloads returns the roster with each agent's current load.
func (s *Service) AgentWorkloads(ctx context.Context) ([]AgentWorkload, error) {
	var out []AgentWorkload
	err := s.locker.WithLock(ctx, engine.StoreLockKey, func(ctx context.Context) error {
		roster, err := s.agents.List(ctx)
		if err != nil {
			return fmt.Errorf("list agents: %w", err)
		}
		for _, a := range roster {
			load, err := s.workload.Of(ctx, a.ID)
			if err != nil {
				return fmt.Errorf("workload of %s: %w", a.ID, err)
			}
			active, err := s.ledger.ListActiveByAgent(ctx, a.ID)
			if err != nil {
				return fmt.Errorf("active assignments of %s: %w", a.ID, err)
			}
			out = append(out, AgentWorkload{Agent: a, Workload: load, ActiveCount: len(active)})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// WorkloadOf exposes a single agent's recomputed workload under the store lock.
func (s *Service) WorkloadOf(ctx context.Context, agentID uuid.UUID) (int, error) {
	var load int
	err := s.locker.WithLock(ctx, engine.StoreLockKey, func(ctx context.Context) error {
		l, err := s.workload.Of(ctx, agentID)
		if err != nil {
			return err
		}
		load = l
		return nil
	})
	return load, err
}
