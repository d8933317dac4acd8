package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	domainagent "github.com/quartermill/reviewdesk/internal/domain/agent"
	domainassignment "github.com/quartermill/reviewdesk/internal/domain/assignment"
	domainproduct "github.com/quartermill/reviewdesk/internal/domain/product"
)

// Store is an in-memory ledger + catalog + roster backing dev mode (no
// DATABASE_URL) and the engine unit tests. One RWMutex guards all maps; the
// repository views share it so cross-repo reads are consistent. WithLock adds
// the store-wide exclusion the engine requires on top.
type Store struct {
	mu          sync.RWMutex
	products    map[uuid.UUID]domainproduct.Product
	assignments map[uuid.UUID]domainassignment.Assignment
	agents      map[uuid.UUID]domainagent.Agent

	// opMu serialises engine operations. Separate from mu so repository
	// calls made while the operation lock is held do not self-deadlock.
	opMu sync.Mutex
}

func NewStore() *Store {
	return &Store{
		products:    make(map[uuid.UUID]domainproduct.Product),
		assignments: make(map[uuid.UUID]domainassignment.Assignment),
		agents:      make(map[uuid.UUID]domainagent.Agent),
	}
}

// WithLock implements port/locker.Locker. The key is ignored — a single
// process-wide critical section covers the whole store.
func (s *Store) WithLock(ctx context.Context, _ int64, fn func(ctx context.Context) error) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()
	return fn(ctx)
}

// Products returns the catalog view of the store.
func (s *Store) Products() *ProductRepo { return &ProductRepo{s: s} }

// Assignments returns the ledger view of the store.
func (s *Store) Assignments() *AssignmentRepo { return &AssignmentRepo{s: s} }

// Agents returns the roster view of the store.
func (s *Store) Agents() *AgentRepo { return &AgentRepo{s: s} }

// ── catalog ───────────────────────────────────────────────────────────────────

type ProductRepo struct {
	s *Store
}

func (r *ProductRepo) Create(_ context.Context, p domainproduct.Product) (domainproduct.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.products[p.ID] = p
	return p, nil
}

func (r *ProductRepo) GetByID(_ context.Context, id uuid.UUID) (domainproduct.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.products[id]
	if !ok {
		return domainproduct.Product{}, &notFoundError{kind: "product", id: id}
	}
	return p, nil
}

func (r *ProductRepo) List(_ context.Context, filters domainproduct.ListFilters) ([]domainproduct.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []domainproduct.Product
	for _, p := range r.s.products {
		if filters.Assigned != nil && p.Assigned != *filters.Assigned {
			continue
		}
		if filters.Priority != nil && p.Priority != *filters.Priority {
			continue
		}
		if filters.TenantID != nil && p.TenantID != *filters.TenantID {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedOn.Before(out[j].CreatedOn) })
	return out, nil
}

func (r *ProductRepo) SetAssigned(_ context.Context, id uuid.UUID, assigned bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok {
		return &notFoundError{kind: "product", id: id}
	}
	p.Assigned = assigned
	r.s.products[id] = p
	return nil
}

// ── ledger ────────────────────────────────────────────────────────────────────

type AssignmentRepo struct {
	s *Store
}

func (r *AssignmentRepo) Create(_ context.Context, a domainassignment.Assignment) (domainassignment.Assignment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.assignments[a.ID] = a
	return a, nil
}

func (r *AssignmentRepo) GetActive(_ context.Context, agentID, productID uuid.UUID) (domainassignment.Assignment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, a := range r.s.assignments {
		if a.AgentID == agentID && a.ProductID == productID && a.Active() {
			return a, nil
		}
	}
	return domainassignment.Assignment{}, domainassignment.ErrNotFound
}

func (r *AssignmentRepo) ListActive(_ context.Context) ([]domainassignment.Assignment, error) {
	return r.list(func(a domainassignment.Assignment) bool { return a.Active() }), nil
}

func (r *AssignmentRepo) ListActiveByAgent(_ context.Context, agentID uuid.UUID) ([]domainassignment.Assignment, error) {
	return r.list(func(a domainassignment.Assignment) bool {
		return a.AgentID == agentID && a.Active()
	}), nil
}

func (r *AssignmentRepo) ListCompleted(_ context.Context) ([]domainassignment.Assignment, error) {
	return r.list(func(a domainassignment.Assignment) bool { return a.CompletedOn != nil }), nil
}

func (r *AssignmentRepo) ListUnassigned(_ context.Context) ([]domainassignment.Assignment, error) {
	return r.list(func(a domainassignment.Assignment) bool { return a.UnassignedAt != nil }), nil
}

// Complete closes a still-active assignment. Closed records are immutable:
// touching one again returns assignment.ErrNotFound, matching the SQL CAS
// update in the postgres adapter.
func (r *AssignmentRepo) Complete(_ context.Context, id uuid.UUID, at time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.assignments[id]
	if !ok || !a.Active() {
		return domainassignment.ErrNotFound
	}
	a.CompletedOn = &at
	r.s.assignments[id] = a
	return nil
}

func (r *AssignmentRepo) Unassign(_ context.Context, id uuid.UUID, at time.Time, actor string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.assignments[id]
	if !ok || !a.Active() {
		return domainassignment.ErrNotFound
	}
	a.UnassignedAt = &at
	a.UnassignedBy = actor
	r.s.assignments[id] = a
	return nil
}

func (r *AssignmentRepo) list(keep func(domainassignment.Assignment) bool) []domainassignment.Assignment {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []domainassignment.Assignment
	for _, a := range r.s.assignments {
		if keep(a) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AssignedOn.Before(out[j].AssignedOn) })
	return out
}

// ── roster ────────────────────────────────────────────────────────────────────

type AgentRepo struct {
	s *Store
}

func (r *AgentRepo) Create(_ context.Context, a domainagent.Agent) (domainagent.Agent, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.agents[a.ID] = a
	return a, nil
}

func (r *AgentRepo) GetByID(_ context.Context, id uuid.UUID) (domainagent.Agent, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	a, ok := r.s.agents[id]
	if !ok {
		return domainagent.Agent{}, &notFoundError{kind: "agent", id: id}
	}
	return a, nil
}

func (r *AgentRepo) List(_ context.Context) ([]domainagent.Agent, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []domainagent.Agent
	for _, a := range r.s.agents {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

type notFoundError struct {
	kind string
	id   uuid.UUID
}

func (e *notFoundError) Error() string { return e.kind + " " + e.id.String() + " not found" }
