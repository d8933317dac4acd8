package product

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/google/uuid"

	"github.com/quartermill/reviewdesk/internal/domain/event"
	domainproduct "github.com/quartermill/reviewdesk/internal/domain/product"
	portbus "github.com/quartermill/reviewdesk/internal/port/eventbus"
	portproduct "github.com/quartermill/reviewdesk/internal/port/product"
)

// Service manages catalog entries. Import is the collaborator surface that
// feeds the engine's candidate pool; the engine itself never creates products.
type Service struct {
	repo portproduct.Repository
	bus  portbus.EventBus
}

func NewService(repo portproduct.Repository, bus portbus.EventBus) *Service {
	return &Service{repo: repo, bus: bus}
}

func (s *Service) Create(ctx context.Context, name string, priority domainproduct.Priority, count int, tenantID string) (domainproduct.Product, error) {
	created, err := s.repo.Create(ctx, domainproduct.New(name, priority, count, tenantID))
	if err != nil {
		return domainproduct.Product{}, fmt.Errorf("create product: %w", err)
	}

	if err := s.bus.Publish(ctx, event.New(event.TypeProductCreated, created.ID)); err != nil {
		slog.ErrorContext(ctx, "failed to publish ProductCreated event", "product_id", created.ID, "error", err)
	}
	return created, nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (domainproduct.Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domainproduct.Product{}, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

func (s *Service) List(ctx context.Context, filters domainproduct.ListFilters) ([]domainproduct.Product, error) {
	products, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// ImportCSV reads product rows from r and creates one catalog entry per row.
// Expected header: name,priority,count,tenant. A missing or non-positive
// count defaults to 1. Returns the number of products created.
func (s *Service) ImportCSV(ctx context.Context, r io.Reader) (int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read csv header: %w", err)
	}
	col := map[string]int{}
	for i, name := range header {
		col[name] = i
	}
	for _, required := range []string{"name", "priority"} {
		if _, ok := col[required]; !ok {
			return 0, fmt.Errorf("csv header missing %q column", required)
		}
	}

	created := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return created, fmt.Errorf("read csv row: %w", err)
		}

		// FieldsPerRecord is disabled above, so a ragged row can be shorter
		// than the header; required fields must be bounds-checked.
		nameIdx, prioIdx := col["name"], col["priority"]
		if nameIdx >= len(row) || prioIdx >= len(row) {
			return created, fmt.Errorf("row %d: missing required fields", created+1)
		}

		count := 1
		if i, ok := col["count"]; ok && i < len(row) && row[i] != "" {
			n, err := strconv.Atoi(row[i])
			if err != nil {
				return created, fmt.Errorf("row %d: invalid count %q", created+1, row[i])
			}
			count = n
		}
		tenant := ""
		if i, ok := col["tenant"]; ok && i < len(row) {
			tenant = row[i]
		}

		if _, err := s.Create(ctx, row[nameIdx], domainproduct.Priority(row[prioIdx]), count, tenant); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}
