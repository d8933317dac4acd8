package product_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quartermill/reviewdesk/internal/adapter/memory"
	domainproduct "github.com/quartermill/reviewdesk/internal/domain/product"
	productsvc "github.com/quartermill/reviewdesk/internal/service/product"
)

func newService(t *testing.T) (*productsvc.Service, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	return productsvc.NewService(store.Products(), memory.NewBus()), store
}

func TestCreate_DefaultsCountToOne(t *testing.T) {
	svc, _ := newService(t)

	created, err := svc.Create(context.Background(), "widget", domainproduct.PriorityP2, 0, "")
	require.NoError(t, err)
	assert.Equal(t, 1, created.Count)
	assert.False(t, created.Assigned)
	assert.False(t, created.CreatedOn.IsZero())
}

func TestImportCSV(t *testing.T) {
	svc, store := newService(t)

	body := strings.Join([]string{
		"name,priority,count,tenant",
		"gizmo,P1,3,acme",
		"doodad,P2,,",
		"gadget,P3,1,globex",
	}, "\n")

	n, err := svc.ImportCSV(context.Background(), strings.NewReader(body))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	products, err := store.Products().List(context.Background(), domainproduct.ListFilters{})
	require.NoError(t, err)
	require.Len(t, products, 3)

	byName := map[string]domainproduct.Product{}
	for _, p := range products {
		byName[p.Name] = p
	}
	assert.Equal(t, 3, byName["gizmo"].Count)
	assert.Equal(t, "acme", byName["gizmo"].TenantID)
	assert.Equal(t, domainproduct.PriorityP1, byName["gizmo"].Priority)
	assert.Equal(t, 1, byName["doodad"].Count, "blank count defaults to 1")
	assert.Equal(t, "globex", byName["gadget"].TenantID)
}

func TestImportCSV_ColumnOrderIsFlexible(t *testing.T) {
	svc, store := newService(t)

	body := "priority,name\nP1,gizmo\n"
	n, err := svc.ImportCSV(context.Background(), strings.NewReader(body))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	products, err := store.Products().List(context.Background(), domainproduct.ListFilters{})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "gizmo", products[0].Name)
	assert.Equal(t, domainproduct.PriorityP1, products[0].Priority)
}

func TestImportCSV_MissingRequiredColumn(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.ImportCSV(context.Background(), strings.NewReader("name,count\ngizmo,2\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "priority")
}

func TestImportCSV_RaggedRowFails(t *testing.T) {
	svc, store := newService(t)

	// A row shorter than the header must produce an error, not a panic.
	body := "name,priority,count,tenant\nlonely\n"
	n, err := svc.ImportCSV(context.Background(), strings.NewReader(body))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required fields")
	assert.Equal(t, 0, n)

	// Rows before the ragged one are kept and counted.
	body = "name,priority\nfirst,P1\nsecond\n"
	n, err = svc.ImportCSV(context.Background(), strings.NewReader(body))
	require.Error(t, err)
	assert.Equal(t, 1, n)

	products, err := store.Products().List(context.Background(), domainproduct.ListFilters{})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "first", products[0].Name)
}

func TestImportCSV_InvalidCountStopsImport(t *testing.T) {
	svc, store := newService(t)

	body := "name,priority,count\nfirst,P1,2\nsecond,P2,lots\n"
	n, err := svc.ImportCSV(context.Background(), strings.NewReader(body))
	require.Error(t, err)
	assert.Equal(t, 1, n)

	products, err := store.Products().List(context.Background(), domainproduct.ListFilters{})
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestList_Filters(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "a", domainproduct.PriorityP1, 1, "acme")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "b", domainproduct.PriorityP2, 1, "acme")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "c", domainproduct.PriorityP1, 1, "globex")
	require.NoError(t, err)

	p1 := domainproduct.PriorityP1
	got, err := svc.List(ctx, domainproduct.ListFilters{Priority: &p1})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	acme := "acme"
	got, err = svc.List(ctx, domainproduct.ListFilters{Priority: &p1, TenantID: &acme})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].Name)
}
