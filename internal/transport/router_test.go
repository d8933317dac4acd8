package transport_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quartermill/reviewdesk/internal/adapter/memory"
	domainagent "github.com/quartermill/reviewdesk/internal/domain/agent"
	domainassignment "github.com/quartermill/reviewdesk/internal/domain/assignment"
	domainproduct "github.com/quartermill/reviewdesk/internal/domain/product"
	"github.com/quartermill/reviewdesk/internal/service/engine"
	"github.com/quartermill/reviewdesk/internal/transport"

	agentsvc "github.com/quartermill/reviewdesk/internal/service/agent"
	productsvc "github.com/quartermill/reviewdesk/internal/service/product"
	reportsvc "github.com/quartermill/reviewdesk/internal/service/report"
	selectorsvc "github.com/quartermill/reviewdesk/internal/service/selector"
	workloadsvc "github.com/quartermill/reviewdesk/internal/service/workload"
)

// newTestServer assembles the full HTTP stack over the in-memory store, the
// same shape wire.Build produces without DATABASE_URL.
func newTestServer(t *testing.T, cfg engine.Config) *httptest.Server {
	t.Helper()

	store := memory.NewStore()
	bus := memory.NewBus()

	sel := selectorsvc.New(cfg.Windows, cfg.DefaultWindow)
	calc := workloadsvc.New(store.Assignments(), store.Products())
	engineSvc := engine.NewService(store.Assignments(), store.Products(), sel, calc, bus, store, cfg)
	reportSvc := reportsvc.NewService(store.Assignments(), store.Products(), store.Agents(), calc, store)
	agentSvc := agentsvc.NewService(store.Agents(), bus)
	productSvc := productsvc.NewService(store.Products(), bus)

	srv := httptest.NewServer(transport.NewRouter(engineSvc, productSvc, agentSvc, reportSvc, memory.NewIdempotencyStore()))
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, srv *httptest.Server, path string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(srv.URL+path, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func getJSON(t *testing.T, srv *httptest.Server, path string, out any) {
	t.Helper()
	resp, err := http.Get(srv.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func registerAgent(t *testing.T, srv *httptest.Server, name string) domainagent.Agent {
	t.Helper()
	resp := postJSON(t, srv, "/api/agents", map[string]string{"name": name, "email": name + "@quartermill.test"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var a domainagent.Agent
	decode(t, resp, &a)
	return a
}

func createProduct(t *testing.T, srv *httptest.Server, name, priority string, count int) domainproduct.Product {
	t.Helper()
	resp := postJSON(t, srv, "/api/products", map[string]any{"name": name, "priority": priority, "count": count})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var p domainproduct.Product
	decode(t, resp, &p)
	return p
}

func TestAssignmentLifecycle(t *testing.T) {
	srv := newTestServer(t, engine.DefaultConfig)
	reviewer := registerAgent(t, srv, "morgan")
	p := createProduct(t, srv, "widget", "P1", 2)

	// Request picks the only candidate.
	resp := postJSON(t, srv, "/api/assignments/request", map[string]any{"agent_id": reviewer.ID})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var a domainassignment.Assignment
	decode(t, resp, &a)
	assert.Equal(t, p.ID, a.ProductID)
	assert.Equal(t, reviewer.ID, a.AgentID)

	// The workload view reflects the claim.
	var wl struct {
		Workload int `json:"workload"`
	}
	getJSON(t, srv, "/api/agents/"+reviewer.ID.String()+"/workload", &wl)
	assert.Equal(t, 2, wl.Workload)

	// Complete closes it.
	resp = postJSON(t, srv, "/api/assignments/complete", map[string]any{"agent_id": reviewer.ID, "product_id": p.ID})
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	// Completing again is a 404 — the record is closed.
	resp = postJSON(t, srv, "/api/assignments/complete", map[string]any{"agent_id": reviewer.ID, "product_id": p.ID})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var completed []map[string]any
	getJSON(t, srv, "/api/reports/completed", &completed)
	require.Len(t, completed, 1)
	assert.Equal(t, "widget", completed[0]["name"])
}

func TestRequest_EmptyPoolIs404(t *testing.T) {
	srv := newTestServer(t, engine.DefaultConfig)
	reviewer := registerAgent(t, srv, "morgan")

	resp := postJSON(t, srv, "/api/assignments/request", map[string]any{"agent_id": reviewer.ID})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRequest_OverCapacityIs409(t *testing.T) {
	cfg := engine.DefaultConfig
	cfg.Capacity = 2
	srv := newTestServer(t, cfg)
	reviewer := registerAgent(t, srv, "morgan")
	createProduct(t, srv, "heavy", "P1", 2)
	createProduct(t, srv, "pending", "P2", 1)

	resp := postJSON(t, srv, "/api/assignments/request", map[string]any{"agent_id": reviewer.ID})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = postJSON(t, srv, "/api/assignments/request", map[string]any{"agent_id": reviewer.ID})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestRequest_MalformedBodyIs400(t *testing.T) {
	srv := newTestServer(t, engine.DefaultConfig)

	resp, err := http.Post(srv.URL+"/api/assignments/request", "application/json", strings.NewReader(`{"agent_id": "not-a-uuid"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = http.Post(srv.URL+"/api/assignments/request", "application/json", strings.NewReader(`{}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUnassign_ReturnsProductToPool(t *testing.T) {
	srv := newTestServer(t, engine.DefaultConfig)
	reviewer := registerAgent(t, srv, "morgan")
	p := createProduct(t, srv, "widget", "P1", 1)

	resp := postJSON(t, srv, "/api/assignments/request", map[string]any{"agent_id": reviewer.ID})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = postJSON(t, srv, "/api/assignments/unassign", map[string]any{
		"product_id": p.ID, "agent_id": reviewer.ID, "actor": "supervisor",
	})
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	var available []domainproduct.Product
	getJSON(t, srv, "/api/reports/available", &available)
	require.Len(t, available, 1)
	assert.Equal(t, p.ID, available[0].ID)

	var unassigned []map[string]any
	getJSON(t, srv, "/api/reports/unassigned", &unassigned)
	require.Len(t, unassigned, 1)
	assert.Equal(t, "supervisor", unassigned[0]["unassigned_by"])
}

func TestUnassignAllForAgent(t *testing.T) {
	srv := newTestServer(t, engine.DefaultConfig)
	reviewer := registerAgent(t, srv, "morgan")
	createProduct(t, srv, "a", "P1", 1)
	createProduct(t, srv, "b", "P2", 1)

	for i := 0; i < 2; i++ {
		resp := postJSON(t, srv, "/api/assignments/request", map[string]any{"agent_id": reviewer.ID})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp := postJSON(t, srv, "/api/agents/"+reviewer.ID.String()+"/unassign-all", map[string]any{"actor": "ops"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out struct {
		Unassigned int `json:"unassigned"`
	}
	decode(t, resp, &out)
	assert.Equal(t, 2, out.Unassigned)
}

func TestCompleteAllForAgent(t *testing.T) {
	srv := newTestServer(t, engine.DefaultConfig)
	reviewer := registerAgent(t, srv, "morgan")
	createProduct(t, srv, "a", "P1", 1)
	createProduct(t, srv, "b", "P2", 1)

	for i := 0; i < 2; i++ {
		resp := postJSON(t, srv, "/api/assignments/request", map[string]any{"agent_id": reviewer.ID})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp := postJSON(t, srv, "/api/agents/"+reviewer.ID.String()+"/complete-all", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out struct {
		Completed int `json:"completed"`
	}
	decode(t, resp, &out)
	assert.Equal(t, 2, out.Completed)
}

func TestListProducts_QueryFilters(t *testing.T) {
	srv := newTestServer(t, engine.DefaultConfig)
	reviewer := registerAgent(t, srv, "morgan")
	createProduct(t, srv, "p1-item", "P1", 1)
	createProduct(t, srv, "p2-item", "P2", 1)

	resp := postJSON(t, srv, "/api/assignments/request", map[string]any{"agent_id": reviewer.ID})
	require.Equal(t, http.StatusCreated, resp.StatusCode) // claims p1-item

	var got []domainproduct.Product
	getJSON(t, srv, "/api/products?assigned=false", &got)
	require.Len(t, got, 1)
	assert.Equal(t, "p2-item", got[0].Name)

	getJSON(t, srv, "/api/products?priority=P1", &got)
	require.Len(t, got, 1)
	assert.Equal(t, "p1-item", got[0].Name)
}

func TestGetProduct_UnknownIDIs404(t *testing.T) {
	srv := newTestServer(t, engine.DefaultConfig)

	resp, err := http.Get(srv.URL + "/api/products/" + uuid.NewString())
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/api/products/not-a-uuid")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestImportCSVEndpoint(t *testing.T) {
	srv := newTestServer(t, engine.DefaultConfig)

	body := "name,priority,count,tenant\ngizmo,P1,3,acme\ndoodad,P2,1,\n"
	resp, err := http.Post(srv.URL+"/api/products/import", "text/csv", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out struct {
		Imported int `json:"imported"`
	}
	decode(t, resp, &out)
	assert.Equal(t, 2, out.Imported)
}

func TestAgentRoster(t *testing.T) {
	srv := newTestServer(t, engine.DefaultConfig)
	registerAgent(t, srv, "morgan")
	registerAgent(t, srv, "rae")

	var rows []map[string]any
	getJSON(t, srv, "/api/agents", &rows)
	assert.Len(t, rows, 2)
}

func TestIdempotencyReplay(t *testing.T) {
	srv := newTestServer(t, engine.DefaultConfig)
	reviewer := registerAgent(t, srv, "morgan")
	createProduct(t, srv, "only", "P1", 1)

	body := fmt.Sprintf(`{"agent_id":%q}`, reviewer.ID)
	key := uuid.NewString()

	do := func() *http.Response {
		req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/assignments/request", strings.NewReader(body))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Idempotency-Key", key)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		t.Cleanup(func() { resp.Body.Close() })
		return resp
	}

	first := do()
	require.Equal(t, http.StatusCreated, first.StatusCode)
	var a1 domainassignment.Assignment
	decode(t, first, &a1)

	// Same key: the stored response is replayed with the original status, no
	// second assignment is made.
	second := do()
	assert.Equal(t, http.StatusCreated, second.StatusCode)
	assert.Equal(t, "true", second.Header.Get("Idempotency-Replayed"))
	var a2 domainassignment.Assignment
	decode(t, second, &a2)
	assert.Equal(t, a1.ID, a2.ID)

	// A fresh key hits the engine again — and finds the pool empty.
	key = uuid.NewString()
	third := do()
	assert.Equal(t, http.StatusNotFound, third.StatusCode)
}

func TestIdempotencyReplay_KeepsBodylessStatus(t *testing.T) {
	srv := newTestServer(t, engine.DefaultConfig)
	reviewer := registerAgent(t, srv, "morgan")
	p := createProduct(t, srv, "only", "P1", 1)

	resp := postJSON(t, srv, "/api/assignments/request", map[string]any{"agent_id": reviewer.ID})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := fmt.Sprintf(`{"agent_id":%q,"product_id":%q}`, reviewer.ID, p.ID)
	key := uuid.NewString()

	do := func() *http.Response {
		req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/assignments/complete", strings.NewReader(body))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Idempotency-Key", key)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		t.Cleanup(func() { resp.Body.Close() })
		return resp
	}

	first := do()
	require.Equal(t, http.StatusNoContent, first.StatusCode)

	// The replayed response keeps 204, not a generic 200 — and the record is
	// not closed twice.
	second := do()
	assert.Equal(t, http.StatusNoContent, second.StatusCode)
	assert.Equal(t, "true", second.Header.Get("Idempotency-Replayed"))
}
