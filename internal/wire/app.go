package wire

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quartermill/reviewdesk/internal/adapter/memory"
	pgdb "github.com/quartermill/reviewdesk/internal/adapter/postgres"
	pgagent "github.com/quartermill/reviewdesk/internal/adapter/postgres/agent"
	pgassignment "github.com/quartermill/reviewdesk/internal/adapter/postgres/assignment"
	pgeventbus "github.com/quartermill/reviewdesk/internal/adapter/postgres/eventbus"
	pgidempotency "github.com/quartermill/reviewdesk/internal/adapter/postgres/idempotency"
	pglocker "github.com/quartermill/reviewdesk/internal/adapter/postgres/locker"
	pgproduct "github.com/quartermill/reviewdesk/internal/adapter/postgres/product"

	portagent "github.com/quartermill/reviewdesk/internal/port/agent"
	portassignment "github.com/quartermill/reviewdesk/internal/port/assignment"
	portbus "github.com/quartermill/reviewdesk/internal/port/eventbus"
	portidem "github.com/quartermill/reviewdesk/internal/port/idempotency"
	portlocker "github.com/quartermill/reviewdesk/internal/port/locker"
	portproduct "github.com/quartermill/reviewdesk/internal/port/product"

	agentsvc "github.com/quartermill/reviewdesk/internal/service/agent"
	enginesvc "github.com/quartermill/reviewdesk/internal/service/engine"
	productsvc "github.com/quartermill/reviewdesk/internal/service/product"
	reportsvc "github.com/quartermill/reviewdesk/internal/service/report"
	selectorsvc "github.com/quartermill/reviewdesk/internal/service/selector"
	workloadsvc "github.com/quartermill/reviewdesk/internal/service/workload"

	"github.com/quartermill/reviewdesk/internal/transport"
)

// App holds the top-level resources needed to run and gracefully stop the server.
type App struct {
	Pool      *pgxpool.Pool // nil in memory mode
	Server    *http.Server
	EngineSvc *enginesvc.Service
	ReportSvc *reportsvc.Service
}

// Build is the composition root: the only place concrete types are wired to
// their interface dependencies. With DATABASE_URL set the postgres adapters
// back everything; without it the process runs on the in-memory store, which
// is enough for demos and local development.
func Build(ctx context.Context) (*App, error) {
	var (
		pool        *pgxpool.Pool
		catalog     portproduct.Repository
		ledger      portassignment.Repository
		agents      portagent.Repository
		bus         portbus.EventBus
		storeLocker portlocker.Locker
		idemStore   portidem.Store
	)

	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		p, err := pgdb.Connect(ctx, dbURL)
		if err != nil {
			return nil, fmt.Errorf("connecting to database: %w", err)
		}
		pool = p
		catalog = pgproduct.New(pool)
		ledger = pgassignment.New(pool)
		agents = pgagent.New(pool)
		bus = pgeventbus.New(pool)
		storeLocker = pglocker.New(pool)
		idemStore = pgidempotency.New(pool)
		slog.Info("using postgres store")
	} else {
		store := memory.NewStore()
		catalog = store.Products()
		ledger = store.Assignments()
		agents = store.Agents()
		bus = memory.NewBus()
		storeLocker = store
		idemStore = memory.NewIdempotencyStore()
		slog.Info("DATABASE_URL not set — using in-memory store")
	}

	cfg := enginesvc.DefaultConfig
	sel := selectorsvc.New(cfg.Windows, cfg.DefaultWindow)
	calc := workloadsvc.New(ledger, catalog)

	engineSvc := enginesvc.NewService(ledger, catalog, sel, calc, bus, storeLocker, cfg)
	reportSvc := reportsvc.NewService(ledger, catalog, agents, calc, storeLocker)
	agentSvcInstance := agentsvc.NewService(agents, bus)
	productSvcInstance := productsvc.NewService(catalog, bus)

	router := transport.NewRouter(engineSvc, productSvcInstance, agentSvcInstance, reportSvc, idemStore)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	server := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	slog.Info("application wired", "port", port)

	return &App{
		Pool:      pool,
		Server:    server,
		EngineSvc: engineSvc,
		ReportSvc: reportSvc,
	}, nil
}
