package transport

import (
	"github.com/gin-gonic/gin"

	portidem "github.com/quartermill/reviewdesk/internal/port/idempotency"
	agentsvc "github.com/quartermill/reviewdesk/internal/service/agent"
	enginesvc "github.com/quartermill/reviewdesk/internal/service/engine"
	productsvc "github.com/quartermill/reviewdesk/internal/service/product"
	reportsvc "github.com/quartermill/reviewdesk/internal/service/report"

	agenthandler "github.com/quartermill/reviewdesk/internal/transport/agent"
	assignmenthandler "github.com/quartermill/reviewdesk/internal/transport/assignment"
	producthandler "github.com/quartermill/reviewdesk/internal/transport/product"
	reporthandler "github.com/quartermill/reviewdesk/internal/transport/report"
)

func NewRouter(
	engineSvc *enginesvc.Service,
	productSvc *productsvc.Service,
	agentSvc *agentsvc.Service,
	reportSvc *reportsvc.Service,
	idemStore portidem.Store,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(RequestLogger())
	r.Use(CORSMiddleware())
	r.Use(IdempotencyMiddleware(idemStore))

	api := r.Group("/api")

	producthandler.Register(api.Group("/products"), productSvc)
	agenthandler.Register(api.Group("/agents"), agentSvc, engineSvc, reportSvc)
	assignmenthandler.Register(api.Group("/assignments"), engineSvc)
	reporthandler.Register(api.Group("/reports"), reportSvc)

	return r
}
