package agent

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	agentsvc "github.com/quartermill/reviewdesk/internal/service/agent"
	enginesvc "github.com/quartermill/reviewdesk/internal/service/engine"
	reportsvc "github.com/quartermill/reviewdesk/internal/service/report"
)

func Register(rg *gin.RouterGroup, svc *agentsvc.Service, engine *enginesvc.Service, reports *reportsvc.Service) {
	rg.POST("", registerAgent(svc))
	rg.GET("", listAgents(reports))
	rg.GET("/:id/workload", getWorkload(reports))
	rg.POST("/:id/complete-all", completeAll(engine))
	rg.POST("/:id/unassign-all", unassignAll(engine))
}

type registerReq struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email"`
}

func registerAgent(svc *agentsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req registerReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		a, err := svc.Register(c.Request.Context(), req.Name, req.Email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, a)
	}
}

func listAgents(reports *reportsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := reports.AgentWorkloads(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if rows == nil {
			rows = []reportsvc.AgentWorkload{}
		}
		c.JSON(http.StatusOK, rows)
	}
}

func getWorkload(reports *reportsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		load, err := reports.WorkloadOf(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"agent_id": id, "workload": load})
	}
}

func completeAll(engine *enginesvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		n, err := engine.CompleteAllForAgent(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"completed": n})
	}
}

type unassignAllReq struct {
	Actor string `json:"actor" binding:"required"`
}

func unassignAll(engine *enginesvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		var req unassignAllReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		n, err := engine.UnassignAllForAgent(c.Request.Context(), id, req.Actor)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"unassigned": n})
	}
}
