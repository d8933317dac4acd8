package assignment

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	enginesvc "github.com/quartermill/reviewdesk/internal/service/engine"
)

func Register(rg *gin.RouterGroup, svc *enginesvc.Service) {
	rg.POST("/request", requestTask(svc))
	rg.POST("/complete", completeTask(svc))
	rg.POST("/unassign", unassignProduct(svc))
	rg.POST("/unassign-all", unassignAll(svc))
}

type requestReq struct {
	AgentID uuid.UUID `json:"agent_id" binding:"required"`
}

func requestTask(svc *enginesvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req requestReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		a, err := svc.Request(c.Request.Context(), req.AgentID)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, a)
	}
}

type completeReq struct {
	AgentID   uuid.UUID `json:"agent_id" binding:"required"`
	ProductID uuid.UUID `json:"product_id" binding:"required"`
}

func completeTask(svc *enginesvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req completeReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := svc.Complete(c.Request.Context(), req.AgentID, req.ProductID); err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

type unassignReq struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	AgentID   uuid.UUID `json:"agent_id" binding:"required"`
	Actor     string    `json:"actor" binding:"required"`
}

func unassignProduct(svc *enginesvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req unassignReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := svc.Unassign(c.Request.Context(), req.ProductID, req.AgentID, req.Actor); err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

type unassignAllReq struct {
	Actor string `json:"actor" binding:"required"`
}

func unassignAll(svc *enginesvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req unassignAllReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		n, err := svc.UnassignAll(c.Request.Context(), req.Actor)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"unassigned": n})
	}
}

// statusFor maps the engine's business conditions to HTTP statuses. They are
// expected states, not faults — never 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, enginesvc.ErrCapacityExceeded):
		return http.StatusConflict
	case errors.Is(err, enginesvc.ErrNoAvailableWork):
		return http.StatusNotFound
	case errors.Is(err, enginesvc.ErrAssignmentNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
