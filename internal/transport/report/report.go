package report

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainproduct "github.com/quartermill/reviewdesk/internal/domain/product"
	reportsvc "github.com/quartermill/reviewdesk/internal/service/report"
)

func Register(rg *gin.RouterGroup, svc *reportsvc.Service) {
	rg.GET("/completed", completed(svc))
	rg.GET("/available", available(svc))
	rg.GET("/unassigned", previouslyUnassigned(svc))
}

func completed(svc *reportsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := svc.Completed(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if rows == nil {
			rows = []reportsvc.CompletedProduct{}
		}
		c.JSON(http.StatusOK, rows)
	}
}

func available(svc *reportsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := svc.Available(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if rows == nil {
			rows = []domainproduct.Product{}
		}
		c.JSON(http.StatusOK, rows)
	}
}

func previouslyUnassigned(svc *reportsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := svc.PreviouslyUnassigned(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if rows == nil {
			rows = []reportsvc.UnassignedRecord{}
		}
		c.JSON(http.StatusOK, rows)
	}
}
