package product

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainproduct "github.com/quartermill/reviewdesk/internal/domain/product"
	productsvc "github.com/quartermill/reviewdesk/internal/service/product"
)

func Register(rg *gin.RouterGroup, svc *productsvc.Service) {
	rg.POST("", createProduct(svc))
	rg.GET("", listProducts(svc))
	rg.GET("/:id", getProduct(svc))
	rg.POST("/import", importCSV(svc))
}

type createReq struct {
	Name     string                 `json:"name" binding:"required"`
	Priority domainproduct.Priority `json:"priority" binding:"required"`
	Count    int                    `json:"count"`
	TenantID string                 `json:"tenant_id"`
}

func createProduct(svc *productsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		p, err := svc.Create(c.Request.Context(), req.Name, req.Priority, req.Count, req.TenantID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, p)
	}
}

func listProducts(svc *productsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var filters domainproduct.ListFilters

		if v := c.Query("assigned"); v != "" {
			assigned := v == "true"
			filters.Assigned = &assigned
		}
		if v := c.Query("priority"); v != "" {
			p := domainproduct.Priority(v)
			filters.Priority = &p
		}
		if v := c.Query("tenant"); v != "" {
			filters.TenantID = &v
		}

		products, err := svc.List(c.Request.Context(), filters)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if products == nil {
			products = []domainproduct.Product{}
		}
		c.JSON(http.StatusOK, products)
	}
}

func getProduct(svc *productsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		p, err := svc.GetByID(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func importCSV(svc *productsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		n, err := svc.ImportCSV(c.Request.Context(), c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "imported": n})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"imported": n})
	}
}
