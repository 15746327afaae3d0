package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"minishop/internal/services"
)

type CatalogHandler struct {
	catalogService *services.CatalogService
}

func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// GET /api/products
func (h *CatalogHandler) GetAllProducts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"data": h.catalogService.GetAll(),
	})
}

// GET /health
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
