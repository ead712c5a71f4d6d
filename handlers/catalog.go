package handlers

import (
	"net/http"

	"connectplatform/models"
	catalogSvc "connectplatform/services/catalog"
	"connectplatform/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler exposes the service catalog.
type CatalogHandler struct {
	Catalog catalogSvc.CatalogService
}

// CreateServiceHandler handles POST /services.
func (h *CatalogHandler) CreateServiceHandler(c *gin.Context) {
	logger := getLogger(c)

	var offering models.ServiceOffering
	if err := c.ShouldBindJSON(&offering); err != nil {
		logger.Error("Invalid service payload", zap.Error(err))
		utils.RespondError(c, utils.ValidationError("Invalid JSON payload"))
		return
	}

	created, err := h.Catalog.Create(c.Request.Context(), offering)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListServicesHandler handles GET /services.
func (h *CatalogHandler) ListServicesHandler(c *gin.Context) {
	services, err := h.Catalog.List(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"services": services,
		"count":    len(services),
	})
}
