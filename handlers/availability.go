package handlers

import (
	"net/http"

	"connectplatform/models"
	availabilitySvc "connectplatform/services/availability"
	"connectplatform/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler exposes teacher availability slots.
type AvailabilityHandler struct {
	Availability availabilitySvc.AvailabilityService
}

// CreateAvailabilityHandler handles POST /availability.
func (h *AvailabilityHandler) CreateAvailabilityHandler(c *gin.Context) {
	logger := getLogger(c)

	var slot models.AvailabilitySlot
	if err := c.ShouldBindJSON(&slot); err != nil {
		logger.Error("Invalid availability payload", zap.Error(err))
		utils.RespondError(c, utils.ValidationError("Invalid JSON payload"))
		return
	}

	created, err := h.Availability.Create(c.Request.Context(), slot)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListAvailabilityHandler handles GET /availability. With teacher_id it
// returns that teacher's slots including booked ones; without it, only open
// slots.
func (h *AvailabilityHandler) ListAvailabilityHandler(c *gin.Context) {
	slots, err := h.Availability.List(c.Request.Context(), c.Query("teacher_id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"availability": slots,
		"count":        len(slots),
	})
}

// DeleteAvailabilityHandler handles DELETE /availability/:availability_id.
func (h *AvailabilityHandler) DeleteAvailabilityHandler(c *gin.Context) {
	availabilityID := c.Param("availability_id")
	if err := h.Availability.Delete(c.Request.Context(), availabilityID); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Availability slot deleted"})
}
