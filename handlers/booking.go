package handlers

import (
	"net/http"

	"connectplatform/models"
	bookingSvc "connectplatform/services/booking"
	"connectplatform/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the reservation flow and booking lookups.
type BookingHandler struct {
	Bookings bookingSvc.BookingService
}

// CreateBookingHandler handles POST /bookings. At most one concurrent caller
// for the same slot gets a booking; the rest receive a conflict response.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	logger := getLogger(c)

	var input models.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logger.Error("Invalid booking payload", zap.Error(err))
		utils.RespondError(c, utils.ValidationError("Invalid JSON payload"))
		return
	}

	booking, err := h.Bookings.Reserve(c.Request.Context(), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Booking confirmed",
		"booking": booking,
	})
}

// ListBookingsHandler handles GET /bookings?student_id=... or ?teacher_id=...
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	bookings, err := h.Bookings.List(c.Request.Context(), c.Query("student_id"), c.Query("teacher_id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"bookings": bookings,
		"count":    len(bookings),
	})
}

// BookingSessionHandler handles GET /bookings/:booking_id/session. A booking
// without a session is a valid state, reported with session_exists false
// rather than an error.
func (h *BookingHandler) BookingSessionHandler(c *gin.Context) {
	bookingID := c.Param("booking_id")

	session, err := h.Bookings.SessionFor(c.Request.Context(), bookingID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if session == nil {
		c.JSON(http.StatusOK, gin.H{
			"booking_id":     bookingID,
			"session_exists": false,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"booking_id":     bookingID,
		"session_exists": true,
		"session":        session,
	})
}
