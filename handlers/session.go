package handlers

import (
	"net/http"

	"connectplatform/models"
	sessionSvc "connectplatform/services/session"
	"connectplatform/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionHandler exposes virtual tutoring sessions.
type SessionHandler struct {
	Sessions sessionSvc.SessionService
}

// CreateSessionHandler handles POST /sessions.
func (h *SessionHandler) CreateSessionHandler(c *gin.Context) {
	logger := getLogger(c)

	var session models.Session
	if err := c.ShouldBindJSON(&session); err != nil {
		logger.Error("Invalid session payload", zap.Error(err))
		utils.RespondError(c, utils.ValidationError("Invalid JSON payload"))
		return
	}

	created, err := h.Sessions.Create(c.Request.Context(), session)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetSessionHandler handles GET /sessions/:session_id.
func (h *SessionHandler) GetSessionHandler(c *gin.Context) {
	session, err := h.Sessions.Get(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// UpdateSessionHandler handles PUT /sessions/:session_id with a partial
// update: appended notes or documents, a recording URL, a status change.
func (h *SessionHandler) UpdateSessionHandler(c *gin.Context) {
	logger := getLogger(c)

	var input models.SessionUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logger.Error("Invalid session update payload", zap.Error(err))
		utils.RespondError(c, utils.ValidationError("Invalid JSON payload"))
		return
	}

	updated, err := h.Sessions.Update(c.Request.Context(), c.Param("session_id"), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
