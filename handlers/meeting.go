package handlers

import (
	"net/http"

	meetingSvc "connectplatform/services/meeting"
	"connectplatform/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MeetingHandler exposes video meetings for sessions.
type MeetingHandler struct {
	Meetings meetingSvc.MeetingService
}

type meetingRequest struct {
	SessionID string `json:"session_id" binding:"required"`
}

type attendeeRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	UserID    string `json:"user_id" binding:"required"`
}

// CreateMeetingHandler handles POST /meetings. Re-posting for a session with
// a live meeting returns that meeting instead of provisioning another.
func (h *MeetingHandler) CreateMeetingHandler(c *gin.Context) {
	logger := getLogger(c)

	var req meetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid meeting payload", zap.Error(err))
		utils.RespondError(c, utils.ValidationError("session_id is required"))
		return
	}

	info, created, err := h.Meetings.EnsureMeeting(c.Request.Context(), req.SessionID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{
		"session_id": req.SessionID,
		"meeting":    info,
		"created":    created,
	})
}

// GetMeetingHandler handles GET /meetings/:session_id.
func (h *MeetingHandler) GetMeetingHandler(c *gin.Context) {
	sessionID := c.Param("session_id")

	info, active, err := h.Meetings.Lookup(c.Request.Context(), sessionID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if !active {
		c.JSON(http.StatusOK, gin.H{
			"session_id":         sessionID,
			"has_active_meeting": false,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"session_id":         sessionID,
		"has_active_meeting": true,
		"meeting":            info,
	})
}

// EndMeetingHandler handles DELETE /meetings. Ending a session whose meeting
// is already gone still succeeds.
func (h *MeetingHandler) EndMeetingHandler(c *gin.Context) {
	logger := getLogger(c)

	var req meetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid meeting payload", zap.Error(err))
		utils.RespondError(c, utils.ValidationError("session_id is required"))
		return
	}

	if err := h.Meetings.EndMeeting(c.Request.Context(), req.SessionID); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Meeting ended"})
}

// CreateAttendeeHandler handles POST /attendees. Only the session's teacher
// or student is admitted.
func (h *MeetingHandler) CreateAttendeeHandler(c *gin.Context) {
	logger := getLogger(c)

	var req attendeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid attendee payload", zap.Error(err))
		utils.RespondError(c, utils.ValidationError("session_id and user_id are required"))
		return
	}

	attendee, userName, err := h.Meetings.AddAttendee(c.Request.Context(), req.SessionID, req.UserID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"attendee":  attendee,
		"user_name": userName,
	})
}
