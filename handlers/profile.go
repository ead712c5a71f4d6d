package handlers

import (
	"net/http"

	profileSvc "connectplatform/services/profile"
	"connectplatform/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProfileHandler exposes profile CRUD and teacher search.
type ProfileHandler struct {
	Profiles profileSvc.ProfileService
}

// GetProfileHandler handles GET /profiles?user_id=... and the path variant
// GET /profiles/:user_id.
func (h *ProfileHandler) GetProfileHandler(c *gin.Context) {
	userID := c.Param("user_id")
	if userID == "" {
		userID = c.Query("user_id")
	}
	p, err := h.Profiles.Get(c.Request.Context(), userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// UpsertProfileHandler handles POST /profiles. The payload may be flat or
// carry a nested "profile_data" object; unknown keys ride along in Extra.
func (h *ProfileHandler) UpsertProfileHandler(c *gin.Context) {
	logger := getLogger(c)

	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		logger.Error("Invalid profile payload", zap.Error(err))
		utils.RespondError(c, utils.ValidationError("Invalid JSON payload"))
		return
	}

	stored, err := h.Profiles.Upsert(c.Request.Context(), profileSvc.FromRequest(raw))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Profile saved",
		"profile": stored,
	})
}

// SearchTeachersHandler handles GET /search/teachers?topic=...&type=...
// The newer query/search_type names are accepted as aliases.
func (h *ProfileHandler) SearchTeachersHandler(c *gin.Context) {
	query := c.Query("topic")
	if query == "" {
		query = c.Query("query")
	}
	searchType := c.Query("type")
	if searchType == "" {
		searchType = c.Query("search_type")
	}

	results, err := h.Profiles.SearchTeachers(c.Request.Context(), query, searchType)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"results": results,
		"count":   len(results),
	})
}
