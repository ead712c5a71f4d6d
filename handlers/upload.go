package handlers

import (
	"net/http"

	uploadSvc "connectplatform/services/upload"
	"connectplatform/utils"

	"github.com/gin-gonic/gin"
)

// UploadHandler exposes presigned profile photo uploads.
type UploadHandler struct {
	Uploads uploadSvc.UploadService
}

// PresignedURLHandler handles POST /presigned-url with an optional body
// {file_name, file_type}; defaults produce a uniquely named JPEG.
func (h *UploadHandler) PresignedURLHandler(c *gin.Context) {
	var req struct {
		FileName string `json:"file_name"`
		FileType string `json:"file_type"`
	}
	// An empty or absent body just means defaults.
	_ = c.ShouldBindJSON(&req)

	result, err := h.Uploads.PresignUpload(c.Request.Context(), req.FileName, req.FileType)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
