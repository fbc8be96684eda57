package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stwalsh4118/rabbitears/internal/db"
	"github.com/stwalsh4118/rabbitears/internal/logger"
)

// UpdateSettingsRequest represents a partial settings update
type UpdateSettingsRequest struct {
	ShowChannelInfo     *bool `json:"show_channel_info,omitempty"`
	ChannelInfoDuration *int  `json:"channel_info_duration,omitempty" binding:"omitempty,gte=1"`
	ShowMediaInfo       *bool `json:"show_media_info,omitempty"`
	MediaInfoDuration   *int  `json:"media_info_duration,omitempty" binding:"omitempty,gte=1"`
}

// SettingsHandler handles display settings requests
type SettingsHandler struct {
	repos *db.Repositories
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(repos *db.Repositories) *SettingsHandler {
	return &SettingsHandler{repos: repos}
}

// Get handles GET /settings
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.repos.Settings.Get(c.Request.Context())
	if err != nil {
		logger.Log.Error().Err(err).Msg("Failed to get settings")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get settings"})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// Update handles PUT /settings
func (h *SettingsHandler) Update(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	settings, err := h.repos.Settings.Get(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get settings"})
		return
	}

	if req.ShowChannelInfo != nil {
		settings.ShowChannelInfo = *req.ShowChannelInfo
	}
	if req.ChannelInfoDuration != nil {
		settings.ChannelInfoDuration = *req.ChannelInfoDuration
	}
	if req.ShowMediaInfo != nil {
		settings.ShowMediaInfo = *req.ShowMediaInfo
	}
	if req.MediaInfoDuration != nil {
		settings.MediaInfoDuration = *req.MediaInfoDuration
	}

	if err := h.repos.Settings.Update(ctx, settings); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update settings"})
		return
	}

	c.JSON(http.StatusOK, settings)
}

// SetupSettingsRoutes registers settings routes
func SetupSettingsRoutes(apiGroup *gin.RouterGroup, repos *db.Repositories) {
	handler := NewSettingsHandler(repos)
	apiGroup.GET("/settings", handler.Get)
	apiGroup.PUT("/settings", handler.Update)
}
