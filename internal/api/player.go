package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stwalsh4118/rabbitears/internal/config"
)

// PlayerConfigResponse is the playback tuning handed to the client player
type PlayerConfigResponse struct {
	BreakTolerance             float64 `json:"break_tolerance"`
	PaddingThresholdSeconds    int     `json:"padding_threshold_seconds"`
	ChannelEntryTimeoutSeconds int     `json:"channel_entry_timeout_seconds"`
	ChannelInfoDurationSeconds int     `json:"channel_info_duration_seconds"`
	MediaInfoDurationSeconds   int     `json:"media_info_duration_seconds"`
}

// PlayerHandler serves the playback engine configuration
type PlayerHandler struct {
	playback config.PlaybackConfig
}

// NewPlayerHandler creates a new player config handler
func NewPlayerHandler(playback config.PlaybackConfig) *PlayerHandler {
	return &PlayerHandler{playback: playback}
}

// GetConfig handles GET /player/config
func (h *PlayerHandler) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, PlayerConfigResponse{
		BreakTolerance:             h.playback.BreakTolerance,
		PaddingThresholdSeconds:    h.playback.PaddingThresholdSeconds,
		ChannelEntryTimeoutSeconds: h.playback.ChannelEntryTimeoutSeconds,
		ChannelInfoDurationSeconds: h.playback.ChannelInfoDurationSeconds,
		MediaInfoDurationSeconds:   h.playback.MediaInfoDurationSeconds,
	})
}

// SetupPlayerRoutes registers player config routes
func SetupPlayerRoutes(apiGroup *gin.RouterGroup, playback config.PlaybackConfig) {
	handler := NewPlayerHandler(playback)
	apiGroup.GET("/player/config", handler.GetConfig)
}
