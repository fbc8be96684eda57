package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stwalsh4118/rabbitears/internal/logger"
	"github.com/stwalsh4118/rabbitears/internal/schedule"
)

// NowPlayingResponse represents what a tuned channel is showing right now
type NowPlayingResponse struct {
	Channel            interface{} `json:"channel"`
	OffAir             bool        `json:"off_air"`
	Descriptor         interface{} `json:"descriptor,omitempty"`
	StartOffsetSeconds int64       `json:"start_offset_seconds"`
}

// GuideHandler resolves "what's on now" requests
type GuideHandler struct {
	schedule *schedule.Service
}

// NewGuideHandler creates a new guide handler
func NewGuideHandler(scheduleSvc *schedule.Service) *GuideHandler {
	return &GuideHandler{schedule: scheduleSvc}
}

// NowPlaying handles GET /guide/:number. Clients poll this at least once
// per minute so grid boundary crossings are caught promptly.
func (h *GuideHandler) NowPlaying(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil || number < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid channel number"})
		return
	}

	program, err := h.schedule.NowPlaying(c.Request.Context(), number, time.Now())
	if err != nil {
		if schedule.IsChannelNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "channel not found"})
			return
		}
		logger.Log.Error().Err(err).Int("channel", number).Msg("Failed to resolve current program")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve current program"})
		return
	}

	response := NowPlayingResponse{
		Channel:            program.Channel,
		OffAir:             program.OffAir,
		StartOffsetSeconds: int64(program.StartOffset.Seconds()),
	}
	if program.Descriptor != nil {
		response.Descriptor = program.Descriptor
	}

	c.JSON(http.StatusOK, response)
}

// SetupGuideRoutes registers guide routes
func SetupGuideRoutes(apiGroup *gin.RouterGroup, scheduleSvc *schedule.Service) {
	handler := NewGuideHandler(scheduleSvc)
	apiGroup.GET("/guide/:number", handler.NowPlaying)
}
