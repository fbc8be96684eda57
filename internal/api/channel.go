package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stwalsh4118/rabbitears/internal/db"
	"github.com/stwalsh4118/rabbitears/internal/logger"
	"github.com/stwalsh4118/rabbitears/internal/models"
)

// CreateChannelRequest represents a request to create a new channel
type CreateChannelRequest struct {
	Number         int      `json:"number" binding:"required,gte=1"`
	Name           string   `json:"name" binding:"required"`
	Overlay        *string  `json:"overlay,omitempty"`
	OverlayPos     *string  `json:"overlay_position,omitempty"`
	OverlayOpacity *float64 `json:"overlay_opacity,omitempty"`
}

// UpdateChannelRequest represents a partial channel update
type UpdateChannelRequest struct {
	Number         *int     `json:"number,omitempty"`
	Name           *string  `json:"name,omitempty"`
	Overlay        *string  `json:"overlay,omitempty"`
	OverlayPos     *string  `json:"overlay_position,omitempty"`
	OverlayOpacity *float64 `json:"overlay_opacity,omitempty"`
}

// CreateScheduleEntryRequest represents a request to place an entry on the grid
type CreateScheduleEntryRequest struct {
	DayOfWeek    int    `json:"day_of_week" binding:"gte=0,lte=6"`
	StartTime    string `json:"start_time" binding:"required"`
	EndTime      string `json:"end_time" binding:"required"`
	MediaID      string `json:"media_id" binding:"required"`
	MediaType    string `json:"media_type" binding:"required"`
	Runtime      int    `json:"runtime"`
	Occurrence   string `json:"occurrence"`
	Order        int    `json:"order"`
	Repeat       bool   `json:"repeat"`
	FillerSource string `json:"filler_source"`
	FillStyle    string `json:"fill_style"`
}

// ChannelHandler handles channel and schedule grid requests
type ChannelHandler struct {
	repos *db.Repositories
}

// NewChannelHandler creates a new channel handler
func NewChannelHandler(repos *db.Repositories) *ChannelHandler {
	return &ChannelHandler{repos: repos}
}

// List handles GET /channels
func (h *ChannelHandler) List(c *gin.Context) {
	channels, err := h.repos.Channels.List(c.Request.Context())
	if err != nil {
		logger.Log.Error().Err(err).Msg("Failed to list channels")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list channels"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"channels": channels})
}

// Create handles POST /channels
func (h *ChannelHandler) Create(c *gin.Context) {
	var req CreateChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	channel := models.NewChannel(req.Number, req.Name)
	channel.Overlay = req.Overlay
	if req.OverlayPos != nil {
		channel.OverlayPos = *req.OverlayPos
	}
	if req.OverlayOpacity != nil {
		channel.OverlayOpacity = *req.OverlayOpacity
	}

	if err := h.repos.Channels.Create(c.Request.Context(), channel); err != nil {
		if db.IsDuplicate(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "channel number already in use"})
			return
		}
		logger.Log.Error().Err(err).Int("number", req.Number).Msg("Failed to create channel")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create channel"})
		return
	}

	c.JSON(http.StatusCreated, channel)
}

// Update handles PUT /channels/:id
func (h *ChannelHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid channel id"})
		return
	}

	var req UpdateChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	channel, err := h.repos.Channels.GetByID(c.Request.Context(), id)
	if err != nil {
		if db.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "channel not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get channel"})
		return
	}

	if req.Number != nil {
		channel.Number = *req.Number
	}
	if req.Name != nil {
		channel.Name = *req.Name
	}
	if req.Overlay != nil {
		channel.Overlay = req.Overlay
	}
	if req.OverlayPos != nil {
		channel.OverlayPos = *req.OverlayPos
	}
	if req.OverlayOpacity != nil {
		channel.OverlayOpacity = *req.OverlayOpacity
	}
	channel.UpdatedAt = time.Now().UTC()

	if err := h.repos.Channels.Update(c.Request.Context(), channel); err != nil {
		if db.IsDuplicate(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "channel number already in use"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update channel"})
		return
	}

	c.JSON(http.StatusOK, channel)
}

// Delete handles DELETE /channels/:id, removing the channel's grid with it
func (h *ChannelHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid channel id"})
		return
	}

	ctx := c.Request.Context()
	if err := h.repos.ScheduleEntries.DeleteByChannelID(ctx, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete schedule"})
		return
	}
	if err := h.repos.Channels.Delete(ctx, id); err != nil {
		if db.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "channel not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete channel"})
		return
	}

	c.Status(http.StatusNoContent)
}

// ListSchedule handles GET /channels/:id/schedule
func (h *ChannelHandler) ListSchedule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid channel id"})
		return
	}

	entries, err := h.repos.ScheduleEntries.GetByChannelID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list schedule"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// CreateScheduleEntry handles POST /channels/:id/schedule
func (h *ChannelHandler) CreateScheduleEntry(c *gin.Context) {
	channelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid channel id"})
		return
	}

	var req CreateScheduleEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mediaID, err := uuid.Parse(req.MediaID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid media id"})
		return
	}

	entry := models.NewScheduleEntry(channelID, mediaID, req.MediaType, req.DayOfWeek, req.StartTime, req.EndTime)
	entry.Runtime = req.Runtime
	if req.Occurrence != "" {
		entry.Occurrence = req.Occurrence
	}
	entry.Order = req.Order
	entry.Repeat = req.Repeat
	entry.FillerSource = req.FillerSource
	entry.FillStyle = req.FillStyle

	if err := h.repos.ScheduleEntries.Create(c.Request.Context(), entry); err != nil {
		logger.Log.Error().Err(err).Str("channel_id", channelID.String()).Msg("Failed to create schedule entry")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create schedule entry"})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// DeleteScheduleEntry handles DELETE /schedule/:id
func (h *ChannelHandler) DeleteScheduleEntry(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
		return
	}

	if err := h.repos.ScheduleEntries.Delete(c.Request.Context(), id); err != nil {
		if db.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "schedule entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete schedule entry"})
		return
	}

	c.Status(http.StatusNoContent)
}

// SetupChannelRoutes registers channel and schedule grid routes
func SetupChannelRoutes(apiGroup *gin.RouterGroup, repos *db.Repositories) {
	handler := NewChannelHandler(repos)
	apiGroup.GET("/channels", handler.List)
	apiGroup.POST("/channels", handler.Create)
	apiGroup.PUT("/channels/:id", handler.Update)
	apiGroup.DELETE("/channels/:id", handler.Delete)
	apiGroup.GET("/channels/:id/schedule", handler.ListSchedule)
	apiGroup.POST("/channels/:id/schedule", handler.CreateScheduleEntry)
	apiGroup.DELETE("/schedule/:id", handler.DeleteScheduleEntry)
}
