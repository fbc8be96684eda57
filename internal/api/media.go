package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stwalsh4118/rabbitears/internal/db"
	"github.com/stwalsh4118/rabbitears/internal/logger"
	"github.com/stwalsh4118/rabbitears/internal/models"
)

// CreateMediaRequest represents a request to add a library item
type CreateMediaRequest struct {
	Title        string  `json:"title" binding:"required"`
	Type         string  `json:"type" binding:"required"`
	FilePath     string  `json:"file_path"`
	Breaks       string  `json:"breaks"`
	Category     *string `json:"category,omitempty"`
	ShowName     *string `json:"show_name,omitempty"`
	Season       *int    `json:"season,omitempty"`
	Episode      *int    `json:"episode,omitempty"`
	EpisodeTitle *string `json:"episode_title,omitempty"`
	Artist       *string `json:"artist,omitempty"`
	Album        *string `json:"album,omitempty"`
	Runtime      int     `json:"runtime"`
	AllowedAds   string  `json:"allowed_commercials"`
	ExcludedAds  string  `json:"excluded_commercials"`
	OverlayPos   *string `json:"overlay_position,omitempty"`
}

// MediaHandler handles media library requests
type MediaHandler struct {
	repos *db.Repositories
}

// NewMediaHandler creates a new media handler
func NewMediaHandler(repos *db.Repositories) *MediaHandler {
	return &MediaHandler{repos: repos}
}

// List handles GET /media with optional ?type= filter
func (h *MediaHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if mediaType := c.Query("type"); mediaType != "" {
		if !models.IsLibraryType(mediaType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown media type"})
			return
		}
		items, err := h.repos.Media.ListByType(ctx, mediaType)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list media"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"media": items})
		return
	}

	items, err := h.repos.Media.List(ctx, 0, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list media"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"media": items})
}

// Get handles GET /media/:id
func (h *MediaHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid media id"})
		return
	}

	media, err := h.repos.Media.GetByID(c.Request.Context(), id)
	if err != nil {
		if db.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "media not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get media"})
		return
	}
	c.JSON(http.StatusOK, media)
}

// Create handles POST /media
func (h *MediaHandler) Create(c *gin.Context) {
	var req CreateMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.IsLibraryType(req.Type) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown media type"})
		return
	}

	media := models.NewMedia(req.Type, req.Title, req.FilePath)
	media.Breaks = req.Breaks
	media.Category = req.Category
	media.ShowName = req.ShowName
	media.Season = req.Season
	media.Episode = req.Episode
	media.EpisodeTitle = req.EpisodeTitle
	media.Artist = req.Artist
	media.Album = req.Album
	media.Runtime = req.Runtime
	media.AllowedAds = req.AllowedAds
	media.ExcludedAds = req.ExcludedAds
	media.OverlayPos = req.OverlayPos

	if err := h.repos.Media.Create(c.Request.Context(), media); err != nil {
		logger.Log.Error().Err(err).Str("title", req.Title).Msg("Failed to create media")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create media"})
		return
	}

	c.JSON(http.StatusCreated, media)
}

// Delete handles DELETE /media/:id
func (h *MediaHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid media id"})
		return
	}

	if err := h.repos.Media.Delete(c.Request.Context(), id); err != nil {
		if db.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "media not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete media"})
		return
	}

	c.Status(http.StatusNoContent)
}

// SetupMediaRoutes registers media library routes
func SetupMediaRoutes(apiGroup *gin.RouterGroup, repos *db.Repositories) {
	handler := NewMediaHandler(repos)
	apiGroup.GET("/media", handler.List)
	apiGroup.GET("/media/:id", handler.Get)
	apiGroup.POST("/media", handler.Create)
	apiGroup.DELETE("/media/:id", handler.Delete)
}
