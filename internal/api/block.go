package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stwalsh4118/rabbitears/internal/db"
	"github.com/stwalsh4118/rabbitears/internal/models"
)

// CreateBlockRequest represents a request to create a block or marathon
type CreateBlockRequest struct {
	Name string `json:"name" binding:"required"`
	Kind string `json:"kind" binding:"required,oneof=block marathon"`
}

// AddBlockItemRequest represents a request to append a child to a block
type AddBlockItemRequest struct {
	MediaID  string `json:"media_id" binding:"required"`
	Position int    `json:"position" binding:"gte=0"`
}

// BlockHandler handles block and marathon requests
type BlockHandler struct {
	repos *db.Repositories
}

// NewBlockHandler creates a new block handler
func NewBlockHandler(repos *db.Repositories) *BlockHandler {
	return &BlockHandler{repos: repos}
}

// List handles GET /blocks?kind=block|marathon
func (h *BlockHandler) List(c *gin.Context) {
	kind := c.DefaultQuery("kind", models.MediaTypeBlock)
	if !models.IsCompositeType(kind) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown block kind"})
		return
	}

	blocks, err := h.repos.Blocks.List(c.Request.Context(), kind)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list blocks"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"blocks": blocks})
}

// Get handles GET /blocks/:id, returning the block with its ordered items
func (h *BlockHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid block id"})
		return
	}

	ctx := c.Request.Context()
	block, err := h.repos.Blocks.GetByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "block not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get block"})
		return
	}

	items, err := h.repos.BlockItems.GetWithMedia(ctx, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get block items"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"block": block, "items": items})
}

// Create handles POST /blocks
func (h *BlockHandler) Create(c *gin.Context) {
	var req CreateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	block := models.NewBlock(req.Name, req.Kind)
	if err := h.repos.Blocks.Create(c.Request.Context(), block); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create block"})
		return
	}

	c.JSON(http.StatusCreated, block)
}

// AddItem handles POST /blocks/:id/items
func (h *BlockHandler) AddItem(c *gin.Context) {
	blockID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid block id"})
		return
	}

	var req AddBlockItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mediaID, err := uuid.Parse(req.MediaID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid media id"})
		return
	}

	item := models.NewBlockItem(blockID, mediaID, req.Position)
	if err := h.repos.BlockItems.Create(c.Request.Context(), item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add block item"})
		return
	}

	c.JSON(http.StatusCreated, item)
}

// Delete handles DELETE /blocks/:id
func (h *BlockHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid block id"})
		return
	}

	if err := h.repos.Blocks.Delete(c.Request.Context(), id); err != nil {
		if db.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "block not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete block"})
		return
	}

	c.Status(http.StatusNoContent)
}

// SetupBlockRoutes registers block and marathon routes
func SetupBlockRoutes(apiGroup *gin.RouterGroup, repos *db.Repositories) {
	handler := NewBlockHandler(repos)
	apiGroup.GET("/blocks", handler.List)
	apiGroup.GET("/blocks/:id", handler.Get)
	apiGroup.POST("/blocks", handler.Create)
	apiGroup.POST("/blocks/:id/items", handler.AddItem)
	apiGroup.DELETE("/blocks/:id", handler.Delete)
}
