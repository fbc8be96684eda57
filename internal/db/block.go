package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/stwalsh4118/rabbitears/internal/models"
)

// BlockRepository handles database operations for blocks and marathons
type BlockRepository struct {
	db *DB
}

// NewBlockRepository creates a new block repository
func NewBlockRepository(db *DB) *BlockRepository {
	return &BlockRepository{db: db}
}

// Create inserts a new block into the database
func (r *BlockRepository) Create(ctx context.Context, block *models.Block) error {
	result := r.db.WithContext(ctx).Create(block)
	if result.Error != nil {
		return fmt.Errorf("failed to create block: %w", MapGormError(result.Error))
	}
	return nil
}

// GetByID retrieves a block by its UUID
func (r *BlockRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Block, error) {
	var block models.Block
	result := r.db.WithContext(ctx).Where("id = ?", id.String()).First(&block)
	if result.Error != nil {
		return nil, MapGormError(result.Error)
	}
	return &block, nil
}

// List retrieves all blocks of a given kind ("block" or "marathon")
func (r *BlockRepository) List(ctx context.Context, kind string) ([]*models.Block, error) {
	var blocks []*models.Block
	result := r.db.WithContext(ctx).Where("kind = ?", kind).Order("name ASC").Find(&blocks)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list blocks: %w", MapGormError(result.Error))
	}
	return blocks, nil
}

// Delete deletes a block and relies on FK cascade for its items
func (r *BlockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id.String()).Delete(&models.Block{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete block: %w", MapGormError(result.Error))
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// BlockItemRepository handles database operations for block children
type BlockItemRepository struct {
	db *DB
}

// NewBlockItemRepository creates a new block item repository
func NewBlockItemRepository(db *DB) *BlockItemRepository {
	return &BlockItemRepository{db: db}
}

// Create inserts a new block item into the database
func (r *BlockItemRepository) Create(ctx context.Context, item *models.BlockItem) error {
	result := r.db.WithContext(ctx).Create(item)
	if result.Error != nil {
		return fmt.Errorf("failed to create block item: %w", MapGormError(result.Error))
	}
	return nil
}

// GetByBlockID retrieves all items for a block, ordered by position
func (r *BlockItemRepository) GetByBlockID(ctx context.Context, blockID uuid.UUID) ([]*models.BlockItem, error) {
	var items []*models.BlockItem
	result := r.db.WithContext(ctx).
		Where("block_id = ?", blockID.String()).
		Order("position ASC").
		Find(&items)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to get block items: %w", MapGormError(result.Error))
	}
	return items, nil
}

// GetWithMedia retrieves a block's items with their media populated,
// ordered by position. Items whose media has been deleted keep a nil Media.
func (r *BlockItemRepository) GetWithMedia(ctx context.Context, blockID uuid.UUID) ([]*models.BlockItem, error) {
	items, err := r.GetByBlockID(ctx, blockID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return items, nil
	}

	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.MediaID.String())
	}

	var mediaList []*models.Media
	result := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&mediaList)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to load block media: %w", MapGormError(result.Error))
	}

	byID := make(map[uuid.UUID]*models.Media, len(mediaList))
	for _, m := range mediaList {
		byID[m.ID] = m
	}
	for _, item := range items {
		item.Media = byID[item.MediaID]
	}

	return items, nil
}

// Delete deletes a block item by its UUID
func (r *BlockItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id.String()).Delete(&models.BlockItem{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete block item: %w", MapGormError(result.Error))
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
