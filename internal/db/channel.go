package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/stwalsh4118/rabbitears/internal/models"
)

// ChannelRepository handles database operations for channels
type ChannelRepository struct {
	db *DB
}

// NewChannelRepository creates a new channel repository
func NewChannelRepository(db *DB) *ChannelRepository {
	return &ChannelRepository{db: db}
}

// Create inserts a new channel into the database
func (r *ChannelRepository) Create(ctx context.Context, channel *models.Channel) error {
	result := r.db.WithContext(ctx).Create(channel)
	if result.Error != nil {
		return fmt.Errorf("failed to create channel: %w", MapGormError(result.Error))
	}
	return nil
}

// GetByID retrieves a channel by its UUID
func (r *ChannelRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Channel, error) {
	var channel models.Channel
	result := r.db.WithContext(ctx).Where("id = ?", id.String()).First(&channel)
	if result.Error != nil {
		return nil, MapGormError(result.Error)
	}
	return &channel, nil
}

// GetByNumber retrieves a channel by its tuner number
func (r *ChannelRepository) GetByNumber(ctx context.Context, number int) (*models.Channel, error) {
	var channel models.Channel
	result := r.db.WithContext(ctx).Where("number = ?", number).First(&channel)
	if result.Error != nil {
		return nil, MapGormError(result.Error)
	}
	return &channel, nil
}

// List retrieves all channels ordered by tuner number
func (r *ChannelRepository) List(ctx context.Context) ([]*models.Channel, error) {
	var channels []*models.Channel
	result := r.db.WithContext(ctx).Order("number ASC").Find(&channels)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list channels: %w", MapGormError(result.Error))
	}
	return channels, nil
}

// Numbers retrieves all channel numbers in ascending order (for the tuner)
func (r *ChannelRepository) Numbers(ctx context.Context) ([]int, error) {
	var numbers []int
	result := r.db.WithContext(ctx).Model(&models.Channel{}).Order("number ASC").Pluck("number", &numbers)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list channel numbers: %w", MapGormError(result.Error))
	}
	return numbers, nil
}

// Update updates an existing channel
// Note: Uses map-based updates to support setting fields to zero values
func (r *ChannelRepository) Update(ctx context.Context, channel *models.Channel) error {
	updates := map[string]interface{}{
		"number":           channel.Number,
		"name":             channel.Name,
		"overlay":          channel.Overlay,
		"overlay_position": channel.OverlayPos,
		"overlay_opacity":  channel.OverlayOpacity,
		"updated_at":       channel.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Model(&models.Channel{}).Where("id = ?", channel.ID.String()).Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update channel: %w", MapGormError(result.Error))
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete deletes a channel by its UUID
func (r *ChannelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id.String()).Delete(&models.Channel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete channel: %w", MapGormError(result.Error))
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
