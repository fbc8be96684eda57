package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/stwalsh4118/rabbitears/internal/models"
)

// ScheduleEntryRepository handles database operations for schedule entries
type ScheduleEntryRepository struct {
	db *DB
}

// NewScheduleEntryRepository creates a new schedule entry repository
func NewScheduleEntryRepository(db *DB) *ScheduleEntryRepository {
	return &ScheduleEntryRepository{db: db}
}

// Create inserts a new schedule entry into the database
func (r *ScheduleEntryRepository) Create(ctx context.Context, entry *models.ScheduleEntry) error {
	result := r.db.WithContext(ctx).Create(entry)
	if result.Error != nil {
		return fmt.Errorf("failed to create schedule entry: %w", MapGormError(result.Error))
	}
	return nil
}

// GetByID retrieves a schedule entry by its UUID
func (r *ScheduleEntryRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ScheduleEntry, error) {
	var entry models.ScheduleEntry
	result := r.db.WithContext(ctx).Where("id = ?", id.String()).First(&entry)
	if result.Error != nil {
		return nil, MapGormError(result.Error)
	}
	return &entry, nil
}

// GetByChannelID retrieves the full weekly grid for a channel in stored
// order. The resolver depends on this ordering as its overlap tie-break.
func (r *ScheduleEntryRepository) GetByChannelID(ctx context.Context, channelID uuid.UUID) ([]*models.ScheduleEntry, error) {
	var entries []*models.ScheduleEntry
	result := r.db.WithContext(ctx).
		Where("channel_id = ?", channelID.String()).
		Order("sort_order ASC, created_at ASC").
		Find(&entries)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to get schedule entries by channel: %w", MapGormError(result.Error))
	}
	return entries, nil
}

// Update updates an existing schedule entry
func (r *ScheduleEntryRepository) Update(ctx context.Context, entry *models.ScheduleEntry) error {
	updates := map[string]interface{}{
		"day_of_week":        entry.DayOfWeek,
		"start_time":         entry.StartTime,
		"end_time":           entry.EndTime,
		"media_id":           entry.MediaID.String(),
		"media_type":         entry.MediaType,
		"runtime":            entry.Runtime,
		"occurrence":         entry.Occurrence,
		"sort_order":         entry.Order,
		"repeat":             entry.Repeat,
		"filler_source":      entry.FillerSource,
		"fill_style":         entry.FillStyle,
		"follow_up_media_id": entry.FollowUpMediaID,
	}

	result := r.db.WithContext(ctx).Model(&models.ScheduleEntry{}).Where("id = ?", entry.ID.String()).Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update schedule entry: %w", MapGormError(result.Error))
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete deletes a schedule entry by its UUID
func (r *ScheduleEntryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id.String()).Delete(&models.ScheduleEntry{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete schedule entry: %w", MapGormError(result.Error))
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByChannelID removes a channel's entire grid (used when a channel is deleted)
func (r *ScheduleEntryRepository) DeleteByChannelID(ctx context.Context, channelID uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("channel_id = ?", channelID.String()).Delete(&models.ScheduleEntry{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete schedule entries: %w", MapGormError(result.Error))
	}
	return nil
}
