package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/stwalsh4118/rabbitears/internal/models"
)

// MediaRepository handles database operations for library media
type MediaRepository struct {
	db *DB
}

// NewMediaRepository creates a new media repository
func NewMediaRepository(db *DB) *MediaRepository {
	return &MediaRepository{db: db}
}

// Create inserts a new media item into the database
func (r *MediaRepository) Create(ctx context.Context, media *models.Media) error {
	result := r.db.WithContext(ctx).Create(media)
	if result.Error != nil {
		return fmt.Errorf("failed to create media: %w", MapGormError(result.Error))
	}
	return nil
}

// GetByID retrieves a media item by its UUID
func (r *MediaRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Media, error) {
	var media models.Media
	result := r.db.WithContext(ctx).Where("id = ?", id.String()).First(&media)
	if result.Error != nil {
		return nil, MapGormError(result.Error)
	}
	return &media, nil
}

// List retrieves all media items with pagination, newest first
func (r *MediaRepository) List(ctx context.Context, limit, offset int) ([]*models.Media, error) {
	var mediaList []*models.Media
	query := r.db.WithContext(ctx).Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	result := query.Find(&mediaList)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list media: %w", MapGormError(result.Error))
	}
	return mediaList, nil
}

// ListByType retrieves media items of a single library type
func (r *MediaRepository) ListByType(ctx context.Context, mediaType string) ([]*models.Media, error) {
	var mediaList []*models.Media
	result := r.db.WithContext(ctx).
		Where("type = ?", mediaType).
		Order("title ASC").
		Find(&mediaList)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list media by type: %w", MapGormError(result.Error))
	}
	return mediaList, nil
}

// ListFiller retrieves the global commercial/filler pool
func (r *MediaRepository) ListFiller(ctx context.Context) ([]*models.Media, error) {
	return r.ListByType(ctx, models.MediaTypeFiller)
}

// ListEpisodes retrieves a show's episodes ordered by season and episode,
// NULLs sorted last using COALESCE (SQLite sorts NULLs first by default)
func (r *MediaRepository) ListEpisodes(ctx context.Context, showName string) ([]*models.Media, error) {
	var mediaList []*models.Media
	result := r.db.WithContext(ctx).
		Where("type = ? AND show_name = ?", models.MediaTypeTVShow, showName).
		Order("COALESCE(season, 9999999) ASC, COALESCE(episode, 9999999) ASC").
		Find(&mediaList)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list episodes: %w", MapGormError(result.Error))
	}
	return mediaList, nil
}

// Update updates an existing media item
// Note: Uses map-based updates to support setting fields to zero values
func (r *MediaRepository) Update(ctx context.Context, media *models.Media) error {
	updates := map[string]interface{}{
		"title":                media.Title,
		"type":                 media.Type,
		"file_path":            media.FilePath,
		"breaks":               media.Breaks,
		"category":             media.Category,
		"show_name":            media.ShowName,
		"season":               media.Season,
		"episode":              media.Episode,
		"episode_title":        media.EpisodeTitle,
		"artist":               media.Artist,
		"album":                media.Album,
		"runtime":              media.Runtime,
		"allowed_commercials":  media.AllowedAds,
		"excluded_commercials": media.ExcludedAds,
		"overlay_position":     media.OverlayPos,
	}

	result := r.db.WithContext(ctx).Model(&models.Media{}).Where("id = ?", media.ID.String()).Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update media: %w", MapGormError(result.Error))
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete deletes a media item by its UUID
func (r *MediaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id.String()).Delete(&models.Media{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete media: %w", MapGormError(result.Error))
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
