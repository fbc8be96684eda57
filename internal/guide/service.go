package guide

import (
	"context"
	"fmt"

	"github.com/stwalsh4118/rabbitears/internal/db"
	"github.com/stwalsh4118/rabbitears/internal/logger"
	"github.com/stwalsh4118/rabbitears/internal/models"
)

// Service resolves schedule entries against the stored media library
type Service struct {
	repos *db.Repositories
}

// NewService creates a new guide service instance
func NewService(repos *db.Repositories) *Service {
	return &Service{
		repos: repos,
	}
}

// Resolve looks up the entry's media reference across the flat library and,
// failing that, the blocks/marathons collection. A miss everywhere returns
// (nil, nil): the channel shows static rather than erroring out.
func (s *Service) Resolve(ctx context.Context, entry *models.ScheduleEntry) (*Descriptor, error) {
	media, err := s.repos.Media.GetByID(ctx, entry.MediaID)
	if err == nil {
		return BuildDescriptor(entry, media), nil
	}
	if !db.IsNotFound(err) {
		return nil, fmt.Errorf("failed to resolve media: %w", err)
	}

	block, err := s.repos.Blocks.GetByID(ctx, entry.MediaID)
	if err != nil {
		if db.IsNotFound(err) {
			logger.Log.Warn().
				Str("media_id", entry.MediaID.String()).
				Str("media_type", entry.MediaType).
				Msg("Schedule entry references unknown media")
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve block: %w", err)
	}

	items, err := s.repos.BlockItems.GetWithMedia(ctx, block.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load block items: %w", err)
	}

	var first *models.Media
	for _, item := range items {
		if item.Media != nil {
			first = item.Media
			break
		}
	}

	return BuildComposite(entry, block, first), nil
}
