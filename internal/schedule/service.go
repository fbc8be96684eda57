package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/stwalsh4118/rabbitears/internal/commercials"
	"github.com/stwalsh4118/rabbitears/internal/db"
	"github.com/stwalsh4118/rabbitears/internal/guide"
	"github.com/stwalsh4118/rabbitears/internal/logger"
	"github.com/stwalsh4118/rabbitears/internal/models"
)

// Program is what a tuned channel is showing right now. OffAir means no grid
// entry covers the current moment and the channel displays static; that is a
// valid steady state, not an error.
type Program struct {
	Channel     *models.Channel       `json:"channel"`
	Entry       *models.ScheduleEntry `json:"-"`
	Descriptor  *guide.Descriptor     `json:"descriptor,omitempty"`
	StartOffset time.Duration         `json:"start_offset"`
	OffAir      bool                  `json:"off_air"`
}

// Service resolves "what's on now" for a tuned channel
type Service struct {
	repos *db.Repositories
	guide *guide.Service
}

// NewService creates a new schedule service instance
func NewService(repos *db.Repositories, guideSvc *guide.Service) *Service {
	return &Service{
		repos: repos,
		guide: guideSvc,
	}
}

// NowPlaying resolves the channel at the given tuner number to its current
// program. Callers re-resolve on every channel change and at least once per
// minute so grid boundary crossings are caught promptly.
func (s *Service) NowPlaying(ctx context.Context, channelNumber int, now time.Time) (*Program, error) {
	channel, err := s.repos.Channels.GetByNumber(ctx, channelNumber)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, ErrChannelNotFound
		}
		return nil, fmt.Errorf("failed to get channel: %w", err)
	}

	entries, err := s.repos.ScheduleEntries.GetByChannelID(ctx, channel.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get schedule: %w", err)
	}

	entry := ResolveActiveEntry(entries, now)
	if entry == nil {
		logger.Log.Debug().
			Int("channel", channelNumber).
			Int("entries", len(entries)).
			Msg("No active schedule entry, channel is off air")
		return &Program{Channel: channel, OffAir: true}, nil
	}

	descriptor, err := s.guide.Resolve(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve program media: %w", err)
	}
	if descriptor == nil {
		// Entry points at media that no longer exists; show static
		return &Program{Channel: channel, Entry: entry, OffAir: true}, nil
	}

	offset := StartOffset(entry, now)

	logger.Log.Info().
		Int("channel", channelNumber).
		Str("title", descriptor.Title).
		Str("start", entry.StartTime).
		Str("end", entry.EndTime).
		Dur("start_offset", offset).
		Msg("Resolved current program")

	return &Program{
		Channel:     channel,
		Entry:       entry,
		Descriptor:  descriptor,
		StartOffset: offset,
	}, nil
}

// EligibleCommercials returns the filler pool filtered to the current
// program's category policy. With no descriptor the full pool is returned.
func (s *Service) EligibleCommercials(ctx context.Context, descriptor *guide.Descriptor) ([]*models.Media, error) {
	pool, err := s.repos.Media.ListFiller(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load filler pool: %w", err)
	}
	if descriptor == nil {
		return pool, nil
	}
	return commercials.FilterEligible(pool, descriptor.Allowed, descriptor.Excluded), nil
}
