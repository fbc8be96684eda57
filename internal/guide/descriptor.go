// Package guide resolves a schedule entry's media reference into a concrete
// playable descriptor: title and episode display fields, file path, break
// timecodes, and commercial category policy.
package guide

import (
	"github.com/google/uuid"

	"github.com/stwalsh4118/rabbitears/internal/models"
)

// Descriptor is the resolved, playable unit for the entry currently on the
// air. Start and end times are copied from the schedule entry, not from the
// media item, which carries no grid placement of its own. Never persisted.
type Descriptor struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	EpisodeTitle string    `json:"episode_title,omitempty"`
	Type         string    `json:"type"`
	StartTime    string    `json:"start_time"`
	EndTime      string    `json:"end_time"`
	FilePath     string    `json:"file_path"`
	Breaks       string    `json:"breaks"`
	Allowed      []string  `json:"allowed_commercials,omitempty"`
	Excluded     []string  `json:"excluded_commercials,omitempty"`
	BlockName    string    `json:"block_name,omitempty"`
	MarathonName string    `json:"marathon_name,omitempty"`
	OverlayPos   string    `json:"overlay_position,omitempty"`
}

// HasFile reports whether the descriptor carries a playable path
func (d *Descriptor) HasFile() bool {
	return d != nil && d.FilePath != ""
}

// SameProgram reports whether two descriptors identify the same scheduled
// airing. Playback resets exactly when this changes.
func (d *Descriptor) SameProgram(other *Descriptor) bool {
	if d == nil || other == nil {
		return d == other
	}
	return d.ID == other.ID && d.StartTime == other.StartTime && d.EndTime == other.EndTime
}

// BuildDescriptor maps a flat library item onto the schedule entry that airs
// it. Per-type display fields: TV episodes get the "S{n}E{m}: title" label,
// music videos surface artist/album.
func BuildDescriptor(entry *models.ScheduleEntry, media *models.Media) *Descriptor {
	d := &Descriptor{
		ID:        media.ID,
		Title:     media.Title,
		Type:      media.Type,
		StartTime: entry.StartTime,
		EndTime:   entry.EndTime,
		FilePath:  media.FilePath,
		Breaks:    media.Breaks,
		Allowed:   models.SplitCategories(media.AllowedAds),
		Excluded:  models.SplitCategories(media.ExcludedAds),
	}

	if media.OverlayPos != nil && *media.OverlayPos != "" {
		d.OverlayPos = *media.OverlayPos
	}

	switch media.Type {
	case models.MediaTypeTVShow:
		if media.ShowName != nil && *media.ShowName != "" {
			d.Title = *media.ShowName
		}
		d.EpisodeTitle = media.EpisodeLabel()
	case models.MediaTypeMusicVideo:
		if media.Artist != nil && *media.Artist != "" {
			d.Title = *media.Artist
		}
		episode := media.Title
		if media.Album != nil && *media.Album != "" {
			episode = media.Title + " - " + *media.Album
		}
		d.EpisodeTitle = episode
	}

	return d
}

// BuildComposite synthesizes a descriptor for a block or marathon entry.
// Display fields are borrowed from the first ordered child; genuine
// child-by-child playback is not wired through the grid, so the descriptor
// carries no file of its own (surfaces as the no-file display state).
func BuildComposite(entry *models.ScheduleEntry, block *models.Block, first *models.Media) *Descriptor {
	d := &Descriptor{
		ID:        block.ID,
		Title:     block.Name,
		Type:      entry.MediaType,
		StartTime: entry.StartTime,
		EndTime:   entry.EndTime,
	}

	if first != nil {
		d.Title = first.Title
		if first.Type == models.MediaTypeTVShow {
			if first.ShowName != nil && *first.ShowName != "" {
				d.Title = *first.ShowName
			}
			d.EpisodeTitle = first.EpisodeLabel()
		}
	}

	switch block.Kind {
	case models.MediaTypeMarathon:
		d.MarathonName = block.Name
	default:
		d.BlockName = block.Name
	}

	return d
}
