package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Media represents a library item: movie, TV episode, music video, filler,
// podcast episode, or livestream. The per-type optional columns stay nil for
// types they do not apply to.
type Media struct {
	ID           uuid.UUID `json:"id" gorm:"type:text;primaryKey;column:id"`
	Title        string    `json:"title" gorm:"type:text;not null;column:title" validate:"required"`
	Type         string    `json:"type" gorm:"type:text;not null;column:type" validate:"required"`
	FilePath     string    `json:"file_path" gorm:"type:text;column:file_path"`
	Breaks       string    `json:"breaks" gorm:"type:text;column:breaks"` // raw comma-separated timecodes
	Category     *string   `json:"category,omitempty" gorm:"type:text;column:category"`
	ShowName     *string   `json:"show_name,omitempty" gorm:"type:text;column:show_name"`
	Season       *int      `json:"season,omitempty" gorm:"type:integer;column:season"`
	Episode      *int      `json:"episode,omitempty" gorm:"type:integer;column:episode"`
	EpisodeTitle *string   `json:"episode_title,omitempty" gorm:"type:text;column:episode_title"`
	Artist       *string   `json:"artist,omitempty" gorm:"type:text;column:artist"`
	Album        *string   `json:"album,omitempty" gorm:"type:text;column:album"`
	Runtime      int       `json:"runtime" gorm:"type:integer;default:0;column:runtime"` // minutes
	AllowedAds   string    `json:"allowed_commercials" gorm:"type:text;column:allowed_commercials"`   // comma-separated categories
	ExcludedAds  string    `json:"excluded_commercials" gorm:"type:text;column:excluded_commercials"` // comma-separated categories
	OverlayPos   *string   `json:"overlay_position,omitempty" gorm:"type:text;column:overlay_position"`
	CreatedAt    time.Time `json:"created_at" gorm:"type:datetime;default:CURRENT_TIMESTAMP;column:created_at"`
}

// TableName overrides the default pluralization ("medias")
func (Media) TableName() string {
	return "media"
}

// SplitCategories splits a comma-separated category list, trimming whitespace
// and dropping empties
func SplitCategories(text string) []string {
	out := make([]string, 0)
	for _, part := range strings.Split(text, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// NewMedia creates a new Media with generated UUID and timestamp
func NewMedia(mediaType, title, filePath string) *Media {
	return &Media{
		ID:        uuid.New(),
		Title:     title,
		Type:      mediaType,
		FilePath:  filePath,
		CreatedAt: time.Now().UTC(),
	}
}

// EpisodeLabel returns the "S{n}E{m}: title" display string for TV episodes.
// Returns the empty string when season/episode metadata is absent.
func (m *Media) EpisodeLabel() string {
	if m.Season == nil || m.Episode == nil {
		return ""
	}
	label := fmt.Sprintf("S%dE%d", *m.Season, *m.Episode)
	if m.EpisodeTitle != nil && *m.EpisodeTitle != "" {
		label = fmt.Sprintf("%s: %s", label, *m.EpisodeTitle)
	}
	return label
}

// CategoryName returns the commercial category, blank meaning universal
func (m *Media) CategoryName() string {
	if m.Category == nil {
		return ""
	}
	return *m.Category
}
