package models

import (
	"time"
)

// Settings represents viewer-facing display configuration.
// Singleton table with only one row (ID=1).
type Settings struct {
	ID                  int       `json:"id" gorm:"type:integer;primaryKey;default:1;column:id"`
	ShowChannelInfo     bool      `json:"show_channel_info" gorm:"type:integer;default:1;column:show_channel_info"`
	ChannelInfoDuration int       `json:"channel_info_duration" gorm:"type:integer;default:3;column:channel_info_duration" validate:"gte=1"` // seconds
	ShowMediaInfo       bool      `json:"show_media_info" gorm:"type:integer;default:1;column:show_media_info"`
	MediaInfoDuration   int       `json:"media_info_duration" gorm:"type:integer;default:5;column:media_info_duration" validate:"gte=1"` // seconds
	UpdatedAt           time.Time `json:"updated_at" gorm:"type:datetime;default:CURRENT_TIMESTAMP;column:updated_at"`
}

// DefaultSettings returns settings with default values
func DefaultSettings() *Settings {
	return &Settings{
		ID:                  1,
		ShowChannelInfo:     true,
		ChannelInfoDuration: 3,
		ShowMediaInfo:       true,
		MediaInfoDuration:   5,
		UpdatedAt:           time.Now().UTC(),
	}
}
