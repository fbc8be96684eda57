package models

import (
	"time"

	"github.com/google/uuid"
)

// Channel represents a virtual TV channel entity
type Channel struct {
	ID             uuid.UUID `json:"id" gorm:"type:text;primaryKey;column:id"`
	Number         int       `json:"number" gorm:"type:integer;not null;uniqueIndex;column:number" validate:"required,gte=1"`
	Name           string    `json:"name" gorm:"type:text;not null;column:name" validate:"required,min=1,max=255"`
	Overlay        *string   `json:"overlay,omitempty" gorm:"type:text;column:overlay"`
	OverlayPos     string    `json:"overlay_position" gorm:"type:text;default:'bottom-right';column:overlay_position"`
	OverlayOpacity float64   `json:"overlay_opacity" gorm:"type:real;default:1.0;column:overlay_opacity"`
	CreatedAt      time.Time `json:"created_at" gorm:"type:datetime;default:CURRENT_TIMESTAMP;column:created_at"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"type:datetime;default:CURRENT_TIMESTAMP;column:updated_at"`
}

// NewChannel creates a new Channel with generated UUID and timestamps
func NewChannel(number int, name string) *Channel {
	now := time.Now().UTC()
	return &Channel{
		ID:             uuid.New(),
		Number:         number,
		Name:           name,
		OverlayPos:     OverlayBottomRight,
		OverlayOpacity: 1.0,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
