package models

import (
	"time"

	"github.com/google/uuid"
)

// Block represents a composite programming unit: a recurring block of mixed
// media or a marathon of a single show. Kind is "block" or "marathon".
type Block struct {
	ID        uuid.UUID `json:"id" gorm:"type:text;primaryKey;column:id"`
	Name      string    `json:"name" gorm:"type:text;not null;column:name" validate:"required,min=1,max=255"`
	Kind      string    `json:"kind" gorm:"type:text;not null;column:kind" validate:"required"`
	CreatedAt time.Time `json:"created_at" gorm:"type:datetime;default:CURRENT_TIMESTAMP;column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"type:datetime;default:CURRENT_TIMESTAMP;column:updated_at"`
}

// NewBlock creates a new Block with generated UUID and timestamps
func NewBlock(name, kind string) *Block {
	now := time.Now().UTC()
	return &Block{
		ID:        uuid.New(),
		Name:      name,
		Kind:      kind,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// BlockItem represents one ordered child of a block or marathon
type BlockItem struct {
	ID        uuid.UUID `json:"id" gorm:"type:text;primaryKey;column:id"`
	BlockID   uuid.UUID `json:"block_id" gorm:"type:text;not null;index;column:block_id" validate:"required"`
	MediaID   uuid.UUID `json:"media_id" gorm:"type:text;not null;column:media_id" validate:"required"`
	Position  int       `json:"position" gorm:"type:integer;not null;column:position" validate:"gte=0"`
	CreatedAt time.Time `json:"created_at" gorm:"type:datetime;default:CURRENT_TIMESTAMP;column:created_at"`

	// Populated by joins, not stored in database
	Media *Media `json:"media,omitempty" gorm:"-"`
}

// NewBlockItem creates a new BlockItem with generated UUID and timestamp
func NewBlockItem(blockID, mediaID uuid.UUID, position int) *BlockItem {
	return &BlockItem{
		ID:        uuid.New(),
		BlockID:   blockID,
		MediaID:   mediaID,
		Position:  position,
		CreatedAt: time.Now().UTC(),
	}
}
