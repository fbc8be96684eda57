package models

import (
	"time"

	"github.com/google/uuid"
)

// ScheduleEntry is one row of a channel's recurring weekly program grid.
// StartTime and EndTime are wall-clock strings in "h:mm AM/PM" form, exactly
// as entered in the scheduler UI.
type ScheduleEntry struct {
	ID              uuid.UUID  `json:"id" gorm:"type:text;primaryKey;column:id"`
	ChannelID       uuid.UUID  `json:"channel_id" gorm:"type:text;not null;index;column:channel_id" validate:"required"`
	DayOfWeek       int        `json:"day_of_week" gorm:"type:integer;not null;column:day_of_week" validate:"gte=0,lte=6"` // 0=Sunday
	StartTime       string     `json:"start_time" gorm:"type:text;not null;column:start_time" validate:"required"`
	EndTime         string     `json:"end_time" gorm:"type:text;not null;column:end_time" validate:"required"`
	MediaID         uuid.UUID  `json:"media_id" gorm:"type:text;not null;column:media_id" validate:"required"`
	MediaType       string     `json:"media_type" gorm:"type:text;not null;column:media_type" validate:"required"`
	Runtime         int        `json:"runtime" gorm:"type:integer;default:0;column:runtime"` // minutes
	Occurrence      string     `json:"occurrence" gorm:"type:text;default:'weekly';column:occurrence"`
	Order           int        `json:"order" gorm:"type:integer;default:0;column:sort_order"`
	Repeat          bool       `json:"repeat" gorm:"type:integer;default:0;column:repeat"`
	FillerSource    string     `json:"filler_source" gorm:"type:text;column:filler_source"`
	FillStyle       string     `json:"fill_style" gorm:"type:text;column:fill_style"`
	FollowUpMediaID *uuid.UUID `json:"follow_up_media_id,omitempty" gorm:"type:text;column:follow_up_media_id"`
	CreatedAt       time.Time  `json:"created_at" gorm:"type:datetime;default:CURRENT_TIMESTAMP;column:created_at"`
}

// NewScheduleEntry creates a new ScheduleEntry with generated UUID and timestamp
func NewScheduleEntry(channelID, mediaID uuid.UUID, mediaType string, dayOfWeek int, startTime, endTime string) *ScheduleEntry {
	return &ScheduleEntry{
		ID:         uuid.New(),
		ChannelID:  channelID,
		MediaID:    mediaID,
		MediaType:  mediaType,
		DayOfWeek:  dayOfWeek,
		StartTime:  startTime,
		EndTime:    endTime,
		Occurrence: OccurrenceWeekly,
		CreatedAt:  time.Now().UTC(),
	}
}

// ActiveOn reports whether this entry's occurrence pattern covers the given
// day of week. Weekday entries cover Monday through Friday regardless of the
// stored DayOfWeek value.
func (e *ScheduleEntry) ActiveOn(dayOfWeek int) bool {
	if e.Occurrence == OccurrenceWeekdays {
		return dayOfWeek >= 1 && dayOfWeek <= 5
	}
	return e.DayOfWeek == dayOfWeek
}
