package models

import (
	"time"
)

// Event is a local mirror of an externally-sourced event. Rows are created
// lazily on the first save and never updated or deleted.
type Event struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	APIEventID string    `json:"api_event_id" gorm:"uniqueIndex;size:200;not null"`
	Name       string    `json:"name" gorm:"size:200;not null"`
	Location   string    `json:"location" gorm:"size:200"`
	Date       time.Time `json:"date" gorm:"not null"`
	Category   string    `json:"category" gorm:"size:100"`
	ImageURL   string    `json:"image_url" gorm:"size:500"`
	CreatedAt  time.Time `json:"created_at"`
}

// SavedEvent bookmarks an Event for a User. The composite unique index
// backs the at-most-once save guarantee under concurrent requests.
type SavedEvent struct {
	ID      uint  `json:"id" gorm:"primaryKey"`
	UserID  uint  `json:"user_id" gorm:"not null;uniqueIndex:idx_saved_events_user_event"`
	EventID uint  `json:"event_id" gorm:"not null;uniqueIndex:idx_saved_events_user_event"`
	Event   Event `json:"event" gorm:"foreignKey:EventID"`
}

type SavedEventResponse struct {
	SavedEventID uint   `json:"saved_event_id"`
	Name         string `json:"name"`
	Location     string `json:"location"`
	Date         string `json:"date"`
	ImageURL     string `json:"image_url,omitempty"`
}
