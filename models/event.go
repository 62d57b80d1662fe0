package models

import "time"

// Event is a community happening with up to ten images. Unlike blogs and
// galleries, images are optional on create.
type Event struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"size:150;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Location    string     `gorm:"size:255" json:"location"`
	EventDate   *time.Time `json:"event_date"`
	Featured    bool       `gorm:"default:false;index" json:"featured"`
	Slug        string     `gorm:"size:191;uniqueIndex" json:"slug"`
	Images      MediaList  `gorm:"type:json" json:"images"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
