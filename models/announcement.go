package models

import "time"

// Announcement is a plain text notice, addressable by a generated slug.
type Announcement struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:150;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Link        string    `gorm:"size:512" json:"link"`
	Slug        string    `gorm:"size:191;uniqueIndex" json:"slug"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
