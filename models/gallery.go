package models

import "time"

// Gallery is an album of up to five images with an optional external link.
type Gallery struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:150;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Link        string    `gorm:"size:512" json:"link"`
	Images      MediaList `gorm:"type:json" json:"images"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
