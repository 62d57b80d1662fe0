package models

import "time"

// Blog is a long-form article with a cover gallery of up to four images.
type Blog struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Subtitle    string    `gorm:"size:255;not null" json:"subtitle"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Category    string    `gorm:"size:64;not null;index" json:"category"`
	Images      MediaList `gorm:"type:json" json:"images"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
