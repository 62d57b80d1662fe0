package models

import "time"

// Video references a YouTube upload. YouTubeID and ThumbnailURL are derived
// from YouTubeURL at write time, never submitted by clients.
type Video struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"size:150;not null" json:"title"`
	Description  string    `gorm:"type:text" json:"description"`
	YouTubeURL   string    `gorm:"size:512;not null" json:"youtube_url"`
	YouTubeID    string    `gorm:"size:16;index" json:"youtube_id"`
	ThumbnailURL string    `gorm:"size:512" json:"thumbnail_url"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
