package models

import "time"

// TeamMember carries exactly one portrait image; updates replace it.
type TeamMember struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:150;not null" json:"name"`
	Designation string    `gorm:"size:150;not null" json:"designation"`
	Image       MediaList `gorm:"type:json" json:"image"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
