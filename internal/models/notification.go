package models

import "time"

// Notification rows with a NULL UserID are global and visible to everyone.
type Notification struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID  *uint  `gorm:"index" json:"user_id"`
	Message string `gorm:"size:500;not null" json:"message"`
	Type    string `gorm:"size:20;default:'success'" json:"type"`
	IsRead  bool   `gorm:"default:false" json:"is_read"`

	CreatedAt time.Time `json:"created_at"`
}
