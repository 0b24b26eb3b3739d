package models

import "time"

type Feedback struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"not null;index" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	StylistID   *uint  `json:"stylist_id"`
	StylistName string `gorm:"column:stylist;size:100" json:"stylist"`

	Comment string `gorm:"size:500;not null" json:"comment"`
	Rating  int    `gorm:"not null;check:rating BETWEEN 1 AND 5" json:"rating"`

	CreatedAt time.Time `json:"created_at"`
}

func (Feedback) TableName() string {
	return "feedback"
}
