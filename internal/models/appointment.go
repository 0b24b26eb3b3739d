package models

import "time"

// Appointment keeps date and time as the wire strings ("2006-01-02",
// "15:04") so stored values round-trip unchanged through the API.
type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"not null;index" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Service string `gorm:"size:100;not null" json:"service"`

	// A booking may reference a stylist entity or carry a free-text name
	// when none was chosen.
	StylistID   *uint   `json:"stylist_id"`
	StylistRef  Stylist `gorm:"foreignKey:StylistID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`
	StylistName string  `gorm:"column:stylist;size:100" json:"stylist"`

	Date string `gorm:"size:10;not null;index" json:"date"`
	Time string `gorm:"size:5;not null" json:"time"`

	Status string `gorm:"size:20;not null;default:'Pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
