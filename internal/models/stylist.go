package models

import "time"

type Stylist struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name      string `gorm:"size:100;not null" json:"name"`
	Specialty string `gorm:"size:100;not null" json:"specialty"`
	Image     string `gorm:"size:255" json:"image"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StylistAvailability is the weekly slot grid admins maintain per stylist.
type StylistAvailability struct {
	ID uint `gorm:"primaryKey" json:"id"`

	StylistID uint    `gorm:"not null;index" json:"stylist_id"`
	Stylist   Stylist `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Day      string `gorm:"size:20;not null" json:"day"`
	TimeSlot string `gorm:"size:50;not null" json:"time_slot"`
	Status   string `gorm:"size:20;not null;default:'Available'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (StylistAvailability) TableName() string {
	return "stylist_availability"
}
