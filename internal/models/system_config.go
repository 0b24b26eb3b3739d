package models

// SystemConfig is a singleton row, read and updated by fixed id 1.
const SystemConfigID = 1

type SystemConfig struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// "10:00 AM - 8:00 PM" style open/close pair.
	SalonHours          string `gorm:"size:50;not null" json:"salon_hours"`
	MaxDailyBookings    int    `gorm:"not null" json:"max_daily_bookings"`
	MaintenanceSchedule string `gorm:"size:255;not null" json:"maintenance_schedule"`
}

func (SystemConfig) TableName() string {
	return "system_config"
}
