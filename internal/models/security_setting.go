package models

// TwoFactorSetting is the one setting the login flow reads.
const TwoFactorSetting = "Two-Factor Authentication"

type SecuritySetting struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Enabled bool   `gorm:"not null;default:false" json:"enabled"`
}

func (SecuritySetting) TableName() string {
	return "security_settings"
}
