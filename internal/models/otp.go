package models

import "time"

// OtpRecord holds the single live OTP slot per user. The unique index on
// UserID is what makes issue-or-replace an atomic upsert.
type OtpRecord struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	Code   string `gorm:"column:otp;size:10;not null" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

func (OtpRecord) TableName() string {
	return "otp"
}
