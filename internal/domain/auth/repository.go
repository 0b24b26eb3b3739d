package auth

import (
	"context"
	"time"

	"github.com/princessangelsalon/salon-api/internal/models"
)

// Repository is the store surface of the authentication flows. Lookups
// return (nil, nil) when no row matches so callers branch on presence
// without touching driver errors.
type Repository interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
	CreateUser(ctx context.Context, u *models.User) error
	UpdateUserPassword(ctx context.Context, userID uint, passwordHash string) error

	// TwoFactorEnabled reads the "Two-Factor Authentication" security
	// setting; a missing row reads as disabled.
	TwoFactorEnabled(ctx context.Context) (bool, error)

	// UpsertOtp atomically writes the user's single OTP slot: inserts when
	// none exists, otherwise replaces code and creation timestamp.
	UpsertOtp(ctx context.Context, userID uint, code string, createdAt time.Time) error

	// GetOtpByCode returns the user's latest record with exactly this code,
	// nil when none matches.
	GetOtpByCode(ctx context.Context, userID uint, code string) (*models.OtpRecord, error)

	DeleteOtpsForUser(ctx context.Context, userID uint) error
}
