package booking

import (
	"context"

	"github.com/princessangelsalon/salon-api/internal/models"
)

// Repository is the narrow store surface the booking usecases need. All
// reads used by Validate happen through it so the usecases are testable
// without a live database.
type Repository interface {
	// GetConfig returns the singleton system configuration, nil when the
	// row is missing.
	GetConfig(ctx context.Context) (*models.SystemConfig, error)

	// CountActiveForDate counts non-cancelled appointments on a date.
	// Inside Transact the count takes a row lock so the cap check and the
	// insert serialize against concurrent bookings.
	CountActiveForDate(ctx context.Context, date string) (int64, error)

	CreateAppointment(ctx context.Context, ap *models.Appointment) error

	// GetAppointment returns nil when no row matches.
	GetAppointment(ctx context.Context, id uint) (*models.Appointment, error)

	UpdateAppointment(ctx context.Context, ap *models.Appointment) error

	// Transact runs fn against a repository bound to one transaction.
	Transact(ctx context.Context, fn func(Repository) error) error
}
