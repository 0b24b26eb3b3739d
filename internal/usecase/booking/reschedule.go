package booking

import (
	"context"

	"github.com/princessangelsalon/salon-api/internal/audit"
	domain "github.com/princessangelsalon/salon-api/internal/domain/booking"
	"github.com/princessangelsalon/salon-api/internal/httperr"
	"github.com/princessangelsalon/salon-api/internal/models"
	"github.com/princessangelsalon/salon-api/internal/timezone"
)

type RescheduleAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRescheduleAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute moves an appointment to a new slot. Only the past-time rule is
// re-applied; capacity and salon hours are not re-checked on a move.
func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	date string,
	clock string,
) (*models.Appointment, error) {

	if err := domain.ValidateReschedule(date, clock, timezone.Now()); err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if ap == nil {
		return nil, httperr.NotFound("appointment_not_found", "Appointment not found.")
	}

	ap.Date = date
	ap.Time = clock
	ap.Status = string(domain.StatusRescheduled)

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &ap.UserID,
		Action:   "appointment_rescheduled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
