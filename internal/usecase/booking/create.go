package booking

import (
	"context"

	"github.com/princessangelsalon/salon-api/internal/audit"
	domain "github.com/princessangelsalon/salon-api/internal/domain/booking"
	"github.com/princessangelsalon/salon-api/internal/models"
	"github.com/princessangelsalon/salon-api/internal/timezone"
)

type CreateAppointmentInput struct {
	UserID    uint
	Service   string
	StylistID *uint
	Stylist   string
	Date      string
	Time      string
}

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute validates the requested slot and persists it as Pending. The cap
// count and the insert share one transaction so two requests racing for the
// last slot of a date serialize instead of both passing the check.
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	req := domain.Request{Date: in.Date, Time: in.Time}

	var created *models.Appointment

	err := uc.repo.Transact(ctx, func(r domain.Repository) error {
		cfg, err := r.GetConfig(ctx)
		if err != nil {
			return err
		}

		var count int64
		if cfg != nil && cfg.MaxDailyBookings > 0 {
			if count, err = r.CountActiveForDate(ctx, in.Date); err != nil {
				return err
			}
		}

		if err := domain.Validate(req, cfg, count, timezone.Now()); err != nil {
			return err
		}

		ap := &models.Appointment{
			UserID:      in.UserID,
			Service:     in.Service,
			StylistID:   in.StylistID,
			StylistName: in.Stylist,
			Date:        in.Date,
			Time:        in.Time,
			Status:      string(domain.InitialStatus()),
		}

		if err := r.CreateAppointment(ctx, ap); err != nil {
			return err
		}

		created = ap
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &created.ID,
	})

	return created, nil
}
