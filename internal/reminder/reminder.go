package reminder

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	booking "github.com/princessangelsalon/salon-api/internal/domain/booking"
	"github.com/princessangelsalon/salon-api/internal/logger"
	"github.com/princessangelsalon/salon-api/internal/models"
	"github.com/princessangelsalon/salon-api/internal/notify"
	"github.com/princessangelsalon/salon-api/internal/timezone"
)

// Scheduler sweeps tomorrow's appointments on a cron spec and reminds
// their owners by in-app notification and SMS.
type Scheduler struct {
	db   *gorm.DB
	sms  notify.SMSSender
	cron *cron.Cron
	spec string
}

func NewScheduler(db *gorm.DB, sms notify.SMSSender, spec string) *Scheduler {
	return &Scheduler{
		db:   db,
		sms:  sms,
		cron: cron.New(cron.WithLocation(timezone.Location())),
		spec: spec,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.spec, func() {
		if err := s.Sweep(context.Background()); err != nil {
			logger.Error().Err(err).Msg("reminder sweep failed")
		}
	}); err != nil {
		return fmt.Errorf("reminder cron spec %q: %w", s.spec, err)
	}

	s.cron.Start()
	logger.Info().Str("spec", s.spec).Msg("reminder scheduler started")
	return nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

// Sweep reminds every owner of a live appointment scheduled for tomorrow.
// One failed SMS does not stop the rest of the batch.
func (s *Scheduler) Sweep(ctx context.Context) error {
	tomorrow := timezone.Now().AddDate(0, 0, 1).Format("2006-01-02")

	var appointments []models.Appointment
	err := s.db.WithContext(ctx).
		Preload("User").
		Where("date = ? AND status <> ?", tomorrow, string(booking.StatusCancelled)).
		Find(&appointments).Error
	if err != nil {
		return err
	}

	for _, ap := range appointments {
		msg := fmt.Sprintf(
			"Reminder: your %s appointment at Princess Angel Salon is tomorrow (%s) at %s.",
			ap.Service, ap.Date, ap.Time,
		)

		notification := models.Notification{
			UserID:  &ap.UserID,
			Message: msg,
			Type:    "info",
		}
		if err := s.db.WithContext(ctx).Create(&notification).Error; err != nil {
			logger.Error().Err(err).Uint("appointment_id", ap.ID).Msg("reminder notification write failed")
			continue
		}

		if s.sms != nil && ap.User.Phone != "" {
			if err := s.sms.Send(ap.User.Phone, msg); err != nil {
				logger.Error().Err(err).Uint("appointment_id", ap.ID).Msg("reminder sms failed")
			}
		}
	}

	logger.Info().Str("date", tomorrow).Int("count", len(appointments)).Msg("reminder sweep done")
	return nil
}
