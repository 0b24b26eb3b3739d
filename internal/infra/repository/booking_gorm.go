package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/princessangelsalon/salon-api/internal/domain/booking"
	"github.com/princessangelsalon/salon-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

var _ domain.Repository = (*BookingGormRepository)(nil)

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

func (r *BookingGormRepository) GetConfig(ctx context.Context) (*models.SystemConfig, error) {
	var cfg models.SystemConfig
	err := r.db.WithContext(ctx).First(&cfg, models.SystemConfigID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// CountActiveForDate counts every non-cancelled appointment on the date.
// The count runs under a transaction-scoped advisory lock keyed by the
// date, so two bookings racing for the same date serialize. Row locks
// cannot serve here: Postgres rejects FOR UPDATE on aggregate queries and
// a row lock would not cover the row a concurrent insert is about to add.
func (r *BookingGormRepository) CountActiveForDate(ctx context.Context, date string) (int64, error) {
	err := r.db.WithContext(ctx).
		Exec("SELECT pg_advisory_xact_lock(hashtext(?))", date).Error
	if err != nil {
		return 0, err
	}

	var count int64
	err = r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("date = ? AND status <> ?", date, string(domain.StatusCancelled)).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *BookingGormRepository) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *BookingGormRepository) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	var ap models.Appointment
	err := r.db.WithContext(ctx).First(&ap, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *BookingGormRepository) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// Transact runs fn against a repository bound to one database transaction.
func (r *BookingGormRepository) Transact(ctx context.Context, fn func(domain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&BookingGormRepository{db: tx})
	})
}
