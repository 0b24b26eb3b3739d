package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/princessangelsalon/salon-api/internal/domain/auth"
	"github.com/princessangelsalon/salon-api/internal/models"
)

type AuthGormRepository struct {
	db *gorm.DB
}

var _ domain.Repository = (*AuthGormRepository)(nil)

func NewAuthGormRepository(db *gorm.DB) *AuthGormRepository {
	return &AuthGormRepository{db: db}
}

func (r *AuthGormRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *AuthGormRepository) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *AuthGormRepository) CreateUser(ctx context.Context, u *models.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *AuthGormRepository) UpdateUserPassword(ctx context.Context, userID uint, passwordHash string) error {
	return r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Update("password_hash", passwordHash).Error
}

func (r *AuthGormRepository) TwoFactorEnabled(ctx context.Context) (bool, error) {
	var setting models.SecuritySetting
	err := r.db.WithContext(ctx).
		Where("name = ?", models.TwoFactorSetting).
		First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return setting.Enabled, nil
}

// UpsertOtp writes the user's single OTP slot. The unique index on user_id
// turns the insert into a replace when a slot already exists.
func (r *AuthGormRepository) UpsertOtp(ctx context.Context, userID uint, code string, createdAt time.Time) error {
	rec := models.OtpRecord{
		UserID:    userID,
		Code:      code,
		CreatedAt: createdAt,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"otp", "created_at"}),
		}).
		Create(&rec).Error
}

func (r *AuthGormRepository) GetOtpByCode(ctx context.Context, userID uint, code string) (*models.OtpRecord, error) {
	var rec models.OtpRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND otp = ?", userID, code).
		Order("created_at DESC").
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *AuthGormRepository) DeleteOtpsForUser(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.OtpRecord{}).Error
}
