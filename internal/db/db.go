package db

import (
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/princessangelsalon/salon-api/internal/config"
	"github.com/princessangelsalon/salon-api/internal/logger"
	"github.com/princessangelsalon/salon-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		logger.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Stylist{},
		&models.StylistAvailability{},
		&models.Service{},
		&models.Appointment{},
		&models.Feedback{},
		&models.Notification{},
		&models.OtpRecord{},
		&models.SecuritySetting{},
		&models.SystemConfig{},
		&models.AuditLog{},
	); err != nil {
		logger.Fatalf("failed to migrate: %v", err)
	}

	seed(db)

	return db
}

// seed writes the rows the application assumes exist: the singleton system
// config, the two-factor switch and exactly one superadmin account.
func seed(db *gorm.DB) {
	var count int64

	db.Model(&models.SystemConfig{}).Count(&count)
	if count == 0 {
		db.Create(&models.SystemConfig{
			ID:                  models.SystemConfigID,
			SalonHours:          "10:00 AM - 8:00 PM",
			MaxDailyBookings:    40,
			MaintenanceSchedule: "Sundays 9:00 PM",
		})
	}

	db.Model(&models.SecuritySetting{}).
		Where("name = ?", models.TwoFactorSetting).
		Count(&count)
	if count == 0 {
		db.Create(&models.SecuritySetting{
			Name:    models.TwoFactorSetting,
			Enabled: false,
		})
	}

	db.Model(&models.User{}).
		Where("role = ?", models.RoleSuperadmin).
		Count(&count)
	if count == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte("mypassword123"), bcrypt.DefaultCost)
		if err != nil {
			logger.Fatalf("failed to hash superadmin password: %v", err)
		}

		db.Create(&models.User{
			Name:         "Princess Angel",
			Email:        "owner@princesssalon.com",
			Phone:        "09123456789",
			PasswordHash: string(hash),
			Role:         models.RoleSuperadmin,
		})

		logger.Warn().Msg("seeded default superadmin, change its password")
	}
}
