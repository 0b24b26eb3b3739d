package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/princessangelsalon/salon-api/internal/httpresp"
	"github.com/princessangelsalon/salon-api/internal/models"
	"github.com/princessangelsalon/salon-api/internal/validators"
)

type SuperadminHandler struct {
	db *gorm.DB
}

func NewSuperadminHandler(db *gorm.DB) *SuperadminHandler {
	return &SuperadminHandler{db: db}
}

// --------- Requests ---------

type AdminRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SecuritySettingRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

type SystemConfigRequest struct {
	SalonHours          string `json:"salon_hours" binding:"required"`
	MaxDailyBookings    int    `json:"max_daily_bookings"`
	MaintenanceSchedule string `json:"maintenance_schedule"`
}

// --------- Overview ---------

func (h *SuperadminHandler) Overview(c *gin.Context) {
	var admins, customers, stylists, appointments int64

	if err := h.db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&admins).Error; err != nil {
		httpresp.Internal(c, "Failed to fetch overview")
		return
	}
	if err := h.db.Model(&models.User{}).Where("role = ?", models.RoleUser).Count(&customers).Error; err != nil {
		httpresp.Internal(c, "Failed to fetch overview")
		return
	}
	if err := h.db.Model(&models.Stylist{}).Count(&stylists).Error; err != nil {
		httpresp.Internal(c, "Failed to fetch overview")
		return
	}
	if err := h.db.Model(&models.Appointment{}).Count(&appointments).Error; err != nil {
		httpresp.Internal(c, "Failed to fetch overview")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"admins":       admins,
		"customers":    customers,
		"stylists":     stylists,
		"appointments": appointments,
		"total":        admins + customers + stylists + appointments,
	})
}

// --------- Admin accounts ---------

func (h *SuperadminHandler) ListAdmins(c *gin.Context) {
	var admins []models.User
	err := h.db.
		Where("role = ?", models.RoleAdmin).
		Find(&admins).Error
	if err != nil {
		httpresp.Internal(c, "Failed to fetch admins")
		return
	}

	c.JSON(http.StatusOK, admins)
}

func (h *SuperadminHandler) CreateAdmin(c *gin.Context) {
	var req AdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpresp.BadRequest(c, "Invalid request")
		return
	}

	if msg, ok := validateAdminInput(req); !ok {
		httpresp.BadRequest(c, msg)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httpresp.Internal(c, "Server error")
		return
	}

	admin := models.User{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        validators.CleanPhone(req.Phone),
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}
	if err := h.db.Create(&admin).Error; err != nil {
		httpresp.Internal(c, "Server error")
		return
	}

	httpresp.OK(c, gin.H{
		"message": "Admin added successfully",
		"admin":   admin,
	})
}

func (h *SuperadminHandler) UpdateAdmin(c *gin.Context) {
	var req AdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpresp.Fail(c, "Error updating admin")
		return
	}

	if !validators.IsStrongPassword(req.Password) {
		httpresp.Fail(c, "Password must be at least 8 characters long and include uppercase, lowercase, number, and special character")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httpresp.Fail(c, "Error updating admin")
		return
	}

	res := h.db.Model(&models.User{}).
		Where("id = ? AND role = ?", c.Param("id"), models.RoleAdmin).
		Updates(map[string]interface{}{
			"name":          req.Name,
			"email":         req.Email,
			"phone":         validators.CleanPhone(req.Phone),
			"password_hash": string(hash),
		})
	if res.Error != nil {
		httpresp.Fail(c, "Error updating admin")
		return
	}
	if res.RowsAffected == 0 {
		httpresp.Fail(c, "Admin not found or no changes made")
		return
	}

	httpresp.OK(c, gin.H{"message": "Admin updated successfully"})
}

func (h *SuperadminHandler) DeleteAdmin(c *gin.Context) {
	res := h.db.
		Where("id = ? AND role = ?", c.Param("id"), models.RoleAdmin).
		Delete(&models.User{})
	if res.Error != nil {
		httpresp.Internal(c, "Failed to delete admin")
		return
	}

	httpresp.OK(c, gin.H{"message": "Admin deleted successfully"})
}

func validateAdminInput(req AdminRequest) (string, bool) {
	if !validators.IsGmail(req.Email) {
		return "Email must be a Gmail address", false
	}
	if !validators.IsPhilippineMobile(req.Phone) {
		return "Phone must be 11 digits starting with 09", false
	}
	if !validators.IsStrongPassword(req.Password) {
		return "Password must be at least 8 characters long, contain uppercase, lowercase, number, and special character", false
	}
	return "", true
}

// --------- Security settings ---------

func (h *SuperadminHandler) ListSecuritySettings(c *gin.Context) {
	var settings []models.SecuritySetting
	if err := h.db.Find(&settings).Error; err != nil {
		c.JSON(http.StatusOK, []models.SecuritySetting{})
		return
	}

	c.JSON(http.StatusOK, settings)
}

func (h *SuperadminHandler) UpdateSecuritySetting(c *gin.Context) {
	var req SecuritySettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpresp.Fail(c, "Invalid request")
		return
	}

	res := h.db.Model(&models.SecuritySetting{}).
		Where("id = ?", c.Param("id")).
		Update("enabled", *req.Enabled)
	if res.Error != nil || res.RowsAffected == 0 {
		httpresp.Fail(c, "Failed to update security setting")
		return
	}

	httpresp.OK(c, nil)
}

// --------- System config ---------

func (h *SuperadminHandler) GetConfig(c *gin.Context) {
	var cfg models.SystemConfig
	err := h.db.First(&cfg, models.SystemConfigID).Error
	if err != nil {
		httpresp.Fail(c, "Failed to fetch system config")
		return
	}

	httpresp.OK(c, gin.H{"config": cfg})
}

func (h *SuperadminHandler) UpdateConfig(c *gin.Context) {
	var req SystemConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpresp.Fail(c, "Failed to update system config")
		return
	}

	res := h.db.Model(&models.SystemConfig{}).
		Where("id = ?", c.Param("id")).
		Updates(map[string]interface{}{
			"salon_hours":          req.SalonHours,
			"max_daily_bookings":   req.MaxDailyBookings,
			"maintenance_schedule": req.MaintenanceSchedule,
		})
	if res.Error != nil {
		httpresp.Fail(c, "Failed to update system config")
		return
	}
	if res.RowsAffected == 0 {
		httpresp.Fail(c, "System config not found")
		return
	}

	httpresp.OK(c, nil)
}
