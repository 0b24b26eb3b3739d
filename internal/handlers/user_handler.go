package handlers

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/princessangelsalon/salon-api/internal/httpresp"
	"github.com/princessangelsalon/salon-api/internal/models"
	"github.com/princessangelsalon/salon-api/internal/validators"
)

type UserHandler struct {
	db *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{db: db}
}

// --------- Requests ---------

type UpdateProfileRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
	Phone string `json:"phone" binding:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

// --------- Handlers ---------

func (h *UserHandler) GetByID(c *gin.Context) {
	var user models.User
	err := h.db.First(&user, "id = ?", c.Param("id")).Error
	if err == gorm.ErrRecordNotFound {
		httpresp.Fail(c, "User not found")
		return
	}
	if err != nil {
		httpresp.Fail(c, "Failed to fetch user")
		return
	}

	httpresp.OK(c, gin.H{"user": user})
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpresp.Fail(c, "Error updating profile")
		return
	}

	res := h.db.Model(&models.User{}).
		Where("id = ?", c.Param("id")).
		Updates(map[string]interface{}{
			"name":  req.Name,
			"email": req.Email,
			"phone": validators.CleanPhone(req.Phone),
		})
	if res.Error != nil {
		httpresp.Fail(c, "Error updating profile")
		return
	}
	if res.RowsAffected == 0 {
		httpresp.Fail(c, "User not found")
		return
	}

	httpresp.OK(c, nil)
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpresp.Fail(c, "Error changing password")
		return
	}

	var user models.User
	err := h.db.First(&user, "id = ?", c.Param("id")).Error
	if err != nil {
		httpresp.Fail(c, "Error changing password")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)) != nil {
		httpresp.Fail(c, "Current password is incorrect")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		httpresp.Fail(c, "Error changing password")
		return
	}

	if err := h.db.Model(&user).Update("password_hash", string(hash)).Error; err != nil {
		httpresp.Fail(c, "Error changing password")
		return
	}

	httpresp.OK(c, nil)
}

func (h *UserHandler) AdminListCustomers(c *gin.Context) {
	var customers []models.User
	err := h.db.
		Where("role = ?", models.RoleUser).
		Find(&customers).Error
	if err != nil {
		httpresp.Fail(c, "Error retrieving customers")
		return
	}

	httpresp.OK(c, gin.H{"customers": customers})
}

// AdminDeleteUser only removes customer accounts, admin rows stay.
func (h *UserHandler) AdminDeleteUser(c *gin.Context) {
	res := h.db.
		Where("id = ? AND role = ?", c.Param("id"), models.RoleUser).
		Delete(&models.User{})
	if res.Error != nil {
		httpresp.Fail(c, "Error deleting user")
		return
	}
	if res.RowsAffected == 0 {
		httpresp.Fail(c, "User not found")
		return
	}

	httpresp.OK(c, nil)
}
