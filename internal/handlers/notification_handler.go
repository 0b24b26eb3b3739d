package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/princessangelsalon/salon-api/internal/httpresp"
	"github.com/princessangelsalon/salon-api/internal/models"
)

type NotificationHandler struct {
	db *gorm.DB
}

func NewNotificationHandler(db *gorm.DB) *NotificationHandler {
	return &NotificationHandler{db: db}
}

type SendNotificationRequest struct {
	UserID  *uint  `json:"user_id"`
	Message string `json:"message" binding:"required"`
	Type    string `json:"type"`
}

type BroadcastRequest struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (h *NotificationHandler) Send(c *gin.Context) {
	var req SendNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpresp.Fail(c, "Failed to send notification")
		return
	}

	notifType := req.Type
	if notifType == "" {
		notifType = "success"
	}

	notification := models.Notification{
		UserID:  req.UserID,
		Message: req.Message,
		Type:    notifType,
	}
	if err := h.db.Create(&notification).Error; err != nil {
		httpresp.Fail(c, "Failed to send notification")
		return
	}

	httpresp.OK(c, gin.H{"rowid": notification.ID})
}

// Broadcast writes one row with a NULL user id, visible to every user.
func (h *NotificationHandler) Broadcast(c *gin.Context) {
	var req BroadcastRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Message == "" {
		httpresp.Fail(c, "Message is required")
		return
	}

	notifType := req.Type
	if notifType == "" {
		notifType = "info"
	}

	notification := models.Notification{
		Message: req.Message,
		Type:    notifType,
	}
	if err := h.db.Create(&notification).Error; err != nil {
		httpresp.Fail(c, "Failed to send notification.")
		return
	}

	httpresp.OK(c, gin.H{
		"notificationId": notification.ID,
		"message":        "Notification sent to all users.",
	})
}

func (h *NotificationHandler) ListForUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		httpresp.BadRequest(c, "Invalid user ID")
		return
	}

	var notifications []models.Notification
	err = h.db.
		Where("user_id = ? OR user_id IS NULL", uint(userID)).
		Order("created_at DESC").
		Find(&notifications).Error
	if err != nil {
		httpresp.Internal(c, "Failed to fetch notifications")
		return
	}

	httpresp.OK(c, gin.H{"notifications": notifications})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	res := h.db.Model(&models.Notification{}).
		Where("id = ?", c.Param("id")).
		Update("is_read", true)
	if res.Error != nil {
		httpresp.Fail(c, "Failed to mark as read")
		return
	}
	if res.RowsAffected == 0 {
		httpresp.Fail(c, "Notification not found")
		return
	}

	httpresp.OK(c, nil)
}
