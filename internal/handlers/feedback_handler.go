package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/princessangelsalon/salon-api/internal/httpresp"
	"github.com/princessangelsalon/salon-api/internal/models"
)

type FeedbackHandler struct {
	db *gorm.DB
}

func NewFeedbackHandler(db *gorm.DB) *FeedbackHandler {
	return &FeedbackHandler{db: db}
}

type SubmitFeedbackRequest struct {
	UserID   uint   `json:"userId" binding:"required"`
	Stylist  string `json:"stylist"`
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
	Comments string `json:"comments" binding:"required"`
}

func (h *FeedbackHandler) Submit(c *gin.Context) {
	var req SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpresp.Fail(c, "Failed to submit feedback")
		return
	}

	feedback := models.Feedback{
		UserID:      req.UserID,
		StylistName: req.Stylist,
		Comment:     req.Comments,
		Rating:      req.Rating,
	}
	if err := h.db.Create(&feedback).Error; err != nil {
		httpresp.Fail(c, "Failed to submit feedback")
		return
	}

	httpresp.OK(c, nil)
}

type feedbackRow struct {
	ID           uint   `json:"id"`
	UserID       uint   `json:"user_id"`
	CustomerName string `json:"customer_name"`
	Stylist      string `json:"stylist"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
	CreatedAt    string `json:"created_at"`
}

func (h *FeedbackHandler) AdminList(c *gin.Context) {
	var rows []feedbackRow
	err := h.db.
		Table("feedback f").
		Select("f.id, f.user_id, u.name AS customer_name, f.stylist, f.rating, f.comment, f.created_at").
		Joins("JOIN users u ON f.user_id = u.id").
		Order("f.id DESC").
		Scan(&rows).Error
	if err != nil {
		httpresp.Fail(c, "Failed to retrieve feedback")
		return
	}

	httpresp.OK(c, gin.H{"feedback": rows})
}

func (h *FeedbackHandler) Delete(c *gin.Context) {
	res := h.db.Where("id = ?", c.Param("id")).Delete(&models.Feedback{})
	if res.Error != nil {
		httpresp.Fail(c, "Error deleting feedback")
		return
	}
	if res.RowsAffected == 0 {
		httpresp.Fail(c, "Feedback not found")
		return
	}

	httpresp.OK(c, nil)
}

func (h *FeedbackHandler) Count(c *gin.Context) {
	var total int64
	if err := h.db.Model(&models.Feedback{}).Count(&total).Error; err != nil {
		httpresp.Fail(c, "Failed to count feedback")
		return
	}

	httpresp.OK(c, gin.H{"total": total})
}
