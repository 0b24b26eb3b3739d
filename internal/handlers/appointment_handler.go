package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	booking "github.com/princessangelsalon/salon-api/internal/domain/booking"
	"github.com/princessangelsalon/salon-api/internal/httpresp"
	"github.com/princessangelsalon/salon-api/internal/models"
	"github.com/princessangelsalon/salon-api/internal/timezone"
	usecase "github.com/princessangelsalon/salon-api/internal/usecase/booking"
)

type AppointmentHandler struct {
	db         *gorm.DB
	create     *usecase.CreateAppointment
	reschedule *usecase.RescheduleAppointment
}

func NewAppointmentHandler(
	db *gorm.DB,
	create *usecase.CreateAppointment,
	reschedule *usecase.RescheduleAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:         db,
		create:     create,
		reschedule: reschedule,
	}
}

// --------- Requests ---------

type BookAppointmentRequest struct {
	UserID    uint   `json:"userId" binding:"required"`
	Service   string `json:"service" binding:"required"`
	StylistID *uint  `json:"stylist_id"`
	Stylist   string `json:"stylist"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
}

type RescheduleRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// --------- Handlers ---------

func (h *AppointmentHandler) Book(c *gin.Context) {
	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpresp.Fail(c, "Error booking appointment")
		return
	}

	_, err := h.create.Execute(c.Request.Context(), usecase.CreateAppointmentInput{
		UserID:    req.UserID,
		Service:   req.Service,
		StylistID: req.StylistID,
		Stylist:   req.Stylist,
		Date:      req.Date,
		Time:      req.Time,
	})
	if err != nil {
		httpresp.FailErr(c, err, "Error booking appointment")
		return
	}

	httpresp.OK(c, gin.H{"message": "Booking created successfully"})
}

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httpresp.BadRequest(c, "Invalid appointment id")
		return
	}

	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpresp.Fail(c, "Invalid date or time format.")
		return
	}

	if _, err := h.reschedule.Execute(c.Request.Context(), uint(id), req.Date, req.Time); err != nil {
		httpresp.FailErr(c, err, "Error rescheduling appointment")
		return
	}

	httpresp.OK(c, nil)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	res := h.db.Model(&models.Appointment{}).
		Where("id = ?", c.Param("id")).
		Update("status", string(booking.StatusCancelled))
	if res.Error != nil {
		httpresp.Fail(c, "Error cancelling appointment")
		return
	}
	if res.RowsAffected == 0 {
		httpresp.Fail(c, "Appointment not found")
		return
	}

	httpresp.OK(c, nil)
}

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpresp.Fail(c, "Failed to update appointment status")
		return
	}

	res := h.db.Model(&models.Appointment{}).
		Where("id = ?", c.Param("id")).
		Update("status", req.Status)
	if res.Error != nil {
		httpresp.Fail(c, "Failed to update appointment status")
		return
	}
	if res.RowsAffected == 0 {
		httpresp.Fail(c, "Appointment not found or status unchanged")
		return
	}

	httpresp.OK(c, gin.H{
		"message": "Appointment status updated to '" + req.Status + "'",
	})
}

// Complete removes a finished appointment entirely.
func (h *AppointmentHandler) Complete(c *gin.Context) {
	res := h.db.Where("id = ?", c.Param("id")).Delete(&models.Appointment{})
	if res.Error != nil {
		httpresp.Fail(c, "Error deleting appointment")
		return
	}
	if res.RowsAffected == 0 {
		httpresp.Fail(c, "Appointment not found")
		return
	}

	httpresp.OK(c, gin.H{"message": "Appointment deleted successfully"})
}

func (h *AppointmentHandler) ListForUser(c *gin.Context) {
	var appointments []models.Appointment
	err := h.db.
		Where("user_id = ?", c.Param("userId")).
		Order("date ASC, time ASC").
		Find(&appointments).Error
	if err != nil {
		httpresp.Fail(c, "Failed to retrieve appointments")
		return
	}

	httpresp.OK(c, gin.H{"appointments": appointments})
}

func (h *AppointmentHandler) GetByID(c *gin.Context) {
	var ap models.Appointment
	err := h.db.First(&ap, "id = ?", c.Param("id")).Error
	if err == gorm.ErrRecordNotFound {
		httpresp.Fail(c, "Appointment not found")
		return
	}
	if err != nil {
		httpresp.Fail(c, "Failed to retrieve appointment")
		return
	}

	httpresp.OK(c, gin.H{"appointment": ap})
}

type adminAppointmentRow struct {
	ID           uint   `json:"id"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Service      string `json:"service"`
	Stylist      string `json:"stylist"`
	Status       string `json:"status"`
	CustomerName string `json:"customer_name"`
}

func (h *AppointmentHandler) AdminList(c *gin.Context) {
	var rows []adminAppointmentRow
	err := h.db.
		Table("appointments a").
		Select("a.id, a.date, a.time, a.service, a.stylist, a.status, u.name AS customer_name").
		Joins("JOIN users u ON a.user_id = u.id").
		Order("a.date ASC, a.time ASC").
		Scan(&rows).Error
	if err != nil {
		httpresp.Fail(c, "Failed to fetch appointments")
		return
	}

	httpresp.OK(c, gin.H{"appointments": rows})
}

func (h *AppointmentHandler) TodayApprovedCount(c *gin.Context) {
	today := timezone.Now().Format("2006-01-02")

	var count int64
	err := h.db.Model(&models.Appointment{}).
		Where("date = ? AND status = ?", today, string(booking.StatusApproved)).
		Count(&count).Error
	if err != nil {
		httpresp.Fail(c, "Failed to count today's approved appointments")
		return
	}

	httpresp.OK(c, gin.H{"totalTodayApproved": count})
}
