package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/princessangelsalon/salon-api/internal/httpresp"
	"github.com/princessangelsalon/salon-api/internal/models"
)

type StylistHandler struct {
	db *gorm.DB
}

func NewStylistHandler(db *gorm.DB) *StylistHandler {
	return &StylistHandler{db: db}
}

// --------- Requests ---------

type StylistRequest struct {
	Name      string `json:"name" binding:"required"`
	Specialty string `json:"specialty" binding:"required"`
	Image     string `json:"image"`
}

type AvailabilityRequest struct {
	StylistID uint   `json:"stylist_id" binding:"required"`
	Day       string `json:"day" binding:"required"`
	TimeSlot  string `json:"time_slot" binding:"required"`
}

// --------- Stylists ---------

func (h *StylistHandler) List(c *gin.Context) {
	var stylists []models.Stylist
	if err := h.db.Find(&stylists).Error; err != nil {
		httpresp.Fail(c, "Error fetching stylists")
		return
	}

	httpresp.OK(c, gin.H{"stylists": stylists})
}

func (h *StylistHandler) Create(c *gin.Context) {
	var req StylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpresp.Fail(c, "Error adding stylist")
		return
	}

	stylist := models.Stylist{
		Name:      req.Name,
		Specialty: req.Specialty,
		Image:     req.Image,
	}
	if err := h.db.Create(&stylist).Error; err != nil {
		httpresp.Fail(c, "Error adding stylist")
		return
	}

	httpresp.OK(c, gin.H{"id": stylist.ID})
}

func (h *StylistHandler) Update(c *gin.Context) {
	var req StylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpresp.Fail(c, "Error updating stylist")
		return
	}

	res := h.db.Model(&models.Stylist{}).
		Where("id = ?", c.Param("id")).
		Updates(map[string]interface{}{
			"name":      req.Name,
			"specialty": req.Specialty,
			"image":     req.Image,
		})
	if res.Error != nil {
		httpresp.Fail(c, "Error updating stylist")
		return
	}
	if res.RowsAffected == 0 {
		httpresp.Fail(c, "Stylist not found")
		return
	}

	httpresp.OK(c, nil)
}

func (h *StylistHandler) Delete(c *gin.Context) {
	res := h.db.Where("id = ?", c.Param("id")).Delete(&models.Stylist{})
	if res.Error != nil {
		httpresp.Fail(c, "Error deleting stylist")
		return
	}
	if res.RowsAffected == 0 {
		httpresp.Fail(c, "Stylist not found")
		return
	}

	httpresp.OK(c, nil)
}

// --------- Availability ---------

type availabilityRow struct {
	ID        uint   `json:"id"`
	StylistID uint   `json:"stylist_id"`
	Stylist   string `json:"stylist"`
	Day       string `json:"day"`
	TimeSlot  string `json:"time_slot"`
	Status    string `json:"status"`
}

func (h *StylistHandler) ListAvailability(c *gin.Context) {
	var rows []availabilityRow
	err := h.db.
		Table("stylist_availability sa").
		Select("sa.id, sa.stylist_id, s.name AS stylist, sa.day, sa.time_slot, sa.status").
		Joins("JOIN stylists s ON sa.stylist_id = s.id").
		Scan(&rows).Error
	if err != nil {
		httpresp.Fail(c, "Error fetching availability")
		return
	}

	httpresp.OK(c, gin.H{"availability": rows})
}

func (h *StylistHandler) CreateAvailability(c *gin.Context) {
	var req AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpresp.Fail(c, "Error adding availability")
		return
	}

	slot := models.StylistAvailability{
		StylistID: req.StylistID,
		Day:       req.Day,
		TimeSlot:  req.TimeSlot,
		Status:    "Available",
	}
	if err := h.db.Create(&slot).Error; err != nil {
		httpresp.Fail(c, "Error adding availability")
		return
	}

	httpresp.OK(c, nil)
}

func (h *StylistHandler) UpdateAvailability(c *gin.Context) {
	var req AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpresp.Fail(c, "Error updating availability")
		return
	}

	res := h.db.Model(&models.StylistAvailability{}).
		Where("id = ?", c.Param("id")).
		Updates(map[string]interface{}{
			"stylist_id": req.StylistID,
			"day":        req.Day,
			"time_slot":  req.TimeSlot,
		})
	if res.Error != nil {
		httpresp.Fail(c, "Error updating availability")
		return
	}
	if res.RowsAffected == 0 {
		httpresp.Fail(c, "Availability not found")
		return
	}

	httpresp.OK(c, nil)
}

func (h *StylistHandler) DeleteAvailability(c *gin.Context) {
	res := h.db.Where("id = ?", c.Param("id")).Delete(&models.StylistAvailability{})
	if res.Error != nil {
		httpresp.Fail(c, "Error deleting availability")
		return
	}
	if res.RowsAffected == 0 {
		httpresp.Fail(c, "Availability not found")
		return
	}

	httpresp.OK(c, nil)
}
