package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/princessangelsalon/salon-api/internal/httpresp"
	"github.com/princessangelsalon/salon-api/internal/models"
)

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

// --------- Requests ---------

type ServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required"`
	Duration    int     `json:"duration" binding:"required,min=1"`
	Status      string  `json:"status"`
	Image       string  `json:"image"`
}

// --------- Handlers ---------

func (h *ServiceHandler) AdminList(c *gin.Context) {
	var services []models.Service
	if err := h.db.Order("id DESC").Find(&services).Error; err != nil {
		httpresp.Fail(c, "Failed to fetch services")
		return
	}

	httpresp.OK(c, gin.H{"services": services})
}

// PublicList only exposes active services to customers.
func (h *ServiceHandler) PublicList(c *gin.Context) {
	var services []models.Service
	err := h.db.
		Where("status = ?", "Active").
		Find(&services).Error
	if err != nil {
		httpresp.Fail(c, "Error fetching services")
		return
	}

	httpresp.OK(c, gin.H{"services": services})
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpresp.Fail(c, "Error adding service")
		return
	}

	service := models.Service{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Duration:    req.Duration,
		Status:      "Active",
		Image:       req.Image,
	}
	if err := h.db.Create(&service).Error; err != nil {
		httpresp.Fail(c, "Error adding service")
		return
	}

	httpresp.OK(c, nil)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpresp.Fail(c, "Error updating service")
		return
	}

	status := req.Status
	if status == "" {
		status = "Active"
	}

	res := h.db.Model(&models.Service{}).
		Where("id = ?", c.Param("id")).
		Updates(map[string]interface{}{
			"name":        req.Name,
			"description": req.Description,
			"price":       req.Price,
			"duration":    req.Duration,
			"status":      status,
			"image":       req.Image,
		})
	if res.Error != nil {
		httpresp.Fail(c, "Error updating service")
		return
	}
	if res.RowsAffected == 0 {
		httpresp.Fail(c, "Service not found")
		return
	}

	httpresp.OK(c, nil)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	res := h.db.Where("id = ?", c.Param("id")).Delete(&models.Service{})
	if res.Error != nil {
		httpresp.Fail(c, "Error deleting service")
		return
	}
	if res.RowsAffected == 0 {
		httpresp.Fail(c, "Service not found")
		return
	}

	httpresp.OK(c, nil)
}
