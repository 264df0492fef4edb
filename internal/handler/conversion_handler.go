package handler

import (
	"net/http"

	"afftrack/internal/repository"
	"afftrack/internal/service"

	"github.com/gin-gonic/gin"
)

type ConversionHandler struct {
	attributionSvc *service.AttributionService
	conversionRepo *repository.ConversionRepository
}

func NewConversionHandler(attributionSvc *service.AttributionService, conversionRepo *repository.ConversionRepository) *ConversionHandler {
	return &ConversionHandler{attributionSvc: attributionSvc, conversionRepo: conversionRepo}
}

// Get returns one conversion.
// GET /api/v1/conversions/:id
func (h *ConversionHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	conv, err := h.conversionRepo.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, conv)
}

// List returns a brand's conversions, optionally filtered by status.
// GET /api/v1/conversions?brand_id=1[&status=pending]
func (h *ConversionHandler) List(c *gin.Context) {
	brandID, ok := queryBrandID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "brand_id is required"})
		return
	}
	limit, offset := pagination(c)
	convs, err := h.conversionRepo.ListByBrand(brandID, c.Query("status"), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"conversions": convs, "total": len(convs)})
}

// Review approves or declines a pending conversion.
// PATCH /api/v1/conversions/:id/status
func (h *ConversionHandler) Review(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req struct {
		Status string `json:"status" binding:"required,oneof=approved declined"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.attributionSvc.ReviewConversion(id, req.Status); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "status": req.Status})
}
