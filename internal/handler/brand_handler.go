package handler

import (
	"net/http"

	"afftrack/internal/models"
	"afftrack/internal/repository"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
)

type BrandHandler struct {
	brandRepo *repository.BrandRepository
}

func NewBrandHandler(brandRepo *repository.BrandRepository) *BrandHandler {
	return &BrandHandler{brandRepo: brandRepo}
}

// Create registers a brand tenant.
// POST /api/v1/brands
func (h *BrandHandler) Create(c *gin.Context) {
	var req struct {
		Name           string                 `json:"name" binding:"required"`
		Email          string                 `json:"email" binding:"required,email"`
		Password       string                 `json:"password" binding:"required,min=8"`
		Website        string                 `json:"website"`
		TrackingDomain *string                `json:"tracking_domain"`
		Timezone       string                 `json:"timezone"`
		Settings       map[string]interface{} `json:"settings"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not hash password"})
		return
	}
	brand := &models.Brand{
		Name:           req.Name,
		Email:          req.Email,
		PasswordHash:   string(hash),
		Website:        req.Website,
		TrackingDomain: req.TrackingDomain,
		Timezone:       orDefault(req.Timezone, "UTC"),
	}
	if len(req.Settings) > 0 {
		brand.Settings = datatypes.JSONMap(req.Settings)
	}
	if err := h.brandRepo.Create(brand); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, brand)
}

// Get returns one brand.
// GET /api/v1/brands/:id
func (h *BrandHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	brand, err := h.brandRepo.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, brand)
}

// List returns brands, newest first.
// GET /api/v1/brands
func (h *BrandHandler) List(c *gin.Context) {
	limit, offset := pagination(c)
	brands, err := h.brandRepo.List(limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"brands": brands, "total": len(brands)})
}

// UpdateSettings replaces the brand's free-form settings map.
// PATCH /api/v1/brands/:id/settings
func (h *BrandHandler) UpdateSettings(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req struct {
		Settings map[string]interface{} `json:"settings" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	brand, err := h.brandRepo.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	brand.Settings = datatypes.JSONMap(req.Settings)
	if err := h.brandRepo.Update(brand); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, brand)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
