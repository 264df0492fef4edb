package handler

import (
	"net/http"

	"afftrack/internal/models"
	"afftrack/internal/repository"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
)

type AffiliateHandler struct {
	affiliateRepo *repository.AffiliateRepository
}

func NewAffiliateHandler(affiliateRepo *repository.AffiliateRepository) *AffiliateHandler {
	return &AffiliateHandler{affiliateRepo: affiliateRepo}
}

// Create registers an affiliate under a brand. Email is unique per brand,
// enforced by the composite index; a duplicate maps to 409.
// POST /api/v1/affiliates
func (h *AffiliateHandler) Create(c *gin.Context) {
	var req struct {
		BrandID        uint                   `json:"brand_id" binding:"required"`
		Name           string                 `json:"name"`
		Email          string                 `json:"email" binding:"required,email"`
		Password       string                 `json:"password" binding:"required,min=8"`
		Timezone       string                 `json:"timezone"`
		PaymentDetails map[string]interface{} `json:"payment_details"`
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
	aff := &models.Affiliate{
		BrandID:      req.BrandID,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Timezone:     orDefault(req.Timezone, "UTC"),
	}
	if len(req.PaymentDetails) > 0 {
		aff.PaymentDetails = datatypes.JSONMap(req.PaymentDetails)
	}
	if err := h.affiliateRepo.Create(aff); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, aff)
}

// Get returns one affiliate.
// GET /api/v1/affiliates/:id
func (h *AffiliateHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	aff, err := h.affiliateRepo.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, aff)
}

// List returns a brand's affiliates.
// GET /api/v1/affiliates?brand_id=1
func (h *AffiliateHandler) List(c *gin.Context) {
	brandID, ok := queryBrandID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "brand_id is required"})
		return
	}
	limit, offset := pagination(c)
	affs, err := h.affiliateRepo.ListByBrand(brandID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"affiliates": affs, "total": len(affs)})
}
