package handler

import (
	"net/http"

	"afftrack/internal/models"
	"afftrack/internal/repository"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type ReferrerHandler struct {
	referrerRepo *repository.ReferrerRepository
}

func NewReferrerHandler(referrerRepo *repository.ReferrerRepository) *ReferrerHandler {
	return &ReferrerHandler{referrerRepo: referrerRepo}
}

// Create registers a referrer imported from the brand's own system. Email and
// password are optional: most referrers never log in here.
// POST /api/v1/referrers
func (h *ReferrerHandler) Create(c *gin.Context) {
	var req struct {
		BrandID    uint    `json:"brand_id" binding:"required"`
		Name       string  `json:"name"`
		Email      *string `json:"email" binding:"omitempty,email"`
		Password   *string `json:"password" binding:"omitempty,min=8"`
		ExternalID string  `json:"external_id" binding:"required"`
		Timezone   string  `json:"timezone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ref := &models.Referrer{
		BrandID:    req.BrandID,
		Name:       req.Name,
		Email:      req.Email,
		ExternalID: req.ExternalID,
		IsActive:   true,
		Timezone:   orDefault(req.Timezone, "UTC"),
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not hash password"})
			return
		}
		s := string(hash)
		ref.PasswordHash = &s
	}
	if err := h.referrerRepo.Create(ref); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ref)
}

// List returns a brand's referrers.
// GET /api/v1/referrers?brand_id=1
func (h *ReferrerHandler) List(c *gin.Context) {
	brandID, ok := queryBrandID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "brand_id is required"})
		return
	}
	limit, offset := pagination(c)
	refs, err := h.referrerRepo.ListByBrand(brandID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"referrers": refs, "total": len(refs)})
}

// SetActive flips the referrer's soft lifecycle flag.
// PATCH /api/v1/referrers/:id/active
func (h *ReferrerHandler) SetActive(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req struct {
		IsActive *bool `json:"is_active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.referrerRepo.SetActive(id, *req.IsActive); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "is_active": *req.IsActive})
}
