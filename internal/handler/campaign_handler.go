package handler

import (
	"net/http"

	"afftrack/internal/domain"
	"afftrack/internal/models"
	"afftrack/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type CampaignHandler struct {
	campaignRepo *repository.CampaignRepository
}

func NewCampaignHandler(campaignRepo *repository.CampaignRepository) *CampaignHandler {
	return &CampaignHandler{campaignRepo: campaignRepo}
}

// Create opens a campaign under a brand.
// POST /api/v1/campaigns
func (h *CampaignHandler) Create(c *gin.Context) {
	var req struct {
		BrandID     uint                   `json:"brand_id" binding:"required"`
		Title       string                 `json:"title" binding:"required"`
		Description string                 `json:"description"`
		Settings    map[string]interface{} `json:"settings"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	campaign := &models.Campaign{
		BrandID:     req.BrandID,
		Title:       req.Title,
		Description: req.Description,
		IsActive:    true,
	}
	if len(req.Settings) > 0 {
		campaign.Settings = datatypes.JSONMap(req.Settings)
	}
	if err := h.campaignRepo.Create(campaign); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, campaign)
}

// Get returns a campaign with its commission rates.
// GET /api/v1/campaigns/:id
func (h *CampaignHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	campaign, err := h.campaignRepo.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, campaign)
}

// List returns a brand's campaigns.
// GET /api/v1/campaigns?brand_id=1
func (h *CampaignHandler) List(c *gin.Context) {
	brandID, ok := queryBrandID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "brand_id is required"})
		return
	}
	limit, offset := pagination(c)
	campaigns, err := h.campaignRepo.ListByBrand(brandID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"campaigns": campaigns, "total": len(campaigns)})
}

// SetActive pauses or resumes a campaign.
// PATCH /api/v1/campaigns/:id/active
func (h *CampaignHandler) SetActive(c *gin.Context) {
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
	if err := h.campaignRepo.SetActive(id, *req.IsActive); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "is_active": *req.IsActive})
}

// CreateRate attaches a commission rule to a campaign.
// POST /api/v1/campaigns/:id/commission-rates
func (h *CampaignHandler) CreateRate(c *gin.Context) {
	campaignID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req struct {
		Title string          `json:"title" binding:"required"`
		Kind  string          `json:"kind" binding:"required,oneof=fixed percent"`
		Value decimal.Decimal `json:"value" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Value.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "value cannot be negative"})
		return
	}
	if req.Kind == domain.RateKindPercent && req.Value.GreaterThan(decimal.NewFromInt(100)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "percent rate cannot exceed 100"})
		return
	}
	rate := &models.CommissionRate{
		CampaignID: campaignID,
		Title:      req.Title,
		Kind:       req.Kind,
		Value:      req.Value,
	}
	if err := h.campaignRepo.CreateCommissionRate(rate); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rate)
}

// CreateCreative attaches a promotional asset to a campaign.
// POST /api/v1/campaigns/:id/creatives
func (h *CampaignHandler) CreateCreative(c *gin.Context) {
	campaignID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req struct {
		Name string `json:"name" binding:"required"`
		Type string `json:"type" binding:"required,oneof=banner text video"`
		Path string `json:"path" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	creative := &models.Creative{
		CampaignID: campaignID,
		Name:       req.Name,
		Type:       req.Type,
		Path:       req.Path,
		IsActive:   true,
	}
	if err := h.campaignRepo.CreateCreative(creative); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, creative)
}

// ListCreatives returns a campaign's active creatives.
// GET /api/v1/campaigns/:id/creatives
func (h *CampaignHandler) ListCreatives(c *gin.Context) {
	campaignID, ok := pathID(c, "id")
	if !ok {
		return
	}
	creatives, err := h.campaignRepo.ListCreatives(campaignID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"creatives": creatives, "total": len(creatives)})
}
