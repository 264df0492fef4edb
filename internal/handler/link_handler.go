package handler

import (
	"net/http"

	"afftrack/internal/repository"
	"afftrack/internal/service"

	"github.com/gin-gonic/gin"
)

type LinkHandler struct {
	attributionSvc *service.AttributionService
	linkRepo       *repository.LinkRepository
	clickRepo      *repository.ClickRepository
}

func NewLinkHandler(attributionSvc *service.AttributionService, linkRepo *repository.LinkRepository, clickRepo *repository.ClickRepository) *LinkHandler {
	return &LinkHandler{attributionSvc: attributionSvc, linkRepo: linkRepo, clickRepo: clickRepo}
}

// Create mints a tracking link. Kind decides the required party: affiliate
// links need affiliate_id, referral links need referrer_id.
// POST /api/v1/links
func (h *LinkHandler) Create(c *gin.Context) {
	var req struct {
		BrandID     uint   `json:"brand_id" binding:"required"`
		Kind        string `json:"kind" binding:"required,oneof=affiliate referral"`
		AffiliateID *uint  `json:"affiliate_id"`
		ReferrerID  *uint  `json:"referrer_id"`
		CampaignID  *uint  `json:"campaign_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	link, err := h.attributionSvc.CreateLink(req.BrandID, req.Kind, req.AffiliateID, req.ReferrerID, req.CampaignID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, link)
}

// Get returns one link with its click count.
// GET /api/v1/links/:id
func (h *LinkHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	link, err := h.linkRepo.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	clicks, err := h.clickRepo.CountByLink(link.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"link": link, "clicks": clicks})
}

// List returns links for a brand, or for one affiliate when affiliate_id is set.
// GET /api/v1/links?brand_id=1[&affiliate_id=2]
func (h *LinkHandler) List(c *gin.Context) {
	limit, offset := pagination(c)

	if affiliateID, err := parseUint(c.Query("affiliate_id")); err == nil && affiliateID > 0 {
		links, err := h.linkRepo.ListByAffiliate(affiliateID, limit, offset)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"links": links, "total": len(links)})
		return
	}

	brandID, ok := queryBrandID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "brand_id is required"})
		return
	}
	links, err := h.linkRepo.ListByBrand(brandID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"links": links, "total": len(links)})
}

// ListClicks returns a link's recorded clicks.
// GET /api/v1/links/:id/clicks
func (h *LinkHandler) ListClicks(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	limit, offset := pagination(c)
	clicks, err := h.clickRepo.ListByLink(id, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clicks": clicks, "total": len(clicks)})
}
