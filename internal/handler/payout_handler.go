package handler

import (
	"net/http"

	"afftrack/internal/attribution"
	"afftrack/internal/repository"
	"afftrack/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type PayoutHandler struct {
	payoutSvc  *service.PayoutService
	payoutRepo *repository.PayoutRepository
}

func NewPayoutHandler(payoutSvc *service.PayoutService, payoutRepo *repository.PayoutRepository) *PayoutHandler {
	return &PayoutHandler{payoutSvc: payoutSvc, payoutRepo: payoutRepo}
}

// Create opens a pending payout. Omitting amount pays out the affiliate's
// full accrued balance.
// POST /api/v1/payouts
func (h *PayoutHandler) Create(c *gin.Context) {
	var req struct {
		BrandID     uint             `json:"brand_id" binding:"required"`
		AffiliateID uint             `json:"affiliate_id" binding:"required"`
		Amount      *decimal.Decimal `json:"amount"`
		Notes       string           `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	payout, err := h.payoutSvc.Create(req.BrandID, req.AffiliateID, req.Amount, req.Notes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, payout)
}

// Get returns one payout.
// GET /api/v1/payouts/:id
func (h *PayoutHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	payout, err := h.payoutRepo.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payout)
}

// List returns payouts for a brand, or for one affiliate when affiliate_id is set.
// GET /api/v1/payouts?brand_id=1[&status=pending] or ?affiliate_id=2
func (h *PayoutHandler) List(c *gin.Context) {
	limit, offset := pagination(c)

	if affiliateID, err := parseUint(c.Query("affiliate_id")); err == nil && affiliateID > 0 {
		payouts, err := h.payoutRepo.ListByAffiliate(affiliateID, limit, offset)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"payouts": payouts, "total": len(payouts)})
		return
	}

	brandID, ok := queryBrandID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "brand_id is required"})
		return
	}
	payouts, err := h.payoutRepo.ListByBrand(brandID, c.Query("status"), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payouts": payouts, "total": len(payouts)})
}

// Transition moves a payout along its workflow: processing, paid or declined.
// paid needs transaction_id, declined needs decline_reason.
// POST /api/v1/payouts/:id/transition
func (h *PayoutHandler) Transition(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req struct {
		Status        string `json:"status" binding:"required"`
		TransactionID string `json:"transaction_id"`
		DeclineReason string `json:"decline_reason"`
		Notes         string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	payout, err := h.payoutSvc.Transition(id, req.Status, attribution.TransitionContext{
		TransactionID: req.TransactionID,
		DeclineReason: req.DeclineReason,
		Notes:         req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payout)
}

// Balance reports the affiliate's remaining payable commission.
// GET /api/v1/payouts/balance?brand_id=1&affiliate_id=2
func (h *PayoutHandler) Balance(c *gin.Context) {
	brandID, ok := queryBrandID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "brand_id is required"})
		return
	}
	affiliateID, err := parseUint(c.Query("affiliate_id"))
	if err != nil || affiliateID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "affiliate_id is required"})
		return
	}
	balance, err := h.payoutSvc.Balance(brandID, affiliateID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"brand_id": brandID, "affiliate_id": affiliateID, "balance": balance})
}
