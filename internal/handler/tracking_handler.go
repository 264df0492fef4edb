package handler

import (
	"net/http"
	"net/url"
	"time"

	"afftrack/config"
	"afftrack/internal/domain"
	"afftrack/internal/metrics"
	"afftrack/internal/service"
	"afftrack/internal/token"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TrackingHandler is the public surface hit by shared links and by brand
// sites reporting conversions.
type TrackingHandler struct {
	cfg            *config.Config
	attributionSvc *service.AttributionService
}

func NewTrackingHandler(cfg *config.Config, attributionSvc *service.AttributionService) *TrackingHandler {
	return &TrackingHandler{cfg: cfg, attributionSvc: attributionSvc}
}

// Redirect resolves a tracking code, records the click and sends the visitor
// on to the brand's site with a signed click token in the query string.
// GET /t/:code
func (h *TrackingHandler) Redirect(c *gin.Context) {
	start := time.Now()
	status := "failed"
	defer func() {
		metrics.RecordRedirect(status, time.Since(start).Seconds())
	}()

	resolved, err := h.attributionSvc.ResolveLink(c.Request.Context(), c.Param("code"))
	if err != nil {
		status = "not_found"
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown link"})
		return
	}

	visitorID, err := c.Cookie(domain.VisitorCookie)
	if err != nil || visitorID == "" {
		visitorID = uuid.NewString()
		c.SetCookie(domain.VisitorCookie, visitorID, int((365 * 24 * time.Hour).Seconds()), "/", "", false, true)
	}

	subIDs := make(map[string]interface{})
	for k, vals := range c.Request.URL.Query() {
		if len(vals) > 0 {
			subIDs[k] = vals[0]
		}
	}

	click, _, err := h.attributionSvc.RecordClick(c.Request.Context(), resolved, c.ClientIP(), c.Request.UserAgent(), visitorID, subIDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not record click"})
		return
	}

	signed, err := token.SignClick(&h.cfg.Tracking, click.ID, resolved.LinkID, resolved.BrandID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not sign click token"})
		return
	}

	status = "success"
	if resolved.Destination == "" {
		// Brand has no site configured; hand the token back for manual use.
		c.JSON(http.StatusOK, gin.H{"click_id": click.ID, domain.ClickTokenParam: signed})
		return
	}
	c.Redirect(http.StatusFound, appendTokenParam(resolved.Destination, signed))
}

// Postback records a conversion. Brands either echo the click token from the
// landing URL or, for server-side integrations, send click_id and brand_id.
// POST /api/v1/postback
func (h *TrackingHandler) Postback(c *gin.Context) {
	var req struct {
		Token            string                 `json:"token"`
		ClickID          *uint                  `json:"click_id"`
		BrandID          *uint                  `json:"brand_id"`
		SaleAmount       *decimal.Decimal       `json:"sale_amount"`
		CommissionAmount *decimal.Decimal       `json:"commission_amount"`
		Metadata         map[string]interface{} `json:"metadata"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var clickID, brandID uint
	switch {
	case req.Token != "":
		claims, err := token.ParseClick(&h.cfg.Tracking, req.Token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid click token"})
			return
		}
		clickID, brandID = claims.ClickID, claims.BrandID
	case req.ClickID != nil && req.BrandID != nil:
		clickID, brandID = *req.ClickID, *req.BrandID
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "token or click_id+brand_id required"})
		return
	}

	conv, err := h.attributionSvc.RecordConversion(clickID, brandID, req.SaleAmount, req.CommissionAmount, req.Metadata)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, conv)
}

func appendTokenParam(destination, signed string) string {
	u, err := url.Parse(destination)
	if err != nil {
		return destination
	}
	if u.Scheme == "" {
		u.Scheme = "https"
	}
	q := u.Query()
	q.Set(domain.ClickTokenParam, signed)
	u.RawQuery = q.Encode()
	return u.String()
}
