package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"
	"log"

	"afftrack/config"
	"afftrack/internal/attribution"
	"afftrack/internal/cache"
	"afftrack/internal/metrics"
	"afftrack/internal/models"
	"afftrack/internal/repository"
	"afftrack/internal/ws"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AttributionService runs the click-to-conversion pipeline: link creation,
// link resolution on the redirect path, click recording with dedup, and
// conversion matching with commission pricing.
type AttributionService struct {
	cfg            *config.Config
	brandRepo      *repository.BrandRepository
	affiliateRepo  *repository.AffiliateRepository
	referrerRepo   *repository.ReferrerRepository
	campaignRepo   *repository.CampaignRepository
	linkRepo       *repository.LinkRepository
	clickRepo      *repository.ClickRepository
	conversionRepo *repository.ConversionRepository
	cache          cache.Cache
	clock          attribution.Clock
	events         *ws.EventHub
}

func NewAttributionService(
	cfg *config.Config,
	brandRepo *repository.BrandRepository,
	affiliateRepo *repository.AffiliateRepository,
	referrerRepo *repository.ReferrerRepository,
	campaignRepo *repository.CampaignRepository,
	linkRepo *repository.LinkRepository,
	clickRepo *repository.ClickRepository,
	conversionRepo *repository.ConversionRepository,
	c cache.Cache,
	clock attribution.Clock,
	events *ws.EventHub,
) *AttributionService {
	return &AttributionService{
		cfg:            cfg,
		brandRepo:      brandRepo,
		affiliateRepo:  affiliateRepo,
		referrerRepo:   referrerRepo,
		campaignRepo:   campaignRepo,
		linkRepo:       linkRepo,
		clickRepo:      clickRepo,
		conversionRepo: conversionRepo,
		cache:          c,
		clock:          clock,
		events:         events,
	}
}

// CreateLink loads the referenced entities, validates the attribution graph
// and persists the link with a freshly minted code.
func (s *AttributionService) CreateLink(brandID uint, kind string, affiliateID, referrerID, campaignID *uint) (*models.Link, error) {
	brand, err := s.brandRepo.GetByID(brandID)
	if err != nil {
		return nil, notFoundAs(err, "brand_id", "brand not found")
	}

	var affiliate *models.Affiliate
	if affiliateID != nil {
		if affiliate, err = s.affiliateRepo.GetByID(*affiliateID); err != nil {
			return nil, notFoundAs(err, "affiliate_id", "affiliate not found")
		}
	}
	var referrer *models.Referrer
	if referrerID != nil {
		if referrer, err = s.referrerRepo.GetByID(*referrerID); err != nil {
			return nil, notFoundAs(err, "referrer_id", "referrer not found")
		}
	}
	var campaign *models.Campaign
	if campaignID != nil {
		if campaign, err = s.campaignRepo.GetByID(*campaignID); err != nil {
			return nil, notFoundAs(err, "campaign_id", "campaign not found")
		}
	}

	link, err := attribution.NewLink(brand, kind, affiliate, referrer, campaign)
	if err != nil {
		return nil, err
	}
	if err := s.linkRepo.Create(link); err != nil {
		return nil, fmt.Errorf("failed to create link: %w", err)
	}
	return link, nil
}

// ResolvedLink is the slice of link state the redirect path needs, small
// enough to cache as JSON.
type ResolvedLink struct {
	LinkID      uint   `json:"link_id"`
	BrandID     uint   `json:"brand_id"`
	Kind        string `json:"kind"`
	Destination string `json:"destination"`
}

// ResolveLink turns a public code into redirect state, via cache when hot.
func (s *AttributionService) ResolveLink(ctx context.Context, code string) (*ResolvedLink, error) {
	key := "link:" + code
	if raw, ok, err := s.cache.Get(ctx, key); err == nil && ok {
		var resolved ResolvedLink
		if err := json.Unmarshal([]byte(raw), &resolved); err == nil {
			return &resolved, nil
		}
	}

	link, err := s.linkRepo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	resolved := &ResolvedLink{
		LinkID:      link.ID,
		BrandID:     link.BrandID,
		Kind:        link.Kind,
		Destination: link.Brand.Website,
	}
	if data, err := json.Marshal(resolved); err == nil {
		if err := s.cache.Set(ctx, key, string(data), s.cfg.Tracking.LinkCacheTTL); err != nil {
			log.Printf("[attribution] link cache set: %v", err)
		}
	}
	return resolved, nil
}

// RecordClick appends a click for the resolved link and reports whether it
// was the first from this visitor inside the dedup window. Duplicates are
// still recorded; the flag only feeds metrics and fraud review.
func (s *AttributionService) RecordClick(ctx context.Context, link *ResolvedLink, ip, userAgent, visitorID string, subIDs map[string]interface{}) (*models.Click, bool, error) {
	click, err := attribution.NewClick(&models.Link{ID: link.LinkID, BrandID: link.BrandID, Kind: link.Kind}, ip, userAgent, visitorID, subIDs)
	if err != nil {
		return nil, false, err
	}
	click.CreatedAt = s.clock.Now()
	if err := s.clickRepo.Create(click); err != nil {
		return nil, false, fmt.Errorf("failed to record click: %w", err)
	}

	unique := true
	dedupKey := fmt.Sprintf("dedup:%d:%s", link.LinkID, visitorKey(visitorID, ip, userAgent))
	if set, err := s.cache.SetNX(ctx, dedupKey, "1", s.cfg.Tracking.DedupWindow); err != nil {
		log.Printf("[attribution] click dedup: %v", err)
	} else {
		unique = set
	}

	metrics.RecordClick(link.Kind, unique)
	s.events.Publish(link.BrandID, "click", map[string]interface{}{
		"click_id": click.ID,
		"link_id":  link.LinkID,
		"unique":   unique,
	})
	return click, unique, nil
}

// RecordConversion matches a conversion to a click, prices the commission
// from the campaign's rate when none is supplied, and persists it. A second
// conversion for the same click fails with the typed duplicate error.
func (s *AttributionService) RecordConversion(clickID, brandID uint, saleAmount, commissionAmount *decimal.Decimal, metadata map[string]interface{}) (*models.Conversion, error) {
	click, err := s.clickRepo.GetByID(clickID)
	if err != nil {
		metrics.RecordConversion("rejected")
		return nil, notFoundAs(err, "click_id", "click not found")
	}
	link, err := s.linkRepo.GetByID(click.LinkID)
	if err != nil {
		metrics.RecordConversion("rejected")
		return nil, fmt.Errorf("failed to load link %d: %w", click.LinkID, err)
	}
	brand, err := s.brandRepo.GetByID(brandID)
	if err != nil {
		metrics.RecordConversion("rejected")
		return nil, notFoundAs(err, "brand_id", "brand not found")
	}
	if link.BrandID != brand.ID {
		metrics.RecordConversion("rejected")
		return nil, &attribution.Error{
			Code:    attribution.CodeValidation,
			Field:   "click_id",
			Message: "click does not belong to this brand",
		}
	}

	if exists, err := s.conversionRepo.ExistsForClick(click.ID); err != nil {
		return nil, fmt.Errorf("failed to check click %d: %w", click.ID, err)
	} else if exists {
		metrics.RecordConversion("duplicate")
		return nil, attribution.ErrDuplicateConversion
	}

	if commissionAmount == nil && link.CampaignID != nil {
		rate, err := s.campaignRepo.GetActiveRate(*link.CampaignID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to load commission rate: %w", err)
		}
		if rate != nil {
			computed := attribution.ComputeCommission(rate, saleAmount)
			commissionAmount = &computed
		}
	}

	conv, err := attribution.NewConversion(click, brand, saleAmount, commissionAmount, metadata)
	if err != nil {
		metrics.RecordConversion("rejected")
		return nil, err
	}
	if err := s.conversionRepo.Create(conv); err != nil {
		if attribution.IsCode(err, attribution.CodeDuplicateConversion) {
			metrics.RecordConversion("duplicate")
		}
		return nil, err
	}

	metrics.RecordConversion("recorded")
	s.events.Publish(brand.ID, "conversion", map[string]interface{}{
		"conversion_id": conv.ID,
		"click_id":      click.ID,
		"commission":    conv.CommissionAmount,
	})
	return conv, nil
}

// ReviewConversion settles a pending conversion as approved or declined.
func (s *AttributionService) ReviewConversion(id uint, status string) error {
	return s.conversionRepo.SetStatus(id, status)
}

func visitorKey(visitorID, ip, userAgent string) string {
	if visitorID != "" {
		return visitorID
	}
	h := fnv.New64a()
	h.Write([]byte(ip))
	h.Write([]byte{0})
	h.Write([]byte(userAgent))
	return fmt.Sprintf("%x", h.Sum64())
}

// notFoundAs maps a gorm not-found to a typed validation error so callers
// can surface it on the offending field; other errors pass through wrapped.
func notFoundAs(err error, field, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &attribution.Error{Code: attribution.CodeValidation, Field: field, Message: message}
	}
	return fmt.Errorf("%s: %w", message, err)
}
