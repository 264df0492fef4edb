package attribution

import (
	"afftrack/internal/domain"
	"afftrack/internal/models"
)

// NewLink validates the attribution graph for a new tracking link and returns
// the unpersisted record. Rules:
//   - kind must be affiliate or referral
//   - the party matching the kind must be supplied, the other must be absent
//   - every supplied reference must belong to brand (no cross-tenant links)
//   - referrer and campaign, when supplied, must be active
//
// The short code is minted at persist time, once the row id exists.
func NewLink(brand *models.Brand, kind string, affiliate *models.Affiliate, referrer *models.Referrer, campaign *models.Campaign) (*models.Link, error) {
	if brand == nil || brand.ID == 0 {
		return nil, missingFieldErr("brand")
	}

	switch kind {
	case domain.LinkKindAffiliate:
		if affiliate == nil {
			return nil, validationErr("affiliate_id", "affiliate link requires an affiliate")
		}
		if referrer != nil {
			return nil, validationErr("referrer_id", "affiliate link cannot reference a referrer")
		}
	case domain.LinkKindReferral:
		if referrer == nil {
			return nil, validationErr("referrer_id", "referral link requires a referrer")
		}
		if affiliate != nil {
			return nil, validationErr("affiliate_id", "referral link cannot reference an affiliate")
		}
	default:
		return nil, validationErr("kind", "unknown link kind %q", kind)
	}

	link := &models.Link{BrandID: brand.ID, Kind: kind}

	if affiliate != nil {
		if affiliate.BrandID != brand.ID {
			return nil, validationErr("affiliate_id", "affiliate %d belongs to another brand", affiliate.ID)
		}
		id := affiliate.ID
		link.AffiliateID = &id
	}
	if referrer != nil {
		if referrer.BrandID != brand.ID {
			return nil, validationErr("referrer_id", "referrer %d belongs to another brand", referrer.ID)
		}
		if !referrer.IsActive {
			return nil, validationErr("referrer_id", "referrer %d is inactive", referrer.ID)
		}
		id := referrer.ID
		link.ReferrerID = &id
	}
	if campaign != nil {
		if campaign.BrandID != brand.ID {
			return nil, validationErr("campaign_id", "campaign %d belongs to another brand", campaign.ID)
		}
		if !campaign.IsActive {
			return nil, validationErr("campaign_id", "campaign %d is inactive", campaign.ID)
		}
		id := campaign.ID
		link.CampaignID = &id
	}

	return link, nil
}
