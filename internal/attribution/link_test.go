package attribution

import (
	"testing"

	"afftrack/internal/domain"
	"afftrack/internal/models"
)

func testBrand(id uint) *models.Brand {
	return &models.Brand{ID: id, Name: "brand", Email: "brand@example.com"}
}

func testAffiliate(id, brandID uint) *models.Affiliate {
	return &models.Affiliate{ID: id, BrandID: brandID, Email: "aff@example.com"}
}

func testReferrer(id, brandID uint, active bool) *models.Referrer {
	return &models.Referrer{ID: id, BrandID: brandID, ExternalID: "ext-1", IsActive: active}
}

func testCampaign(id, brandID uint, active bool) *models.Campaign {
	return &models.Campaign{ID: id, BrandID: brandID, Title: "spring", IsActive: active}
}

func TestNewLinkAffiliateKind(t *testing.T) {
	brand := testBrand(1)
	aff := testAffiliate(10, 1)
	camp := testCampaign(20, 1, true)

	link, err := NewLink(brand, domain.LinkKindAffiliate, aff, nil, camp)
	if err != nil {
		t.Fatalf("NewLink: %v", err)
	}
	if link.BrandID != 1 || link.Kind != domain.LinkKindAffiliate {
		t.Errorf("link = %+v", link)
	}
	if link.AffiliateID == nil || *link.AffiliateID != 10 {
		t.Errorf("affiliate id not set: %+v", link.AffiliateID)
	}
	if link.CampaignID == nil || *link.CampaignID != 20 {
		t.Errorf("campaign id not set: %+v", link.CampaignID)
	}
	if link.ReferrerID != nil {
		t.Errorf("referrer id should be nil")
	}
}

func TestNewLinkReferralKind(t *testing.T) {
	brand := testBrand(1)
	ref := testReferrer(11, 1, true)
	camp := testCampaign(20, 1, true)

	link, err := NewLink(brand, domain.LinkKindReferral, nil, ref, camp)
	if err != nil {
		t.Fatalf("NewLink: %v", err)
	}
	if link.ReferrerID == nil || *link.ReferrerID != 11 {
		t.Errorf("referrer id not set: %+v", link.ReferrerID)
	}
}

func TestNewLinkRejections(t *testing.T) {
	brand := testBrand(1)
	tests := []struct {
		name      string
		brand     *models.Brand
		kind      string
		affiliate *models.Affiliate
		referrer  *models.Referrer
		campaign  *models.Campaign
		wantCode  Code
	}{
		{"missing brand", nil, domain.LinkKindAffiliate, testAffiliate(10, 1), nil, nil, CodeMissingField},
		{"unknown kind", brand, "banner", nil, nil, nil, CodeValidation},
		{"affiliate kind without affiliate", brand, domain.LinkKindAffiliate, nil, nil, nil, CodeValidation},
		{"affiliate kind with referrer", brand, domain.LinkKindAffiliate, nil, testReferrer(11, 1, true), nil, CodeValidation},
		{"referral kind without referrer", brand, domain.LinkKindReferral, nil, nil, nil, CodeValidation},
		{"referral kind with affiliate", brand, domain.LinkKindReferral, testAffiliate(10, 1), nil, nil, CodeValidation},
		{"cross-tenant affiliate", brand, domain.LinkKindAffiliate, testAffiliate(10, 2), nil, nil, CodeValidation},
		{"cross-tenant referrer", brand, domain.LinkKindReferral, nil, testReferrer(11, 2, true), nil, CodeValidation},
		{"cross-tenant campaign", brand, domain.LinkKindAffiliate, testAffiliate(10, 1), nil, testCampaign(20, 2, true), CodeValidation},
		{"inactive referrer", brand, domain.LinkKindReferral, nil, testReferrer(11, 1, false), nil, CodeValidation},
		{"inactive campaign", brand, domain.LinkKindAffiliate, testAffiliate(10, 1), nil, testCampaign(20, 1, false), CodeValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLink(tt.brand, tt.kind, tt.affiliate, tt.referrer, tt.campaign)
			if err == nil {
				t.Fatal("NewLink succeeded, want error")
			}
			if !IsCode(err, tt.wantCode) {
				t.Errorf("err = %v, want code %s", err, tt.wantCode)
			}
		})
	}
}
