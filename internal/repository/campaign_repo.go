package repository

import (
	"afftrack/internal/models"

	"gorm.io/gorm"
)

type CampaignRepository struct {
	db *gorm.DB
}

func NewCampaignRepository(db *gorm.DB) *CampaignRepository {
	return &CampaignRepository{db: db}
}

func (r *CampaignRepository) Create(campaign *models.Campaign) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		campaign.Code = provisionalCode()
		if err := tx.Create(campaign).Error; err != nil {
			return err
		}
		code, err := mintCode(tx, &models.Campaign{}, campaign.ID, campaign.CreatedAt)
		if err != nil {
			return err
		}
		campaign.Code = code
		return nil
	})
}

func (r *CampaignRepository) GetByID(id uint) (*models.Campaign, error) {
	var campaign models.Campaign
	if err := r.db.Preload("CommissionRates").First(&campaign, id).Error; err != nil {
		return nil, err
	}
	return &campaign, nil
}

func (r *CampaignRepository) ListByBrand(brandID uint, limit, offset int) ([]models.Campaign, error) {
	var campaigns []models.Campaign
	err := r.db.Where("brand_id = ?", brandID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&campaigns).Error
	return campaigns, err
}

func (r *CampaignRepository) SetActive(id uint, active bool) error {
	return r.db.Model(&models.Campaign{}).Where("id = ?", id).Update("is_active", active).Error
}

// CreateCommissionRate adds a rate rule under a campaign.
func (r *CampaignRepository) CreateCommissionRate(rate *models.CommissionRate) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		rate.Code = provisionalCode()
		if err := tx.Create(rate).Error; err != nil {
			return err
		}
		code, err := mintCode(tx, &models.CommissionRate{}, rate.ID, rate.CreatedAt)
		if err != nil {
			return err
		}
		rate.Code = code
		return nil
	})
}

// GetActiveRate returns the campaign's oldest rate, the one conversions are
// priced with. Newer rates only apply once older ones are removed.
func (r *CampaignRepository) GetActiveRate(campaignID uint) (*models.CommissionRate, error) {
	var rate models.CommissionRate
	err := r.db.Where("campaign_id = ?", campaignID).
		Order("created_at ASC").
		First(&rate).Error
	if err != nil {
		return nil, err
	}
	return &rate, nil
}

// CreateCreative adds a promotional asset under a campaign.
func (r *CampaignRepository) CreateCreative(creative *models.Creative) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		creative.Code = provisionalCode()
		if err := tx.Create(creative).Error; err != nil {
			return err
		}
		code, err := mintCode(tx, &models.Creative{}, creative.ID, creative.CreatedAt)
		if err != nil {
			return err
		}
		creative.Code = code
		return nil
	})
}

func (r *CampaignRepository) ListCreatives(campaignID uint) ([]models.Creative, error) {
	var creatives []models.Creative
	err := r.db.Where("campaign_id = ? AND is_active = ?", campaignID, true).
		Order("created_at DESC").
		Find(&creatives).Error
	return creatives, err
}
