package repository

import (
	"afftrack/internal/models"

	"gorm.io/gorm"
)

type AffiliateRepository struct {
	db *gorm.DB
}

func NewAffiliateRepository(db *gorm.DB) *AffiliateRepository {
	return &AffiliateRepository{db: db}
}

func (r *AffiliateRepository) Create(aff *models.Affiliate) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		aff.Code = provisionalCode()
		if err := tx.Create(aff).Error; err != nil {
			return err
		}
		code, err := mintCode(tx, &models.Affiliate{}, aff.ID, aff.CreatedAt)
		if err != nil {
			return err
		}
		aff.Code = code
		return nil
	})
}

func (r *AffiliateRepository) GetByID(id uint) (*models.Affiliate, error) {
	var aff models.Affiliate
	if err := r.db.First(&aff, id).Error; err != nil {
		return nil, err
	}
	return &aff, nil
}

func (r *AffiliateRepository) GetByCode(code string) (*models.Affiliate, error) {
	var aff models.Affiliate
	if err := r.db.Where("code = ?", code).First(&aff).Error; err != nil {
		return nil, err
	}
	return &aff, nil
}

func (r *AffiliateRepository) ListByBrand(brandID uint, limit, offset int) ([]models.Affiliate, error) {
	var affs []models.Affiliate
	err := r.db.Where("brand_id = ?", brandID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&affs).Error
	return affs, err
}

func (r *AffiliateRepository) Update(aff *models.Affiliate) error {
	return r.db.Save(aff).Error
}
