package repository

import (
	"afftrack/internal/models"

	"gorm.io/gorm"
)

type LinkRepository struct {
	db *gorm.DB
}

func NewLinkRepository(db *gorm.DB) *LinkRepository {
	return &LinkRepository{db: db}
}

func (r *LinkRepository) Create(link *models.Link) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		link.Code = provisionalCode()
		if err := tx.Create(link).Error; err != nil {
			return err
		}
		code, err := mintCode(tx, &models.Link{}, link.ID, link.CreatedAt)
		if err != nil {
			return err
		}
		link.Code = code
		return nil
	})
}

func (r *LinkRepository) GetByID(id uint) (*models.Link, error) {
	var link models.Link
	if err := r.db.First(&link, id).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

// GetByCode resolves a public tracking token, with the owning brand preloaded
// for the redirect destination.
func (r *LinkRepository) GetByCode(code string) (*models.Link, error) {
	var link models.Link
	err := r.db.Preload("Brand").Where("code = ?", code).First(&link).Error
	if err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *LinkRepository) ListByBrand(brandID uint, limit, offset int) ([]models.Link, error) {
	var links []models.Link
	err := r.db.Where("brand_id = ?", brandID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&links).Error
	return links, err
}

func (r *LinkRepository) ListByAffiliate(affiliateID uint, limit, offset int) ([]models.Link, error) {
	var links []models.Link
	err := r.db.Where("affiliate_id = ?", affiliateID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&links).Error
	return links, err
}
