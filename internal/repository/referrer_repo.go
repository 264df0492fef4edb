package repository

import (
	"afftrack/internal/models"

	"gorm.io/gorm"
)

type ReferrerRepository struct {
	db *gorm.DB
}

func NewReferrerRepository(db *gorm.DB) *ReferrerRepository {
	return &ReferrerRepository{db: db}
}

func (r *ReferrerRepository) Create(ref *models.Referrer) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		ref.Code = provisionalCode()
		if err := tx.Create(ref).Error; err != nil {
			return err
		}
		code, err := mintCode(tx, &models.Referrer{}, ref.ID, ref.CreatedAt)
		if err != nil {
			return err
		}
		ref.Code = code
		return nil
	})
}

func (r *ReferrerRepository) GetByID(id uint) (*models.Referrer, error) {
	var ref models.Referrer
	if err := r.db.First(&ref, id).Error; err != nil {
		return nil, err
	}
	return &ref, nil
}

// GetByExternalID looks a referrer up by the brand-side identifier.
func (r *ReferrerRepository) GetByExternalID(brandID uint, externalID string) (*models.Referrer, error) {
	var ref models.Referrer
	err := r.db.Where("brand_id = ? AND external_id = ?", brandID, externalID).First(&ref).Error
	if err != nil {
		return nil, err
	}
	return &ref, nil
}

func (r *ReferrerRepository) ListByBrand(brandID uint, limit, offset int) ([]models.Referrer, error) {
	var refs []models.Referrer
	err := r.db.Where("brand_id = ?", brandID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&refs).Error
	return refs, err
}

// SetActive flips the soft lifecycle flag.
func (r *ReferrerRepository) SetActive(id uint, active bool) error {
	return r.db.Model(&models.Referrer{}).Where("id = ?", id).Update("is_active", active).Error
}
