package repository

import (
	"afftrack/internal/models"

	"gorm.io/gorm"
)

type BrandRepository struct {
	db *gorm.DB
}

func NewBrandRepository(db *gorm.DB) *BrandRepository {
	return &BrandRepository{db: db}
}

// Create inserts the brand and mints its short code in one transaction.
func (r *BrandRepository) Create(brand *models.Brand) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		brand.Code = provisionalCode()
		if err := tx.Create(brand).Error; err != nil {
			return err
		}
		code, err := mintCode(tx, &models.Brand{}, brand.ID, brand.CreatedAt)
		if err != nil {
			return err
		}
		brand.Code = code
		return nil
	})
}

func (r *BrandRepository) GetByID(id uint) (*models.Brand, error) {
	var brand models.Brand
	if err := r.db.First(&brand, id).Error; err != nil {
		return nil, err
	}
	return &brand, nil
}

func (r *BrandRepository) GetByCode(code string) (*models.Brand, error) {
	var brand models.Brand
	if err := r.db.Where("code = ?", code).First(&brand).Error; err != nil {
		return nil, err
	}
	return &brand, nil
}

func (r *BrandRepository) List(limit, offset int) ([]models.Brand, error) {
	var brands []models.Brand
	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&brands).Error
	return brands, err
}

func (r *BrandRepository) Update(brand *models.Brand) error {
	return r.db.Save(brand).Error
}
