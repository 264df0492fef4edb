package repository

import (
	"errors"

	"afftrack/internal/attribution"
	"afftrack/internal/domain"
	"afftrack/internal/models"

	"gorm.io/gorm"
)

type ConversionRepository struct {
	db *gorm.DB
}

func NewConversionRepository(db *gorm.DB) *ConversionRepository {
	return &ConversionRepository{db: db}
}

// Create inserts the conversion. The unique index on click_id backstops the
// one-click-one-conversion invariant against concurrent postbacks; a
// duplicate-key violation comes back as the typed duplicate error.
func (r *ConversionRepository) Create(conv *models.Conversion) error {
	if err := r.db.Create(conv).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return attribution.ErrDuplicateConversion
		}
		return err
	}
	return nil
}

// ExistsForClick reports whether the click already converted. Callers still
// have to handle the duplicate error from Create: two postbacks can pass this
// check at once and only the insert settles the race.
func (r *ConversionRepository) ExistsForClick(clickID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Conversion{}).Where("click_id = ?", clickID).Count(&count).Error
	return count > 0, err
}

func (r *ConversionRepository) GetByID(id uint) (*models.Conversion, error) {
	var conv models.Conversion
	if err := r.db.First(&conv, id).Error; err != nil {
		return nil, err
	}
	return &conv, nil
}

func (r *ConversionRepository) ListByBrand(brandID uint, status string, limit, offset int) ([]models.Conversion, error) {
	q := r.db.Where("brand_id = ?", brandID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var convs []models.Conversion
	err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&convs).Error
	return convs, err
}

// SetStatus reviews a pending conversion. The status guard in the WHERE
// clause makes concurrent reviews settle to one winner.
func (r *ConversionRepository) SetStatus(id uint, status string) error {
	res := r.db.Model(&models.Conversion{}).
		Where("id = ? AND status = ?", id, domain.ConversionPending).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &attribution.Error{
			Code:    attribution.CodeInvalidTransition,
			Field:   "status",
			Message: "conversion is not pending",
		}
	}
	return nil
}
