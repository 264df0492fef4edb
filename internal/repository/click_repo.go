package repository

import (
	"afftrack/internal/models"

	"gorm.io/gorm"
)

type ClickRepository struct {
	db *gorm.DB
}

func NewClickRepository(db *gorm.DB) *ClickRepository {
	return &ClickRepository{db: db}
}

func (r *ClickRepository) Create(click *models.Click) error {
	return r.db.Create(click).Error
}

func (r *ClickRepository) GetByID(id uint) (*models.Click, error) {
	var click models.Click
	if err := r.db.First(&click, id).Error; err != nil {
		return nil, err
	}
	return &click, nil
}

func (r *ClickRepository) ListByLink(linkID uint, limit, offset int) ([]models.Click, error) {
	var clicks []models.Click
	err := r.db.Where("link_id = ?", linkID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&clicks).Error
	return clicks, err
}

func (r *ClickRepository) CountByLink(linkID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Click{}).Where("link_id = ?", linkID).Count(&count).Error
	return count, err
}
