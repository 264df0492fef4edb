package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Campaign groups links, creatives and commission rules under a brand.
type Campaign struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Code string `gorm:"size:50;uniqueIndex;not null" json:"code"`

	BrandID uint `gorm:"not null;index" json:"brand_id"`

	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`

	IsActive bool              `gorm:"not null;default:true" json:"is_active"`
	Settings datatypes.JSONMap `json:"settings,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Brand           Brand            `gorm:"foreignKey:BrandID" json:"-"`
	CommissionRates []CommissionRate `gorm:"foreignKey:CampaignID" json:"commission_rates,omitempty"`
}

func (Campaign) TableName() string { return "campaigns" }
