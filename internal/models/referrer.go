package models

import (
	"time"

	"gorm.io/gorm"
)

// Referrer is an end customer of a brand who shares referral links. Unlike
// affiliates they come from the brand's own system, so ExternalID carries the
// brand-side identifier and email/credentials are optional.
type Referrer struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Code string `gorm:"size:50;uniqueIndex;not null" json:"code"`

	BrandID uint `gorm:"not null;index;uniqueIndex:idx_referrers_brand_email" json:"brand_id"`

	Name         string  `gorm:"size:255" json:"name"`
	Email        *string `gorm:"size:255;uniqueIndex:idx_referrers_brand_email" json:"email,omitempty"`
	PasswordHash *string `gorm:"size:255" json:"-"`

	ExternalID string `gorm:"size:255;not null" json:"external_id"`
	IsActive   bool   `gorm:"not null;default:true" json:"is_active"`

	Timezone  string         `gorm:"size:100;not null;default:'UTC'" json:"timezone"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Brand Brand `gorm:"foreignKey:BrandID" json:"-"`
}

func (Referrer) TableName() string { return "referrers" }
