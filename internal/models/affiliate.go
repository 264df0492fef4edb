package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Affiliate is a commission-earning partner of a single brand. Email is
// unique per brand, not globally: the same person can partner with many brands.
type Affiliate struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Code string `gorm:"size:50;uniqueIndex;not null" json:"code"`

	BrandID uint `gorm:"not null;index;uniqueIndex:idx_affiliates_brand_email" json:"brand_id"`

	Name         string `gorm:"size:255" json:"name"`
	Email        string `gorm:"size:255;not null;uniqueIndex:idx_affiliates_brand_email" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	PaymentDetails datatypes.JSONMap `json:"payment_details,omitempty"`

	Timezone  string         `gorm:"size:100;not null;default:'UTC'" json:"timezone"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Brand Brand `gorm:"foreignKey:BrandID" json:"-"`
}

func (Affiliate) TableName() string { return "affiliates" }
