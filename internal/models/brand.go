package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Brand is a tenant. Affiliates, referrers, campaigns and links all hang off
// exactly one brand, and brand-scoped uniqueness rules flow from it.
type Brand struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Code string `gorm:"size:50;uniqueIndex;not null" json:"code"`

	Name         string `gorm:"size:255;not null" json:"name"`
	Email        string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	Website        string            `gorm:"size:255" json:"website"`
	TrackingDomain *string           `gorm:"size:255;uniqueIndex" json:"tracking_domain,omitempty"`
	Settings       datatypes.JSONMap `json:"settings,omitempty"`

	Timezone  string         `gorm:"size:100;not null;default:'UTC'" json:"timezone"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Brand) TableName() string { return "brands" }
