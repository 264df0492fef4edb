package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Conversion is a business outcome (sale, signup) matched back to exactly one
// click. ClickID is unique: a click converts at most once. BrandID is
// denormalized from the click's link so brand reports never need the join.
type Conversion struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClickID uint `gorm:"not null;uniqueIndex" json:"click_id"`
	BrandID uint `gorm:"not null;index" json:"brand_id"`

	SaleAmount       *decimal.Decimal `gorm:"type:decimal(10,2)" json:"sale_amount,omitempty"`
	CommissionAmount decimal.Decimal  `gorm:"type:decimal(10,2);not null;default:0.00" json:"commission_amount"`

	Status   string            `gorm:"size:50;not null;default:'pending';index" json:"status"`
	Metadata datatypes.JSONMap `json:"metadata,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Click Click `gorm:"foreignKey:ClickID" json:"-"`
	Brand Brand `gorm:"foreignKey:BrandID" json:"-"`
}

func (Conversion) TableName() string { return "conversions" }
