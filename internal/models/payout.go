package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Payout is a payment of accrued commission from a brand to an affiliate.
// Status walks pending -> processing -> paid, with declined reachable from
// either live state. TransactionID is set when paid, DeclineReason when declined.
type Payout struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Code string `gorm:"size:50;uniqueIndex;not null" json:"code"`

	BrandID     uint `gorm:"not null;index" json:"brand_id"`
	AffiliateID uint `gorm:"not null;index" json:"affiliate_id"`

	Amount decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Status string          `gorm:"size:20;not null;default:'pending';index" json:"status"`

	Notes         string `gorm:"type:text" json:"notes"`
	TransactionID string `gorm:"size:500" json:"transaction_id"`
	DeclineReason string `gorm:"size:500" json:"decline_reason"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Brand     Brand     `gorm:"foreignKey:BrandID" json:"-"`
	Affiliate Affiliate `gorm:"foreignKey:AffiliateID" json:"-"`
}

func (Payout) TableName() string { return "payouts" }
