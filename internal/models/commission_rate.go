package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CommissionRate is the payout rule for conversions under a campaign:
// either a fixed amount per conversion or a percentage of the sale amount.
type CommissionRate struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Code string `gorm:"size:50;uniqueIndex;not null" json:"code"`

	CampaignID uint `gorm:"not null;index" json:"campaign_id"`

	Title string          `gorm:"size:255;not null" json:"title"`
	Kind  string          `gorm:"size:20;not null" json:"kind"` // fixed or percent
	Value decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"value"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Campaign Campaign `gorm:"foreignKey:CampaignID" json:"-"`
}

func (CommissionRate) TableName() string { return "commission_rates" }
