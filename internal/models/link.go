package models

import (
	"time"

	"gorm.io/gorm"
)

// Link is a trackable token attributing inbound traffic to a brand and,
// depending on its kind, to one affiliate or one referrer, optionally under a
// campaign. Code is the public token that appears in shared URLs.
type Link struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Code string `gorm:"size:100;uniqueIndex;not null" json:"code"`

	BrandID     uint  `gorm:"not null;index" json:"brand_id"`
	AffiliateID *uint `gorm:"index" json:"affiliate_id,omitempty"`
	ReferrerID  *uint `gorm:"index" json:"referrer_id,omitempty"`
	CampaignID  *uint `gorm:"index" json:"campaign_id,omitempty"`

	Kind string `gorm:"size:20;not null" json:"kind"` // affiliate or referral

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Brand     Brand      `gorm:"foreignKey:BrandID" json:"-"`
	Affiliate *Affiliate `gorm:"foreignKey:AffiliateID" json:"-"`
	Referrer  *Referrer  `gorm:"foreignKey:ReferrerID" json:"-"`
	Campaign  *Campaign  `gorm:"foreignKey:CampaignID" json:"-"`
}

func (Link) TableName() string { return "links" }
