package models

import (
	"time"

	"gorm.io/gorm"
)

// Creative is a promotional asset (banner, text snippet, video) attached to a
// campaign for affiliates to embed alongside their links.
type Creative struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Code string `gorm:"size:50;uniqueIndex;not null" json:"code"`

	CampaignID uint `gorm:"not null;index" json:"campaign_id"`

	Name string `gorm:"size:255;not null" json:"name"`
	Type string `gorm:"size:50;not null" json:"type"`
	Path string `gorm:"size:1024;not null" json:"path"`

	IsActive bool `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Campaign Campaign `gorm:"foreignKey:CampaignID" json:"-"`
}

func (Creative) TableName() string { return "creatives" }
