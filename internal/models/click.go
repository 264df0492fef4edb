package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Click is one recorded visit through a link. VisitorID is the dedup cookie
// value; SubIDs carries whatever sub-identifiers the affiliate appended.
type Click struct {
	ID uint `gorm:"primaryKey" json:"id"`

	LinkID uint `gorm:"not null;index" json:"link_id"`

	IPAddress string            `gorm:"size:45" json:"ip_address"`
	UserAgent string            `gorm:"type:text" json:"user_agent"`
	VisitorID string            `gorm:"size:64;index" json:"visitor_id"`
	SubIDs    datatypes.JSONMap `json:"sub_ids,omitempty"`

	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Link Link `gorm:"foreignKey:LinkID" json:"-"`
}

func (Click) TableName() string { return "clicks" }
