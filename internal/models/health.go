package models

import (
	"time"

	"gorm.io/datatypes"
)

// HealthAlert is a public advisory shown on the portal landing page.
type HealthAlert struct {
	ID          uint64 `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"size:150;not null" json:"title"`
	Severity    string `gorm:"type:enum('high','moderate','low')" json:"severity"`
	Type        string `gorm:"type:enum('disease','weather','pollution')" json:"type"`
	Description string `gorm:"type:text" json:"description"`
	// []string stored as JSON columns.
	Symptoms       datatypes.JSON `gorm:"type:json" json:"symptoms,omitempty"`
	PreventionTips datatypes.JSON `gorm:"type:json" json:"preventionTips,omitempty"`
	AffectedAreas  datatypes.JSON `gorm:"type:json" json:"affectedAreas,omitempty"`
	RiskLevel      int            `json:"riskLevel"` // 0-100
	IsActive       bool           `gorm:"default:true" json:"isActive"`
	Source         string         `gorm:"size:150" json:"source,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
}

// PublicHealthLog is an epidemiological data point. Append-only; consumed
// only by the analytics aggregations.
type PublicHealthLog struct {
	ID         uint64    `gorm:"primaryKey" json:"id"`
	Disease    string    `gorm:"size:100;not null;index" json:"disease"`
	State      string    `gorm:"size:100;not null" json:"state"`
	City       string    `gorm:"size:100;not null;index" json:"city"`
	Lat        *float64  `gorm:"type:decimal(11,8)" json:"lat,omitempty"`
	Lng        *float64  `gorm:"type:decimal(11,8)" json:"lng,omitempty"`
	Status     string    `gorm:"type:enum('active','recovered','deceased');default:'active'" json:"status"`
	HospitalID *uint64   `json:"hospitalId,omitempty"`
	ReportedAt time.Time `gorm:"autoCreateTime" json:"reportedAt"`

	Hospital *Hospital `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
}
