package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	HospitalTypeGovernment = "Government"
	HospitalTypePrivate    = "Private"
	HospitalTypeTrust      = "Trust"
)

type Hospital struct {
	ID   uint64 `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:150;not null" json:"name"`
	City string `gorm:"size:100" json:"city"`
	Type string `gorm:"type:enum('Government','Private','Trust');default:'Private'" json:"type"`

	BedsTotal        int `gorm:"default:0" json:"bedsTotal"`
	BedsAvailable    int `gorm:"default:0" json:"bedsAvailable"`
	ICUBeds          int `gorm:"column:icu_beds;default:0" json:"icuBeds"`
	ICUBedsAvailable int `gorm:"column:icu_beds_available;default:0" json:"icuBedsAvailable"`

	HasOxygen      bool `gorm:"default:false" json:"hasOxygen"`
	HasVentilators bool `gorm:"default:false" json:"hasVentilators"`
	HasBloodBank   bool `gorm:"default:false" json:"hasBloodBank"`

	ContactPhone     string `gorm:"size:20;not null" json:"contactPhone"`
	ContactEmail     string `gorm:"size:100" json:"contactEmail,omitempty"`
	ContactEmergency string `gorm:"size:20;default:'108'" json:"contactEmergency"`

	Address string   `gorm:"type:text;not null" json:"address"`
	Lat     *float64 `gorm:"type:decimal(11,8)" json:"lat,omitempty"`
	Lng     *float64 `gorm:"type:decimal(11,8)" json:"lng,omitempty"`
	Rating  float64  `gorm:"default:0" json:"rating"`

	// List of Department entries, stored as a JSON column.
	Departments datatypes.JSON `gorm:"type:json" json:"departments,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Department struct {
	Name    string   `json:"name"`
	Doctors []Doctor `json:"doctors"`
}

type Doctor struct {
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Available bool   `json:"available"`
}
