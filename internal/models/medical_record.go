package models

import (
	"time"

	"gorm.io/datatypes"
)

// MedicalRecord is a visit summary filed by hospital staff, independent of
// any Appointment. HospitalName is free text, not a reference.
type MedicalRecord struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	PatientID    uint64    `gorm:"not null;index" json:"patientId"`
	RecordDate   time.Time `gorm:"type:date" json:"date"`
	HospitalName string    `gorm:"size:150" json:"hospitalName"`
	Doctor       string    `gorm:"size:100" json:"doctor"`
	Diagnosis    string    `gorm:"type:text" json:"diagnosis"`
	// []string stored as JSON columns.
	Prescriptions datatypes.JSON `gorm:"type:json" json:"prescriptions,omitempty"`
	Documents     datatypes.JSON `gorm:"type:json" json:"documents,omitempty"`
	Notes         string         `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`

	Patient *User `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}
