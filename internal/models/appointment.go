package models

import (
	"time"

	"gorm.io/datatypes"
)

type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusRejected  AppointmentStatus = "rejected"
)

const (
	TypeInPerson     = "In-person"
	TypeTelemedicine = "Telemedicine"
)

type Appointment struct {
	ID         uint64 `gorm:"primaryKey" json:"id"`
	PatientID  uint64 `gorm:"not null;index" json:"patientId"`
	HospitalID uint64 `gorm:"not null;index" json:"hospitalId"`
	// Denormalized by the onboarding resolver so listings render without a join.
	HospitalName    string `gorm:"size:150" json:"hospitalName"`
	HospitalAddress string `gorm:"type:text" json:"hospitalAddress"`

	Doctor    string            `gorm:"size:100" json:"doctor"`
	Specialty string            `gorm:"size:100" json:"specialty"`
	Date      time.Time         `gorm:"type:date" json:"date"`
	Time      string            `gorm:"size:10" json:"time"`
	Type      string            `gorm:"type:enum('In-person','Telemedicine')" json:"type"`
	Status    AppointmentStatus `gorm:"type:enum('pending','confirmed','completed','cancelled','rejected');default:'pending'" json:"status"`
	Reason    string            `gorm:"type:text" json:"reason"`

	AdminNotes     string `gorm:"type:text" json:"adminNotes,omitempty"`
	TransferStatus string `gorm:"size:20" json:"transferStatus,omitempty"`

	ConfirmedByID *uint64    `json:"confirmedBy,omitempty"`
	ConfirmedAt   *time.Time `json:"confirmedAt,omitempty"`

	CancelReason  string     `gorm:"size:255" json:"cancelReason,omitempty"`
	CancelledByID *uint64    `json:"cancelledBy,omitempty"`
	CancelledAt   *time.Time `json:"cancelledAt,omitempty"`

	// List of AppointmentDocument entries, stored as a JSON column.
	Documents datatypes.JSON `gorm:"type:json" json:"documents,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Patient  *User     `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Hospital *Hospital `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
}

type AppointmentDocument struct {
	Type       string    `json:"type"`
	URL        string    `json:"url"`
	Notes      string    `json:"notes,omitempty"`
	UploadedBy uint64    `json:"uploadedBy"`
	UploadedAt time.Time `json:"uploadedAt"`
}

type CreateAppointmentInput struct {
	HospitalID      string `json:"hospitalId"`
	HospitalName    string `json:"hospitalName" binding:"required"`
	HospitalAddress string `json:"hospitalAddress"`
	Doctor          string `json:"doctor" binding:"required"`
	Specialty       string `json:"specialty" binding:"required"`
	Date            string `json:"date" binding:"required"` // YYYY-MM-DD
	Time            string `json:"time" binding:"required"`
	Type            string `json:"type" binding:"required,oneof=In-person Telemedicine"`
	Reason          string `json:"reason" binding:"required"`
}

type UpdateAppointmentInput struct {
	Status         string `json:"status" binding:"omitempty,oneof=pending confirmed completed cancelled rejected"`
	Notes          string `json:"notes"`
	TransferStatus string `json:"transferStatus"`
	CancelReason   string `json:"cancelReason"`
}

type TransferActionInput struct {
	Action string `json:"action" binding:"required,oneof=approve reject"`
}
