package models

import (
	"time"

	"gorm.io/gorm"

	"swasthyasetu-backend/pkg/utils"
)

// User is a portal account. Patients register themselves; doctor/admin
// accounts carry a HospitalID linking them to the facility they manage.
type User struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	AbhaID      string    `gorm:"column:abha_id;uniqueIndex;size:20;not null" json:"abhaId"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Mobile      string    `gorm:"uniqueIndex;size:15;not null" json:"mobile"`
	Email       string    `gorm:"size:100" json:"email,omitempty"`
	Password    string    `gorm:"not null" json:"-"`
	DateOfBirth time.Time `gorm:"type:date" json:"dateOfBirth"`
	// Recomputed from DateOfBirth on every save, never set by callers.
	Age              int       `json:"age"`
	Gender           string    `gorm:"type:enum('Male','Female','Other')" json:"gender"`
	BloodGroup       string    `gorm:"size:3" json:"bloodGroup,omitempty"`
	Address          string    `gorm:"type:text" json:"address"`
	Lat              *float64  `gorm:"type:decimal(11,8)" json:"lat,omitempty"`
	Lng              *float64  `gorm:"type:decimal(11,8)" json:"lng,omitempty"`
	City             string    `gorm:"size:100" json:"city,omitempty"`
	State            string    `gorm:"size:100" json:"state,omitempty"`
	Country          string    `gorm:"size:100" json:"country,omitempty"`
	EmergencyContact string    `gorm:"size:100" json:"emergencyContact,omitempty"`
	Role             string    `gorm:"type:enum('patient','doctor','admin');default:'patient'" json:"role"`
	HospitalID       *uint64   `json:"hospitalId,omitempty"`
	FCMToken         string    `gorm:"column:fcm_token;size:255" json:"-"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`

	Hospital *Hospital `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
}

// BeforeSave keeps Age in sync with DateOfBirth.
func (u *User) BeforeSave(tx *gorm.DB) error {
	if !u.DateOfBirth.IsZero() {
		u.Age = utils.AgeFromDOB(u.DateOfBirth, time.Now())
	}
	return nil
}

// GovernmentUser is a separate principal for the analytics dashboards.
// Seeded from env at startup; logs in with email.
type GovernmentUser struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Email       string    `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password    string    `gorm:"not null" json:"-"`
	Department  string    `gorm:"size:100" json:"department"`
	Designation string    `gorm:"size:100" json:"designation"`
	CreatedAt   time.Time `json:"createdAt"`
}

type RegisterInput struct {
	AbhaID           string   `json:"abhaId" binding:"required"`
	Name             string   `json:"name" binding:"required"`
	Mobile           string   `json:"mobile" binding:"required,len=10"`
	Email            string   `json:"email" binding:"omitempty,email"`
	Password         string   `json:"password" binding:"required,min=6"`
	DateOfBirth      string   `json:"dateOfBirth" binding:"required"` // YYYY-MM-DD
	Gender           string   `json:"gender" binding:"required,oneof=Male Female Other"`
	BloodGroup       string   `json:"bloodGroup" binding:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Address          string   `json:"address"`
	Lat              *float64 `json:"lat"`
	Lng              *float64 `json:"lng"`
	City             string   `json:"city"`
	State            string   `json:"state"`
	Country          string   `json:"country"`
	EmergencyContact string   `json:"emergencyContact"`
}

// Login accepts either the ABHA ID or the mobile number.
type LoginInput struct {
	AbhaID   string `json:"abhaId"`
	Mobile   string `json:"mobile"`
	Password string `json:"password" binding:"required"`
	FCMToken string `json:"fcmToken"`
}

type GovLoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileInput struct {
	Name             string   `json:"name"`
	Email            string   `json:"email" binding:"omitempty,email"`
	BloodGroup       string   `json:"bloodGroup" binding:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Address          string   `json:"address"`
	Lat              *float64 `json:"lat"`
	Lng              *float64 `json:"lng"`
	City             string   `json:"city"`
	State            string   `json:"state"`
	Country          string   `json:"country"`
	EmergencyContact string   `json:"emergencyContact"`
}
