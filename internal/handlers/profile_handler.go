package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"swasthyasetu-backend/internal/config"
	"swasthyasetu-backend/internal/models"
	"swasthyasetu-backend/pkg/utils"
)

// requirePortalUser keeps government principals out of the patient-profile
// endpoints: GovernmentUser and User IDs are independent sequences, so a
// government token's ID must never be used to look up a users row. Writes
// the error response itself when the check fails.
func requirePortalUser(c *gin.Context) bool {
	role, _ := c.Get("role")
	if role == "government" {
		utils.APIResponse(c, http.StatusForbidden, false, "Government accounts have no patient profile", nil)
		return false
	}
	return true
}

// GetProfile returns the logged-in patient's record.
func GetProfile(c *gin.Context) {
	if !requirePortalUser(c) {
		return
	}

	userID, _ := c.Get("userID")

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "User not found", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Profile fetched", user)
}

// UpdateProfile updates the mutable demographic fields. Identity fields
// (ABHA ID, mobile, date of birth) are fixed after registration.
func UpdateProfile(c *gin.Context) {
	if !requirePortalUser(c) {
		return
	}

	userID, _ := c.Get("userID")

	var input models.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid input", err.Error())
		return
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "User not found", nil)
		return
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Email != "" {
		user.Email = input.Email
	}
	if input.BloodGroup != "" {
		user.BloodGroup = input.BloodGroup
	}
	if input.Address != "" {
		user.Address = input.Address
	}
	if input.Lat != nil {
		user.Lat = input.Lat
	}
	if input.Lng != nil {
		user.Lng = input.Lng
	}
	if input.City != "" {
		user.City = input.City
	}
	if input.State != "" {
		user.State = input.State
	}
	if input.Country != "" {
		user.Country = input.Country
	}
	if input.EmergencyContact != "" {
		user.EmergencyContact = input.EmergencyContact
	}

	if err := config.DB.Save(&user).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Failed to update profile", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Profile updated", user)
}

// GetMedicalRecords lists the patient's visit summaries, newest first.
func GetMedicalRecords(c *gin.Context) {
	if !requirePortalUser(c) {
		return
	}

	userID, _ := c.Get("userID")

	var records []models.MedicalRecord
	config.DB.
		Where("patient_id = ?", userID).
		Order("record_date desc").
		Find(&records)

	utils.APIResponse(c, http.StatusOK, true, "Medical records fetched", records)
}
