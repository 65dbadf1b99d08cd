package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"swasthyasetu-backend/internal/config"
	"swasthyasetu-backend/internal/models"
	"swasthyasetu-backend/pkg/utils"
)

// Register creates a patient account and returns a token.
func Register(c *gin.Context) {
	var input models.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid input", err.Error())
		return
	}

	dob, err := time.Parse("2006-01-02", input.DateOfBirth)
	if err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid date of birth, expected YYYY-MM-DD", nil)
		return
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Failed to process password", nil)
		return
	}

	user := models.User{
		AbhaID:           input.AbhaID,
		Name:             input.Name,
		Mobile:           input.Mobile,
		Email:            input.Email,
		Password:         hashed,
		DateOfBirth:      dob,
		Gender:           input.Gender,
		BloodGroup:       input.BloodGroup,
		Address:          input.Address,
		Lat:              input.Lat,
		Lng:              input.Lng,
		City:             input.City,
		State:            input.State,
		Country:          input.Country,
		EmergencyContact: input.EmergencyContact,
		Role:             "patient",
	}

	if err := config.DB.Create(&user).Error; err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "ABHA ID or mobile number already registered", nil)
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Role)
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Failed to generate token", nil)
		return
	}

	utils.APIResponse(c, http.StatusCreated, true, "Registration successful", gin.H{
		"token": token,
		"user":  user,
	})
}

// Login authenticates by ABHA ID or mobile number.
func Login(c *gin.Context) {
	var input models.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid input", nil)
		return
	}

	if input.AbhaID == "" && input.Mobile == "" {
		utils.APIResponse(c, http.StatusBadRequest, false, "ABHA ID or mobile number required", nil)
		return
	}

	var user models.User
	query := config.DB
	if input.AbhaID != "" {
		query = query.Where("abha_id = ?", input.AbhaID)
	} else {
		query = query.Where("mobile = ?", input.Mobile)
	}
	if err := query.First(&user).Error; err != nil {
		utils.APIResponse(c, http.StatusUnauthorized, false, "Invalid credentials", nil)
		return
	}

	if !utils.CheckPassword(input.Password, user.Password) {
		utils.APIResponse(c, http.StatusUnauthorized, false, "Invalid credentials", nil)
		return
	}

	// Capture the device token so status changes can be pushed later.
	if input.FCMToken != "" {
		config.DB.Model(&user).Update("fcm_token", input.FCMToken)
	}

	token, err := utils.GenerateToken(user.ID, user.Role)
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Failed to generate token", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Login successful", gin.H{
		"token": token,
		"user": gin.H{
			"id":     user.ID,
			"abhaId": user.AbhaID,
			"name":   user.Name,
			"role":   user.Role,
			"mobile": user.Mobile,
		},
	})
}

// GovLogin authenticates a government analyst by email.
func GovLogin(c *gin.Context) {
	var input models.GovLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid input", nil)
		return
	}

	var gov models.GovernmentUser
	if err := config.DB.Where("email = ?", input.Email).First(&gov).Error; err != nil {
		utils.APIResponse(c, http.StatusUnauthorized, false, "Invalid credentials", nil)
		return
	}

	if !utils.CheckPassword(input.Password, gov.Password) {
		utils.APIResponse(c, http.StatusUnauthorized, false, "Invalid credentials", nil)
		return
	}

	token, err := utils.GenerateToken(gov.ID, "government")
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Failed to generate token", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Login successful", gin.H{
		"token": token,
		"user": gin.H{
			"id":         gov.ID,
			"name":       gov.Name,
			"email":      gov.Email,
			"department": gov.Department,
			"role":       "government",
		},
	})
}

// Me returns the logged-in account.
func Me(c *gin.Context) {
	userID, _ := c.Get("userID")
	role, _ := c.Get("role")

	if role == "government" {
		var gov models.GovernmentUser
		if err := config.DB.First(&gov, userID).Error; err != nil {
			utils.APIResponse(c, http.StatusNotFound, false, "User not found", nil)
			return
		}
		utils.APIResponse(c, http.StatusOK, true, "Profile fetched", gov)
		return
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "User not found", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Profile fetched", user)
}

// Verify reports whether the presented token is still valid. Reaching this
// handler means the auth middleware already accepted it.
func Verify(c *gin.Context) {
	userID, _ := c.Get("userID")
	role, _ := c.Get("role")

	utils.APIResponse(c, http.StatusOK, true, "Token valid", gin.H{
		"userId": userID,
		"role":   role,
	})
}
