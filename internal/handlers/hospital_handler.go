package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"swasthyasetu-backend/internal/config"
	"swasthyasetu-backend/internal/models"
	"swasthyasetu-backend/pkg/utils"
)

// GetHospitals lists the directory, with optional ?city= and ?type= filters.
func GetHospitals(c *gin.Context) {
	query := config.DB.Order("rating desc, name asc")

	if city := c.Query("city"); city != "" {
		query = query.Where("city = ?", city)
	}
	if hType := c.Query("type"); hType != "" {
		query = query.Where("type = ?", hType)
	}

	var hospitals []models.Hospital
	query.Find(&hospitals)

	utils.APIResponse(c, http.StatusOK, true, "Hospitals fetched", hospitals)
}

// GetHospital returns one facility.
func GetHospital(c *gin.Context) {
	var hospital models.Hospital
	if err := config.DB.First(&hospital, c.Param("id")).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Hospital not found", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Hospital fetched", hospital)
}

// GetNearbyHospitals finds facilities within 25 km of a point, closest
// first, using the Haversine formula in SQL (6371 = earth radius in km).
func GetNearbyHospitals(c *gin.Context) {
	lat := utils.StringToFloat(c.Param("lat"))
	lng := utils.StringToFloat(c.Param("lng"))

	if lat == 0 && lng == 0 {
		utils.APIResponse(c, http.StatusBadRequest, false, "Valid lat/lng required", nil)
		return
	}

	radiusKM := 25

	var hospitals []models.Hospital
	err := config.DB.
		Table("hospitals").
		Select("hospitals.*, (6371 * acos(cos(radians(?)) * cos(radians(lat)) * cos(radians(lng) - radians(?)) + sin(radians(?)) * sin(radians(lat)))) AS distance", lat, lng, lat).
		Where("lat IS NOT NULL AND lng IS NOT NULL").
		Having("distance < ?", radiusKM).
		Order("distance ASC").
		Find(&hospitals).Error

	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Failed to search nearby hospitals", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Nearby hospitals fetched", hospitals)
}
