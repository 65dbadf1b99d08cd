package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"swasthyasetu-backend/internal/config"
	"swasthyasetu-backend/internal/models"
	"swasthyasetu-backend/pkg/utils"
)

// GetHealthAlerts lists active public advisories, most severe first.
func GetHealthAlerts(c *gin.Context) {
	var alerts []models.HealthAlert
	config.DB.
		Where("is_active = ?", true).
		Order("FIELD(severity, 'high', 'moderate', 'low'), created_at desc").
		Find(&alerts)

	utils.APIResponse(c, http.StatusOK, true, "Health alerts fetched", alerts)
}

// GetAQI proxies the external air quality provider for a city
// (?city=, default Delhi).
func GetAQI(c *gin.Context) {
	city := c.Query("city")
	if city == "" {
		city = "delhi"
	}

	data, err := utils.FetchAQI(city)
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Air quality data unavailable", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "AQI fetched", data)
}

// HealthCheck is the liveness probe.
func HealthCheck(c *gin.Context) {
	utils.APIResponse(c, http.StatusOK, true, "Server OK", gin.H{"status": "up"})
}
