package handlers

import (
	"log"
	"strings"

	"gorm.io/gorm"

	"swasthyasetu-backend/internal/models"
	"swasthyasetu-backend/pkg/utils"
)

// Placeholder id the frontend sends for hospitals sourced from the external
// map directory, which have no record of their own yet.
const externalHospitalID = "external"

// ResolveHospital maps loose client input (id and/or free-text name) to a
// Hospital record, creating one on the fly when the name is unknown. The
// frontend may book against map-provider results that the store has never
// seen; those are onboarded here on first booking rather than via a
// separate sync step. Returns nil when nothing could be resolved.
func ResolveHospital(db *gorm.DB, id, name, address string) *models.Hospital {
	// 1. Real-looking numeric id, not the map placeholder.
	if id != "" && id != externalHospitalID {
		if pk := utils.StringToUint64(id); pk != 0 {
			var hospital models.Hospital
			if err := db.First(&hospital, pk).Error; err == nil {
				return &hospital
			}
		}
	}

	if name == "" {
		return nil
	}

	// 2. Exact name match.
	var hospital models.Hospital
	if err := db.Where("name = ?", name).First(&hospital).Error; err == nil {
		return &hospital
	}

	// 3. Lazily onboard. Creation failure is logged and swallowed; the
	// booking proceeds without a resolved record.
	hospital = models.Hospital{
		Name:             name,
		City:             CityFromAddress(address),
		Type:             models.HospitalTypePrivate,
		ContactPhone:     "N/A",
		ContactEmergency: "108",
		Address:          address,
	}
	if err := db.Create(&hospital).Error; err != nil {
		log.Printf("Failed to auto-onboard hospital %q: %v", name, err)
		return nil
	}
	return &hospital
}

// CityFromAddress derives a city from a free-text address by taking the
// trimmed substring after the last comma. "Unknown" when there is no
// address or no comma.
func CityFromAddress(address string) string {
	if address == "" {
		return "Unknown"
	}
	idx := strings.LastIndex(address, ",")
	if idx < 0 || idx == len(address)-1 {
		return "Unknown"
	}
	city := strings.TrimSpace(address[idx+1:])
	if city == "" {
		return "Unknown"
	}
	return city
}
