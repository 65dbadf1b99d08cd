package config

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"swasthyasetu-backend/internal/models"
	"swasthyasetu-backend/pkg/utils"
)

var DB *gorm.DB

func ConnectDB() {
	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		user := getEnv("DB_USER", "root")
		pass := getEnv("DB_PASSWORD", "")
		host := getEnv("DB_HOST", "127.0.0.1")
		port := getEnv("DB_PORT", "3306")
		name := getEnv("DB_NAME", "swasthyasetu")
		dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			user, pass, host, port, name)
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.GovernmentUser{},
		&models.Hospital{},
		&models.Appointment{},
		&models.MedicalRecord{},
		&models.HealthAlert{},
		&models.PublicHealthLog{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	DB = db
	log.Println("Database connected")

	SeedGovernmentUser(db)
	SeedHospitals(db)
}

// SeedGovernmentUser creates the demo government account from env, so demo
// credentials live in configuration instead of code.
func SeedGovernmentUser(db *gorm.DB) {
	email := os.Getenv("GOV_DEMO_EMAIL")
	password := os.Getenv("GOV_DEMO_PASSWORD")
	if email == "" || password == "" {
		return
	}

	var count int64
	db.Model(&models.GovernmentUser{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		log.Printf("Failed to hash demo government password: %v", err)
		return
	}

	gov := models.GovernmentUser{
		Name:        getEnv("GOV_DEMO_NAME", "Health Department Officer"),
		Email:       email,
		Password:    hashed,
		Department:  getEnv("GOV_DEMO_DEPARTMENT", "Ministry of Health"),
		Designation: getEnv("GOV_DEMO_DESIGNATION", "Analyst"),
	}
	if err := db.Create(&gov).Error; err != nil {
		log.Printf("Failed to seed government user: %v", err)
		return
	}
	log.Println("Seeded demo government user:", email)
}

// SeedHospitals fills an empty directory with a few well-known facilities
// so a fresh install has something to book against.
func SeedHospitals(db *gorm.DB) {
	var count int64
	db.Model(&models.Hospital{}).Count(&count)
	if count > 0 {
		return
	}

	coord := func(v float64) *float64 { return &v }

	hospitals := []models.Hospital{
		{
			Name: "AIIMS Delhi", City: "Delhi", Type: models.HospitalTypeGovernment,
			BedsTotal: 2478, BedsAvailable: 312, ICUBeds: 180, ICUBedsAvailable: 24,
			HasOxygen: true, HasVentilators: true, HasBloodBank: true,
			ContactPhone: "011-26588500", ContactEmergency: "108",
			Address: "Ansari Nagar East, New Delhi, Delhi",
			Lat:     coord(28.5672), Lng: coord(77.2100), Rating: 4.6,
		},
		{
			Name: "KEM Hospital", City: "Mumbai", Type: models.HospitalTypeGovernment,
			BedsTotal: 1800, BedsAvailable: 240, ICUBeds: 120, ICUBedsAvailable: 15,
			HasOxygen: true, HasVentilators: true, HasBloodBank: true,
			ContactPhone: "022-24107000", ContactEmergency: "108",
			Address: "Acharya Donde Marg, Parel, Mumbai",
			Lat:     coord(19.0027), Lng: coord(72.8416), Rating: 4.3,
		},
		{
			Name: "Ruby Hall Clinic", City: "Pune", Type: models.HospitalTypePrivate,
			BedsTotal: 750, BedsAvailable: 95, ICUBeds: 60, ICUBedsAvailable: 8,
			HasOxygen: true, HasVentilators: true, HasBloodBank: true,
			ContactPhone: "020-66455100", ContactEmergency: "108",
			Address: "40 Sassoon Road, Pune",
			Lat:     coord(18.5308), Lng: coord(73.8774), Rating: 4.4,
		},
	}

	if err := db.Create(&hospitals).Error; err != nil {
		log.Printf("Failed to seed hospitals: %v", err)
		return
	}
	log.Printf("Seeded %d hospitals", len(hospitals))
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
