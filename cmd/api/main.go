package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"swasthyasetu-backend/internal/config"
	"swasthyasetu-backend/internal/routes"
	"swasthyasetu-backend/pkg/utils"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found")
	}

	config.ConnectDB()

	utils.InitFCM()
	utils.InitAQI()

	r := gin.Default()

	routes.SetupRoutes(r)

	// Uploaded appointment documents are served from here.
	if err := os.MkdirAll("uploads", 0o755); err != nil {
		log.Fatalf("Failed to create uploads directory: %v", err)
	}
	r.Static("/uploads", "./uploads")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("Server listening on port " + port)
	r.Run(":" + port)
}
