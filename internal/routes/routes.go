package routes

import (
	"github.com/gin-gonic/gin"

	"swasthyasetu-backend/internal/handlers"
	"swasthyasetu-backend/internal/middleware"
)

func SetupRoutes(r *gin.Engine) {

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RateLimitMiddleware())

	api := r.Group("/api")
	{
		api.GET("/health-check", handlers.HealthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.Register)
			auth.POST("/login", handlers.Login)
			auth.POST("/gov/login", handlers.GovLogin)

			authed := auth.Group("/")
			authed.Use(middleware.AuthMiddleware())
			{
				authed.GET("/me", handlers.Me)
				authed.GET("/verify", handlers.Verify)
			}
		}

		// Public directory and advisories.
		api.GET("/hospitals", handlers.GetHospitals)
		api.GET("/hospitals/nearby/:lat/:lng", handlers.GetNearbyHospitals)
		api.GET("/hospitals/:id", handlers.GetHospital)
		api.GET("/health/alerts", handlers.GetHealthAlerts)
		api.GET("/health/aqi", handlers.GetAQI)

		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/profile", handlers.GetProfile)
			protected.PUT("/profile", handlers.UpdateProfile)
			protected.GET("/profile/records", handlers.GetMedicalRecords)

			protected.POST("/appointments", handlers.CreateAppointment)
			protected.GET("/appointments", handlers.GetMyAppointments)
			protected.DELETE("/appointments/:id", handlers.CancelAppointment)

			admin := protected.Group("/")
			admin.Use(middleware.AdminOnly())
			{
				admin.GET("/appointments/hospital", handlers.GetHospitalAppointments)
				admin.PUT("/appointments/:id", handlers.UpdateAppointment)
				admin.POST("/appointments/:id/documents", handlers.UploadDocument)
				admin.DELETE("/appointments/:id/documents/:docIndex", handlers.DeleteDocument)
				admin.PUT("/appointments/:id/transfer", handlers.HandleTransfer)
			}

			analytics := protected.Group("/analytics")
			analytics.Use(middleware.GovernmentOnly())
			{
				analytics.GET("/disease-map", handlers.GetDiseaseMap)
				analytics.GET("/alerts", handlers.GetCrisisAlerts)
				analytics.GET("/hospital-performance", handlers.GetHospitalPerformance)
				analytics.GET("/outcomes", handlers.GetOutcomeStats)
			}
		}
	}
}
