package main

import (
	"log"
	"net/http"
	"os"

	"fastbites-api/config"
	"fastbites-api/handlers"
	"fastbites-api/mailer"
	"fastbites-api/middleware"
	"fastbites-api/payments"
	"fastbites-api/routes"
	"fastbites-api/upload"

	"github.com/gin-gonic/gin"
)

func main() {
	// Set Gin mode
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	// Initialize database
	config.InitDB()

	// Wire external services
	handlers.Payments = payments.NewStripeClient(config.StripeSecretKey)
	handlers.Mail = mailer.NewSMTPMailer(config.SMTPHost, config.SMTPPort, config.SMTPUser, config.SMTPPass, config.MailFrom)
	uploader, err := upload.NewCloudinaryUploader(config.CloudinaryURL)
	if err != nil {
		log.Fatal("Failed to configure image uploads:", err)
	}
	handlers.Images = uploader

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()
	r.Use(middleware.RequestID())

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", config.FrontendURL)
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		c.Header("Access-Control-Allow-Credentials", "true")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "FastBites API",
			"version": "1.0.0",
		})
	})

	// Register all routes
	routes.SetupRoutes(r)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
