package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"homeveda_backend/internal/database"
	"homeveda_backend/internal/router"
	"homeveda_backend/internal/storage"
	"homeveda_backend/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Initialize Logger
	utils.InitLogger()

	// Load configuration from environment variables
	mongoURI := utils.Getenv("MONGO_URI", "mongodb://localhost:27017")
	mongoDB := utils.Getenv("MONGO_DB", "homeveda")
	s3Bucket := utils.Getenv("S3_BUCKET", "homeveda-uploads")
	awsRegion := utils.Getenv("AWS_REGION", "ap-south-1")

	// Initialize Database
	database.InitDB(mongoURI, mongoDB)
	utils.LogInfo("Database initialized", map[string]interface{}{"database": mongoDB})
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		database.Close(ctx)
	}()

	// Initialize object storage
	store, err := storage.NewS3Storage(context.Background(), s3Bucket, awsRegion)
	if err != nil {
		utils.LogError(err, "Failed to initialize object storage")
		log.Fatalf("Failed to initialize object storage: %v", err)
	}
	utils.LogInfo("Object storage initialized", map[string]interface{}{"bucket": s3Bucket, "region": awsRegion})

	engine := gin.Default()

	// Add GinLogger middleware for request logging
	engine.Use(utils.GinLogger())

	// CORS configuration
	corsAllowedOriginsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	var allowedOrigins []string
	if corsAllowedOriginsEnv != "" {
		allowedOrigins = strings.Split(corsAllowedOriginsEnv, ",")
	} else {
		allowedOrigins = []string{"http://localhost:3000", "http://localhost:3001"}
	}

	config := cors.DefaultConfig()
	config.AllowOrigins = allowedOrigins
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	config.AllowCredentials = true
	engine.Use(cors.New(config))

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Setup all application routes
	router.Setup(engine, database.GetDB(), store)

	// Server port configuration
	port := utils.Getenv("PORT", "5500")
	utils.LogInfo("Server starting", map[string]interface{}{"port": port})

	if err := engine.Run(":" + port); err != nil {
		utils.LogError(err, "Failed to start server")
		log.Fatalf("Failed to start server: %v", err)
	}
}
