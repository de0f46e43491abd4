package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"prodsched/internal/api/handlers"
	"prodsched/internal/api/middleware"
)

func main() {
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	scheduleHandler := handlers.NewScheduleHandler()
	rankHandler := handlers.NewRankHandler()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/schedule", scheduleHandler.RunSchedule)
		api.GET("/rank", rankHandler.RankProducts)
	}

	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
