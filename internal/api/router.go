package api

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Woongicloud/MyGoogleTimeLine-visualizing/internal/handler"
	"github.com/Woongicloud/MyGoogleTimeLine-visualizing/internal/middleware"
	"github.com/Woongicloud/MyGoogleTimeLine-visualizing/internal/repository"
	"github.com/Woongicloud/MyGoogleTimeLine-visualizing/internal/service"
)

// SetupRouter wires the preview API over the stored trajectory.
func SetupRouter(db *sql.DB, logger zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(logger), gin.Recovery())

	// CORS for local preview frontends.
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	trajectoryRepo := repository.NewTrajectoryRepository(db)
	trajectoryService := service.NewTrajectoryService(trajectoryRepo)
	trajectoryHandler := handler.NewTrajectoryHandler(trajectoryService)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "trajectory preview API is running",
		})
	})

	api := r.Group("/api/v1")
	{
		trajectory := api.Group("/trajectory")
		{
			trajectory.GET("/points", trajectoryHandler.GetPoints)
			trajectory.GET("/stats", trajectoryHandler.GetStats)
		}
	}

	return r
}
