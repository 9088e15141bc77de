package api

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/strideline/routes-backend-go/internal/config"
	"github.com/strideline/routes-backend-go/internal/handler"
	"github.com/strideline/routes-backend-go/internal/middleware"
	"github.com/strideline/routes-backend-go/internal/repository"
	"github.com/strideline/routes-backend-go/internal/service"
)

// SetupRouter wires repositories, services and handlers onto a gin
// engine.
func SetupRouter(cfg *config.Config, db *sql.DB, log *zap.Logger) *gin.Engine {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))

	// CORS for the dashboard
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Routes Backend API is running",
		})
	})

	activityRepo := repository.NewActivityRepository(db)
	routeRepo := repository.NewRouteRepository(db)

	activityService := service.NewActivityService(activityRepo)
	routeService := service.NewRouteService(log, routeRepo, activityRepo)
	analysisService := service.NewAnalysisService(log, activityRepo)

	activityHandler := handler.NewActivityHandler(activityService, routeService, analysisService)
	routeHandler := handler.NewRouteHandler(routeService)

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(120, time.Minute))
	api.Use(middleware.Auth(cfg.JWTSecret))
	{
		activities := api.Group("/activities")
		{
			activities.POST("", activityHandler.IngestActivity)
			activities.POST("/:id/route", activityHandler.AssignRoute)
			activities.GET("/:id/route", activityHandler.GetActivityRoute)
			activities.GET("/:id/analysis", activityHandler.GetActivityAnalysis)
		}

		routes := api.Group("/routes")
		{
			routes.GET("", routeHandler.ListRoutes)
			routes.GET("/:id/history", routeHandler.GetRouteHistory)
		}
	}

	return r
}
