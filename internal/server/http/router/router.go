package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"campustap/internal/server/http/handlers"
	"campustap/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.AccessFacade, health handlers.HealthChecker, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	studentHandler := handlers.NewStudentHandler(facade, logger)
	tapHandler := handlers.NewTapHandler(facade, logger)
	healthHandler := handlers.NewHealthHandler(health)

	api := engine.Group("/api")
	api.GET("/health", healthHandler.Check)

	students := api.Group("/students")
	students.POST("", studentHandler.Register)
	students.GET("", studentHandler.List)
	students.GET("/:rfid", studentHandler.Get)
	students.GET("/:rfid/taps", tapHandler.History)

	api.POST("/taps", tapHandler.Record)

	return engine
}
