package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"orderdesk/internal/config"
	"orderdesk/internal/server/http/handlers"
	"orderdesk/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.ApprovalFacade, pinger handlers.Pinger, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	healthHandler := handlers.NewHealthHandler(pinger)

	authLimiter := middleware.NewRateLimiter(cfg.AuthRateLimit, cfg.AuthRateBurst).Handler()

	api := engine.Group("/api")
	api.GET("/health", healthHandler.Check)
	api.POST("/register", authLimiter, authHandler.Register)
	api.POST("/login", authLimiter, authHandler.Login)

	orders := api.Group("/orders")
	orders.Use(middleware.AuthRequired(facade))
	orders.GET("", orderHandler.List)
	orders.POST("", orderHandler.Create)
	orders.PUT("", orderHandler.Update)
	orders.PATCH("", orderHandler.Transition)
	orders.DELETE("", orderHandler.Delete)

	return engine
}
