// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/farm-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/farm-tracker/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                 *gin.Engine
	healthController       *controller.HealthController
	authController         *controller.AuthController
	farmerController       *controller.FarmerController
	cropController         *controller.CropController
	categoryController     *controller.CategoryController
	dashboardController    *controller.DashboardController
	marketController       *controller.MarketController
	weatherController      *controller.WeatherController
	notificationController *controller.NotificationController
	advisorController      *controller.AdvisorController
	loginRateLimiter       *middleware.RateLimiter
	authMiddleware         *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	farmerController *controller.FarmerController,
	cropController *controller.CropController,
	categoryController *controller.CategoryController,
	dashboardController *controller.DashboardController,
	marketController *controller.MarketController,
	weatherController *controller.WeatherController,
	notificationController *controller.NotificationController,
	advisorController *controller.AdvisorController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:       healthController,
		authController:         authController,
		farmerController:       farmerController,
		cropController:         cropController,
		categoryController:     categoryController,
		dashboardController:    dashboardController,
		marketController:       marketController,
		weatherController:      weatherController,
		notificationController: notificationController,
		advisorController:      advisorController,
		loginRateLimiter:       loginRateLimiter,
		authMiddleware:         authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.Refresh)
				auth.POST("/logout", r.authController.Logout)
			}
		}

		// Farmer routes (require authentication)
		if r.farmerController != nil && r.authMiddleware != nil {
			farmers := v1.Group("/farmers")
			farmers.Use(r.authMiddleware.Authenticate())
			{
				farmers.GET("", r.farmerController.List)
				farmers.POST("", r.farmerController.Create)
				farmers.GET("/:id", r.farmerController.Get)
				farmers.PATCH("/:id", r.farmerController.Update)
				farmers.DELETE("/:id", r.farmerController.Delete)
			}
		}

		// Crop routes (require authentication)
		if r.cropController != nil && r.authMiddleware != nil {
			crops := v1.Group("/crops")
			crops.Use(r.authMiddleware.Authenticate())
			{
				crops.GET("", r.cropController.List)
				crops.POST("", r.cropController.Create)
				crops.GET("/:id", r.cropController.Get)
				crops.PATCH("/:id", r.cropController.Update)
				crops.DELETE("/:id", r.cropController.Delete)
			}
		}

		// Category routes (require authentication)
		if r.categoryController != nil && r.authMiddleware != nil {
			categories := v1.Group("/categories")
			categories.Use(r.authMiddleware.Authenticate())
			{
				categories.GET("", r.categoryController.List)
				categories.POST("", r.categoryController.Create)
				categories.PATCH("/:id", r.categoryController.Update)
				categories.DELETE("/:id", r.categoryController.Delete)
			}
		}

		// Dashboard routes (require authentication)
		if r.dashboardController != nil && r.authMiddleware != nil {
			dashboard := v1.Group("/dashboard")
			dashboard.Use(r.authMiddleware.Authenticate())
			{
				dashboard.GET("", r.dashboardController.Overview)
			}
		}

		// Market price routes (require authentication)
		if r.marketController != nil && r.authMiddleware != nil {
			marketPrices := v1.Group("/market-prices")
			marketPrices.Use(r.authMiddleware.Authenticate())
			{
				marketPrices.GET("", r.marketController.List)
				marketPrices.POST("", r.marketController.Record)
				marketPrices.POST("/compare", r.marketController.Compare)
			}
		}

		// Weather routes (require authentication)
		if r.weatherController != nil && r.authMiddleware != nil {
			weather := v1.Group("/weather")
			weather.Use(r.authMiddleware.Authenticate())
			{
				weather.GET("", r.weatherController.List)
				weather.POST("", r.weatherController.Record)
				weather.GET("/locations", r.weatherController.Locations)
			}
		}

		// Notification routes (require authentication)
		if r.notificationController != nil && r.authMiddleware != nil {
			notifications := v1.Group("/notifications")
			notifications.Use(r.authMiddleware.Authenticate())
			{
				notifications.GET("", r.notificationController.List)
				notifications.POST("/generate", r.notificationController.GenerateReminders)
				notifications.POST("/:id/read", r.notificationController.MarkRead)
			}
		}

		// Category advisor routes (require authentication)
		if r.advisorController != nil && r.authMiddleware != nil {
			suggestions := v1.Group("/suggestions")
			suggestions.Use(r.authMiddleware.Authenticate())
			{
				suggestions.GET("", r.advisorController.List)
				suggestions.POST("", r.advisorController.Suggest)
				suggestions.POST("/:id/approve", r.advisorController.Approve)
				suggestions.POST("/:id/reject", r.advisorController.Reject)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
