// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/farm-tracker/backend/config"
	"github.com/farm-tracker/backend/internal/application/adapter"
	"github.com/farm-tracker/backend/internal/application/usecase/advisor"
	"github.com/farm-tracker/backend/internal/application/usecase/auth"
	"github.com/farm-tracker/backend/internal/application/usecase/category"
	"github.com/farm-tracker/backend/internal/application/usecase/crop"
	"github.com/farm-tracker/backend/internal/application/usecase/dashboard"
	"github.com/farm-tracker/backend/internal/application/usecase/farmer"
	"github.com/farm-tracker/backend/internal/application/usecase/market"
	"github.com/farm-tracker/backend/internal/application/usecase/notification"
	"github.com/farm-tracker/backend/internal/application/usecase/weather"
	"github.com/farm-tracker/backend/internal/infra/server/router"
	"github.com/farm-tracker/backend/internal/integration/adapters"
	"github.com/farm-tracker/backend/internal/integration/cache"
	"github.com/farm-tracker/backend/internal/integration/email"
	"github.com/farm-tracker/backend/internal/integration/email/templates"
	"github.com/farm-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/farm-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/farm-tracker/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	EmailWorker *email.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB) (*Injector, error) {
	logger := slog.Default()

	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	farmerRepo := persistence.NewFarmerRepository(db)
	cropRepo := persistence.NewCropRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	marketRepo := persistence.NewMarketPriceRepository(db)
	weatherRepo := persistence.NewWeatherRepository(db)
	notificationRepo := persistence.NewNotificationRepository(db)
	suggestionRepo := persistence.NewSuggestionRepository(db)
	dashboardRepo := persistence.NewDashboardRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	// Create adapters/services
	clock := adapters.NewSystemClock()
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	geminiService := adapters.NewGeminiService(cfg.Gemini.APIKey)

	redisClient, err := cache.NewRedisClient(cfg.Redis.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	dashboardCache := cache.NewRedisCache(redisClient)

	// Create email infrastructure
	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load email templates: %w", err)
	}
	var emailSender adapter.EmailSender
	if cfg.Email.ResendAPIKey != "" {
		emailSender = email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	} else {
		// Without an API key outgoing mail is captured in memory.
		emailSender = email.NewMockEmailSender()
	}
	emailService := email.NewService(emailQueueRepo)
	emailWorker := email.NewWorker(emailQueueRepo, emailSender, renderer, email.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
	})

	// Create auth use cases
	registerUseCase := auth.NewRegisterUseCase(userRepo, farmerRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUseCase(userRepo, passwordService, tokenService)
	refreshUseCase := auth.NewRefreshUseCase(userRepo, tokenService)
	logoutUseCase := auth.NewLogoutUseCase(tokenService)

	// Create farmer use cases
	listFarmersUseCase := farmer.NewListFarmersUseCase(farmerRepo, cropRepo, clock)
	getFarmerUseCase := farmer.NewGetFarmerUseCase(farmerRepo, cropRepo, clock)
	createFarmerUseCase := farmer.NewCreateFarmerUseCase(farmerRepo)
	updateFarmerUseCase := farmer.NewUpdateFarmerUseCase(farmerRepo)
	deleteFarmerUseCase := farmer.NewDeleteFarmerUseCase(farmerRepo)

	// Create crop use cases
	listCropsUseCase := crop.NewListCropsUseCase(cropRepo, clock)
	getCropUseCase := crop.NewGetCropUseCase(cropRepo, clock)
	createCropUseCase := crop.NewCreateCropUseCase(cropRepo, farmerRepo, categoryRepo)
	updateCropUseCase := crop.NewUpdateCropUseCase(cropRepo, categoryRepo)
	deleteCropUseCase := crop.NewDeleteCropUseCase(cropRepo)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo, cropRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo, cropRepo)

	// Create dashboard use case
	getOverviewUseCase := dashboard.NewGetOverviewUseCase(farmerRepo, cropRepo, dashboardRepo, dashboardCache, clock, logger)

	// Create market price use cases
	recordPriceUseCase := market.NewRecordPriceUseCase(marketRepo)
	listPricesUseCase := market.NewListPricesUseCase(marketRepo)
	comparePriceUseCase := market.NewComparePriceUseCase(marketRepo)

	// Create weather use cases
	recordObservationUseCase := weather.NewRecordObservationUseCase(weatherRepo)
	listObservationsUseCase := weather.NewListObservationsUseCase(weatherRepo)
	listLocationsUseCase := weather.NewListLocationsUseCase(weatherRepo)

	// Create notification use cases
	listNotificationsUseCase := notification.NewListNotificationsUseCase(notificationRepo)
	markReadUseCase := notification.NewMarkReadUseCase(notificationRepo)
	generateRemindersUseCase := notification.NewGenerateRemindersUseCase(
		farmerRepo,
		cropRepo,
		notificationRepo,
		emailService,
		clock,
		logger,
	)

	// Create advisor use cases
	suggestCategoryUseCase := advisor.NewSuggestCategoryUseCase(cropRepo, categoryRepo, suggestionRepo, geminiService, logger)
	listSuggestionsUseCase := advisor.NewListSuggestionsUseCase(suggestionRepo)
	approveSuggestionUseCase := advisor.NewApproveSuggestionUseCase(suggestionRepo, cropRepo)
	rejectSuggestionUseCase := advisor.NewRejectSuggestionUseCase(suggestionRepo)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshUseCase,
		logoutUseCase,
	)

	farmerController := controller.NewFarmerController(
		listFarmersUseCase,
		getFarmerUseCase,
		createFarmerUseCase,
		updateFarmerUseCase,
		deleteFarmerUseCase,
	)

	cropController := controller.NewCropController(
		listCropsUseCase,
		getCropUseCase,
		createCropUseCase,
		updateCropUseCase,
		deleteCropUseCase,
	)

	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		createCategoryUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)

	dashboardController := controller.NewDashboardController(getOverviewUseCase)

	marketController := controller.NewMarketController(
		recordPriceUseCase,
		listPricesUseCase,
		comparePriceUseCase,
	)

	weatherController := controller.NewWeatherController(
		recordObservationUseCase,
		listObservationsUseCase,
		listLocationsUseCase,
	)

	notificationController := controller.NewNotificationController(
		listNotificationsUseCase,
		markReadUseCase,
		generateRemindersUseCase,
	)

	advisorController := controller.NewAdvisorController(
		suggestCategoryUseCase,
		listSuggestionsUseCase,
		approveSuggestionUseCase,
		rejectSuggestionUseCase,
	)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		farmerController,
		cropController,
		categoryController,
		dashboardController,
		marketController,
		weatherController,
		notificationController,
		advisorController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Router:      r,
		EmailWorker: emailWorker,
	}, nil
}
