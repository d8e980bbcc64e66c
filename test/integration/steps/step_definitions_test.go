package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

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
	"github.com/farm-tracker/backend/internal/domain/entity"
	"github.com/farm-tracker/backend/internal/infra/server/router"
	"github.com/farm-tracker/backend/internal/integration/adapters"
	"github.com/farm-tracker/backend/internal/integration/cache"
	"github.com/farm-tracker/backend/internal/integration/email"
	"github.com/farm-tracker/backend/internal/integration/email/templates"
	"github.com/farm-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/farm-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/farm-tracker/backend/internal/integration/persistence"
	"github.com/farm-tracker/backend/internal/integration/persistence/model"
	"github.com/farm-tracker/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

var tags string

func init() {
	flag.StringVar(&tags, "scenarios", "", "tags to run")
}

func TestFeatures(t *testing.T) {
	flag.Parse()

	suite := godog.TestSuite{
		ScenarioInitializer: func(s *godog.ScenarioContext) {
			InitializeScenario(s)
		},
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			Tags:     tags,
			Strict:   true,
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

type testContext struct {
	uri                   string
	headers               map[string]string
	client                *http.Client
	response              *response
	db                    *mock.Db
	serverPort            int
	accessToken           string
	refreshToken          string
	currentUserID         uuid.UUID
	currentFarmerID       uuid.UUID
	currentCropID         uuid.UUID
	currentCategoryID     uuid.UUID
	currentNotificationID uuid.UUID
	currentSuggestionID   uuid.UUID
}

type response struct {
	status int
	body   any
}

// fixedAdvisor always picks the first offered category, so advisor
// scenarios run without calling the real model.
type fixedAdvisor struct{}

func (a *fixedAdvisor) SuggestCategory(ctx context.Context, _ *entity.Crop, categories []*entity.CropCategory) (*adapter.CategoryAdvice, error) {
	if len(categories) == 0 {
		return nil, nil
	}
	return &adapter.CategoryAdvice{
		CategoryID: categories[0].ID,
		Confidence: 0.9,
		Keywords:   []string{"grain", "staple"},
	}, nil
}

var serverInit sync.Once
var testDB *mock.Db
var testServerPort int
var portInit sync.Once
var testClock = mock.NewTime()
var testEmailSender = email.NewMockEmailSender()
var testRedis = mock.NewRedis()

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
	})
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		serverPort: testServerPort,
		db: mock.NewDb("farm_tracker", map[string]any{
			"users":                &model.UserModel{},
			"refresh_tokens":       &model.RefreshTokenModel{},
			"farmers":              &model.FarmerModel{},
			"crop_categories":      &model.CropCategoryModel{},
			"crops":                &model.CropModel{},
			"market_prices":        &model.MarketPriceModel{},
			"weather_data":         &model.WeatherDataModel{},
			"notifications":        &model.NotificationModel{},
			"category_suggestions": &model.CategorySuggestionModel{},
			"email_queue":          &model.EmailQueueModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		return nil, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// User setup steps
	ctx.Given(`^a user exists with email "([^"]*)"$`, test.aUserExistsWithEmail)
	ctx.Given(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithEmailAndPassword)
	ctx.Given(`^I am logged in as "([^"]*)"$`, test.iAmLoggedInAs)

	// Farm setup steps
	ctx.Given(`^a farmer exists with name "([^"]*)"$`, test.aFarmerExistsWithName)
	ctx.Given(`^a farmer exists with name "([^"]*)" and (\d+) years of experience$`, test.aFarmerExistsWithNameAndExperience)
	ctx.Given(`^a category exists with name "([^"]*)"$`, test.aCategoryExistsWithName)
	ctx.Given(`^a crop exists with name "([^"]*)" for farmer "([^"]*)"$`, test.aCropExistsWithNameForFarmer)
	ctx.Given(`^an uncategorized crop exists with name "([^"]*)" for farmer "([^"]*)"$`, test.anUncategorizedCropExists)
	ctx.Given(`^the crop "([^"]*)" is due for harvest in (\d+) days$`, test.theCropIsDueForHarvestInDays)
	ctx.Given(`^a market price of "([^"]*)" per kg exists for "([^"]*)" at "([^"]*)"$`, test.aMarketPriceExistsFor)
	ctx.Given(`^a pending suggestion exists for the crop$`, test.aPendingSuggestionExistsForTheCrop)
	ctx.Given(`^a notification exists for the farmer with title "([^"]*)"$`, test.aNotificationExistsForTheFarmer)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.refreshToken = ""
	t.currentUserID = uuid.Nil
	t.currentFarmerID = uuid.Nil
	t.currentCropID = uuid.Nil
	t.currentCategoryID = uuid.Nil
	t.currentNotificationID = uuid.Nil
	t.currentSuggestionID = uuid.Nil

	if t.db != nil {
		_ = t.db.ClearDB()
	}
	_ = mock.ClearRedis(testRedis)
	testEmailSender.Reset()
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			// Create repositories
			userRepo := persistence.NewUserRepository(testDB.DbConn)
			tokenRepo := persistence.NewTokenRepository(testDB.DbConn)
			farmerRepo := persistence.NewFarmerRepository(testDB.DbConn)
			cropRepo := persistence.NewCropRepository(testDB.DbConn)
			categoryRepo := persistence.NewCategoryRepository(testDB.DbConn)
			marketRepo := persistence.NewMarketPriceRepository(testDB.DbConn)
			weatherRepo := persistence.NewWeatherRepository(testDB.DbConn)
			notificationRepo := persistence.NewNotificationRepository(testDB.DbConn)
			suggestionRepo := persistence.NewSuggestionRepository(testDB.DbConn)
			dashboardRepo := persistence.NewDashboardRepository(testDB.DbConn)
			emailQueueRepo := persistence.NewEmailQueueRepository(testDB.DbConn)

			// Create adapters/services
			passwordService := adapters.NewPasswordService()
			tokenService := adapters.NewTokenService(testJWTSecret, tokenRepo)
			dashboardCache := cache.NewRedisCache(testRedis)
			emailService := email.NewService(emailQueueRepo)
			categoryAdvisor := &fixedAdvisor{}

			renderer, err := templates.NewRenderer()
			if err != nil {
				panic(fmt.Sprintf("failed to load email templates: %v", err))
			}
			emailWorker := email.NewWorker(emailQueueRepo, testEmailSender, renderer, email.WorkerConfig{
				PollInterval: 200 * time.Millisecond,
				BatchSize:    10,
			})
			go emailWorker.Start(context.Background())

			// Create auth use cases
			registerUseCase := auth.NewRegisterUseCase(userRepo, farmerRepo, passwordService, tokenService)
			loginUseCase := auth.NewLoginUseCase(userRepo, passwordService, tokenService)
			refreshUseCase := auth.NewRefreshUseCase(userRepo, tokenService)
			logoutUseCase := auth.NewLogoutUseCase(tokenService)

			// Create farmer use cases
			listFarmersUseCase := farmer.NewListFarmersUseCase(farmerRepo, cropRepo, testClock)
			getFarmerUseCase := farmer.NewGetFarmerUseCase(farmerRepo, cropRepo, testClock)
			createFarmerUseCase := farmer.NewCreateFarmerUseCase(farmerRepo)
			updateFarmerUseCase := farmer.NewUpdateFarmerUseCase(farmerRepo)
			deleteFarmerUseCase := farmer.NewDeleteFarmerUseCase(farmerRepo)

			// Create crop use cases
			listCropsUseCase := crop.NewListCropsUseCase(cropRepo, testClock)
			getCropUseCase := crop.NewGetCropUseCase(cropRepo, testClock)
			createCropUseCase := crop.NewCreateCropUseCase(cropRepo, farmerRepo, categoryRepo)
			updateCropUseCase := crop.NewUpdateCropUseCase(cropRepo, categoryRepo)
			deleteCropUseCase := crop.NewDeleteCropUseCase(cropRepo)

			// Create category use cases
			listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo, cropRepo)
			createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
			updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
			deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo, cropRepo)

			// Create dashboard use case
			getOverviewUseCase := dashboard.NewGetOverviewUseCase(farmerRepo, cropRepo, dashboardRepo, dashboardCache, testClock, logger)

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
				testClock,
				logger,
			)

			// Create advisor use cases
			suggestCategoryUseCase := advisor.NewSuggestCategoryUseCase(cropRepo, categoryRepo, suggestionRepo, categoryAdvisor, logger)
			listSuggestionsUseCase := advisor.NewListSuggestionsUseCase(suggestionRepo)
			approveSuggestionUseCase := advisor.NewApproveSuggestionUseCase(suggestionRepo, cropRepo)
			rejectSuggestionUseCase := advisor.NewRejectSuggestionUseCase(suggestionRepo)

			// Create controllers
			healthController := controller.NewHealthController(func() bool {
				return testDB != nil && testDB.DbConn != nil
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
			loginRateLimiter := middleware.NewRateLimiter()
			authMiddleware := middleware.NewAuthMiddleware(tokenService)

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
			engine := r.Setup("test")

			addr := fmt.Sprintf(":%d", testServerPort)
			server := &http.Server{
				Addr:    addr,
				Handler: engine,
			}

			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) aUserExistsWithEmail(email string) error {
	return t.createUser(email, "DefaultPass123!", "Test User")
}

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	return t.createUser(email, password, "Test User")
}

func (t *testContext) createUser(email, password, name string) error {
	userID := uuid.New()
	t.currentUserID = userID

	user := &model.UserModel{
		ID:           userID,
		Email:        email,
		Name:         name,
		PasswordHash: hashPassword(password),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	result := t.db.DbConn.Create(user)
	return result.Error
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}

// iAmLoggedInAs creates the user if needed and issues valid tokens for them.
func (t *testContext) iAmLoggedInAs(email string) error {
	var userModel model.UserModel
	if err := t.db.DbConn.Where("email = ?", email).First(&userModel).Error; err != nil {
		if err := t.createUser(email, "SecurePass123!", "Test User "+email); err != nil {
			return err
		}
		if err := t.db.DbConn.Where("email = ?", email).First(&userModel).Error; err != nil {
			return fmt.Errorf("user not found: %w", err)
		}
	}

	t.currentUserID = userModel.ID

	now := time.Now().UTC()

	accessClaims := jwt.MapClaims{
		"user_id":    t.currentUserID.String(),
		"email":      email,
		"token_type": "access",
		"exp":        jwt.NewNumericDate(now.Add(15 * time.Minute)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "farm-tracker",
		"sub":        t.currentUserID.String(),
	}
	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims)
	accessTokenString, err := accessToken.SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to generate access token: %w", err)
	}
	t.accessToken = accessTokenString

	refreshClaims := jwt.MapClaims{
		"user_id":    t.currentUserID.String(),
		"email":      email,
		"token_type": "refresh",
		"exp":        jwt.NewNumericDate(now.Add(7 * 24 * time.Hour)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "farm-tracker",
		"sub":        t.currentUserID.String(),
	}
	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims)
	refreshTokenString, err := refreshToken.SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to generate refresh token: %w", err)
	}
	t.refreshToken = refreshTokenString

	refreshTokenModel := &model.RefreshTokenModel{
		ID:          uuid.New(),
		Token:       t.refreshToken,
		UserID:      t.currentUserID,
		Invalidated: false,
		ExpiresAt:   now.Add(7 * 24 * time.Hour),
		CreatedAt:   now,
	}

	result := t.db.DbConn.Create(refreshTokenModel)
	return result.Error
}

func (t *testContext) aFarmerExistsWithName(name string) error {
	return t.createFarmer(name, 10)
}

func (t *testContext) aFarmerExistsWithNameAndExperience(name string, years int) error {
	return t.createFarmer(name, years)
}

func (t *testContext) createFarmer(name string, years int) error {
	farmerID := uuid.New()
	t.currentFarmerID = farmerID

	now := time.Now().UTC()
	farmerModel := &model.FarmerModel{
		ID:              farmerID,
		Name:            name,
		Phone:           "+91 98765 43210",
		Email:           strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@example.com",
		Address:         "Village Rampur",
		ExperienceYears: years,
		LandAreaAcres:   decimal.NewFromFloat(5.5),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	result := t.db.DbConn.Create(farmerModel)
	return result.Error
}

func (t *testContext) aCategoryExistsWithName(name string) error {
	categoryID := uuid.New()
	t.currentCategoryID = categoryID

	now := time.Now().UTC()
	categoryModel := &model.CropCategoryModel{
		ID:          categoryID,
		Name:        name,
		Description: name + " crops",
		Icon:        "🌾",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	result := t.db.DbConn.Create(categoryModel)
	return result.Error
}

func (t *testContext) aCropExistsWithNameForFarmer(cropName, farmerName string) error {
	categoryID := t.currentCategoryID
	var categoryRef *uuid.UUID
	if categoryID != uuid.Nil {
		categoryRef = &categoryID
	}
	return t.createCrop(cropName, farmerName, categoryRef)
}

func (t *testContext) anUncategorizedCropExists(cropName, farmerName string) error {
	return t.createCrop(cropName, farmerName, nil)
}

func (t *testContext) createCrop(cropName, farmerName string, categoryID *uuid.UUID) error {
	var farmerModel model.FarmerModel
	if err := t.db.DbConn.Where("name = ?", farmerName).First(&farmerModel).Error; err != nil {
		return fmt.Errorf("farmer '%s' not found: %w", farmerName, err)
	}

	cropID := uuid.New()
	t.currentCropID = cropID

	now := time.Now().UTC()
	cropModel := &model.CropModel{
		ID:             cropID,
		Name:           cropName,
		FarmerID:       farmerModel.ID,
		CategoryID:     categoryID,
		Season:         string(entity.SeasonKharif),
		Status:         string(entity.CropStatusGrowing),
		PricePerKg:     decimal.NewFromFloat(40),
		Quantity:       decimal.NewFromFloat(500),
		HarvestDate:    now.AddDate(0, 2, 0),
		InvestmentCost: decimal.NewFromFloat(10000),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	result := t.db.DbConn.Create(cropModel)
	return result.Error
}

func (t *testContext) theCropIsDueForHarvestInDays(cropName string, days int) error {
	harvestDate := time.Now().UTC().AddDate(0, 0, days)
	return t.db.DbConn.Model(&model.CropModel{}).
		Where("name = ?", cropName).
		Update("harvest_date", harvestDate).Error
}

func (t *testContext) aMarketPriceExistsFor(price, cropName, location string) error {
	priceValue, err := decimal.NewFromString(price)
	if err != nil {
		return fmt.Errorf("invalid price '%s': %w", price, err)
	}

	priceModel := &model.MarketPriceModel{
		ID:             uuid.New(),
		CropName:       cropName,
		PricePerKg:     priceValue,
		MarketLocation: location,
		DateRecorded:   time.Now().UTC(),
		Source:         "Manual Entry",
		CreatedAt:      time.Now().UTC(),
	}

	result := t.db.DbConn.Create(priceModel)
	return result.Error
}

func (t *testContext) aPendingSuggestionExistsForTheCrop() error {
	if t.currentCropID == uuid.Nil {
		return errors.New("no current crop; create a crop first")
	}
	if t.currentCategoryID == uuid.Nil {
		return errors.New("no current category; create a category first")
	}

	suggestionID := uuid.New()
	t.currentSuggestionID = suggestionID

	now := time.Now().UTC()
	suggestionModel := &model.CategorySuggestionModel{
		ID:         suggestionID,
		CropID:     t.currentCropID,
		CategoryID: t.currentCategoryID,
		Confidence: 0.85,
		Keywords:   []string{"grain"},
		Status:     string(entity.SuggestionStatusPending),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	result := t.db.DbConn.Create(suggestionModel)
	return result.Error
}

func (t *testContext) aNotificationExistsForTheFarmer(title string) error {
	if t.currentFarmerID == uuid.Nil {
		return errors.New("no current farmer; create a farmer first")
	}

	notificationID := uuid.New()
	t.currentNotificationID = notificationID

	notificationModel := &model.NotificationModel{
		ID:        notificationID,
		FarmerID:  t.currentFarmerID,
		Title:     title,
		Message:   "Test notification message",
		Type:      string(entity.NotificationTypeGeneral),
		IsRead:    false,
		CreatedAt: time.Now().UTC(),
	}

	result := t.db.DbConn.Create(notificationModel)
	return result.Error
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = "" // Clear access token to simulate unauthenticated request
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	path = t.replacePlaceholders(path)
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replacePlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		content := t.replacePlaceholders(body.Content)
		payload = []byte(content)
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{refresh_token}}", t.refreshToken)
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{farmer_id}}", t.currentFarmerID.String())
	content = strings.ReplaceAll(content, "{{crop_id}}", t.currentCropID.String())
	content = strings.ReplaceAll(content, "{{category_id}}", t.currentCategoryID.String())
	content = strings.ReplaceAll(content, "{{notification_id}}", t.currentNotificationID.String())
	content = strings.ReplaceAll(content, "{{suggestion_id}}", t.currentSuggestionID.String())
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var req *http.Request
	var err error

	url := t.uri + path

	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status: resp.StatusCode,
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
	} else {
		t.response.body = responseBody

		// Capture created resource IDs for follow-up requests
		if idStr, ok := responseBody["id"].(string); ok {
			if id, err := uuid.Parse(idStr); err == nil {
				switch {
				case hasKeys(responseBody, "land_area_acres", "experience_bucket"):
					t.currentFarmerID = id
				case hasKeys(responseBody, "season", "status"):
					t.currentCropID = id
				case hasKeys(responseBody, "confidence", "keywords"):
					t.currentSuggestionID = id
				case hasKeys(responseBody, "icon"):
					t.currentCategoryID = id
				}
			}
		}
	}

	return nil
}

func hasKeys(m map[string]any, keys ...string) bool {
	for _, key := range keys {
		if _, ok := m[key]; !ok {
			return false
		}
	}
	return true
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		result := t.db.DbConn.Unscoped().Find(entitySlicePtr.Interface())
		if result.Error != nil {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(content.Content), &criteria); err != nil {
		return err
	}

	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		query := t.db.DbConn.Unscoped()
		for key, value := range criteria {
			query = query.Where(fmt.Sprintf("%s = ?", key), value)
		}

		result := query.Find(entitySlicePtr.Interface())
		if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var objectMap map[string]any
	switch v := object.(type) {
	case map[string]any:
		objectMap = v
	default:
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
