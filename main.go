package main

import (
	"context"
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/wen-dev/wen_backend/config"
	"github.com/wen-dev/wen_backend/controllers"
	"github.com/wen-dev/wen_backend/middleware"
	"github.com/wen-dev/wen_backend/repositories"
	"github.com/wen-dev/wen_backend/routes"
	"github.com/wen-dev/wen_backend/services"
)

// CustomValidator is a custom validator for Echo
type CustomValidator struct {
	validator *validator.Validate
}

// Validate validates the request body
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found")
	}

	// Initialize Firebase
	config.InitFirebase()

	// Connect to Redis
	redisClient := config.ConnectRedis()
	defer config.CloseRedis()

	// Connect to database
	client := config.ConnectDB()
	db := client.Database(config.DBName())
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()

	// Create a new Echo instance
	e := echo.New()

	// Initialize custom validator
	customValidator := &CustomValidator{validator: validator.New()}
	e.Validator = customValidator

	// Initialize rate limiter
	rateLimiter := middleware.NewRateLimiter()

	// Middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.Secure())
	e.Use(rateLimiter.RateLimit())

	e.Match([]string{"GET", "HEAD"}, "/", func(c echo.Context) error {
		return c.JSON(200, map[string]string{
			"status":  "OK",
			"message": "Wen Backend is running",
			"version": "1.0",
		})
	})

	e.Match([]string{"GET", "HEAD"}, "/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{
			"status":   "healthy",
			"database": "connected",
		})
	})

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	businessRepo := repositories.NewBusinessRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	queueRepo := repositories.NewQueueRepository(db)

	// Initialize the identity provider used by the user-deletion cascade
	identity, err := services.NewFirebaseIdentity(context.Background(), config.FirebaseApp)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase auth client: %v", err)
	}

	// Initialize services
	dispatcher := services.NewDispatcher()
	embeddingService := services.NewEmbeddingService(queueRepo)
	categoryService := services.NewCategoryService(categoryRepo, redisClient)
	businessService := services.NewBusinessService(businessRepo, categoryRepo, dispatcher)
	moderationService := services.NewModerationService(userRepo, businessRepo)
	lifecycleService := services.NewUserLifecycleService(userRepo, businessRepo, identity)

	// Every business write re-queues the business for indexing
	dispatcher.OnBusinessChange(embeddingService.Enqueue)

	// Background sweeps over the indexing queue
	dispatcher.Every("embedding-sync", services.DefaultSyncInterval, func(ctx context.Context) error {
		_, err := embeddingService.ClaimBatch(ctx, services.DefaultClaimLimit)
		return err
	})
	dispatcher.Every("embedding-reclaim", services.DefaultStaleClaimAge, func(ctx context.Context) error {
		_, err := embeddingService.ReclaimStale(ctx, services.DefaultStaleClaimAge)
		return err
	})

	// Initialize controllers
	authController := controllers.NewAuthController(userRepo)
	adminController := controllers.NewAdminController(userRepo, lifecycleService)
	approvalController := controllers.NewApprovalController(moderationService)
	categoryController := controllers.NewCategoryController(categoryService)
	businessController := controllers.NewBusinessController(businessService)
	embeddingController := controllers.NewEmbeddingController(embeddingService)

	// Register routes
	routes.RegisterAdminRoutes(e, authController, adminController, approvalController, embeddingController)
	routes.RegisterCategoryRoutes(e, categoryController)
	routes.RegisterBusinessRoutes(e, businessController)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Starting server on port %s", port)
	e.Logger.Fatal(e.Start(":" + port))
}
