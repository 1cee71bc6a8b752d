package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"drinks-marketplace-service/internal/cache"
	"drinks-marketplace-service/internal/clients"
	"drinks-marketplace-service/internal/config"
	"drinks-marketplace-service/internal/events"
	"drinks-marketplace-service/internal/handlers"
	"drinks-marketplace-service/internal/middleware"
	"drinks-marketplace-service/internal/models"
	"drinks-marketplace-service/internal/repository"
	"drinks-marketplace-service/internal/services"
)

// @title Drinks Near You API
// @version 1.0.0
// @description Marketplace API for local drink sellers with WhatsApp order hand-off
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.bearer BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// Global logger
var log *logrus.Logger

func main() {
	// Initialize structured logger
	log = logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)

	// Check if running health check
	if len(os.Args) > 1 && os.Args[1] == "health" {
		resp, err := http.Get("http://localhost:8080/health")
		if err != nil || resp.StatusCode != http.StatusOK {
			os.Exit(1)
		}
		os.Exit(0)
	}

	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Warn("Warning: .env file not found, using system environment variables")
	}

	// Initialize configuration
	cfg := config.Load()

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize database")
	}

	// Run database migrations
	if err := runMigrations(db); err != nil {
		log.WithError(err).Fatal("Failed to run migrations")
	}

	// Initialize Redis-backed search cache
	searchCache, err := cache.NewSearchCache(cfg.RedisURL, cfg.CacheTTLSeconds)
	if err != nil {
		log.WithError(err).Warn("Failed to initialize search cache (search results won't be cached)")
	} else {
		log.Info("Search cache initialized")
	}

	// Initialize order events publisher
	eventsPublisher, err := events.NewPublisher(cfg.RedisURL, log)
	if err != nil {
		log.WithError(err).Warn("Failed to initialize events publisher (events won't be published)")
	} else {
		defer eventsPublisher.Close()
		log.Info("Order events publisher initialized")
	}

	// Geocoding client for the nearby-sellers flow
	geocodeClient := clients.NewGeocodeClient(cfg.GeocodeBaseURL)

	// Initialize dependencies
	userRepo := repository.NewUserRepository(db)
	sellerRepo := repository.NewSellerRepository(db)
	drinkRepo := repository.NewDrinkRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	ratingRepo := repository.NewRatingRepository(db)

	sellerService := services.NewSellerService(sellerRepo)
	drinkService := services.NewDrinkService(drinkRepo, searchCache, log)
	orderService := services.NewOrderService(orderRepo, sellerRepo, eventsPublisher)

	authHandler := handlers.NewAuthHandler(userRepo, cfg.JWTSecret)
	sellerHandler := handlers.NewSellerHandler(sellerService, geocodeClient, cfg)
	drinkHandler := handlers.NewDrinkHandler(drinkService, sellerService, cfg)
	orderHandler := handlers.NewOrderHandler(orderService, sellerService, cfg)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteRepo, sellerService)
	ratingHandler := handlers.NewRatingHandler(ratingRepo, sellerService)
	healthHandler := handlers.NewHealthHandler(db)

	// Initialize Gin router
	router := setupRouter(cfg, authHandler, sellerHandler, drinkHandler, orderHandler, favoriteHandler, ratingHandler, healthHandler)

	// Start server
	serverAddr := ":" + cfg.Port
	log.WithFields(logrus.Fields{
		"port":        cfg.Port,
		"environment": cfg.Environment,
		"db_host":     cfg.DBHost,
		"db_name":     cfg.DBName,
	}).Info("Drinks marketplace service starting")

	if err := router.Run(serverAddr); err != nil {
		log.WithError(err).Fatal("Failed to start server")
	}
}

// runMigrations runs database migrations
func runMigrations(db *gorm.DB) error {
	log.Info("Running database migrations...")

	if err := db.AutoMigrate(
		&models.User{},
		&models.Seller{},
		&models.Drink{},
		&models.Order{},
		&models.Favorite{},
		&models.Rating{},
	); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Info("Database migrations completed")
	return nil
}

// setupRouter configures the Gin router with middleware and routes
func setupRouter(
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	sellerHandler *handlers.SellerHandler,
	drinkHandler *handlers.DrinkHandler,
	orderHandler *handlers.OrderHandler,
	favoriteHandler *handlers.FavoriteHandler,
	ratingHandler *handlers.RatingHandler,
	healthHandler *handlers.HealthHandler,
) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// CORS middleware
	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	} else {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	}
	router.Use(cors.New(corsConfig))

	// Health check endpoints (no auth required)
	router.GET("/health", healthHandler.HealthCheck)
	router.GET("/ready", healthHandler.ReadinessCheck)

	// Public routes for browsing and guest checkout
	publicV1 := router.Group("/api/v1/public")
	{
		publicV1.GET("/sellers", sellerHandler.ListSellers)
		publicV1.GET("/sellers/search", sellerHandler.SearchSellers)
		publicV1.GET("/sellers/nearby", sellerHandler.ListNearbySellers)
		publicV1.GET("/sellers/:id", sellerHandler.GetSeller)
		publicV1.GET("/sellers/:id/ratings", ratingHandler.ListSellerRatings)

		publicV1.GET("/drinks", drinkHandler.ListDrinks)
		publicV1.GET("/drinks/:id", drinkHandler.GetDrink)
		publicV1.GET("/categories", drinkHandler.ListCategories)

		publicV1.GET("/addresses/search", sellerHandler.SearchAddresses)

		// Guests check out too; a valid token attaches the order to the account
		publicV1.POST("/orders/checkout", middleware.OptionalAuth(cfg.JWTSecret), orderHandler.Checkout)
	}

	// Auth routes
	auth := router.Group("/api/v1/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	// Authenticated routes
	api := router.Group("/api/v1")
	api.Use(middleware.Auth(cfg.JWTSecret))
	{
		api.GET("/me", authHandler.Me)
		api.PUT("/me", authHandler.UpdateMe)

		api.GET("/orders", orderHandler.ListMyOrders)

		api.GET("/favorites", favoriteHandler.ListFavorites)
		api.POST("/sellers/:id/favorite", favoriteHandler.ToggleFavorite)
		api.POST("/sellers/:id/ratings", ratingHandler.RateSeller)

		// Seller-only routes
		sellers := api.Group("/sellers")
		sellers.Use(middleware.RequireRole(models.UserRoleSeller))
		{
			sellers.POST("", sellerHandler.CreateSeller)
			sellers.GET("/me", sellerHandler.GetMySeller)
			sellers.GET("/orders", orderHandler.ListSellerOrders)
			sellers.GET("/orders/export", orderHandler.ExportSellerOrders)
			sellers.PUT("/:id", sellerHandler.UpdateSeller)
			sellers.DELETE("/:id", sellerHandler.DeleteSeller)
			sellers.GET("/:id/profile-status", sellerHandler.GetProfileStatus)
		}

		drinks := api.Group("/drinks")
		drinks.Use(middleware.RequireRole(models.UserRoleSeller))
		{
			drinks.POST("", drinkHandler.CreateDrink)
			drinks.PUT("/:id", drinkHandler.UpdateDrink)
			drinks.DELETE("/:id", drinkHandler.DeleteDrink)
		}
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}
