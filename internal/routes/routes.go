// Package routes defines the API routing configuration.
// It sets up all HTTP routes and their corresponding handlers,
// including middleware and authentication requirements.
package routes

import (
	"context"
	"fmt"
	"time"

	"moneybag/internal/config"
	"moneybag/internal/handlers"
	"moneybag/internal/metrics"
	"moneybag/internal/middleware"
	"moneybag/internal/models"
	"moneybag/internal/repositories"
	"moneybag/internal/repositories/cache"
	"moneybag/internal/services/auth"
	"moneybag/internal/services/onboarding"
	"moneybag/internal/services/pricing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"gorm.io/gorm"
)

// DefaultPricingConfigPath is the bundled rules file used when no version
// has been stored yet.
const DefaultPricingConfigPath = "configs/pricing-rules.json"

// SetupRoutes configures all application routes.
// It groups routes by functionality and applies appropriate middleware.
func SetupRoutes(app *fiber.App, db *gorm.DB, cacheService *cache.CacheService) {
	collector := metrics.NewCollector()

	// Repositories
	configRepo := repositories.NewPricingConfigRepository(db)
	quoteRepo := repositories.NewQuoteRepository(db)
	applicationRepo := repositories.NewApplicationRepository(db)

	// Services
	pricingService := pricing.NewService(
		configRepo,
		pricing.NewFileSource(config.GetEnv("PRICING_CONFIG_PATH", DefaultPricingConfigPath)),
		quoteRepo,
		cacheService,
		collector,
	)
	onboardingService := onboarding.NewService(applicationRepo, pricingService)
	authService := auth.NewService(
		auth.Credentials{
			Email:        config.GetEnv("ADMIN_EMAIL", ""),
			PasswordHash: config.GetEnv("ADMIN_PASSWORD_HASH", ""),
		},
		config.GetEnv("JWT_SECRET", ""),
		config.GetDurationEnv("JWT_TTL", 12*time.Hour),
	)

	// Handlers
	pricingHandler := handlers.NewPricingHandler(pricingService)
	onboardingHandler := handlers.NewOnboardingHandler(onboardingService)
	authHandler := handlers.NewAuthHandler(authService)
	healthHandler := handlers.NewHealthHandler(map[string]handlers.HealthCheck{
		"database": func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return fmt.Errorf("failed to get database instance: %w", err)
			}
			return sqlDB.PingContext(ctx)
		},
		"redis": cacheService.HealthCheck,
	})
	authMiddleware := middleware.NewAuthMiddleware(authService)

	app.Get("/", handlers.Welcome)
	app.Get("/health", healthHandler.Check)
	app.Get("/metrics", adaptor.HTTPHandler(collector.Handler()))

	api := app.Group("/api")

	// Public pricing routes
	pricingRoutes := api.Group("/pricing")
	pricingRoutes.Post("/calculate", pricingHandler.Calculate)
	pricingRoutes.Get("/quotes/:id", pricingHandler.GetQuote)
	pricingRoutes.Get("/config", pricingHandler.GetConfig)

	// Merchant onboarding
	merchants := api.Group("/merchants")
	merchants.Post("/register", onboardingHandler.Register)
	merchants.Get("/applications",
		authMiddleware.Handler,
		middleware.RequirePermission(models.PermissionApplicationsRead),
		onboardingHandler.ListApplications,
	)
	merchants.Get("/applications/:id",
		authMiddleware.Handler,
		middleware.RequirePermission(models.PermissionApplicationsRead),
		onboardingHandler.GetApplication,
	)

	// Back office
	admin := api.Group("/admin")
	admin.Post("/login", authHandler.Login)
	admin.Put("/pricing/config",
		authMiddleware.Handler,
		middleware.RequirePermission(models.PermissionPricingWrite),
		pricingHandler.UpdateConfig,
	)
}
