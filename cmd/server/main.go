// Package main is the entry point for the pricing API.
// It loads configuration, connects PostgreSQL and Redis, sets up the
// HTTP server and starts it.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"moneybag/internal/config"
	"moneybag/internal/repositories"
	"moneybag/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	// Load environment variables
	config.LoadEnv()

	// Initialize databases (PostgreSQL + Redis)
	if err := repositories.InitDB(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer repositories.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := repositories.CacheService.HealthCheck(ctx); err != nil {
		log.Printf("⚠️ Redis unavailable, quotes will be served without cache: %v", err)
	} else {
		log.Println("✅ Redis connection verified")
	}
	go repositories.CacheService.MonitorPool(ctx, 5*time.Minute)
	go monitorDBPool(ctx, time.Minute)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName: "moneybag-pricing",
	})

	// CORS middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(config.GetListEnv("CORS_ORIGINS", []string{"http://localhost:5173"}), ","),
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET,POST,HEAD,PUT,OPTIONS",
		AllowCredentials: true,
	}))

	// Middleware
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Use("/api/pricing/calculate", rateLimit(config.GetIntEnv("RATE_LIMIT_CALCULATE", 60)))
	app.Use("/api/merchants/register", rateLimit(config.GetIntEnv("RATE_LIMIT_REGISTER", 5)))
	app.Use("/api/admin/login", rateLimit(5))

	// Routes
	routes.SetupRoutes(app, repositories.DB, repositories.CacheService)

	go func() {
		<-ctx.Done()
		log.Println("Shutting down server...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Printf("⚠️ Server shutdown failed: %v", err)
		}
	}()

	// Start server
	if err := app.Listen(":" + config.GetEnv("PORT", "3000")); err != nil {
		log.Printf("⚠️ Server stopped: %v", err)
	}
}

// rateLimit allows max requests per IP per minute.
func rateLimit(max int) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests. Please try again later.",
			})
		},
	})
}

func monitorDBPool(ctx context.Context, interval time.Duration) {
	sqlDB, err := repositories.DB.DB()
	if err != nil {
		log.Printf("⚠️ Failed to get database instance: %v", err)
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			stats := sqlDB.Stats()
			log.Printf("DB Stats: Open=%d, Idle=%d, InUse=%d, WaitCount=%d, WaitDuration=%s",
				stats.OpenConnections, stats.Idle, stats.InUse, stats.WaitCount, stats.WaitDuration)
		}
	}
}
