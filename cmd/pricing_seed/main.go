// Command pricing_seed imports a pricing rules file as the newest stored
// config version.
package main

import (
	"context"
	"log"
	"os"

	"moneybag/internal/config"
	"moneybag/internal/repositories"
	"moneybag/internal/services/pricing"
)

func main() {
	config.LoadEnv()

	path := config.GetEnv("PRICING_CONFIG_PATH", "configs/pricing-rules.json")
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	author := config.GetEnv("ADMIN_EMAIL", "pricing_seed")

	cfg, err := pricing.NewFileSource(path).Load()
	if err != nil {
		log.Fatalf("Failed to load pricing config: %v", err)
	}

	if err := repositories.InitDB(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer repositories.Close()

	service := pricing.NewService(
		repositories.NewPricingConfigRepository(repositories.DB),
		nil,
		repositories.NewQuoteRepository(repositories.DB),
		repositories.CacheService,
		nil,
	)

	saved, err := service.UpdateConfig(context.Background(), cfg, author)
	if err != nil {
		repositories.Close()
		log.Fatalf("Pricing config rejected: %v", err)
	}

	log.Printf("✅ Imported %s as pricing config version %d (%d rules)", path, saved.Version, len(saved.Config.Rules))
}
