package pricing

import (
	"context"
	"time"

	"moneybag/internal/models"
)

// ConfigStore persists versioned pricing configs.
type ConfigStore interface {
	// Active returns the newest version or gorm.ErrRecordNotFound when none is stored.
	Active(ctx context.Context) (*models.VersionedPricingConfig, error)
	Save(ctx context.Context, cfg models.PricingConfig, author string) (*models.VersionedPricingConfig, error)
}

// ConfigSource provides the bundled config used when the store is empty or down.
type ConfigSource interface {
	Load() (models.PricingConfig, error)
}

type QuoteRepository interface {
	Create(ctx context.Context, record *models.QuoteRecord) error
	GetByQuoteID(ctx context.Context, quoteID string) (*models.QuoteRecord, error)
}

// Cache returns nil, nil on a miss.
type Cache interface {
	GetPricingConfig(ctx context.Context) (*models.VersionedPricingConfig, error)
	SetPricingConfig(ctx context.Context, cfg *models.VersionedPricingConfig) error
	InvalidatePricingConfig(ctx context.Context) error
	GetQuote(ctx context.Context, quoteID string) (*models.QuoteResponse, error)
	SetQuote(ctx context.Context, quote *models.QuoteResponse) error
}

type MetricsCollector interface {
	RecordQuote(pricingKey string, defaultApplied bool, duration time.Duration)
	RecordCacheHit(key string)
	RecordCacheMiss(key string)
	RecordError(op, kind string)
}
