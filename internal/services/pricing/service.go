package pricing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"moneybag/internal/models"
	"moneybag/internal/validation"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service serves quotes from the active pricing config.
type Service struct {
	store    ConfigStore
	fallback ConfigSource
	quotes   QuoteRepository
	cache    Cache
	metrics  MetricsCollector
	now      func() time.Time
}

func NewService(
	store ConfigStore,
	fallback ConfigSource,
	quotes QuoteRepository,
	cache Cache,
	metrics MetricsCollector,
) *Service {
	if metrics == nil {
		metrics = &NoopMetricsCollector{}
	}
	return &Service{
		store:    store,
		fallback: fallback,
		quotes:   quotes,
		cache:    cache,
		metrics:  metrics,
		now:      time.Now,
	}
}

// Quote prices criteria against the active config and records the quote.
// Recording is best effort; a failed write is logged, not returned.
func (s *Service) Quote(ctx context.Context, criteria models.Criteria) (*models.QuoteResponse, error) {
	start := s.now()

	active, err := s.ActiveConfig(ctx)
	if err != nil {
		return nil, err
	}

	result := NewCalculator(active.Config).Calculate(criteria)
	resp := &models.QuoteResponse{
		QuoteID:       uuid.NewString(),
		ConfigVersion: active.Version,
		Quote:         result,
		CreatedAt:     start.UTC(),
	}

	if err := s.record(ctx, criteria, resp); err != nil {
		log.Printf("⚠️ Failed to record quote %s: %v", resp.QuoteID, err)
		s.metrics.RecordError("quote", "persist")
	}
	if err := s.cache.SetQuote(ctx, resp); err != nil {
		log.Printf("⚠️ Failed to cache quote %s: %v", resp.QuoteID, err)
	}

	s.metrics.RecordQuote(result.PricingKey, result.DefaultApplied, s.now().Sub(start))
	return resp, nil
}

func (s *Service) record(ctx context.Context, criteria models.Criteria, resp *models.QuoteResponse) error {
	data, err := json.Marshal(resp.Quote)
	if err != nil {
		return fmt.Errorf("failed to marshal quote: %w", err)
	}
	return s.quotes.Create(ctx, &models.QuoteRecord{
		QuoteID:        resp.QuoteID,
		ConfigVersion:  resp.ConfigVersion,
		Criteria:       models.CriteriaJSON(criteria),
		PricingKey:     resp.Quote.PricingKey,
		DocumentsKey:   resp.Quote.DocumentsKey,
		DefaultApplied: resp.Quote.DefaultApplied,
		Documents:      resp.Quote.Documents,
		EstimatedTotal: resp.Quote.EstimatedMonthlyCost.Total,
		Result:         data,
		CreatedAt:      resp.CreatedAt,
	})
}

// GetQuote looks a previously served quote up by its public ID.
func (s *Service) GetQuote(ctx context.Context, quoteID string) (*models.QuoteResponse, error) {
	if _, err := uuid.Parse(quoteID); err != nil {
		return nil, ErrQuoteNotFound
	}

	cached, err := s.cache.GetQuote(ctx, quoteID)
	if err != nil {
		log.Printf("⚠️ Quote cache lookup failed for %s: %v", quoteID, err)
	}
	if cached != nil {
		s.metrics.RecordCacheHit("quote")
		return cached, nil
	}
	s.metrics.RecordCacheMiss("quote")

	record, err := s.quotes.GetByQuoteID(ctx, quoteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuoteNotFound
		}
		return nil, fmt.Errorf("failed to load quote: %w", err)
	}

	var result models.QuoteResult
	if err := json.Unmarshal(record.Result, &result); err != nil {
		return nil, fmt.Errorf("failed to decode stored quote: %w", err)
	}

	resp := &models.QuoteResponse{
		QuoteID:       record.QuoteID,
		ConfigVersion: record.ConfigVersion,
		Quote:         result,
		CreatedAt:     record.CreatedAt,
	}
	if err := s.cache.SetQuote(ctx, resp); err != nil {
		log.Printf("⚠️ Failed to cache quote %s: %v", quoteID, err)
	}
	return resp, nil
}

// ActiveConfig returns the config quotes are currently priced from: the
// cached copy, else the newest stored version, else the bundled file.
func (s *Service) ActiveConfig(ctx context.Context) (*models.VersionedPricingConfig, error) {
	cached, err := s.cache.GetPricingConfig(ctx)
	if err != nil {
		log.Printf("⚠️ Pricing config cache lookup failed: %v", err)
	}
	if cached != nil {
		s.metrics.RecordCacheHit("pricing_config")
		return cached, nil
	}
	s.metrics.RecordCacheMiss("pricing_config")

	active, err := s.store.Active(ctx)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		// Not cached: the stored version must win again once the store recovers.
		log.Printf("⚠️ Pricing config store unavailable, using bundled config: %v", err)
		s.metrics.RecordError("config", "store")
		return s.loadFallback()
	}
	if err != nil {
		active, err = s.loadFallback()
		if err != nil {
			return nil, err
		}
	}

	if err := s.cache.SetPricingConfig(ctx, active); err != nil {
		log.Printf("⚠️ Failed to cache pricing config: %v", err)
	}
	return active, nil
}

func (s *Service) loadFallback() (*models.VersionedPricingConfig, error) {
	if s.fallback == nil {
		return nil, ErrConfigUnavailable
	}
	cfg, err := s.fallback.Load()
	if err != nil {
		s.metrics.RecordError("config", "fallback")
		return nil, fmt.Errorf("%w: %v", ErrConfigUnavailable, err)
	}
	return &models.VersionedPricingConfig{Version: 0, Config: cfg}, nil
}

// UpdateConfig validates cfg and stores it as the newest version.
func (s *Service) UpdateConfig(ctx context.Context, cfg models.PricingConfig, author string) (*models.VersionedPricingConfig, error) {
	v := validation.New()
	v.PricingConfig(&cfg)
	if err := v.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	saved, err := s.store.Save(ctx, cfg, author)
	if err != nil {
		return nil, fmt.Errorf("failed to save pricing config: %w", err)
	}

	// Overwrite rather than delete so a reader holding the previous version
	// cannot repopulate the cache with it after the save.
	if err := s.cache.SetPricingConfig(ctx, saved); err != nil {
		log.Printf("⚠️ Failed to cache pricing config version %d: %v", saved.Version, err)
		if err := s.cache.InvalidatePricingConfig(ctx); err != nil {
			log.Printf("⚠️ Failed to invalidate pricing config cache: %v", err)
		}
	}
	log.Printf("✅ Pricing config version %d saved by %s", saved.Version, author)
	return saved, nil
}
