package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"moneybag/internal/models"

	"github.com/redis/go-redis/v9"
)

// Cache key entities
const (
	EntityPricing = "pricing"
	EntityQuote   = "quote"
)

type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheService(client *redis.Client, defaultTTL time.Duration) *CacheService {
	return &CacheService{
		client: client,
		ttl:    defaultTTL,
	}
}

// Base operations
func (s *CacheService) Set(ctx context.Context, key string, value interface{}) error {
	return s.SetWithTTL(ctx, key, value, s.ttl)
}

func (s *CacheService) SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	return s.client.Set(ctx, key, data, ttl).Err()
}

func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get cache value: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache value: %w", err)
	}
	return true, nil
}

func (s *CacheService) Delete(ctx context.Context, keys ...string) error {
	return s.client.Del(ctx, keys...).Err()
}

// GenerateKey builds keys of the form entity:keyType:value.
func GenerateKey(entityType, keyType string, value interface{}) string {
	return fmt.Sprintf("%s:%s:%v", entityType, keyType, value)
}

var activeConfigKey = GenerateKey(EntityPricing, "config", "active")

// Pricing config caching
func (s *CacheService) GetPricingConfig(ctx context.Context) (*models.VersionedPricingConfig, error) {
	var cfg models.VersionedPricingConfig
	found, err := s.Get(ctx, activeConfigKey, &cfg)
	if err != nil || !found {
		return nil, err
	}
	return &cfg, nil
}

func (s *CacheService) SetPricingConfig(ctx context.Context, cfg *models.VersionedPricingConfig) error {
	if cfg == nil {
		return errors.New("cannot cache nil pricing config")
	}
	return s.Set(ctx, activeConfigKey, cfg)
}

func (s *CacheService) InvalidatePricingConfig(ctx context.Context) error {
	return s.Delete(ctx, activeConfigKey)
}

// Quote caching
func (s *CacheService) GetQuote(ctx context.Context, quoteID string) (*models.QuoteResponse, error) {
	var quote models.QuoteResponse
	found, err := s.Get(ctx, GenerateKey(EntityQuote, "id", quoteID), &quote)
	if err != nil || !found {
		return nil, err
	}
	return &quote, nil
}

func (s *CacheService) SetQuote(ctx context.Context, quote *models.QuoteResponse) error {
	if quote == nil {
		return errors.New("cannot cache nil quote")
	}
	return s.Set(ctx, GenerateKey(EntityQuote, "id", quote.QuoteID), quote)
}

// Close closes the Redis client connection
func (s *CacheService) Close() error {
	return s.client.Close()
}
