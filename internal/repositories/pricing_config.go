package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"moneybag/internal/models"

	"gorm.io/gorm"
)

// PricingConfigRepository stores pricing rule documents as numbered versions.
type PricingConfigRepository struct {
	db *gorm.DB
}

func NewPricingConfigRepository(db *gorm.DB) *PricingConfigRepository {
	return &PricingConfigRepository{db: db}
}

// Active returns the highest stored version. gorm.ErrRecordNotFound is
// returned untouched when the table is empty.
func (r *PricingConfigRepository) Active(ctx context.Context) (*models.VersionedPricingConfig, error) {
	var record models.PricingConfigRecord
	if err := r.db.WithContext(ctx).Order("version DESC").First(&record).Error; err != nil {
		return nil, err
	}

	var cfg models.PricingConfig
	if err := json.Unmarshal(record.Document, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode pricing config v%d: %w", record.Version, err)
	}
	return &models.VersionedPricingConfig{Version: record.Version, Config: cfg}, nil
}

// Save appends cfg as the next version.
func (r *PricingConfigRepository) Save(ctx context.Context, cfg models.PricingConfig, author string) (*models.VersionedPricingConfig, error) {
	document, err := json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal pricing config: %w", err)
	}

	record := models.PricingConfigRecord{Document: document, Author: author}
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var latest int
		if err := tx.Model(&models.PricingConfigRecord{}).
			Select("COALESCE(MAX(version), 0)").
			Scan(&latest).Error; err != nil {
			return err
		}
		record.Version = latest + 1
		return tx.Create(&record).Error
	})
	if err != nil {
		return nil, err
	}

	return &models.VersionedPricingConfig{Version: record.Version, Config: cfg}, nil
}
