package repositories

import (
	"context"

	"moneybag/internal/models"

	"gorm.io/gorm"
)

type QuoteRepository struct {
	db *gorm.DB
}

func NewQuoteRepository(db *gorm.DB) *QuoteRepository {
	return &QuoteRepository{db: db}
}

func (r *QuoteRepository) Create(ctx context.Context, record *models.QuoteRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *QuoteRepository) GetByQuoteID(ctx context.Context, quoteID string) (*models.QuoteRecord, error) {
	var record models.QuoteRecord
	if err := r.db.WithContext(ctx).Where("quote_id = ?", quoteID).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}
