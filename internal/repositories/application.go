package repositories

import (
	"context"

	"moneybag/internal/models"

	"gorm.io/gorm"
)

type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, application *models.MerchantApplication) error {
	return r.db.WithContext(ctx).Create(application).Error
}

func (r *ApplicationRepository) GetByApplicationID(ctx context.Context, applicationID string) (*models.MerchantApplication, error) {
	var application models.MerchantApplication
	if err := r.db.WithContext(ctx).Where("application_id = ?", applicationID).First(&application).Error; err != nil {
		return nil, err
	}
	return &application, nil
}

// HasPending reports whether email already has an application awaiting review.
func (r *ApplicationRepository) HasPending(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.MerchantApplication{}).
		Where("email = ? AND status = ?", email, models.ApplicationStatusPending).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// List returns a page of applications, newest first, optionally filtered by
// status, along with the total matching count.
func (r *ApplicationRepository) List(ctx context.Context, status string, offset, limit int) ([]models.MerchantApplication, int64, error) {
	byStatus := func(db *gorm.DB) *gorm.DB {
		if status == "" {
			return db
		}
		return db.Where("status = ?", status)
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&models.MerchantApplication{}).Scopes(byStatus).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	applications := make([]models.MerchantApplication, 0, limit)
	err := r.db.WithContext(ctx).
		Scopes(byStatus).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&applications).Error
	if err != nil {
		return nil, 0, err
	}
	return applications, total, nil
}
