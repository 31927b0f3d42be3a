package onboarding

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"moneybag/internal/models"
	"moneybag/internal/services/pricing"
	"moneybag/internal/validation"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ApplicationRepository interface {
	Create(ctx context.Context, application *models.MerchantApplication) error
	GetByApplicationID(ctx context.Context, applicationID string) (*models.MerchantApplication, error)
	HasPending(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, status string, offset, limit int) ([]models.MerchantApplication, int64, error)
}

// Quoter prices a set of criteria.
type Quoter interface {
	Quote(ctx context.Context, criteria models.Criteria) (*models.QuoteResponse, error)
}

type Service struct {
	applications ApplicationRepository
	quoter       Quoter
}

func NewService(applications ApplicationRepository, quoter Quoter) *Service {
	return &Service{
		applications: applications,
		quoter:       quoter,
	}
}

// Register validates a registration, prices it and stores it for review.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*models.MerchantApplication, error) {
	input = normalize(input)

	v := validation.New()
	v.Struct(input)
	if err := v.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidApplication, err)
	}

	pending, err := s.applications.HasPending(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing applications: %w", err)
	}
	if pending {
		return nil, ErrDuplicateApplication
	}

	quote, err := s.quoter.Quote(ctx, Criteria(input))
	if err != nil {
		return nil, fmt.Errorf("failed to price application: %w", err)
	}

	application := &models.MerchantApplication{
		ApplicationID:     uuid.NewString(),
		BusinessName:      input.BusinessName,
		LegalIdentity:     input.LegalIdentity,
		BusinessCategory:  input.BusinessCategory,
		ServiceType:       input.ServiceType,
		MonthlyVolume:     input.MonthlyVolume,
		Website:           input.Website,
		ContactName:       input.ContactName,
		Email:             input.Email,
		Phone:             input.Phone,
		Status:            models.ApplicationStatusPending,
		QuoteID:           quote.QuoteID,
		PricingKey:        quote.Quote.PricingKey,
		EstimatedTotal:    quote.Quote.EstimatedMonthlyCost.Total,
		RequiredDocuments: quote.Quote.Documents,
	}

	if err := s.applications.Create(ctx, application); err != nil {
		return nil, fmt.Errorf("failed to store application: %w", err)
	}

	log.Printf("New merchant application %s (%s, pricing %s)",
		application.ApplicationID, application.BusinessName, application.PricingKey)
	return application, nil
}

func (s *Service) GetApplication(ctx context.Context, applicationID string) (*models.MerchantApplication, error) {
	if _, err := uuid.Parse(applicationID); err != nil {
		return nil, ErrApplicationNotFound
	}
	application, err := s.applications.GetByApplicationID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return application, nil
}

// ListApplications pages through applications for review. An empty status
// lists every application.
func (s *Service) ListApplications(ctx context.Context, status string, offset, limit int) ([]models.MerchantApplication, int64, error) {
	switch status {
	case "", models.ApplicationStatusPending, models.ApplicationStatusApproved, models.ApplicationStatusRejected:
	default:
		return nil, 0, ErrInvalidStatus
	}

	applications, total, err := s.applications.List(ctx, status, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list applications: %w", err)
	}
	return applications, total, nil
}

// Criteria maps the form fields onto the criterion names pricing rules use.
func Criteria(input RegisterInput) models.Criteria {
	criteria := models.Criteria{
		"legalIdentity":                input.LegalIdentity,
		"businessCategory":             input.BusinessCategory,
		pricing.CriterionMonthlyVolume: input.MonthlyVolume,
	}
	if input.ServiceType != "" {
		criteria["serviceType"] = input.ServiceType
	}
	return criteria
}

func normalize(input RegisterInput) RegisterInput {
	input.BusinessName = strings.TrimSpace(input.BusinessName)
	input.LegalIdentity = strings.TrimSpace(input.LegalIdentity)
	input.BusinessCategory = strings.TrimSpace(input.BusinessCategory)
	input.ServiceType = strings.TrimSpace(input.ServiceType)
	input.MonthlyVolume = strings.TrimSpace(input.MonthlyVolume)
	input.Website = strings.TrimSpace(input.Website)
	input.ContactName = strings.TrimSpace(input.ContactName)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Phone = validation.NormalizePhone(input.Phone)
	return input
}
