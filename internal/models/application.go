package models

import (
	"time"

	"github.com/lib/pq"
)

// Application statuses
const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusApproved = "approved"
	ApplicationStatusRejected = "rejected"
)

// MerchantApplication is a merchant registration submitted through the onboarding form.
type MerchantApplication struct {
	ID                uint           `gorm:"primarykey" json:"-"`
	ApplicationID     string         `gorm:"uniqueIndex;size:36;not null" json:"application_id"`
	BusinessName      string         `gorm:"not null" json:"business_name"`
	LegalIdentity     string         `gorm:"not null" json:"legal_identity"`
	BusinessCategory  string         `gorm:"not null" json:"business_category"`
	ServiceType       string         `json:"service_type"`
	MonthlyVolume     string         `json:"monthly_volume"`
	Website           string         `json:"website"`
	ContactName       string         `gorm:"not null" json:"contact_name"`
	Email             string         `gorm:"index;not null" json:"email"`
	Phone             string         `gorm:"not null" json:"phone"`
	Status            string         `gorm:"default:'pending'" json:"status"`
	QuoteID           string         `gorm:"size:36" json:"quote_id"`
	PricingKey        string         `json:"pricing_key"`
	EstimatedTotal    int64          `json:"estimated_total"`
	RequiredDocuments pq.StringArray `gorm:"type:text[]" json:"required_documents"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}
