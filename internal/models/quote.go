package models

import (
	"encoding/json"
	"time"

	"github.com/lib/pq"
)

// QuoteRecord is the audit row written for every quote served.
type QuoteRecord struct {
	ID             uint            `gorm:"primarykey" json:"-"`
	QuoteID        string          `gorm:"uniqueIndex;size:36;not null" json:"quote_id"`
	ConfigVersion  int             `gorm:"not null" json:"config_version"`
	Criteria       JSON            `gorm:"type:jsonb" json:"criteria"`
	PricingKey     string          `json:"pricing_key"`
	DocumentsKey   string          `json:"documents_key"`
	DefaultApplied bool            `json:"default_applied"`
	Documents      pq.StringArray  `gorm:"type:text[]" json:"documents"`
	EstimatedTotal int64           `json:"estimated_total"`
	Result         json.RawMessage `gorm:"type:jsonb" json:"result"`
	CreatedAt      time.Time       `json:"created_at"`
}

func (QuoteRecord) TableName() string { return "quotes" }

// QuoteResponse is a calculator result tagged with its public quote ID.
type QuoteResponse struct {
	QuoteID       string      `json:"quoteId"`
	ConfigVersion int         `json:"configVersion"`
	Quote         QuoteResult `json:"quote"`
	CreatedAt     time.Time   `json:"createdAt"`
}
