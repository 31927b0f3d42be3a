package models

import (
	"encoding/json"
	"time"
)

// PricingConfigRecord stores one version of the pricing rules document.
type PricingConfigRecord struct {
	ID        uint            `gorm:"primarykey" json:"-"`
	Version   int             `gorm:"uniqueIndex;not null" json:"version"`
	Document  json.RawMessage `gorm:"type:jsonb;not null" json:"document"`
	Author    string          `json:"author"`
	CreatedAt time.Time       `json:"created_at"`
}

func (PricingConfigRecord) TableName() string { return "pricing_configs" }

// VersionedPricingConfig is a decoded config together with the version it came from.
// Version 0 means the config was read from the bundled file, not the database.
type VersionedPricingConfig struct {
	Version int           `json:"version"`
	Config  PricingConfig `json:"config"`
}
