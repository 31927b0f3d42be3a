package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Wildcard matches any criterion value in a rule condition.
const Wildcard = "*"

// PricingRule maps a set of criteria conditions to a pricing and documents bundle.
type PricingRule struct {
	Conditions   map[string]string `json:"conditions"`
	PricingKey   string            `json:"pricingKey"`
	DocumentsKey string            `json:"documentsKey"`
	SpecialOffer json.RawMessage   `json:"specialOffer,omitempty"`
}

// HasSpecialOffer reports whether the rule carries a non-null offer payload.
func (r PricingRule) HasSpecialOffer() bool {
	trimmed := bytes.TrimSpace(r.SpecialOffer)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}

// PricingSet holds the rates and fees quoted for a pricing key.
type PricingSet struct {
	CardRate   string   `json:"cardRate,omitempty"`
	WalletRate string   `json:"walletRate,omitempty"`
	SetupFee   FeeValue `json:"setupFee,omitempty"`
	MonthlyFee FeeValue `json:"monthlyFee,omitempty"`
	Features   []string `json:"features,omitempty"`
	Negotiable bool     `json:"negotiable,omitempty"`
}

// PricingSets groups the pricing and documents tables referenced by rules.
type PricingSets struct {
	Pricing   map[string]PricingSet `json:"pricing"`
	Documents map[string][]string   `json:"documents"`
}

// PricingConfig is the full rules document the calculator works from.
type PricingConfig struct {
	Rules            []PricingRule `json:"rules"`
	Sets             PricingSets   `json:"sets"`
	DefaultPricing   string        `json:"defaultPricing"`
	DefaultDocuments string        `json:"defaultDocuments"`
}

// FeeValue is a fee as written in the config: either a number or free text
// such as "Free" or "5,000 BDT".
type FeeValue string

// UnmarshalJSON accepts both JSON strings and numbers.
func (f *FeeValue) UnmarshalJSON(data []byte) error {
	s, err := scalarString(data)
	if err != nil {
		return fmt.Errorf("fee value: %w", err)
	}
	*f = FeeValue(s)
	return nil
}

// MarshalJSON writes fees that are valid JSON numbers back as numbers and
// everything else, including "+500" or "NaN", as strings.
func (f FeeValue) MarshalJSON() ([]byte, error) {
	if isJSONNumber(string(f)) {
		return []byte(f), nil
	}
	return json.Marshal(string(f))
}

func isJSONNumber(s string) bool {
	if s == "" || (s[0] != '-' && (s[0] < '0' || s[0] > '9')) {
		return false
	}
	return json.Valid([]byte(s))
}

// Criteria are the business facts a merchant declares on the form.
type Criteria map[string]string

// UnmarshalJSON stringifies numeric and boolean values and drops nulls.
func (c *Criteria) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(Criteria, len(raw))
	for k, v := range raw {
		if bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			continue
		}
		s, err := scalarString(v)
		if err != nil {
			return fmt.Errorf("criterion %q: %w", k, err)
		}
		out[k] = s
	}
	*c = out
	return nil
}

// Lookup returns the criterion value and whether it was supplied.
func (c Criteria) Lookup(key string) (string, bool) {
	if c == nil {
		return "", false
	}
	v, ok := c[key]
	return v, ok
}

func scalarString(data []byte) (string, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return "", nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", err
		}
		return s, nil
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return "", err
		}
		return strconv.FormatBool(b), nil
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return "", err
		}
		return n.String(), nil
	}
}

// CostEstimate is the derived monthly cost for a quote.
type CostEstimate struct {
	TransactionFees float64 `json:"transactionFees"`
	MonthlyFee      int64   `json:"monthlyFee"`
	Total           int64   `json:"total"`
	Formatted       string  `json:"formatted"`
}

// QuoteResult is what the calculator returns for a set of criteria.
type QuoteResult struct {
	PricingKey           string          `json:"pricingKey"`
	DocumentsKey         string          `json:"documentsKey"`
	DefaultApplied       bool            `json:"defaultApplied"`
	Pricing              PricingSet      `json:"pricing"`
	Documents            []string        `json:"documents"`
	CardRate             string          `json:"cardRate"`
	WalletRate           string          `json:"walletRate"`
	SetupFee             string          `json:"setupFee"`
	MonthlyFee           string          `json:"monthlyFee"`
	Features             []string        `json:"features"`
	Negotiable           bool            `json:"negotiable"`
	SpecialOffer         json.RawMessage `json:"specialOffer,omitempty"`
	EstimatedMonthlyCost CostEstimate    `json:"estimatedMonthlyCost"`
}
