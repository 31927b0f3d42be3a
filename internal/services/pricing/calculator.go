package pricing

import (
	"strings"

	"moneybag/internal/models"
)

// Criterion names the calculator treats specially.
const (
	CriterionMonthlyVolume = "monthlyVolume"
)

// Fallbacks used when the pricing set leaves a field out.
const (
	ContactUs         = "Contact us"
	DefaultMonthlyFee = "0"
)

// Calculator matches criteria against an ordered rules table. It holds no
// mutable state and is safe for concurrent use as long as the config it was
// built from is not modified.
type Calculator struct {
	cfg models.PricingConfig
}

func NewCalculator(cfg models.PricingConfig) *Calculator {
	return &Calculator{cfg: cfg}
}

// Match returns the first rule whose conditions all hold for criteria.
// Declaration order is priority order.
func (c *Calculator) Match(criteria models.Criteria) (models.PricingRule, bool) {
	for _, rule := range c.cfg.Rules {
		if matchesConditions(rule.Conditions, criteria) {
			return rule, true
		}
	}
	return models.PricingRule{}, false
}

// Calculate builds a quote for criteria. It never fails: unknown keys and
// unparseable numbers fall back to "Contact us", empty lists, false and 0.
func (c *Calculator) Calculate(criteria models.Criteria) models.QuoteResult {
	pricingKey, documentsKey := c.cfg.DefaultPricing, c.cfg.DefaultDocuments

	rule, matched := c.Match(criteria)
	if matched {
		pricingKey, documentsKey = rule.PricingKey, rule.DocumentsKey
	}

	set := c.cfg.Sets.Pricing[pricingKey]
	set.Features = cloneStrings(set.Features)

	result := models.QuoteResult{
		PricingKey:     pricingKey,
		DocumentsKey:   documentsKey,
		DefaultApplied: !matched,
		Pricing:        set,
		Documents:      cloneStrings(c.cfg.Sets.Documents[documentsKey]),
		CardRate:       orDefault(set.CardRate, ContactUs),
		WalletRate:     orDefault(set.WalletRate, ContactUs),
		SetupFee:       orDefault(string(set.SetupFee), ContactUs),
		MonthlyFee:     orDefault(string(set.MonthlyFee), DefaultMonthlyFee),
		Features:       cloneStrings(set.Features),
		Negotiable:     set.Negotiable,
	}
	if matched && rule.HasSpecialOffer() {
		result.SpecialOffer = append([]byte(nil), rule.SpecialOffer...)
	}

	volume, _ := criteria.Lookup(CriterionMonthlyVolume)
	result.EstimatedMonthlyCost = EstimateMonthlyCost(volume, result.CardRate, result.WalletRate, result.MonthlyFee)
	return result
}

func matchesConditions(conditions map[string]string, criteria models.Criteria) bool {
	for key, expected := range conditions {
		if expected == models.Wildcard {
			continue
		}
		actual, ok := criteria.Lookup(key)
		if !ok {
			return false
		}
		if key == CriterionMonthlyVolume {
			if !matchVolume(actual, expected) {
				return false
			}
			continue
		}
		if actual != expected {
			return false
		}
	}
	return true
}

// matchVolume checks a declared volume against a rule bound written as
// "min-max" (inclusive), "min+" or a literal value.
func matchVolume(actual, expected string) bool {
	switch {
	case strings.Contains(expected, "-"):
		lo, hi := parseBounds(expected)
		v := parseVolume(actual)
		return v >= float64(lo) && v <= float64(hi)
	case strings.HasSuffix(expected, "+"):
		return parseVolume(actual) >= float64(parseInt(strings.TrimSuffix(expected, "+")))
	default:
		return actual == expected
	}
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

// cloneStrings copies s so results never alias the shared config. The copy
// is never nil.
func cloneStrings(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
