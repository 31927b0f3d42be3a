package validation

import (
	"fmt"
	"strings"

	"moneybag/internal/models"
)

// PricingConfig checks that every key a rule or default points at exists
// and that quoted rates carry a percent sign.
func (v *Validator) PricingConfig(cfg *models.PricingConfig) {
	v.Check(len(cfg.Rules) > 0 || cfg.DefaultPricing != "", "rules",
		"must contain at least one rule or a default pricing key")

	for i, rule := range cfg.Rules {
		field := fmt.Sprintf("rules[%d]", i)
		v.Required(field+".pricingKey", rule.PricingKey)
		v.Required(field+".documentsKey", rule.DocumentsKey)

		if rule.PricingKey != "" {
			_, ok := cfg.Sets.Pricing[rule.PricingKey]
			v.Check(ok, field+".pricingKey", "unknown pricing set "+rule.PricingKey)
		}
		if rule.DocumentsKey != "" {
			_, ok := cfg.Sets.Documents[rule.DocumentsKey]
			v.Check(ok, field+".documentsKey", "unknown documents set "+rule.DocumentsKey)
		}
		for key, expected := range rule.Conditions {
			v.Check(strings.TrimSpace(expected) != "", field+".conditions."+key,
				"must be a value or *")
		}
	}

	if cfg.DefaultPricing != "" {
		_, ok := cfg.Sets.Pricing[cfg.DefaultPricing]
		v.Check(ok, "defaultPricing", "unknown pricing set "+cfg.DefaultPricing)
	}
	if cfg.DefaultDocuments != "" {
		_, ok := cfg.Sets.Documents[cfg.DefaultDocuments]
		v.Check(ok, "defaultDocuments", "unknown documents set "+cfg.DefaultDocuments)
	}

	for key, set := range cfg.Sets.Pricing {
		v.Rate("sets.pricing."+key+".cardRate", set.CardRate)
		v.Rate("sets.pricing."+key+".walletRate", set.WalletRate)
	}
}

// Rate accepts an empty value, "Contact us" or a percentage.
func (v *Validator) Rate(field, rate string) {
	if rate == "" || strings.EqualFold(rate, "contact us") {
		return
	}
	v.Check(strings.Contains(rate, "%"), field, "must be a percentage such as 2.5%")
}
