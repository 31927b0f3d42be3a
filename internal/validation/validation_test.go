package validation

import (
	"testing"

	"moneybag/internal/models"

	"github.com/stretchr/testify/assert"
)

func validConfig() models.PricingConfig {
	return models.PricingConfig{
		Rules: []models.PricingRule{
			{Conditions: map[string]string{"legalIdentity": "ngo"}, PricingKey: "np", DocumentsKey: "ngo"},
		},
		Sets: models.PricingSets{
			Pricing: map[string]models.PricingSet{
				"np":  {CardRate: "1.5%", WalletRate: "1%"},
				"std": {CardRate: "Contact us"},
			},
			Documents: map[string][]string{
				"ngo": {"Constitution"},
				"std": {"Trade license"},
			},
		},
		DefaultPricing:   "std",
		DefaultDocuments: "std",
	}
}

func TestValidator_PricingConfig(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*models.PricingConfig)
		wantFields []string
	}{
		{
			name:   "valid",
			mutate: func(cfg *models.PricingConfig) {},
		},
		{
			name: "empty",
			mutate: func(cfg *models.PricingConfig) {
				*cfg = models.PricingConfig{}
			},
			wantFields: []string{"rules"},
		},
		{
			name: "unknown keys",
			mutate: func(cfg *models.PricingConfig) {
				cfg.Rules[0].PricingKey = "gone"
				cfg.Rules[0].DocumentsKey = "gone"
				cfg.DefaultDocuments = "gone"
			},
			wantFields: []string{"rules[0].pricingKey", "rules[0].documentsKey", "defaultDocuments"},
		},
		{
			name: "rate without percent",
			mutate: func(cfg *models.PricingConfig) {
				cfg.Sets.Pricing["np"] = models.PricingSet{CardRate: "0.015"}
			},
			wantFields: []string{"sets.pricing.np.cardRate"},
		},
		{
			name: "blank condition",
			mutate: func(cfg *models.PricingConfig) {
				cfg.Rules[0].Conditions["businessCategory"] = " "
			},
			wantFields: []string{"rules[0].conditions.businessCategory"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			v := New()
			v.PricingConfig(&cfg)

			if len(tt.wantFields) == 0 {
				assert.True(t, v.Valid(), v.Errors)
				assert.NoError(t, v.Err())
				return
			}
			assert.False(t, v.Valid())
			for _, field := range tt.wantFields {
				assert.Contains(t, v.Errors, field)
			}
		})
	}
}

func TestValidator_Struct(t *testing.T) {
	type form struct {
		Email string `json:"email" validate:"required,email"`
		Phone string `json:"phone" validate:"required,bdphone"`
	}

	v := New()
	v.Struct(form{Email: "owner@shop.com.bd", Phone: "01712345678"})
	assert.True(t, v.Valid())

	v = New()
	v.Struct(form{Email: "owner@shop.com.bd", Phone: "+880 1912-345678"})
	assert.True(t, v.Valid())

	v = New()
	v.Struct(form{Phone: "0171234"})
	assert.Equal(t, "must not be empty", v.Errors["email"])
	assert.Equal(t, "must be a valid Bangladeshi mobile number", v.Errors["phone"])
}

func TestError_Message(t *testing.T) {
	v := New()
	v.AddError("phone", "is invalid")
	v.AddError("email", "must not be empty")
	v.AddError("email", "ignored")

	assert.EqualError(t, v.Err(), "email: must not be empty; phone: is invalid")
}
