package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"moneybag/internal/middleware"
	"moneybag/internal/models"
	"moneybag/internal/services/pricing"
	"moneybag/internal/utils/response"
	"moneybag/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// PricingService is the part of pricing.Service the HTTP layer uses.
type PricingService interface {
	Quote(ctx context.Context, criteria models.Criteria) (*models.QuoteResponse, error)
	GetQuote(ctx context.Context, quoteID string) (*models.QuoteResponse, error)
	ActiveConfig(ctx context.Context) (*models.VersionedPricingConfig, error)
	UpdateConfig(ctx context.Context, cfg models.PricingConfig, author string) (*models.VersionedPricingConfig, error)
}

type PricingHandler struct {
	pricingService PricingService
}

func NewPricingHandler(pricingService PricingService) *PricingHandler {
	return &PricingHandler{
		pricingService: pricingService,
	}
}

// Calculate prices the criteria in the request body. An empty body is a
// valid request and yields the default pricing.
func (h *PricingHandler) Calculate(c *fiber.Ctx) error {
	criteria := models.Criteria{}
	if body := c.Body(); len(body) > 0 {
		if err := json.Unmarshal(body, &criteria); err != nil {
			return response.BadRequest(c, "Invalid request format")
		}
	}

	quote, err := h.pricingService.Quote(c.UserContext(), criteria)
	if err != nil {
		log.Printf("⚠️ Pricing calculation failed: %v", err)
		if errors.Is(err, pricing.ErrConfigUnavailable) {
			return response.Error(c, fiber.StatusServiceUnavailable, "Pricing is temporarily unavailable")
		}
		return response.ServerError(c, "Failed to calculate pricing")
	}

	return response.Success(c, "Pricing calculated successfully", quote)
}

func (h *PricingHandler) GetQuote(c *fiber.Ctx) error {
	quote, err := h.pricingService.GetQuote(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, pricing.ErrQuoteNotFound) {
			return response.NotFound(c, "Quote not found")
		}
		log.Printf("⚠️ Failed to load quote %s: %v", c.Params("id"), err)
		return response.ServerError(c, "Failed to load quote")
	}

	return response.Success(c, "Quote retrieved successfully", quote)
}

func (h *PricingHandler) GetConfig(c *fiber.Ctx) error {
	active, err := h.pricingService.ActiveConfig(c.UserContext())
	if err != nil {
		log.Printf("⚠️ Failed to load pricing config: %v", err)
		return response.Error(c, fiber.StatusServiceUnavailable, "Pricing is temporarily unavailable")
	}

	return response.Success(c, "Pricing config retrieved successfully", active)
}

// UpdateConfig stores the request body as a new pricing config version.
// The author is taken from the admin token.
func (h *PricingHandler) UpdateConfig(c *fiber.Ctx) error {
	claims, ok := middleware.Claims(c)
	if !ok {
		return response.Unauthorized(c)
	}

	var cfg models.PricingConfig
	if err := json.Unmarshal(c.Body(), &cfg); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	saved, err := h.pricingService.UpdateConfig(c.UserContext(), cfg, claims.Email)
	if err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			return response.ValidationError(c, "Invalid pricing config", verr.Fields)
		}
		log.Printf("⚠️ Failed to update pricing config: %v", err)
		return response.ServerError(c, "Failed to update pricing config")
	}

	return response.Success(c, "Pricing config updated successfully", saved)
}
