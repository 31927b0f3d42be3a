package handlers

import (
	"context"
	"errors"
	"log"

	"moneybag/internal/models"
	"moneybag/internal/services/onboarding"
	"moneybag/internal/utils/pagination"
	"moneybag/internal/utils/response"
	"moneybag/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type OnboardingService interface {
	Register(ctx context.Context, input onboarding.RegisterInput) (*models.MerchantApplication, error)
	GetApplication(ctx context.Context, applicationID string) (*models.MerchantApplication, error)
	ListApplications(ctx context.Context, status string, offset, limit int) ([]models.MerchantApplication, int64, error)
}

type OnboardingHandler struct {
	onboardingService OnboardingService
}

func NewOnboardingHandler(onboardingService OnboardingService) *OnboardingHandler {
	return &OnboardingHandler{
		onboardingService: onboardingService,
	}
}

// Register files a merchant application and returns it with its quote
// reference and required documents.
func (h *OnboardingHandler) Register(c *fiber.Ctx) error {
	var input onboarding.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	application, err := h.onboardingService.Register(c.UserContext(), input)
	if err != nil {
		var verr *validation.Error
		switch {
		case errors.As(err, &verr):
			return response.ValidationError(c, "Invalid application", verr.Fields)
		case errors.Is(err, onboarding.ErrDuplicateApplication):
			return response.Error(c, fiber.StatusConflict, err.Error())
		}
		log.Printf("⚠️ Merchant registration failed: %v", err)
		return response.ServerError(c, "Failed to submit application")
	}

	return response.Created(c, "Application submitted successfully", application)
}

func (h *OnboardingHandler) GetApplication(c *fiber.Ctx) error {
	application, err := h.onboardingService.GetApplication(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, onboarding.ErrApplicationNotFound) {
			return response.NotFound(c, "Application not found")
		}
		log.Printf("⚠️ Failed to load application %s: %v", c.Params("id"), err)
		return response.ServerError(c, "Failed to load application")
	}

	return response.Success(c, "Application retrieved successfully", application)
}

func (h *OnboardingHandler) ListApplications(c *fiber.Ctx) error {
	p := pagination.ParseFromRequest(c)

	applications, total, err := h.onboardingService.ListApplications(c.UserContext(), c.Query("status"), p.Offset, p.Limit)
	if err != nil {
		if errors.Is(err, onboarding.ErrInvalidStatus) {
			return response.BadRequest(c, err.Error())
		}
		log.Printf("⚠️ Failed to list applications: %v", err)
		return response.ServerError(c, "Failed to list applications")
	}
	p.Total = total

	return c.JSON(pagination.Response(p, "Applications retrieved successfully", applications))
}
