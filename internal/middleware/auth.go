// Package middleware provides HTTP middleware components for the application.
// It includes authentication and authorization for the admin endpoints.
package middleware

import (
	"log"
	"strings"

	"moneybag/internal/models"
	"moneybag/internal/services/auth"

	"github.com/gofiber/fiber/v2"
)

// ClaimsKey is the fiber Locals key holding *models.AdminClaims.
const ClaimsKey = "claims"

// AuthMiddleware validates admin JWTs from the Authorization header.
type AuthMiddleware struct {
	authService auth.Service
}

func NewAuthMiddleware(authService auth.Service) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
	}
}

// Handler rejects requests without a valid Bearer token and stores the
// claims in the request context.
func (m *AuthMiddleware) Handler(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing authorization header"})
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid authorization format"})
	}

	claims, err := m.authService.ParseToken(strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		log.Printf("Token validation error: %v", err)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
	}

	c.Locals(ClaimsKey, claims)
	return c.Next()
}

// RequirePermission only lets through tokens carrying permission.
func RequirePermission(permission string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals(ClaimsKey).(*models.AdminClaims)
		if !ok || !claims.HasPermission(permission) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "insufficient permissions"})
		}
		return c.Next()
	}
}

// Claims returns the admin claims stored by Handler, if any.
func Claims(c *fiber.Ctx) (*models.AdminClaims, bool) {
	claims, ok := c.Locals(ClaimsKey).(*models.AdminClaims)
	return claims, ok
}
