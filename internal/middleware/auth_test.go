package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"moneybag/internal/models"
	"moneybag/internal/services/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthMiddleware(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret!pass"), bcrypt.MinCost)
	require.NoError(t, err)
	authService := auth.NewService(auth.Credentials{Email: "admin@moneybag.com.bd", PasswordHash: string(hash)}, "test-secret", time.Hour)
	token, _, err := authService.Login("admin@moneybag.com.bd", "s3cret!pass")
	require.NoError(t, err)

	app := fiber.New()
	m := NewAuthMiddleware(authService)
	app.Get("/read", m.Handler, RequirePermission(models.PermissionPricingRead), func(c *fiber.Ctx) error {
		claims, ok := Claims(c)
		require.True(t, ok)
		return c.SendString(claims.Email)
	})
	app.Get("/forbidden", m.Handler, RequirePermission("wallet:write"), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	tests := []struct {
		name   string
		path   string
		header string
		status int
	}{
		{"missing header", "/read", "", http.StatusUnauthorized},
		{"wrong scheme", "/read", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "/read", "Bearer abc.def.ghi", http.StatusUnauthorized},
		{"valid token", "/read", "Bearer " + token, http.StatusOK},
		{"missing permission", "/forbidden", "Bearer " + token, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set(fiber.HeaderAuthorization, tt.header)
			}
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestRequirePermission_WithoutClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/", RequirePermission(models.PermissionPricingWrite), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
