package models

import "github.com/golang-jwt/jwt/v5"

// Admin permissions
const (
	RoleAdmin = "admin"

	PermissionPricingRead      = "pricing:read"
	PermissionPricingWrite     = "pricing:write"
	PermissionApplicationsRead = "applications:read"
)

// AdminPermissions are granted to every token issued to the back-office admin.
var AdminPermissions = []string{
	PermissionPricingRead,
	PermissionPricingWrite,
	PermissionApplicationsRead,
}

type AdminClaims struct {
	jwt.RegisteredClaims
	Email       string   `json:"email"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

// HasPermission checks the token's permission list.
func (c *AdminClaims) HasPermission(permission string) bool {
	for _, p := range c.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}
