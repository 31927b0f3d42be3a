package auth

import (
	"testing"
	"time"

	"moneybag/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

func newTestService(t *testing.T) Service {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret!pass"), bcrypt.MinCost)
	require.NoError(t, err)
	return NewService(Credentials{Email: "admin@moneybag.com.bd", PasswordHash: string(hash)}, testSecret, time.Hour)
}

func TestService_Login(t *testing.T) {
	s := newTestService(t)

	token, expiresAt, err := s.Login("Admin@Moneybag.com.bd", "s3cret!pass")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := s.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@moneybag.com.bd", claims.Email)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.True(t, claims.HasPermission(models.PermissionPricingWrite))
}

func TestService_LoginRejects(t *testing.T) {
	s := newTestService(t)

	_, _, err := s.Login("admin@moneybag.com.bd", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = s.Login("someone@moneybag.com.bd", "s3cret!pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	disabled := NewService(Credentials{}, testSecret, time.Hour)
	_, _, err = disabled.Login("admin@moneybag.com.bd", "s3cret!pass")
	assert.ErrorIs(t, err, ErrAuthDisabled)
}

func TestService_ParseTokenRejects(t *testing.T) {
	s := newTestService(t)

	_, err := s.ParseToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, models.AdminClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			Issuer:    tokenIssuer,
		},
		Email: "admin@moneybag.com.bd",
	})
	signed, err := expired.SignedString([]byte(testSecret))
	require.NoError(t, err)
	_, err = s.ParseToken(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)

	foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, models.AdminClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			Issuer:    tokenIssuer,
		},
	})
	signed, err = foreign.SignedString([]byte("other-secret"))
	require.NoError(t, err)
	_, err = s.ParseToken(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
