package auth

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"moneybag/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const tokenIssuer = "moneybag-api"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrAuthDisabled       = errors.New("admin login is not configured")
)

type Service interface {
	Login(email, password string) (string, time.Time, error)
	ParseToken(token string) (*models.AdminClaims, error)
}

// Credentials identify the back-office admin. PasswordHash is a bcrypt hash.
type Credentials struct {
	Email        string
	PasswordHash string
}

type service struct {
	admin  Credentials
	secret []byte
	ttl    time.Duration
}

func NewService(admin Credentials, secret string, ttl time.Duration) Service {
	return &service{
		admin:  admin,
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (s *service) Login(email, password string) (string, time.Time, error) {
	if s.admin.Email == "" || s.admin.PasswordHash == "" || len(s.secret) == 0 {
		return "", time.Time{}, ErrAuthDisabled
	}

	if !strings.EqualFold(strings.TrimSpace(email), s.admin.Email) {
		log.Printf("Login failed: unknown admin %s", email)
		return "", time.Time{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.admin.PasswordHash), []byte(password)); err != nil {
		log.Printf("Login failed: incorrect password for %s", email)
		return "", time.Time{}, ErrInvalidCredentials
	}

	now := time.Now()
	expiresAt := now.Add(s.ttl)
	claims := models.AdminClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   s.admin.Email,
		},
		Email:       s.admin.Email,
		Role:        models.RoleAdmin,
		Permissions: models.AdminPermissions,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("error generating token: %w", err)
	}
	return token, expiresAt, nil
}

func (s *service) ParseToken(tokenString string) (*models.AdminClaims, error) {
	if len(s.secret) == 0 {
		return nil, ErrAuthDisabled
	}

	token, err := jwt.ParseWithClaims(tokenString, &models.AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*models.AdminClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
