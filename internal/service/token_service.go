package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"crossborder-orchestrator/config"
	"crossborder-orchestrator/pkg/apperror"
)

// JWTTokenService issues and validates HS256 admin tokens guarding the
// diagnostic endpoints.
type JWTTokenService struct {
	secret []byte
	expiry time.Duration
}

func NewJWTTokenService(cfg config.AdminConfig) *JWTTokenService {
	return &JWTTokenService{
		secret: []byte(cfg.JWTSecret),
		expiry: cfg.JWTExpiry,
	}
}

// Generate issues a signed token for the given subject.
func (s *JWTTokenService) Generate(subject string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.expiry)
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("signing token: %w", err))
	}
	return signed, expiresAt, nil
}

// Validate parses a token and returns its subject.
func (s *JWTTokenService) Validate(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", apperror.ErrInvalidToken()
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", apperror.ErrInvalidToken()
	}
	return claims.Subject, nil
}
