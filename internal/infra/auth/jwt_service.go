// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/Abros3006/business-tracker/config"
	"github.com/Abros3006/business-tracker/internal/domain/service"
)

const (
	// authenticatedAudience is the audience GoTrue puts on user access tokens.
	authenticatedAudience = "authenticated"
	clockLeeway           = 30 * time.Second
)

// ErrInvalidAccessToken is returned for tokens that fail signature, expiry or claim checks.
var ErrInvalidAccessToken = errors.New("invalid access token")

// jwtVerifier verifies HS256 access tokens issued by the hosted auth service.
type jwtVerifier struct {
	secret []byte
	parser *jwt.Parser
}

type gotrueClaims struct {
	Email     string `json:"email"`
	Role      string `json:"role"`
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

// NewJWTVerifier is the constructor for jwtVerifier.
func NewJWTVerifier(cfg *config.Config) (service.TokenVerifier, error) {
	if cfg.Supabase == nil || cfg.Supabase.JWTSecret == "" {
		return nil, errors.New("supabase jwt secret must be provided")
	}

	return &jwtVerifier{
		secret: []byte(cfg.Supabase.JWTSecret),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithAudience(authenticatedAudience),
			jwt.WithExpirationRequired(),
			jwt.WithLeeway(clockLeeway),
		),
	}, nil
}

// Verify parses the token and returns its claims.
func (v *jwtVerifier) Verify(tokenString string) (*service.AccessClaims, error) {
	claims := &gotrueClaims{}

	token, err := v.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return nil, errors.Wrap(ErrInvalidAccessToken, err.Error())
	}
	if !token.Valid {
		return nil, ErrInvalidAccessToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidAccessToken, "subject is not a user id")
	}

	return &service.AccessClaims{
		UserID:           userID,
		Email:            claims.Email,
		Role:             claims.Role,
		SessionID:        claims.SessionID,
		RegisteredClaims: claims.RegisteredClaims,
	}, nil
}
