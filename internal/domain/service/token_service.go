package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccessClaims are the claims carried by an access token from the hosted auth service.
type AccessClaims struct {
	UserID    uuid.UUID
	Email     string
	Role      string // auth-service role, e.g. "authenticated"; not the profile role
	SessionID string
	jwt.RegisteredClaims
}

// TokenVerifier checks access tokens locally, without a round trip to the auth service.
type TokenVerifier interface {
	// Verify parses tokenString and validates its signature, expiry and audience.
	Verify(tokenString string) (*AccessClaims, error)
}
