// Package service declares the domain service interfaces implemented by the
// infrastructure layer.
package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for the access tokens.
type Claims struct {
	UserID uuid.UUID
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating the JWTs
// the delivery layer uses to scope requests to the logged-in officer.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken creates a new access token for a given user.
	GenerateToken(userID uuid.UUID) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
