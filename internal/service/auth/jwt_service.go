package auth

import (
	"context"
	"time"
)

// JWTService defines operations for managing JWT authentication tokens.
type JWTService interface {
	// GenerateToken creates a signed JWT access token carrying the
	// subject and its granted roles.
	// Returns the token string or an error if token generation fails.
	GenerateToken(ctx context.Context, subject string, roles []string) (string, error)

	// ValidateToken validates the provided access token string and extracts
	// the claims. Returns ErrExpiredToken or ErrInvalidToken on failure.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the custom claims structure for the JWT tokens.
// It extends standard JWT registered claims with application-specific fields.
type Claims struct {
	// Subject identifies the caller the token was issued for.
	Subject string `json:"sub,omitempty"`

	// Roles are the caller's granted role names. Role semantics
	// (inheritance, what each role may do) live in the authz policy.
	Roles []string `json:"roles,omitempty"`

	// Standard registered JWT claims
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
