package auth

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mkarlsen/locations-api/internal/config"
)

// DefaultJWTConfig returns a standard configuration for JWT authentication
// suitable for testing. This is the single source of truth for JWT test
// config.
func DefaultJWTConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:            "test-jwt-secret-that-is-32-chars-long",
		TokenLifetimeMinutes: 60,
		SuperRole:            "super",
	}
}

// NewTestJWTService creates a JWT service with default configuration for
// testing.
func NewTestJWTService() (JWTService, error) {
	return NewJWTService(DefaultJWTConfig())
}

// MustCreateTestJWTService creates a test JWT service and panics if it fails.
// Useful for test setup where error handling would be verbose.
func MustCreateTestJWTService() JWTService {
	service, err := NewTestJWTService()
	if err != nil {
		panic(fmt.Sprintf("failed to create test JWT service: %v", err))
	}
	return service
}

// GenerateTestToken issues a token for the given roles using the provided
// service, failing the test on error.
func GenerateTestToken(t *testing.T, service JWTService, subject string, roles []string) string {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	token, err := service.GenerateToken(ctx, subject, roles)
	require.NoError(t, err, "failed to generate test token")
	return token
}
