package auth

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/mkarlsen/locations-api/internal/authz"
	"github.com/mkarlsen/locations-api/internal/platform/logger"
)

// Authorizer answers role questions about an incoming request.
// HasRole never errors: when the request carries no usable credentials the
// provided default is returned, so optional checks (e.g. "may this caller
// see soft-deleted rows") degrade gracefully. AuthorizeToRole fails closed.
type Authorizer interface {
	// HasRole reports whether the request's token holds the given role.
	// Returns def when the check cannot be performed (no token, invalid
	// token).
	HasRole(r *http.Request, role string, def bool) bool

	// AuthorizeToRole requires the request's token to hold the given
	// role. Returns ErrUnauthorized (possibly wrapped) otherwise.
	AuthorizeToRole(r *http.Request, role string) error
}

// jwtAuthorizer validates bearer tokens with the JWT service and delegates
// role satisfaction to the authz enforcer.
type jwtAuthorizer struct {
	jwtService JWTService
	enforcer   *authz.Enforcer
	logger     *slog.Logger
}

// NewAuthorizer creates an Authorizer over the given JWT service and
// role enforcer. If logger is nil, a default logger will be used.
func NewAuthorizer(jwtService JWTService, enforcer *authz.Enforcer, logger *slog.Logger) Authorizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &jwtAuthorizer{
		jwtService: jwtService,
		enforcer:   enforcer,
		logger:     logger.With(slog.String("component", "authorizer")),
	}
}

// requestClaims extracts and validates the bearer token from the request.
func (a *jwtAuthorizer) requestClaims(r *http.Request) (*Claims, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, ErrMissingToken
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, ErrInvalidToken
	}

	return a.jwtService.ValidateToken(r.Context(), parts[1])
}

// HasRole implements Authorizer.HasRole.
func (a *jwtAuthorizer) HasRole(r *http.Request, role string, def bool) bool {
	log := logger.FromContextOrDefault(r.Context(), a.logger)

	claims, err := a.requestClaims(r)
	if err != nil {
		log.Debug("role check fell back to default",
			slog.String("role", role),
			slog.Bool("default", def),
			slog.String("reason", err.Error()))
		return def
	}

	return a.enforcer.AnySatisfies(claims.Roles, role)
}

// AuthorizeToRole implements Authorizer.AuthorizeToRole.
func (a *jwtAuthorizer) AuthorizeToRole(r *http.Request, role string) error {
	log := logger.FromContextOrDefault(r.Context(), a.logger)

	claims, err := a.requestClaims(r)
	if err != nil {
		log.Debug("authorization failed",
			slog.String("role", role),
			slog.String("reason", err.Error()))
		return fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	if !a.enforcer.AnySatisfies(claims.Roles, role) {
		log.Debug("authorization denied",
			slog.String("role", role),
			slog.String("subject", claims.Subject))
		return ErrUnauthorized
	}

	return nil
}
