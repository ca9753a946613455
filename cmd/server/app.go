package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/mkarlsen/locations-api/internal/authz"
	"github.com/mkarlsen/locations-api/internal/config"
	"github.com/mkarlsen/locations-api/internal/platform/postgres"
	"github.com/mkarlsen/locations-api/internal/service/auth"
	"github.com/mkarlsen/locations-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	locationStore store.LocationStore
	countryStore  store.CountryStore

	jwtService auth.JWTService
	authorizer auth.Authorizer
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts the core dependencies that must be established
// before application wiring.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		slog.Int("token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes))

	enforcer, err := authz.NewEnforcer()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize role enforcer: %w", err)
	}
	app.authorizer = auth.NewAuthorizer(app.jwtService, enforcer, logger)

	app.locationStore = postgres.NewPostgresLocationStore(db, logger)
	app.countryStore = postgres.NewPostgresCountryStore(db, logger)

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
