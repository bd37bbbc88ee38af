package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/stayhub/stayhub-api/internal/config"
	"github.com/stayhub/stayhub-api/internal/platform/postgres"
	"github.com/stayhub/stayhub-api/internal/service"
	"github.com/stayhub/stayhub-api/internal/service/auth"
	"github.com/stayhub/stayhub-api/internal/store"
)

// application holds the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores
	userStore    store.UserStore
	placeStore   store.PlaceStore
	amenityStore store.AmenityStore
	reviewStore  store.ReviewStore

	// Services
	jwtService       auth.JWTService
	passwordHasher   auth.PasswordHasher
	passwordVerifier auth.PasswordVerifier
	userService      service.UserService
	placeService     service.PlaceService
	amenityService   service.AmenityService
	reviewService    service.ReviewService
}

// newApplication creates an application instance with all dependencies
// initialized. Configuration, logger and database connection must be
// established before calling this.
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
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.passwordHasher = auth.NewBcryptHasher()
	app.passwordVerifier = auth.NewBcryptVerifier()

	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.placeStore = postgres.NewPostgresPlaceStore(db, logger)
	app.amenityStore = postgres.NewPostgresAmenityStore(db, logger)
	app.reviewStore = postgres.NewPostgresReviewStore(db, logger)

	app.userService, err = service.NewUserService(app.userStore, app.passwordHasher, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}

	app.placeService, err = service.NewPlaceService(app.placeStore, app.userStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create place service: %w", err)
	}

	app.amenityService, err = service.NewAmenityService(app.amenityStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create amenity service: %w", err)
	}

	app.reviewService, err = service.NewReviewService(
		app.reviewStore,
		app.placeStore,
		app.userStore,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create review service: %w", err)
	}

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
