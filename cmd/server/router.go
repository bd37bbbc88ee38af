package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/stayhub/stayhub-api/internal/api"
	apiMiddleware "github.com/stayhub/stayhub-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Reads are public; every mutation goes through the auth
// middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(
		app.userService,
		app.userStore,
		app.jwtService,
		app.passwordVerifier,
	)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	userHandler := api.NewUserHandler(app.userService, app.placeService, app.reviewService)
	placeHandler := api.NewPlaceHandler(app.placeService)
	amenityHandler := api.NewAmenityHandler(app.amenityService)
	reviewHandler := api.NewReviewHandler(app.reviewService)

	r.Route("/api/v1", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/refresh", authHandler.RefreshToken)

		// Public reads
		r.Get("/users", userHandler.List)
		r.Get("/users/{id}", userHandler.Get)
		r.Get("/users/{id}/places", userHandler.ListPlaces)
		r.Get("/users/{id}/reviews", userHandler.ListReviews)

		r.Get("/places", placeHandler.List)
		r.Get("/places/{id}", placeHandler.Get)
		r.Get("/places/{id}/reviews", reviewHandler.ListByPlace)

		r.Get("/amenities", amenityHandler.List)
		r.Get("/amenities/{id}", amenityHandler.Get)

		r.Get("/reviews", reviewHandler.List)
		r.Get("/reviews/{id}", reviewHandler.Get)

		// Authenticated mutations
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Put("/users/{id}", userHandler.Update)
			r.Delete("/users/{id}", userHandler.Delete)

			r.Post("/places", placeHandler.Create)
			r.Put("/places/{id}", placeHandler.Update)
			r.Delete("/places/{id}", placeHandler.Delete)

			r.Post("/amenities", amenityHandler.Create)
			r.Put("/amenities/{id}", amenityHandler.Update)
			r.Delete("/amenities/{id}", amenityHandler.Delete)

			r.Post("/reviews", reviewHandler.Create)
			r.Put("/reviews/{id}", reviewHandler.Update)
			r.Delete("/reviews/{id}", reviewHandler.Delete)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
