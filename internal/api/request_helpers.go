package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stayhub/stayhub-api/internal/api/middleware"
	"github.com/stayhub/stayhub-api/internal/domain"
)

// getIdentityFromContext extracts the authenticated caller identity from the
// request context. The identity is placed there by the auth middleware.
func getIdentityFromContext(r *http.Request) (domain.Identity, bool) {
	identity, ok := middleware.GetIdentity(r)
	if !ok || identity.SubjectID == uuid.Nil {
		return domain.Identity{}, false
	}
	return identity, true
}

// getPathUUID extracts a UUID from the URL path parameters.
// It parses and validates the UUID, handling common error cases.
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return uuid.Nil, domain.NewValidationError(paramName, "is required", domain.ErrValidation)
	}

	id, err := uuid.Parse(pathParam)
	if err != nil {
		return uuid.Nil, domain.NewValidationError(paramName, "has invalid format", domain.ErrInvalidID)
	}

	return id, nil
}

// requireIdentityAndPathUUID is a composite helper that extracts the caller
// identity and a UUID path parameter, writing an error response if either
// extraction fails.
func requireIdentityAndPathUUID(
	w http.ResponseWriter,
	r *http.Request,
	paramName string,
) (domain.Identity, uuid.UUID, bool) {
	identity, ok := getIdentityFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "Caller identity not found or invalid")
		return domain.Identity{}, uuid.Nil, false
	}

	pathID, err := getPathUUID(r, paramName)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return domain.Identity{}, uuid.Nil, false
	}

	return identity, pathID, true
}

// requirePathUUID extracts a UUID path parameter for public endpoints,
// writing an error response if extraction fails.
func requirePathUUID(w http.ResponseWriter, r *http.Request, paramName string) (uuid.UUID, bool) {
	id, err := getPathUUID(r, paramName)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return uuid.Nil, false
	}
	return id, true
}
