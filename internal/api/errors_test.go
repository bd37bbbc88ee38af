package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stayhub/stayhub-api/internal/domain"
	"github.com/stayhub/stayhub-api/internal/service"
	"github.com/stayhub/stayhub-api/internal/service/auth"
	"github.com/stayhub/stayhub-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{"missing identity", domain.ErrUnauthorized, http.StatusUnauthorized},
		{"forbidden", service.ErrForbidden, http.StatusForbidden},
		{"user not found", store.ErrUserNotFound, http.StatusNotFound},
		{"place not found", store.ErrPlaceNotFound, http.StatusNotFound},
		{"review not found", store.ErrReviewNotFound, http.StatusNotFound},
		{"email exists", store.ErrEmailExists, http.StatusConflict},
		{"validation error", domain.NewValidationError("rating", "must be between 1 and 5", nil), http.StatusBadRequest},
		{"invalid id", domain.ErrInvalidID, http.StatusBadRequest},
		{"dangling reference", store.ErrInvalidEntity, http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestMapErrorToStatusCode_Wrapped(t *testing.T) {
	// Errors keep their mapping through wrapping layers.
	wrapped := fmt.Errorf("context: %w", store.ErrPlaceNotFound)
	assert.Equal(t, http.StatusNotFound, MapErrorToStatusCode(wrapped))

	svcErr := service.NewServiceError("update_review", "failed", service.ErrForbidden)
	assert.Equal(t, http.StatusForbidden, MapErrorToStatusCode(svcErr))
}

func TestGetSafeErrorMessage(t *testing.T) {
	assert.Equal(t, "Token expired", GetSafeErrorMessage(auth.ErrExpiredToken))
	assert.Equal(t, "Invalid credentials", GetSafeErrorMessage(auth.ErrInvalidCredentials))
	assert.Equal(t, "User not found", GetSafeErrorMessage(store.ErrUserNotFound))
	assert.Equal(t, "Email already exists", GetSafeErrorMessage(store.ErrEmailExists))

	// Validation errors surface their field and rule text.
	ve := domain.NewValidationError("rating", "must be between 1 and 5", nil)
	assert.Equal(t, "rating: must be between 1 and 5", GetSafeErrorMessage(ve))

	// Internal details never leak.
	internal := errors.New("pq: connection refused on 10.0.0.3")
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(internal))
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(nil))
}

func TestSanitizeValidationError(t *testing.T) {
	err := errors.New(
		"Key: 'LoginRequest.Email' Error:Field validation for 'Email' failed on the 'required' tag",
	)
	assert.Equal(t, "Invalid Email: required field", SanitizeValidationError(err))

	assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("something else")))
}
