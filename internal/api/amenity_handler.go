package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/stayhub/stayhub-api/internal/api/shared"
	"github.com/stayhub/stayhub-api/internal/domain"
	"github.com/stayhub/stayhub-api/internal/service"
)

// AmenityRequest defines the payload for creating or renaming an amenity.
type AmenityRequest struct {
	Name string `json:"name" validate:"required,max=50"`
}

// AmenityHandler handles amenity-related API requests. Amenity mutations are
// admin-only; the service enforces that.
type AmenityHandler struct {
	amenityService service.AmenityService
	validator      *validator.Validate
}

// NewAmenityHandler creates a new AmenityHandler.
func NewAmenityHandler(amenityService service.AmenityService) *AmenityHandler {
	return &AmenityHandler{
		amenityService: amenityService,
		validator:      validator.New(),
	}
}

// Create handles POST /api/v1/amenities requests.
func (h *AmenityHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := getIdentityFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "Caller identity not found or invalid")
		return
	}

	var req AmenityRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	amenity, err := h.amenityService.Create(r.Context(), identity, req.Name)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, amenityToResponse(amenity))
}

// List handles GET /api/v1/amenities requests.
func (h *AmenityHandler) List(w http.ResponseWriter, r *http.Request) {
	amenities, err := h.amenityService.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, amenitiesToResponse(amenities))
}

// Get handles GET /api/v1/amenities/{id} requests.
func (h *AmenityHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := requirePathUUID(w, r, "id")
	if !ok {
		return
	}

	amenity, err := h.amenityService.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, amenityToResponse(amenity))
}

// Update handles PUT /api/v1/amenities/{id} requests.
func (h *AmenityHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity, id, ok := requireIdentityAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	var req AmenityRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	amenity, err := h.amenityService.Update(r.Context(), identity, id, req.Name)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, amenityToResponse(amenity))
}

// Delete handles DELETE /api/v1/amenities/{id} requests.
func (h *AmenityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, id, ok := requireIdentityAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.amenityService.Delete(r.Context(), identity, id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
