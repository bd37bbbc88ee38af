package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/stayhub/stayhub-api/internal/api/shared"
	"github.com/stayhub/stayhub-api/internal/domain"
	"github.com/stayhub/stayhub-api/internal/service"
)

// CreatePlaceRequest defines the payload for creating a place. The owner is
// always the authenticated caller; there is no owner_id field.
type CreatePlaceRequest struct {
	Title       string      `json:"title"       validate:"required,max=100"`
	Description string      `json:"description" validate:"omitempty"`
	Price       float64     `json:"price"       validate:"gte=0"`
	Latitude    float64     `json:"latitude"    validate:"gte=-90,lte=90"`
	Longitude   float64     `json:"longitude"   validate:"gte=-180,lte=180"`
	AmenityIDs  []uuid.UUID `json:"amenity_ids" validate:"omitempty"`
}

// UpdatePlaceRequest defines the payload for a partial place update. Absent
// fields leave the stored value unchanged. Ownership is immutable.
type UpdatePlaceRequest struct {
	Title       *string      `json:"title"       validate:"omitempty,max=100"`
	Description *string      `json:"description" validate:"omitempty"`
	Price       *float64     `json:"price"       validate:"omitempty,gte=0"`
	Latitude    *float64     `json:"latitude"    validate:"omitempty,gte=-90,lte=90"`
	Longitude   *float64     `json:"longitude"   validate:"omitempty,gte=-180,lte=180"`
	AmenityIDs  *[]uuid.UUID `json:"amenity_ids" validate:"omitempty"`
}

// PlaceHandler handles place-related API requests.
type PlaceHandler struct {
	placeService service.PlaceService
	validator    *validator.Validate
}

// NewPlaceHandler creates a new PlaceHandler.
func NewPlaceHandler(placeService service.PlaceService) *PlaceHandler {
	return &PlaceHandler{
		placeService: placeService,
		validator:    validator.New(),
	}
}

// Create handles POST /api/v1/places requests.
func (h *PlaceHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := getIdentityFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "Caller identity not found or invalid")
		return
	}

	var req CreatePlaceRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	place, err := h.placeService.Create(r.Context(), identity, service.CreatePlaceInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		AmenityIDs:  req.AmenityIDs,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, placeToResponse(place))
}

// List handles GET /api/v1/places requests.
func (h *PlaceHandler) List(w http.ResponseWriter, r *http.Request) {
	places, err := h.placeService.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, placesToResponse(places))
}

// Get handles GET /api/v1/places/{id} requests.
func (h *PlaceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := requirePathUUID(w, r, "id")
	if !ok {
		return
	}

	place, err := h.placeService.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, placeToResponse(place))
}

// Update handles PUT /api/v1/places/{id} requests.
func (h *PlaceHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity, id, ok := requireIdentityAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	var req UpdatePlaceRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	place, err := h.placeService.Update(r.Context(), identity, id, service.UpdatePlaceInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		AmenityIDs:  req.AmenityIDs,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, placeToResponse(place))
}

// Delete handles DELETE /api/v1/places/{id} requests.
func (h *PlaceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, id, ok := requireIdentityAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.placeService.Delete(r.Context(), identity, id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
