package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/stayhub/stayhub-api/internal/api/shared"
	"github.com/stayhub/stayhub-api/internal/domain"
	"github.com/stayhub/stayhub-api/internal/service"
)

// CreateReviewRequest defines the payload for creating a review. The legacy
// "text" field is accepted as a synonym for "comment"; normalizeComment folds
// it in before validation.
type CreateReviewRequest struct {
	Comment string    `json:"comment" validate:"omitempty,min=1"`
	Text    string    `json:"text"    validate:"-"`
	Rating  int       `json:"rating"  validate:"required,gte=1,lte=5"`
	PlaceID uuid.UUID `json:"place_id" validate:"required"`
	// UserID is honored only when the caller is an admin.
	UserID uuid.UUID `json:"user_id" validate:"omitempty"`
}

// UpdateReviewRequest defines the payload for a partial review update.
// Absent fields leave the stored value unchanged.
type UpdateReviewRequest struct {
	Comment *string `json:"comment" validate:"omitempty,min=1"`
	Text    *string `json:"text"    validate:"-"`
	Rating  *int    `json:"rating"  validate:"omitempty,gte=1,lte=5"`
}

// ReviewHandler handles review-related API requests.
type ReviewHandler struct {
	reviewService service.ReviewService
	validator     *validator.Validate
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
		validator:     validator.New(),
	}
}

// Create handles POST /api/v1/reviews requests.
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := getIdentityFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "Caller identity not found or invalid")
		return
	}

	var req CreateReviewRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	// Fold the legacy alias in before validation so the two names behave
	// identically everywhere downstream.
	if req.Comment == "" && req.Text != "" {
		req.Comment = req.Text
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	review, err := h.reviewService.Create(r.Context(), identity, service.CreateReviewInput{
		Comment: req.Comment,
		Rating:  req.Rating,
		PlaceID: req.PlaceID,
		UserID:  req.UserID,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, reviewToResponse(review))
}

// List handles GET /api/v1/reviews requests.
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviewService.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, reviewsToResponse(reviews))
}

// Get handles GET /api/v1/reviews/{id} requests.
func (h *ReviewHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := requirePathUUID(w, r, "id")
	if !ok {
		return
	}

	review, err := h.reviewService.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, reviewToResponse(review))
}

// ListByPlace handles GET /api/v1/places/{id}/reviews requests.
func (h *ReviewHandler) ListByPlace(w http.ResponseWriter, r *http.Request) {
	placeID, ok := requirePathUUID(w, r, "id")
	if !ok {
		return
	}

	reviews, err := h.reviewService.ListByPlace(r.Context(), placeID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, reviewsToResponse(reviews))
}

// Update handles PUT /api/v1/reviews/{id} requests.
func (h *ReviewHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity, id, ok := requireIdentityAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	var req UpdateReviewRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if req.Comment == nil && req.Text != nil {
		req.Comment = req.Text
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	review, err := h.reviewService.Update(r.Context(), identity, id, service.UpdateReviewInput{
		Comment: req.Comment,
		Rating:  req.Rating,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, reviewToResponse(review))
}

// Delete handles DELETE /api/v1/reviews/{id} requests.
func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, id, ok := requireIdentityAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.reviewService.Delete(r.Context(), identity, id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
