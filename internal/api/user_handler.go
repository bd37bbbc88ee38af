package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/stayhub/stayhub-api/internal/api/shared"
	"github.com/stayhub/stayhub-api/internal/service"
)

// UpdateUserRequest defines the payload for a partial user update. Absent
// fields leave the stored value unchanged. There is no is_admin field: the
// admin flag cannot be set through the API.
type UpdateUserRequest struct {
	FirstName *string `json:"first_name" validate:"omitempty,max=50"`
	LastName  *string `json:"last_name"  validate:"omitempty,max=50"`
	Email     *string `json:"email"      validate:"omitempty,email"`
	Password  *string `json:"password"   validate:"omitempty,min=8,max=72"`
}

// UserHandler handles user-related API requests.
type UserHandler struct {
	userService   service.UserService
	placeService  service.PlaceService
	reviewService service.ReviewService
	validator     *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(
	userService service.UserService,
	placeService service.PlaceService,
	reviewService service.ReviewService,
) *UserHandler {
	return &UserHandler{
		userService:   userService,
		placeService:  placeService,
		reviewService: reviewService,
		validator:     validator.New(),
	}
}

// List handles GET /api/v1/users requests.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, usersToResponse(users))
}

// Get handles GET /api/v1/users/{id} requests.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := requirePathUUID(w, r, "id")
	if !ok {
		return
	}

	user, err := h.userService.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(user))
}

// Update handles PUT /api/v1/users/{id} requests.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity, id, ok := requireIdentityAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	user, err := h.userService.Update(r.Context(), identity, id, service.UpdateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(user))
}

// Delete handles DELETE /api/v1/users/{id} requests. Deleting a user also
// removes their places, the reviews they wrote, and the reviews on their
// places, in a single transaction.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, id, ok := requireIdentityAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.userService.Delete(r.Context(), identity, id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListPlaces handles GET /api/v1/users/{id}/places requests.
func (h *UserHandler) ListPlaces(w http.ResponseWriter, r *http.Request) {
	id, ok := requirePathUUID(w, r, "id")
	if !ok {
		return
	}

	places, err := h.placeService.ListByOwner(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, placesToResponse(places))
}

// ListReviews handles GET /api/v1/users/{id}/reviews requests.
func (h *UserHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	id, ok := requirePathUUID(w, r, "id")
	if !ok {
		return
	}

	reviews, err := h.reviewService.ListByAuthor(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, reviewsToResponse(reviews))
}
