package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/stayhub/stayhub-api/internal/domain"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	FirstName string `json:"first_name" validate:"max=50"`
	LastName  string `json:"last_name"  validate:"max=50"`
	Email     string `json:"email"      validate:"required,email"`
	Password  string `json:"password"   validate:"omitempty,min=8,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	// UserID is the unique identifier for the authenticated user
	UserID uuid.UUID `json:"user_id"`

	// AccessToken is the JWT token used for API authorization
	AccessToken string `json:"token"`

	// RefreshToken is the JWT token used to obtain new access tokens
	RefreshToken string `json:"refresh_token,omitempty"`
}

// RefreshTokenRequest defines the payload for the token refresh endpoint.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// UserResponse represents the response data for a user. The password hash
// never appears here.
type UserResponse struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PlaceResponse represents the response data for a place.
type PlaceResponse struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	AmenityIDs  []string  `json:"amenity_ids"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AmenityResponse represents the response data for an amenity.
type AmenityResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ReviewResponse represents the response data for a review.
type ReviewResponse struct {
	ID        string    `json:"id"`
	Comment   string    `json:"comment"`
	Rating    int       `json:"rating"`
	PlaceID   string    `json:"place_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		IsAdmin:   user.IsAdmin,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func usersToResponse(users []*domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, userToResponse(user))
	}
	return out
}

func placeToResponse(place *domain.Place) PlaceResponse {
	amenityIDs := make([]string, 0, len(place.AmenityIDs))
	for _, id := range place.AmenityIDs {
		amenityIDs = append(amenityIDs, id.String())
	}
	return PlaceResponse{
		ID:          place.ID.String(),
		OwnerID:     place.OwnerID.String(),
		Title:       place.Title,
		Description: place.Description,
		Price:       place.Price,
		Latitude:    place.Latitude,
		Longitude:   place.Longitude,
		AmenityIDs:  amenityIDs,
		CreatedAt:   place.CreatedAt,
		UpdatedAt:   place.UpdatedAt,
	}
}

func placesToResponse(places []*domain.Place) []PlaceResponse {
	out := make([]PlaceResponse, 0, len(places))
	for _, place := range places {
		out = append(out, placeToResponse(place))
	}
	return out
}

func amenityToResponse(amenity *domain.Amenity) AmenityResponse {
	return AmenityResponse{
		ID:        amenity.ID.String(),
		Name:      amenity.Name,
		CreatedAt: amenity.CreatedAt,
		UpdatedAt: amenity.UpdatedAt,
	}
}

func amenitiesToResponse(amenities []*domain.Amenity) []AmenityResponse {
	out := make([]AmenityResponse, 0, len(amenities))
	for _, amenity := range amenities {
		out = append(out, amenityToResponse(amenity))
	}
	return out
}

func reviewToResponse(review *domain.Review) ReviewResponse {
	return ReviewResponse{
		ID:        review.ID.String(),
		Comment:   review.Comment,
		Rating:    review.Rating,
		PlaceID:   review.PlaceID.String(),
		UserID:    review.UserID.String(),
		CreatedAt: review.CreatedAt,
		UpdatedAt: review.UpdatedAt,
	}
}

func reviewsToResponse(reviews []*domain.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		out = append(out, reviewToResponse(review))
	}
	return out
}
