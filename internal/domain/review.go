package domain

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// Review rating bounds.
const (
	MinRating = 1
	MaxRating = 5
)

// Review-specific validation errors
var (
	ErrReviewCommentEmpty = errors.New("review comment cannot be empty")
	ErrReviewRatingRange  = errors.New("review rating must be between 1 and 5")
	ErrReviewPlaceEmpty   = errors.New("review place ID cannot be empty")
	ErrReviewAuthorEmpty  = errors.New("review user ID cannot be empty")
)

// Review represents a rating and comment left by a user on a place.
// A review belongs to exactly one place and one author; both references are
// set at creation and never change.
type Review struct {
	Record
	Comment string    `json:"comment"`
	Rating  int       `json:"rating"`
	PlaceID uuid.UUID `json:"place_id"`
	UserID  uuid.UUID `json:"user_id"`
}

// NewReview creates a new Review authored by userID for placeID with
// generated record metadata. Returns an error if validation fails.
func NewReview(userID, placeID uuid.UUID, comment string, rating int) (*Review, error) {
	review := &Review{
		Record:  NewRecord(),
		Comment: comment,
		Rating:  rating,
		PlaceID: placeID,
		UserID:  userID,
	}

	if err := review.Validate(); err != nil {
		return nil, err
	}

	return review, nil
}

// Validate checks if the Review has valid data.
// Returns an error if any field fails validation.
func (r *Review) Validate() error {
	if strings.TrimSpace(r.Comment) == "" {
		return NewValidationError("comment", "is required", ErrReviewCommentEmpty)
	}

	if r.Rating < MinRating || r.Rating > MaxRating {
		return NewValidationError("rating", "must be between 1 and 5", ErrReviewRatingRange)
	}

	if r.PlaceID == uuid.Nil {
		return NewValidationError("place_id", "is required", ErrReviewPlaceEmpty)
	}

	if r.UserID == uuid.Nil {
		return NewValidationError("user_id", "is required", ErrReviewAuthorEmpty)
	}

	return nil
}

// UpdateFields applies a partial update: nil fields are left unchanged.
// The review is re-validated with the candidate values and restored to its
// previous state if validation fails, so a failed update never leaves the
// entity half-mutated.
func (r *Review) UpdateFields(comment *string, rating *int) error {
	origComment := r.Comment
	origRating := r.Rating

	if comment != nil {
		r.Comment = *comment
	}
	if rating != nil {
		r.Rating = *rating
	}

	if err := r.Validate(); err != nil {
		r.Comment = origComment
		r.Rating = origRating
		return err
	}

	r.Touch()
	return nil
}
