package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/stayhub/stayhub-api/internal/domain"
)

// ReviewStore defines the interface for review data persistence.
type ReviewStore interface {
	// Create saves a new review to the store.
	// Returns ErrInvalidEntity if the referenced place or user does not
	// exist (foreign key violation).
	Create(ctx context.Context, review *domain.Review) error

	// GetByID retrieves a review by its unique ID.
	// Returns ErrReviewNotFound if the review does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error)

	// List returns all reviews.
	List(ctx context.Context) ([]*domain.Review, error)

	// ListByPlace returns all reviews for the given place.
	// A place with no reviews yields an empty slice, not an error; the
	// existence of the place itself is checked by the service layer.
	ListByPlace(ctx context.Context, placeID uuid.UUID) ([]*domain.Review, error)

	// ListByAuthor returns all reviews written by the given user.
	ListByAuthor(ctx context.Context, userID uuid.UUID) ([]*domain.Review, error)

	// Update modifies an existing review's comment and rating. The PlaceID
	// and UserID columns are never touched; both are immutable.
	// Returns ErrReviewNotFound if the review does not exist.
	Update(ctx context.Context, review *domain.Review) error

	// Delete removes a review from the store. Reviews have no dependents,
	// so no cascade is involved.
	// Returns ErrReviewNotFound if the review does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new ReviewStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) ReviewStore
}
