package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/stayhub/stayhub-api/internal/domain"
)

// AmenityStore defines the interface for amenity data persistence.
type AmenityStore interface {
	// Create saves a new amenity to the store.
	Create(ctx context.Context, amenity *domain.Amenity) error

	// GetByID retrieves an amenity by its unique ID.
	// Returns ErrAmenityNotFound if the amenity does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Amenity, error)

	// List returns all amenities.
	List(ctx context.Context) ([]*domain.Amenity, error)

	// Update modifies an existing amenity.
	// Returns ErrAmenityNotFound if the amenity does not exist.
	Update(ctx context.Context, amenity *domain.Amenity) error

	// Delete removes an amenity from the store.
	// Returns ErrAmenityNotFound if the amenity does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new AmenityStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) AmenityStore
}
