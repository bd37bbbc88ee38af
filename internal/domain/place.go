package domain

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Place-specific validation errors
var (
	ErrPlaceOwnerEmpty     = errors.New("place owner ID cannot be empty")
	ErrPlaceTitleEmpty     = errors.New("place title cannot be empty")
	ErrPlaceTitleTooLong   = errors.New("place title must be 100 characters or fewer")
	ErrPlaceNegativePrice  = errors.New("place price cannot be negative")
	ErrPlaceLatitudeRange  = errors.New("latitude must be between -90 and 90")
	ErrPlaceLongitudeRange = errors.New("longitude must be between -180 and 180")
)

const maxPlaceTitleLength = 100

// Place represents a bookable listing owned by a user. The owner reference
// is set at creation and is immutable thereafter.
type Place struct {
	Record
	OwnerID     uuid.UUID   `json:"owner_id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Price       float64     `json:"price"`
	Latitude    float64     `json:"latitude"`
	Longitude   float64     `json:"longitude"`
	AmenityIDs  []uuid.UUID `json:"amenity_ids,omitempty"`
}

// NewPlace creates a new Place owned by ownerID with generated record
// metadata. Returns an error if validation fails.
func NewPlace(ownerID uuid.UUID, title, description string, price, latitude, longitude float64) (*Place, error) {
	place := &Place{
		Record:      NewRecord(),
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
		Price:       price,
		Latitude:    latitude,
		Longitude:   longitude,
	}

	if err := place.Validate(); err != nil {
		return nil, err
	}

	return place, nil
}

// Validate checks if the Place has valid data.
// Returns an error if any field fails validation.
func (p *Place) Validate() error {
	if p.OwnerID == uuid.Nil {
		return NewValidationError("owner_id", "is required", ErrPlaceOwnerEmpty)
	}

	if strings.TrimSpace(p.Title) == "" {
		return NewValidationError("title", "is required", ErrPlaceTitleEmpty)
	}

	if utf8.RuneCountInString(p.Title) > maxPlaceTitleLength {
		return NewValidationError("title", "must be 100 characters or fewer", ErrPlaceTitleTooLong)
	}

	if p.Price < 0 {
		return NewValidationError("price", "cannot be negative", ErrPlaceNegativePrice)
	}

	if p.Latitude < -90 || p.Latitude > 90 {
		return NewValidationError("latitude", "must be between -90 and 90", ErrPlaceLatitudeRange)
	}

	if p.Longitude < -180 || p.Longitude > 180 {
		return NewValidationError("longitude", "must be between -180 and 180", ErrPlaceLongitudeRange)
	}

	return nil
}
