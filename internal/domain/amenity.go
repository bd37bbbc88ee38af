package domain

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// Amenity-specific validation errors
var (
	ErrAmenityNameEmpty   = errors.New("amenity name cannot be empty")
	ErrAmenityNameTooLong = errors.New("amenity name must be 50 characters or fewer")
)

const maxAmenityNameLength = 50

// Amenity represents a feature a place can offer (wifi, parking, ...).
// Amenities are independent entities with no ownership semantics.
type Amenity struct {
	Record
	Name string `json:"name"`
}

// NewAmenity creates a new Amenity with generated record metadata.
// Returns an error if validation fails.
func NewAmenity(name string) (*Amenity, error) {
	amenity := &Amenity{
		Record: NewRecord(),
		Name:   name,
	}

	if err := amenity.Validate(); err != nil {
		return nil, err
	}

	return amenity, nil
}

// Validate checks if the Amenity has valid data.
func (a *Amenity) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return NewValidationError("name", "is required", ErrAmenityNameEmpty)
	}

	if utf8.RuneCountInString(a.Name) > maxAmenityNameLength {
		return NewValidationError("name", "must be 50 characters or fewer", ErrAmenityNameTooLong)
	}

	return nil
}
