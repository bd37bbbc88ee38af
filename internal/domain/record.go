package domain

import (
	"time"

	"github.com/google/uuid"
)

// Record holds the shared identity and timestamp metadata embedded by value
// in every entity. Composition, not inheritance: entities embed Record and
// remain plain structs.
type Record struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewRecord generates a Record with a fresh UUID and UTC creation/update
// timestamps.
func NewRecord() Record {
	now := time.Now().UTC()
	return Record{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Touch bumps UpdatedAt to the current UTC time.
func (r *Record) Touch() {
	r.UpdatedAt = time.Now().UTC()
}
