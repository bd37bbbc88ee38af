package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewAmenity(t *testing.T) {
	amenity, err := NewAmenity("Wi-Fi")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if amenity.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if amenity.Name != "Wi-Fi" {
		t.Errorf("Expected name Wi-Fi, got %s", amenity.Name)
	}

	// Test empty and whitespace-only names
	for _, name := range []string{"", "   "} {
		_, err = NewAmenity(name)
		if !errors.Is(err, ErrAmenityNameEmpty) {
			t.Errorf("Expected error %v for name %q, got %v", ErrAmenityNameEmpty, name, err)
		}
	}

	// Test overlong name
	_, err = NewAmenity(strings.Repeat("x", 51))
	if !errors.Is(err, ErrAmenityNameTooLong) {
		t.Errorf("Expected error %v, got %v", ErrAmenityNameTooLong, err)
	}

	// 50 characters is the inclusive limit
	if _, err = NewAmenity(strings.Repeat("x", 50)); err != nil {
		t.Errorf("Expected 50-character name to be valid, got %v", err)
	}

	// The limit counts characters, not bytes
	if _, err = NewAmenity(strings.Repeat("é", 50)); err != nil {
		t.Errorf("Expected 50-character multibyte name to be valid, got %v", err)
	}
}
