package domain

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestNewReview(t *testing.T) {
	userID := uuid.New()
	placeID := uuid.New()

	review, err := NewReview(userID, placeID, "Great stay", 5)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if review.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if review.UserID != userID {
		t.Errorf("Expected user ID %v, got %v", userID, review.UserID)
	}

	if review.PlaceID != placeID {
		t.Errorf("Expected place ID %v, got %v", placeID, review.PlaceID)
	}

	// Test empty comment
	_, err = NewReview(userID, placeID, "", 3)
	if !errors.Is(err, ErrReviewCommentEmpty) {
		t.Errorf("Expected error %v, got %v", ErrReviewCommentEmpty, err)
	}

	// Test rating bounds
	for _, rating := range []int{0, -1, 6, 100} {
		_, err = NewReview(userID, placeID, "ok", rating)
		if !errors.Is(err, ErrReviewRatingRange) {
			t.Errorf("Expected error %v for rating %d, got %v", ErrReviewRatingRange, rating, err)
		}
	}

	for rating := MinRating; rating <= MaxRating; rating++ {
		if _, err = NewReview(userID, placeID, "ok", rating); err != nil {
			t.Errorf("Expected no error for rating %d, got %v", rating, err)
		}
	}

	// Test missing references
	_, err = NewReview(uuid.Nil, placeID, "ok", 3)
	if !errors.Is(err, ErrReviewAuthorEmpty) {
		t.Errorf("Expected error %v, got %v", ErrReviewAuthorEmpty, err)
	}

	_, err = NewReview(userID, uuid.Nil, "ok", 3)
	if !errors.Is(err, ErrReviewPlaceEmpty) {
		t.Errorf("Expected error %v, got %v", ErrReviewPlaceEmpty, err)
	}
}

func TestReviewUpdateFields(t *testing.T) {
	review, err := NewReview(uuid.New(), uuid.New(), "Original", 3)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	originalUpdatedAt := review.UpdatedAt

	// Partial update: only the rating changes
	newRating := 5
	if err := review.UpdateFields(nil, &newRating); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if review.Comment != "Original" {
		t.Errorf("Expected comment unchanged, got %s", review.Comment)
	}
	if review.Rating != 5 {
		t.Errorf("Expected rating 5, got %d", review.Rating)
	}
	if review.UpdatedAt.Before(originalUpdatedAt) {
		t.Error("Expected UpdatedAt to advance after a successful update")
	}

	// Failed update leaves the review untouched
	badComment := ""
	badRating := 0
	if err := review.UpdateFields(&badComment, &badRating); err == nil {
		t.Fatal("Expected validation error, got nil")
	}

	if review.Comment != "Original" || review.Rating != 5 {
		t.Errorf("Expected review restored after failed update, got comment=%q rating=%d",
			review.Comment, review.Rating)
	}
}
