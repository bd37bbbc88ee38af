package service

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/stayhub/stayhub-api/internal/domain"
	"github.com/stayhub/stayhub-api/internal/store"
)

func newPlaceServiceForTest(t *testing.T, places *MockPlaceStore, users *MockUserStore) PlaceService {
	t.Helper()
	svc, err := NewPlaceService(places, users, slog.Default())
	require.NoError(t, err)
	return svc
}

func TestPlaceService_Create(t *testing.T) {
	t.Run("caller becomes the owner", func(t *testing.T) {
		places := &MockPlaceStore{}
		users := &MockUserStore{}

		callerID := uuid.New()
		amenityID := uuid.New()

		users.On("GetByID", mock.Anything, callerID).
			Return(newTestUser(t, "owner@example.com"), nil)
		places.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Place) bool {
			return p.OwnerID == callerID && len(p.AmenityIDs) == 1
		})).Return(nil)

		svc := newPlaceServiceForTest(t, places, users)

		place, err := svc.Create(context.Background(), domain.Identity{SubjectID: callerID}, CreatePlaceInput{
			Title:      "Cozy loft",
			Price:      100.0,
			Latitude:   48.85,
			Longitude:  2.35,
			AmenityIDs: []uuid.UUID{amenityID},
		})

		require.NoError(t, err)
		assert.Equal(t, callerID, place.OwnerID)
		places.AssertExpectations(t)
	})

	t.Run("deleted account cannot create places", func(t *testing.T) {
		places := &MockPlaceStore{}
		users := &MockUserStore{}

		callerID := uuid.New()
		users.On("GetByID", mock.Anything, callerID).Return(nil, store.ErrUserNotFound)

		svc := newPlaceServiceForTest(t, places, users)

		_, err := svc.Create(context.Background(), domain.Identity{SubjectID: callerID}, CreatePlaceInput{
			Title: "Cozy loft",
			Price: 100.0,
		})

		assert.ErrorIs(t, err, store.ErrUserNotFound)
		places.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("invalid coordinates rejected", func(t *testing.T) {
		places := &MockPlaceStore{}
		users := &MockUserStore{}

		callerID := uuid.New()
		users.On("GetByID", mock.Anything, callerID).
			Return(newTestUser(t, "owner@example.com"), nil)

		svc := newPlaceServiceForTest(t, places, users)

		_, err := svc.Create(context.Background(), domain.Identity{SubjectID: callerID}, CreatePlaceInput{
			Title:    "Cozy loft",
			Price:    100.0,
			Latitude: 91.0,
		})

		assert.ErrorIs(t, err, domain.ErrPlaceLatitudeRange)
		places.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestPlaceService_ListByOwner(t *testing.T) {
	t.Run("missing owner is not found", func(t *testing.T) {
		places := &MockPlaceStore{}
		users := &MockUserStore{}

		ownerID := uuid.New()
		users.On("GetByID", mock.Anything, ownerID).Return(nil, store.ErrUserNotFound)

		svc := newPlaceServiceForTest(t, places, users)

		_, err := svc.ListByOwner(context.Background(), ownerID)

		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})

	t.Run("owner with no places yields an empty slice", func(t *testing.T) {
		places := &MockPlaceStore{}
		users := &MockUserStore{}

		ownerID := uuid.New()
		users.On("GetByID", mock.Anything, ownerID).
			Return(newTestUser(t, "owner@example.com"), nil)
		places.On("ListByOwner", mock.Anything, ownerID).Return([]*domain.Place{}, nil)

		svc := newPlaceServiceForTest(t, places, users)

		got, err := svc.ListByOwner(context.Background(), ownerID)

		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestPlaceService_Update(t *testing.T) {
	t.Run("owner applies partial update", func(t *testing.T) {
		places := &MockPlaceStore{}
		users := &MockUserStore{}

		ownerID := uuid.New()
		place := newTestPlace(t, ownerID)

		places.On("GetByID", mock.Anything, place.ID).Return(place, nil)
		places.On("Update", mock.Anything, mock.MatchedBy(func(p *domain.Place) bool {
			return p.Price == 80.0 && p.Title == "Cozy loft" && p.OwnerID == ownerID
		})).Return(nil)

		svc := newPlaceServiceForTest(t, places, users)

		price := 80.0
		updated, err := svc.Update(context.Background(), domain.Identity{SubjectID: ownerID}, place.ID, UpdatePlaceInput{
			Price: &price,
		})

		require.NoError(t, err)
		assert.Equal(t, 80.0, updated.Price)
		assert.Equal(t, "Cozy loft", updated.Title)
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		places := &MockPlaceStore{}
		users := &MockUserStore{}

		place := newTestPlace(t, uuid.New())
		places.On("GetByID", mock.Anything, place.ID).Return(place, nil)

		svc := newPlaceServiceForTest(t, places, users)

		price := 80.0
		_, err := svc.Update(context.Background(), domain.Identity{SubjectID: uuid.New()}, place.ID, UpdatePlaceInput{
			Price: &price,
		})

		assert.ErrorIs(t, err, ErrForbidden)
		places.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("admin may update any place", func(t *testing.T) {
		places := &MockPlaceStore{}
		users := &MockUserStore{}

		place := newTestPlace(t, uuid.New())
		places.On("GetByID", mock.Anything, place.ID).Return(place, nil)
		places.On("Update", mock.Anything, mock.Anything).Return(nil)

		svc := newPlaceServiceForTest(t, places, users)

		title := "Renamed by moderation"
		identity := domain.Identity{SubjectID: uuid.New(), IsAdmin: true}
		_, err := svc.Update(context.Background(), identity, place.ID, UpdatePlaceInput{
			Title: &title,
		})

		require.NoError(t, err)
	})

	t.Run("missing place is not found, not forbidden", func(t *testing.T) {
		places := &MockPlaceStore{}
		users := &MockUserStore{}

		id := uuid.New()
		places.On("GetByID", mock.Anything, id).Return(nil, store.ErrPlaceNotFound)

		svc := newPlaceServiceForTest(t, places, users)

		_, err := svc.Update(context.Background(), domain.Identity{SubjectID: uuid.New()}, id, UpdatePlaceInput{})

		assert.ErrorIs(t, err, store.ErrPlaceNotFound)
		assert.NotErrorIs(t, err, ErrForbidden)
	})
}

func TestPlaceService_Delete(t *testing.T) {
	t.Run("owner deletes own place", func(t *testing.T) {
		places := &MockPlaceStore{}
		users := &MockUserStore{}

		ownerID := uuid.New()
		place := newTestPlace(t, ownerID)

		places.On("GetByID", mock.Anything, place.ID).Return(place, nil)
		places.On("Delete", mock.Anything, place.ID).Return(nil)

		svc := newPlaceServiceForTest(t, places, users)

		err := svc.Delete(context.Background(), domain.Identity{SubjectID: ownerID}, place.ID)

		require.NoError(t, err)
		places.AssertExpectations(t)
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		places := &MockPlaceStore{}
		users := &MockUserStore{}

		place := newTestPlace(t, uuid.New())
		places.On("GetByID", mock.Anything, place.ID).Return(place, nil)

		svc := newPlaceServiceForTest(t, places, users)

		err := svc.Delete(context.Background(), domain.Identity{SubjectID: uuid.New()}, place.ID)

		assert.ErrorIs(t, err, ErrForbidden)
		places.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
