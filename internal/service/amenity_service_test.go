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

func newTestAmenity(t *testing.T, name string) *domain.Amenity {
	t.Helper()
	amenity, err := domain.NewAmenity(name)
	require.NoError(t, err)
	return amenity
}

func newAmenityServiceForTest(t *testing.T, amenities *MockAmenityStore) AmenityService {
	t.Helper()
	svc, err := NewAmenityService(amenities, slog.Default())
	require.NoError(t, err)
	return svc
}

func TestAmenityService_Create(t *testing.T) {
	t.Run("admin creates an amenity", func(t *testing.T) {
		amenities := &MockAmenityStore{}
		amenities.On("Create", mock.Anything, mock.MatchedBy(func(a *domain.Amenity) bool {
			return a.Name == "Wi-Fi"
		})).Return(nil)

		svc := newAmenityServiceForTest(t, amenities)

		identity := domain.Identity{SubjectID: uuid.New(), IsAdmin: true}
		amenity, err := svc.Create(context.Background(), identity, "Wi-Fi")

		require.NoError(t, err)
		assert.Equal(t, "Wi-Fi", amenity.Name)
		amenities.AssertExpectations(t)
	})

	t.Run("non-admin is forbidden", func(t *testing.T) {
		amenities := &MockAmenityStore{}

		svc := newAmenityServiceForTest(t, amenities)

		identity := domain.Identity{SubjectID: uuid.New()}
		_, err := svc.Create(context.Background(), identity, "Wi-Fi")

		assert.ErrorIs(t, err, ErrForbidden)
		amenities.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("empty name rejected", func(t *testing.T) {
		amenities := &MockAmenityStore{}

		svc := newAmenityServiceForTest(t, amenities)

		identity := domain.Identity{SubjectID: uuid.New(), IsAdmin: true}
		_, err := svc.Create(context.Background(), identity, "  ")

		assert.ErrorIs(t, err, domain.ErrAmenityNameEmpty)
	})
}

func TestAmenityService_Update(t *testing.T) {
	t.Run("admin renames an amenity", func(t *testing.T) {
		amenities := &MockAmenityStore{}

		amenity := newTestAmenity(t, "Wifi")
		amenities.On("GetByID", mock.Anything, amenity.ID).Return(amenity, nil)
		amenities.On("Update", mock.Anything, mock.MatchedBy(func(a *domain.Amenity) bool {
			return a.Name == "Wi-Fi"
		})).Return(nil)

		svc := newAmenityServiceForTest(t, amenities)

		identity := domain.Identity{SubjectID: uuid.New(), IsAdmin: true}
		updated, err := svc.Update(context.Background(), identity, amenity.ID, "Wi-Fi")

		require.NoError(t, err)
		assert.Equal(t, "Wi-Fi", updated.Name)
	})

	t.Run("missing amenity is not found before the admin check", func(t *testing.T) {
		amenities := &MockAmenityStore{}

		id := uuid.New()
		amenities.On("GetByID", mock.Anything, id).Return(nil, store.ErrAmenityNotFound)

		svc := newAmenityServiceForTest(t, amenities)

		// A non-admin probing a missing amenity sees 404, not 403.
		identity := domain.Identity{SubjectID: uuid.New()}
		_, err := svc.Update(context.Background(), identity, id, "Wi-Fi")

		assert.ErrorIs(t, err, store.ErrAmenityNotFound)
		assert.NotErrorIs(t, err, ErrForbidden)
	})

	t.Run("non-admin is forbidden", func(t *testing.T) {
		amenities := &MockAmenityStore{}

		amenity := newTestAmenity(t, "Wi-Fi")
		amenities.On("GetByID", mock.Anything, amenity.ID).Return(amenity, nil)

		svc := newAmenityServiceForTest(t, amenities)

		identity := domain.Identity{SubjectID: uuid.New()}
		_, err := svc.Update(context.Background(), identity, amenity.ID, "Parking")

		assert.ErrorIs(t, err, ErrForbidden)
		amenities.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestAmenityService_Delete(t *testing.T) {
	t.Run("admin deletes an amenity", func(t *testing.T) {
		amenities := &MockAmenityStore{}

		amenity := newTestAmenity(t, "Wi-Fi")
		amenities.On("GetByID", mock.Anything, amenity.ID).Return(amenity, nil)
		amenities.On("Delete", mock.Anything, amenity.ID).Return(nil)

		svc := newAmenityServiceForTest(t, amenities)

		identity := domain.Identity{SubjectID: uuid.New(), IsAdmin: true}
		err := svc.Delete(context.Background(), identity, amenity.ID)

		require.NoError(t, err)
		amenities.AssertExpectations(t)
	})

	t.Run("non-admin is forbidden", func(t *testing.T) {
		amenities := &MockAmenityStore{}

		amenity := newTestAmenity(t, "Wi-Fi")
		amenities.On("GetByID", mock.Anything, amenity.ID).Return(amenity, nil)

		svc := newAmenityServiceForTest(t, amenities)

		identity := domain.Identity{SubjectID: uuid.New()}
		err := svc.Delete(context.Background(), identity, amenity.ID)

		assert.ErrorIs(t, err, ErrForbidden)
		amenities.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
