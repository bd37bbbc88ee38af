package service

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/stayhub/stayhub-api/internal/domain"
	"github.com/stayhub/stayhub-api/internal/store"
)

// MockUserStore mocks the store.UserStore interface
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *MockUserStore) List(ctx context.Context) ([]*domain.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]*domain.User)
	return users, args.Error(1)
}

func (m *MockUserStore) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserStore) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserStore) WithTx(tx *sql.Tx) store.UserStore {
	args := m.Called(tx)
	return args.Get(0).(store.UserStore)
}

// MockPlaceStore mocks the store.PlaceStore interface
type MockPlaceStore struct {
	mock.Mock
}

func (m *MockPlaceStore) Create(ctx context.Context, place *domain.Place) error {
	args := m.Called(ctx, place)
	return args.Error(0)
}

func (m *MockPlaceStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Place, error) {
	args := m.Called(ctx, id)
	place, _ := args.Get(0).(*domain.Place)
	return place, args.Error(1)
}

func (m *MockPlaceStore) List(ctx context.Context) ([]*domain.Place, error) {
	args := m.Called(ctx)
	places, _ := args.Get(0).([]*domain.Place)
	return places, args.Error(1)
}

func (m *MockPlaceStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Place, error) {
	args := m.Called(ctx, ownerID)
	places, _ := args.Get(0).([]*domain.Place)
	return places, args.Error(1)
}

func (m *MockPlaceStore) Update(ctx context.Context, place *domain.Place) error {
	args := m.Called(ctx, place)
	return args.Error(0)
}

func (m *MockPlaceStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPlaceStore) WithTx(tx *sql.Tx) store.PlaceStore {
	args := m.Called(tx)
	return args.Get(0).(store.PlaceStore)
}

// MockAmenityStore mocks the store.AmenityStore interface
type MockAmenityStore struct {
	mock.Mock
}

func (m *MockAmenityStore) Create(ctx context.Context, amenity *domain.Amenity) error {
	args := m.Called(ctx, amenity)
	return args.Error(0)
}

func (m *MockAmenityStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Amenity, error) {
	args := m.Called(ctx, id)
	amenity, _ := args.Get(0).(*domain.Amenity)
	return amenity, args.Error(1)
}

func (m *MockAmenityStore) List(ctx context.Context) ([]*domain.Amenity, error) {
	args := m.Called(ctx)
	amenities, _ := args.Get(0).([]*domain.Amenity)
	return amenities, args.Error(1)
}

func (m *MockAmenityStore) Update(ctx context.Context, amenity *domain.Amenity) error {
	args := m.Called(ctx, amenity)
	return args.Error(0)
}

func (m *MockAmenityStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAmenityStore) WithTx(tx *sql.Tx) store.AmenityStore {
	args := m.Called(tx)
	return args.Get(0).(store.AmenityStore)
}

// MockReviewStore mocks the store.ReviewStore interface
type MockReviewStore struct {
	mock.Mock
}

func (m *MockReviewStore) Create(ctx context.Context, review *domain.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	args := m.Called(ctx, id)
	review, _ := args.Get(0).(*domain.Review)
	return review, args.Error(1)
}

func (m *MockReviewStore) List(ctx context.Context) ([]*domain.Review, error) {
	args := m.Called(ctx)
	reviews, _ := args.Get(0).([]*domain.Review)
	return reviews, args.Error(1)
}

func (m *MockReviewStore) ListByPlace(ctx context.Context, placeID uuid.UUID) ([]*domain.Review, error) {
	args := m.Called(ctx, placeID)
	reviews, _ := args.Get(0).([]*domain.Review)
	return reviews, args.Error(1)
}

func (m *MockReviewStore) ListByAuthor(ctx context.Context, userID uuid.UUID) ([]*domain.Review, error) {
	args := m.Called(ctx, userID)
	reviews, _ := args.Get(0).([]*domain.Review)
	return reviews, args.Error(1)
}

func (m *MockReviewStore) Update(ctx context.Context, review *domain.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockReviewStore) WithTx(tx *sql.Tx) store.ReviewStore {
	args := m.Called(tx)
	return args.Get(0).(store.ReviewStore)
}

// MockPasswordHasher mocks the auth.PasswordHasher interface
type MockPasswordHasher struct {
	mock.Mock
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}
