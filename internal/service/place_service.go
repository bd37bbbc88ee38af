package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/stayhub/stayhub-api/internal/domain"
	"github.com/stayhub/stayhub-api/internal/platform/logger"
	"github.com/stayhub/stayhub-api/internal/store"
)

// CreatePlaceInput carries the fields for creating a place. The owner is
// always the calling identity; it is not client-suppliable.
type CreatePlaceInput struct {
	Title       string
	Description string
	Price       float64
	Latitude    float64
	Longitude   float64
	AmenityIDs  []uuid.UUID
}

// UpdatePlaceInput carries a partial update: nil fields are left unchanged.
// Ownership is immutable, so no owner field exists here.
type UpdatePlaceInput struct {
	Title       *string
	Description *string
	Price       *float64
	Latitude    *float64
	Longitude   *float64
	AmenityIDs  *[]uuid.UUID
}

// PlaceService provides place-related operations.
type PlaceService interface {
	// Create validates and persists a new place owned by the identity.
	Create(ctx context.Context, identity domain.Identity, input CreatePlaceInput) (*domain.Place, error)

	// Get retrieves a place by ID.
	// Returns store.ErrPlaceNotFound if it does not exist.
	Get(ctx context.Context, id uuid.UUID) (*domain.Place, error)

	// List returns all places.
	List(ctx context.Context) ([]*domain.Place, error)

	// ListByOwner returns all places owned by the given user.
	// Returns store.ErrUserNotFound if the owner does not exist.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Place, error)

	// Update applies a partial update to a place the identity may mutate.
	// Returns store.ErrPlaceNotFound, ErrForbidden, or a validation error.
	Update(ctx context.Context, identity domain.Identity, id uuid.UUID, input UpdatePlaceInput) (*domain.Place, error)

	// Delete removes a place (and its reviews) the identity may mutate.
	// Returns store.ErrPlaceNotFound or ErrForbidden.
	Delete(ctx context.Context, identity domain.Identity, id uuid.UUID) error
}

// placeServiceImpl implements the PlaceService interface.
type placeServiceImpl struct {
	places store.PlaceStore
	users  store.UserStore
	logger *slog.Logger
}

// NewPlaceService creates a new PlaceService.
// It returns an error if any of the required dependencies are nil.
func NewPlaceService(places store.PlaceStore, users store.UserStore, logger *slog.Logger) (PlaceService, error) {
	if places == nil {
		return nil, domain.NewValidationError("places", "cannot be nil", domain.ErrValidation)
	}
	if users == nil {
		return nil, domain.NewValidationError("users", "cannot be nil", domain.ErrValidation)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &placeServiceImpl{
		places: places,
		users:  users,
		logger: logger.With(slog.String("component", "place_service")),
	}, nil
}

// Create implements PlaceService.Create
func (s *placeServiceImpl) Create(
	ctx context.Context,
	identity domain.Identity,
	input CreatePlaceInput,
) (*domain.Place, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// The owner must resolve: a valid token can outlive its account.
	if _, err := s.users.GetByID(ctx, identity.SubjectID); err != nil {
		if store.IsNotFoundError(err) {
			return nil, err
		}
		return nil, NewServiceError("create_place", "failed to resolve owner", err)
	}

	place, err := domain.NewPlace(
		identity.SubjectID,
		input.Title,
		input.Description,
		input.Price,
		input.Latitude,
		input.Longitude,
	)
	if err != nil {
		return nil, err
	}
	place.AmenityIDs = input.AmenityIDs

	if err := s.places.Create(ctx, place); err != nil {
		if store.IsNotFoundError(err) || domain.IsValidationError(err) {
			return nil, err
		}
		log.Error("failed to persist place",
			slog.String("error", err.Error()),
			slog.String("place_id", place.ID.String()))
		return nil, NewServiceError("create_place", "failed to save place", err)
	}

	log.Info("place created",
		slog.String("place_id", place.ID.String()),
		slog.String("owner_id", place.OwnerID.String()))
	return place, nil
}

// Get implements PlaceService.Get
func (s *placeServiceImpl) Get(ctx context.Context, id uuid.UUID) (*domain.Place, error) {
	return s.places.GetByID(ctx, id)
}

// List implements PlaceService.List
func (s *placeServiceImpl) List(ctx context.Context) ([]*domain.Place, error) {
	return s.places.List(ctx)
}

// ListByOwner implements PlaceService.ListByOwner
func (s *placeServiceImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Place, error) {
	if _, err := s.users.GetByID(ctx, ownerID); err != nil {
		return nil, err
	}
	return s.places.ListByOwner(ctx, ownerID)
}

// Update implements PlaceService.Update
// Not-found is checked before ownership, so a missing place is always 404.
func (s *placeServiceImpl) Update(
	ctx context.Context,
	identity domain.Identity,
	id uuid.UUID,
	input UpdatePlaceInput,
) (*domain.Place, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	place, err := s.places.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !identity.CanMutate(place.OwnerID) {
		log.Warn("place update forbidden",
			slog.String("place_id", id.String()),
			slog.String("subject_id", identity.SubjectID.String()))
		return nil, ErrForbidden
	}

	if input.Title != nil {
		place.Title = *input.Title
	}
	if input.Description != nil {
		place.Description = *input.Description
	}
	if input.Price != nil {
		place.Price = *input.Price
	}
	if input.Latitude != nil {
		place.Latitude = *input.Latitude
	}
	if input.Longitude != nil {
		place.Longitude = *input.Longitude
	}
	if input.AmenityIDs != nil {
		place.AmenityIDs = *input.AmenityIDs
	}

	if err := place.Validate(); err != nil {
		return nil, err
	}
	place.Touch()

	if err := s.places.Update(ctx, place); err != nil {
		if store.IsNotFoundError(err) || domain.IsValidationError(err) {
			return nil, err
		}
		log.Error("failed to update place",
			slog.String("error", err.Error()),
			slog.String("place_id", id.String()))
		return nil, NewServiceError("update_place", "failed to save place", err)
	}

	log.Info("place updated", slog.String("place_id", id.String()))
	return place, nil
}

// Delete implements PlaceService.Delete
func (s *placeServiceImpl) Delete(ctx context.Context, identity domain.Identity, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	place, err := s.places.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !identity.CanMutate(place.OwnerID) {
		log.Warn("place delete forbidden",
			slog.String("place_id", id.String()),
			slog.String("subject_id", identity.SubjectID.String()))
		return ErrForbidden
	}

	if err := s.places.Delete(ctx, id); err != nil {
		if store.IsNotFoundError(err) {
			return err
		}
		log.Error("failed to delete place",
			slog.String("error", err.Error()),
			slog.String("place_id", id.String()))
		return NewServiceError("delete_place", "failed to delete place", err)
	}

	log.Info("place deleted", slog.String("place_id", id.String()))
	return nil
}
