package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/stayhub/stayhub-api/internal/domain"
	"github.com/stayhub/stayhub-api/internal/platform/logger"
	"github.com/stayhub/stayhub-api/internal/store"
)

// AmenityService provides amenity-related operations. Amenities have no
// owner, so mutations are restricted to admin identities while reads stay
// public.
type AmenityService interface {
	// Create validates and persists a new amenity. Admin only.
	Create(ctx context.Context, identity domain.Identity, name string) (*domain.Amenity, error)

	// Get retrieves an amenity by ID.
	// Returns store.ErrAmenityNotFound if it does not exist.
	Get(ctx context.Context, id uuid.UUID) (*domain.Amenity, error)

	// List returns all amenities.
	List(ctx context.Context) ([]*domain.Amenity, error)

	// Update renames an amenity. Admin only.
	// Returns store.ErrAmenityNotFound, ErrForbidden, or a validation error.
	Update(ctx context.Context, identity domain.Identity, id uuid.UUID, name string) (*domain.Amenity, error)

	// Delete removes an amenity. Admin only.
	// Returns store.ErrAmenityNotFound or ErrForbidden.
	Delete(ctx context.Context, identity domain.Identity, id uuid.UUID) error
}

// amenityServiceImpl implements the AmenityService interface.
type amenityServiceImpl struct {
	amenities store.AmenityStore
	logger    *slog.Logger
}

// NewAmenityService creates a new AmenityService.
// It returns an error if any of the required dependencies are nil.
func NewAmenityService(amenities store.AmenityStore, logger *slog.Logger) (AmenityService, error) {
	if amenities == nil {
		return nil, domain.NewValidationError("amenities", "cannot be nil", domain.ErrValidation)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &amenityServiceImpl{
		amenities: amenities,
		logger:    logger.With(slog.String("component", "amenity_service")),
	}, nil
}

// Create implements AmenityService.Create
func (s *amenityServiceImpl) Create(ctx context.Context, identity domain.Identity, name string) (*domain.Amenity, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if !identity.IsAdmin {
		return nil, ErrForbidden
	}

	amenity, err := domain.NewAmenity(name)
	if err != nil {
		return nil, err
	}

	if err := s.amenities.Create(ctx, amenity); err != nil {
		if domain.IsValidationError(err) {
			return nil, err
		}
		log.Error("failed to persist amenity",
			slog.String("error", err.Error()),
			slog.String("amenity_id", amenity.ID.String()))
		return nil, NewServiceError("create_amenity", "failed to save amenity", err)
	}

	log.Info("amenity created", slog.String("amenity_id", amenity.ID.String()))
	return amenity, nil
}

// Get implements AmenityService.Get
func (s *amenityServiceImpl) Get(ctx context.Context, id uuid.UUID) (*domain.Amenity, error) {
	return s.amenities.GetByID(ctx, id)
}

// List implements AmenityService.List
func (s *amenityServiceImpl) List(ctx context.Context) ([]*domain.Amenity, error) {
	return s.amenities.List(ctx)
}

// Update implements AmenityService.Update
func (s *amenityServiceImpl) Update(
	ctx context.Context,
	identity domain.Identity,
	id uuid.UUID,
	name string,
) (*domain.Amenity, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	amenity, err := s.amenities.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !identity.IsAdmin {
		return nil, ErrForbidden
	}

	amenity.Name = name
	if err := amenity.Validate(); err != nil {
		return nil, err
	}
	amenity.Touch()

	if err := s.amenities.Update(ctx, amenity); err != nil {
		if store.IsNotFoundError(err) || domain.IsValidationError(err) {
			return nil, err
		}
		log.Error("failed to update amenity",
			slog.String("error", err.Error()),
			slog.String("amenity_id", id.String()))
		return nil, NewServiceError("update_amenity", "failed to save amenity", err)
	}

	log.Info("amenity updated", slog.String("amenity_id", id.String()))
	return amenity, nil
}

// Delete implements AmenityService.Delete
func (s *amenityServiceImpl) Delete(ctx context.Context, identity domain.Identity, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.amenities.GetByID(ctx, id); err != nil {
		return err
	}

	if !identity.IsAdmin {
		return ErrForbidden
	}

	if err := s.amenities.Delete(ctx, id); err != nil {
		if store.IsNotFoundError(err) {
			return err
		}
		log.Error("failed to delete amenity",
			slog.String("error", err.Error()),
			slog.String("amenity_id", id.String()))
		return NewServiceError("delete_amenity", "failed to delete amenity", err)
	}

	log.Info("amenity deleted", slog.String("amenity_id", id.String()))
	return nil
}
