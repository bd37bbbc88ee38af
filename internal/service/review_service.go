package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/stayhub/stayhub-api/internal/domain"
	"github.com/stayhub/stayhub-api/internal/platform/logger"
	"github.com/stayhub/stayhub-api/internal/store"
)

// CreateReviewInput carries the fields a caller may supply when creating a
// review. UserID is only honored for admin identities; for everyone else the
// review is attributed to the caller, whatever the payload says.
type CreateReviewInput struct {
	Comment string
	Rating  int
	PlaceID uuid.UUID
	UserID  uuid.UUID // optional, admin-only attribution override
}

// UpdateReviewInput carries a partial update: nil fields are left unchanged.
// The review's author and place cannot be changed after creation, so no such
// fields exist here.
type UpdateReviewInput struct {
	Comment *string
	Rating  *int
}

// ReviewService provides review-related operations.
type ReviewService interface {
	// Create validates, attributes and persists a new review.
	// Returns store.ErrPlaceNotFound or store.ErrUserNotFound if a
	// reference does not resolve, or a domain validation error.
	Create(ctx context.Context, identity domain.Identity, input CreateReviewInput) (*domain.Review, error)

	// Get retrieves a review by ID.
	// Returns store.ErrReviewNotFound if it does not exist.
	Get(ctx context.Context, id uuid.UUID) (*domain.Review, error)

	// List returns all reviews. Read access is public: no filtering by
	// caller identity.
	List(ctx context.Context) ([]*domain.Review, error)

	// ListByPlace returns all reviews for a place.
	// Returns store.ErrPlaceNotFound if the place does not exist; a place
	// with no reviews yields an empty slice.
	ListByPlace(ctx context.Context, placeID uuid.UUID) ([]*domain.Review, error)

	// ListByAuthor returns all reviews written by a user.
	// Returns store.ErrUserNotFound if the user does not exist; a user
	// with no reviews yields an empty slice.
	ListByAuthor(ctx context.Context, userID uuid.UUID) ([]*domain.Review, error)

	// Update applies a partial update to a review the identity may mutate.
	// Returns store.ErrReviewNotFound, ErrForbidden, or a validation error.
	Update(ctx context.Context, identity domain.Identity, id uuid.UUID, input UpdateReviewInput) (*domain.Review, error)

	// Delete removes a review the identity may mutate.
	// Returns store.ErrReviewNotFound or ErrForbidden.
	Delete(ctx context.Context, identity domain.Identity, id uuid.UUID) error
}

// reviewServiceImpl implements the ReviewService interface.
type reviewServiceImpl struct {
	reviews store.ReviewStore
	places  store.PlaceStore
	users   store.UserStore
	logger  *slog.Logger
}

// NewReviewService creates a new ReviewService.
// It returns an error if any of the required dependencies are nil.
func NewReviewService(
	reviews store.ReviewStore,
	places store.PlaceStore,
	users store.UserStore,
	logger *slog.Logger,
) (ReviewService, error) {
	if reviews == nil {
		return nil, domain.NewValidationError("reviews", "cannot be nil", domain.ErrValidation)
	}
	if places == nil {
		return nil, domain.NewValidationError("places", "cannot be nil", domain.ErrValidation)
	}
	if users == nil {
		return nil, domain.NewValidationError("users", "cannot be nil", domain.ErrValidation)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &reviewServiceImpl{
		reviews: reviews,
		places:  places,
		users:   users,
		logger:  logger.With(slog.String("component", "review_service")),
	}, nil
}

// Create implements ReviewService.Create
func (s *reviewServiceImpl) Create(
	ctx context.Context,
	identity domain.Identity,
	input CreateReviewInput,
) (*domain.Review, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// Attribution rule: non-admins always review as themselves; a
	// client-supplied user_id is discarded. Admins may attribute the review
	// to another user, defaulting to themselves.
	authorID := identity.SubjectID
	if identity.IsAdmin && input.UserID != uuid.Nil {
		authorID = input.UserID
	}

	// Both references must resolve before anything is persisted.
	if _, err := s.places.GetByID(ctx, input.PlaceID); err != nil {
		if store.IsNotFoundError(err) {
			return nil, err
		}
		log.Error("failed to resolve place for review",
			slog.String("error", err.Error()),
			slog.String("place_id", input.PlaceID.String()))
		return nil, NewServiceError("create_review", "failed to resolve place", err)
	}
	if _, err := s.users.GetByID(ctx, authorID); err != nil {
		if store.IsNotFoundError(err) {
			return nil, err
		}
		log.Error("failed to resolve author for review",
			slog.String("error", err.Error()),
			slog.String("user_id", authorID.String()))
		return nil, NewServiceError("create_review", "failed to resolve author", err)
	}

	review, err := domain.NewReview(authorID, input.PlaceID, input.Comment, input.Rating)
	if err != nil {
		return nil, err
	}

	if err := s.reviews.Create(ctx, review); err != nil {
		if store.IsNotFoundError(err) || domain.IsValidationError(err) {
			return nil, err
		}
		log.Error("failed to persist review",
			slog.String("error", err.Error()),
			slog.String("review_id", review.ID.String()))
		return nil, NewServiceError("create_review", "failed to save review", err)
	}

	log.Info("review created",
		slog.String("review_id", review.ID.String()),
		slog.String("place_id", review.PlaceID.String()),
		slog.String("user_id", review.UserID.String()),
		slog.Bool("admin_attributed", identity.IsAdmin && input.UserID != uuid.Nil))
	return review, nil
}

// Get implements ReviewService.Get
func (s *reviewServiceImpl) Get(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	return s.reviews.GetByID(ctx, id)
}

// List implements ReviewService.List
func (s *reviewServiceImpl) List(ctx context.Context) ([]*domain.Review, error) {
	return s.reviews.List(ctx)
}

// ListByPlace implements ReviewService.ListByPlace
func (s *reviewServiceImpl) ListByPlace(ctx context.Context, placeID uuid.UUID) ([]*domain.Review, error) {
	if _, err := s.places.GetByID(ctx, placeID); err != nil {
		return nil, err
	}
	return s.reviews.ListByPlace(ctx, placeID)
}

// ListByAuthor implements ReviewService.ListByAuthor
func (s *reviewServiceImpl) ListByAuthor(ctx context.Context, userID uuid.UUID) ([]*domain.Review, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.reviews.ListByAuthor(ctx, userID)
}

// Update implements ReviewService.Update
// The not-found check runs before the ownership check: a missing review is
// always 404, and 403 is only returned once existence and lack of ownership
// are both established.
func (s *reviewServiceImpl) Update(
	ctx context.Context,
	identity domain.Identity,
	id uuid.UUID,
	input UpdateReviewInput,
) (*domain.Review, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	review, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !identity.CanMutate(review.UserID) {
		log.Warn("review update forbidden",
			slog.String("review_id", id.String()),
			slog.String("subject_id", identity.SubjectID.String()))
		return nil, ErrForbidden
	}

	if err := review.UpdateFields(input.Comment, input.Rating); err != nil {
		return nil, err
	}

	if err := s.reviews.Update(ctx, review); err != nil {
		if store.IsNotFoundError(err) {
			return nil, err
		}
		log.Error("failed to update review",
			slog.String("error", err.Error()),
			slog.String("review_id", id.String()))
		return nil, NewServiceError("update_review", "failed to save review", err)
	}

	log.Info("review updated", slog.String("review_id", id.String()))
	return review, nil
}

// Delete implements ReviewService.Delete
func (s *reviewServiceImpl) Delete(ctx context.Context, identity domain.Identity, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	review, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !identity.CanMutate(review.UserID) {
		log.Warn("review delete forbidden",
			slog.String("review_id", id.String()),
			slog.String("subject_id", identity.SubjectID.String()))
		return ErrForbidden
	}

	if err := s.reviews.Delete(ctx, id); err != nil {
		if store.IsNotFoundError(err) {
			return err
		}
		log.Error("failed to delete review",
			slog.String("error", err.Error()),
			slog.String("review_id", id.String()))
		return NewServiceError("delete_review", "failed to delete review", err)
	}

	log.Info("review deleted", slog.String("review_id", id.String()))
	return nil
}
