package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/stayhub/stayhub-api/internal/domain"
	"github.com/stayhub/stayhub-api/internal/platform/logger"
	"github.com/stayhub/stayhub-api/internal/service/auth"
	"github.com/stayhub/stayhub-api/internal/store"
)

// CreateUserInput carries the fields for registering a new user.
// Password is optional; when present it is hashed before storage.
type CreateUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// UpdateUserInput carries a partial update: nil fields are left unchanged.
type UpdateUserInput struct {
	FirstName *string
	LastName  *string
	Email     *string
	Password  *string
}

// UserService provides user-related operations.
type UserService interface {
	// Create registers a new user, enforcing email uniqueness.
	// Returns store.ErrEmailExists if the email is already taken, or a
	// domain validation error.
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)

	// Get retrieves a user by ID.
	// Returns store.ErrUserNotFound if the user does not exist.
	Get(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// List returns all users.
	List(ctx context.Context) ([]*domain.User, error)

	// Update applies a partial update to a user account. Only the account
	// owner or an admin may update it.
	// Returns store.ErrUserNotFound, ErrForbidden, store.ErrEmailExists,
	// or a validation error.
	Update(ctx context.Context, identity domain.Identity, id uuid.UUID, input UpdateUserInput) (*domain.User, error)

	// Delete removes a user and, atomically, every place and review the
	// user owns. Only the account owner or an admin may delete it.
	// Returns store.ErrUserNotFound or ErrForbidden.
	Delete(ctx context.Context, identity domain.Identity, id uuid.UUID) error
}

// userServiceImpl implements the UserService interface.
type userServiceImpl struct {
	users  store.UserStore
	hasher auth.PasswordHasher
	logger *slog.Logger
}

// NewUserService creates a new UserService.
// It returns an error if any of the required dependencies are nil.
func NewUserService(users store.UserStore, hasher auth.PasswordHasher, logger *slog.Logger) (UserService, error) {
	if users == nil {
		return nil, domain.NewValidationError("users", "cannot be nil", domain.ErrValidation)
	}
	if hasher == nil {
		return nil, domain.NewValidationError("hasher", "cannot be nil", domain.ErrValidation)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &userServiceImpl{
		users:  users,
		hasher: hasher,
		logger: logger.With(slog.String("component", "user_service")),
	}, nil
}

// Create implements UserService.Create
// The GetByEmail pre-check is an optimistic fast path; the unique constraint
// on the email column is the real guarantee under concurrent creation, and a
// constraint violation surfaces as the same store.ErrEmailExists.
func (s *userServiceImpl) Create(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := domain.NewUser(input.FirstName, input.LastName, input.Email)
	if err != nil {
		return nil, err
	}

	if _, err := s.users.GetByEmail(ctx, input.Email); err == nil {
		return nil, store.ErrEmailExists
	} else if !store.IsNotFoundError(err) {
		log.Error("email uniqueness pre-check failed",
			slog.String("error", err.Error()))
		return nil, NewServiceError("create_user", "failed to check email uniqueness", err)
	}

	if input.Password != "" {
		hashed, err := s.hasher.Hash(input.Password)
		if err != nil {
			log.Error("failed to hash password",
				slog.String("error", err.Error()),
				slog.String("user_id", user.ID.String()))
			return nil, NewServiceError("create_user", "failed to hash password", err)
		}
		user.HashedPassword = hashed
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailExists) || domain.IsValidationError(err) {
			return nil, err
		}
		log.Error("failed to persist user",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return nil, NewServiceError("create_user", "failed to save user", err)
	}

	log.Info("user created", slog.String("user_id", user.ID.String()))
	return user, nil
}

// Get implements UserService.Get
func (s *userServiceImpl) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

// List implements UserService.List
func (s *userServiceImpl) List(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

// Update implements UserService.Update
func (s *userServiceImpl) Update(
	ctx context.Context,
	identity domain.Identity,
	id uuid.UUID,
	input UpdateUserInput,
) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !identity.CanMutate(user.ID) {
		log.Warn("user update forbidden",
			slog.String("user_id", id.String()),
			slog.String("subject_id", identity.SubjectID.String()))
		return nil, ErrForbidden
	}

	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Email != nil && *input.Email != user.Email {
		if _, err := s.users.GetByEmail(ctx, *input.Email); err == nil {
			return nil, store.ErrEmailExists
		} else if !store.IsNotFoundError(err) {
			return nil, NewServiceError("update_user", "failed to check email uniqueness", err)
		}
		user.Email = *input.Email
	}
	if input.Password != nil && *input.Password != "" {
		hashed, err := s.hasher.Hash(*input.Password)
		if err != nil {
			return nil, NewServiceError("update_user", "failed to hash password", err)
		}
		user.HashedPassword = hashed
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}
	user.Touch()

	if err := s.users.Update(ctx, user); err != nil {
		if store.IsNotFoundError(err) || errors.Is(err, store.ErrEmailExists) {
			return nil, err
		}
		log.Error("failed to update user",
			slog.String("error", err.Error()),
			slog.String("user_id", id.String()))
		return nil, NewServiceError("update_user", "failed to save user", err)
	}

	log.Info("user updated", slog.String("user_id", id.String()))
	return user, nil
}

// Delete implements UserService.Delete
// The cascade (places, reviews written by the user, reviews on the user's
// places) happens inside one storage transaction: concurrent readers never
// observe a partially-deleted graph.
func (s *userServiceImpl) Delete(ctx context.Context, identity domain.Identity, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !identity.CanMutate(user.ID) {
		log.Warn("user delete forbidden",
			slog.String("user_id", id.String()),
			slog.String("subject_id", identity.SubjectID.String()))
		return ErrForbidden
	}

	if err := s.users.DeleteCascade(ctx, id); err != nil {
		if store.IsNotFoundError(err) {
			return err
		}
		log.Error("failed to delete user",
			slog.String("error", err.Error()),
			slog.String("user_id", id.String()))
		return NewServiceError("delete_user", "failed to delete user", err)
	}

	log.Info("user deleted with cascade", slog.String("user_id", id.String()))
	return nil
}
