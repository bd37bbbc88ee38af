package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/stayhub/stayhub-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store.
	// Returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// List returns all users.
	List(ctx context.Context) ([]*domain.User, error)

	// Update modifies an existing user's details. The caller provides the
	// complete user object including HashedPassword.
	// Returns ErrUserNotFound if the user does not exist.
	// Returns ErrEmailExists if updating to an email that already exists.
	Update(ctx context.Context, user *domain.User) error

	// DeleteCascade removes a user together with every place and review the
	// user owns, and every review left on those places, as one atomic
	// operation. Either all dependent rows disappear or none do.
	// Returns ErrUserNotFound if the user does not exist.
	DeleteCascade(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new UserStore instance that uses the provided
	// transaction. The transaction is created and managed by the caller.
	WithTx(tx *sql.Tx) UserStore
}
