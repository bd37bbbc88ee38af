package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/stayhub/stayhub-api/internal/domain"
	"github.com/stayhub/stayhub-api/internal/platform/logger"
	"github.com/stayhub/stayhub-api/internal/store"
)

// PostgresReviewStore implements the store.ReviewStore interface
// using a PostgreSQL database as the storage backend.
type PostgresReviewStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresReviewStore creates a new PostgreSQL implementation of the
// ReviewStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresReviewStore(db store.DBTX, logger *slog.Logger) *PostgresReviewStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresReviewStore{
		db:     db,
		logger: logger.With(slog.String("component", "review_store")),
	}
}

// Ensure PostgresReviewStore implements store.ReviewStore interface
var _ store.ReviewStore = (*PostgresReviewStore)(nil)

// WithTx implements store.ReviewStore.WithTx
func (s *PostgresReviewStore) WithTx(tx *sql.Tx) store.ReviewStore {
	return &PostgresReviewStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.ReviewStore.Create
// It saves a new review to the database, handling domain validation.
// Returns store.ErrInvalidEntity if the place or user ID doesn't exist
// (foreign key violation).
func (s *PostgresReviewStore) Create(ctx context.Context, review *domain.Review) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := review.Validate(); err != nil {
		log.Warn("review validation failed during create",
			slog.String("error", err.Error()),
			slog.String("review_id", review.ID.String()))
		return err
	}

	query := `
		INSERT INTO reviews (id, comment, rating, place_id, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		review.ID,
		review.Comment,
		review.Rating,
		review.PlaceID,
		review.UserID,
		review.CreatedAt,
		review.UpdatedAt,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during review creation",
				slog.String("error", err.Error()),
				slog.String("review_id", review.ID.String()),
				slog.String("place_id", review.PlaceID.String()),
				slog.String("user_id", review.UserID.String()))
			return fmt.Errorf("%w: referenced place or user not found",
				store.ErrInvalidEntity)
		}

		log.Error("failed to create review",
			slog.String("error", err.Error()),
			slog.String("review_id", review.ID.String()))
		return err
	}

	log.Info("review created successfully",
		slog.String("review_id", review.ID.String()),
		slog.String("place_id", review.PlaceID.String()),
		slog.String("user_id", review.UserID.String()))
	return nil
}

// GetByID implements store.ReviewStore.GetByID
// Returns store.ErrReviewNotFound if the review does not exist.
func (s *PostgresReviewStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, comment, rating, place_id, user_id, created_at, updated_at
		FROM reviews
		WHERE id = $1
	`

	review, err := scanReview(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("review not found", slog.String("review_id", id.String()))
			return nil, store.ErrReviewNotFound
		}
		log.Error("failed to get review by ID",
			slog.String("error", err.Error()),
			slog.String("review_id", id.String()))
		return nil, err
	}

	return review, nil
}

// List implements store.ReviewStore.List
func (s *PostgresReviewStore) List(ctx context.Context) ([]*domain.Review, error) {
	return s.listWhere(ctx, "", nil)
}

// ListByPlace implements store.ReviewStore.ListByPlace
func (s *PostgresReviewStore) ListByPlace(ctx context.Context, placeID uuid.UUID) ([]*domain.Review, error) {
	return s.listWhere(ctx, "WHERE place_id = $1", []any{placeID})
}

// ListByAuthor implements store.ReviewStore.ListByAuthor
func (s *PostgresReviewStore) ListByAuthor(ctx context.Context, userID uuid.UUID) ([]*domain.Review, error) {
	return s.listWhere(ctx, "WHERE user_id = $1", []any{userID})
}

func (s *PostgresReviewStore) listWhere(ctx context.Context, where string, args []any) ([]*domain.Review, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := fmt.Sprintf(`
		SELECT id, comment, rating, place_id, user_id, created_at, updated_at
		FROM reviews
		%s
		ORDER BY created_at
	`, where)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list reviews", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	reviews := make([]*domain.Review, 0)
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			log.Error("failed to scan review row", slog.String("error", err.Error()))
			return nil, err
		}
		reviews = append(reviews, review)
	}

	return reviews, rows.Err()
}

// Update implements store.ReviewStore.Update
// Only the comment, rating and updated_at columns are written: the place
// and author references are immutable after creation.
// Returns store.ErrReviewNotFound if the review does not exist.
func (s *PostgresReviewStore) Update(ctx context.Context, review *domain.Review) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := review.Validate(); err != nil {
		log.Warn("review validation failed during update",
			slog.String("error", err.Error()),
			slog.String("review_id", review.ID.String()))
		return err
	}

	query := `
		UPDATE reviews
		SET comment = $2, rating = $3, updated_at = $4
		WHERE id = $1
	`
	result, err := s.db.ExecContext(ctx, query, review.ID, review.Comment, review.Rating, review.UpdatedAt)
	if err != nil {
		log.Error("failed to update review",
			slog.String("error", err.Error()),
			slog.String("review_id", review.ID.String()))
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrReviewNotFound
	}

	log.Info("review updated successfully", slog.String("review_id", review.ID.String()))
	return nil
}

// Delete implements store.ReviewStore.Delete
// Returns store.ErrReviewNotFound if the review does not exist.
func (s *PostgresReviewStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete review",
			slog.String("error", err.Error()),
			slog.String("review_id", id.String()))
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrReviewNotFound
	}

	log.Info("review deleted successfully", slog.String("review_id", id.String()))
	return nil
}

func scanReview(row rowScanner) (*domain.Review, error) {
	var review domain.Review
	err := row.Scan(
		&review.ID,
		&review.Comment,
		&review.Rating,
		&review.PlaceID,
		&review.UserID,
		&review.CreatedAt,
		&review.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &review, nil
}
