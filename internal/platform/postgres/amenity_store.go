package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/stayhub/stayhub-api/internal/domain"
	"github.com/stayhub/stayhub-api/internal/platform/logger"
	"github.com/stayhub/stayhub-api/internal/store"
)

// PostgresAmenityStore implements the store.AmenityStore interface
// using a PostgreSQL database as the storage backend.
type PostgresAmenityStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAmenityStore creates a new PostgreSQL implementation of the
// AmenityStore interface. If logger is nil, a default logger will be used.
func NewPostgresAmenityStore(db store.DBTX, logger *slog.Logger) *PostgresAmenityStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresAmenityStore{
		db:     db,
		logger: logger.With(slog.String("component", "amenity_store")),
	}
}

// Ensure PostgresAmenityStore implements store.AmenityStore interface
var _ store.AmenityStore = (*PostgresAmenityStore)(nil)

// WithTx implements store.AmenityStore.WithTx
func (s *PostgresAmenityStore) WithTx(tx *sql.Tx) store.AmenityStore {
	return &PostgresAmenityStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.AmenityStore.Create
func (s *PostgresAmenityStore) Create(ctx context.Context, amenity *domain.Amenity) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := amenity.Validate(); err != nil {
		log.Warn("amenity validation failed during create",
			slog.String("error", err.Error()),
			slog.String("amenity_id", amenity.ID.String()))
		return err
	}

	query := `
		INSERT INTO amenities (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := s.db.ExecContext(ctx, query, amenity.ID, amenity.Name, amenity.CreatedAt, amenity.UpdatedAt)
	if err != nil {
		log.Error("failed to create amenity",
			slog.String("error", err.Error()),
			slog.String("amenity_id", amenity.ID.String()))
		return err
	}

	log.Info("amenity created successfully", slog.String("amenity_id", amenity.ID.String()))
	return nil
}

// GetByID implements store.AmenityStore.GetByID
// Returns store.ErrAmenityNotFound if the amenity does not exist.
func (s *PostgresAmenityStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Amenity, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, created_at, updated_at
		FROM amenities
		WHERE id = $1
	`

	var amenity domain.Amenity
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&amenity.ID,
		&amenity.Name,
		&amenity.CreatedAt,
		&amenity.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("amenity not found", slog.String("amenity_id", id.String()))
			return nil, store.ErrAmenityNotFound
		}
		log.Error("failed to get amenity by ID",
			slog.String("error", err.Error()),
			slog.String("amenity_id", id.String()))
		return nil, err
	}

	return &amenity, nil
}

// List implements store.AmenityStore.List
func (s *PostgresAmenityStore) List(ctx context.Context) ([]*domain.Amenity, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, created_at, updated_at
		FROM amenities
		ORDER BY name
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list amenities", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	amenities := make([]*domain.Amenity, 0)
	for rows.Next() {
		var amenity domain.Amenity
		if err := rows.Scan(&amenity.ID, &amenity.Name, &amenity.CreatedAt, &amenity.UpdatedAt); err != nil {
			log.Error("failed to scan amenity row", slog.String("error", err.Error()))
			return nil, err
		}
		amenities = append(amenities, &amenity)
	}

	return amenities, rows.Err()
}

// Update implements store.AmenityStore.Update
// Returns store.ErrAmenityNotFound if the amenity does not exist.
func (s *PostgresAmenityStore) Update(ctx context.Context, amenity *domain.Amenity) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := amenity.Validate(); err != nil {
		log.Warn("amenity validation failed during update",
			slog.String("error", err.Error()),
			slog.String("amenity_id", amenity.ID.String()))
		return err
	}

	query := `
		UPDATE amenities
		SET name = $2, updated_at = $3
		WHERE id = $1
	`
	result, err := s.db.ExecContext(ctx, query, amenity.ID, amenity.Name, amenity.UpdatedAt)
	if err != nil {
		log.Error("failed to update amenity",
			slog.String("error", err.Error()),
			slog.String("amenity_id", amenity.ID.String()))
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrAmenityNotFound
	}

	log.Info("amenity updated successfully", slog.String("amenity_id", amenity.ID.String()))
	return nil
}

// Delete implements store.AmenityStore.Delete
// Place links referencing the amenity are removed with it.
// Returns store.ErrAmenityNotFound if the amenity does not exist.
func (s *PostgresAmenityStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.db.ExecContext(ctx, `DELETE FROM place_amenities WHERE amenity_id = $1`, id); err != nil {
		log.Error("failed to delete amenity links",
			slog.String("error", err.Error()),
			slog.String("amenity_id", id.String()))
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM amenities WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete amenity",
			slog.String("error", err.Error()),
			slog.String("amenity_id", id.String()))
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrAmenityNotFound
	}

	log.Info("amenity deleted successfully", slog.String("amenity_id", id.String()))
	return nil
}
