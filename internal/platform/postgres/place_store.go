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

// PostgresPlaceStore implements the store.PlaceStore interface
// using a PostgreSQL database as the storage backend.
type PostgresPlaceStore struct {
	db     store.DBTX
	sqlDB  *sql.DB // nil when running inside a caller-managed transaction
	logger *slog.Logger
}

// NewPostgresPlaceStore creates a new PostgreSQL implementation of the
// PlaceStore interface. If logger is nil, a default logger will be used.
func NewPostgresPlaceStore(db *sql.DB, logger *slog.Logger) *PostgresPlaceStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresPlaceStore{
		db:     db,
		sqlDB:  db,
		logger: logger.With(slog.String("component", "place_store")),
	}
}

// Ensure PostgresPlaceStore implements store.PlaceStore interface
var _ store.PlaceStore = (*PostgresPlaceStore)(nil)

// WithTx implements store.PlaceStore.WithTx
func (s *PostgresPlaceStore) WithTx(tx *sql.Tx) store.PlaceStore {
	return &PostgresPlaceStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.PlaceStore.Create
// It saves the place row and its amenity links in one transaction.
// Returns store.ErrInvalidEntity if the owner or an amenity does not exist.
func (s *PostgresPlaceStore) Create(ctx context.Context, place *domain.Place) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := place.Validate(); err != nil {
		log.Warn("place validation failed during create",
			slog.String("error", err.Error()),
			slog.String("place_id", place.ID.String()))
		return err
	}

	create := func(ctx context.Context, db store.DBTX) error {
		query := `
			INSERT INTO places (id, owner_id, title, description, price, latitude, longitude, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`
		_, err := db.ExecContext(
			ctx,
			query,
			place.ID,
			place.OwnerID,
			place.Title,
			place.Description,
			place.Price,
			place.Latitude,
			place.Longitude,
			place.CreatedAt,
			place.UpdatedAt,
		)
		if err != nil {
			if isForeignKeyViolation(err) {
				return fmt.Errorf("%w: owner with ID %s not found",
					store.ErrInvalidEntity, place.OwnerID)
			}
			return err
		}

		return insertAmenityLinks(ctx, db, place.ID, place.AmenityIDs)
	}

	var err error
	if s.sqlDB != nil {
		err = store.RunInTransaction(ctx, s.sqlDB, func(ctx context.Context, tx *sql.Tx) error {
			return create(ctx, tx)
		})
	} else {
		err = create(ctx, s.db)
	}

	if err != nil {
		log.Error("failed to create place",
			slog.String("error", err.Error()),
			slog.String("place_id", place.ID.String()),
			slog.String("owner_id", place.OwnerID.String()))
		return err
	}

	log.Info("place created successfully",
		slog.String("place_id", place.ID.String()),
		slog.String("owner_id", place.OwnerID.String()))
	return nil
}

// GetByID implements store.PlaceStore.GetByID
// Returns store.ErrPlaceNotFound if the place does not exist.
func (s *PostgresPlaceStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Place, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, owner_id, title, description, price, latitude, longitude, created_at, updated_at
		FROM places
		WHERE id = $1
	`

	place, err := scanPlace(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("place not found", slog.String("place_id", id.String()))
			return nil, store.ErrPlaceNotFound
		}
		log.Error("failed to get place by ID",
			slog.String("error", err.Error()),
			slog.String("place_id", id.String()))
		return nil, err
	}

	place.AmenityIDs, err = s.amenityIDs(ctx, id)
	if err != nil {
		return nil, err
	}

	return place, nil
}

// List implements store.PlaceStore.List
func (s *PostgresPlaceStore) List(ctx context.Context) ([]*domain.Place, error) {
	return s.listWhere(ctx, "", nil)
}

// ListByOwner implements store.PlaceStore.ListByOwner
func (s *PostgresPlaceStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Place, error) {
	return s.listWhere(ctx, "WHERE owner_id = $1", []any{ownerID})
}

func (s *PostgresPlaceStore) listWhere(ctx context.Context, where string, args []any) ([]*domain.Place, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := fmt.Sprintf(`
		SELECT id, owner_id, title, description, price, latitude, longitude, created_at, updated_at
		FROM places
		%s
		ORDER BY created_at
	`, where)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list places", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	places := make([]*domain.Place, 0)
	for rows.Next() {
		place, err := scanPlace(rows)
		if err != nil {
			log.Error("failed to scan place row", slog.String("error", err.Error()))
			return nil, err
		}
		places = append(places, place)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, place := range places {
		place.AmenityIDs, err = s.amenityIDs(ctx, place.ID)
		if err != nil {
			return nil, err
		}
	}

	return places, nil
}

// Update implements store.PlaceStore.Update
// The owner_id column is deliberately absent from the statement: ownership
// is immutable after creation. Amenity links are replaced wholesale.
// Returns store.ErrPlaceNotFound if the place does not exist.
func (s *PostgresPlaceStore) Update(ctx context.Context, place *domain.Place) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := place.Validate(); err != nil {
		log.Warn("place validation failed during update",
			slog.String("error", err.Error()),
			slog.String("place_id", place.ID.String()))
		return err
	}

	update := func(ctx context.Context, db store.DBTX) error {
		query := `
			UPDATE places
			SET title = $2, description = $3, price = $4, latitude = $5, longitude = $6, updated_at = $7
			WHERE id = $1
		`
		result, err := db.ExecContext(
			ctx,
			query,
			place.ID,
			place.Title,
			place.Description,
			place.Price,
			place.Latitude,
			place.Longitude,
			place.UpdatedAt,
		)
		if err != nil {
			return err
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return store.ErrPlaceNotFound
		}

		if _, err := db.ExecContext(ctx, `DELETE FROM place_amenities WHERE place_id = $1`, place.ID); err != nil {
			return err
		}
		return insertAmenityLinks(ctx, db, place.ID, place.AmenityIDs)
	}

	var err error
	if s.sqlDB != nil {
		err = store.RunInTransaction(ctx, s.sqlDB, func(ctx context.Context, tx *sql.Tx) error {
			return update(ctx, tx)
		})
	} else {
		err = update(ctx, s.db)
	}

	if err != nil {
		if !store.IsNotFoundError(err) {
			log.Error("failed to update place",
				slog.String("error", err.Error()),
				slog.String("place_id", place.ID.String()))
		}
		return err
	}

	log.Info("place updated successfully", slog.String("place_id", place.ID.String()))
	return nil
}

// Delete implements store.PlaceStore.Delete
// It removes the place, its reviews and its amenity links atomically.
// Returns store.ErrPlaceNotFound if the place does not exist.
func (s *PostgresPlaceStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	del := func(ctx context.Context, db store.DBTX) error {
		for _, stmt := range []string{
			`DELETE FROM reviews WHERE place_id = $1`,
			`DELETE FROM place_amenities WHERE place_id = $1`,
		} {
			if _, err := db.ExecContext(ctx, stmt, id); err != nil {
				return err
			}
		}

		result, err := db.ExecContext(ctx, `DELETE FROM places WHERE id = $1`, id)
		if err != nil {
			return err
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return store.ErrPlaceNotFound
		}
		return nil
	}

	var err error
	if s.sqlDB != nil {
		err = store.RunInTransaction(ctx, s.sqlDB, func(ctx context.Context, tx *sql.Tx) error {
			return del(ctx, tx)
		})
	} else {
		err = del(ctx, s.db)
	}

	if err != nil {
		if !store.IsNotFoundError(err) {
			log.Error("failed to delete place",
				slog.String("error", err.Error()),
				slog.String("place_id", id.String()))
		}
		return err
	}

	log.Info("place deleted successfully", slog.String("place_id", id.String()))
	return nil
}

// amenityIDs loads the amenity links for a place.
func (s *PostgresPlaceStore) amenityIDs(ctx context.Context, placeID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT amenity_id FROM place_amenities WHERE place_id = $1 ORDER BY amenity_id`, placeID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func insertAmenityLinks(ctx context.Context, db store.DBTX, placeID uuid.UUID, amenityIDs []uuid.UUID) error {
	for _, amenityID := range amenityIDs {
		_, err := db.ExecContext(ctx,
			`INSERT INTO place_amenities (place_id, amenity_id) VALUES ($1, $2)`,
			placeID, amenityID)
		if err != nil {
			if isForeignKeyViolation(err) {
				return fmt.Errorf("%w: amenity with ID %s not found",
					store.ErrInvalidEntity, amenityID)
			}
			return err
		}
	}
	return nil
}

func scanPlace(row rowScanner) (*domain.Place, error) {
	var place domain.Place
	err := row.Scan(
		&place.ID,
		&place.OwnerID,
		&place.Title,
		&place.Description,
		&place.Price,
		&place.Latitude,
		&place.Longitude,
		&place.CreatedAt,
		&place.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &place, nil
}
