package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/mkarlsen/locations-api/internal/domain"
	"github.com/mkarlsen/locations-api/internal/platform/logger"
	"github.com/mkarlsen/locations-api/internal/store"
)

// locationSelect is the shared projection for all location reads. The
// country is always joined in; the API never serves a location without its
// country resolved.
const locationSelect = `
	SELECT l.id, l.name, l.point, l.metadata, l.street, l.number,
	       l.zipcode, l.city, l.state, c.iso3, c.name,
	       l.created_at, l.updated_at, l.deleted_at
	FROM locations l
	JOIN countries c ON l.country = c.iso3
`

// PostgresLocationStore implements the store.LocationStore interface
// using a PostgreSQL database as the storage backend.
type PostgresLocationStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresLocationStore creates a new PostgreSQL implementation of the
// LocationStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresLocationStore(db store.DBTX, logger *slog.Logger) *PostgresLocationStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresLocationStore{
		db:     db,
		logger: logger.With(slog.String("component", "location_store")),
	}
}

// Ensure PostgresLocationStore implements store.LocationStore interface
var _ store.LocationStore = (*PostgresLocationStore)(nil)

// WithTx returns a LocationStore bound to the given database handle.
func (s *PostgresLocationStore) WithTx(db store.DBTX) store.LocationStore {
	return &PostgresLocationStore{
		db:     db,
		logger: s.logger,
	}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanLocation reads one joined location row.
func scanLocation(row rowScanner) (*domain.Location, error) {
	var loc domain.Location
	var metaRaw []byte

	err := row.Scan(
		&loc.ID,
		&loc.Name,
		&loc.Point,
		&metaRaw,
		&loc.Street,
		&loc.Number,
		&loc.Zipcode,
		&loc.City,
		&loc.State,
		&loc.Country.ISO3,
		&loc.Country.Name,
		&loc.CreatedAt,
		&loc.UpdatedAt,
		&loc.DeletedAt,
	)
	if err != nil {
		return nil, err
	}

	loc.Metadata = map[string]any{}
	if len(metaRaw) > 0 {
		if err := json.Unmarshal(metaRaw, &loc.Metadata); err != nil {
			return nil, fmt.Errorf("malformed metadata for location %s: %w", loc.ID, err)
		}
	}

	return &loc, nil
}

// GetByID implements store.LocationStore.GetByID.
// Returns store.ErrLocationNotFound when no row matches, or when the
// matching row is soft-deleted and includeDeleted is false.
func (s *PostgresLocationStore) GetByID(
	ctx context.Context,
	id uuid.UUID,
	includeDeleted bool,
) (*domain.Location, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := locationSelect + " WHERE l.id = $1"
	if !includeDeleted {
		query += " AND l.deleted_at IS NULL"
	}

	loc, err := scanLocation(s.db.QueryRowContext(ctx, query, id.String()))
	if err != nil {
		if IsNotFoundError(MapError(err)) {
			log.Debug("location not found", slog.String("location_id", id.String()),
				slog.Bool("include_deleted", includeDeleted))
			return nil, store.ErrLocationNotFound
		}
		log.Error("failed to get location by ID",
			slog.String("error", err.Error()),
			slog.String("location_id", id.String()))
		return nil, MapError(err)
	}

	return loc, nil
}

// IDExists implements store.LocationStore.IDExists.
func (s *PostgresLocationStore) IDExists(
	ctx context.Context,
	id uuid.UUID,
	includeDeleted bool,
) (bool, error) {
	_, err := s.GetByID(ctx, id, includeDeleted)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// IsNameUnique implements store.LocationStore.IsNameUnique.
// The check spans soft-deleted rows: the unique constraint does too.
func (s *PostgresLocationStore) IsNameUnique(ctx context.Context, name string) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var count int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM locations WHERE name = $1", name,
	).Scan(&count)
	if err != nil {
		log.Error("failed to check name uniqueness",
			slog.String("error", err.Error()),
			slog.String("name", name))
		return false, MapError(err)
	}

	return count == 0, nil
}

// Save implements store.LocationStore.Save.
// If the ID already exists (including soft-deleted rows), UpdatedAt is
// stamped before the update; otherwise the row is inserted as new.
// Failures are wrapped in store.ErrSaveFailed.
func (s *PostgresLocationStore) Save(
	ctx context.Context,
	location *domain.Location,
) (*domain.Location, error) {
	// When holding a raw connection, run the existence check and the write
	// in one transaction. A store already bound to a transaction writes
	// directly.
	if db, ok := s.db.(*sql.DB); ok {
		var saved *domain.Location
		err := store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
			var txErr error
			saved, txErr = s.WithTx(tx).Save(ctx, location)
			return txErr
		})
		return saved, err
	}

	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := location.Validate(); err != nil {
		log.Warn("location validation failed during save",
			slog.String("error", err.Error()),
			slog.String("location_id", location.ID.String()))
		return nil, fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	exists, err := s.IDExists(ctx, location.ID, true)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", store.ErrSaveFailed, err)
	}

	metaRaw, err := json.Marshal(location.Metadata)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", store.ErrSaveFailed, err)
	}

	if exists {
		location.TouchUpdated()
		err = s.update(ctx, location, metaRaw)
	} else {
		err = s.insert(ctx, location, metaRaw)
	}
	if err != nil {
		log.Error("failed to save location",
			slog.String("error", err.Error()),
			slog.String("location_id", location.ID.String()),
			slog.Bool("update", exists))
		return nil, fmt.Errorf("%w: %w", store.ErrSaveFailed, MapError(err))
	}

	log.Info("location saved",
		slog.String("location_id", location.ID.String()),
		slog.Bool("update", exists))
	return location, nil
}

func (s *PostgresLocationStore) insert(
	ctx context.Context,
	location *domain.Location,
	metaRaw []byte,
) error {
	query := `
		INSERT INTO locations
			(id, name, point, metadata, street, number, zipcode, city,
			 state, country, created_at, updated_at, deleted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err := s.db.ExecContext(ctx, query,
		location.ID.String(),
		location.Name,
		location.Point,
		metaRaw,
		location.Street,
		location.Number,
		location.Zipcode,
		location.City,
		location.State,
		location.Country.ISO3,
		location.CreatedAt,
		location.UpdatedAt,
		location.DeletedAt,
	)
	return err
}

func (s *PostgresLocationStore) update(
	ctx context.Context,
	location *domain.Location,
	metaRaw []byte,
) error {
	query := `
		UPDATE locations
		SET name = $2, point = $3, metadata = $4, street = $5, number = $6,
		    zipcode = $7, city = $8, state = $9, country = $10,
		    updated_at = $11, deleted_at = $12
		WHERE id = $1
	`
	result, err := s.db.ExecContext(ctx, query,
		location.ID.String(),
		location.Name,
		location.Point,
		metaRaw,
		location.Street,
		location.Number,
		location.Zipcode,
		location.City,
		location.State,
		location.Country.ISO3,
		location.UpdatedAt,
		location.DeletedAt,
	)
	if err != nil {
		return err
	}
	return CheckRowsAffected(result, "location")
}

// Delete implements store.LocationStore.Delete.
// hard=true removes the row; hard=false stamps DeletedAt and persists.
// Failures are wrapped in store.ErrDeleteFailed.
func (s *PostgresLocationStore) Delete(
	ctx context.Context,
	location *domain.Location,
	hard bool,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if hard {
		result, err := s.db.ExecContext(ctx,
			"DELETE FROM locations WHERE id = $1", location.ID.String())
		if err == nil {
			err = CheckRowsAffected(result, "location")
		}
		if err != nil {
			log.Error("failed to hard-delete location",
				slog.String("error", err.Error()),
				slog.String("location_id", location.ID.String()))
			return fmt.Errorf("%w: %w", store.ErrDeleteFailed, MapError(err))
		}
		log.Info("location hard-deleted", slog.String("location_id", location.ID.String()))
		return nil
	}

	location.TouchDeleted()
	result, err := s.db.ExecContext(ctx,
		"UPDATE locations SET deleted_at = $2 WHERE id = $1",
		location.ID.String(), location.DeletedAt)
	if err == nil {
		err = CheckRowsAffected(result, "location")
	}
	if err != nil {
		log.Error("failed to soft-delete location",
			slog.String("error", err.Error()),
			slog.String("location_id", location.ID.String()))
		return fmt.Errorf("%w: %w", store.ErrDeleteFailed, MapError(err))
	}

	log.Info("location soft-deleted", slog.String("location_id", location.ID.String()))
	return nil
}

// GetList implements store.LocationStore.GetList.
// A query that fails to render or execute yields an empty slice, not an
// error: list endpoints stay always-available and degrade silently.
func (s *PostgresLocationStore) GetList(
	ctx context.Context,
	criteria *store.Criteria,
) ([]*domain.Location, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	locations := []*domain.Location{}

	where, args, err := renderCriteria(criteria, locationColumns)
	if err != nil {
		log.Warn("failed to render list criteria, returning empty list",
			slog.String("error", err.Error()))
		return locations, nil
	}
	pagination, args := renderPagination(criteria, args)

	rows, err := s.db.QueryContext(ctx, locationSelect+where+pagination, args...)
	if err != nil {
		log.Warn("location list query failed, returning empty list",
			slog.String("error", err.Error()))
		return locations, nil
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	for rows.Next() {
		loc, err := scanLocation(rows)
		if err != nil {
			log.Warn("failed to scan location row, returning empty list",
				slog.String("error", err.Error()))
			return []*domain.Location{}, nil
		}
		locations = append(locations, loc)
	}
	if err := rows.Err(); err != nil {
		log.Warn("location list iteration failed, returning empty list",
			slog.String("error", err.Error()))
		return []*domain.Location{}, nil
	}

	return locations, nil
}
