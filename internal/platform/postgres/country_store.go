package postgres

import (
	"context"
	"log/slog"

	"github.com/mkarlsen/locations-api/internal/domain"
	"github.com/mkarlsen/locations-api/internal/platform/logger"
	"github.com/mkarlsen/locations-api/internal/store"
)

const countrySelect = "SELECT c.iso3, c.name FROM countries c"

// PostgresCountryStore implements the store.CountryStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCountryStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCountryStore creates a new PostgreSQL implementation of the
// CountryStore interface. If logger is nil, a default logger will be used.
func NewPostgresCountryStore(db store.DBTX, logger *slog.Logger) *PostgresCountryStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCountryStore{
		db:     db,
		logger: logger.With(slog.String("component", "country_store")),
	}
}

// Ensure PostgresCountryStore implements store.CountryStore interface
var _ store.CountryStore = (*PostgresCountryStore)(nil)

// getByField fetches a single country by an exact match on one column.
func (s *PostgresCountryStore) getByField(
	ctx context.Context,
	column, value string,
) (*domain.Country, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var country domain.Country
	err := s.db.QueryRowContext(ctx,
		countrySelect+" WHERE c."+column+" = $1", value,
	).Scan(&country.ISO3, &country.Name)
	if err != nil {
		if IsNotFoundError(MapError(err)) {
			log.Debug("country not found",
				slog.String("column", column), slog.String("value", value))
			return nil, store.ErrCountryNotFound
		}
		log.Error("failed to get country",
			slog.String("error", err.Error()),
			slog.String("column", column), slog.String("value", value))
		return nil, MapError(err)
	}

	return &country, nil
}

// GetByISO3 implements store.CountryStore.GetByISO3.
// Returns store.ErrCountryNotFound when zero rows match.
func (s *PostgresCountryStore) GetByISO3(ctx context.Context, iso3 string) (*domain.Country, error) {
	return s.getByField(ctx, "iso3", iso3)
}

// GetByName implements store.CountryStore.GetByName.
// Returns store.ErrCountryNotFound when zero rows match.
func (s *PostgresCountryStore) GetByName(ctx context.Context, name string) (*domain.Country, error) {
	return s.getByField(ctx, "name", name)
}

// GetList implements store.CountryStore.GetList.
// Mirrors the location list's swallow-on-query-error behavior.
func (s *PostgresCountryStore) GetList(
	ctx context.Context,
	criteria *store.Criteria,
) ([]*domain.Country, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	countries := []*domain.Country{}

	where, args, err := renderCriteria(criteria, countryColumns)
	if err != nil {
		log.Warn("failed to render list criteria, returning empty list",
			slog.String("error", err.Error()))
		return countries, nil
	}
	pagination, args := renderPagination(criteria, args)

	rows, err := s.db.QueryContext(ctx, countrySelect+where+pagination, args...)
	if err != nil {
		log.Warn("country list query failed, returning empty list",
			slog.String("error", err.Error()))
		return countries, nil
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	for rows.Next() {
		var country domain.Country
		if err := rows.Scan(&country.ISO3, &country.Name); err != nil {
			log.Warn("failed to scan country row, returning empty list",
				slog.String("error", err.Error()))
			return []*domain.Country{}, nil
		}
		countries = append(countries, &country)
	}
	if err := rows.Err(); err != nil {
		log.Warn("country list iteration failed, returning empty list",
			slog.String("error", err.Error()))
		return []*domain.Country{}, nil
	}

	return countries, nil
}
