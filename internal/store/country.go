package store

import (
	"context"

	"github.com/mkarlsen/locations-api/internal/domain"
)

// CountryStore defines the interface for country lookup data.
// Countries are reference rows seeded by migrations; there is no create or
// delete operation at this layer.
type CountryStore interface {
	// GetByISO3 retrieves a country by its ISO 3166-1 alpha-3 code.
	// Returns ErrCountryNotFound when zero rows match.
	GetByISO3(ctx context.Context, iso3 string) (*domain.Country, error)

	// GetByName retrieves a country by its exact name.
	// Returns ErrCountryNotFound when zero rows match.
	GetByName(ctx context.Context, name string) (*domain.Country, error)

	// GetList applies the criteria and returns matching countries.
	// A query that fails to execute yields an empty slice, not an error.
	GetList(ctx context.Context, criteria *Criteria) ([]*domain.Country, error)
}
