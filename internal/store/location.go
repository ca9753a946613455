package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/mkarlsen/locations-api/internal/domain"
)

// LocationStore defines the interface for location data persistence.
type LocationStore interface {
	// GetByID retrieves a location by its unique ID, with its country
	// eagerly resolved. When includeDeleted is false, soft-deleted rows
	// are treated as missing.
	// Returns ErrLocationNotFound if no row matches.
	GetByID(ctx context.Context, id uuid.UUID, includeDeleted bool) (*domain.Location, error)

	// IDExists reports whether a row with the given ID exists. It wraps
	// GetByID, converting not-found into false; other errors propagate.
	IDExists(ctx context.Context, id uuid.UUID, includeDeleted bool) (bool, error)

	// IsNameUnique reports whether no row, deleted or not, carries the
	// given name. The DB-level unique constraint spans soft-deleted rows,
	// so this check must too.
	IsNameUnique(ctx context.Context, name string) (bool, error)

	// Save persists the location. If a row with the same ID already
	// exists (including soft-deleted rows), UpdatedAt is stamped before
	// the update; otherwise the row is inserted as new.
	// Failures are wrapped in ErrSaveFailed.
	Save(ctx context.Context, location *domain.Location) (*domain.Location, error)

	// Delete removes the location. hard=true removes the row; hard=false
	// stamps DeletedAt and persists. Failures are wrapped in
	// ErrDeleteFailed.
	Delete(ctx context.Context, location *domain.Location, hard bool) error

	// GetList applies the criteria and returns matching locations with
	// their countries eagerly resolved. A query that fails to execute
	// yields an empty slice, not an error; list endpoints must stay
	// always-available.
	GetList(ctx context.Context, criteria *Criteria) ([]*domain.Location, error)

	// WithTx returns a LocationStore bound to the given transaction-like
	// database handle, for use with RunInTransaction.
	WithTx(db DBTX) LocationStore
}
