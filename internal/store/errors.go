package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	// This is a generic version of the entity-specific not found errors
	// (e.g., ErrLocationNotFound, ErrCountryNotFound).
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., a location with the same name).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored. Check the wrapped error for specific validation details.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrSaveFailed is returned when a save operation fails at the
	// persistence layer. The underlying cause is wrapped.
	ErrSaveFailed = errors.New("save failed")

	// ErrDeleteFailed is returned when a delete operation fails at the
	// persistence layer. The underlying cause is wrapped.
	ErrDeleteFailed = errors.New("delete failed")

	// ErrTransactionFailed is returned when a database transaction fails
	// to commit or when an operation within a transaction fails.
	ErrTransactionFailed = errors.New("transaction failed")

	// Entity-specific "not found" errors

	// ErrLocationNotFound indicates that the requested location does not exist.
	ErrLocationNotFound = fmt.Errorf("%w: location", ErrNotFound)

	// ErrCountryNotFound indicates that the requested country does not exist.
	ErrCountryNotFound = fmt.Errorf("%w: country", ErrNotFound)

	// Entity-specific "duplicate" errors

	// ErrLocationNameExists indicates that a location with the given name
	// already exists, deleted or not.
	ErrLocationNameExists = fmt.Errorf("%w: name", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
