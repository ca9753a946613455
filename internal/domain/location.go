package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Location-specific validation errors
var (
	// ErrLocationIDEmpty is returned when a location ID is empty or nil.
	ErrLocationIDEmpty = errors.New("location ID cannot be empty")

	// ErrLocationNameLength is returned when a location name is outside
	// the 4-200 character range.
	ErrLocationNameLength = errors.New("location name must be between 4 and 200 characters")

	// ErrLocationStreetLength is returned when the street field is outside
	// the 2-254 character range.
	ErrLocationStreetLength = errors.New("location street must be between 2 and 254 characters")

	// ErrLocationNumberLength is returned when the number field is outside
	// the 1-20 character range.
	ErrLocationNumberLength = errors.New("location number must be between 1 and 20 characters")

	// ErrLocationZipcodeLength is returned when the zipcode field is outside
	// the 1-10 character range.
	ErrLocationZipcodeLength = errors.New("location zipcode must be between 1 and 10 characters")

	// ErrLocationCityLength is returned when the city field is outside
	// the 2-100 character range.
	ErrLocationCityLength = errors.New("location city must be between 2 and 100 characters")

	// ErrLocationStateLength is returned when a non-null state is outside
	// the 2-254 character range.
	ErrLocationStateLength = errors.New("location state must be between 2 and 254 characters")

	// ErrLocationCountryMissing is returned when no country is attached.
	ErrLocationCountryMissing = errors.New("location must reference a country")
)

// Location represents a physical place with an address, a geo point and
// free-form metadata. Rows are soft-deleted by default; DeletedAt is only
// set by the store's delete operation.
type Location struct {
	ID        uuid.UUID      `json:"id"`
	Name      string         `json:"name"`
	Point     Point          `json:"point"`
	Metadata  map[string]any `json:"metadata"`
	Street    string         `json:"street"`
	Number    string         `json:"number"`
	Zipcode   string         `json:"zipcode"`
	City      string         `json:"city"`
	State     *string        `json:"state"`
	Country   Country        `json:"country"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt *time.Time     `json:"updatedAt"`
	DeletedAt *time.Time     `json:"deletedAt"`
}

// NewLocation creates an empty Location with a generated ID and creation
// timestamp. Field values are filled in by the caller before Validate.
func NewLocation() *Location {
	return &Location{
		ID:        uuid.New(),
		Metadata:  map[string]any{},
		CreatedAt: time.Now().UTC(),
	}
}

// Validate checks if the Location has valid data.
// Returns the first field error encountered.
func (l *Location) Validate() error {
	errs := l.ValidationErrors()
	if len(errs) == 0 {
		return nil
	}
	return errs[0]
}

// ValidationErrors checks every field and returns all violations, so callers
// can report the complete set rather than the first failure.
func (l *Location) ValidationErrors() []error {
	var errs []error
	if l.ID == uuid.Nil {
		errs = append(errs, ErrLocationIDEmpty)
	}
	if err := lengthBetween(l.Name, 4, 200, ErrLocationNameLength); err != nil {
		errs = append(errs, err)
	}
	if err := lengthBetween(l.Street, 2, 254, ErrLocationStreetLength); err != nil {
		errs = append(errs, err)
	}
	if err := lengthBetween(l.Number, 1, 20, ErrLocationNumberLength); err != nil {
		errs = append(errs, err)
	}
	if err := lengthBetween(l.Zipcode, 1, 10, ErrLocationZipcodeLength); err != nil {
		errs = append(errs, err)
	}
	if err := lengthBetween(l.City, 2, 100, ErrLocationCityLength); err != nil {
		errs = append(errs, err)
	}
	if l.State != nil {
		if err := lengthBetween(*l.State, 2, 254, ErrLocationStateLength); err != nil {
			errs = append(errs, err)
		}
	}
	if l.Country.ISO3 == "" {
		errs = append(errs, ErrLocationCountryMissing)
	}
	return errs
}

// TouchUpdated stamps the UpdatedAt timestamp. It is called by the store
// when saving a pre-existing row, never on first insert.
func (l *Location) TouchUpdated() {
	now := time.Now().UTC()
	l.UpdatedAt = &now
}

// TouchDeleted stamps the DeletedAt timestamp, marking the row soft-deleted.
func (l *Location) TouchDeleted() {
	now := time.Now().UTC()
	l.DeletedAt = &now
}

// IsDeleted reports whether the location has been soft-deleted.
func (l *Location) IsDeleted() bool {
	return l.DeletedAt != nil
}

func lengthBetween(s string, min, max int, sentinel error) error {
	if len(s) < min || len(s) > max {
		return fmt.Errorf("%w: got %d characters", sentinel, len(s))
	}
	return nil
}
