package domain

import (
	"errors"
	"strings"
)

// Country-specific validation errors
var (
	// ErrCountryISO3Invalid is returned when a country code is not a
	// three-letter string.
	ErrCountryISO3Invalid = errors.New("country iso3 must be a three-letter code")

	// ErrCountryNameEmpty is returned when a country name is empty.
	ErrCountryNameEmpty = errors.New("country name cannot be empty")
)

// Country is a reference/lookup row keyed by its ISO 3166-1 alpha-3 code.
// Countries are not created through the API; they are seeded by migrations.
type Country struct {
	ISO3 string `json:"iso3"`
	Name string `json:"name"`
}

// Validate checks if the Country has valid data.
func (c *Country) Validate() error {
	if len(c.ISO3) != 3 {
		return ErrCountryISO3Invalid
	}
	if strings.TrimSpace(c.Name) == "" {
		return ErrCountryNameEmpty
	}
	return nil
}
