package domain

import (
	"database/sql/driver"
	"errors"
	"fmt"
)

// Point-specific validation errors
var (
	// ErrPointMissingLatitude is returned when a point payload has no latitude.
	ErrPointMissingLatitude = errors.New("point latitude is required")

	// ErrPointMissingLongitude is returned when a point payload has no longitude.
	ErrPointMissingLongitude = errors.New("point longitude is required")

	// ErrPointNotNumeric is returned when a point coordinate is not a number
	// or a numeric string.
	ErrPointNotNumeric = errors.New("point coordinates must be numeric")
)

// Point is an immutable latitude/longitude pair.
//
// On the wire it is serialized as {"latitude": ..., "longitude": ...}.
// In the database it maps to the native Postgres POINT column type, which
// stores the longitude first: "(lon,lat)".
type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NewPoint creates a Point from explicit coordinates.
func NewPoint(latitude, longitude float64) Point {
	return Point{Latitude: latitude, Longitude: longitude}
}

// PointFromMap builds a Point from a decoded free-form JSON object.
// Both keys must be present; values may be JSON numbers or numeric strings,
// matching what clients of the original API send.
func PointFromMap(data map[string]any) (Point, error) {
	rawLat, ok := data["latitude"]
	if !ok {
		return Point{}, ErrPointMissingLatitude
	}
	rawLon, ok := data["longitude"]
	if !ok {
		return Point{}, ErrPointMissingLongitude
	}

	lat, err := toFloat(rawLat)
	if err != nil {
		return Point{}, fmt.Errorf("%w: latitude %v", ErrPointNotNumeric, rawLat)
	}
	lon, err := toFloat(rawLon)
	if err != nil {
		return Point{}, fmt.Errorf("%w: longitude %v", ErrPointNotNumeric, rawLon)
	}

	return Point{Latitude: lat, Longitude: lon}, nil
}

// toFloat coerces JSON numbers and numeric strings to float64.
func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case string:
		var f float64
		if _, err := fmt.Sscanf(n, "%f", &f); err != nil {
			return 0, err
		}
		return f, nil
	default:
		return 0, fmt.Errorf("unsupported type %T", v)
	}
}

// Value implements driver.Valuer, rendering the point in the Postgres
// POINT text format. Longitude comes first, mirroring the storage layout
// used by the migrations.
func (p Point) Value() (driver.Value, error) {
	return fmt.Sprintf("(%F,%F)", p.Longitude, p.Latitude), nil
}

// Scan implements sql.Scanner for the Postgres POINT text format.
// A NULL column leaves the point at its zero value.
func (p *Point) Scan(src any) error {
	if src == nil {
		*p = Point{}
		return nil
	}

	var raw string
	switch s := src.(type) {
	case string:
		raw = s
	case []byte:
		raw = string(s)
	default:
		return fmt.Errorf("cannot scan %T into Point", src)
	}

	var lon, lat float64
	if _, err := fmt.Sscanf(raw, "(%f,%f)", &lon, &lat); err != nil {
		return fmt.Errorf("malformed point value %q: %w", raw, err)
	}

	p.Longitude = lon
	p.Latitude = lat
	return nil
}
