package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointFromMap(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    map[string]any
		expected Point
		wantErr  error
	}{
		{
			name:     "json numbers",
			input:    map[string]any{"latitude": 48.8566, "longitude": 2.3522},
			expected: Point{Latitude: 48.8566, Longitude: 2.3522},
		},
		{
			name:     "numeric strings",
			input:    map[string]any{"latitude": "48.8566", "longitude": "2.3522"},
			expected: Point{Latitude: 48.8566, Longitude: 2.3522},
		},
		{
			name:     "negative coordinates",
			input:    map[string]any{"latitude": -33.8688, "longitude": -70.6693},
			expected: Point{Latitude: -33.8688, Longitude: -70.6693},
		},
		{
			name:    "missing latitude",
			input:   map[string]any{"longitude": 2.3522},
			wantErr: ErrPointMissingLatitude,
		},
		{
			name:    "missing longitude",
			input:   map[string]any{"latitude": 48.8566},
			wantErr: ErrPointMissingLongitude,
		},
		{
			name:    "non-numeric latitude",
			input:   map[string]any{"latitude": "north", "longitude": 2.3522},
			wantErr: ErrPointNotNumeric,
		},
		{
			name:    "non-numeric longitude type",
			input:   map[string]any{"latitude": 48.8566, "longitude": []any{1}},
			wantErr: ErrPointNotNumeric,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			point, err := PointFromMap(tc.input)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, point)
		})
	}
}

func TestPointValue(t *testing.T) {
	t.Parallel()

	value, err := NewPoint(48.8566, 2.3522).Value()
	require.NoError(t, err)

	// Longitude first, matching the Postgres POINT layout.
	assert.Equal(t, "(2.352200,48.856600)", value)
}

func TestPointScan(t *testing.T) {
	t.Parallel()

	t.Run("round trip through text format", func(t *testing.T) {
		t.Parallel()

		original := NewPoint(-33.8688, 151.2093)
		value, err := original.Value()
		require.NoError(t, err)

		var scanned Point
		require.NoError(t, scanned.Scan(value))
		assert.InDelta(t, original.Latitude, scanned.Latitude, 1e-6)
		assert.InDelta(t, original.Longitude, scanned.Longitude, 1e-6)
	})

	t.Run("scans byte slices", func(t *testing.T) {
		t.Parallel()

		var p Point
		require.NoError(t, p.Scan([]byte("(2.3522,48.8566)")))
		assert.InDelta(t, 48.8566, p.Latitude, 1e-6)
		assert.InDelta(t, 2.3522, p.Longitude, 1e-6)
	})

	t.Run("NULL resets to zero value", func(t *testing.T) {
		t.Parallel()

		p := NewPoint(1, 2)
		require.NoError(t, p.Scan(nil))
		assert.Equal(t, Point{}, p)
	})

	t.Run("malformed text is an error", func(t *testing.T) {
		t.Parallel()

		var p Point
		assert.Error(t, p.Scan("not-a-point"))
	})

	t.Run("unsupported source type is an error", func(t *testing.T) {
		t.Parallel()

		var p Point
		assert.Error(t, p.Scan(42))
	})
}
