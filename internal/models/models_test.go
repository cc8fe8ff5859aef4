package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinateValidate(t *testing.T) {
	cases := []struct {
		name  string
		coord Coordinate
		valid bool
	}{
		{"default center", DefaultCenter, true},
		{"poles and antimeridian", Coordinate{Lat: -90, Lng: 180}, true},
		{"latitude too high", Coordinate{Lat: 90.1, Lng: 0}, false},
		{"longitude too low", Coordinate{Lat: 0, Lng: -180.5}, false},
		{"nan latitude", Coordinate{Lat: math.NaN(), Lng: 0}, false},
		{"infinite longitude", Coordinate{Lat: 0, Lng: math.Inf(1)}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.coord.Validate()
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidCoordinate)
			}
		})
	}
}

func TestCoordinateString(t *testing.T) {
	assert.Equal(t, "36.85077, -76.28587", Coordinate{Lat: 36.850769, Lng: -76.285873}.String())
}

func TestValidateRadius(t *testing.T) {
	assert.NoError(t, ValidateRadius(7.5))
	for _, miles := range []float64{0, -5, math.NaN(), math.Inf(1)} {
		assert.ErrorIs(t, ValidateRadius(miles), ErrInvalidRadius, "radius %v", miles)
	}
}

func TestIsRadiusOption(t *testing.T) {
	for _, miles := range RadiusOptions {
		assert.True(t, IsRadiusOption(miles))
	}
	assert.False(t, IsRadiusOption(7))
	assert.InDelta(t, 16093.4, MilesToMeters(10), 1e-9)
}

func TestParseBoundaryType(t *testing.T) {
	bt, err := ParseBoundaryType(" County ")
	require.NoError(t, err)
	assert.Equal(t, BoundaryCounty, bt)

	_, err = ParseBoundaryType("state")
	assert.ErrorIs(t, err, ErrInvalidBoundaryType)
}

func TestNewBoundarySelection(t *testing.T) {
	t.Run("keeps order and duplicates", func(t *testing.T) {
		sel := NewBoundarySelection(BoundaryZcta, []string{"23451", "23451", "23452"})

		assert.Equal(t, "zcta", sel.Type)
		assert.Equal(t, []string{"23451", "23451", "23452"}, sel.IDs)
		assert.Equal(t, 3, sel.Count)
	})

	t.Run("drops blank ids", func(t *testing.T) {
		sel := NewBoundarySelection(BoundaryCounty, []string{"", "51810", "  ", "51710"})

		assert.Equal(t, []string{"51810", "51710"}, sel.IDs)
		assert.Equal(t, 2, sel.Count)
	})

	t.Run("none falls back to radius", func(t *testing.T) {
		sel := NewBoundarySelection(BoundaryNone, []string{"23451"})

		assert.True(t, sel.IsRadius())
		assert.Empty(t, sel.IDs)
		assert.NotNil(t, sel.IDs)
		assert.Zero(t, sel.Count)
	})

	t.Run("empty result keeps the type", func(t *testing.T) {
		sel := NewBoundarySelection(BoundaryTract, nil)

		assert.Equal(t, "tract", sel.Type)
		assert.Zero(t, sel.Count)
	})
}

func TestBoundarySelectionClone(t *testing.T) {
	sel := NewBoundarySelection(BoundaryZcta, []string{"23451"})
	clone := sel.Clone()
	clone.IDs[0] = "99999"

	assert.Equal(t, "23451", sel.IDs[0])
}
