package geo

import (
	"testing"

	"github.com/shenikar/wildfire_dashboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(lon, lat, size float64) models.Geometry {
	return models.Geometry{
		Type: "Polygon",
		Coordinates: [][][]float64{{
			{lon, lat},
			{lon + size, lat},
			{lon + size, lat + size},
			{lon, lat + size},
			{lon, lat},
		}},
	}
}

func TestNewRegion_SquareArea(t *testing.T) {
	region, err := NewRegion(square(0, 0, 0.01))

	require.NoError(t, err)
	assert.InEpsilon(t, 123.6, region.AreaHectares, 0.01)
	assert.True(t, region.ContainsPoint(0.005, 0.005))
	assert.False(t, region.ContainsPoint(1, 1))
}

func TestNewRegion_ClockwiseRing(t *testing.T) {
	g := square(-47.9, -15.8, 0.01)
	ring := g.Coordinates[0]
	for i, j := 0, len(ring)-1; i < j; i, j = i+1, j-1 {
		ring[i], ring[j] = ring[j], ring[i]
	}

	region, err := NewRegion(g)

	require.NoError(t, err)
	assert.Less(t, region.AreaHectares, 200.0)
	assert.True(t, region.ContainsPoint(-15.795, -47.895))
}

func TestNewRegion_Rejects(t *testing.T) {
	cases := []struct {
		name string
		geom models.Geometry
		err  error
	}{
		{"point", models.Geometry{Type: "Point"}, ErrUnsupportedGeometry},
		{"no rings", models.Geometry{Type: "Polygon"}, ErrTooFewVertices},
		{
			"two vertices",
			models.Geometry{Type: "Polygon", Coordinates: [][][]float64{{{0, 0}, {1, 1}, {0, 0}}}},
			ErrTooFewVertices,
		},
		{
			"repeated vertices",
			models.Geometry{Type: "Polygon", Coordinates: [][][]float64{{{0, 0}, {0, 0}, {1, 1}, {1, 1}}}},
			ErrTooFewVertices,
		},
		{
			"bow-tie",
			models.Geometry{Type: "Polygon", Coordinates: [][][]float64{{
				{-47, -10}, {-46, -9}, {-46, -10}, {-47, -9}, {-47, -10},
			}}},
			ErrSelfIntersecting,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewRegion(tc.geom)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestNewRegion_OutOfRange(t *testing.T) {
	g := models.Geometry{Type: "Polygon", Coordinates: [][][]float64{{{0, 0}, {10, 95}, {20, 0}, {0, 0}}}}

	_, err := NewRegion(g)

	assert.ErrorContains(t, err, "out of range")
}
