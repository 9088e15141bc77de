package spatial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimplifyPathKeepsEndpoints(t *testing.T) {
	points := []Point{
		{Lat: 45.50, Lon: -122.68},
		{Lat: 45.51, Lon: -122.67},
		{Lat: 45.52, Lon: -122.69},
		{Lat: 45.53, Lon: -122.66},
		{Lat: 45.54, Lon: -122.68},
	}

	simplified := SimplifyPath(points, 0.0005)
	require.GreaterOrEqual(t, len(simplified), 2)
	assert.Equal(t, points[0], simplified[0])
	assert.Equal(t, points[len(points)-1], simplified[len(simplified)-1])
}

func TestSimplifyPathShortInputUnchanged(t *testing.T) {
	assert.Empty(t, SimplifyPath(nil, 0.0001))

	one := []Point{{Lat: 1, Lon: 2}}
	assert.Equal(t, one, SimplifyPath(one, 0.0001))

	two := []Point{{Lat: 1, Lon: 2}, {Lat: 3, Lon: 4}}
	assert.Equal(t, two, SimplifyPath(two, 0.0001))
}

func TestSimplifyPathCollapsesStraightLine(t *testing.T) {
	// Points on a straight line with negligible offsets collapse to the
	// two endpoints.
	points := make([]Point, 0, 11)
	for i := 0; i <= 10; i++ {
		points = append(points, Point{
			Lat: 45.0 + float64(i)*0.001,
			Lon: -122.0 + float64(i)*0.001,
		})
	}

	simplified := SimplifyPath(points, 0.0001)
	assert.Equal(t, []Point{points[0], points[10]}, simplified)
}

func TestSimplifyPathKeepsSalientDetour(t *testing.T) {
	points := []Point{
		{Lat: 45.0, Lon: -122.0},
		{Lat: 45.005, Lon: -122.0},
		{Lat: 45.005, Lon: -121.99}, // detour well beyond tolerance
		{Lat: 45.01, Lon: -122.0},
		{Lat: 45.02, Lon: -122.0},
	}

	simplified := SimplifyPath(points, 0.0005)
	assert.Contains(t, simplified, Point{Lat: 45.005, Lon: -121.99})
}

func TestSimplifyPathCoincidentPoints(t *testing.T) {
	// Degenerate input: all points identical. Must not divide by zero
	// and must keep the endpoints.
	points := []Point{
		{Lat: 45.0, Lon: -122.0},
		{Lat: 45.0, Lon: -122.0},
		{Lat: 45.0, Lon: -122.0},
		{Lat: 45.0, Lon: -122.0},
	}

	simplified := SimplifyPath(points, 0.0001)
	assert.Equal(t, []Point{points[0], points[3]}, simplified)
}
