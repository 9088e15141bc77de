package clustering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strideline/routes-backend-go/internal/models"
)

func TestCalculateRouteSimilarityIdentical(t *testing.T) {
	sig := GenerateRouteSignature(testLoop(45.5054, -122.6733, 0.009, 50))
	require.NotNil(t, sig)

	assert.Equal(t, 1.0, CalculateRouteSimilarity(sig, sig))
}

func TestCalculateRouteSimilaritySymmetric(t *testing.T) {
	a := GenerateRouteSignature(testLoop(45.5054, -122.6733, 0.009, 50))
	b := GenerateRouteSignature(testLoop(45.5054, -122.6733, 0.02, 60))
	require.NotNil(t, a)
	require.NotNil(t, b)

	assert.Equal(t, CalculateRouteSimilarity(a, b), CalculateRouteSimilarity(b, a))
}

func TestCalculateRouteSimilarityDisjointStartAreas(t *testing.T) {
	// Portland vs New York: the 4-character geohash prefixes can never
	// agree, so similarity is exactly zero.
	a := GenerateRouteSignature(testLoop(45.5054, -122.6733, 0.009, 50))
	b := GenerateRouteSignature(testLoop(40.7831, -73.9712, 0.009, 50))
	require.NotNil(t, a)
	require.NotNil(t, b)

	assert.Equal(t, 0.0, CalculateRouteSimilarity(a, b))
}

func TestCalculateRouteSimilarityBounds(t *testing.T) {
	sigs := []*models.RouteSignature{
		GenerateRouteSignature(testLoop(45.5054, -122.6733, 0.009, 50)),
		GenerateRouteSignature(testLoop(45.5054, -122.6733, 0.02, 80)),
		GenerateRouteSignature(testLoop(45.52, -122.70, 0.01, 40)),
		GenerateRouteSignature(testLoop(40.7831, -73.9712, 0.009, 50)),
	}

	for _, a := range sigs {
		require.NotNil(t, a)
		for _, b := range sigs {
			score := CalculateRouteSimilarity(a, b)
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 1.0)
		}
	}
}

func TestCalculateRouteSimilarityEmptyUnion(t *testing.T) {
	// Degenerate signatures with no path cells count as identical.
	a := &models.RouteSignature{StartGeohash: "c20fkh", EndGeohash: "c20fkh"}
	b := &models.RouteSignature{StartGeohash: "c20fkh", EndGeohash: "c20fkh"}

	assert.Equal(t, 1.0, CalculateRouteSimilarity(a, b))
}

func TestJaccardPartialOverlap(t *testing.T) {
	a := &models.RouteSignature{
		StartGeohash: "c20fkh", EndGeohash: "c20fkh",
		PathCells: []string{"c20fk", "c20fm", "c20fs"},
	}
	b := &models.RouteSignature{
		StartGeohash: "c20fkh", EndGeohash: "c20fkh",
		PathCells: []string{"c20fk", "c20fm", "c20ft"},
	}

	// 2 shared cells out of 4 distinct.
	assert.InDelta(t, 0.5, CalculateRouteSimilarity(a, b), 1e-9)
}
