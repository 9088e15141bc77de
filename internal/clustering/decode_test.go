package clustering

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strideline/routes-backend-go/internal/models"
)

func TestDecodePolylineToLatLng(t *testing.T) {
	// Reference vector from the polyline algorithm documentation.
	points, err := DecodePolylineToLatLng("_p~iF~ps|U_ulLnnqC_mqNvxq`@")
	require.NoError(t, err)
	require.Len(t, points, 3)

	assert.InDelta(t, 38.5, points[0].Lat, 1e-5)
	assert.InDelta(t, -120.2, points[0].Lon, 1e-5)
	assert.InDelta(t, 40.7, points[1].Lat, 1e-5)
	assert.InDelta(t, -120.95, points[1].Lon, 1e-5)
	assert.InDelta(t, 43.252, points[2].Lat, 1e-5)
	assert.InDelta(t, -126.453, points[2].Lon, 1e-5)
}

func TestDecodePolylineToLatLngEmpty(t *testing.T) {
	points, err := DecodePolylineToLatLng("")
	assert.NoError(t, err)
	assert.Empty(t, points)
}

func TestDecodePolylineToLatLngMalformed(t *testing.T) {
	// Truncated varint sequence must yield an error, never a panic.
	points, err := DecodePolylineToLatLng("_p~iF~ps|U_ulLnnqC_mqNvxq")
	assert.Error(t, err)
	assert.Empty(t, points)

	// Bytes outside the encoding alphabet.
	points, err = DecodePolylineToLatLng("\n\t")
	assert.Error(t, err)
	assert.Empty(t, points)
}

func TestExtractLatLngFromStreams(t *testing.T) {
	streams := &models.StreamSet{
		LatLng: &models.LatLngStream{
			Data: [][]float64{
				{45.5, -122.6},
				{0, 0},               // missing fix
				{math.NaN(), -122.6}, // bad sample
				{45.6, 0},            // missing longitude
				{45.7, -122.7},
				{45.8}, // short pair
			},
		},
	}

	points := ExtractLatLngFromStreams(streams)
	require.Len(t, points, 2)
	assert.Equal(t, 45.5, points[0].Lat)
	assert.Equal(t, 45.7, points[1].Lat)
}

func TestExtractLatLngFromStreamsNil(t *testing.T) {
	assert.Empty(t, ExtractLatLngFromStreams(nil))
	assert.Empty(t, ExtractLatLngFromStreams(&models.StreamSet{}))
}
