package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamSetUnmarshalWrapped(t *testing.T) {
	raw := `{"latlng": {"data": [[45.5, -122.6], [45.6, -122.7]]}, "cadence": {"data": [178, 180]}}`

	var s StreamSet
	require.NoError(t, json.Unmarshal([]byte(raw), &s))

	require.NotNil(t, s.LatLng)
	require.Len(t, s.LatLng.Data, 2)
	assert.Equal(t, 45.5, s.LatLng.Data[0][0])

	require.NotNil(t, s.Cadence)
	assert.Equal(t, []float64{178, 180}, s.Cadence.Data)
}

func TestStreamSetUnmarshalBareArrays(t *testing.T) {
	raw := `{"latlng": [[45.5, -122.6]], "cadence": [178, 180, 182]}`

	var s StreamSet
	require.NoError(t, json.Unmarshal([]byte(raw), &s))

	require.NotNil(t, s.LatLng)
	assert.Equal(t, [][]float64{{45.5, -122.6}}, s.LatLng.Data)
	require.NotNil(t, s.Cadence)
	assert.Len(t, s.Cadence.Data, 3)
}

func TestStreamSetUnmarshalMalformed(t *testing.T) {
	var s StreamSet
	assert.Error(t, json.Unmarshal([]byte(`{"latlng": "oops"}`), &s))
}

func TestBestPolyline(t *testing.T) {
	a := Activity{Polyline: "summary", DetailedPolyline: "detailed"}
	assert.Equal(t, "detailed", a.BestPolyline())

	a.DetailedPolyline = ""
	assert.Equal(t, "summary", a.BestPolyline())
}

func TestRouteSignatureReconstruction(t *testing.T) {
	r := Route{
		StartGeohash: "c20fkh",
		EndGeohash:   "c20fkq",
		PathCells:    []string{"c20fk", "c20fm"},
		RouteKey:     "abc",
	}

	sig := r.Signature()
	assert.Equal(t, r.StartGeohash, sig.StartGeohash)
	assert.Equal(t, r.EndGeohash, sig.EndGeohash)
	assert.Equal(t, r.PathCells, sig.PathCells)
	assert.Equal(t, r.RouteKey, sig.RouteKey)
}
