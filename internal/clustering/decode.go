// Package clustering implements route fingerprinting and approximate
// matching of GPS paths. An activity's path is simplified, hashed into
// geohash cells and compared against a user's existing routes by cell
// overlap.
package clustering

import (
	"math"

	"github.com/twpayne/go-polyline"

	"github.com/strideline/routes-backend-go/internal/models"
	"github.com/strideline/routes-backend-go/internal/spatial"
)

// DecodePolylineToLatLng decodes a Google-encoded polyline string into
// an ordered point sequence. Malformed input yields an error and no
// points; callers log it and proceed as if the activity had no usable
// GPS.
func DecodePolylineToLatLng(encoded string) ([]spatial.Point, error) {
	if encoded == "" {
		return nil, nil
	}

	coords, _, err := polyline.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil, err
	}

	points := make([]spatial.Point, 0, len(coords))
	for _, c := range coords {
		points = append(points, spatial.Point{Lat: c[0], Lon: c[1]})
	}
	return points, nil
}

// ExtractLatLngFromStreams pulls the ordered point sequence out of an
// activity's latlng stream. Samples without a GPS fix (NaN, or a zero
// coordinate, the recorders' missing-fix marker) are dropped.
func ExtractLatLngFromStreams(streams *models.StreamSet) []spatial.Point {
	if streams == nil || streams.LatLng == nil {
		return nil
	}

	points := make([]spatial.Point, 0, len(streams.LatLng.Data))
	for _, pair := range streams.LatLng.Data {
		if len(pair) < 2 {
			continue
		}
		lat, lon := pair[0], pair[1]
		if math.IsNaN(lat) || math.IsNaN(lon) {
			continue
		}
		if lat == 0 || lon == 0 {
			continue
		}
		points = append(points, spatial.Point{Lat: lat, Lon: lon})
	}
	return points
}
