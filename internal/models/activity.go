package models

import (
	"encoding/json"
	"time"
)

// Activity represents a synced activity as delivered by the external
// sync pipeline. Polyline holds the summary-resolution encoded path;
// DetailedPolyline, when present, holds the high-resolution one.
type Activity struct {
	ID                 int64   `json:"id" db:"id"`
	UserID             int64   `json:"userId" db:"user_id"`
	Name               string  `json:"name" db:"name"`
	StartDate          int64   `json:"startDate" db:"start_date"` // Unix timestamp in seconds
	Distance           float64 `json:"distance" db:"distance"`    // meters
	MovingTime         int64   `json:"movingTime" db:"moving_time"`
	AverageSpeed       float64 `json:"averageSpeed" db:"average_speed"`
	AverageHeartrate   float64 `json:"averageHeartrate" db:"average_heartrate"`
	TotalElevationGain float64 `json:"totalElevationGain" db:"total_elevation_gain"`
	Polyline           string  `json:"polyline" db:"polyline"`
	DetailedPolyline   string  `json:"detailedPolyline,omitempty" db:"detailed_polyline"`
	StreamsData        string  `json:"-" db:"streams_data"` // JSON-serialized StreamSet

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// BestPolyline prefers the high-resolution polyline over the summary one.
func (a *Activity) BestPolyline() string {
	if a.DetailedPolyline != "" {
		return a.DetailedPolyline
	}
	return a.Polyline
}

// ActivitySummary is the projection of an activity used for route
// history display.
type ActivitySummary struct {
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	StartDate          int64   `json:"startDate"`
	Distance           float64 `json:"distance"`
	MovingTime         int64   `json:"movingTime"`
	AverageSpeed       float64 `json:"averageSpeed"`
	AverageHeartrate   float64 `json:"averageHeartrate"`
	TotalElevationGain float64 `json:"totalElevationGain"`
}

// StreamSet holds the per-sample time series attached to an activity.
// Only the series the engine consumes are modeled.
type StreamSet struct {
	LatLng  *LatLngStream `json:"latlng,omitempty"`
	Cadence *ValueStream  `json:"cadence,omitempty"`
}

// LatLngStream is a series of [lat, lng] pairs. Some exporters wrap the
// samples in a {"data": [...]} object, others emit the bare array, so
// both forms unmarshal.
type LatLngStream struct {
	Data [][]float64 `json:"data"`
}

// UnmarshalJSON accepts either {"data": [[lat,lng],...]} or a bare
// [[lat,lng],...] array.
func (s *LatLngStream) UnmarshalJSON(b []byte) error {
	type alias LatLngStream
	var wrapped alias
	if err := json.Unmarshal(b, &wrapped); err == nil && wrapped.Data != nil {
		s.Data = wrapped.Data
		return nil
	}

	var bare [][]float64
	if err := json.Unmarshal(b, &bare); err != nil {
		return err
	}
	s.Data = bare
	return nil
}

// ValueStream is a series of scalar samples (cadence, heartrate, ...),
// with the same wrapped-or-bare tolerance as LatLngStream.
type ValueStream struct {
	Data []float64 `json:"data"`
}

// UnmarshalJSON accepts either {"data": [...]} or a bare [...] array.
func (s *ValueStream) UnmarshalJSON(b []byte) error {
	type alias ValueStream
	var wrapped alias
	if err := json.Unmarshal(b, &wrapped); err == nil && wrapped.Data != nil {
		s.Data = wrapped.Data
		return nil
	}

	var bare []float64
	if err := json.Unmarshal(b, &bare); err != nil {
		return err
	}
	s.Data = bare
	return nil
}
