// Package analysis holds the closed-form performance analytics that sit
// alongside route matching: race-time prediction and cadence drift.
package analysis

import (
	"math"
	"time"
)

// riegelExponent is the fatigue exponent in Riegel's endurance model.
// 1.06 is the published value for trained runners.
const riegelExponent = 1.06

// Standard race distances in meters.
const (
	Distance5K       = 5000.0
	Distance10K      = 10000.0
	DistanceHalf     = 21097.5
	DistanceMarathon = 42195.0
)

// RacePrediction is a projected finish time for one race distance.
type RacePrediction struct {
	Distance      float64 `json:"distance"`      // meters
	Label         string  `json:"label"`         // "5K", "10K", ...
	PredictedTime int64   `json:"predictedTime"` // seconds
	Pace          float64 `json:"pace"`          // seconds per km
}

// RiegelTime projects a finish time for targetDistance from a known
// performance, using t2 = t1 * (d2/d1)^1.06.
func RiegelTime(knownDistance float64, knownTime time.Duration, targetDistance float64) time.Duration {
	if knownDistance <= 0 || knownTime <= 0 || targetDistance <= 0 {
		return 0
	}

	ratio := math.Pow(targetDistance/knownDistance, riegelExponent)
	return time.Duration(float64(knownTime) * ratio)
}

// PredictRaceTimes projects finish times for the standard race
// distances from a single reference effort. Returns nil when the
// reference effort is unusable (missing distance or time, or too short
// to extrapolate from).
func PredictRaceTimes(distanceMeters float64, movingTime time.Duration) []RacePrediction {
	// Efforts under 1 km extrapolate too wildly to be useful.
	if distanceMeters < 1000 || movingTime <= 0 {
		return nil
	}

	targets := []struct {
		distance float64
		label    string
	}{
		{Distance5K, "5K"},
		{Distance10K, "10K"},
		{DistanceHalf, "Half Marathon"},
		{DistanceMarathon, "Marathon"},
	}

	predictions := make([]RacePrediction, 0, len(targets))
	for _, t := range targets {
		predicted := RiegelTime(distanceMeters, movingTime, t.distance)
		predictions = append(predictions, RacePrediction{
			Distance:      t.distance,
			Label:         t.label,
			PredictedTime: int64(predicted.Seconds()),
			Pace:          predicted.Seconds() / (t.distance / 1000),
		})
	}

	return predictions
}
