package stats

import (
	"math"
)

// Mean calculates the arithmetic mean of a slice of float64 values.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Variance calculates the sample variance.
func Variance(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}

	mean := Mean(values)
	var sumSquaredDiff float64
	for _, v := range values {
		diff := v - mean
		sumSquaredDiff += diff * diff
	}

	return sumSquaredDiff / float64(len(values)-1)
}

// StdDev calculates the sample standard deviation.
func StdDev(values []float64) float64 {
	return math.Sqrt(Variance(values))
}

// CoefficientOfVariation returns StdDev/Mean, a scale-free spread
// measure. Zero mean yields zero.
func CoefficientOfVariation(values []float64) float64 {
	mean := Mean(values)
	if mean == 0 {
		return 0
	}
	return StdDev(values) / mean
}
