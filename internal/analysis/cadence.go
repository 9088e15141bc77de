package analysis

import (
	"github.com/strideline/routes-backend-go/internal/stats"
)

// minCadenceSamples is the smallest stream worth analyzing; below this
// the thirds are too short to say anything about drift.
const minCadenceSamples = 30

// CadenceAnalysis summarizes how a runner's cadence behaved over one
// activity.
type CadenceAnalysis struct {
	AverageCadence float64 `json:"averageCadence"`
	DriftPercent   float64 `json:"driftPercent"`   // last third vs first third
	Variability    float64 `json:"variability"`    // coefficient of variation
	StabilityScore float64 `json:"stabilityScore"` // 0-100, higher is steadier
}

// AnalyzeCadence computes cadence drift and stability from a cadence
// stream. Zero samples (stopped at lights, walking breaks recorded as
// zero) are excluded. Returns nil when the stream is too short.
func AnalyzeCadence(samples []float64) *CadenceAnalysis {
	filtered := make([]float64, 0, len(samples))
	for _, v := range samples {
		if v > 0 {
			filtered = append(filtered, v)
		}
	}
	if len(filtered) < minCadenceSamples {
		return nil
	}

	third := len(filtered) / 3
	firstMean := stats.Mean(filtered[:third])
	lastMean := stats.Mean(filtered[len(filtered)-third:])

	drift := 0.0
	if firstMean > 0 {
		drift = (lastMean - firstMean) / firstMean * 100
	}

	variability := stats.CoefficientOfVariation(filtered)

	// Penalize both fading cadence and erratic cadence. Ten points per
	// percent of drift, two points per percent of variation.
	score := 100.0 - absFloat(drift)*10 - variability*200
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return &CadenceAnalysis{
		AverageCadence: stats.Mean(filtered),
		DriftPercent:   drift,
		Variability:    variability,
		StabilityScore: score,
	}
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
