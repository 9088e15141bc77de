package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRiegelTimeSameDistance(t *testing.T) {
	known := 25 * time.Minute
	assert.Equal(t, known, RiegelTime(Distance5K, known, Distance5K))
}

func TestRiegelTimeDoubling(t *testing.T) {
	// Doubling the distance should cost a bit more than double the
	// time: 2^1.06 ~ 2.085.
	predicted := RiegelTime(Distance5K, 25*time.Minute, Distance10K)
	assert.InDelta(t, 25*60*2.085, predicted.Seconds(), 5)
}

func TestRiegelTimeInvalidInput(t *testing.T) {
	assert.Zero(t, RiegelTime(0, 25*time.Minute, Distance10K))
	assert.Zero(t, RiegelTime(Distance5K, 0, Distance10K))
	assert.Zero(t, RiegelTime(Distance5K, 25*time.Minute, 0))
}

func TestPredictRaceTimes(t *testing.T) {
	predictions := PredictRaceTimes(Distance10K, 50*time.Minute)
	require.Len(t, predictions, 4)

	assert.Equal(t, "5K", predictions[0].Label)
	assert.Equal(t, "Marathon", predictions[3].Label)

	// Monotonic: longer races take longer.
	for i := 1; i < len(predictions); i++ {
		assert.Greater(t, predictions[i].PredictedTime, predictions[i-1].PredictedTime)
	}

	// The 10K prediction from a 10K effort is the effort itself.
	assert.Equal(t, int64(50*60), predictions[1].PredictedTime)

	// Pace degrades as distance grows.
	assert.Greater(t, predictions[3].Pace, predictions[0].Pace)
}

func TestPredictRaceTimesUnusableEffort(t *testing.T) {
	assert.Nil(t, PredictRaceTimes(500, 3*time.Minute))
	assert.Nil(t, PredictRaceTimes(Distance5K, 0))
}
