package tonal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tonalhq/keyscout/algorithms/chroma"
)

// ambiguousProfile blends the C major template with the minor template
// anchored at A, producing a profile where the relative minor scores just
// inside the alternate threshold.
func ambiguousProfile() []float64 {
	major := MajorTemplate()
	minor := MinorTemplate()
	blend := make([]float64, chroma.NumPitchClasses)
	for i := range blend {
		blend[i] = major[i] + minor[(i-9+chroma.NumPitchClasses)%chroma.NumPitchClasses]
	}
	return blend
}

func TestEstimateTemplateSelfMatch(t *testing.T) {
	e := NewEstimator()

	t.Run("major", func(t *testing.T) {
		estimate, err := e.Estimate(MajorTemplate())
		require.NoError(t, err)

		assert.Equal(t, chroma.C, estimate.Best.Tonic)
		assert.Equal(t, Major, estimate.Best.Mode)
		assert.Equal(t, 1.0, estimate.Best.Correlation)
		assert.Nil(t, estimate.Alternate, "runner-up (A minor, r=0.65) is far below the 0.9 cutoff")
	})

	t.Run("minor", func(t *testing.T) {
		estimate, err := e.Estimate(MinorTemplate())
		require.NoError(t, err)

		assert.Equal(t, chroma.C, estimate.Best.Tonic)
		assert.Equal(t, Minor, estimate.Best.Mode)
		assert.Equal(t, 1.0, estimate.Best.Correlation)
		assert.Nil(t, estimate.Alternate)
	})
}

func TestEstimateDeterminism(t *testing.T) {
	e := NewEstimator()

	first, err := e.Estimate(ambiguousProfile())
	require.NoError(t, err)
	second, err := e.Estimate(ambiguousProfile())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEstimateRotationEquivariance(t *testing.T) {
	e := NewEstimator()

	base := MajorTemplate()
	baseline, err := e.Estimate(base)
	require.NoError(t, err)

	for k := 0; k < chroma.NumPitchClasses; k++ {
		// Shift every pitch class up k semitones.
		shifted := make([]float64, chroma.NumPitchClasses)
		for i, v := range base {
			shifted[(i+k)%chroma.NumPitchClasses] = v
		}

		estimate, err := e.Estimate(shifted)
		require.NoError(t, err)

		assert.Equal(t, baseline.Best.Tonic.Transpose(k), estimate.Best.Tonic, "shift %d", k)
		assert.Equal(t, baseline.Best.Mode, estimate.Best.Mode, "shift %d", k)
		assert.Equal(t, baseline.Best.Correlation, estimate.Best.Correlation, "shift %d", k)
	}
}

func TestEstimateReportsAlternate(t *testing.T) {
	estimate, err := NewEstimator().Estimate(ambiguousProfile())
	require.NoError(t, err)

	assert.Equal(t, chroma.C, estimate.Best.Tonic)
	assert.Equal(t, Major, estimate.Best.Mode)
	assert.Equal(t, 0.917, estimate.Best.Correlation)

	require.NotNil(t, estimate.Alternate)
	assert.Equal(t, chroma.A, estimate.Alternate.Tonic)
	assert.Equal(t, Minor, estimate.Alternate.Mode)
	assert.Equal(t, 0.899, estimate.Alternate.Correlation)
	assert.Greater(t, estimate.Alternate.Correlation, AlternateKeyThreshold*estimate.Best.Correlation)
	assert.False(t, estimate.Alternate.SameKey(estimate.Best))
	assert.Equal(t, "relative", Relationship(estimate.Best, *estimate.Alternate))
}

func TestEstimateZeroVariance(t *testing.T) {
	e := NewEstimator()

	for name, values := range map[string][]float64{
		"silence":  make([]float64, chroma.NumPitchClasses),
		"all same": {0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5},
	} {
		estimate, err := e.Estimate(values)
		require.NoError(t, err, name)

		// Every candidate scores 0, so the tie-break pins the winner to
		// the first enumerated key.
		assert.Equal(t, chroma.C, estimate.Best.Tonic, name)
		assert.Equal(t, Major, estimate.Best.Mode, name)
		assert.Equal(t, 0.0, estimate.Best.Correlation, name)
		assert.Nil(t, estimate.Alternate, name)

		for _, c := range estimate.Candidates {
			assert.Equal(t, 0.0, c.Correlation, name)
		}
	}
}

func TestEstimateInvalidInput(t *testing.T) {
	e := NewEstimator()

	negative := MajorTemplate()
	negative[3] = -1

	for name, values := range map[string][]float64{
		"length 11": MajorTemplate()[:11],
		"length 13": append(MajorTemplate(), 0),
		"negative":  negative,
	} {
		estimate, err := e.Estimate(values)
		assert.Nil(t, estimate, name)
		assert.ErrorIs(t, err, chroma.ErrInvalidInput, name)
	}
}

func TestEstimateProjections(t *testing.T) {
	estimate, err := NewEstimator().Estimate(MajorTemplate())
	require.NoError(t, err)

	require.Len(t, estimate.Candidates, 24)
	assert.Equal(t, estimate.Best, estimate.Candidates[0])
	for i := 1; i < len(estimate.Candidates); i++ {
		assert.GreaterOrEqual(t, estimate.Candidates[i-1].Correlation, estimate.Candidates[i].Correlation)
	}

	require.Len(t, estimate.Profile, chroma.NumPitchClasses)
	assert.Equal(t, 1.0, estimate.Profile[0], "tonic holds the template's peak weight")
	for _, v := range estimate.Profile {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}

func TestEstimateChromagram(t *testing.T) {
	e := NewEstimator()

	// Spreading the profile across frames must not change the outcome:
	// aggregation sums time away before correlation.
	template := MajorTemplate()
	cg := make([][]float64, chroma.NumPitchClasses)
	for pc := range cg {
		cg[pc] = []float64{template[pc] / 2, template[pc] / 4, template[pc] / 4}
	}

	estimate, err := e.EstimateChromagram(cg)
	require.NoError(t, err)
	assert.Equal(t, chroma.C, estimate.Best.Tonic)
	assert.Equal(t, Major, estimate.Best.Mode)
	assert.Equal(t, 1.0, estimate.Best.Correlation)

	ranged, err := e.EstimateChromagramRange(cg, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, estimate.Best.Tonic, ranged.Best.Tonic)
	assert.Equal(t, estimate.Best.Mode, ranged.Best.Mode)

	_, err = e.EstimateChromagram(cg[:10])
	assert.ErrorIs(t, err, chroma.ErrInvalidInput)
}
