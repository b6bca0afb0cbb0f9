package tonal

import (
	"github.com/tonalhq/keyscout/algorithms/chroma"
	"github.com/tonalhq/keyscout/algorithms/stats"
)

// correlationPlaces is the decimal precision correlations are rounded to
// before any comparison, so reruns of the same analysis agree exactly.
const correlationPlaces = 3

// Correlator scores an energy vector against the major and minor templates
// under all 12 tonic rotations.
type Correlator struct {
	major []float64
	minor []float64
}

// NewCorrelator creates a correlator over the Krumhansl-Schmuckler
// templates.
func NewCorrelator() *Correlator {
	return &Correlator{
		major: MajorTemplate(),
		minor: MinorTemplate(),
	}
}

// Correlate produces the 24 key candidates in enumeration order: tonic C
// through B, major before minor per tonic. Downstream tie-breaking relies
// on this order being stable.
//
// A zero-variance vector (silence, or all pitch classes equal) correlates
// as 0 everywhere rather than failing; see stats.PearsonCorrelation.
func (c *Correlator) Correlate(v chroma.EnergyVector) []KeyCandidate {
	candidates := make([]KeyCandidate, 0, 2*chroma.NumPitchClasses)

	for r := 0; r < chroma.NumPitchClasses; r++ {
		rotated := v.Rotated(r)
		candidates = append(candidates,
			KeyCandidate{
				Tonic:       chroma.PitchClass(r),
				Mode:        Major,
				Correlation: c.score(rotated, c.major),
			},
			KeyCandidate{
				Tonic:       chroma.PitchClass(r),
				Mode:        Minor,
				Correlation: c.score(rotated, c.minor),
			},
		)
	}

	return candidates
}

func (c *Correlator) score(rotated chroma.EnergyVector, template []float64) float64 {
	r := stats.PearsonCorrelation(rotated, template)
	return stats.RoundPlaces(r, correlationPlaces)
}
