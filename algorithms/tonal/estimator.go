package tonal

import (
	"sort"

	"github.com/tonalhq/keyscout/algorithms/chroma"
)

// AlternateKeyThreshold is the fraction of the best key's correlation a
// different key must strictly exceed to be reported as a plausible
// alternate. The Krumhansl profiles of relative and parallel keys overlap
// heavily, so a close runner-up often marks genuine ambiguity rather than
// noise. The 0.9 value is empirical; changing it changes classification
// output.
const AlternateKeyThreshold = 0.9

// Estimator runs the full pipeline: validate the pitch class energies,
// correlate them against every key, and select the winner plus any
// qualifying alternate. It holds no mutable state; one Estimator may be
// shared across goroutines.
type Estimator struct {
	aggregator *chroma.Aggregator
	correlator *Correlator
}

// NewEstimator creates a key estimator over the Krumhansl-Schmuckler
// templates.
func NewEstimator() *Estimator {
	return &Estimator{
		aggregator: chroma.NewAggregator(),
		correlator: NewCorrelator(),
	}
}

// Estimate analyzes a 12-element pitch class energy profile. It returns an
// error wrapping chroma.ErrInvalidInput when the profile has the wrong
// length or contains negative or non-finite values.
func (e *Estimator) Estimate(values []float64) (*KeyEstimate, error) {
	v, err := chroma.NewEnergyVector(values)
	if err != nil {
		return nil, err
	}
	return e.estimate(v), nil
}

// EstimateChromagram aggregates a pitch-class-major chromagram (12 rows of
// per-frame energies) over time and analyzes the result.
func (e *Estimator) EstimateChromagram(chromagram [][]float64) (*KeyEstimate, error) {
	v, err := e.aggregator.Aggregate(chromagram)
	if err != nil {
		return nil, err
	}
	return e.estimate(v), nil
}

// EstimateChromagramRange is EstimateChromagram restricted to frames
// [start, end).
func (e *Estimator) EstimateChromagramRange(chromagram [][]float64, start, end int) (*KeyEstimate, error) {
	v, err := e.aggregator.AggregateRange(chromagram, start, end)
	if err != nil {
		return nil, err
	}
	return e.estimate(v), nil
}

func (e *Estimator) estimate(v chroma.EnergyVector) *KeyEstimate {
	candidates := e.correlator.Correlate(v)

	// Strict > keeps the earliest candidate on ties, which pins the winner
	// to enumeration order and makes repeated runs reproducible.
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Correlation > best.Correlation {
			best = c
		}
	}

	alternate := findAlternate(candidates, best)

	ranked := make([]KeyCandidate, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Correlation > ranked[j].Correlation
	})

	return &KeyEstimate{
		Best:       best,
		Alternate:  alternate,
		Candidates: ranked,
		Profile:    v.Normalized(),
	}
}

// findAlternate returns the strongest candidate, distinct from best in
// tonic or mode, whose correlation strictly exceeds
// AlternateKeyThreshold × best. Ties resolve to enumeration order. Returns
// nil when no candidate qualifies, including the zero-variance case where
// every correlation is 0.
func findAlternate(candidates []KeyCandidate, best KeyCandidate) *KeyCandidate {
	cutoff := AlternateKeyThreshold * best.Correlation
	var alternate *KeyCandidate
	for i := range candidates {
		c := candidates[i]
		if c.SameKey(best) {
			continue
		}
		if c.Correlation > cutoff && (alternate == nil || c.Correlation > alternate.Correlation) {
			picked := c
			alternate = &picked
		}
	}
	return alternate
}
