package chroma

// Aggregator reduces a chromagram to a single EnergyVector by summing each
// pitch class row across time. The chromagram is pitch-class-major: exactly
// 12 rows (C..B), each row the per-frame energies for that pitch class.
type Aggregator struct{}

// NewAggregator creates a chromagram aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Aggregate sums every frame of the chromagram.
func (a *Aggregator) Aggregate(chromagram [][]float64) (EnergyVector, error) {
	frames, err := frameCount(chromagram)
	if err != nil {
		return nil, err
	}
	return a.sumRange(chromagram, 0, frames)
}

// AggregateRange sums only frames in [start, end). The caller is expected to
// have sliced the waveform before feature extraction when analyzing a
// sub-segment; this range form exists for trimming an already-extracted
// chromagram without recomputing it.
func (a *Aggregator) AggregateRange(chromagram [][]float64, start, end int) (EnergyVector, error) {
	frames, err := frameCount(chromagram)
	if err != nil {
		return nil, err
	}
	if start < 0 || end > frames || start > end {
		return nil, inputErrorf("frame range [%d, %d) out of bounds for %d frames", start, end, frames)
	}
	return a.sumRange(chromagram, start, end)
}

func (a *Aggregator) sumRange(chromagram [][]float64, start, end int) (EnergyVector, error) {
	ev := make(EnergyVector, NumPitchClasses)
	for pc, row := range chromagram {
		for t := start; t < end; t++ {
			if err := validateEnergy(PitchClass(pc), row[t]); err != nil {
				return nil, err
			}
			ev[pc] += row[t]
		}
	}
	return ev, nil
}

func frameCount(chromagram [][]float64) (int, error) {
	if len(chromagram) != NumPitchClasses {
		return 0, inputErrorf("expected %d pitch class rows, got %d", NumPitchClasses, len(chromagram))
	}
	frames := len(chromagram[0])
	for pc, row := range chromagram {
		if len(row) != frames {
			return 0, inputErrorf("ragged chromagram: row %s has %d frames, row C has %d", PitchClass(pc), len(row), frames)
		}
	}
	return frames, nil
}
