package chroma

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// EnergyVector holds the total energy observed in each of the 12 pitch
// classes over an analysis window, indexed by PitchClass (C = 0). Values are
// opaque relative energies: non-negative, finite, unit-free.
type EnergyVector []float64

// NewEnergyVector validates values and copies them into an EnergyVector.
// The input must contain exactly 12 finite, non-negative energies.
func NewEnergyVector(values []float64) (EnergyVector, error) {
	if len(values) != NumPitchClasses {
		return nil, inputErrorf("expected %d pitch class energies, got %d", NumPitchClasses, len(values))
	}
	for i, v := range values {
		if err := validateEnergy(PitchClass(i), v); err != nil {
			return nil, err
		}
	}
	ev := make(EnergyVector, NumPitchClasses)
	copy(ev, values)
	return ev, nil
}

func validateEnergy(pc PitchClass, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return inputErrorf("energy for pitch class %s is not finite", pc)
	}
	if v < 0 {
		return inputErrorf("energy for pitch class %s is negative (%g)", pc, v)
	}
	return nil
}

// Rotated re-anchors the vector so the pitch class `semitones` above C lands
// on index 0: out[m] = v[(semitones+m) mod 12]. The receiver is not modified.
func (ev EnergyVector) Rotated(semitones int) EnergyVector {
	out := make(EnergyVector, NumPitchClasses)
	for m := range out {
		out[m] = ev[mod12(semitones+m)]
	}
	return out
}

// Normalized returns the profile scaled so its maximum element is 1, the
// form used for chroma display alongside key templates. An all-zero vector
// normalizes to all zeros.
func (ev EnergyVector) Normalized() []float64 {
	out := make([]float64, len(ev))
	peak := floats.Max([]float64(ev))
	if peak <= 0 {
		return out
	}
	for i, v := range ev {
		out[i] = v / peak
	}
	return out
}

// Total returns the summed energy across all pitch classes.
func (ev EnergyVector) Total() float64 {
	return floats.Sum([]float64(ev))
}

// Dominant returns the pitch class holding the most energy. Ties resolve to
// the lower pitch class.
func (ev EnergyVector) Dominant() PitchClass {
	best := 0
	for i, v := range ev {
		if v > ev[best] {
			best = i
		}
	}
	return PitchClass(best)
}
