package tonal

import (
	"fmt"

	"github.com/tonalhq/keyscout/algorithms/chroma"
)

// Mode distinguishes major from minor tonality.
type Mode int

const (
	Major Mode = iota
	Minor
)

func (m Mode) String() string {
	if m == Minor {
		return "minor"
	}
	return "major"
}

// KeyCandidate pairs one of the 24 possible keys with its template
// correlation, in [-1, 1].
type KeyCandidate struct {
	Tonic       chroma.PitchClass `json:"tonic"`
	Mode        Mode              `json:"mode"`
	Correlation float64           `json:"correlation"`
}

// Name returns the human-readable key name, e.g. "F# minor".
func (kc KeyCandidate) Name() string {
	return fmt.Sprintf("%s %s", kc.Tonic, kc.Mode)
}

// SameKey reports whether both candidates name the same tonic and mode,
// regardless of correlation.
func (kc KeyCandidate) SameKey(other KeyCandidate) bool {
	return kc.Tonic == other.Tonic && kc.Mode == other.Mode
}

// KeyEstimate is the immutable result of one analysis: the winning key, an
// optional qualifying alternate, and read-only projections for reporting.
type KeyEstimate struct {
	Best      KeyCandidate  `json:"best"`
	Alternate *KeyCandidate `json:"alternate,omitempty"`

	// Candidates holds all 24 scored keys ranked by correlation, ties in
	// enumeration order (tonic C..B, major before minor).
	Candidates []KeyCandidate `json:"candidates"`

	// Profile is the analyzed pitch class energy profile scaled to a
	// maximum of 1, for rendering a chroma report.
	Profile []float64 `json:"profile"`
}

// RelativeKey returns the relative major or minor of the given key
// (A minor for C major, and back).
func RelativeKey(tonic chroma.PitchClass, mode Mode) (chroma.PitchClass, Mode) {
	if mode == Major {
		return tonic.Transpose(-3), Minor
	}
	return tonic.Transpose(3), Major
}

// ParallelKey returns the same tonic in the opposite mode.
func ParallelKey(tonic chroma.PitchClass, mode Mode) (chroma.PitchClass, Mode) {
	if mode == Major {
		return tonic, Minor
	}
	return tonic, Major
}

// DominantKey returns the key a perfect fifth above.
func DominantKey(tonic chroma.PitchClass, mode Mode) (chroma.PitchClass, Mode) {
	return tonic.Transpose(7), mode
}

// Relationship names how `other` relates to `base`: "relative", "parallel",
// "dominant", "subdominant", or "distant". Used when reporting why an
// alternate key scored close to the winner.
func Relationship(base, other KeyCandidate) string {
	if relTonic, relMode := RelativeKey(base.Tonic, base.Mode); other.Tonic == relTonic && other.Mode == relMode {
		return "relative"
	}
	if parTonic, parMode := ParallelKey(base.Tonic, base.Mode); other.Tonic == parTonic && other.Mode == parMode {
		return "parallel"
	}
	if domTonic, domMode := DominantKey(base.Tonic, base.Mode); other.Tonic == domTonic && other.Mode == domMode {
		return "dominant"
	}
	if subTonic := base.Tonic.Transpose(-7); other.Tonic == subTonic && other.Mode == base.Mode {
		return "subdominant"
	}
	return "distant"
}
