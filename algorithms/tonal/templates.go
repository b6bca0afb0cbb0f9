package tonal

// Krumhansl-Schmuckler tonal hierarchy profiles, empirically derived from
// listener probe-tone ratings. Index 0 is the tonic; the remaining entries
// weight each scale degree's harmonic importance for the mode. Key
// estimation output depends on these exact values.
var (
	krumhanslMajor = [12]float64{6.35, 2.23, 3.48, 2.33, 4.38, 4.09, 2.52, 5.19, 2.39, 3.66, 2.29, 2.88}
	krumhanslMinor = [12]float64{6.33, 2.68, 3.52, 5.38, 2.60, 3.53, 2.54, 4.75, 3.98, 2.69, 3.34, 3.17}
)

// MajorTemplate returns a copy of the major key profile.
func MajorTemplate() []float64 {
	t := krumhanslMajor
	return t[:]
}

// MinorTemplate returns a copy of the minor key profile.
func MinorTemplate() []float64 {
	t := krumhanslMinor
	return t[:]
}
