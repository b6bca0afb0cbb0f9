package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// PearsonCorrelation computes the Pearson correlation coefficient between
// two equal-length series using gonum.
//
// When either series has zero variance the coefficient is mathematically
// undefined (0/0); gonum yields NaN there. This returns 0 instead, so that
// scoring a flat or silent profile stays a total ordering rather than a
// NaN-poisoned one. The result is clamped to [-1, 1] against floating
// point overshoot.
func PearsonCorrelation(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	r := stat.Correlation(a, b, nil)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0
	}
	return math.Max(-1, math.Min(1, r))
}

// RoundPlaces rounds x to the given number of decimal places. Correlation
// scores get rounded before comparison so repeated runs of the same
// analysis compare bit-identical.
func RoundPlaces(x float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(x*scale) / scale
}
