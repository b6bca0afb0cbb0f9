package windowing

import (
	"fmt"
	"math"
)

// Hamming is an alternative analysis window with a higher sidelobe floor
// but narrower main lobe than Hann.
type Hamming struct {
	size         int
	coefficients []float64
}

// NewHamming creates a periodic Hamming window of the given size.
func NewHamming(size int) *Hamming {
	h := &Hamming{size: size, coefficients: make([]float64, size)}
	for i := 0; i < size; i++ {
		h.coefficients[i] = 0.54 - 0.46*math.Cos(2*math.Pi*float64(i)/float64(size))
	}
	return h
}

// ApplyInPlace multiplies the signal by the window coefficients.
func (h *Hamming) ApplyInPlace(signal []float64) error {
	if len(signal) != h.size {
		return fmt.Errorf("signal length (%d) doesn't match window size (%d)", len(signal), h.size)
	}
	for i := range signal {
		signal[i] *= h.coefficients[i]
	}
	return nil
}

// Size returns the window length in samples.
func (h *Hamming) Size() int {
	return h.size
}
