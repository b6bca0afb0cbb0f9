package spectral

import (
	"github.com/mjibson/go-dsp/fft"
)

// FFT wraps mjibson/go-dsp's transform behind the small surface the
// extraction pipeline needs. go-dsp handles non-power-of-2 sizes, so frame
// lengths are unconstrained.
type FFT struct{}

// NewFFT creates an FFT calculator.
func NewFFT() *FFT {
	return &FFT{}
}

// Compute transforms a real signal, returning the full complex spectrum.
func (f *FFT) Compute(x []float64) []complex128 {
	if len(x) == 0 {
		return nil
	}
	return fft.FFTReal(x)
}
