package chroma

import (
	"fmt"
	"math"

	"github.com/tonalhq/keyscout/algorithms/spectral"
	"github.com/tonalhq/keyscout/algorithms/windowing"
	"github.com/tonalhq/keyscout/logging"
)

// ExtractorParams configures chromagram extraction.
type ExtractorParams struct {
	WindowSize int     `json:"window_size"` // STFT window in samples
	HopSize    int     `json:"hop_size"`    // hop between frames in samples
	TuningFreq float64 `json:"tuning_freq"` // A4 reference, normally 440 Hz
	MinFreq    float64 `json:"min_freq"`    // bins below are ignored
	MaxFreq    float64 `json:"max_freq"`    // bins above are ignored
}

// DefaultExtractorParams returns extraction settings suitable for full-mix
// music at common sample rates.
func DefaultExtractorParams() ExtractorParams {
	return ExtractorParams{
		WindowSize: 8192,
		HopSize:    2048,
		TuningFreq: 440.0,
		MinFreq:    80.0,   // ~E2
		MaxFreq:    5000.0, // keep upper harmonics out of the fold
	}
}

// Extractor converts a waveform into a pitch-class-major chromagram: 12
// rows (C..B), each row the per-frame energy of that pitch class. STFT bin
// energies are folded onto pitch classes by rounding each bin's MIDI note
// number, collapsing octaves.
type Extractor struct {
	params ExtractorParams
	stft   *spectral.STFT
	logger logging.Logger
}

// NewExtractor creates a chromagram extractor with default parameters.
func NewExtractor() *Extractor {
	return NewExtractorWithParams(DefaultExtractorParams())
}

// NewExtractorWithParams creates a chromagram extractor with custom
// parameters.
func NewExtractorWithParams(params ExtractorParams) *Extractor {
	return &Extractor{
		params: params,
		stft:   spectral.NewSTFT(),
		logger: logging.GetGlobalLogger().WithFields(logging.Fields{"component": "chroma_extractor"}),
	}
}

// Extract computes the chromagram of a mono signal at the given sample
// rate.
func (e *Extractor) Extract(signal []float64, sampleRate int) ([][]float64, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("sample rate must be positive, got %d", sampleRate)
	}

	window := windowing.NewHann(e.params.WindowSize)
	result, err := e.stft.Compute(signal, e.params.WindowSize, e.params.HopSize, sampleRate, window)
	if err != nil {
		return nil, fmt.Errorf("stft: %w", err)
	}

	mapping := e.binMapping(result.FreqBins, result.FreqResolution)

	chromagram := make([][]float64, NumPitchClasses)
	for pc := range chromagram {
		chromagram[pc] = make([]float64, result.TimeFrames)
	}

	for t := 0; t < result.TimeFrames; t++ {
		for f, pc := range mapping {
			if pc < 0 {
				continue
			}
			mag := result.Magnitude[t][f]
			chromagram[pc][t] += mag * mag
		}
	}

	e.logger.Debug("chromagram extracted", logging.Fields{
		"frames":      result.TimeFrames,
		"window_size": e.params.WindowSize,
		"hop_size":    e.params.HopSize,
	})

	return chromagram, nil
}

// binMapping maps each STFT bin index to a pitch class, or -1 when outside
// the configured frequency range.
func (e *Extractor) binMapping(freqBins int, freqResolution float64) []int {
	mapping := make([]int, freqBins)
	for f := range mapping {
		frequency := float64(f) * freqResolution
		if frequency < e.params.MinFreq || frequency > e.params.MaxFreq {
			mapping[f] = -1
			continue
		}
		// MIDI note 69 is A4 at the tuning reference; note mod 12 folds
		// octaves, and A sits 9 semitones above C.
		midi := 69.0 + 12.0*math.Log2(frequency/e.params.TuningFreq)
		mapping[f] = mod12(int(math.Round(midi)))
	}
	return mapping
}
