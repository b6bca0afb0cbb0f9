package spectral

import (
	"fmt"
	"math/cmplx"
	"runtime"
	"sync"
)

// Window is any analysis window that can scale a frame in place.
type Window interface {
	ApplyInPlace(signal []float64) error
	Size() int
}

// STFT computes short-time magnitude spectrograms. Frames are independent,
// so they are fanned out across a small worker pool.
type STFT struct {
	fft *FFT
}

// STFTResult holds a magnitude spectrogram and the geometry needed to map
// bins back to frequencies and frames back to time.
type STFTResult struct {
	Magnitude      [][]float64 `json:"magnitude"` // time x frequency
	TimeFrames     int         `json:"time_frames"`
	FreqBins       int         `json:"freq_bins"`
	SampleRate     int         `json:"sample_rate"`
	WindowSize     int         `json:"window_size"`
	HopSize        int         `json:"hop_size"`
	FreqResolution float64     `json:"freq_resolution"` // Hz per bin
	TimeResolution float64     `json:"time_resolution"` // seconds per frame
}

// NewSTFT creates an STFT calculator.
func NewSTFT() *STFT {
	return &STFT{fft: NewFFT()}
}

// Compute slides the window over the signal with the given hop and returns
// the magnitude spectrogram of the positive frequencies.
func (s *STFT) Compute(signal []float64, windowSize, hopSize, sampleRate int, window Window) (*STFTResult, error) {
	if len(signal) == 0 {
		return nil, fmt.Errorf("empty signal")
	}
	if windowSize <= 0 || hopSize <= 0 {
		return nil, fmt.Errorf("window size and hop size must be positive")
	}
	// The frame count formula truncates toward zero, so a signal within one
	// hop of the window size would round up to a single out-of-bounds frame.
	if len(signal) < windowSize {
		return nil, fmt.Errorf("signal too short (%d samples) for window size %d", len(signal), windowSize)
	}
	if window != nil && window.Size() != windowSize {
		return nil, fmt.Errorf("window size (%d) doesn't match frame size (%d)", window.Size(), windowSize)
	}

	numFrames := (len(signal)-windowSize)/hopSize + 1

	freqBins := windowSize/2 + 1
	magnitude := make([][]float64, numFrames)
	for i := range magnitude {
		magnitude[i] = make([]float64, freqBins)
	}

	jobs := make(chan int, numFrames)
	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		frameErr error
	)

	for w := 0; w < workerCount(numFrames); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			frame := make([]float64, windowSize)
			for frameIdx := range jobs {
				start := frameIdx * hopSize
				copy(frame, signal[start:start+windowSize])
				if window != nil {
					if err := window.ApplyInPlace(frame); err != nil {
						errOnce.Do(func() { frameErr = err })
						continue
					}
				}
				spectrum := s.fft.Compute(frame)
				for i := 0; i < freqBins; i++ {
					magnitude[frameIdx][i] = cmplx.Abs(spectrum[i])
				}
			}
		}()
	}

	for frameIdx := 0; frameIdx < numFrames; frameIdx++ {
		jobs <- frameIdx
	}
	close(jobs)
	wg.Wait()

	if frameErr != nil {
		return nil, fmt.Errorf("window frame: %w", frameErr)
	}

	return &STFTResult{
		Magnitude:      magnitude,
		TimeFrames:     numFrames,
		FreqBins:       freqBins,
		SampleRate:     sampleRate,
		WindowSize:     windowSize,
		HopSize:        hopSize,
		FreqResolution: float64(sampleRate) / float64(windowSize),
		TimeResolution: float64(hopSize) / float64(sampleRate),
	}, nil
}

func workerCount(numFrames int) int {
	n := runtime.NumCPU()
	if numFrames < n {
		n = numFrames
	}
	if n < 1 {
		n = 1
	}
	return n
}
