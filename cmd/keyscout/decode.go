package main

import (
	"fmt"
	"os"

	"github.com/mjibson/go-dsp/wav"
)

// decodeWAV reads a PCM WAV file and returns a mono float64 signal plus its
// sample rate. Multi-channel audio is downmixed by averaging channels;
// pitch content survives a downmix so nothing fancier is needed here.
func decodeWAV(path string) ([]float64, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	w, err := wav.New(f)
	if err != nil {
		return nil, 0, fmt.Errorf("parse wav %s: %w", path, err)
	}

	samples, err := w.ReadFloats(w.Samples)
	if err != nil {
		return nil, 0, fmt.Errorf("read samples from %s: %w", path, err)
	}

	channels := int(w.NumChannels)
	if channels < 1 {
		return nil, 0, fmt.Errorf("wav %s reports %d channels", path, channels)
	}

	frames := len(samples) / channels
	mono := make([]float64, frames)
	for i := 0; i < frames; i++ {
		sum := 0.0
		for ch := 0; ch < channels; ch++ {
			sum += float64(samples[i*channels+ch])
		}
		mono[i] = sum / float64(channels)
	}

	return mono, int(w.SampleRate), nil
}
