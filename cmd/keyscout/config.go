package main

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/tonalhq/keyscout/algorithms/chroma"
)

// loadExtractorParams resolves analysis settings from, in increasing
// precedence: built-in defaults, an optional YAML config file, and
// KEYSCOUT_* environment variables.
func loadExtractorParams(configPath string) (chroma.ExtractorParams, error) {
	defaults := chroma.DefaultExtractorParams()

	v := viper.New()
	v.SetDefault("analysis.window_size", defaults.WindowSize)
	v.SetDefault("analysis.hop_size", defaults.HopSize)
	v.SetDefault("analysis.tuning_freq", defaults.TuningFreq)
	v.SetDefault("analysis.min_freq", defaults.MinFreq)
	v.SetDefault("analysis.max_freq", defaults.MaxFreq)

	v.SetEnvPrefix("KEYSCOUT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return chroma.ExtractorParams{}, fmt.Errorf("read config %s: %w", configPath, err)
		}
	}

	params := chroma.ExtractorParams{
		WindowSize: v.GetInt("analysis.window_size"),
		HopSize:    v.GetInt("analysis.hop_size"),
		TuningFreq: v.GetFloat64("analysis.tuning_freq"),
		MinFreq:    v.GetFloat64("analysis.min_freq"),
		MaxFreq:    v.GetFloat64("analysis.max_freq"),
	}

	if params.WindowSize <= 0 || params.HopSize <= 0 {
		return chroma.ExtractorParams{}, fmt.Errorf("window_size and hop_size must be positive")
	}
	if params.MinFreq >= params.MaxFreq {
		return chroma.ExtractorParams{}, fmt.Errorf("min_freq (%g) must be below max_freq (%g)", params.MinFreq, params.MaxFreq)
	}

	return params, nil
}
