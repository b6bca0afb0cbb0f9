package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tonalhq/keyscout/algorithms/chroma"
	"github.com/tonalhq/keyscout/algorithms/tonal"
	"github.com/tonalhq/keyscout/logging"
)

type rootOptions struct {
	configPath string
	start      float64
	end        float64
	jsonOut    bool
	showAll    bool
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "keyscout <file.wav>",
		Short:        "Estimate the musical key of a WAV file",
		Long:         "keyscout decodes a WAV file, extracts its chroma profile, and reports the best-matching key plus any plausible alternate.",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "YAML file with analysis settings")
	cmd.Flags().Float64Var(&opts.start, "start", 0, "analyze from this offset in seconds")
	cmd.Flags().Float64Var(&opts.end, "end", 0, "analyze up to this offset in seconds (0 = end of file)")
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "emit the full estimate as JSON")
	cmd.Flags().BoolVar(&opts.showAll, "all", false, "print all 24 key correlations")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

func runAnalyze(path string, opts *rootOptions) error {
	logger := logging.GetGlobalLogger()
	if opts.verbose {
		logger.SetLevel(logging.DebugLevel)
	}

	// Errors are returned, not logged: cobra prints them once on stderr.
	signal, sampleRate, err := decodeWAV(path)
	if err != nil {
		return err
	}

	signal, err = sliceSeconds(signal, sampleRate, opts.start, opts.end)
	if err != nil {
		return err
	}

	params, err := loadExtractorParams(opts.configPath)
	if err != nil {
		return err
	}

	logger.Debug("analyzing", logging.Fields{
		"file":        path,
		"sample_rate": sampleRate,
		"samples":     len(signal),
	})

	chromagram, err := chroma.NewExtractorWithParams(params).Extract(signal, sampleRate)
	if err != nil {
		return fmt.Errorf("extract chroma: %w", err)
	}

	vector, err := chroma.NewAggregator().Aggregate(chromagram)
	if err != nil {
		return err
	}
	if vector.Total() == 0 {
		logger.Warn("segment has no pitch energy; reported key is the tie-break default", logging.Fields{"file": path})
	}

	estimate, err := tonal.NewEstimator().Estimate(vector)
	if err != nil {
		return err
	}

	if opts.jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(estimate)
	}

	printEstimate(estimate, opts.showAll)
	return nil
}

// sliceSeconds trims the waveform to [start, end) seconds. end = 0 means
// end of file. Slicing happens before feature extraction so frame indices
// inside the analysis match the requested segment.
func sliceSeconds(signal []float64, sampleRate int, start, end float64) ([]float64, error) {
	if start < 0 || (end != 0 && end < start) {
		return nil, fmt.Errorf("invalid segment [%g, %g)", start, end)
	}
	lo := int(start * float64(sampleRate))
	hi := len(signal)
	if end > 0 {
		hi = int(end * float64(sampleRate))
		if hi > len(signal) {
			hi = len(signal)
		}
	}
	if lo >= hi {
		return nil, fmt.Errorf("segment [%g, %g) is outside the file", start, end)
	}
	return signal[lo:hi], nil
}

func printEstimate(estimate *tonal.KeyEstimate, showAll bool) {
	fmt.Printf("Key: %s (r=%.3f)\n", estimate.Best.Name(), estimate.Best.Correlation)

	if estimate.Alternate != nil {
		fmt.Printf("Alternate: %s (r=%.3f, %s)\n",
			estimate.Alternate.Name(),
			estimate.Alternate.Correlation,
			tonal.Relationship(estimate.Best, *estimate.Alternate))
	}

	ranked := estimate.Candidates
	if !showAll && len(ranked) > 5 {
		ranked = ranked[:5]
	}

	fmt.Println()
	for i, c := range ranked {
		fmt.Printf("%2d. %-9s %+.3f\n", i+1, c.Name(), c.Correlation)
	}
}
