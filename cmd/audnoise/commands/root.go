// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	inputFile  string
	outputFile string
	verbose    bool

	// Request flags, shared by generate and play
	noiseType  string
	duration   string
	sampleRate int
	format     string
	seed       uint64
	chunkSize  int
)

var rootCmd = &cobra.Command{
	Use:   "audnoise",
	Short: "Colored noise generator",
	Long: `audnoise renders white, pink, brown, blue, violet, grey and orange noise.

A request can come from a YAML or JSON file (-f) and from flags; flags win.

Example request file (rain.yaml):
  type: brown
  duration: 30m
  sample_rate: 48000
  format: wav

Examples:
  audnoise generate -t pink -d 1m -o pink.wav
  audnoise generate -f rain.yaml -o rain.wav
  audnoise play -t brown --stream
  audnoise inspect rain.wav`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initLogging)

	rootCmd.PersistentFlags().StringVarP(&inputFile, "file", "f", "", "request file (YAML or JSON)")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "output file, - for stdout")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(typesCmd)
}

func initLogging() {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})))
}

// addRequestFlags registers the render request flags on cmd.
func addRequestFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&noiseType, "type", "t", "white", "noise type")
	cmd.Flags().StringVarP(&duration, "duration", "d", "10s", "duration (Go duration or seconds)")
	cmd.Flags().IntVarP(&sampleRate, "rate", "r", 44100, "sample rate in Hz")
	cmd.Flags().StringVar(&format, "format", "wav", "container format (wav, aiff)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for reproducible output")
	cmd.Flags().IntVar(&chunkSize, "chunk", 0, "generator chunk size in samples (0 = 10 s)")
}
