// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ik5/audnoise"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Render noise into a WAV or AIFF file",
	Long: `Render noise into a WAV or AIFF file.

The output is peak normalized mono 16-bit PCM. The container follows --format,
the request file, or the output file extension, in that order.

Examples:
  audnoise generate -t pink -d 90s -o pink.wav
  audnoise generate -t orange -d 5m -r 48000 -o orange.aiff
  audnoise generate -f request.yaml -o - > out.wav`,
	RunE: runGenerate,
}

func init() {
	addRequestFlags(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	if err := requireOutputFile(); err != nil {
		return err
	}

	creq, err := buildRequest(cmd)
	if err != nil {
		return err
	}
	req, err := creq.Build()
	if err != nil {
		return err
	}

	log := slog.With("request_id", uuid.NewString())
	log.Debug("generating",
		"type", creq.Type,
		"duration", creq.Duration,
		"sample_rate", creq.SampleRate,
		"format", creq.Format,
		"seeded", creq.Seed != nil,
	)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	bar := newProgressBar(cmd.ErrOrStderr(), 30)
	req.Progress = bar.Update

	start := time.Now()
	data, err := audnoise.Generate(ctx, req)
	bar.Done()
	if err != nil {
		log.Debug("generation failed", "error", err)
		return fmt.Errorf("generate: %w", err)
	}

	if err := saveToFile(cmd.OutOrStdout(), outputFile, data); err != nil {
		return fmt.Errorf("failed to save output: %w", err)
	}

	log.Debug("done", "bytes", len(data), "elapsed", time.Since(start))
	printSuccess(cmd.ErrOrStderr(), "%s noise, %v at %d Hz, %s written to %s",
		creq.Type, creq.Duration, creq.SampleRate, formatBytes(int64(len(data))), outputFile)

	return nil
}
