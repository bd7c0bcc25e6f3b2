// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ik5/audnoise"
	"github.com/ik5/audnoise/audio"
	"github.com/ik5/audnoise/formats/aiff"
	"github.com/ik5/audnoise/formats/mp3"
	"github.com/ik5/audnoise/formats/vorbis"
	"github.com/ik5/audnoise/formats/wav"
	"github.com/ik5/audnoise/internal/config"
)

// buildRequest loads the request file, if any, and applies the flags the
// user set explicitly. The container comes from --format, then the request
// file, then the output extension, then DefaultFormat.
func buildRequest(cmd *cobra.Command) (config.Request, error) {
	req := config.Default()
	req.Format = ""
	if inputFile != "" {
		var err error
		if req, err = config.Load(inputFile); err != nil {
			return config.Request{}, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("type") {
		req.Type = noiseType
	}
	if flags.Changed("duration") {
		d, err := config.ParseDuration(duration)
		if err != nil {
			return config.Request{}, err
		}
		req.Duration = d
	}
	if flags.Changed("rate") {
		req.SampleRate = sampleRate
	}
	if flags.Changed("seed") {
		s := seed
		req.Seed = &s
	}
	if flags.Changed("chunk") {
		req.ChunkSize = chunkSize
	}

	if flags.Changed("format") {
		req.Format = format
	}
	if req.Format == "" {
		req.Format = formatFromPath(outputFile)
	}
	if req.Format == "" {
		req.Format = audnoise.DefaultFormat
	}

	return req, nil
}

// formatFromPath maps a file extension to a container key.
func formatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav", ".wave":
		return "wav"
	case ".aif", ".aiff", ".aifc":
		return "aiff"
	}
	return ""
}

type decoder interface {
	Decode(r io.Reader) (audio.Source, error)
}

// decoderFor picks a decoder and a container label by file extension.
// Unknown extensions are treated as WAV.
func decoderFor(path string) (decoder, string) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".aif", ".aiff", ".aifc":
		return aiff.Decoder{}, "AIFF"
	case ".mp3":
		return mp3.Decoder{}, "MP3"
	case ".ogg", ".oga":
		return vorbis.Decoder{}, "Ogg Vorbis"
	}
	return wav.Decoder{}, "WAV"
}

// requireOutputFile checks if output file is specified
func requireOutputFile() error {
	if outputFile == "" {
		return fmt.Errorf("output file is required, use -o flag")
	}
	return nil
}

// saveToFile writes data to path, creating parent directories. A path of
// "-" writes to stdout.
func saveToFile(stdout io.Writer, path string, data []byte) error {
	if path == "-" {
		_, err := stdout.Write(data)
		return err
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	return os.WriteFile(path, data, 0644)
}

// formatBytes formats bytes to human readable format
func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
