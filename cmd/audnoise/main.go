// SPDX-License-Identifier: EPL-2.0

// Command audnoise renders, plays and inspects colored noise.
//
// Usage:
//
//	audnoise [flags] <command> [args]
//
// Commands:
//
//	generate  - render noise into a WAV or AIFF file
//	play      - play generated noise, an endless stream, or an audio file
//	inspect   - print the format of a WAV, AIFF, MP3 or Ogg Vorbis file
//	types     - list the supported noise types
package main

import (
	"fmt"
	"os"

	"github.com/ik5/audnoise/cmd/audnoise/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
