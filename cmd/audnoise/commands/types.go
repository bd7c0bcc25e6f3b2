// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ik5/audnoise/noise"
)

var typeDescriptions = map[noise.Type]string{
	noise.White:  "flat spectrum",
	noise.Pink:   "-3 dB/octave, equal energy per octave",
	noise.Brown:  "-6 dB/octave, deep rumble",
	noise.Blue:   "+3 dB/octave, bright hiss",
	noise.Violet: "+6 dB/octave, very bright hiss",
	noise.Grey:   "rough equal-loudness curve",
	noise.Orange: "heavily smoothed, warm low end",
}

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the supported noise types",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		fields := make([][2]string, 0, len(noise.Types()))
		for _, t := range noise.Types() {
			fields = append(fields, [2]string{t.String(), typeDescriptions[t]})
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderFields("noise types", fields))
		return nil
	},
}
