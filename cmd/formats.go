package cmd

import (
	"fmt"
	"strings"

	"audio-extractor/domain/audio"

	"github.com/spf13/cobra"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List supported input and output formats",
	Run: func(cmd *cobra.Command, args []string) {
		RunFormats(DefaultOutput)
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}

// RunFormats prints the supported video inputs and audio outputs
func RunFormats(output OutputWriter) {
	fmt.Fprintf(output, "Video input formats: %s\n", strings.Join(audio.SupportedVideoExtensions(), ", "))

	names := make([]string, 0, len(audio.SupportedFormats()))
	for _, f := range audio.SupportedFormats() {
		name := f.String()
		if f.Lossy() {
			name += " (lossy)"
		} else {
			name += " (lossless)"
		}
		names = append(names, name)
	}
	fmt.Fprintf(output, "Audio output formats: %s\n", strings.Join(names, ", "))
}
