package cmd

import (
	"fmt"

	appverify "audio-extractor/application/verify"
	"audio-extractor/domain/audio"
	"audio-extractor/infrastructure/filesystem"
	"audio-extractor/infrastructure/probe"

	"github.com/spf13/cobra"
)

var verifyFilePath string

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify that a file parses as audio",
	Long: `Probe an audio file and report its codec, duration, channel count and
sample rate. Works on any audio file, not just ones this tool produced.

Example:
  audio-extractor verify --file talk.mp3`,
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
	verifyCmd.Flags().StringVar(&verifyFilePath, "file", "", "Path to the audio file to verify (required)")
	verifyCmd.MarkFlagRequired("file")
}

func runVerify(cmd *cobra.Command, args []string) error {
	prober := probe.NewProber()
	checker := filesystem.NewChecker()

	return RunVerifyWithDependencies(prober, checker, verifyFilePath, DefaultOutput)
}

// RunVerifyWithDependencies runs the verify command with injected dependencies (for testing)
func RunVerifyWithDependencies(
	prober audio.Prober,
	checker appverify.FileChecker,
	path string,
	output OutputWriter,
) error {
	service := appverify.NewService(prober, checker)

	info, err := service.VerifyFile(path)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "File: %s\n", path)
	printProbeResult(output, info)

	size := checker.Size(path)
	fmt.Fprintf(output, "  File size: %d bytes\n", size)
	if info.Duration != nil && *info.Duration > 0 {
		bitrate := float64(size) * 8 / (*info.Duration * 1000)
		fmt.Fprintf(output, "  Estimated bitrate: %.0f kbps\n", bitrate)
	}

	fmt.Fprintln(output, "Verification successful")
	return nil
}

func printProbeResult(output OutputWriter, info *audio.ProbeResult) {
	fmt.Fprintf(output, "  Format: %s\n", info.Format)
	if info.Duration != nil {
		minutes := int(*info.Duration / 60)
		fmt.Fprintf(output, "  Duration: %d:%05.2f\n", minutes, *info.Duration-float64(minutes)*60)
	}
	if info.Channels != nil {
		fmt.Fprintf(output, "  Channels: %d (%s)\n", *info.Channels, channelDescription(*info.Channels))
	}
	if info.SampleRate != nil {
		fmt.Fprintf(output, "  Sample rate: %d Hz\n", *info.SampleRate)
	}
}

func channelDescription(channels int) string {
	switch channels {
	case 1:
		return "mono"
	case 2:
		return "stereo"
	default:
		return fmt.Sprintf("%d channels", channels)
	}
}
