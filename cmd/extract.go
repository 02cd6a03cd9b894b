package cmd

import (
	"context"
	"fmt"

	appextract "audio-extractor/application/extract"
	"audio-extractor/domain/audio"
	"audio-extractor/infrastructure/ffmpeg"
	"audio-extractor/infrastructure/filesystem"
	"audio-extractor/infrastructure/probe"

	"github.com/spf13/cobra"
)

var (
	extractInputPath  string
	extractOutputPath string
	extractFormat     string
	extractQuality    int
	extractVerify     bool
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract the audio track from a video file",
	Long: `Extract the audio track from a video file into a target audio format.

Supported input containers: mp4, avi, mkv, mov, wmv, flv, webm.
Quality applies to the lossy formats (mp3, aac) only.

Example:
  audio-extractor extract --input talk.mp4 --output talk.mp3
  audio-extractor extract --input talk.mkv --output talk.flac --format flac --verify`,
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().StringVar(&extractInputPath, "input", "", "Path to source video file (required)")
	extractCmd.Flags().StringVar(&extractOutputPath, "output", "", "Path for the extracted audio file (required)")
	extractCmd.Flags().StringVar(&extractFormat, "format", "", "Output audio format: mp3, wav, flac or aac (default from config or mp3)")
	extractCmd.Flags().IntVar(&extractQuality, "quality", 0, "Bitrate in kbps for lossy formats (default from config or 128)")
	extractCmd.Flags().BoolVar(&extractVerify, "verify", false, "Probe the output after extraction")
	extractCmd.MarkFlagRequired("input")
	extractCmd.MarkFlagRequired("output")
}

func runExtract(cmd *cobra.Command, args []string) error {
	req, err := buildExtractionRequest(cmd)
	if err != nil {
		return err
	}

	extractor := ffmpeg.NewExtractor(ffmpeg.WithFFmpegPath(configuredFFmpegPath()))
	prober := probe.NewProber()
	checker := filesystem.NewChecker()

	return RunExtractWithDependencies(cmd.Context(), extractor, prober, checker, req, DefaultOutput)
}

// buildExtractionRequest resolves flags against config defaults.
// Flags beat config beats compiled defaults.
func buildExtractionRequest(cmd *cobra.Command) (*audio.ExtractionRequest, error) {
	cfg := GetConfig()

	formatName := extractFormat
	if formatName == "" && cfg != nil {
		formatName = cfg.Audio.Format
	}
	if formatName == "" {
		formatName = audio.DefaultFormat.String()
	}

	format, err := audio.ParseFormat(formatName)
	if err != nil {
		return nil, err
	}

	quality := extractQuality
	if quality <= 0 && cfg != nil {
		quality = cfg.Audio.Quality
	}

	verify := extractVerify
	if !cmd.Flags().Changed("verify") && cfg != nil {
		verify = cfg.Audio.Verify
	}

	return audio.NewExtractionRequest(extractInputPath, extractOutputPath, format, quality, verify)
}

func configuredFFmpegPath() string {
	if cfg := GetConfig(); cfg != nil {
		return cfg.FFmpeg.Path
	}
	return ""
}

// RunExtractWithDependencies runs the extract command with injected dependencies (for testing)
func RunExtractWithDependencies(
	ctx context.Context,
	extractor audio.Extractor,
	prober audio.Prober,
	fsys appextract.FileSystem,
	req *audio.ExtractionRequest,
	output OutputWriter,
) error {
	fmt.Fprintf(output, "Input: %s\n", req.InputPath)
	fmt.Fprintf(output, "Output: %s\n", req.OutputPath)
	fmt.Fprintf(output, "Format: %s\n", req.Format)
	if req.Format.Lossy() {
		fmt.Fprintf(output, "Quality: %d kbps\n", req.Quality)
	}
	if req.Verify {
		fmt.Fprintln(output, "Verification: enabled")
	}
	fmt.Fprintln(output)

	service := appextract.NewService(extractor, prober, fsys, output)

	result, err := service.Extract(ctx, req)
	if err != nil {
		return err
	}

	for _, w := range result.Warnings {
		fmt.Fprintf(output, "warning: %s\n", w)
	}
	if result.Probe != nil {
		printProbeResult(output, result.Probe)
	}

	fmt.Fprintf(output, "Audio extraction completed successfully: %s\n", result.OutputPath)
	return nil
}
