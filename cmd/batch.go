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
	batchOutputDir string
	batchFormat    string
	batchQuality   int
	batchVerify    bool
)

var batchCmd = &cobra.Command{
	Use:   "batch [videos...]",
	Short: "Extract audio from several video files",
	Long: `Run the extraction pipeline over a list of video files. Each output
filename is derived from the input's file stem and the target format's
extension. One bad input never aborts the batch.

Example:
  audio-extractor batch --output-dir ./audio --format flac talk1.mp4 talk2.mkv`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().StringVar(&batchOutputDir, "output-dir", "", "Directory for extracted audio files (default from config)")
	batchCmd.Flags().StringVar(&batchFormat, "format", "", "Output audio format: mp3, wav, flac or aac (default from config or mp3)")
	batchCmd.Flags().IntVar(&batchQuality, "quality", 0, "Bitrate in kbps for lossy formats (default from config or 128)")
	batchCmd.Flags().BoolVar(&batchVerify, "verify", false, "Probe each output after extraction")
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	outputDir := batchOutputDir
	if outputDir == "" && cfg != nil {
		outputDir = cfg.Paths.OutputDirectory
	}
	if outputDir == "" {
		return fmt.Errorf("output directory is required; pass --output-dir or configure paths.output_directory")
	}

	formatName := batchFormat
	if formatName == "" && cfg != nil {
		formatName = cfg.Audio.Format
	}
	if formatName == "" {
		formatName = audio.DefaultFormat.String()
	}

	format, err := audio.ParseFormat(formatName)
	if err != nil {
		return err
	}

	quality := batchQuality
	if quality <= 0 && cfg != nil {
		quality = cfg.Audio.Quality
	}
	if quality <= 0 {
		quality = audio.DefaultQuality
	}

	extractor := ffmpeg.NewExtractor(ffmpeg.WithFFmpegPath(configuredFFmpegPath()))
	prober := probe.NewProber()
	checker := filesystem.NewChecker()

	input := appextract.BatchInput{
		InputPaths: args,
		OutputDir:  outputDir,
		Format:     format,
		Quality:    quality,
		Verify:     batchVerify,
	}

	return RunBatchWithDependencies(cmd.Context(), extractor, prober, checker, input, DefaultOutput)
}

// RunBatchWithDependencies runs the batch command with injected dependencies (for testing)
func RunBatchWithDependencies(
	ctx context.Context,
	extractor audio.Extractor,
	prober audio.Prober,
	fsys appextract.FileSystem,
	input appextract.BatchInput,
	output OutputWriter,
) error {
	fmt.Fprintf(output, "Processing %d file(s) to %s as %s...\n\n", len(input.InputPaths), input.OutputDir, input.Format)

	service := appextract.NewService(extractor, prober, fsys, output)
	items := service.ExtractBatch(ctx, input)

	failures := 0
	for _, item := range items {
		if item.Err != nil {
			failures++
			fmt.Fprintf(output, "FAIL %s: %v\n", item.InputPath, item.Err)
			continue
		}
		fmt.Fprintf(output, "ok   %s -> %s\n", item.InputPath, item.OutputPath)
	}

	fmt.Fprintf(output, "\nDone: %d succeeded, %d failed\n", len(items)-failures, failures)

	if failures > 0 {
		return fmt.Errorf("%d of %d inputs failed", failures, len(items))
	}
	return nil
}
