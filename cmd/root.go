package cmd

import (
	"fmt"
	"io"
	"os"

	"audio-extractor/infrastructure/config"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

// OutputWriter allows capturing output in tests
type OutputWriter interface {
	io.Writer
}

// DefaultOutput is the writer used by commands in production
var DefaultOutput OutputWriter = os.Stdout

var rootCmd = &cobra.Command{
	Use:   "audio-extractor",
	Short: "Extract audio tracks from video files",
	Long: `audio-extractor pulls the audio track out of a video file using ffmpeg:

  - Extract to mp3, wav, flac or aac
  - Verify produced files with pure-Go audio decoders
  - Process many videos in one batch

Example:
  audio-extractor extract --input recording.mp4 --output talk.mp3 --verify`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config/config.yaml)")
}

func initConfig() {
	if cfgFile == "" {
		cfgFile = "config/config.yaml"
	}

	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		// The config file is optional; flags carry their own defaults.
		cfg = nil
	}
}

// GetConfig returns the loaded configuration, or nil if none was found
func GetConfig() *config.Config {
	return cfg
}
