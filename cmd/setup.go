package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"audio-extractor/domain/audio"
	"audio-extractor/infrastructure/config"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
)

// Prompter interface for interactive prompts (allows mocking in tests)
type Prompter interface {
	Input(message string, defaultValue string) (string, error)
	Select(message string, options []string, defaultValue string) (string, error)
	Confirm(message string, defaultValue bool) (bool, error)
}

// SurveyPrompter implements Prompter using the survey library
type SurveyPrompter struct{}

func (p *SurveyPrompter) Input(message string, defaultValue string) (string, error) {
	result := ""
	prompt := &survey.Input{
		Message: message,
		Default: defaultValue,
	}
	if err := survey.AskOne(prompt, &result); err != nil {
		return "", err
	}
	return result, nil
}

func (p *SurveyPrompter) Select(message string, options []string, defaultValue string) (string, error) {
	result := ""
	prompt := &survey.Select{
		Message: message,
		Options: options,
		Default: defaultValue,
	}
	if err := survey.AskOne(prompt, &result); err != nil {
		return "", err
	}
	return result, nil
}

func (p *SurveyPrompter) Confirm(message string, defaultValue bool) (bool, error) {
	result := defaultValue
	prompt := &survey.Confirm{
		Message: message,
		Default: defaultValue,
	}
	if err := survey.AskOne(prompt, &result); err != nil {
		return false, err
	}
	return result, nil
}

// DefaultPrompter is the prompter used in production
var DefaultPrompter Prompter = &SurveyPrompter{}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create configuration file interactively",
	Long: `Prompts for configuration values and creates config.yaml.

The configuration supplies defaults for the extract and batch commands:
output format, quality, verification, output directory and the ffmpeg path.`,
	RunE: runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	return RunSetupWithPrompter(DefaultPrompter, "config/config.yaml")
}

// RunSetupWithPrompter runs the setup with a given prompter (for testing)
func RunSetupWithPrompter(prompter Prompter, configPath string) error {
	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		overwrite, err := prompter.Confirm("config.yaml already exists. Overwrite?", false)
		if err != nil {
			return fmt.Errorf("prompt cancelled")
		}
		if !overwrite {
			fmt.Println("Setup cancelled.")
			return nil
		}
	}

	fmt.Println("Welcome to audio-extractor setup!")
	fmt.Println()

	cfg := &config.Config{}

	formats := make([]string, 0, len(audio.SupportedFormats()))
	for _, f := range audio.SupportedFormats() {
		formats = append(formats, f.String())
	}

	format, err := prompter.Select("Default output format?", formats, audio.DefaultFormat.String())
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	cfg.Audio.Format = format

	qualityStr, err := prompter.Input("Default quality for lossy formats (kbps)?", strconv.Itoa(audio.DefaultQuality))
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	quality, err := strconv.Atoi(qualityStr)
	if err != nil || quality <= 0 {
		return fmt.Errorf("quality must be a positive integer, got %q", qualityStr)
	}
	cfg.Audio.Quality = quality

	verify, err := prompter.Confirm("Verify outputs after extraction by default?", false)
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	cfg.Audio.Verify = verify

	outputDir, err := prompter.Input("Default output directory for batch runs?", "audio")
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	cfg.Paths.OutputDirectory = outputDir

	ffmpegPath, err := prompter.Input("Path to the ffmpeg executable?", "ffmpeg")
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	cfg.FFmpeg.Path = ffmpegPath

	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Save configuration
	if err := config.Save(cfg, configPath); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	fmt.Println()
	fmt.Printf("Configuration saved to %s\n", configPath)
	return nil
}
