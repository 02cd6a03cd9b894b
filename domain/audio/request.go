package audio

import (
	"fmt"
	"path/filepath"
	"strings"
)

// DefaultQuality is the default bitrate in kbps for lossy formats.
const DefaultQuality = 128

// ExtractionRequest describes a single audio extraction.
// It is immutable once constructed.
type ExtractionRequest struct {
	InputPath  string
	OutputPath string
	Format     Format
	Quality    int
	Verify     bool
}

// NewExtractionRequest creates a new ExtractionRequest with validation
func NewExtractionRequest(inputPath, outputPath string, format Format, quality int, verify bool) (*ExtractionRequest, error) {
	if inputPath == "" {
		return nil, fmt.Errorf("input path is required")
	}
	if outputPath == "" {
		return nil, fmt.Errorf("output path is required")
	}
	if quality <= 0 {
		quality = DefaultQuality
	}

	return &ExtractionRequest{
		InputPath:  inputPath,
		OutputPath: outputPath,
		Format:     format,
		Quality:    quality,
		Verify:     verify,
	}, nil
}

// SupportedVideoExtensions returns the video container extensions accepted as input.
func SupportedVideoExtensions() []string {
	return []string{"mp4", "avi", "mkv", "mov", "wmv", "flv", "webm"}
}

// IsVideoFile reports whether path carries a supported video extension.
// Classification is by extension only, never by content.
func IsVideoFile(path string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "mp4", "avi", "mkv", "mov", "wmv", "flv", "webm":
		return true
	}
	return false
}

// OutputName derives an output filename from the input's file stem and the
// target format's extension. Used by batch processing.
func OutputName(inputPath string, format Format) string {
	base := filepath.Base(inputPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return stem + format.Extension()
}
