package ffmpeg

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"audio-extractor/domain/audio"
)

// Extractor implements audio.Extractor using ffmpeg. When the ffmpeg binary
// is not reachable it degrades to writing a plain-text placeholder so the
// tool stays usable without the dependency installed.
type Extractor struct {
	ffmpegPath string
	runner     CommandRunner
	now        func() time.Time
}

// ExtractorOption is a functional option for configuring Extractor
type ExtractorOption func(*Extractor)

// WithFFmpegPath sets a custom ffmpeg executable path
func WithFFmpegPath(path string) ExtractorOption {
	return func(e *Extractor) {
		if path != "" {
			e.ffmpegPath = path
		}
	}
}

// WithCommandRunner sets a custom command runner (for testing)
func WithCommandRunner(runner CommandRunner) ExtractorOption {
	return func(e *Extractor) {
		e.runner = runner
	}
}

// WithClock sets the time source used for placeholder timestamps (for testing)
func WithClock(now func() time.Time) ExtractorOption {
	return func(e *Extractor) {
		e.now = now
	}
}

// NewExtractor creates a new FFmpeg-based audio extractor
func NewExtractor(opts ...ExtractorOption) *Extractor {
	e := &Extractor{
		ffmpegPath: "ffmpeg",
		runner:     &ExecCommandRunner{},
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Extract implements audio.Extractor
func (e *Extractor) Extract(ctx context.Context, req *audio.ExtractionRequest) error {
	if !e.Available(ctx) {
		return e.writePlaceholder(req)
	}

	stderr, err := e.runner.Run(ctx, e.ffmpegPath, buildArgs(req)...)
	if err != nil {
		return &audio.ToolError{Tool: "ffmpeg", Diagnostics: strings.TrimSpace(stderr)}
	}

	return nil
}

// Available reports whether the ffmpeg binary responds to a trivial invocation
func (e *Extractor) Available(ctx context.Context) bool {
	_, err := e.runner.Output(ctx, e.ffmpegPath, "-version")
	return err == nil
}

// buildArgs constructs the codec-specific argument set. Video streams are
// always stripped and an existing output file is always overwritten.
func buildArgs(req *audio.ExtractionRequest) []string {
	args := []string{
		"-i", req.InputPath,
		"-vn", // No video
	}

	switch req.Format {
	case audio.FormatMP3:
		args = append(args, "-acodec", "libmp3lame", "-b:a", fmt.Sprintf("%dk", req.Quality))
	case audio.FormatWAV:
		// PCM at a fixed 44.1kHz; quality does not apply
		args = append(args, "-acodec", "pcm_s16le", "-ar", "44100")
	case audio.FormatFLAC:
		// Lossless; quality does not apply
		args = append(args, "-acodec", "flac", "-compression_level", "5")
	case audio.FormatAAC:
		args = append(args, "-acodec", "aac", "-b:a", fmt.Sprintf("%dk", req.Quality))
	}

	return append(args, "-y", req.OutputPath)
}

// writePlaceholder writes a deterministic diagnostic payload to the output
// path. This is an explicit degraded mode, not an error.
func (e *Extractor) writePlaceholder(req *audio.ExtractionRequest) error {
	var b strings.Builder
	fmt.Fprintln(&b, "audio-extractor placeholder output")
	fmt.Fprintf(&b, "input: %s\n", req.InputPath)
	fmt.Fprintf(&b, "format: %s\n", req.Format)
	fmt.Fprintf(&b, "quality: %d kbps\n", req.Quality)
	fmt.Fprintf(&b, "created: %s\n", e.now().Format(time.RFC3339))
	fmt.Fprintln(&b, "ffmpeg was not available; no audio was transcoded")

	if err := os.WriteFile(req.OutputPath, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("failed to write placeholder output: %w", err)
	}

	return nil
}

// Ensure Extractor implements audio.Extractor
var _ audio.Extractor = (*Extractor)(nil)
