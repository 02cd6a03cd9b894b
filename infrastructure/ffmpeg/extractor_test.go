package ffmpeg

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"audio-extractor/domain/audio"
)

// fakeRunner simulates the external tool without running anything
type fakeRunner struct {
	available bool
	runErr    error
	stderr    string
	runCalls  [][]string
}

func (r *fakeRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	r.runCalls = append(r.runCalls, append([]string{name}, args...))
	return r.stderr, r.runErr
}

func (r *fakeRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	if !r.available {
		return nil, errors.New("executable file not found in $PATH")
	}
	return []byte("ffmpeg version 7.0"), nil
}

func newRequest(t *testing.T, format audio.Format, quality int, outputPath string) *audio.ExtractionRequest {
	t.Helper()
	req, err := audio.NewExtractionRequest("/videos/talk.mp4", outputPath, format, quality, false)
	if err != nil {
		t.Fatalf("NewExtractionRequest() unexpected error: %v", err)
	}
	return req
}

func TestExtractor_Extract_ArgumentSets(t *testing.T) {
	tests := []struct {
		name     string
		format   audio.Format
		quality  int
		wantArgs []string
	}{
		{
			name:     "mp3 uses lossy codec with configured bitrate",
			format:   audio.FormatMP3,
			quality:  192,
			wantArgs: []string{"-acodec", "libmp3lame", "-b:a", "192k"},
		},
		{
			name:     "wav pins pcm at 44.1kHz and ignores quality",
			format:   audio.FormatWAV,
			quality:  320,
			wantArgs: []string{"-acodec", "pcm_s16le", "-ar", "44100"},
		},
		{
			name:     "flac pins compression level and ignores quality",
			format:   audio.FormatFLAC,
			quality:  320,
			wantArgs: []string{"-acodec", "flac", "-compression_level", "5"},
		},
		{
			name:     "aac uses lossy codec with configured bitrate",
			format:   audio.FormatAAC,
			quality:  96,
			wantArgs: []string{"-acodec", "aac", "-b:a", "96k"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &fakeRunner{available: true}
			extractor := NewExtractor(WithCommandRunner(runner))
			req := newRequest(t, tt.format, tt.quality, "/audio/out"+tt.format.Extension())

			if err := extractor.Extract(context.Background(), req); err != nil {
				t.Fatalf("Extract() unexpected error: %v", err)
			}
			if len(runner.runCalls) != 1 {
				t.Fatalf("expected 1 ffmpeg invocation, got %d", len(runner.runCalls))
			}

			call := strings.Join(runner.runCalls[0], " ")
			want := strings.Join(tt.wantArgs, " ")
			if !strings.Contains(call, want) {
				t.Errorf("ffmpeg args %q do not contain %q", call, want)
			}
			for _, flag := range []string{"-vn", "-y", req.InputPath, req.OutputPath} {
				if !strings.Contains(call, flag) {
					t.Errorf("ffmpeg args %q missing %q", call, flag)
				}
			}
		})
	}
}

func TestExtractor_Extract_ToolFailure(t *testing.T) {
	runner := &fakeRunner{
		available: true,
		runErr:    errors.New("exit status 1"),
		stderr:    "Unknown encoder 'libmp3lame'\n",
	}
	extractor := NewExtractor(WithCommandRunner(runner))
	req := newRequest(t, audio.FormatMP3, 128, "/audio/out.mp3")

	err := extractor.Extract(context.Background(), req)
	if err == nil {
		t.Fatal("Extract() expected error, got nil")
	}

	var toolErr *audio.ToolError
	if !errors.As(err, &toolErr) {
		t.Fatalf("Extract() error = %T, want *audio.ToolError", err)
	}
	if toolErr.Diagnostics != "Unknown encoder 'libmp3lame'" {
		t.Errorf("ToolError.Diagnostics = %q, want trimmed stderr", toolErr.Diagnostics)
	}
}

func TestExtractor_Extract_PlaceholderWhenUnavailable(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "out.mp3")
	fixed := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	runner := &fakeRunner{available: false}
	extractor := NewExtractor(
		WithCommandRunner(runner),
		WithClock(func() time.Time { return fixed }),
	)
	req := newRequest(t, audio.FormatMP3, 192, outputPath)

	if err := extractor.Extract(context.Background(), req); err != nil {
		t.Fatalf("Extract() in degraded mode returned error: %v", err)
	}
	if len(runner.runCalls) != 0 {
		t.Errorf("expected no ffmpeg invocation, got %d", len(runner.runCalls))
	}

	data, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("placeholder file not written: %v", err)
	}
	content := string(data)
	if len(content) == 0 {
		t.Fatal("placeholder file is empty")
	}

	for _, want := range []string{
		"input: /videos/talk.mp4",
		"format: mp3",
		"quality: 192 kbps",
		"created: 2026-08-30T12:00:00Z",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("placeholder content missing %q:\n%s", want, content)
		}
	}
}

func TestExtractor_Available(t *testing.T) {
	extractor := NewExtractor(WithCommandRunner(&fakeRunner{available: true}))
	if !extractor.Available(context.Background()) {
		t.Error("Available() = false with a responding binary")
	}

	extractor = NewExtractor(WithCommandRunner(&fakeRunner{available: false}))
	if extractor.Available(context.Background()) {
		t.Error("Available() = true with a missing binary")
	}
}

func TestWithFFmpegPath_EmptyKeepsDefault(t *testing.T) {
	extractor := NewExtractor(WithFFmpegPath(""))
	if extractor.ffmpegPath != "ffmpeg" {
		t.Errorf("ffmpegPath = %q, want default", extractor.ffmpegPath)
	}

	extractor = NewExtractor(WithFFmpegPath("/opt/ffmpeg/bin/ffmpeg"))
	if extractor.ffmpegPath != "/opt/ffmpeg/bin/ffmpeg" {
		t.Errorf("ffmpegPath = %q, want override", extractor.ffmpegPath)
	}
}
