package verify

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"audio-extractor/domain/audio"
	"audio-extractor/infrastructure/filesystem"
)

// fakeProber returns a canned result without looking at the stream
type fakeProber struct {
	result   *audio.ProbeResult
	err      error
	lastHint string
}

func (p *fakeProber) Probe(r io.ReadSeeker, hint string) (*audio.ProbeResult, error) {
	p.lastHint = hint
	if p.err != nil {
		return nil, p.err
	}
	return p.result, nil
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestService_VerifyFile_Missing(t *testing.T) {
	service := NewService(&fakeProber{}, filesystem.NewChecker())

	_, err := service.VerifyFile(filepath.Join(t.TempDir(), "missing.mp3"))
	if !errors.Is(err, audio.ErrFileMissing) {
		t.Errorf("VerifyFile() error = %v, want ErrFileMissing", err)
	}
}

func TestService_VerifyOutput_Missing(t *testing.T) {
	service := NewService(&fakeProber{}, filesystem.NewChecker())

	_, err := service.VerifyOutput(filepath.Join(t.TempDir(), "missing.mp3"))
	if !errors.Is(err, audio.ErrOutputMissing) {
		t.Errorf("VerifyOutput() error = %v, want ErrOutputMissing", err)
	}
}

func TestService_VerifyFile_Empty(t *testing.T) {
	tests := []string{"empty.mp3", "empty.wav", "empty.unknown"}

	for _, name := range tests {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), name, "")
			service := NewService(&fakeProber{}, filesystem.NewChecker())

			_, err := service.VerifyFile(path)
			if !errors.Is(err, audio.ErrEmptyFile) {
				t.Errorf("VerifyFile(%q) error = %v, want ErrEmptyFile", name, err)
			}
		})
	}
}

func TestService_VerifyFile_ProbeFailure(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.mp3", "not really audio")
	prober := &fakeProber{err: errors.New("no mp3 frames found")}
	service := NewService(prober, filesystem.NewChecker())

	_, err := service.VerifyFile(path)
	if !errors.Is(err, audio.ErrProbeFailed) {
		t.Errorf("VerifyFile() error = %v, want ErrProbeFailed", err)
	}
}

func TestService_VerifyFile_Success(t *testing.T) {
	path := writeFile(t, t.TempDir(), "talk.FLAC", "flac-ish bytes")

	duration := 61.5
	channels := 2
	rate := 44100
	prober := &fakeProber{
		result: &audio.ProbeResult{
			Format:     "flac",
			Duration:   &duration,
			Channels:   &channels,
			SampleRate: &rate,
		},
	}
	service := NewService(prober, filesystem.NewChecker())

	result, err := service.VerifyFile(path)
	if err != nil {
		t.Fatalf("VerifyFile() unexpected error: %v", err)
	}

	if result.Format != "flac" {
		t.Errorf("Format = %q, want %q", result.Format, "flac")
	}
	// The hint is the lowercased extension without the dot.
	if prober.lastHint != "flac" {
		t.Errorf("hint = %q, want %q", prober.lastHint, "flac")
	}
}
