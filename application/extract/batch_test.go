package extract

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"audio-extractor/domain/audio"
)

func TestService_ExtractBatch_IsolatesFailures(t *testing.T) {
	fsys := &fakeFileSystem{files: map[string]int64{
		"/videos/a.mp4": 100,
		"/videos/b.txt": 100, // unsupported extension
		"/videos/c.mkv": 100,
	}}
	extractor := &fakeExtractor{}
	service := NewService(extractor, &fakeProber{}, fsys, &bytes.Buffer{})

	items := service.ExtractBatch(context.Background(), BatchInput{
		InputPaths: []string{"/videos/a.mp4", "/videos/b.txt", "/videos/c.mkv"},
		OutputDir:  "/audio",
		Format:     audio.FormatWAV,
		Quality:    128,
	})

	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}

	// Order is preserved and only the bad input fails.
	if items[0].Err != nil || items[0].OutputPath != filepath.Join("/audio", "a.wav") {
		t.Errorf("item 0 = %+v, want /audio/a.wav", items[0])
	}
	if items[1].Err == nil || !errors.Is(items[1].Err, audio.ErrUnsupportedInput) {
		t.Errorf("item 1 error = %v, want ErrUnsupportedInput", items[1].Err)
	}
	if items[2].Err != nil || items[2].OutputPath != filepath.Join("/audio", "c.wav") {
		t.Errorf("item 2 = %+v, want /audio/c.wav", items[2])
	}

	if len(extractor.calls) != 2 {
		t.Errorf("extractor was invoked %d times, want 2", len(extractor.calls))
	}
}

func TestService_ExtractBatch_MissingInput(t *testing.T) {
	fsys := &fakeFileSystem{files: map[string]int64{"/videos/a.mp4": 100}}
	service := NewService(&fakeExtractor{}, &fakeProber{}, fsys, &bytes.Buffer{})

	items := service.ExtractBatch(context.Background(), BatchInput{
		InputPaths: []string{"/videos/missing.mp4", "/videos/a.mp4"},
		OutputDir:  "/audio",
		Format:     audio.FormatMP3,
		Quality:    192,
	})

	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if !errors.Is(items[0].Err, audio.ErrInputNotFound) {
		t.Errorf("item 0 error = %v, want ErrInputNotFound", items[0].Err)
	}
	if items[1].Err != nil {
		t.Errorf("item 1 error = %v, want success", items[1].Err)
	}
}

func TestService_ExtractBatch_Empty(t *testing.T) {
	service := NewService(&fakeExtractor{}, &fakeProber{}, &fakeFileSystem{}, &bytes.Buffer{})

	items := service.ExtractBatch(context.Background(), BatchInput{
		OutputDir: "/audio",
		Format:    audio.FormatMP3,
	})
	if len(items) != 0 {
		t.Errorf("got %d items for empty input, want 0", len(items))
	}
}

func TestService_ExtractBatch_DerivedNames(t *testing.T) {
	fsys := &fakeFileSystem{files: map[string]int64{"/v/recording.2026-08-30.webm": 100}}
	extractor := &fakeExtractor{}
	service := NewService(extractor, &fakeProber{}, fsys, &bytes.Buffer{})

	items := service.ExtractBatch(context.Background(), BatchInput{
		InputPaths: []string{"/v/recording.2026-08-30.webm"},
		OutputDir:  "/audio",
		Format:     audio.FormatFLAC,
		Quality:    128,
	})

	want := filepath.Join("/audio", "recording.2026-08-30.flac")
	if items[0].OutputPath != want {
		t.Errorf("OutputPath = %q, want %q", items[0].OutputPath, want)
	}
}
