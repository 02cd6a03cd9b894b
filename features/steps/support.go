//go:build integration

package steps

import (
	"context"
	"io"
	"os"

	"audio-extractor/domain/audio"
)

// mockExtractor records calls and writes fake output bytes so the
// verification path has a real file to open
type mockExtractor struct {
	calls []*audio.ExtractionRequest
	err   error
}

func (m *mockExtractor) Extract(ctx context.Context, req *audio.ExtractionRequest) error {
	if m.err != nil {
		return m.err
	}
	m.calls = append(m.calls, req)
	return os.WriteFile(req.OutputPath, []byte("fake audio data"), 0644)
}

// mockProber returns a canned result or error without reading the stream
type mockProber struct {
	result *audio.ProbeResult
	err    error
}

func (m *mockProber) Probe(r io.ReadSeeker, hint string) (*audio.ProbeResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.result != nil {
		return m.result, nil
	}
	return &audio.ProbeResult{Format: "mp3"}, nil
}
