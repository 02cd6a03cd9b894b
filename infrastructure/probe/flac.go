package probe

import (
	"fmt"
	"io"

	"github.com/mewkiz/flac"

	"audio-extractor/domain/audio"
)

func probeFLAC(r io.ReadSeeker) (*audio.ProbeResult, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, fmt.Errorf("invalid flac stream: %w", err)
	}

	info := stream.Info
	result := &audio.ProbeResult{Format: "flac"}

	if n := int(info.NChannels); n > 0 {
		result.Channels = &n
	}
	if rate := int(info.SampleRate); rate > 0 {
		result.SampleRate = &rate
	}
	// Duration is sample count over sample rate; the header may omit the
	// sample count, in which case the field stays unset.
	if info.NSamples > 0 && info.SampleRate > 0 {
		secs := float64(info.NSamples) / float64(info.SampleRate)
		result.Duration = &secs
	}

	return result, nil
}
