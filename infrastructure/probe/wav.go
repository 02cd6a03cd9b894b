package probe

import (
	"fmt"
	"io"

	"github.com/go-audio/wav"

	"audio-extractor/domain/audio"
)

func probeWAV(r io.ReadSeeker) (*audio.ProbeResult, error) {
	d := wav.NewDecoder(r)
	if !d.IsValidFile() {
		if err := d.Err(); err != nil {
			return nil, fmt.Errorf("invalid wav stream: %w", err)
		}
		return nil, fmt.Errorf("not a valid wav file")
	}

	format := "pcm"
	if d.WavAudioFormat != 1 {
		format = fmt.Sprintf("wav (format tag %d)", d.WavAudioFormat)
	}

	result := &audio.ProbeResult{Format: format}

	if n := int(d.NumChans); n > 0 {
		result.Channels = &n
	}
	if rate := int(d.SampleRate); rate > 0 {
		result.SampleRate = &rate
	}
	if dur, err := d.Duration(); err == nil && dur > 0 {
		secs := dur.Seconds()
		result.Duration = &secs
	}

	return result, nil
}
