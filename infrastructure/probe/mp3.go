package probe

import (
	"fmt"
	"io"
	"time"

	"github.com/tcolgate/mp3"

	"audio-extractor/domain/audio"
)

func probeMP3(r io.ReadSeeker) (*audio.ProbeResult, error) {
	d := mp3.NewDecoder(r)

	var (
		frame    mp3.Frame
		skipped  int
		frames   int
		total    time.Duration
		channels int
		rate     int
	)

	for {
		if err := d.Decode(&frame, &skipped); err != nil {
			if err == io.EOF {
				break
			}
			if frames == 0 {
				return nil, fmt.Errorf("invalid mp3 stream: %w", err)
			}
			// Trailing garbage after valid frames; keep what we decoded.
			break
		}

		if frames == 0 {
			hdr := frame.Header()
			if sr := int(hdr.SampleRate()); sr > 0 {
				rate = sr
			}
			if hdr.ChannelMode() == mp3.SingleChannel {
				channels = 1
			} else {
				channels = 2
			}
		}

		total += frame.Duration()
		frames++
	}

	if frames == 0 {
		return nil, fmt.Errorf("no mp3 frames found")
	}

	result := &audio.ProbeResult{Format: "mp3"}

	if channels > 0 {
		result.Channels = &channels
	}
	if rate > 0 {
		result.SampleRate = &rate
	}
	if total > 0 {
		secs := total.Seconds()
		result.Duration = &secs
	}

	return result, nil
}
