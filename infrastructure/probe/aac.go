package probe

import (
	"fmt"
	"io"

	"audio-extractor/domain/audio"
)

func probeAAC(r io.ReadSeeker) (*audio.ProbeResult, error) {
	var hdr [2]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, fmt.Errorf("invalid aac stream: %w", err)
	}

	// 12-bit ADTS syncword, MPEG audio, layer 0.
	if hdr[0] != 0xff || hdr[1]&0xf6 != 0xf0 {
		return nil, fmt.Errorf("no adts syncword found")
	}

	// A raw ADTS stream carries no total sample count, so duration, channel
	// and sample-rate fields stay unset.
	return &audio.ProbeResult{Format: "aac"}, nil
}
