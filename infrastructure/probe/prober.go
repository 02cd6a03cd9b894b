package probe

import (
	"fmt"
	"io"
	"strings"

	"audio-extractor/domain/audio"
)

// Prober implements audio.Prober over pure-Go decoders, selecting one by
// the caller's extension hint. Each decoder reports only the metadata its
// container actually exposes.
type Prober struct{}

// NewProber creates a new decoder-backed prober
func NewProber() *Prober {
	return &Prober{}
}

// Probe implements audio.Prober
func (p *Prober) Probe(r io.ReadSeeker, hint string) (*audio.ProbeResult, error) {
	switch strings.ToLower(hint) {
	case "wav", "wave":
		return probeWAV(r)
	case "flac":
		return probeFLAC(r)
	case "mp3":
		return probeMP3(r)
	case "aac":
		return probeAAC(r)
	default:
		return nil, fmt.Errorf("no prober for %q files", hint)
	}
}

// Ensure Prober implements audio.Prober
var _ audio.Prober = (*Prober)(nil)
