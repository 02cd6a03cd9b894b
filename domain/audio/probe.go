package audio

import "io"

// ProbeResult describes what a prober could read from an audio file.
// Fields other than Format are nil when the codec does not expose them.
type ProbeResult struct {
	Format     string
	Duration   *float64 // seconds
	Channels   *int
	SampleRate *int // Hz
}

// Prober inspects an open audio stream and reports its metadata.
// The hint is the file extension without the dot, lowercased.
type Prober interface {
	Probe(r io.ReadSeeker, hint string) (*ProbeResult, error)
}
