package audio

import (
	"fmt"
	"strings"
)

// Format identifies a target audio container/codec.
type Format int

const (
	FormatMP3 Format = iota
	FormatWAV
	FormatFLAC
	FormatAAC
)

// DefaultFormat is used when neither flag nor config specifies a format.
const DefaultFormat = FormatMP3

// SupportedFormats returns every audio format the extractor can produce.
func SupportedFormats() []Format {
	return []Format{FormatMP3, FormatWAV, FormatFLAC, FormatAAC}
}

// ParseFormat parses a format name case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "mp3":
		return FormatMP3, nil
	case "wav":
		return FormatWAV, nil
	case "flac":
		return FormatFLAC, nil
	case "aac":
		return FormatAAC, nil
	default:
		return 0, fmt.Errorf("unsupported audio format %q (supported: mp3, wav, flac, aac)", s)
	}
}

func (f Format) String() string {
	switch f {
	case FormatMP3:
		return "mp3"
	case FormatWAV:
		return "wav"
	case FormatFLAC:
		return "flac"
	case FormatAAC:
		return "aac"
	default:
		return "unknown"
	}
}

// Extension returns the output filename extension including the dot.
func (f Format) Extension() string {
	return "." + f.String()
}

// Lossy reports whether the format uses a bitrate-controlled codec.
// Quality settings only apply to lossy formats.
func (f Format) Lossy() bool {
	return f == FormatMP3 || f == FormatAAC
}
