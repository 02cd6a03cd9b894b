package audio

import (
	"errors"
	"fmt"
)

var (
	// ErrInputNotFound is returned when the input file does not exist
	ErrInputNotFound = errors.New("input file does not exist")

	// ErrUnsupportedInput is returned when the input extension is not a supported video format
	ErrUnsupportedInput = errors.New("input file is not a supported video format")

	// ErrDirectoryCreate is returned when the output directory cannot be created
	ErrDirectoryCreate = errors.New("failed to create output directory")

	// ErrOutputMissing is returned when a just-produced output file is absent
	ErrOutputMissing = errors.New("output file does not exist")

	// ErrFileMissing is returned when a file given for standalone verification is absent
	ErrFileMissing = errors.New("file does not exist")

	// ErrEmptyFile is returned when a file to verify has zero size
	ErrEmptyFile = errors.New("file is empty")

	// ErrProbeFailed is returned when the file does not parse as audio
	ErrProbeFailed = errors.New("audio probe failed")
)

// ToolError reports a non-zero exit from the external transcoding tool,
// carrying whatever it wrote to its error stream.
type ToolError struct {
	Tool        string
	Diagnostics string
}

func (e *ToolError) Error() string {
	if e.Diagnostics == "" {
		return fmt.Sprintf("%s exited with an error", e.Tool)
	}
	return fmt.Sprintf("%s failed: %s", e.Tool, e.Diagnostics)
}
