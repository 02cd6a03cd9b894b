package filesystem

import (
	"fmt"
	"os"
	"path/filepath"

	"audio-extractor/domain/audio"
)

// Checker implements the filesystem operations the extraction pipeline
// consumes: existence and size checks plus output directory preparation.
type Checker struct{}

// NewChecker creates a new filesystem checker
func NewChecker() *Checker {
	return &Checker{}
}

// Exists returns true if the file exists
func (c *Checker) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Size returns the file size in bytes, or 0 if the file cannot be read
func (c *Checker) Size(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.Size()
}

// EnsureParent creates all missing ancestor directories of path
func (c *Checker) EnsureParent(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: %w", audio.ErrDirectoryCreate, err)
	}
	return nil
}
