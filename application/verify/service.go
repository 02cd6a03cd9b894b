package verify

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"audio-extractor/domain/audio"
)

// FileChecker provides the existence and size checks verification needs
type FileChecker interface {
	Exists(path string) bool
	Size(path string) int64
}

// Service verifies that a produced file parses as audio and reports its
// container/codec metadata.
type Service struct {
	prober  audio.Prober
	checker FileChecker
}

// NewService creates a new verification service
func NewService(prober audio.Prober, checker FileChecker) *Service {
	return &Service{
		prober:  prober,
		checker: checker,
	}
}

// VerifyOutput probes a just-produced extraction output
func (s *Service) VerifyOutput(path string) (*audio.ProbeResult, error) {
	return s.verify(path, audio.ErrOutputMissing)
}

// VerifyFile probes an arbitrary audio file
func (s *Service) VerifyFile(path string) (*audio.ProbeResult, error) {
	return s.verify(path, audio.ErrFileMissing)
}

func (s *Service) verify(path string, missing error) (*audio.ProbeResult, error) {
	if !s.checker.Exists(path) {
		return nil, fmt.Errorf("%w: %s", missing, path)
	}
	if s.checker.Size(path) == 0 {
		return nil, fmt.Errorf("%w: %s", audio.ErrEmptyFile, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	hint := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	result, err := s.prober.Probe(f, hint)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", audio.ErrProbeFailed, err)
	}

	return result, nil
}
