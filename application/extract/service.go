package extract

import (
	"context"
	"fmt"
	"io"

	"audio-extractor/application/verify"
	"audio-extractor/domain/audio"
)

// FileSystem groups the filesystem operations the pipeline needs
type FileSystem interface {
	Exists(path string) bool
	Size(path string) int64
	EnsureParent(path string) error
}

// Result contains the result of an extraction run. Warnings collect
// advisory-verification failures; they never fail the pipeline.
type Result struct {
	OutputPath string
	Probe      *audio.ProbeResult // nil unless verification ran and succeeded
	Warnings   []string
}

// Service coordinates the extraction pipeline:
// validate, prepare directory, extract, optionally verify.
type Service struct {
	extractor audio.Extractor
	verifier  *verify.Service
	fsys      FileSystem
	output    io.Writer
}

// NewService creates a new extraction service
func NewService(extractor audio.Extractor, prober audio.Prober, fsys FileSystem, output io.Writer) *Service {
	return &Service{
		extractor: extractor,
		verifier:  verify.NewService(prober, fsys),
		fsys:      fsys,
		output:    output,
	}
}

// Extract runs the full pipeline for a single request
func (s *Service) Extract(ctx context.Context, req *audio.ExtractionRequest) (*Result, error) {
	fmt.Fprintln(s.output, "Validating input file...")
	if err := s.validate(req.InputPath); err != nil {
		return nil, err
	}

	fmt.Fprintln(s.output, "Creating output directory...")
	if err := s.fsys.EnsureParent(req.OutputPath); err != nil {
		return nil, err
	}

	fmt.Fprintf(s.output, "Extracting audio to %s...\n", req.OutputPath)
	if err := s.extractor.Extract(ctx, req); err != nil {
		return nil, err
	}

	result := &Result{OutputPath: req.OutputPath}

	if req.Verify {
		fmt.Fprintln(s.output, "Verifying output...")
		probe, err := s.verifier.VerifyOutput(req.OutputPath)
		if err != nil {
			// Verification is advisory; report and keep the success.
			result.Warnings = append(result.Warnings, fmt.Sprintf("verification failed: %v", err))
		} else {
			result.Probe = probe
		}
	}

	return result, nil
}

func (s *Service) validate(inputPath string) error {
	if !s.fsys.Exists(inputPath) {
		return fmt.Errorf("%w: %s", audio.ErrInputNotFound, inputPath)
	}
	if !audio.IsVideoFile(inputPath) {
		return fmt.Errorf("%w: %s", audio.ErrUnsupportedInput, inputPath)
	}
	return nil
}
