package extract

import (
	"context"
	"path/filepath"

	"audio-extractor/domain/audio"
)

// BatchItem is the outcome of one input in a batch run.
// Exactly one of OutputPath and Err is set.
type BatchItem struct {
	InputPath  string
	OutputPath string
	Err        error
}

// BatchInput describes a batch extraction run
type BatchInput struct {
	InputPaths []string
	OutputDir  string
	Format     audio.Format
	Quality    int
	Verify     bool
}

// ExtractBatch runs the full pipeline once per input, deriving each output
// filename from the input's stem. Failures are isolated per input: the
// returned slice always has one item per input, in input order.
func (s *Service) ExtractBatch(ctx context.Context, input BatchInput) []BatchItem {
	items := make([]BatchItem, 0, len(input.InputPaths))

	for _, inputPath := range input.InputPaths {
		outputPath := filepath.Join(input.OutputDir, audio.OutputName(inputPath, input.Format))

		req, err := audio.NewExtractionRequest(inputPath, outputPath, input.Format, input.Quality, input.Verify)
		if err != nil {
			items = append(items, BatchItem{InputPath: inputPath, Err: err})
			continue
		}

		result, err := s.Extract(ctx, req)
		if err != nil {
			items = append(items, BatchItem{InputPath: inputPath, Err: err})
			continue
		}

		items = append(items, BatchItem{InputPath: inputPath, OutputPath: result.OutputPath})
	}

	return items
}
