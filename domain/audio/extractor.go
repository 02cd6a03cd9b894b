package audio

import "context"

// Extractor defines the interface for audio extraction operations
// This is a port that can be implemented by different infrastructure adapters
type Extractor interface {
	// Extract produces the audio output described by the request
	Extract(ctx context.Context, req *ExtractionRequest) error
}
