package deepfake

import "context"

// Analyzer port (interface to the media analysis collaborator)
type Analyzer interface {
	AnalyzeURL(ctx context.Context, rawURL string) (*Verdict, error)
}
