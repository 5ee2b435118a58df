package deepfake

import (
	"context"
	"strings"

	domain "github.com/verascan/verascan/internal/domain/deepfake"
)

// Service implements the URL detector flow: validate locally, then a
// single attempt against the analyzer. Safe for concurrent use.
type Service struct {
	Analyzer domain.Analyzer
}

// Detect trims the submitted URL and runs one analysis for it.
// An empty submission is rejected before the analyzer is ever called.
func (s *Service) Detect(ctx context.Context, rawInput string) (*domain.Verdict, error) {
	u := strings.TrimSpace(rawInput)
	if u == "" {
		return nil, domain.ErrEmptyURL
	}
	return s.Analyzer.AnalyzeURL(ctx, u)
}
