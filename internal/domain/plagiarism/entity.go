package plagiarism

import "strings"

// FlaggedPrefix is the label prefix the scanner uses for any plagiarised
// paragraph ("PLAGIARISM (exact)", "PLAGIARISM (paraphrase)", ...).
const FlaggedPrefix = "PLAGIARISM"

// Summary aggregates one scan. Percentages are integers 0-100 as
// reported by the analysis service.
type Summary struct {
	Total             int `json:"total"`
	Plagiarized       int `json:"plagiarized"`
	Exact             int `json:"exact"`
	Paraphrase        int `json:"paraphrase"`
	Original          int `json:"original"`
	PlagPercent       int `json:"plag_percent"`
	ExactPercent      int `json:"exact_percent"`
	ParaphrasePercent int `json:"paraphrase_percent"`
	OriginalPercent   int `json:"original_percent"`
}

// HighRisk reports whether the aggregate crosses the red threshold.
func (s Summary) HighRisk() bool {
	return s.PlagPercent > 50
}

// ParagraphResult is one scanned paragraph, in scan order.
type ParagraphResult struct {
	Paragraph string `json:"paragraph"`
	Label     string `json:"label"`
	WebSource string `json:"web_source,omitempty"`
}

// Flagged reports whether the label marks this paragraph as plagiarised.
func (p ParagraphResult) Flagged() bool {
	return strings.HasPrefix(p.Label, FlaggedPrefix)
}

// Report is the full response of one plagiarism check.
type Report struct {
	Summary Summary           `json:"summary"`
	Results []ParagraphResult `json:"results"`
}
