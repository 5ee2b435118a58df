package deepfake

// Label enum as reported by the analysis service
type Label string

const (
	LabelReal Label = "REAL"
	LabelFake Label = "FAKE"
)

// MediaType enum
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// Verdict is the analysis outcome for one media URL.
type Verdict struct {
	Label    Label     `json:"label"`
	Domain   string    `json:"domain"`
	Type     MediaType `json:"type"`
	Preview  string    `json:"preview"`
	Realism  float64   `json:"realism,omitempty"`
	Deepfake float64   `json:"deepfake,omitempty"`
}

// Real reports whether the media was judged authentic. Anything other
// than the literal REAL label counts as fake.
func (v Verdict) Real() bool {
	return v.Label == LabelReal
}
