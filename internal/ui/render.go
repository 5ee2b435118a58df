package ui

import (
	"bytes"
	"html/template"

	"github.com/verascan/verascan/internal/domain/deepfake"
	"github.com/verascan/verascan/internal/domain/plagiarism"
)

// Shared palette. Green marks an authentic / mostly-original outcome,
// red a fake / high-plagiarism one.
const (
	colorOK  = "#1f8a4c"
	colorBad = "#b23a48"
)

var urlResultTmpl = template.Must(template.New("urlResult").Parse(`<div class="verdict verdict-{{.Class}}">
  {{if .Preview}}<img class="preview" src="{{.Preview}}" alt="media preview" />{{end}}
  <div class="meta">
    <div><span class="k">Domain:</span> {{.Domain}}</div>
    <div><span class="k">Type:</span> {{.Type}}</div>
  </div>
  <div class="gauge" style="border-color:{{.Color}};color:{{.Color}}">
    <span class="gauge-label">{{.Label}}</span>
    {{if .Score}}<span class="gauge-score">{{.Score}}%</span>{{end}}
  </div>
</div>`))

var plagReportTmpl = template.Must(template.New("plagReport").Parse(`<div class="plag-summary">
  <div class="badge badge-{{.Class}}" style="border-color:{{.Color}};color:{{.Color}}">{{.Summary.PlagPercent}}%</div>
  <div class="plag-percents">
    <div><span class="k">Plagiarised:</span> {{.Summary.PlagPercent}}%</div>
    <div><span class="k">Original:</span> {{.Summary.OriginalPercent}}%</div>
  </div>
</div>
<div class="plag-results">
{{range .Results}}  <div class="para {{if .Flagged}}para-flagged{{else}}para-clean{{end}}">
    <p class="para-text">{{.Paragraph}}</p>
    <span class="para-label">{{.Label}}</span>
    {{if .WebSource}}<a class="para-source" href="{{.WebSource}}" target="_blank" rel="noopener">source</a>{{end}}
  </div>
{{end}}</div>`))

var noticeTmpl = template.Must(template.New("notice").Parse(`<div class="notice notice-{{.Kind}}">{{.Message}}</div>`))

// URLResult renders the result region for one media verdict.
func URLResult(v *deepfake.Verdict) (string, error) {
	data := struct {
		*deepfake.Verdict
		Class string
		Color string
		Score int
	}{Verdict: v, Class: "fake", Color: colorBad}

	if v.Real() {
		data.Class = "real"
		data.Color = colorOK
		data.Score = percent(v.Realism)
	} else if v.Deepfake > 0 {
		data.Score = percent(v.Deepfake)
	}

	var buf bytes.Buffer
	if err := urlResultTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// PlagReport renders the result region for one plagiarism report:
// the aggregate badge plus one block per paragraph, in scan order.
func PlagReport(r *plagiarism.Report) (string, error) {
	data := struct {
		*plagiarism.Report
		Class string
		Color string
	}{Report: r, Class: "ok", Color: colorOK}

	if r.Summary.HighRisk() {
		data.Class = "bad"
		data.Color = colorBad
	}

	var buf bytes.Buffer
	if err := plagReportTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Warning renders the inline hint for a submission rejected before any
// request was made (empty URL, no text and no file).
func Warning(msg string) string { return notice("warn", msg) }

// Error renders a failure reported by, or while talking to, the
// analysis service.
func Error(msg string) string { return notice("error", msg) }

func notice(kind, msg string) string {
	var buf bytes.Buffer
	// template over a fixed shape; cannot fail
	_ = noticeTmpl.Execute(&buf, struct{ Kind, Message string }{kind, msg})
	return buf.String()
}

func percent(v float64) int {
	if v < 0 {
		return 0
	}
	if v > 1 {
		// already a percentage
		if v > 100 {
			return 100
		}
		return int(v + 0.5)
	}
	return int(v*100 + 0.5)
}
