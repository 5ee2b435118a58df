package ui

import (
	"strings"
	"testing"

	"github.com/verascan/verascan/internal/domain/deepfake"
	"github.com/verascan/verascan/internal/domain/plagiarism"
)

func requireContains(t *testing.T, html, subject string, needles ...string) {
	t.Helper()
	for _, needle := range needles {
		if !strings.Contains(html, needle) {
			t.Fatalf("%s missing %q in:\n%s", subject, needle, html)
		}
	}
}

func requireNotContains(t *testing.T, html, subject string, needles ...string) {
	t.Helper()
	for _, needle := range needles {
		if strings.Contains(html, needle) {
			t.Fatalf("%s should not contain %q in:\n%s", subject, needle, html)
		}
	}
}

func TestURLResultRealIsGreen(t *testing.T) {
	html, err := URLResult(&deepfake.Verdict{
		Label:   deepfake.LabelReal,
		Domain:  "example.com",
		Type:    deepfake.MediaImage,
		Preview: "p.jpg",
	})
	if err != nil {
		t.Fatalf("URLResult: %v", err)
	}
	requireContains(t, html, "real verdict",
		"verdict-real", colorOK, "REAL", "example.com", "image", `src="p.jpg"`)
	requireNotContains(t, html, "real verdict", colorBad)
}

func TestURLResultAnyOtherLabelIsRed(t *testing.T) {
	for _, label := range []deepfake.Label{deepfake.LabelFake, "SUSPICIOUS", "fake"} {
		html, err := URLResult(&deepfake.Verdict{Label: label, Domain: "d", Type: "video"})
		if err != nil {
			t.Fatalf("URLResult(%q): %v", label, err)
		}
		requireContains(t, html, "verdict "+string(label), "verdict-fake", colorBad)
		requireNotContains(t, html, "verdict "+string(label), colorOK)
	}
}

func TestURLResultOmitsEmptyPreview(t *testing.T) {
	html, err := URLResult(&deepfake.Verdict{Label: deepfake.LabelFake, Domain: "d", Type: "image"})
	if err != nil {
		t.Fatalf("URLResult: %v", err)
	}
	requireNotContains(t, html, "verdict without preview", "<img")
}

func TestPlagReportBadgeColor(t *testing.T) {
	cases := []struct {
		percent   int
		wantClass string
		wantColor string
	}{
		{75, "badge-bad", colorBad},
		{30, "badge-ok", colorOK},
		{50, "badge-ok", colorOK},
	}
	for _, c := range cases {
		html, err := PlagReport(&plagiarism.Report{
			Summary: plagiarism.Summary{Total: 4, PlagPercent: c.percent, OriginalPercent: 100 - c.percent},
		})
		if err != nil {
			t.Fatalf("PlagReport(%d): %v", c.percent, err)
		}
		requireContains(t, html, "badge", c.wantClass, c.wantColor)
	}
}

func TestPlagReportParagraphStyling(t *testing.T) {
	report := &plagiarism.Report{
		Summary: plagiarism.Summary{Total: 2, PlagPercent: 50, OriginalPercent: 50},
		Results: []plagiarism.ParagraphResult{
			{Paragraph: "copied words", Label: "PLAGIARISM (web match)", WebSource: "http://src.example"},
			{Paragraph: "own words", Label: "ORIGINAL"},
		},
	}
	html, err := PlagReport(report)
	if err != nil {
		t.Fatalf("PlagReport: %v", err)
	}
	requireContains(t, html, "report",
		"para-flagged", "PLAGIARISM (web match)", `href="http://src.example"`,
		"para-clean", "ORIGINAL", "copied words", "own words")

	// the clean block must not carry a source link
	clean := html[strings.Index(html, "para-clean"):]
	if strings.Contains(clean, "para-source") {
		t.Fatalf("clean block has a source link:\n%s", clean)
	}
}

func TestPlagReportPreservesResultOrder(t *testing.T) {
	report := &plagiarism.Report{
		Summary: plagiarism.Summary{Total: 3, PlagPercent: 0, OriginalPercent: 100},
		Results: []plagiarism.ParagraphResult{
			{Paragraph: "first", Label: "ORIGINAL"},
			{Paragraph: "second", Label: "ORIGINAL"},
			{Paragraph: "third", Label: "ORIGINAL"},
		},
	}
	html, err := PlagReport(report)
	if err != nil {
		t.Fatalf("PlagReport: %v", err)
	}
	a, b, c := strings.Index(html, "first"), strings.Index(html, "second"), strings.Index(html, "third")
	if a < 0 || b < 0 || c < 0 || !(a < b && b < c) {
		t.Fatalf("paragraphs out of order: %d %d %d", a, b, c)
	}
}

func TestPlagReportEscapesParagraphText(t *testing.T) {
	report := &plagiarism.Report{
		Summary: plagiarism.Summary{Total: 1, OriginalPercent: 100},
		Results: []plagiarism.ParagraphResult{
			{Paragraph: "<script>alert(1)</script>", Label: "ORIGINAL"},
		},
	}
	html, err := PlagReport(report)
	if err != nil {
		t.Fatalf("PlagReport: %v", err)
	}
	requireNotContains(t, html, "report", "<script>alert(1)</script>")
}

func TestNotices(t *testing.T) {
	if got := Warning("paste a URL first"); !strings.Contains(got, "notice-warn") || !strings.Contains(got, "paste a URL first") {
		t.Errorf("Warning = %q", got)
	}
	if got := Error("bad url"); !strings.Contains(got, "notice-error") || !strings.Contains(got, "bad url") {
		t.Errorf("Error = %q", got)
	}
}
