package plagiarism

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	domain "github.com/verascan/verascan/internal/domain/plagiarism"
)

type fakeChecker struct {
	textCalls int
	fileCalls int
	lastText  string
	lastName  string
	report    *domain.Report
	err       error
}

func (f *fakeChecker) CheckText(ctx context.Context, text string) (*domain.Report, error) {
	f.textCalls++
	f.lastText = text
	return f.report, f.err
}

func (f *fakeChecker) CheckFile(ctx context.Context, name string, file io.Reader) (*domain.Report, error) {
	f.fileCalls++
	f.lastName = name
	return f.report, f.err
}

func TestCheckNoInputNeverCallsChecker(t *testing.T) {
	for _, text := range []string{"", "  \n\t "} {
		fake := &fakeChecker{}
		svc := &Service{Checker: fake}

		_, err := svc.Check(context.Background(), CheckCommand{Text: text})
		if !errors.Is(err, domain.ErrNoInput) {
			t.Errorf("Check(%q) err = %v, want ErrNoInput", text, err)
		}
		if fake.textCalls+fake.fileCalls != 0 {
			t.Errorf("Check(%q) dispatched %d scans, want 0", text, fake.textCalls+fake.fileCalls)
		}
	}
}

func TestCheckFileTakesPrecedenceOverText(t *testing.T) {
	fake := &fakeChecker{report: &domain.Report{Summary: domain.Summary{Total: 1}}}
	svc := &Service{Checker: fake}

	cmd := CheckCommand{
		Text:     "some pasted text",
		FileName: "essay.docx",
		File:     strings.NewReader("file body"),
	}
	if _, err := svc.Check(context.Background(), cmd); err != nil {
		t.Fatalf("Check: %v", err)
	}
	if fake.fileCalls != 1 || fake.textCalls != 0 {
		t.Fatalf("file=%d text=%d, want exactly one file scan", fake.fileCalls, fake.textCalls)
	}
	if fake.lastName != "essay.docx" {
		t.Errorf("filename = %q", fake.lastName)
	}
}

func TestCheckTextOnly(t *testing.T) {
	fake := &fakeChecker{report: &domain.Report{Summary: domain.Summary{Total: 1}}}
	svc := &Service{Checker: fake}

	if _, err := svc.Check(context.Background(), CheckCommand{Text: " hello world "}); err != nil {
		t.Fatalf("Check: %v", err)
	}
	if fake.textCalls != 1 || fake.fileCalls != 0 {
		t.Fatalf("file=%d text=%d, want exactly one text scan", fake.fileCalls, fake.textCalls)
	}
	if fake.lastText != "hello world" {
		t.Errorf("text not trimmed: %q", fake.lastText)
	}
}
