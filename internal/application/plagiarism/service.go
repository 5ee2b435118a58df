package plagiarism

import (
	"context"
	"io"
	"strings"

	domain "github.com/verascan/verascan/internal/domain/plagiarism"
)

// Service implements the plagiarism check flow. Safe for concurrent use.
type Service struct {
	Checker domain.Checker
}

// CheckCommand carries one submission: pasted text and/or an uploaded
// file, as read from the form at click time. File is nil when no file
// was selected.
type CheckCommand struct {
	Text     string
	FileName string
	File     io.Reader
}

// Check dispatches exactly one scan per command. A selected file takes
// precedence over pasted text; with neither present the checker is
// never called.
func (s *Service) Check(ctx context.Context, cmd CheckCommand) (*domain.Report, error) {
	text := strings.TrimSpace(cmd.Text)

	if cmd.File != nil {
		return s.Checker.CheckFile(ctx, cmd.FileName, cmd.File)
	}
	if text == "" {
		return nil, domain.ErrNoInput
	}
	return s.Checker.CheckText(ctx, text)
}
