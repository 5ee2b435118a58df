package plagiarism

import (
	"context"
	"io"
)

// Checker port (interface to the plagiarism analysis collaborator)
type Checker interface {
	CheckText(ctx context.Context, text string) (*Report, error)
	CheckFile(ctx context.Context, filename string, file io.Reader) (*Report, error)
}
