package middleware

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Input sanitation for values forwarded to the analysis service.

// SanitizeString removes null bytes and control characters from user
// input, keeping tabs and newlines (paragraph structure matters for
// the plagiarism scan).
func SanitizeString(input string) string {
	input = strings.ReplaceAll(input, "\x00", "")

	var result strings.Builder
	for _, r := range input {
		if r >= 32 || r == '\t' || r == '\n' {
			result.WriteRune(r)
		}
	}
	return strings.TrimSpace(result.String())
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]+`)

// SanitizeFilename reduces an uploaded filename to a safe base name
// before it is forwarded: no directories, no traversal, conservative
// character set. Returns "upload" when nothing usable remains.
func SanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = unsafeFilenameChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	if name == "" {
		return "upload"
	}
	return name
}
