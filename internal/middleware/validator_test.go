package middleware

import "testing"

func TestSanitizeString(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"  padded  ", "padded"},
		{"a\x00b", "ab"},
		{"line1\nline2", "line1\nline2"},
		{"tab\there", "tab\there"},
		{"bell\x07char", "bellchar"},
	}
	for _, c := range cases {
		if got := SanitizeString(c.in); got != c.want {
			t.Errorf("SanitizeString(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"essay.docx", "essay.docx"},
		{"../../etc/passwd", "passwd"},
		{`C:\Users\me\paper.docx`, "paper.docx"},
		{"my essay (final).docx", "my_essay_final_.docx"},
		{"", "upload"},
		{"...", "upload"},
	}
	for _, c := range cases {
		if got := SanitizeFilename(c.in); got != c.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
