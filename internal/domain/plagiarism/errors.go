package plagiarism

import "errors"

// ErrNoInput means neither pasted text nor a file was submitted;
// no request is made for it.
var ErrNoInput = errors.New("no text or file provided")
