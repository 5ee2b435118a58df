package deepfake

import "errors"

// ErrEmptyURL means the user submitted nothing; no request is made for it.
var ErrEmptyURL = errors.New("no URL provided")
