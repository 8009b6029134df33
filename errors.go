package xjournal

import "errors"

// Configuration errors. These are programmer errors surfaced at
// construction, not runtime conditions.
var (
	ErrNilBackend  = errors.New("xjournal: nil backend")
	ErrNoPath      = errors.New("xjournal: empty file path")
	ErrNoWriter    = errors.New("xjournal: nil writer")
	ErrNoThreshold = errors.New("xjournal: rolling threshold must be positive")
	ErrNoArchives  = errors.New("xjournal: rolling backend needs at least one archive")
)
