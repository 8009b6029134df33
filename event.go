package xjournal

import "time"

// Event describes one accepted log call: capture time, severity and the
// call site. Immutable once constructed; built at most once per call.
type Event struct {
	At    time.Time
	Level Level
	File  string
	Line  int
}
