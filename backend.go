package xjournal

// Backend is a log destination (Strategy). Each backend owns one output
// resource, an enabled-level mask and a layout; the dispatcher owns the
// backend for its own lifetime.
type Backend interface {
	// Levels reports the backend's enabled-level mask.
	Levels() Level

	// Append renders ev through the backend's layout and persists it.
	// Write failures are returned, never swallowed.
	Append(ev Event, msg Producer) error

	// Fd returns the backend's OS file descriptor so crash handlers can
	// write raw bytes past the formatted path, or false when the backend
	// is not file-backed.
	Fd() (uintptr, bool)
}
