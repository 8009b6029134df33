package xjournal

// Level is a one-hot severity bit, ordered by increasing urgency. Backend
// masks and the dispatcher's union mask are ORs of these bits, so "does
// backend accept level" is a single AND.
type Level uint8

const (
	LevelTrace Level = 1 << iota
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal

	LevelNone Level = 0
	LevelAll  Level = LevelTrace | LevelInfo | LevelWarn | LevelError | LevelFatal
)

// OrAbove returns the mask of l and all more severe levels. l must be a
// single level bit.
func (l Level) OrAbove() Level {
	return LevelAll &^ (l - 1)
}

// OrBelow returns the mask of l and all less severe levels. l must be a
// single level bit.
func (l Level) OrBelow() Level {
	return (l | (l - 1)) & LevelAll
}

// String returns the lowercase level name for a single level bit.
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "trace"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelFatal:
		return "fatal"
	default:
		return "unknown"
	}
}
