package xjournal

import (
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/trickstertwo/xclock"
)

// Dispatcher routes accepted events to every backend whose enabled-level
// mask intersects the call's level. The backend list and the union mask
// are fixed at construction, so concurrent readers need no locking.
type Dispatcher struct {
	backends []Backend
	union    Level
}

// New builds a dispatcher over backends in registration order. A nil
// backend is a configuration error.
func New(backends ...Backend) (*Dispatcher, error) {
	d := &Dispatcher{backends: make([]Backend, len(backends))}
	for i, b := range backends {
		if b == nil {
			return nil, ErrNilBackend
		}
		d.backends[i] = b
		d.union |= b.Levels()
	}
	return d, nil
}

// Enabled reports whether any backend would accept level. Use to guard
// expensive message construction in hot paths.
func (d *Dispatcher) Enabled(level Level) bool {
	return level&^staticDisabled&d.union != 0
}

// Append routes one event at level, recorded against file:line, to every
// matching backend in registration order. msg runs once per matching
// backend; when the level is disabled everywhere it never runs. The first
// backend failure propagates to the caller.
func (d *Dispatcher) Append(level Level, file string, line int, msg Producer) error {
	if !d.Enabled(level) {
		return nil
	}
	ev := Event{At: xclock.Now(), Level: level, File: file, Line: line}
	for _, b := range d.backends {
		if level&b.Levels() == 0 {
			continue
		}
		if err := b.Append(ev, msg); err != nil {
			return err
		}
	}
	return nil
}

// Per-level surface. The Print-style forms stringify their arguments in
// the manner of fmt.Fprint; the f-forms take a format string. Both capture
// the caller's file base name and line, and defer all formatting until a
// backend renders.

func (d *Dispatcher) Trace(v ...any) error { return d.print(LevelTrace, 2, v) }
func (d *Dispatcher) Info(v ...any) error  { return d.print(LevelInfo, 2, v) }
func (d *Dispatcher) Warn(v ...any) error  { return d.print(LevelWarn, 2, v) }
func (d *Dispatcher) Error(v ...any) error { return d.print(LevelError, 2, v) }
func (d *Dispatcher) Fatal(v ...any) error { return d.print(LevelFatal, 2, v) }

func (d *Dispatcher) Tracef(format string, args ...any) error {
	return d.printf(LevelTrace, 2, format, args)
}

func (d *Dispatcher) Infof(format string, args ...any) error {
	return d.printf(LevelInfo, 2, format, args)
}

func (d *Dispatcher) Warnf(format string, args ...any) error {
	return d.printf(LevelWarn, 2, format, args)
}

func (d *Dispatcher) Errorf(format string, args ...any) error {
	return d.printf(LevelError, 2, format, args)
}

func (d *Dispatcher) Fatalf(format string, args ...any) error {
	return d.printf(LevelFatal, 2, format, args)
}

func (d *Dispatcher) print(level Level, depth int, v []any) error {
	if !d.Enabled(level) {
		return nil
	}
	file, line := callSite(depth)
	resolve(v)
	return d.Append(level, file, line, func(buf *Buffer) { fmt.Fprint(buf, v...) })
}

func (d *Dispatcher) printf(level Level, depth int, format string, args []any) error {
	if !d.Enabled(level) {
		return nil
	}
	file, line := callSite(depth)
	resolve(args)
	return d.Append(level, file, line, func(buf *Buffer) { fmt.Fprintf(buf, format, args...) })
}

// resolve replaces Lazy arguments with their computed values so each
// closure runs once per call, not once per backend.
func resolve(args []any) {
	for i, a := range args {
		if fn, ok := a.(Lazy); ok {
			args[i] = fn()
		}
	}
}

// callSite returns the base file name and line depth frames above the
// caller of callSite.
func callSite(depth int) (string, int) {
	_, file, line, ok := runtime.Caller(depth + 1)
	if !ok {
		return "???", 0
	}
	return filepath.Base(file), line
}
