package xjournal

import "sync/atomic"

// Facade helpers over a process-wide default dispatcher. Initialize once
// at startup, before first use; there is no teardown beyond closing the
// backends at process exit.

var global atomic.Pointer[Dispatcher]

// SetDefault installs the process-wide dispatcher used by the package
// level helpers.
func SetDefault(d *Dispatcher) { global.Store(d) }

// Default returns the process-wide dispatcher; it panics when unset to
// surface misconfiguration early.
func Default() *Dispatcher {
	d := global.Load()
	if d == nil {
		panic("xjournal: default dispatcher not set. Build one and call xjournal.SetDefault(...)")
	}
	return d
}

func Trace(v ...any) error { return Default().print(LevelTrace, 2, v) }
func Info(v ...any) error  { return Default().print(LevelInfo, 2, v) }
func Warn(v ...any) error  { return Default().print(LevelWarn, 2, v) }
func Error(v ...any) error { return Default().print(LevelError, 2, v) }
func Fatal(v ...any) error { return Default().print(LevelFatal, 2, v) }

func Tracef(format string, args ...any) error {
	return Default().printf(LevelTrace, 2, format, args)
}

func Infof(format string, args ...any) error {
	return Default().printf(LevelInfo, 2, format, args)
}

func Warnf(format string, args ...any) error {
	return Default().printf(LevelWarn, 2, format, args)
}

func Errorf(format string, args ...any) error {
	return Default().printf(LevelError, 2, format, args)
}

func Fatalf(format string, args ...any) error {
	return Default().printf(LevelFatal, 2, format, args)
}
