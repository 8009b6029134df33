//go:build xjournal_nowarn

package xjournal

func init() { staticDisabled |= LevelWarn }
