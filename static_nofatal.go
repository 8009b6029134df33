//go:build xjournal_nofatal

package xjournal

func init() { staticDisabled |= LevelFatal }
