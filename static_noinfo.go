//go:build xjournal_noinfo

package xjournal

func init() { staticDisabled |= LevelInfo }
