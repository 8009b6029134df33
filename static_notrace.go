//go:build xjournal_notrace

package xjournal

func init() { staticDisabled |= LevelTrace }
