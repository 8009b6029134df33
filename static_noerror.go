//go:build xjournal_noerror

package xjournal

func init() { staticDisabled |= LevelError }
