//go:build !windows

package xjournal

import "golang.org/x/sys/unix"

// Emergency writes msg directly to every file-backed backend descriptor,
// bypassing layouts, scratch buffers and backend locks. Intended for crash
// handlers that cannot trust the formatted path; write errors are ignored
// since there is nowhere left to report them.
func (d *Dispatcher) Emergency(msg string) {
	p := []byte(msg)
	for _, b := range d.backends {
		if fd, ok := b.Fd(); ok {
			unix.Write(int(fd), p)
		}
	}
}
