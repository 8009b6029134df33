package xjournal

import (
	"bufio"
	"os"
	"sync"

	"github.com/pkg/errors"
)

// FileConfig is an explicit, code-first configuration for the file-family
// backends. Zero values get defaults: LevelInfo.OrAbove(), LineLayout and
// mode 0644.
type FileConfig struct {
	Levels Level
	Layout Layout
	Perm   os.FileMode
}

func (c *FileConfig) defaults() {
	if c.Levels == LevelNone {
		c.Levels = LevelInfo.OrAbove()
	}
	if c.Layout == nil {
		c.Layout = &LineLayout{}
	}
	if c.Perm == 0 {
		c.Perm = 0o644
	}
}

// File is a buffered file sink. Append renders into a pooled scratch
// buffer, then writes and flushes under the backend mutex before
// returning: a crash must not lose an accepted message.
type File struct {
	levels Level
	layout Layout
	perm   os.FileMode

	mu sync.Mutex
	f  *os.File
	w  *bufio.Writer
}

// NewFile opens path in append mode and returns a file backend.
func NewFile(path string, cfg FileConfig) (*File, error) {
	if path == "" {
		return nil, ErrNoPath
	}
	cfg.defaults()
	f, err := openAppend(path, cfg.Perm)
	if err != nil {
		return nil, err
	}
	return &File{
		levels: cfg.Levels,
		layout: cfg.Layout,
		perm:   cfg.Perm,
		f:      f,
		w:      bufio.NewWriter(f),
	}, nil
}

func openAppend(path string, perm os.FileMode) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, perm)
	return f, errors.Wrap(err, "xjournal: open")
}

func (b *File) Levels() Level { return b.levels }

func (b *File) Append(ev Event, msg Producer) error {
	buf := getBuf()
	defer putBuf(buf)
	b.layout.Render(buf, ev, msg)

	b.mu.Lock()
	defer b.mu.Unlock()
	return b.writeLocked(buf.Bytes())
}

// writeLocked writes p through the buffered writer and hands it to the OS.
func (b *File) writeLocked(p []byte) error {
	if _, err := b.w.Write(p); err != nil {
		return errors.Wrap(err, "xjournal: write")
	}
	return errors.Wrap(b.w.Flush(), "xjournal: flush")
}

func (b *File) Fd() (uintptr, bool) { return b.f.Fd(), true }

// Close flushes buffered data and closes the file.
func (b *File) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.w.Flush(); err != nil {
		b.f.Close()
		return errors.Wrap(err, "xjournal: flush")
	}
	return errors.Wrap(b.f.Close(), "xjournal: close")
}
