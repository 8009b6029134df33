package xjournal

import (
	"io"
	"os"
	"sync"

	"github.com/pkg/errors"
)

// StreamConfig configures a stream backend. Zero values get defaults:
// LevelInfo.OrAbove() and LineLayout.
type StreamConfig struct {
	Levels Level
	Layout Layout
}

// Stream is a mutex-serialized sink over an arbitrary io.Writer, typically
// os.Stdout or os.Stderr.
type Stream struct {
	levels Level
	layout Layout

	mu sync.Mutex
	w  io.Writer
}

// NewStream returns a backend writing to w.
func NewStream(w io.Writer, cfg StreamConfig) (*Stream, error) {
	if w == nil {
		return nil, ErrNoWriter
	}
	if cfg.Levels == LevelNone {
		cfg.Levels = LevelInfo.OrAbove()
	}
	if cfg.Layout == nil {
		cfg.Layout = &LineLayout{}
	}
	return &Stream{levels: cfg.Levels, layout: cfg.Layout, w: w}, nil
}

func (b *Stream) Levels() Level { return b.levels }

func (b *Stream) Append(ev Event, msg Producer) error {
	buf := getBuf()
	defer putBuf(buf)
	b.layout.Render(buf, ev, msg)

	b.mu.Lock()
	defer b.mu.Unlock()
	_, err := b.w.Write(buf.Bytes())
	return errors.Wrap(err, "xjournal: write")
}

func (b *Stream) Fd() (uintptr, bool) {
	if f, ok := b.w.(*os.File); ok {
		return f.Fd(), true
	}
	return 0, false
}
