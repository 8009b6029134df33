//go:build !windows

package xjournal

import (
	"bufio"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// rotateGen counts delivered rotation signals. The signal goroutine only
// increments it; no locking, allocation or I/O happens on the delivery
// path. Appends read it with an atomic load and reopen lazily.
var (
	rotateGen  atomic.Uint64
	rotateOnce sync.Once
)

// watchRotation subscribes to SIGHUP once for the whole process.
func watchRotation() {
	rotateOnce.Do(func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, unix.SIGHUP)
		go func() {
			for range ch {
				rotateGen.Add(1)
			}
		}()
	})
}

// RotatingFile is a file sink that reopens its file after an external
// rotation signal (SIGHUP), picking up a primary that rotation tooling may
// have renamed out from under it. However many signals fired since the
// last append, the next append reopens at most once.
type RotatingFile struct {
	File
	path string

	gen uint64 // last observed rotateGen, guarded by File.mu
}

// NewRotatingFile opens path in append mode and registers the process-wide
// rotation signal watcher.
func NewRotatingFile(path string, cfg FileConfig) (*RotatingFile, error) {
	if path == "" {
		return nil, ErrNoPath
	}
	cfg.defaults()
	f, err := openAppend(path, cfg.Perm)
	if err != nil {
		return nil, err
	}
	watchRotation()
	b := &RotatingFile{path: path, gen: rotateGen.Load()}
	b.levels = cfg.Levels
	b.layout = cfg.Layout
	b.perm = cfg.Perm
	b.f = f
	b.w = bufio.NewWriter(f)
	return b, nil
}

func (b *RotatingFile) Append(ev Event, msg Producer) error {
	buf := getBuf()
	defer putBuf(buf)
	b.layout.Render(buf, ev, msg)

	b.mu.Lock()
	defer b.mu.Unlock()
	if gen := rotateGen.Load(); gen != b.gen {
		if err := b.reopenLocked(); err != nil {
			return err
		}
		b.gen = gen
	}
	return b.writeLocked(buf.Bytes())
}

func (b *RotatingFile) reopenLocked() error {
	if err := b.w.Flush(); err != nil {
		return errors.Wrap(err, "xjournal: flush")
	}
	if err := b.f.Close(); err != nil {
		return errors.Wrap(err, "xjournal: close")
	}
	f, err := openAppend(b.path, b.perm)
	if err != nil {
		return err
	}
	b.f = f
	b.w.Reset(f)
	return nil
}
