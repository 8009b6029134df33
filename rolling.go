package xjournal

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// RollingConfig configures a rolling file backend: a size threshold in
// bytes and the number of archive generations to keep.
type RollingConfig struct {
	FileConfig
	MaxBytes int64
	Archives int
}

// RollingFile is a file sink that archives the primary file when a write
// would cross the size threshold. Archives shift one generation up,
// oldest overwritten; the primary is renamed to generation one and
// reopened truncated. Rolling is atomic for writers on this instance, not
// for external processes touching the same files.
type RollingFile struct {
	File
	path     string
	maxBytes int64
	names    []string // archive paths, newest first

	size int64 // current primary size, guarded by File.mu
}

// NewRollingFile opens path in append mode and returns a rolling backend.
func NewRollingFile(path string, cfg RollingConfig) (*RollingFile, error) {
	if path == "" {
		return nil, ErrNoPath
	}
	if cfg.MaxBytes <= 0 {
		return nil, ErrNoThreshold
	}
	if cfg.Archives < 1 {
		return nil, ErrNoArchives
	}
	cfg.defaults()
	f, err := openAppend(path, cfg.Perm)
	if err != nil {
		return nil, err
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, errors.Wrap(err, "xjournal: stat")
	}
	b := &RollingFile{
		path:     path,
		maxBytes: cfg.MaxBytes,
		names:    ArchiveNames(path, cfg.Archives),
		size:     st.Size(),
	}
	b.levels = cfg.Levels
	b.layout = cfg.Layout
	b.perm = cfg.Perm
	b.f = f
	b.w = bufio.NewWriter(f)
	return b, nil
}

func (b *RollingFile) Append(ev Event, msg Producer) error {
	buf := getBuf()
	defer putBuf(buf)
	b.layout.Render(buf, ev, msg)

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.size > 0 && b.size+int64(buf.Len()) > b.maxBytes {
		if err := b.rollLocked(); err != nil {
			return err
		}
	}
	if err := b.writeLocked(buf.Bytes()); err != nil {
		return err
	}
	b.size += int64(buf.Len())
	return nil
}

// rollLocked shifts archives one generation up in descending order, moves
// the primary to generation one and reopens it truncated. A missing source
// archive is the expected steady state before the set is full and is
// skipped.
func (b *RollingFile) rollLocked() error {
	if err := b.w.Flush(); err != nil {
		return errors.Wrap(err, "xjournal: flush")
	}
	if err := b.f.Close(); err != nil {
		return errors.Wrap(err, "xjournal: close")
	}
	for i := len(b.names) - 1; i > 0; i-- {
		if err := os.Rename(b.names[i-1], b.names[i]); err != nil && !os.IsNotExist(err) {
			return errors.Wrap(err, "xjournal: archive")
		}
	}
	if err := os.Rename(b.path, b.names[0]); err != nil {
		return errors.Wrap(err, "xjournal: archive")
	}
	f, err := os.OpenFile(b.path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, b.perm)
	if err != nil {
		return errors.Wrap(err, "xjournal: reopen")
	}
	b.f = f
	b.w.Reset(f)
	b.size = 0
	return nil
}

// ArchiveNames returns the n archive file names for base: the stem
// suffixed with a zero-padded generation index before the extension. The
// pad width is the digit count of n, so base "log", n 10 spans "log-01"
// through "log-10".
func ArchiveNames(base string, n int) []string {
	ext := filepath.Ext(base)
	stem := base[:len(base)-len(ext)]
	width := len(strconv.Itoa(n))
	names := make([]string, n)
	for i := range names {
		idx := strconv.Itoa(i + 1)
		names[i] = stem + "-" + strings.Repeat("0", width-len(idx)) + idx + ext
	}
	return names
}
