package xjournal

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

func appendMsg(t *testing.T, b Backend, level Level, msg string) {
	t.Helper()
	ev := Event{At: time.Now(), Level: level, File: "file_test.go", Line: 1}
	if err := b.Append(ev, func(buf *Buffer) { buf.WriteString(msg) }); err != nil {
		t.Fatalf("Append: %v", err)
	}
}

func TestFileAppendIsDurable(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "app.log")
	b, err := NewFile(path, FileConfig{Levels: LevelAll, Layout: MessageLayout{}})
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	defer b.Close()

	appendMsg(t, b, LevelInfo, "first\n")

	// Read back without closing: every append flushes to the OS.
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != "first\n" {
		t.Fatalf("file holds %q, want %q", got, "first\n")
	}
}

func TestFileConfigErrors(t *testing.T) {
	t.Parallel()

	if _, err := NewFile("", FileConfig{}); err != ErrNoPath {
		t.Errorf("NewFile(\"\"): err = %v, want ErrNoPath", err)
	}
	if _, err := NewStream(nil, StreamConfig{}); err != ErrNoWriter {
		t.Errorf("NewStream(nil): err = %v, want ErrNoWriter", err)
	}
}

func TestFdExposure(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "app.log")
	fb, err := NewFile(path, FileConfig{})
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	defer fb.Close()
	if _, ok := fb.Fd(); !ok {
		t.Error("file backend reports no descriptor")
	}

	sb, err := NewStream(&bytes.Buffer{}, StreamConfig{})
	if err != nil {
		t.Fatalf("NewStream: %v", err)
	}
	if _, ok := sb.Fd(); ok {
		t.Error("buffer-backed stream reports a descriptor")
	}

	fs, err := NewStream(os.Stderr, StreamConfig{})
	if err != nil {
		t.Fatalf("NewStream: %v", err)
	}
	if _, ok := fs.Fd(); !ok {
		t.Error("stderr stream reports no descriptor")
	}
}

// Eight writers, forty appends each, on one rolling backend: every line
// must come out whole and none may be lost across primary and archives.
func TestRollingConcurrentAppends(t *testing.T) {
	t.Parallel()

	const writers, perWriter = 8, 40

	dir := t.TempDir()
	path := filepath.Join(dir, "app.log")
	b, err := NewRollingFile(path, RollingConfig{
		FileConfig: FileConfig{Levels: LevelAll, Layout: MessageLayout{}},
		MaxBytes:   512,
		Archives:   64,
	})
	if err != nil {
		t.Fatalf("NewRollingFile: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < perWriter; j++ {
				line := fmt.Sprintf("w%d n%d\n", i, j)
				ev := Event{At: time.Now(), Level: LevelInfo, File: "file_test.go", Line: 1}
				if err := b.Append(ev, func(buf *Buffer) { buf.WriteString(line) }); err != nil {
					t.Errorf("Append: %v", err)
					return
				}
			}
		}(i)
	}
	wg.Wait()
	if err := b.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	seen := make(map[string]bool)
	for _, name := range append([]string{path}, ArchiveNames(path, 64)...) {
		data, err := os.ReadFile(name)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			t.Fatalf("ReadFile(%s): %v", name, err)
		}
		for _, line := range strings.Split(strings.TrimSuffix(string(data), "\n"), "\n") {
			if line == "" {
				continue
			}
			if seen[line] {
				t.Fatalf("line %q written twice", line)
			}
			seen[line] = true
		}
	}

	if len(seen) != writers*perWriter {
		t.Fatalf("recovered %d lines, want %d", len(seen), writers*perWriter)
	}
	for i := 0; i < writers; i++ {
		for j := 0; j < perWriter; j++ {
			if !seen[fmt.Sprintf("w%d n%d", i, j)] {
				t.Fatalf("line w%d n%d lost", i, j)
			}
		}
	}
}
