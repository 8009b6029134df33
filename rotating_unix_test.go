//go:build !windows

package xjournal

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/sys/unix"
)

// Mutates the process-wide rotation generation; not parallel.
func TestRotatingReopensAtMostOnce(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.log")
	b, err := NewRotatingFile(path, FileConfig{Levels: LevelAll, Layout: MessageLayout{}})
	if err != nil {
		t.Fatalf("NewRotatingFile: %v", err)
	}
	defer b.Close()

	appendMsg(t, b, LevelInfo, "a\n")

	// Three pending signals, one external rename: the next append must
	// reopen exactly once and land in a fresh primary.
	rotateGen.Add(3)
	rotated := path + ".rotated"
	if err := os.Rename(path, rotated); err != nil {
		t.Fatalf("Rename: %v", err)
	}
	appendMsg(t, b, LevelInfo, "b\n")

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != "b\n" {
		t.Fatalf("primary holds %q, want %q", got, "b\n")
	}
	if got, _ := os.ReadFile(rotated); string(got) != "a\n" {
		t.Fatalf("rotated file holds %q, want %q", got, "a\n")
	}

	// No new signal: the backend must keep writing to its handle even
	// after another rename, proving it does not reopen per append.
	stale := path + ".stale"
	if err := os.Rename(path, stale); err != nil {
		t.Fatalf("Rename: %v", err)
	}
	appendMsg(t, b, LevelInfo, "c\n")

	if got, _ := os.ReadFile(stale); string(got) != "b\nc\n" {
		t.Fatalf("stale file holds %q, want %q", got, "b\nc\n")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("primary reappeared without a rotation signal")
	}
}

// Mutates the process-wide rotation generation; not parallel.
func TestRotationSignalBumpsGeneration(t *testing.T) {
	watchRotation()
	before := rotateGen.Load()

	if err := unix.Kill(unix.Getpid(), unix.SIGHUP); err != nil {
		t.Fatalf("Kill: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for rotateGen.Load() == before {
		if time.Now().After(deadline) {
			t.Fatal("generation counter did not advance after SIGHUP")
		}
		time.Sleep(time.Millisecond)
	}
}
