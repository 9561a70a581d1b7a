package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcher_ReportsChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cactus.toml")
	other := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(path, []byte("[site]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := New(50*time.Millisecond, path)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)

	if err := os.WriteFile(other, []byte("ignored"), 0o644); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if err := os.WriteFile(path, []byte("[site]\ntitle = \"x\"\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case ev := <-w.Events:
		if len(ev.Paths) != 1 || ev.Paths[0] != path {
			t.Errorf("event paths = %v, want [%s]", ev.Paths, path)
		}
	case err := <-w.Errors:
		t.Fatalf("watch error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("no event after writing the watched file")
	}
}

func TestNew_MissingDirectory(t *testing.T) {
	if _, err := New(time.Millisecond, filepath.Join(t.TempDir(), "missing", "cactus.toml")); err == nil {
		t.Error("New() watched a file in a directory that does not exist")
	}
}
