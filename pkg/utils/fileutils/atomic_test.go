package fileutils

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeString(s string) func(io.Writer) error {
	return func(w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	}
}

func TestAtomicWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.json")

	if err := AtomicWrite(path, writeString("one")); err != nil {
		t.Fatalf("AtomicWrite() error = %v", err)
	}
	if err := AtomicWrite(path, writeString("two")); err != nil {
		t.Fatalf("AtomicWrite() error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "two" {
		t.Errorf("content = %q, want %q", got, "two")
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("temp files left behind: %v", entries)
	}
}

func TestAtomicWrite_GenError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "menu.json")
	errGen := errors.New("gen failed")

	err := AtomicWrite(path, func(io.Writer) error { return errGen })
	if !errors.Is(err, errGen) {
		t.Fatalf("AtomicWrite() error = %v, want %v", err, errGen)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("file created despite generator error")
	}
}

func TestAtomicEdit_SkipsUnchanged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "social.toml")

	written, err := AtomicEdit(path, writeString("same"))
	if err != nil || !written {
		t.Fatalf("first AtomicEdit() = %v, %v; want true, nil", written, err)
	}

	old := time.Now().Add(-time.Hour).Truncate(time.Second)
	if err := os.Chtimes(path, old, old); err != nil {
		t.Fatal(err)
	}

	written, err = AtomicEdit(path, writeString("same"))
	if err != nil {
		t.Fatal(err)
	}
	if written {
		t.Error("AtomicEdit() rewrote identical content")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if !info.ModTime().Equal(old) {
		t.Error("modification time changed for identical content")
	}

	written, err = AtomicEdit(path, writeString("different"))
	if err != nil || !written {
		t.Fatalf("AtomicEdit() with new content = %v, %v; want true, nil", written, err)
	}
}
