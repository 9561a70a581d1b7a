package fileutils

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// AtomicWrite renders gen into path through a temporary file in the same
// directory, so readers never observe a partial file.
func AtomicWrite(path string, gen func(w io.Writer) error) error {
	_, err := writeFile(path, gen, false)
	return err
}

// AtomicEdit is AtomicWrite, but leaves path untouched when its content would
// not change. It reports whether the file was written.
func AtomicEdit(path string, gen func(w io.Writer) error) (bool, error) {
	return writeFile(path, gen, true)
}

func writeFile(path string, gen func(w io.Writer) error, skipUnchanged bool) (bool, error) {
	var buf bytes.Buffer
	if err := gen(&buf); err != nil {
		return false, err
	}

	if skipUnchanged {
		existing, err := os.ReadFile(path)
		switch {
		case err == nil && bytes.Equal(existing, buf.Bytes()):
			return false, nil
		case err != nil && !errors.Is(err, fs.ErrNotExist):
			return false, err
		}
	}

	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return false, err
	}
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
	}()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		return false, err
	}
	if err := tmp.Sync(); err != nil {
		return false, err
	}
	if err := tmp.Close(); err != nil {
		return false, err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return false, err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return false, err
	}
	if df, err := os.Open(dir); err == nil {
		_ = df.Sync()
		_ = df.Close()
	}

	return true, nil
}
