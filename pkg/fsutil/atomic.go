// pkg/fsutil/atomic.go
package fsutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// AtomicWriter streams data into a hidden temporary file and moves it over
// the target path only on Commit. The target is never visible in a partial
// state: Discard, or any failure before Commit succeeds, removes the
// temporary file and leaves the target untouched.
type AtomicWriter struct {
	target string
	tmp    *os.File
	done   bool
}

// NewAtomicWriter creates the temporary file in the target's directory so
// the final rename stays on one filesystem. The temporary file is given the
// requested mode up front, before any data is written.
func NewAtomicWriter(target string, mode os.FileMode) (*AtomicWriter, error) {
	dir := filepath.Dir(target)
	tmp, err := os.CreateTemp(dir, ".ingress-lint-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary file in %s: %w", dir, err)
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return nil, fmt.Errorf("failed to set mode on temporary file: %w", err)
	}
	return &AtomicWriter{target: target, tmp: tmp}, nil
}

// Write appends to the temporary file
func (w *AtomicWriter) Write(p []byte) (int, error) {
	return w.tmp.Write(p)
}

// Commit flushes the temporary file to disk and renames it over the target.
// On any failure the temporary file is removed and the target is left as it
// was.
func (w *AtomicWriter) Commit() error {
	if w.done {
		return errors.New("atomic writer already finished")
	}
	w.done = true

	if err := w.tmp.Sync(); err != nil {
		w.tmp.Close()
		os.Remove(w.tmp.Name())
		return fmt.Errorf("failed to sync temporary file: %w", err)
	}
	if err := w.tmp.Close(); err != nil {
		os.Remove(w.tmp.Name())
		return fmt.Errorf("failed to close temporary file: %w", err)
	}
	if err := os.Rename(w.tmp.Name(), w.target); err != nil {
		os.Remove(w.tmp.Name())
		return fmt.Errorf("failed to rename temporary file over %s: %w", w.target, err)
	}
	return nil
}

// Discard removes the temporary file without touching the target.
// Calling it after Commit, or more than once, does nothing.
func (w *AtomicWriter) Discard() {
	if w.done {
		return
	}
	w.done = true
	w.tmp.Close()
	os.Remove(w.tmp.Name())
}
