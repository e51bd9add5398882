// Package lockfile implements persistence of the kimai-plugins.lock document.
package lockfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/kimai-plugins/internal/core/domain"
	"go.trai.ch/kimai-plugins/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.LockStore = (*Store)(nil)

// Store implements ports.LockStore using a JSON file.
type Store struct{}

// NewStore creates a new lock store.
func NewStore() *Store {
	return &Store{}
}

// Load reads the lock file at path. A missing file yields nil, nil.
func (s *Store) Load(_ context.Context, path string) (*domain.Lockfile, error) {
	path = filepath.Clean(path)

	data, err := os.ReadFile(path) //nolint:gosec // Path is cleaned and provided by trusted caller
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, failure(err, domain.ErrLockUnreadable, path)
	}

	return Decode(data, path)
}

// Decode parses a lock document. The plugins section has to be present.
func Decode(data []byte, path string) (*domain.Lockfile, error) {
	var lock domain.Lockfile
	if err := json.Unmarshal(data, &lock); err != nil {
		return nil, failure(err, domain.ErrLockInvalid, path)
	}

	if lock.Plugins == nil {
		return nil, failure(nil, domain.ErrLockInvalid, path)
	}

	return &lock, nil
}

// Encode renders the lock document as indented JSON with a trailing newline.
func Encode(lock *domain.Lockfile) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(lock); err != nil {
		return nil, zerr.Wrap(err, domain.ErrLockMarshalFailed.Error())
	}
	return buf.Bytes(), nil
}

// Save writes the lock document to path.
func (s *Store) Save(_ context.Context, path string, lock *domain.Lockfile) error {
	path = filepath.Clean(path)

	data, err := Encode(lock)
	if err != nil {
		return zerr.With(err, "path", path)
	}

	//nolint:gosec // The lock file is meant to be committed and read by other tools
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return failure(err, domain.ErrLockWriteFailed, path)
	}

	return nil
}

// CheckWritable verifies that the lock file can be written. When the file does not exist yet,
// its directory has to be writable instead.
func (s *Store) CheckWritable(path string) error {
	path = filepath.Clean(path)

	info, err := os.Stat(path)
	switch {
	case err == nil:
		if info.IsDir() {
			return zerr.With(failure(nil, domain.ErrLockNotWritable, path), "reason", "path is a directory")
		}
		f, err := os.OpenFile(path, os.O_WRONLY, 0) //nolint:gosec // Path is cleaned and provided by trusted caller
		if err != nil {
			return failure(err, domain.ErrLockNotWritable, path)
		}
		return f.Close()
	case errors.Is(err, fs.ErrNotExist):
		return checkDirWritable(path)
	default:
		return failure(err, domain.ErrLockNotWritable, path)
	}
}

func checkDirWritable(path string) error {
	dir := filepath.Dir(path)

	probe, err := os.CreateTemp(dir, ".kimai-plugins-*.tmp")
	if err != nil {
		return zerr.With(failure(err, domain.ErrLockNotWritable, path), "directory", dir)
	}

	name := probe.Name()
	_ = probe.Close()
	_ = os.Remove(name)
	return nil
}

// failure reports sentinel for the lock file at path, keeping cause when there is one.
func failure(cause, sentinel error, path string) error {
	if cause == nil {
		return zerr.With(zerr.Wrap(sentinel, path), "path", path)
	}
	return zerr.With(zerr.Wrap(cause, fmt.Sprintf("%s: %s", sentinel.Error(), path)), "path", path)
}
