package fileio

import (
	"errors"
	"os"
	"path/filepath"
)

// ErrCorrupt indicates malformed persisted data.
var ErrCorrupt = errors.New("fileio: corrupt data")

// ErrBadObstacle indicates a GeoJSON feature that is not a valid circular obstacle.
var ErrBadObstacle = errors.New("fileio: invalid obstacle feature")

// delim separates values on one line.
const delim = " "

// create opens path for writing, creating parent directories as needed.
func create(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	return os.Create(path)
}

// saveWith writes path through fn and reports the first error, close included.
func saveWith(path string, fn func(f *os.File) error) (err error) {
	f, err := create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return fn(f)
}
