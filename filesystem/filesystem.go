// Package filesystem provides a swappable afero backend for every disk access the CLI makes.
//
// Viper, the log writer and the path resolvers all go through API, so tests can
// run entirely against an in-memory filesystem.
package filesystem

import (
	"errors"
	"io/fs"

	"github.com/spf13/afero"
)

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active backend.
func API() afero.Afero {
	return backend
}

// SetOsFs restores the native operating system backend.
func SetOsFs() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
}

// SetMemMapFs switches to a volatile in-memory backend.
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}

// Delete removes path, recursively when it is a directory.
// A path that does not exist is not an error.
func Delete(path string) error {
	stat, err := backend.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}

	if stat.IsDir() {
		return backend.RemoveAll(path)
	}
	return backend.Remove(path)
}
