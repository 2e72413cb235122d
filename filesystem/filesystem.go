// Package filesystem holds the swappable afero backend every package reads and writes through.
//
// Local dataset directories, the config file, the cache and the logs all go
// through API(), so tests can run against an in-memory tree.
package filesystem

import (
	"github.com/spf13/afero"
)

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active backend.
func API() afero.Afero {
	return backend
}

// Set installs fs as the backend.
func Set(fs afero.Fs) {
	backend = afero.Afero{Fs: fs}
}

// SetOsFs restores the native filesystem.
func SetOsFs() {
	Set(afero.NewOsFs())
}

// SetMemMapFs installs a fresh in-memory filesystem.
func SetMemMapFs() {
	Set(afero.NewMemMapFs())
}

// ReadOnly wraps the current backend so that writes fail.
// The web front-end serves datasets through it.
func ReadOnly() afero.Afero {
	return afero.Afero{Fs: afero.NewReadOnlyFs(backend.Fs)}
}
