package filesystem

import (
	"io"
	"os"

	"github.com/spf13/afero"
)

// GacheFs adapts an afero backend to gache.FileSystem. A nil Fs resolves to
// the current backend on every call, so tests swapping in SetMemMapFs are honoured.
type GacheFs struct {
	Fs afero.Fs
}

func (g *GacheFs) backend() afero.Fs {
	if g.Fs != nil {
		return g.Fs
	}
	return API()
}

func (g *GacheFs) OpenFile(name string, flag int, perm os.FileMode) (io.ReadWriteCloser, error) {
	return g.backend().OpenFile(name, flag, perm)
}

func (g *GacheFs) MkdirAll(path string, perm os.FileMode) error {
	return g.backend().MkdirAll(path, perm)
}
