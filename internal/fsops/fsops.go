// Package fsops exposes thin interfaces over os helpers so descriptor and
// schema loading can be tested without touching the real filesystem.
package fsops

//go:generate mockgen -destination=mocks/fsops.go -package=mocks github.com/0xa1bed0/dli/internal/fsops OSOps

import (
	"errors"
	"io"
	"io/fs"
	"os"
)

// OSOps abstracts the filesystem queries used when loading input files.
type OSOps interface {
	Stat(name string) (fs.FileInfo, error)
	Open(name string) (io.ReadCloser, error)
}

// DefaultOps returns the standard library implementation.
func DefaultOps() OSOps {
	return stdOSOps{}
}

type stdOSOps struct{}

func (stdOSOps) Stat(name string) (fs.FileInfo, error)   { return os.Stat(name) }
func (stdOSOps) Open(name string) (io.ReadCloser, error) { return os.Open(name) }

// FileExists reports whether path names an existing regular file.
// A missing path is (false, nil); other stat failures are returned.
func FileExists(ops OSOps, path string) (bool, error) {
	fi, err := ops.Stat(path)
	if err == nil {
		return !fi.IsDir(), nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// ReadAll opens path, reads it fully and closes it on every exit path.
func ReadAll(ops OSOps, path string) ([]byte, error) {
	f, err := ops.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}
