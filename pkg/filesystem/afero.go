package filesystem

import (
	"io/fs"

	"github.com/arthur-debert/mapcat/pkg/types"
	"github.com/spf13/afero"
)

// aferoFS implements types.FS using afero
type aferoFS struct {
	fs afero.Fs
}

// NewAferoFS creates a new afero filesystem implementation
func NewAferoFS(fs afero.Fs) types.FS {
	return &aferoFS{fs: fs}
}

func (a *aferoFS) Stat(name string) (fs.FileInfo, error) {
	return a.fs.Stat(name)
}

func (a *aferoFS) ReadDir(name string) ([]fs.DirEntry, error) {
	entries, err := afero.ReadDir(a.fs, name)
	if err != nil {
		return nil, err
	}
	dirEntries := make([]fs.DirEntry, len(entries))
	for i, entry := range entries {
		dirEntries[i] = fs.FileInfoToDirEntry(entry)
	}
	return dirEntries, nil
}

// Writable reports false for read-only afero layers and otherwise checks
// the permission bits
func (a *aferoFS) Writable(name string) bool {
	if _, ok := a.fs.(*afero.ReadOnlyFs); ok {
		return false
	}
	info, err := a.fs.Stat(name)
	if err != nil {
		return false
	}
	return info.Mode().Perm()&0o222 != 0
}
