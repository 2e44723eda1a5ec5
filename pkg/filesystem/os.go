package filesystem

import (
	"io/fs"
	"os"

	"github.com/arthur-debert/mapcat/pkg/types"
)

// osFS implements types.FS using the OS filesystem
type osFS struct{}

// NewOS creates a new OS filesystem implementation
func NewOS() types.FS {
	return &osFS{}
}

func (o *osFS) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// ReadDir returns entries sorted by filename. os.ReadDir closes the
// directory handle on every return path.
func (o *osFS) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(name)
}

func (o *osFS) Writable(name string) bool {
	return accessWritable(name)
}
