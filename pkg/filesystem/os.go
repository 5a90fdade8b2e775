package filesystem

import (
	"io/fs"
	"os"

	"github.com/civixgo/civix/pkg/types"
)

// osFS is the only types.FS that touches the disk. Paths are used as given;
// callers pass absolute paths rooted at the extension directory.
type osFS struct{}

// NewOS returns the disk-backed filesystem the civix command runs on.
// Generation code never calls os directly, so tests swap in NewMemory.
func NewOS() types.FS {
	return &osFS{}
}

func (o *osFS) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

func (o *osFS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

func (o *osFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(name, data, perm)
}

func (o *osFS) MkdirAll(path string, perm fs.FileMode) error {
	return os.MkdirAll(path, perm)
}
