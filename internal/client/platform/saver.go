package platform

import (
	"fmt"
	"os"

	"github.com/dmitrijs2005/docshare/internal/filex"
)

// Saver stores downloaded bytes under a file name and returns where they
// went.
type Saver interface {
	Save(name string, data []byte) (string, error)
}

type DirSaver struct {
	dir string
}

func NewDirSaver(dir string) *DirSaver {
	return &DirSaver{dir: dir}
}

func (s *DirSaver) Save(name string, data []byte) (string, error) {
	dir, err := filex.EnsureDir(s.dir)
	if err != nil {
		return "", err
	}

	path, err := filex.UniquePath(dir, filex.SafeName(name))
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o640); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
