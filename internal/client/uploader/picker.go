package uploader

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dmitrijs2005/docshare/internal/client/models"
	"github.com/gabriel-vasile/mimetype"
)

// Pick turns paths into file handles the way a browser file input would:
// name, size and sniffed MIME type are captured now, content is read at
// upload time. Directories are rejected unless expandDirs is set, in which
// case their regular files are picked in name order.
func Pick(paths []string, expandDirs bool) ([]models.FileHandle, error) {
	var out []models.FileHandle
	for _, p := range paths {
		fi, err := os.Stat(p)
		if err != nil {
			return nil, err
		}

		if !fi.IsDir() {
			h, err := handleFor(p, fi)
			if err != nil {
				return nil, err
			}
			out = append(out, h)
			continue
		}

		if !expandDirs {
			return nil, fmt.Errorf("%s is a directory", p)
		}
		hs, err := pickDir(p)
		if err != nil {
			return nil, err
		}
		out = append(out, hs...)
	}
	return out, nil
}

func pickDir(dir string) ([]models.FileHandle, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	var out []models.FileHandle
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		p := filepath.Join(dir, e.Name())
		fi, err := e.Info()
		if err != nil {
			return nil, err
		}
		h, err := handleFor(p, fi)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, nil
}

func handleFor(path string, fi os.FileInfo) (models.FileHandle, error) {
	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return models.FileHandle{}, fmt.Errorf("detect type of %s: %w", path, err)
	}

	return models.FileHandle{
		Name: fi.Name(),
		Size: fi.Size(),
		Type: mediaType(mt.String()),
		Open: func() (io.ReadCloser, error) { return os.Open(path) },
	}, nil
}

// mediaType drops parameters such as "; charset=utf-8".
func mediaType(s string) string {
	t, _, _ := strings.Cut(s, ";")
	return strings.TrimSpace(t)
}
