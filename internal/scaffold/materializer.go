package scaffold

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/kobonostudio/create-webflow/internal/filesystem"
)

const (
	dirPerm  fs.FileMode = 0755
	filePerm fs.FileMode = 0644
)

// Materializer writes a template tree into a project directory
type Materializer struct {
	fs  filesystem.FileSystem
	src fs.FS
}

// NewMaterializer creates a Materializer copying from src
func NewMaterializer(fsys filesystem.FileSystem, src fs.FS) *Materializer {
	return &Materializer{
		fs:  fsys,
		src: src,
	}
}

// Materialize copies the template into dest, overwriting files that already
// exist, then renames the ignore file to its dotted name. It returns the
// relative paths written, sorted.
func (m *Materializer) Materialize(dest string) ([]string, error) {
	if err := m.fs.MkdirAll(dest, dirPerm); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", dest, err)
	}

	var written []string
	err := fs.WalkDir(m.src, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p == "." {
			return nil
		}

		target := filepath.Join(dest, filepath.FromSlash(p))

		if d.IsDir() {
			if err := m.fs.MkdirAll(target, dirPerm); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", target, err)
			}
			return nil
		}

		data, err := fs.ReadFile(m.src, p)
		if err != nil {
			return fmt.Errorf("failed to read template file %s: %w", p, err)
		}
		if err := m.fs.WriteFile(target, data, filePerm); err != nil {
			return fmt.Errorf("failed to write %s: %w", target, err)
		}

		written = append(written, p)
		return nil
	})
	if err != nil {
		return nil, err
	}

	ignorePath := filepath.Join(dest, IgnoreFileName)
	if m.fs.Exists(ignorePath) {
		if err := m.fs.Rename(ignorePath, filepath.Join(dest, "."+IgnoreFileName)); err != nil {
			return nil, fmt.Errorf("failed to rename %s: %w", IgnoreFileName, err)
		}
		for i, p := range written {
			if p == IgnoreFileName {
				written[i] = "." + IgnoreFileName
			}
		}
	}

	sort.Strings(written)
	return written, nil
}
