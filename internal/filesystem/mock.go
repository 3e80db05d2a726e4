package filesystem

import (
	"errors"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// MockFileSystem provides in-memory filesystem for testing
type MockFileSystem struct {
	files      map[string]*MockFile
	currentDir string

	// Hooks for testing error scenarios
	WriteFileError error
	MkdirAllError  error
	RenameError    error
}

// MockFile represents a file in the mock filesystem
type MockFile struct {
	Content []byte
	Mode    fs.FileMode
	ModTime time.Time
	IsDir   bool
}

// NewMockFileSystem creates a new MockFileSystem
func NewMockFileSystem() *MockFileSystem {
	mfs := &MockFileSystem{
		files:      make(map[string]*MockFile),
		currentDir: "/workspace",
	}
	mfs.AddDir(mfs.currentDir)
	return mfs
}

// AddFile adds a file to the mock filesystem
func (mfs *MockFileSystem) AddFile(path string, content []byte) {
	cleanPath := filepath.Clean(path)
	mfs.files[cleanPath] = &MockFile{
		Content: content,
		Mode:    0644,
		ModTime: time.Now(),
		IsDir:   false,
	}
	mfs.addParents(cleanPath)
}

// AddDir adds a directory to the mock filesystem
func (mfs *MockFileSystem) AddDir(path string) {
	cleanPath := filepath.Clean(path)
	if _, exists := mfs.files[cleanPath]; !exists {
		mfs.files[cleanPath] = &MockFile{
			Mode:    0755 | fs.ModeDir,
			ModTime: time.Now(),
			IsDir:   true,
		}
	}
	mfs.addParents(cleanPath)
}

// addParents ensures parent directories exist
func (mfs *MockFileSystem) addParents(cleanPath string) {
	dir := filepath.Dir(cleanPath)
	for dir != "." && dir != "/" && dir != cleanPath {
		if _, exists := mfs.files[dir]; !exists {
			mfs.files[dir] = &MockFile{
				Mode:    0755 | fs.ModeDir,
				ModTime: time.Now(),
				IsDir:   true,
			}
		}
		dir = filepath.Dir(dir)
	}
}

func (mfs *MockFileSystem) ReadFile(path string) ([]byte, error) {
	file, exists := mfs.files[filepath.Clean(path)]
	if !exists {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	if file.IsDir {
		return nil, errors.New("is a directory")
	}
	return file.Content, nil
}

func (mfs *MockFileSystem) WriteFile(path string, data []byte, perm fs.FileMode) error {
	if mfs.WriteFileError != nil {
		return mfs.WriteFileError
	}

	cleanPath := filepath.Clean(path)

	// Ensure parent directory exists
	dir := filepath.Dir(cleanPath)
	if dir != "." && dir != "/" {
		if _, exists := mfs.files[dir]; !exists {
			return &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
		}
	}

	if existing, exists := mfs.files[cleanPath]; exists && existing.IsDir {
		return &fs.PathError{Op: "open", Path: path, Err: errors.New("is a directory")}
	}

	content := make([]byte, len(data))
	copy(content, data)

	mfs.files[cleanPath] = &MockFile{
		Content: content,
		Mode:    perm,
		ModTime: time.Now(),
		IsDir:   false,
	}
	return nil
}

// Rename moves a file or a directory tree, replacing a file already at newPath
func (mfs *MockFileSystem) Rename(oldPath, newPath string) error {
	if mfs.RenameError != nil {
		return mfs.RenameError
	}

	from := filepath.Clean(oldPath)
	to := filepath.Clean(newPath)

	file, exists := mfs.files[from]
	if !exists {
		return &fs.PathError{Op: "rename", Path: oldPath, Err: fs.ErrNotExist}
	}
	if _, exists := mfs.files[filepath.Dir(to)]; !exists {
		return &fs.PathError{Op: "rename", Path: newPath, Err: fs.ErrNotExist}
	}

	delete(mfs.files, from)
	mfs.files[to] = file

	if file.IsDir {
		prefix := from + string(filepath.Separator)
		for p, f := range mfs.files {
			if strings.HasPrefix(p, prefix) {
				delete(mfs.files, p)
				mfs.files[filepath.Join(to, strings.TrimPrefix(p, prefix))] = f
			}
		}
	}

	return nil
}

func (mfs *MockFileSystem) MkdirAll(path string, perm fs.FileMode) error {
	if mfs.MkdirAllError != nil {
		return mfs.MkdirAllError
	}

	cleanPath := filepath.Clean(path)
	parts := strings.Split(cleanPath, string(filepath.Separator))

	current := ""
	for _, part := range parts {
		if part == "" {
			continue
		}
		if current == "" {
			current = string(filepath.Separator) + part
		} else {
			current = filepath.Join(current, part)
		}

		existing, exists := mfs.files[current]
		if !exists {
			mfs.files[current] = &MockFile{
				Mode:    perm | fs.ModeDir,
				ModTime: time.Now(),
				IsDir:   true,
			}
			continue
		}
		if !existing.IsDir {
			return &fs.PathError{Op: "mkdir", Path: current, Err: errors.New("not a directory")}
		}
	}
	return nil
}

func (mfs *MockFileSystem) Exists(path string) bool {
	_, exists := mfs.files[filepath.Clean(path)]
	return exists
}

func (mfs *MockFileSystem) Getwd() (string, error) {
	return mfs.currentDir, nil
}

// SetCurrentDir sets the current working directory for the mock
func (mfs *MockFileSystem) SetCurrentDir(dir string) {
	mfs.currentDir = filepath.Clean(dir)
	mfs.AddDir(mfs.currentDir)
}

// GetFiles returns all files in the mock filesystem
func (mfs *MockFileSystem) GetFiles() map[string]*MockFile {
	return mfs.files
}

// FilePaths returns the sorted paths of all regular files under root
func (mfs *MockFileSystem) FilePaths(root string) []string {
	cleanRoot := filepath.Clean(root)

	var paths []string
	for p, f := range mfs.files {
		if f.IsDir {
			continue
		}
		if strings.HasPrefix(p, cleanRoot+string(filepath.Separator)) {
			paths = append(paths, p)
		}
	}

	sort.Strings(paths)
	return paths
}
