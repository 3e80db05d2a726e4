package scaffold

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	gitignore "github.com/denormal/go-gitignore"
	"github.com/kobonostudio/create-webflow/internal/filesystem"
	"github.com/stretchr/testify/require"
)

func TestMaterialize_EmbeddedTemplate(t *testing.T) {
	mfs := filesystem.NewMockFileSystem()

	written, err := NewMaterializer(mfs, Template()).Materialize("/workspace/demo")
	require.NoError(t, err)

	require.Equal(t, []string{
		".gitignore",
		".prettierrc",
		"eslint.config.js",
		"scripts/deploy.js",
		"src/main.js",
		"src/modules/.gitkeep",
		"src/pages/home.js",
		"vite.config.js",
	}, written)

	require.False(t, mfs.Exists("/workspace/demo/gitignore"))
	require.True(t, mfs.Exists("/workspace/demo/.gitignore"))
	require.True(t, mfs.Exists("/workspace/demo/src/pages/home.js"))
}

func TestMaterialize_OverwritesExistingFiles(t *testing.T) {
	mfs := filesystem.NewMockFileSystem()
	mfs.AddFile("/workspace/demo/vite.config.js", []byte("stale"))
	mfs.AddFile("/workspace/demo/.gitignore", []byte("stale"))
	mfs.AddFile("/workspace/demo/notes.txt", []byte("mine"))

	m := NewMaterializer(mfs, Template())
	_, err := m.Materialize("/workspace/demo")
	require.NoError(t, err)
	_, err = m.Materialize("/workspace/demo")
	require.NoError(t, err)

	vite, err := mfs.ReadFile("/workspace/demo/vite.config.js")
	require.NoError(t, err)
	require.Contains(t, string(vite), "defineConfig")

	ignore, err := mfs.ReadFile("/workspace/demo/.gitignore")
	require.NoError(t, err)
	require.Contains(t, string(ignore), "node_modules")

	notes, err := mfs.ReadFile("/workspace/demo/notes.txt")
	require.NoError(t, err)
	require.Equal(t, "mine", string(notes))
}

func TestMaterialize_WithoutIgnoreFile(t *testing.T) {
	src := fstest.MapFS{
		"README.md":   {Data: []byte("# hi")},
		"src/main.js": {Data: []byte("main")},
	}
	mfs := filesystem.NewMockFileSystem()

	written, err := NewMaterializer(mfs, src).Materialize("/workspace")
	require.NoError(t, err)
	require.Equal(t, []string{"README.md", "src/main.js"}, written)
	require.False(t, mfs.Exists("/workspace/.gitignore"))
}

func TestMaterialize_WriteError(t *testing.T) {
	mfs := filesystem.NewMockFileSystem()
	mfs.WriteFileError = errors.New("disk full")

	_, err := NewMaterializer(mfs, Template()).Materialize("/workspace/demo")
	require.Error(t, err)
	require.Contains(t, err.Error(), "disk full")
}

func TestMaterialize_OSFileSystem(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "demo")

	_, err := NewMaterializer(filesystem.NewOSFileSystem(), Template()).Materialize(dest)
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(dest, "scripts", "deploy.js"))
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0644), info.Mode().Perm())

	_, err = os.Stat(filepath.Join(dest, "gitignore"))
	require.True(t, os.IsNotExist(err))
}

func TestTemplate_IgnoreRules(t *testing.T) {
	data, err := fs.ReadFile(Template(), IgnoreFileName)
	require.NoError(t, err)

	ignore := gitignore.New(bytes.NewReader(data), t.TempDir(), nil)

	tests := []struct {
		path  string
		isDir bool
	}{
		{"node_modules", true},
		{"dist", true},
		{".DS_Store", false},
		{"debug.log", false},
		{".env", false},
	}
	for _, tt := range tests {
		match := ignore.Relative(tt.path, tt.isDir)
		require.NotNil(t, match, "expected %s to be ignored", tt.path)
		require.True(t, match.Ignore(), "expected %s to be ignored", tt.path)
	}

	if match := ignore.Relative("src/main.js", false); match != nil {
		require.False(t, match.Ignore())
	}
}
