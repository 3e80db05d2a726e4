// Package scaffold copies the project template into a destination directory.
package scaffold

import (
	"embed"
	"io/fs"
)

//go:embed all:base
var baseFS embed.FS

// IgnoreFileName is the template's ignore file; it is stored without the
// leading dot so package tooling does not apply it to the template itself
const IgnoreFileName = "gitignore"

// Template returns the embedded base template rooted at its top directory
func Template() fs.FS {
	sub, err := fs.Sub(baseFS, "base")
	if err != nil {
		// "base" is a fixed, embedded directory
		panic(err)
	}
	return sub
}
