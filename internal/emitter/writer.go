package emitter

import (
	"fmt"
	"path/filepath"

	"github.com/kobonostudio/create-webflow/internal/filesystem"
	"github.com/kobonostudio/create-webflow/internal/models"
)

// Write renders starter.config.js and package.json into dir, replacing any
// existing copies
func Write(fs filesystem.FileSystem, dir string, a models.Answers) error {
	config, err := NewStarterConfig(a).Render()
	if err != nil {
		return err
	}
	if err := fs.WriteFile(filepath.Join(dir, StarterConfigFile), config, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", StarterConfigFile, err)
	}

	manifest, err := NewPackageManifest(a).Render()
	if err != nil {
		return err
	}
	if err := fs.WriteFile(filepath.Join(dir, PackageManifestFile), manifest, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", PackageManifestFile, err)
	}

	return nil
}
