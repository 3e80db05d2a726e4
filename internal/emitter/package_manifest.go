package emitter

import (
	"encoding/json"
	"fmt"

	"github.com/kobonostudio/create-webflow/internal/models"
)

// PackageManifestFile is the npm manifest of the generated project
const PackageManifestFile = "package.json"

// ManifestVersion is the version every new project starts at
const ManifestVersion = "0.0.1"

// PackageManifest is the generated package.json. Field order is the
// serialized key order.
type PackageManifest struct {
	Name            string          `json:"name"`
	Version         string          `json:"version"`
	Private         bool            `json:"private"`
	Type            string          `json:"type"`
	Scripts         Scripts         `json:"scripts"`
	DevDependencies DevDependencies `json:"devDependencies"`
}

// Scripts are the npm run targets of the generated project
type Scripts struct {
	Dev        string `json:"dev"`
	Build      string `json:"build"`
	BuildPages string `json:"build:pages"`
	Deploy     string `json:"deploy"`
	Format     string `json:"format"`
	Lint       string `json:"lint"`
}

// DevDependencies pins the build, lint and deploy tooling
type DevDependencies struct {
	Vite                 string `json:"vite"`
	ESLint               string `json:"eslint"`
	ESLintConfigPrettier string `json:"eslint-config-prettier"`
	Globals              string `json:"globals"`
	Prettier             string `json:"prettier"`
	ESLintJS             string `json:"@eslint/js"`
	GitHubDeployPlugin   string `json:"@kobonostudio/vite-plugin-github-deploy"`
	WebflowBundlerPlugin string `json:"@kobonostudio/vite-plugin-webflow-bundler"`
}

// DefaultScripts are the npm scripts every project gets
var DefaultScripts = Scripts{
	Dev:        "vite",
	Build:      "vite build",
	BuildPages: "PAGES=true vite build",
	Deploy:     "node scripts/deploy.js",
	Format:     "prettier --write .",
	Lint:       "eslint src --ext .js",
}

// DefaultDevDependencies are the tool versions every project gets
var DefaultDevDependencies = DevDependencies{
	Vite:                 "^6.2.0",
	ESLint:               "^9.24.0",
	ESLintConfigPrettier: "^10.1.2",
	Globals:              "^16.0.0",
	Prettier:             "^3.5.3",
	ESLintJS:             "^9.24.0",
	GitHubDeployPlugin:   "latest",
	WebflowBundlerPlugin: "latest",
}

// NewPackageManifest builds the manifest for a set of answers
func NewPackageManifest(a models.Answers) PackageManifest {
	return PackageManifest{
		Name:            a.ProjectName,
		Version:         ManifestVersion,
		Private:         true,
		Type:            "module",
		Scripts:         DefaultScripts,
		DevDependencies: DefaultDevDependencies,
	}
}

// Render serializes the manifest with two-space indentation
func (m PackageManifest) Render() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", PackageManifestFile, err)
	}
	return append(data, '\n'), nil
}
