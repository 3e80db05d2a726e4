package emitter

import (
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/kobonostudio/create-webflow/internal/filesystem"
	"github.com/kobonostudio/create-webflow/internal/models"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func demoAnswers() models.Answers {
	return models.Answers{
		ProjectName:  "demo",
		CreateFolder: true,
		GitMode:      models.GitModePublicOnly,
		CDNUser:      "acme",
		IsOrg:        false,
		CDNBranch:    "main",
	}
}

func render(t *testing.T, a models.Answers) string {
	t.Helper()
	out, err := NewStarterConfig(a).Render()
	require.NoError(t, err)
	return string(out)
}

func TestStarterConfig_PublicOnly(t *testing.T) {
	got := render(t, demoAnswers())

	require.Equal(t, `export default {
  cdn: {
    baseUrl: 'https://cdn.jsdelivr.net/gh',
    user: 'acme',
    repo: 'demo',
    branch: 'main',
  },
  deploy: {
    mode: 'public-only',
    publicRepo: 'demo',
    branch: 'main'
  }
}
`, got)
}

func TestStarterConfig_None(t *testing.T) {
	got := render(t, models.Answers{
		ProjectName: "demo",
		GitMode:     models.GitModeNone,
		CDNBranch:   "main",
	})

	require.Contains(t, got, "mode: 'none',\n    branch: 'main'")
	require.NotContains(t, got, "publicRepo")
	require.NotContains(t, got, "privateRepo")
	require.Contains(t, got, "user: '',")
}

func TestStarterConfig_Split(t *testing.T) {
	a := demoAnswers()
	a.GitMode = models.GitModeSplit
	a.PublicRepoName = "demo-prod"

	cfg := NewStarterConfig(a)
	require.Equal(t, "demo-prod", cfg.CDN.Repo)
	require.Equal(t, "demo-prod", cfg.Deploy.PublicRepo)
	require.Equal(t, "demo", cfg.Deploy.PrivateRepo)

	got := render(t, a)
	require.Contains(t, got, "repo: 'demo-prod',")
	require.Contains(t, got, "    publicRepo: 'demo-prod',\n    privateRepo: 'demo',\n    branch: 'main'\n")

	snaps.MatchSnapshot(t, got)
}

func TestStarterConfig_OrgLine(t *testing.T) {
	a := demoAnswers()

	require.NotContains(t, render(t, a), "org:")

	a.IsOrg = true
	got := render(t, a)
	require.Contains(t, got, "    branch: 'main',\n    org: true,\n  },")
	require.NotContains(t, got, "org: false")
}

func TestStarterConfig_CDNRepoMatchesPublicRepo(t *testing.T) {
	for _, mode := range []models.GitMode{models.GitModePublicOnly, models.GitModeSplit} {
		a := demoAnswers()
		a.GitMode = mode
		a.PublicRepoName = "dist-repo"

		cfg := NewStarterConfig(a)
		require.Equal(t, cfg.CDN.Repo, cfg.Deploy.PublicRepo, "mode %s", mode)
	}
}

func TestStarterConfig_EscapesUserText(t *testing.T) {
	a := demoAnswers()
	a.CDNUser = `ac'me\`
	a.CDNBranch = "main'\n}; process.exit(1); //"

	got := render(t, a)
	require.Contains(t, got, `user: 'ac\'me\\',`)
	require.NotContains(t, got, "\n}; process.exit")
	require.Equal(t, 13, strings.Count(got, "\n"))
}

func TestStarterConfig_EmptyBranchFallsBack(t *testing.T) {
	a := demoAnswers()
	a.CDNBranch = ""

	got := render(t, a)
	require.Contains(t, got, "branch: 'main',")
	require.Contains(t, got, "branch: 'main'\n")
}

func TestPackageManifest(t *testing.T) {
	out, err := NewPackageManifest(demoAnswers()).Render()
	require.NoError(t, err)
	require.True(t, gjson.ValidBytes(out))

	doc := gjson.ParseBytes(out)
	require.Equal(t, "demo", doc.Get("name").String())
	require.Equal(t, "0.0.1", doc.Get("version").String())
	require.True(t, doc.Get("private").Bool())
	require.Equal(t, "module", doc.Get("type").String())
	require.Equal(t, "PAGES=true vite build", doc.Get(`scripts.build\:pages`).String())
	require.Equal(t, "^9.24.0", doc.Get(`devDependencies.\@eslint/js`).String())
	require.Equal(t, "latest", doc.Get(`devDependencies.\@kobonostudio/vite-plugin-webflow-bundler`).String())

	var scripts []string
	doc.Get("scripts").ForEach(func(key, _ gjson.Result) bool {
		scripts = append(scripts, key.String())
		return true
	})
	require.Equal(t, []string{"dev", "build", "build:pages", "deploy", "format", "lint"}, scripts)

	var keys []string
	doc.ForEach(func(key, _ gjson.Result) bool {
		keys = append(keys, key.String())
		return true
	})
	require.Equal(t, []string{"name", "version", "private", "type", "scripts", "devDependencies"}, keys)

	require.True(t, strings.HasPrefix(string(out), "{\n  \"name\": \"demo\",\n"))
	require.True(t, strings.HasSuffix(string(out), "}\n"))
}

func TestWrite_Deterministic(t *testing.T) {
	mfs := filesystem.NewMockFileSystem()
	a := demoAnswers()

	require.NoError(t, Write(mfs, "/workspace", a))
	first, err := mfs.ReadFile("/workspace/" + StarterConfigFile)
	require.NoError(t, err)
	firstManifest, err := mfs.ReadFile("/workspace/" + PackageManifestFile)
	require.NoError(t, err)

	require.NoError(t, Write(mfs, "/workspace", a))
	second, err := mfs.ReadFile("/workspace/" + StarterConfigFile)
	require.NoError(t, err)
	secondManifest, err := mfs.ReadFile("/workspace/" + PackageManifestFile)
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Equal(t, firstManifest, secondManifest)
}

func TestWrite_MissingDir(t *testing.T) {
	mfs := filesystem.NewMockFileSystem()

	err := Write(mfs, "/nowhere", demoAnswers())
	require.Error(t, err)
	require.Contains(t, err.Error(), StarterConfigFile)
}
