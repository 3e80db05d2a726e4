// Package emitter renders the generated project files from the setup answers.
package emitter

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/kobonostudio/create-webflow/internal/models"
)

// StarterConfigFile is the deploy/CDN descriptor read by the build plugins
const StarterConfigFile = "starter.config.js"

// CDNBaseURL is where the published repository is served from
const CDNBaseURL = "https://cdn.jsdelivr.net/gh"

// StarterConfig is the structured form of starter.config.js
type StarterConfig struct {
	CDN    CDNSection
	Deploy DeploySection
}

// CDNSection describes where built assets are served from
type CDNSection struct {
	BaseURL string
	User    string
	Repo    string
	Branch  string
	Org     bool
}

// DeploySection describes where builds are pushed
type DeploySection struct {
	Mode models.GitMode

	// PublicRepo is empty when Mode is none
	PublicRepo string

	// PrivateRepo is only set when Mode is split
	PrivateRepo string

	Branch string
}

// NewStarterConfig builds the descriptor for a set of answers
func NewStarterConfig(a models.Answers) StarterConfig {
	repo := a.CDNRepo()

	cfg := StarterConfig{
		CDN: CDNSection{
			BaseURL: CDNBaseURL,
			User:    a.CDNUser,
			Repo:    repo,
			Branch:  a.Branch(),
			Org:     a.IsOrg,
		},
		Deploy: DeploySection{
			Mode:   a.GitMode,
			Branch: a.Branch(),
		},
	}

	if a.GitMode.UsesRemote() {
		cfg.Deploy.PublicRepo = repo
	}
	if a.GitMode == models.GitModeSplit {
		cfg.Deploy.PrivateRepo = a.ProjectName
	}

	return cfg
}

// Values are JS-escaped before quoting, so user text can never close the
// string literal.
const starterConfigTemplate = `export default {
  cdn: {
    baseUrl: {{ .CDN.BaseURL | js | squote }},
    user: {{ .CDN.User | js | squote }},
    repo: {{ .CDN.Repo | js | squote }},
    branch: {{ .CDN.Branch | js | squote }},
{{- if .CDN.Org }}
    org: true,
{{- end }}
  },
  deploy: {
    mode: {{ .Deploy.Mode | toString | js | squote }},
{{- with .Deploy.PublicRepo }}
    publicRepo: {{ . | js | squote }},
{{- end }}
{{- with .Deploy.PrivateRepo }}
    privateRepo: {{ . | js | squote }},
{{- end }}
    branch: {{ .Deploy.Branch | js | squote }}
  }
}
`

var starterTmpl = template.Must(
	template.New(StarterConfigFile).
		Funcs(sprig.TxtFuncMap()).
		Parse(starterConfigTemplate),
)

// Render serializes the descriptor as an ES module
func (c StarterConfig) Render() ([]byte, error) {
	var buf bytes.Buffer
	if err := starterTmpl.Execute(&buf, c); err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", StarterConfigFile, err)
	}
	return buf.Bytes(), nil
}
