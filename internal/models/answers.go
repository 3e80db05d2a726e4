package models

import (
	"fmt"
	"strings"
)

// DefaultBranch is the branch used for CDN resolution when none is given
const DefaultBranch = "main"

// Answers is the setup answer set collected by the interview.
//
// It is built once per run and only read afterwards. The CDN repository is
// derived through CDNRepo rather than stored, so the CDN and deploy sections
// of the generated config always point at the same repository.
type Answers struct {
	ProjectName  string
	CreateFolder bool
	GitMode      GitMode

	// Only meaningful when GitMode uses a remote
	CDNUser   string
	IsOrg     bool
	CDNBranch string

	// Only meaningful when GitMode is split
	PublicRepoName string
}

// CDNRepo returns the repository served through the CDN, which is also the
// public deploy target
func (a Answers) CDNRepo() string {
	if a.GitMode == GitModeSplit {
		return a.PublicRepoName
	}
	return a.ProjectName
}

// Branch returns CDNBranch, falling back to DefaultBranch
func (a Answers) Branch() string {
	if a.CDNBranch == "" {
		return DefaultBranch
	}
	return a.CDNBranch
}

// Validate checks the answer set invariants
func (a Answers) Validate() error {
	if strings.TrimSpace(a.ProjectName) == "" {
		return fmt.Errorf("project name cannot be empty")
	}
	if !a.GitMode.IsValid() {
		return fmt.Errorf("invalid git mode: %q", a.GitMode)
	}
	if a.GitMode == GitModeSplit && strings.TrimSpace(a.PublicRepoName) == "" {
		return fmt.Errorf("public repo name is required in split mode")
	}
	return nil
}
