// Package interview collects the setup answers.
package interview

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kobonostudio/create-webflow/internal/models"
	"github.com/kobonostudio/create-webflow/internal/prompt"
)

// Question messages, exported so tests can script answers
const (
	MsgProjectName  = "Project name:"
	MsgCreateFolder = "Create a new folder for the project?"
	MsgGitMode      = "How do you want to manage Git repositories?"
	MsgCDNUser      = "GitHub user/org for CDN :"
	MsgIsOrg        = "Is this a GitHub organization?"
	MsgBranch       = "Branch name:"
	MsgPublicRepo   = "Name for the public production repo:"
)

// DefaultProjectName is offered when the user has no name in mind
const DefaultProjectName = "my-webflow-project"

var gitModeOptions = []prompt.Option{
	{Label: "None (no remote Git setup)", Value: string(models.GitModeNone)},
	{Label: "Single public repo (source + dist)", Value: string(models.GitModePublicOnly)},
	{Label: "Private source repo + public production repo", Value: string(models.GitModeSplit)},
}

// Run asks the setup questions in order and returns the answers.
// Cancelling any prompt returns prompt.ErrCancelled.
func Run(p prompt.Prompter) (*models.Answers, error) {
	answers := &models.Answers{
		CDNBranch: models.DefaultBranch,
	}

	name, err := p.Input(prompt.Input{
		Message:  MsgProjectName,
		Default:  DefaultProjectName,
		Validate: required,
	})
	if err != nil {
		return nil, err
	}
	answers.ProjectName = strings.TrimSpace(name)

	answers.CreateFolder, err = p.Confirm(prompt.Confirm{
		Message: MsgCreateFolder,
		Default: true,
	})
	if err != nil {
		return nil, err
	}

	mode, err := p.Select(prompt.Select{
		Message: MsgGitMode,
		Options: gitModeOptions,
		Default: string(models.GitModePublicOnly),
	})
	if err != nil {
		return nil, err
	}
	answers.GitMode, err = models.ParseGitMode(mode)
	if err != nil {
		return nil, err
	}

	if answers.GitMode.UsesRemote() {
		if err := askCDN(p, answers); err != nil {
			return nil, err
		}
	}

	if answers.GitMode == models.GitModeSplit {
		repo, err := p.Input(prompt.Input{
			Message:  MsgPublicRepo,
			Default:  answers.ProjectName + "-prod",
			Validate: required,
		})
		if err != nil {
			return nil, err
		}
		answers.PublicRepoName = strings.TrimSpace(repo)
	}

	if err := answers.Validate(); err != nil {
		return nil, fmt.Errorf("invalid answers: %w", err)
	}

	return answers, nil
}

func askCDN(p prompt.Prompter, answers *models.Answers) error {
	user, err := p.Input(prompt.Input{Message: MsgCDNUser})
	if err != nil {
		return err
	}
	answers.CDNUser = strings.TrimSpace(user)

	answers.IsOrg, err = p.Confirm(prompt.Confirm{
		Message: MsgIsOrg,
		Default: false,
	})
	if err != nil {
		return err
	}

	branch, err := p.Input(prompt.Input{
		Message: MsgBranch,
		Default: models.DefaultBranch,
	})
	if err != nil {
		return err
	}
	answers.CDNBranch = strings.TrimSpace(branch)

	return nil
}

// Validator errors are shown verbatim under the field, so they read as sentences.
var errRequired = errors.New("This field is required.") //nolint:staticcheck // ST1005: user-facing text

func required(v string) error {
	if strings.TrimSpace(v) == "" {
		return errRequired
	}
	return nil
}
