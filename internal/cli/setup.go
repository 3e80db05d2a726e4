package cli

import (
	"fmt"
	"path/filepath"

	"github.com/kobonostudio/create-webflow/internal/emitter"
	"github.com/kobonostudio/create-webflow/internal/finalize"
	"github.com/kobonostudio/create-webflow/internal/interview"
	"github.com/kobonostudio/create-webflow/internal/provision"
	"github.com/kobonostudio/create-webflow/internal/scaffold"
	"github.com/kobonostudio/create-webflow/internal/tui"
	"github.com/spf13/cobra"
)

// SetupCommand runs the whole generator
type SetupCommand struct {
	deps Deps
}

// Run executes the interview, writes the project, provisions GitHub access
// when a remote is used, and installs dependencies
func (c *SetupCommand) Run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	_, _ = fmt.Fprintln(out, tui.RenderBanner())

	answers, err := interview.Run(c.deps.Prompter)
	if err != nil {
		return err
	}

	cwd, err := c.deps.FS.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	dest := cwd
	if answers.CreateFolder {
		dest = filepath.Join(cwd, answers.ProjectName)
		tui.Info(out, "📁", "Creating project at: %s", dest)
	} else {
		tui.Info(out, "📁", "Installing in current folder: %s", dest)
	}

	src := c.deps.Template
	if src == nil {
		src = scaffold.Template()
	}
	if _, err := scaffold.NewMaterializer(c.deps.FS, src).Materialize(dest); err != nil {
		return fmt.Errorf("failed to copy template: %w", err)
	}

	if err := emitter.Write(c.deps.FS, dest, *answers); err != nil {
		return err
	}

	if answers.GitMode.UsesRemote() {
		p := provision.New(provision.Options{
			FS:        c.deps.FS,
			Prompter:  c.deps.Prompter,
			Home:      c.deps.Home,
			Generator: c.deps.Generator,
			Auth:      c.deps.Auth,
			Keys:      c.deps.Keys,
			Out:       out,
		})
		if err := p.Run(ctx); err != nil {
			return err
		}
	}

	return finalize.New(c.deps.Runner, out).Run(ctx, dest, answers)
}
