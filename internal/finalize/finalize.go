// Package finalize installs the generated project's dependencies and prints
// how to start it.
package finalize

import (
	"context"
	"fmt"
	"io"

	"github.com/kobonostudio/create-webflow/internal/models"
	"github.com/kobonostudio/create-webflow/internal/shell"
	"github.com/kobonostudio/create-webflow/internal/tui"
)

// Finalizer runs the package installer
type Finalizer struct {
	runner shell.Runner
	out    io.Writer
}

// New creates a Finalizer
func New(runner shell.Runner, out io.Writer) *Finalizer {
	return &Finalizer{runner: runner, out: out}
}

// Run executes npm install in dir, then prints the next steps
func (f *Finalizer) Run(ctx context.Context, dir string, answers *models.Answers) error {
	_, _ = fmt.Fprintln(f.out)
	tui.Info(f.out, "📦", "Installing dependencies...")

	if _, err := f.runner.Run(ctx, shell.NewInteractiveCommand("npm", "install").InDir(dir)); err != nil {
		return fmt.Errorf("failed to install dependencies: %w", err)
	}

	steps := tui.NextSteps{}
	if answers.CreateFolder {
		steps.ChangeDir = answers.ProjectName
	}
	_, _ = fmt.Fprint(f.out, tui.RenderNextSteps(steps))

	return nil
}
