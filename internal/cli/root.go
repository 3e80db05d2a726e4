package cli

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/kobonostudio/create-webflow/internal/filesystem"
	"github.com/kobonostudio/create-webflow/internal/github"
	"github.com/kobonostudio/create-webflow/internal/prompt"
	"github.com/kobonostudio/create-webflow/internal/scaffold"
	"github.com/kobonostudio/create-webflow/internal/shell"
	"github.com/kobonostudio/create-webflow/internal/sshkey"
	"github.com/spf13/cobra"
)

// Deps holds everything the setup pipeline touches outside the process
type Deps struct {
	FS        filesystem.FileSystem
	Prompter  prompt.Prompter
	Runner    shell.Runner
	Generator sshkey.Generator
	Auth      github.AuthProvider
	Keys      github.KeyRegistry
	Home      string
	Template  fs.FS
}

// NewRootCommand creates the root command
func NewRootCommand(deps Deps) *cobra.Command {
	setup := &SetupCommand{deps: deps}

	return &cobra.Command{
		Use:   "create-webflow",
		Short: "Create a new Webflow script project",
		Long: `Create a new Webflow script project.

Asks a few questions, copies the project template, writes starter.config.js
and package.json, optionally sets up SSH access to GitHub, and installs the
dependencies.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          setup.Run,
	}
}

// Execute runs the root command with production dependencies
func Execute() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to find home directory: %w", err)
	}

	runner := shell.NewOSRunner()
	deps := Deps{
		FS:        filesystem.NewOSFileSystem(),
		Prompter:  prompt.NewHuhPrompter(prompt.WithAccessible(os.Getenv("ACCESSIBLE") != "")),
		Runner:    runner,
		Generator: sshkey.NewKeygenGenerator(runner),
		Auth:      github.NewCLIAuth(runner),
		Keys:      github.NewKeyRegistryFromEnv(runner),
		Home:      home,
		Template:  scaffold.Template(),
	}

	return NewRootCommand(deps).ExecuteContext(context.Background())
}
