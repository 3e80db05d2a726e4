package github

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kobonostudio/create-webflow/internal/shell"
)

const signingKeyScopeMarker = "ssh_signing_keys"

// CLIAuth implements AuthProvider with the gh CLI
type CLIAuth struct {
	runner shell.Runner
}

// NewCLIAuth creates a CLIAuth
func NewCLIAuth(runner shell.Runner) *CLIAuth {
	return &CLIAuth{runner: runner}
}

func (a *CLIAuth) Status(ctx context.Context) error {
	_, err := a.runner.Run(ctx, shell.NewCommand("gh", "auth", "status"))
	return err
}

func (a *CLIAuth) Login(ctx context.Context) error {
	if _, err := a.runner.Run(ctx, shell.NewInteractiveCommand("gh", "auth", "login")); err != nil {
		return fmt.Errorf("gh auth login failed: %w", err)
	}
	return nil
}

// CLIKeyRegistry implements KeyRegistry with gh ssh-key
type CLIKeyRegistry struct {
	runner shell.Runner
}

// NewCLIKeyRegistry creates a CLIKeyRegistry
func NewCLIKeyRegistry(runner shell.Runner) *CLIKeyRegistry {
	return &CLIKeyRegistry{runner: runner}
}

func (r *CLIKeyRegistry) Has(ctx context.Context, prefix string) (bool, error) {
	result, err := r.runner.Run(ctx, shell.NewCommand("gh", "ssh-key", "list"))
	if err != nil {
		var exitErr *shell.ExitError
		if errors.As(err, &exitErr) && strings.Contains(exitErr.Stderr, signingKeyScopeMarker) {
			return false, ErrSigningKeyScope
		}
		return false, fmt.Errorf("failed to list SSH keys: %w", err)
	}
	return strings.Contains(result.Stdout, prefix), nil
}

func (r *CLIKeyRegistry) Add(ctx context.Context, req *AddKeyRequest) error {
	cmd := shell.NewInteractiveCommand("gh", "ssh-key", "add", req.Path, "--title", req.Title)
	if _, err := r.runner.Run(ctx, cmd); err != nil {
		return fmt.Errorf("failed to add SSH key: %w", err)
	}
	return nil
}
