// Package provision makes sure the machine can push to GitHub over SSH:
// a local ed25519 key, an authenticated gh session, and the key registered
// on the account.
package provision

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/kobonostudio/create-webflow/internal/filesystem"
	"github.com/kobonostudio/create-webflow/internal/github"
	"github.com/kobonostudio/create-webflow/internal/prompt"
	"github.com/kobonostudio/create-webflow/internal/sshkey"
	"github.com/kobonostudio/create-webflow/internal/tui"
)

// Question messages, exported so tests can script answers
const (
	MsgGenerateKey = "Generate a new SSH key (ed25519) for GitHub?"
	MsgEmail       = "Enter the email to associate with your SSH key:"
	MsgAddKey      = "Do you want to add your SSH key to GitHub now?"
	MsgKeyTitle    = "Enter a name for your SSH key (e.g. my-dev-machine):"
)

// DefaultKeyTitle names the key on GitHub when the user keeps the default
const DefaultKeyTitle = "my-dev-machine"

// ManualKeygen is shown when the user declines key generation
const ManualKeygen = `ssh-keygen -t ed25519 -C "your-email@example.com"`

// Shown verbatim under the email field.
var errInvalidEmail = errors.New("Invalid email format") //nolint:staticcheck // ST1005: user-facing text

// Options holds the dependencies of a Provisioner
type Options struct {
	FS        filesystem.FileSystem
	Prompter  prompt.Prompter
	Home      string
	Generator sshkey.Generator
	Auth      github.AuthProvider
	Keys      github.KeyRegistry
	Out       io.Writer
}

// Provisioner runs the SSH and GitHub checks
type Provisioner struct {
	opts Options
	pair sshkey.KeyPair
}

// New creates a Provisioner for the default key under opts.Home
func New(opts Options) *Provisioner {
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	return &Provisioner{
		opts: opts,
		pair: sshkey.DefaultKeyPair(opts.Home),
	}
}

// Run checks the key, the session and the registration, in that order.
// Each step does nothing when its state is already there.
func (p *Provisioner) Run(ctx context.Context) error {
	if err := p.EnsureKey(ctx); err != nil {
		return err
	}
	if err := p.EnsureAuth(ctx); err != nil {
		return err
	}
	return p.EnsureRegistered(ctx)
}

// EnsureKey generates ~/.ssh/id_ed25519 when it is missing and the user agrees
func (p *Provisioner) EnsureKey(ctx context.Context) error {
	out := p.opts.Out
	name := p.pair.Name()

	if p.pair.Exists(p.opts.FS) {
		tui.Success(out, "SSH key (%s) found.", name)
		return nil
	}

	tui.Info(out, "🔐", "No SSH key (%s) found.", name)
	generate, err := p.opts.Prompter.Confirm(prompt.Confirm{
		Message: MsgGenerateKey,
		Default: true,
	})
	if err != nil {
		return err
	}
	if !generate {
		tui.Info(out, "👉", "You can generate it manually with:")
		tui.Hint(out, ManualKeygen)
		return nil
	}

	email, err := p.opts.Prompter.Input(prompt.Input{
		Message:  MsgEmail,
		Validate: validateEmail,
	})
	if err != nil {
		return err
	}

	if err := p.opts.FS.MkdirAll(p.pair.Dir(), 0700); err != nil {
		return fmt.Errorf("failed to create %s: %w", p.pair.Dir(), err)
	}

	tui.Info(out, "🔧", "Generating key...")
	if err := p.opts.Generator.Generate(ctx, p.pair, strings.TrimSpace(email)); err != nil {
		return err
	}
	tui.Success(out, "SSH key generated at: %s", p.pair.PrivatePath)

	return nil
}

// EnsureAuth logs in with gh when there is no session
func (p *Provisioner) EnsureAuth(ctx context.Context) error {
	out := p.opts.Out

	if err := p.opts.Auth.Status(ctx); err == nil {
		tui.Success(out, "GitHub CLI is authenticated with SSH.")
		return nil
	}

	_, _ = fmt.Fprintln(out)
	tui.Warn(out, "GitHub CLI not authenticated. Running gh auth login...")
	if err := p.opts.Auth.Login(ctx); err != nil {
		return err
	}

	if err := p.opts.Auth.Status(ctx); err != nil {
		return github.ErrNotAuthenticated
	}

	return nil
}

// EnsureRegistered adds the local public key to GitHub when it is not there
func (p *Provisioner) EnsureRegistered(ctx context.Context) error {
	out := p.opts.Out

	if !p.opts.FS.Exists(p.pair.PublicPath) {
		tui.Warn(out, "No public key at %s, skipping GitHub registration.", p.pair.PublicPath)
		return nil
	}

	content, err := p.opts.FS.ReadFile(p.pair.PublicPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", p.pair.PublicPath, err)
	}
	key, err := sshkey.ParsePublicKey(content)
	if err != nil {
		return fmt.Errorf("%s: %w", p.pair.PublicPath, err)
	}

	found, err := p.opts.Keys.Has(ctx, key.Prefix())
	switch {
	case errors.Is(err, github.ErrSigningKeyScope):
		tui.Warn(out, "GitHub API warning (signing key scope missing): ignored.")
	case err != nil:
		return fmt.Errorf("failed to check SSH keys on GitHub: %w", err)
	}

	if found {
		tui.Success(out, "SSH key already exists on GitHub.")
		return nil
	}

	add, err := p.opts.Prompter.Confirm(prompt.Confirm{
		Message: MsgAddKey,
		Default: true,
	})
	if err != nil {
		return err
	}
	if !add {
		tui.Warn(out, "SSH key not added. You may need to do it manually.")
		return nil
	}

	title, err := p.opts.Prompter.Input(prompt.Input{
		Message: MsgKeyTitle,
		Default: DefaultKeyTitle,
	})
	if err != nil {
		return err
	}
	title = strings.TrimSpace(title)
	if title == "" {
		title = DefaultKeyTitle
	}

	err = p.opts.Keys.Add(ctx, &github.AddKeyRequest{
		Title: title,
		Path:  p.pair.PublicPath,
		Key:   string(content),
	})
	if err != nil {
		return err
	}

	tui.Success(out, "SSH key added to GitHub.")
	tui.Info(out, "🔑", "Fingerprint: %s", key.Fingerprint())

	return nil
}

func validateEmail(v string) error {
	if !strings.Contains(v, "@") {
		return errInvalidEmail
	}
	return nil
}
