// Package sshkey locates, parses and generates the local SSH key used for GitHub.
package sshkey

import (
	"context"
	"encoding/base64"
	"fmt"
	"path/filepath"

	"github.com/kobonostudio/create-webflow/internal/filesystem"
	"github.com/kobonostudio/create-webflow/internal/shell"
	"golang.org/x/crypto/ssh"
)

// DefaultKeyName is the conventional ed25519 key file name
const DefaultKeyName = "id_ed25519"

// KeyPair holds the paths of a private key and its public half
type KeyPair struct {
	PrivatePath string
	PublicPath  string
}

// DefaultKeyPair returns ~/.ssh/id_ed25519 and ~/.ssh/id_ed25519.pub
func DefaultKeyPair(home string) KeyPair {
	private := filepath.Join(home, ".ssh", DefaultKeyName)
	return KeyPair{
		PrivatePath: private,
		PublicPath:  private + ".pub",
	}
}

// Dir returns the directory holding the key files
func (k KeyPair) Dir() string {
	return filepath.Dir(k.PrivatePath)
}

// Name returns the private key file name
func (k KeyPair) Name() string {
	return filepath.Base(k.PrivatePath)
}

// Exists reports whether both key files are present
func (k KeyPair) Exists(fs filesystem.FileSystem) bool {
	return fs.Exists(k.PrivatePath) && fs.Exists(k.PublicPath)
}

// PublicKey is a parsed authorized_keys line
type PublicKey struct {
	Comment string
	key     ssh.PublicKey
}

// ParsePublicKey parses the content of a .pub file
func ParsePublicKey(content []byte) (*PublicKey, error) {
	key, comment, _, _, err := ssh.ParseAuthorizedKey(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %w", err)
	}
	return &PublicKey{Comment: comment, key: key}, nil
}

// Type returns the key algorithm, e.g. "ssh-ed25519"
func (p *PublicKey) Type() string {
	return p.key.Type()
}

// Prefix returns "<type> <base64 data>", the part of the key GitHub echoes
// back when listing registered keys
func (p *PublicKey) Prefix() string {
	return p.key.Type() + " " + base64.StdEncoding.EncodeToString(p.key.Marshal())
}

// Fingerprint returns the SHA256 fingerprint shown by ssh-keygen -l
func (p *PublicKey) Fingerprint() string {
	return ssh.FingerprintSHA256(p.key)
}

// Generator creates a new key pair
type Generator interface {
	Generate(ctx context.Context, pair KeyPair, email string) error
}

// KeygenGenerator implements Generator by running ssh-keygen
type KeygenGenerator struct {
	runner shell.Runner
}

// NewKeygenGenerator creates a KeygenGenerator
func NewKeygenGenerator(runner shell.Runner) *KeygenGenerator {
	return &KeygenGenerator{runner: runner}
}

// Generate runs ssh-keygen with an empty passphrase and inherited stdio
func (g *KeygenGenerator) Generate(ctx context.Context, pair KeyPair, email string) error {
	cmd := shell.NewInteractiveCommand("ssh-keygen",
		"-t", "ed25519",
		"-C", email,
		"-f", pair.PrivatePath,
		"-N", "",
	)
	if _, err := g.runner.Run(ctx, cmd); err != nil {
		return fmt.Errorf("failed to generate SSH key: %w", err)
	}
	return nil
}
