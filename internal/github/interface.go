package github

import (
	"context"
	"errors"
)

var (
	// ErrNotAuthenticated is returned when gh is still logged out after a login attempt
	ErrNotAuthenticated = errors.New("still not authenticated")

	// ErrSigningKeyScope is returned when the token lacks the scope gh needs
	// to list signing keys; authentication keys may still be listed fine
	ErrSigningKeyScope = errors.New("signing key scope missing")

	// ErrGitHubTokenNotFound is returned when neither GH_TOKEN nor GITHUB_TOKEN is set
	ErrGitHubTokenNotFound = errors.New("GITHUB_TOKEN or GH_TOKEN environment variable not found")
)

// AuthProvider checks and establishes a GitHub session
type AuthProvider interface {
	// Status returns nil when a session is active
	Status(ctx context.Context) error

	// Login starts an interactive login
	Login(ctx context.Context) error
}

// KeyRegistry provides an abstraction over the SSH keys of the
// authenticated GitHub account
type KeyRegistry interface {
	// Has reports whether a registered key starts with prefix, the
	// "<type> <base64>" part of an authorized_keys line
	Has(ctx context.Context, prefix string) (bool, error)

	// Add registers a public key
	Add(ctx context.Context, req *AddKeyRequest) error
}

// AddKeyRequest represents a request to register a public key
type AddKeyRequest struct {
	Title string

	// Path is the .pub file, used by the gh CLI
	Path string

	// Key is the authorized_keys line, used by the API
	Key string
}
