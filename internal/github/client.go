package github

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/go-github/v57/github"
	"github.com/kobonostudio/create-webflow/internal/shell"
	"golang.org/x/oauth2"
)

const keysPerPage = 100

// APIKeyRegistry implements KeyRegistry using the real GitHub API
type APIKeyRegistry struct {
	client *github.Client
}

// NewAPIKeyRegistry creates a registry authenticated with token
func NewAPIKeyRegistry(token string) *APIKeyRegistry {
	ctx := context.Background()
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(ctx, ts)

	return &APIKeyRegistry{
		client: github.NewClient(tc),
	}
}

// NewAPIKeyRegistryWithClient wraps an existing go-github client
func NewAPIKeyRegistryWithClient(client *github.Client) *APIKeyRegistry {
	return &APIKeyRegistry{client: client}
}

// TokenFromEnv returns GH_TOKEN, falling back to GITHUB_TOKEN
func TokenFromEnv() (string, error) {
	token := os.Getenv("GH_TOKEN")
	if token == "" {
		token = os.Getenv("GITHUB_TOKEN")
	}
	if token == "" {
		return "", ErrGitHubTokenNotFound
	}
	return token, nil
}

// NewKeyRegistryFromEnv returns the API registry when a token is set in the
// environment and the gh CLI registry otherwise
func NewKeyRegistryFromEnv(runner shell.Runner) KeyRegistry {
	token, err := TokenFromEnv()
	if err != nil {
		return NewCLIKeyRegistry(runner)
	}
	return NewAPIKeyRegistry(token)
}

func (r *APIKeyRegistry) Has(ctx context.Context, prefix string) (bool, error) {
	opts := &github.ListOptions{PerPage: keysPerPage}
	for {
		keys, resp, err := r.client.Users.ListKeys(ctx, "", opts)
		if err != nil {
			return false, fmt.Errorf("failed to list SSH keys: %w", err)
		}
		for _, k := range keys {
			if strings.HasPrefix(k.GetKey(), prefix) {
				return true, nil
			}
		}
		if resp == nil || resp.NextPage == 0 {
			return false, nil
		}
		opts.Page = resp.NextPage
	}
}

func (r *APIKeyRegistry) Add(ctx context.Context, req *AddKeyRequest) error {
	title := req.Title
	key := strings.TrimSpace(req.Key)
	_, _, err := r.client.Users.CreateKey(ctx, &github.Key{
		Title: &title,
		Key:   &key,
	})
	if err != nil {
		return fmt.Errorf("failed to add SSH key: %w", err)
	}
	return nil
}
