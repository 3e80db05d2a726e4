package cli

import (
	"errors"

	"github.com/kobonostudio/create-webflow/internal/github"
	"github.com/kobonostudio/create-webflow/internal/prompt"
)

// UserMessage returns the line printed for a failed run
func UserMessage(err error) string {
	switch {
	case errors.Is(err, prompt.ErrCancelled):
		return "Operation cancelled."
	case errors.Is(err, github.ErrNotAuthenticated):
		return "Still not authenticated. Aborting."
	default:
		return err.Error()
	}
}
