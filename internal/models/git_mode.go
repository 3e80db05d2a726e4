package models

import (
	"fmt"
)

// GitMode represents how many remote repositories back a project
type GitMode string

const (
	// GitModeNone skips every remote Git setup step
	GitModeNone GitMode = "none"
	// GitModePublicOnly keeps source and dist in one public repository
	GitModePublicOnly GitMode = "public-only"
	// GitModeSplit keeps source private and publishes dist to a second public repository
	GitModeSplit GitMode = "split"
)

// IsValid checks if the git mode is valid
func (m GitMode) IsValid() bool {
	switch m {
	case GitModeNone, GitModePublicOnly, GitModeSplit:
		return true
	default:
		return false
	}
}

// UsesRemote reports whether the mode needs GitHub access
func (m GitMode) UsesRemote() bool {
	return m == GitModePublicOnly || m == GitModeSplit
}

// String returns the string representation of GitMode
func (m GitMode) String() string {
	return string(m)
}

// ParseGitMode parses a string into a GitMode
func ParseGitMode(s string) (GitMode, error) {
	m := GitMode(s)
	if !m.IsValid() {
		return "", fmt.Errorf("invalid git mode: %s (must be none, public-only, or split)", s)
	}
	return m, nil
}
