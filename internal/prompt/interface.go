// Package prompt asks the user one question at a time.
package prompt

import (
	"errors"
)

// ErrCancelled is returned when the user aborts a prompt
var ErrCancelled = errors.New("operation cancelled")

// Prompter provides an abstraction over interactive questions for testability
type Prompter interface {
	Input(q Input) (string, error)
	Confirm(q Confirm) (bool, error)
	Select(q Select) (string, error)
}

// Input is a free-text question
type Input struct {
	Message string
	Default string

	// Validate rejects an answer; the prompt is asked again until it passes
	Validate func(string) error
}

// Confirm is a yes/no question
type Confirm struct {
	Message string
	Default bool
}

// Select is a single-choice question
type Select struct {
	Message string
	Options []Option
	Default string
}

// Option is one choice of a Select
type Option struct {
	Label string
	Value string
}

// Has reports whether value is one of the options
func (q Select) Has(value string) bool {
	for _, opt := range q.Options {
		if opt.Value == value {
			return true
		}
	}
	return false
}
