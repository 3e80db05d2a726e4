package shell

import (
	"context"
	"fmt"
	"strings"
)

// Runner provides an abstraction over external commands for testability
//
// Commands are always executed from an argv, never through a shell, so
// user-supplied values (emails, key titles, paths) are passed verbatim.
type Runner interface {
	Run(ctx context.Context, cmd Command) (Result, error)
}

// Command describes one external command invocation
type Command struct {
	Name string
	Args []string

	// Dir is the working directory; empty means the current directory
	Dir string

	// Interactive passes the runner's stdin/stdout/stderr through to the
	// command instead of capturing its output
	Interactive bool
}

// NewCommand builds a captured command
func NewCommand(name string, args ...string) Command {
	return Command{Name: name, Args: args}
}

// NewInteractiveCommand builds a command with inherited stdio
func NewInteractiveCommand(name string, args ...string) Command {
	return Command{Name: name, Args: args, Interactive: true}
}

// InDir returns a copy of the command that runs in dir
func (c Command) InDir(dir string) Command {
	c.Dir = dir
	return c
}

// String returns the command line, for messages and mock matching
func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Result holds the captured output of a command
type Result struct {
	Stdout string
	Stderr string
}

// ExitError reports a command that failed to start or exited non-zero
type ExitError struct {
	Command string
	Stderr  string
	Err     error
}

func (e *ExitError) Error() string {
	stderr := strings.TrimSpace(e.Stderr)
	if stderr == "" {
		return fmt.Sprintf("%s: %v", e.Command, e.Err)
	}
	return fmt.Sprintf("%s: %v: %s", e.Command, e.Err, stderr)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}
