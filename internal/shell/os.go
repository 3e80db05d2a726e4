package shell

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
)

// OSRunner implements Runner using os/exec
type OSRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewOSRunner creates an OSRunner bound to the process stdio
func NewOSRunner() *OSRunner {
	return &OSRunner{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run executes the command and waits for it to finish
func (r *OSRunner) Run(ctx context.Context, c Command) (Result, error) {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir

	var stdout, stderr bytes.Buffer
	if c.Interactive {
		cmd.Stdin = r.Stdin
		cmd.Stdout = r.Stdout
		cmd.Stderr = r.Stderr
	} else {
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
	}

	err := cmd.Run()

	result := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		return result, &ExitError{
			Command: c.String(),
			Stderr:  result.Stderr,
			Err:     err,
		}
	}

	return result, nil
}
