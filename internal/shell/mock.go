package shell

import (
	"context"
	"errors"
	"sync"
)

// MockResponse is a scripted outcome for one command line
type MockResponse struct {
	Stdout string
	Stderr string

	// Err makes the command fail; it is wrapped in an ExitError
	Err error
}

// ErrMockExit stands in for a non-zero exit status
var ErrMockExit = errors.New("exit status 1")

// MockRunner implements Runner for testing
//
// Responses are queued per command line. Each call consumes the head of the
// queue; the last response keeps being returned once the queue is drained.
// Unscripted commands succeed with empty output.
type MockRunner struct {
	mu        sync.Mutex
	responses map[string][]MockResponse
	calls     []Command

	// Hooks for testing error scenarios
	RunError error
}

// NewMockRunner creates a new MockRunner
func NewMockRunner() *MockRunner {
	return &MockRunner{
		responses: make(map[string][]MockResponse),
	}
}

// On queues responses for a command line such as "gh auth status"
func (m *MockRunner) On(cmdline string, responses ...MockResponse) *MockRunner {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.responses[cmdline] = append(m.responses[cmdline], responses...)
	return m
}

// Fail is shorthand for a failing response with the given stderr
func Fail(stderr string) MockResponse {
	return MockResponse{Stderr: stderr, Err: ErrMockExit}
}

// Succeed is shorthand for a successful response with the given stdout
func Succeed(stdout string) MockResponse {
	return MockResponse{Stdout: stdout}
}

func (m *MockRunner) Run(ctx context.Context, c Command) (Result, error) {
	if m.RunError != nil {
		return Result{}, m.RunError
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, c)

	key := c.String()
	queue := m.responses[key]
	if len(queue) == 0 {
		return Result{}, nil
	}

	resp := queue[0]
	if len(queue) > 1 {
		m.responses[key] = queue[1:]
	}

	result := Result{Stdout: resp.Stdout, Stderr: resp.Stderr}
	if resp.Err != nil {
		return result, &ExitError{Command: key, Stderr: resp.Stderr, Err: resp.Err}
	}

	return result, nil
}

// Calls returns every command run so far, in order
func (m *MockRunner) Calls() []Command {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]Command, len(m.calls))
	copy(result, m.calls)
	return result
}

// CommandLines returns the command lines run so far, in order
func (m *MockRunner) CommandLines() []string {
	calls := m.Calls()
	lines := make([]string, 0, len(calls))
	for _, c := range calls {
		lines = append(lines, c.String())
	}
	return lines
}

// Reset clears recorded calls and scripted responses
func (m *MockRunner) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.responses = make(map[string][]MockResponse)
	m.calls = nil
	m.RunError = nil
}
