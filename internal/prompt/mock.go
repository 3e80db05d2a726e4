package prompt

import (
	"fmt"
	"sync"
)

// MockPrompter implements Prompter with scripted answers keyed by message
//
// Unscripted questions take their default, as if the user pressed enter.
// Validators run against the scripted answer and their error is returned,
// since there is no user to re-ask.
type MockPrompter struct {
	mu       sync.Mutex
	inputs   map[string]string
	confirms map[string]bool
	selects  map[string]string
	cancel   map[string]bool
	asked    []string
}

// NewMockPrompter creates a new MockPrompter
func NewMockPrompter() *MockPrompter {
	return &MockPrompter{
		inputs:   make(map[string]string),
		confirms: make(map[string]bool),
		selects:  make(map[string]string),
		cancel:   make(map[string]bool),
	}
}

// SetInput scripts the answer to an Input
func (m *MockPrompter) SetInput(message, answer string) *MockPrompter {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inputs[message] = answer
	return m
}

// SetConfirm scripts the answer to a Confirm
func (m *MockPrompter) SetConfirm(message string, answer bool) *MockPrompter {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.confirms[message] = answer
	return m
}

// SetSelect scripts the answer to a Select
func (m *MockPrompter) SetSelect(message, value string) *MockPrompter {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.selects[message] = value
	return m
}

// CancelOn makes the question with this message return ErrCancelled
func (m *MockPrompter) CancelOn(message string) *MockPrompter {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cancel[message] = true
	return m
}

// Asked returns the messages of every question asked so far, in order
func (m *MockPrompter) Asked() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]string, len(m.asked))
	copy(result, m.asked)
	return result
}

func (m *MockPrompter) record(message string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.asked = append(m.asked, message)
	if m.cancel[message] {
		return ErrCancelled
	}
	return nil
}

func (m *MockPrompter) Input(q Input) (string, error) {
	if err := m.record(q.Message); err != nil {
		return "", err
	}

	m.mu.Lock()
	answer, ok := m.inputs[q.Message]
	m.mu.Unlock()
	if !ok {
		answer = q.Default
	}

	if q.Validate != nil {
		if err := q.Validate(answer); err != nil {
			return "", fmt.Errorf("%s %w", q.Message, err)
		}
	}

	return answer, nil
}

func (m *MockPrompter) Confirm(q Confirm) (bool, error) {
	if err := m.record(q.Message); err != nil {
		return false, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	answer, ok := m.confirms[q.Message]
	if !ok {
		return q.Default, nil
	}
	return answer, nil
}

func (m *MockPrompter) Select(q Select) (string, error) {
	if err := m.record(q.Message); err != nil {
		return "", err
	}

	m.mu.Lock()
	answer, ok := m.selects[q.Message]
	m.mu.Unlock()
	if !ok {
		answer = q.Default
	}

	if !q.Has(answer) {
		return "", fmt.Errorf("%s %q is not an option", q.Message, answer)
	}

	return answer, nil
}
