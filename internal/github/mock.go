package github

import (
	"context"
	"strings"
	"sync"
)

// MockAuth implements AuthProvider for testing
type MockAuth struct {
	mu            sync.Mutex
	authenticated bool
	statusCalls   int
	loginCalls    int

	// LoginAuthenticates makes a successful Login start a session
	LoginAuthenticates bool

	// Hooks for testing error scenarios
	LoginError error
}

// NewMockAuth creates a MockAuth with the given session state
func NewMockAuth(authenticated bool) *MockAuth {
	return &MockAuth{authenticated: authenticated, LoginAuthenticates: true}
}

func (m *MockAuth) Status(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.statusCalls++
	if !m.authenticated {
		return ErrNotAuthenticated
	}
	return nil
}

func (m *MockAuth) Login(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.loginCalls++
	if m.LoginError != nil {
		return m.LoginError
	}
	if m.LoginAuthenticates {
		m.authenticated = true
	}
	return nil
}

// StatusCalls returns how many times Status was called
func (m *MockAuth) StatusCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.statusCalls
}

// LoginCalls returns how many times Login was called
func (m *MockAuth) LoginCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loginCalls
}

// MockKeyRegistry implements KeyRegistry for testing
type MockKeyRegistry struct {
	mu    sync.Mutex
	keys  []*AddKeyRequest
	added []*AddKeyRequest

	// Hooks for testing error scenarios
	HasError error
	AddError error
}

// NewMockKeyRegistry creates a new MockKeyRegistry
func NewMockKeyRegistry() *MockKeyRegistry {
	return &MockKeyRegistry{}
}

// SetupKey registers a key as if it was already on the account
func (m *MockKeyRegistry) SetupKey(title, key string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.keys = append(m.keys, &AddKeyRequest{Title: title, Key: key})
}

func (m *MockKeyRegistry) Has(ctx context.Context, prefix string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.HasError != nil {
		return false, m.HasError
	}
	for _, k := range m.keys {
		if strings.HasPrefix(k.Key, prefix) {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockKeyRegistry) Add(ctx context.Context, req *AddKeyRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.AddError != nil {
		return m.AddError
	}
	copied := *req
	m.keys = append(m.keys, &copied)
	m.added = append(m.added, &copied)
	return nil
}

// Added returns the keys registered through Add
func (m *MockKeyRegistry) Added() []*AddKeyRequest {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]*AddKeyRequest, len(m.added))
	copy(result, m.added)
	return result
}
