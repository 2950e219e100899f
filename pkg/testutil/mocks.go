package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockRunner is a testify mock implementing git.Runner
type MockRunner struct {
	mock.Mock
}

// NewMockRunner creates an empty MockRunner
func NewMockRunner() *MockRunner {
	return &MockRunner{}
}

// Run records the call; ctx is not part of the expectation
func (m *MockRunner) Run(ctx context.Context, dir string, args ...string) error {
	called := m.Called(dir, args)
	return called.Error(0)
}

// ExpectRun registers an expected git invocation
func (m *MockRunner) ExpectRun(dir string, args ...string) *mock.Call {
	return m.On("Run", dir, args)
}

// Invocations returns the argument lists of every Run call, in order
func (m *MockRunner) Invocations() [][]string {
	var out [][]string
	for _, call := range m.Calls {
		if call.Method == "Run" {
			out = append(out, call.Arguments.Get(1).([]string))
		}
	}
	return out
}
