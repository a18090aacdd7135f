package factor

import (
	"context"

	"github.com/agbru/factorcalc/internal/bigmath"
)

// MockFactorizer is a mock implementation of the Factorizer interface.
// It is exported to allow external packages (like cmd/factorcalc) to use it for testing.
type MockFactorizer struct {
	Result *Result
	Err    error
	Fn     func(ctx context.Context, n *bigmath.Int) (*Result, error)
}

// Name returns the factorizer name.
func (m *MockFactorizer) Name() string {
	return "mock"
}

// Factor returns the pre-configured Result and Err, or calls Fn if provided.
func (m *MockFactorizer) Factor(ctx context.Context, subject *ProgressSubject, n *bigmath.Int, opts Options) (*Result, error) {
	if m.Fn != nil {
		return m.Fn(ctx, n)
	}
	if subject != nil {
		subject.Notify(0, 1)
	}
	return m.Result, m.Err
}

// TestFactory is a FactorizerFactory implementation designed for testing.
// It allows tests in other packages to create factories with mock factorizers.
type TestFactory struct {
	factorizers map[string]Factorizer
}

// NewTestFactory creates a factory pre-populated with the given factorizers.
// This is intended for use in tests where mock factorizers are needed.
//
// Parameters:
//   - factorizers: A map of strategy names to Factorizer instances.
//
// Returns:
//   - *TestFactory: A factory that can be used in place of DefaultFactory in tests.
func NewTestFactory(factorizers map[string]Factorizer) *TestFactory {
	if factorizers == nil {
		factorizers = make(map[string]Factorizer)
	}
	return &TestFactory{factorizers: factorizers}
}

// Create returns the factorizer by name.
func (f *TestFactory) Create(name string) (Factorizer, error) {
	return f.Get(name)
}

// Get returns the factorizer by name.
func (f *TestFactory) Get(name string) (Factorizer, error) {
	fz, ok := f.factorizers[name]
	if !ok {
		return nil, &UnknownStrategyError{Name: name}
	}
	return fz, nil
}

// List returns all registered strategy names.
func (f *TestFactory) List() []string {
	names := make([]string, 0, len(f.factorizers))
	for name := range f.factorizers {
		names = append(names, name)
	}
	return names
}

// Register is a no-op for TestFactory as factorizers are provided at construction.
func (f *TestFactory) Register(name string, creator func() searchCore) error {
	// No-op: factorizers are set at construction time
	return nil
}

// GetAll returns all factorizers.
func (f *TestFactory) GetAll() map[string]Factorizer {
	result := make(map[string]Factorizer, len(f.factorizers))
	for k, v := range f.factorizers {
		result[k] = v
	}
	return result
}

// UnknownStrategyError is returned when a strategy name is not found.
type UnknownStrategyError struct {
	Name string
}

func (e *UnknownStrategyError) Error() string {
	return "unknown strategy: " + e.Name
}

// Unwrap lets errors.Is treat factory test doubles the same as
// DefaultFactory lookups.
func (e *UnknownStrategyError) Unwrap() error {
	return ErrUnknownStrategy
}
