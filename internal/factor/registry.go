package factor

// Note: FactorizerFactory interface is not mockable with mockgen because
// Register() uses the unexported searchCore type. Use DefaultFactory or
// manual mocks instead.

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownStrategy is returned by factory lookups for names that were
// never registered. Callers match it with errors.Is.
var ErrUnknownStrategy = errors.New("unknown strategy")

// FactorizerFactory is an interface for creating Factorizer instances.
// It allows for flexible strategy instantiation and registration,
// enabling dependency injection and easier testing.
type FactorizerFactory interface {
	// Create creates a new Factorizer instance by name.
	// Returns an error if the strategy is not registered.
	Create(name string) (Factorizer, error)

	// Get returns an existing Factorizer instance by name.
	// Returns an error if the strategy is not registered.
	Get(name string) (Factorizer, error)

	// List returns a sorted list of registered strategy names.
	List() []string

	// Register adds a new search strategy to the factory.
	Register(name string, creator func() searchCore) error

	// GetAll returns a map of all registered factorizers.
	GetAll() map[string]Factorizer
}

// DefaultFactory is the default implementation of FactorizerFactory.
// It maintains a thread-safe registry of strategy creators and
// caches Factorizer instances for reuse.
type DefaultFactory struct {
	mu          sync.RWMutex
	creators    map[string]func() searchCore
	factorizers map[string]Factorizer
}

// NewDefaultFactory creates a new DefaultFactory with the standard
// search strategies pre-registered.
//
// Pre-registered strategies:
//   - "semiprime": direct-division fast path for two-prime targets
//   - "general": bounded GCD search for arbitrary composites
//   - "period": GCD search plus Monte-Carlo period estimation
//
// Returns:
//   - *DefaultFactory: A new factory with default strategies registered.
func NewDefaultFactory() *DefaultFactory {
	f := &DefaultFactory{
		creators:    make(map[string]func() searchCore),
		factorizers: make(map[string]Factorizer),
	}

	// Register the default strategies
	_ = f.Register("semiprime", func() searchCore { return &SemiprimeSearch{} })
	_ = f.Register("general", func() searchCore { return &GeneralSearch{} })
	_ = f.Register("period", func() searchCore { return &PeriodSearch{} })

	return f
}

// Register adds a new search strategy to the factory.
// The creator function is called lazily when the strategy is first requested.
// If a strategy with the same name already exists, it will be replaced.
//
// Parameters:
//   - name: The unique identifier for the strategy.
//   - creator: A function that creates a new searchCore instance.
func (f *DefaultFactory) Register(name string, creator func() searchCore) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.creators[name] = creator
	// Clear cached factorizer if it exists, so it will be recreated with the new creator
	delete(f.factorizers, name)
	return nil
}

// Create creates a new Factorizer instance by name.
// Unlike Get(), this always creates a fresh instance without caching.
//
// Parameters:
//   - name: The name of the strategy to create.
//
// Returns:
//   - Factorizer: A new Factorizer instance.
//   - error: An error if the strategy is not registered.
func (f *DefaultFactory) Create(name string) (Factorizer, error) {
	f.mu.RLock()
	creator, ok := f.creators[name]
	f.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, name)
	}
	return NewFactorizer(creator()), nil
}

// Get returns a Factorizer instance by name.
// Instances are cached and reused for subsequent calls with the same name.
// This is the preferred method for most use cases.
//
// Parameters:
//   - name: The name of the strategy to retrieve.
//
// Returns:
//   - Factorizer: The Factorizer instance.
//   - error: An error if the strategy is not registered.
func (f *DefaultFactory) Get(name string) (Factorizer, error) {
	// Check cache first with read lock
	f.mu.RLock()
	if fz, exists := f.factorizers[name]; exists {
		f.mu.RUnlock()
		return fz, nil
	}
	f.mu.RUnlock()

	// Create new factorizer with write lock
	f.mu.Lock()
	defer f.mu.Unlock()

	// Double-check after acquiring write lock
	if fz, exists := f.factorizers[name]; exists {
		return fz, nil
	}

	creator, ok := f.creators[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, name)
	}

	fz := NewFactorizer(creator())
	f.factorizers[name] = fz
	return fz, nil
}

// List returns a sorted list of all registered strategy names.
// The list is sorted alphabetically for consistent ordering.
//
// Returns:
//   - []string: A sorted slice of strategy names.
func (f *DefaultFactory) List() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	names := make([]string, 0, len(f.creators))
	for name := range f.creators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetAll returns a map of all registered factorizers.
// This method lazily initializes all factorizers that haven't been
// created yet.
//
// Returns:
//   - map[string]Factorizer: A map of strategy names to Factorizer instances.
func (f *DefaultFactory) GetAll() map[string]Factorizer {
	f.mu.Lock()
	defer f.mu.Unlock()

	// Ensure all factorizers are initialized
	for name, creator := range f.creators {
		if _, exists := f.factorizers[name]; !exists {
			f.factorizers[name] = NewFactorizer(creator())
		}
	}

	// Return a copy to prevent external modifications
	result := make(map[string]Factorizer, len(f.factorizers))
	for name, fz := range f.factorizers {
		result[name] = fz
	}
	return result
}

// MustGet is like Get but panics if the strategy is not found.
// This is useful in initialization code where missing strategies
// should be considered a programming error.
//
// Parameters:
//   - name: The name of the strategy to retrieve.
//
// Returns:
//   - Factorizer: The Factorizer instance.
//
// Panics:
//   - If the strategy is not registered.
func (f *DefaultFactory) MustGet(name string) Factorizer {
	fz, err := f.Get(name)
	if err != nil {
		panic(fmt.Sprintf("factor: required strategy not found: %s", name))
	}
	return fz
}

// Has checks if a strategy with the given name is registered.
//
// Parameters:
//   - name: The name of the strategy to check.
//
// Returns:
//   - bool: true if the strategy is registered, false otherwise.
func (f *DefaultFactory) Has(name string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, exists := f.creators[name]
	return exists
}

// globalFactory is the default global factory instance.
var globalFactory = NewDefaultFactory()

// GlobalFactory returns the global factory instance.
// This is a convenience for applications that don't need
// multiple factory instances.
//
// Returns:
//   - *DefaultFactory: The global factory instance.
func GlobalFactory() *DefaultFactory {
	return globalFactory
}

// RegisterStrategy registers a search strategy in the global factory.
// This is a convenience function for adding custom strategies.
//
// Parameters:
//   - name: The unique identifier for the strategy.
//   - creator: A function that creates a new searchCore instance.
func RegisterStrategy(name string, creator func() searchCore) error {
	return globalFactory.Register(name, creator)
}
