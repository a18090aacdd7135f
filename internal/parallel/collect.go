// Package parallel provides small synchronization helpers for the worker
// pool: first-error and first-result capture across racing goroutines.
package parallel

import "sync"

// ErrorCollector records the first non-nil error reported by any of a group
// of goroutines. It is safe for concurrent use.
type ErrorCollector struct {
	once sync.Once
	err  error
}

// SetError records err if no error has been recorded yet. Nil errors are
// ignored.
func (c *ErrorCollector) SetError(err error) {
	if err != nil {
		c.once.Do(func() {
			c.err = err
		})
	}
}

// Err returns the first recorded error, or nil. Call it after the group has
// been joined.
func (c *ErrorCollector) Err() error {
	return c.err
}

// ResultCollector keeps the first value offered by any of a group of racing
// goroutines and discards the rest. Many factor-search workers may discover
// a factor pair near-simultaneously; only the first one is reported.
type ResultCollector[T any] struct {
	mu  sync.Mutex
	val T
	set bool
}

// Offer stores v if no value has been stored yet and reports whether v won
// the race.
func (c *ResultCollector[T]) Offer(v T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.set {
		return false
	}
	c.val = v
	c.set = true
	return true
}

// Get returns the stored value and whether one was stored. Call it after the
// group has been joined.
func (c *ResultCollector[T]) Get() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.val, c.set
}
