// Package factor implements the randomized concurrent factor-search engine.
// This file contains the Observer pattern implementation for worker activity
// reporting.
package factor

import "sync"

// ProgressReporter is the functional form of activity reporting used inside
// the search cores: it receives the worker index and that worker's
// cumulative count of evaluated candidates.
type ProgressReporter func(workerIndex int, candidates uint64)

// ProgressObserver receives notifications of worker activity, enabling
// decoupled handling of updates for UI, logging, and metrics.
type ProgressObserver interface {
	// Update is called at every batch boundary.
	//
	// Parameters:
	//   - workerIndex: The worker goroutine identifier.
	//   - candidates: That worker's cumulative evaluated-candidate count.
	Update(workerIndex int, candidates uint64)
}

// ProgressSubject manages observer registration and notification. It is safe
// for concurrent use; workers notify it from their batch loops.
type ProgressSubject struct {
	observers []ProgressObserver
	mu        sync.RWMutex
}

// NewProgressSubject creates a new, empty subject.
func NewProgressSubject() *ProgressSubject {
	return &ProgressSubject{observers: make([]ProgressObserver, 0)}
}

// Register adds an observer. Nil observers are ignored.
func (s *ProgressSubject) Register(observer ProgressObserver) {
	if observer == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, observer)
}

// Unregister removes an observer; unknown observers are a no-op.
func (s *ProgressSubject) Unregister(observer ProgressObserver) {
	if observer == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, o := range s.observers {
		if o == observer {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			return
		}
	}
}

// Notify sends an activity update to all registered observers, synchronously
// and in registration order.
func (s *ProgressSubject) Notify(workerIndex int, candidates uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, observer := range s.observers {
		observer.Update(workerIndex, candidates)
	}
}

// ObserverCount returns the number of registered observers. Primarily useful
// for tests and diagnostics.
func (s *ProgressSubject) ObserverCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.observers)
}

// AsProgressReporter adapts the subject to the functional ProgressReporter
// used by the search cores.
func (s *ProgressSubject) AsProgressReporter() ProgressReporter {
	return func(workerIndex int, candidates uint64) {
		s.Notify(workerIndex, candidates)
	}
}
