package config

import "sync"

// Lazy holds a value that is built on first access and shared afterwards.
//
// Unlike sync.Once a failed initialization is not remembered: the error is
// returned to the caller that triggered it and the next Get runs init again.
// The mutex is held for the whole initialization so concurrent first callers
// wait for a single build and never observe a partially constructed value.
type Lazy[T any] struct {
	mu     sync.Mutex
	init   func() (T, error)
	value  T
	loaded bool
}

// NewLazy returns a holder that builds its value with init.
func NewLazy[T any](init func() (T, error)) *Lazy[T] {
	return &Lazy[T]{init: init}
}

// Get returns the cached value, building it first if needed.
func (l *Lazy[T]) Get() (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.loaded {
		return l.value, nil
	}

	var zero T
	if l.init == nil {
		return zero, ErrNilInitializer
	}

	v, err := l.init()
	if err != nil {
		return zero, err
	}

	l.value = v
	l.loaded = true
	return l.value, nil
}

// Loaded reports whether a value is currently cached.
func (l *Lazy[T]) Loaded() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loaded
}

// Reset drops the cached value so the next Get rebuilds it.
// Intended for tests.
func (l *Lazy[T]) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()

	var zero T
	l.value = zero
	l.loaded = false
}
