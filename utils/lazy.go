package utils

// Lazy is a single-assignment memoized value: the first Get fills it and
// every later Get returns the cached result. The zero value is ready to
// use. Lazy is not synchronized; its owner is single-run state that must
// not be shared across concurrent runs.
type Lazy[T any] struct {
	filled bool
	value  T
}

// Get returns the cached value, computing it with fill on first call.
func (l *Lazy[T]) Get(fill func() T) T {
	if !l.filled {
		l.value = fill()
		l.filled = true
	}

	return l.value
}

// Filled reports whether the value has been materialized.
func (l *Lazy[T]) Filled() bool { return l.filled }
