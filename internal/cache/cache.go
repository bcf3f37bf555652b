package cache

import "sync/atomic"

// Snapshot holds one immutable value that can be replaced or cleared.
// The zero value is empty and ready to use.
type Snapshot[T any] struct{ v atomic.Pointer[T] }

// Load returns the stored value and whether one is present.
func (s *Snapshot[T]) Load() (T, bool) {
	p := s.v.Load()
	if p == nil {
		var z T
		return z, false
	}
	return *p, true
}

// Store atomically swaps in the new value.
func (s *Snapshot[T]) Store(v T) {
	s.v.Store(&v)
}

// Reset empties the snapshot.
func (s *Snapshot[T]) Reset() {
	s.v.Store(nil)
}

// LoadOrFill returns the stored value, calling fill and storing its result
// when the snapshot is empty. Failed fills are not stored.
func (s *Snapshot[T]) LoadOrFill(fill func() (T, error)) (T, error) {
	if v, ok := s.Load(); ok {
		return v, nil
	}
	v, err := fill()
	if err != nil {
		return v, err
	}
	s.Store(v)
	return v, nil
}
