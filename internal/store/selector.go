package store

import (
	"sync"
	"sync/atomic"
)

// Selector derives a value from a snapshot and caches it. The cache holds a
// single entry: the result is recomputed only when the key extracted from
// the snapshot differs from the previous key. Keys are compared with ==, so
// pointer keys give reference-equality memoization.
type Selector[K comparable, R any] struct {
	key     func(*RootState) K
	compute func(*RootState) R

	mu      sync.Mutex
	primed  bool
	lastKey K
	result  R

	recomputations atomic.Int64
}

// NewSelector builds a Selector from a key extractor and a compute function.
func NewSelector[K comparable, R any](key func(*RootState) K, compute func(*RootState) R) *Selector[K, R] {
	return &Selector[K, R]{key: key, compute: compute}
}

// Select returns the derived value for state.
func (s *Selector[K, R]) Select(state *RootState) R {
	k := s.key(state)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.primed && k == s.lastKey {
		return s.result
	}
	s.result = s.compute(state)
	s.lastKey = k
	s.primed = true
	s.recomputations.Add(1)
	return s.result
}

// Recomputations returns how many times the compute function has run.
func (s *Selector[K, R]) Recomputations() int64 {
	return s.recomputations.Load()
}

// ResetRecomputations zeroes the recomputation counter.
func (s *Selector[K, R]) ResetRecomputations() {
	s.recomputations.Store(0)
}
