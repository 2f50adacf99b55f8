package store

import "fmt"

// Bounded wraps a Hash with a hard entry limit. Put returns an error
// wrapping ErrRejected once the limit is reached, which a registry
// surfaces as an internal-store failure.
//
// Useful when a registry guards a finite resource pool and unbounded
// growth would mask a leak.
type Bounded[V any] struct {
	inner *Hash[V]
	max   int
}

// NewBounded creates a store that holds at most max entries.
// max must be positive.
func NewBounded[V any](max int) *Bounded[V] {
	if max <= 0 {
		panic("store: bounded store requires a positive limit")
	}
	return &Bounded[V]{
		inner: NewHashWithCapacity[V](max),
		max:   max,
	}
}

// Put implements Store. It fails once the store holds max entries.
func (b *Bounded[V]) Put(key uint64, v V) error {
	if b.inner.Len() >= b.max {
		return fmt.Errorf("%w: limit of %d entries reached", ErrRejected, b.max)
	}
	return b.inner.Put(key, v)
}

// Get implements Store.
func (b *Bounded[V]) Get(key uint64) (V, bool) {
	return b.inner.Get(key)
}

// Delete implements Store.
func (b *Bounded[V]) Delete(key uint64) (V, bool) {
	return b.inner.Delete(key)
}

// Len implements Store.
func (b *Bounded[V]) Len() int {
	return b.inner.Len()
}

// Range implements Store.
func (b *Bounded[V]) Range(fn func(key uint64, v V) bool) {
	b.inner.Range(fn)
}

// Clear implements Store.
func (b *Bounded[V]) Clear() {
	b.inner.Clear()
}
