// Package store defines the associative primitive a registry is built on.
package store

import "errors"

// Store holds registry entries keyed by raw handle value.
// The registry guarantees it never calls Put twice with the same key
// between Clear calls, so implementations may treat keys as unique.
//
// Implementations are not required to be safe for concurrent use; the
// registry itself assumes a single logical owner.
type Store[V any] interface {
	// Put inserts v under key. Implementations may reject the insertion
	// by returning an error (typically wrapping ErrRejected); the
	// registry then reports the failure without retaining the object.
	Put(key uint64, v V) error

	// Get returns the value stored under key, if any.
	Get(key uint64) (V, bool)

	// Delete removes key and returns the value that was stored under it.
	Delete(key uint64) (V, bool)

	// Len returns the number of stored entries.
	Len() int

	// Range calls fn for each entry in unspecified order.
	// Iteration stops early if fn returns false. fn must not mutate
	// the store.
	Range(fn func(key uint64, v V) bool)

	// Clear drops all entries.
	Clear()
}

// ErrRejected indicates a store refused an insertion, e.g. because a
// capacity bound was reached.
var ErrRejected = errors.New("store rejected insertion")
