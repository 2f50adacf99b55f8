package objmap

import (
	"errors"
	"fmt"
)

// Sentinel errors for registry construction.
var (
	// ErrNilStore indicates WithStore was given a nil backing store.
	ErrNilStore = errors.New("backing store cannot be nil")
)

// Sentinel errors for insertion.
var (
	// ErrKeySpaceExhausted indicates the handle counter passed MaxIndex.
	// Further inserts fail until Reset re-opens the key space.
	ErrKeySpaceExhausted = errors.New("handle key space exhausted")

	// ErrClosed indicates an insert on a registry after Close.
	ErrClosed = errors.New("registry closed")
)

// InsertError wraps a backing-store failure during Insert.
// The corresponding handle sentinel is Internal. Use errors.Is with
// store.ErrRejected (or whatever the custom store returned) to inspect
// the cause.
type InsertError struct {
	// RegistryID identifies the registry instance that failed.
	RegistryID string
	// Err is the error returned by the backing store.
	Err error
}

// Error implements the error interface.
func (e *InsertError) Error() string {
	return fmt.Sprintf("insert into registry %s: %v", e.RegistryID, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *InsertError) Unwrap() error {
	return e.Err
}
