// Package counter is a worked example of the handle registry pattern:
// a manager that stores counters internally and exposes them to callers
// only as opaque handles.
package counter

import (
	"context"

	"github.com/randalmurphal/objmap/pkg/objmap"
)

// Counter is the internal representation. Callers never see it; they
// hold handles and go through the Manager for every operation.
type Counter struct {
	value uint64
}

// Manager owns a set of counters addressed by handle.
//
// Each Manager carries its own registry, so independent managers can
// coexist and tests never share state. Like the registry it wraps, a
// Manager assumes a single logical owner.
type Manager struct {
	reg *objmap.Registry[*Counter]
}

// NewManager creates a manager with its own registry. Registry options
// (logging, metrics, a bounded store) pass through.
func NewManager(opts ...objmap.Option[*Counter]) (*Manager, error) {
	reg, err := objmap.New(opts...)
	if err != nil {
		return nil, err
	}
	return &Manager{reg: reg}, nil
}

// New creates a counter starting at zero and returns its handle.
func (m *Manager) New() (objmap.Handle, error) {
	return m.reg.Insert(&Counter{})
}

// Reset sets the counter back to zero.
// An unknown handle is ignored.
func (m *Manager) Reset(h objmap.Handle) {
	if c, ok := m.reg.Get(h); ok {
		c.value = 0
	}
}

// Increment increases the counter by one and returns the new value.
// An unknown handle returns 0.
func (m *Manager) Increment(h objmap.Handle) uint64 {
	c, ok := m.reg.Get(h)
	if !ok {
		return 0
	}
	c.value++
	return c.value
}

// Peek returns the current value of the counter.
// An unknown handle returns 0.
func (m *Manager) Peek(h objmap.Handle) uint64 {
	c, ok := m.reg.Get(h)
	if !ok {
		return 0
	}
	return c.value
}

// Delete destroys the counter. Returns false if the handle was unknown.
func (m *Manager) Delete(h objmap.Handle) bool {
	_, ok := m.reg.Remove(h)
	return ok
}

// DeleteAll destroys every counter without tearing the manager down.
// Handles issued so far stay retired.
func (m *Manager) DeleteAll(ctx context.Context) {
	m.reg.Flush(ctx)
}

// Len returns the number of live counters.
func (m *Manager) Len() int {
	return m.reg.Len()
}

// Close destroys all remaining counters and the manager's registry.
// Idempotent.
func (m *Manager) Close() error {
	return m.reg.Close()
}
