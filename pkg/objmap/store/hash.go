package store

// Hash is the default map-backed store. Put never fails.
type Hash[V any] struct {
	entries map[uint64]V
}

// NewHash creates an empty map-backed store.
func NewHash[V any]() *Hash[V] {
	return NewHashWithCapacity[V](0)
}

// NewHashWithCapacity creates a map-backed store pre-sized for n entries.
// The capacity is a hint only; the store grows past it as needed.
func NewHashWithCapacity[V any](n int) *Hash[V] {
	if n < 0 {
		n = 0
	}
	return &Hash[V]{entries: make(map[uint64]V, n)}
}

// Put implements Store.
func (h *Hash[V]) Put(key uint64, v V) error {
	h.entries[key] = v
	return nil
}

// Get implements Store.
func (h *Hash[V]) Get(key uint64) (V, bool) {
	v, ok := h.entries[key]
	return v, ok
}

// Delete implements Store.
func (h *Hash[V]) Delete(key uint64) (V, bool) {
	v, ok := h.entries[key]
	if ok {
		delete(h.entries, key)
	}
	return v, ok
}

// Len implements Store.
func (h *Hash[V]) Len() int {
	return len(h.entries)
}

// Range implements Store.
func (h *Hash[V]) Range(fn func(key uint64, v V) bool) {
	for k, v := range h.entries {
		if !fn(k, v) {
			return
		}
	}
}

// Clear implements Store.
func (h *Hash[V]) Clear() {
	clear(h.entries)
}
