package objmap

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/randalmurphal/objmap/pkg/objmap/observability"
	"github.com/randalmurphal/objmap/pkg/objmap/store"
)

// Registry maps opaque integer handles to owned objects.
//
// A Registry issues handles from a monotonic counter starting at 1 and
// owns every object stored in it: objects handed to Insert belong to the
// registry until Remove transfers them back out, or a bulk operation
// (Flush, Reset, Close) releases them through the installed releaser.
// Handles of removed entries are never reissued except after Reset.
//
// A Registry is not safe for concurrent use. It assumes a single logical
// owner; callers sharing one across goroutines must provide their own
// mutual exclusion.
type Registry[T any] struct {
	id       string
	nextKey  Handle
	entries  store.Store[T]
	releaser func(T)
	closed   bool

	capacity int
	storeSet bool

	logger  *slog.Logger
	metrics observability.MetricsRecorder
	spans   observability.SpanManager
}

// New creates an empty registry with the handle counter at 1.
//
// Returns ErrNilStore if WithStore was given a nil store.
func New[T any](opts ...Option[T]) (*Registry[T], error) {
	r := &Registry[T]{
		id:      uuid.New().String(),
		nextKey: 1,
		metrics: observability.NoopMetrics{},
		spans:   observability.NoopSpanManager{},
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.storeSet && r.entries == nil {
		return nil, ErrNilStore
	}
	if r.entries == nil {
		r.entries = store.NewHashWithCapacity[T](r.capacity)
	}
	return r, nil
}

// ID returns the unique instance ID used in logs and metrics.
func (r *Registry[T]) ID() string {
	return r.id
}

// SetReleaser installs the function used to release objects during Flush,
// Reset and Close. Passing nil reverts to the default release (dropping
// the reference). Already-released entries are unaffected.
func (r *Registry[T]) SetReleaser(fn func(T)) {
	r.releaser = fn
}

// Insert stores obj and returns its handle. The registry takes exclusive
// ownership of obj until it is removed or released.
//
// Handles are issued in strictly increasing order within [1, MaxIndex].
// On failure the returned handle is a sentinel above MaxIndex and the
// error describes the cause:
//
//   - (Overflow, ErrKeySpaceExhausted) when the key space is used up;
//     the registry is left unchanged and only Reset can recover it.
//   - (Internal, *InsertError) when the backing store rejected the
//     entry; the key is not consumed and obj is not retained.
//   - (Null, ErrClosed) after Close.
func (r *Registry[T]) Insert(obj T) (Handle, error) {
	if r.closed {
		return Null, ErrClosed
	}
	if r.nextKey > MaxIndex {
		observability.LogKeySpaceExhausted(r.logger, r.id)
		r.metrics.RecordInsertError(context.Background(), r.id, "overflow")
		return Overflow, ErrKeySpaceExhausted
	}

	key := r.nextKey
	r.nextKey++
	if err := r.entries.Put(uint64(key), obj); err != nil {
		// A rejected insert must not burn the key.
		r.nextKey--
		observability.LogStoreRejected(r.logger, r.id, err)
		r.metrics.RecordInsertError(context.Background(), r.id, "store_rejected")
		return Internal, &InsertError{RegistryID: r.id, Err: err}
	}

	observability.LogInsert(r.logger, r.id, uint64(key))
	r.metrics.RecordInsert(context.Background(), r.id)
	return key, nil
}

// Get returns the object stored under h. The reference is borrowed: the
// registry still owns the object, and the reference is invalidated by any
// Remove, Flush, Reset or Close touching that handle.
//
// Returns false for Null, for handles never issued, and for handles
// already removed.
func (r *Registry[T]) Get(h Handle) (T, bool) {
	var zero T
	if r.closed || !h.Valid() {
		return zero, false
	}
	return r.entries.Get(uint64(h))
}

// Remove deletes the entry for h and returns the object with ownership
// transferred to the caller. The releaser is not invoked; the caller is
// solely responsible for the object from here on.
//
// Returns false under the same conditions as Get, with no state change.
func (r *Registry[T]) Remove(h Handle) (T, bool) {
	var zero T
	if r.closed || !h.Valid() {
		return zero, false
	}
	obj, ok := r.entries.Delete(uint64(h))
	if !ok {
		return zero, false
	}
	observability.LogRemove(r.logger, r.id, uint64(h))
	r.metrics.RecordRemove(context.Background(), r.id)
	return obj, true
}

// Len returns the number of live entries.
func (r *Registry[T]) Len() int {
	if r.closed {
		return 0
	}
	return r.entries.Len()
}

// Handles returns the handles of all live entries in unspecified order.
func (r *Registry[T]) Handles() []Handle {
	if r.closed {
		return nil
	}
	handles := make([]Handle, 0, r.entries.Len())
	r.entries.Range(func(key uint64, _ T) bool {
		handles = append(handles, Handle(key))
		return true
	})
	return handles
}

// Range calls fn for each live entry in unspecified order, stopping early
// if fn returns false. It iterates a snapshot, so fn may call Remove
// without affecting the iteration.
func (r *Registry[T]) Range(fn func(Handle, T) bool) {
	if r.closed {
		return
	}
	type entry struct {
		h   Handle
		obj T
	}
	snapshot := make([]entry, 0, r.entries.Len())
	r.entries.Range(func(key uint64, obj T) bool {
		snapshot = append(snapshot, entry{Handle(key), obj})
		return true
	})
	for _, e := range snapshot {
		if !fn(e.h, e.obj) {
			return
		}
	}
}

// Flush releases every stored object through the installed releaser and
// empties the store. The handle counter is left unchanged: handles issued
// before the flush are permanently retired and will not be reissued.
//
// The context carries trace and metric propagation only; Flush never
// blocks on it.
func (r *Registry[T]) Flush(ctx context.Context) {
	if r.closed {
		return
	}
	r.releaseAll(ctx, "flush")
}

// Reset performs the same bulk release as Flush and then restarts handle
// issuance from 1. Handles issued before the reset become
// indistinguishable from newly issued ones; callers must guarantee no
// stale handles survive a reset.
func (r *Registry[T]) Reset(ctx context.Context) {
	if r.closed {
		return
	}
	r.releaseAll(ctx, "reset")
	r.nextKey = 1
}

// Close releases every remaining object as in Flush and marks the
// registry closed. Further operations on a closed registry are no-ops
// (inserts fail with ErrClosed). Close is idempotent and always returns
// nil; it implements io.Closer.
func (r *Registry[T]) Close() error {
	if r.closed {
		return nil
	}
	r.releaseAll(context.Background(), "close")
	r.closed = true
	return nil
}

// releaseAll runs the release loop shared by Flush, Reset and Close.
// Release order between entries is unspecified.
func (r *Registry[T]) releaseAll(ctx context.Context, op string) {
	start := time.Now()
	ctx, span := r.spans.StartBulkSpan(ctx, op, r.id, r.entries.Len())

	released := 0
	r.entries.Range(func(_ uint64, obj T) bool {
		if r.releaser != nil {
			r.releaser(obj)
		}
		released++
		return true
	})
	r.entries.Clear()

	r.metrics.RecordBulkRelease(ctx, r.id, op, released, time.Since(start))
	r.spans.EndSpanWithError(span, nil)
	observability.LogBulkRelease(r.logger, r.id, op, released)
}
