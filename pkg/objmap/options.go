package objmap

import (
	"log/slog"

	"github.com/randalmurphal/objmap/pkg/objmap/observability"
	"github.com/randalmurphal/objmap/pkg/objmap/store"
)

// Option configures a Registry at construction time.
type Option[T any] func(*Registry[T])

// WithReleaser sets the function used to release objects during Flush,
// Reset and Close. It is never called by Remove, which transfers
// ownership to the caller instead.
//
// Passing nil reverts to the default release (dropping the reference and
// letting the garbage collector reclaim it). See also SetReleaser.
//
// Example:
//
//	reg, err := objmap.New(objmap.WithReleaser(func(f *os.File) {
//	    f.Close()
//	}))
func WithReleaser[T any](fn func(T)) Option[T] {
	return func(r *Registry[T]) {
		r.releaser = fn
	}
}

// WithStore injects a custom backing store. Default: store.NewHash.
//
// New returns ErrNilStore if s is nil.
func WithStore[T any](s store.Store[T]) Option[T] {
	return func(r *Registry[T]) {
		r.entries = s
		r.storeSet = true
	}
}

// WithCapacity pre-sizes the default backing store for n entries.
// Ignored when WithStore is also given.
func WithCapacity[T any](n int) Option[T] {
	return func(r *Registry[T]) {
		if n > 0 {
			r.capacity = n
		}
	}
}

// WithLogger attaches a structured logger. Default: no logging.
func WithLogger[T any](logger *slog.Logger) Option[T] {
	return func(r *Registry[T]) {
		r.logger = logger
	}
}

// WithMetrics attaches a metrics recorder. Default: no-op.
//
// Example:
//
//	reg, err := objmap.New[*Conn](
//	    objmap.WithMetrics[*Conn](observability.NewMetricsRecorder()),
//	)
func WithMetrics[T any](m observability.MetricsRecorder) Option[T] {
	return func(r *Registry[T]) {
		if m != nil {
			r.metrics = m
		}
	}
}

// WithSpans attaches a span manager tracing bulk releases. Default: no-op.
func WithSpans[T any](s observability.SpanManager) Option[T] {
	return func(r *Registry[T]) {
		if s != nil {
			r.spans = s
		}
	}
}
