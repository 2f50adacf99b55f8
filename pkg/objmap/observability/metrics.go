package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records registry metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordInsert records a successful handle issuance.
	RecordInsert(ctx context.Context, registryID string)

	// RecordInsertError records a failed insert. reason is "overflow"
	// or "store_rejected".
	RecordInsertError(ctx context.Context, registryID, reason string)

	// RecordRemove records a removal with ownership transfer.
	RecordRemove(ctx context.Context, registryID string)

	// RecordBulkRelease records a flush, reset or close, with the number
	// of objects released and the time the release loop took.
	RecordBulkRelease(ctx context.Context, registryID, op string, released int, duration time.Duration)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	inserts      metric.Int64Counter
	insertErrors metric.Int64Counter
	removals     metric.Int64Counter
	released     metric.Int64Counter
	liveEntries  metric.Int64UpDownCounter
	releaseTime  metric.Float64Histogram
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("objmap")

	inserts, err := meter.Int64Counter("objmap.inserts",
		metric.WithDescription("Number of handles issued"),
	)
	if err != nil {
		return nil, err
	}

	insertErrors, err := meter.Int64Counter("objmap.insert_errors",
		metric.WithDescription("Number of failed inserts"),
	)
	if err != nil {
		return nil, err
	}

	removals, err := meter.Int64Counter("objmap.removals",
		metric.WithDescription("Number of entries removed with ownership transfer"),
	)
	if err != nil {
		return nil, err
	}

	released, err := meter.Int64Counter("objmap.released",
		metric.WithDescription("Number of objects released by bulk operations"),
	)
	if err != nil {
		return nil, err
	}

	liveEntries, err := meter.Int64UpDownCounter("objmap.live_entries",
		metric.WithDescription("Number of objects currently stored"),
	)
	if err != nil {
		return nil, err
	}

	releaseTime, err := meter.Float64Histogram("objmap.release.duration_ms",
		metric.WithDescription("Bulk release duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		inserts:      inserts,
		insertErrors: insertErrors,
		removals:     removals,
		released:     released,
		liveEntries:  liveEntries,
		releaseTime:  releaseTime,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordInsert records a successful handle issuance.
func (m *otelMetrics) RecordInsert(ctx context.Context, registryID string) {
	attrs := []attribute.KeyValue{
		attribute.String("registry_id", registryID),
	}
	m.inserts.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.liveEntries.Add(ctx, 1, metric.WithAttributes(attrs...))
}

// RecordInsertError records a failed insert.
func (m *otelMetrics) RecordInsertError(ctx context.Context, registryID, reason string) {
	m.insertErrors.Add(ctx, 1, metric.WithAttributes(
		attribute.String("registry_id", registryID),
		attribute.String("reason", reason),
	))
}

// RecordRemove records a removal with ownership transfer.
func (m *otelMetrics) RecordRemove(ctx context.Context, registryID string) {
	attrs := []attribute.KeyValue{
		attribute.String("registry_id", registryID),
	}
	m.removals.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.liveEntries.Add(ctx, -1, metric.WithAttributes(attrs...))
}

// RecordBulkRelease records a flush, reset or close.
func (m *otelMetrics) RecordBulkRelease(ctx context.Context, registryID, op string, released int, duration time.Duration) {
	attrs := []attribute.KeyValue{
		attribute.String("registry_id", registryID),
		attribute.String("operation", op),
	}
	m.released.Add(ctx, int64(released), metric.WithAttributes(attrs...))
	m.liveEntries.Add(ctx, int64(-released), metric.WithAttributes(attrs...))
	m.releaseTime.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))
}
