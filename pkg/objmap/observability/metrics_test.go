package observability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// setupMetricsTest creates a test meter provider and returns a manual reader
// for collecting recorded metrics.
func setupMetricsTest(t *testing.T) (*sdkmetric.ManualReader, func()) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	originalProvider := otel.GetMeterProvider()
	otel.SetMeterProvider(provider)

	cleanup := func() {
		otel.SetMeterProvider(originalProvider)
		if err := provider.Shutdown(context.Background()); err != nil {
			t.Logf("Error shutting down meter provider: %v", err)
		}
	}

	return reader, cleanup
}

// collectMetrics collects all metrics from the reader.
func collectMetrics(t *testing.T, reader *sdkmetric.ManualReader) *metricdata.ResourceMetrics {
	var rm metricdata.ResourceMetrics
	err := reader.Collect(context.Background(), &rm)
	require.NoError(t, err)
	return &rm
}

// findMetric finds a metric by name in the collected data.
func findMetric(rm *metricdata.ResourceMetrics, name string) *metricdata.Metrics {
	for _, sm := range rm.ScopeMetrics {
		for i := range sm.Metrics {
			if sm.Metrics[i].Name == name {
				return &sm.Metrics[i]
			}
		}
	}
	return nil
}

// sumValue extracts the total of an int64 sum metric.
func sumValue(t *testing.T, m *metricdata.Metrics) int64 {
	sum, ok := m.Data.(metricdata.Sum[int64])
	require.True(t, ok, "expected Sum[int64] data for %s", m.Name)
	var total int64
	for _, dp := range sum.DataPoints {
		total += dp.Value
	}
	return total
}

func TestNewMetricsRecorder(t *testing.T) {
	_, cleanup := setupMetricsTest(t)
	defer cleanup()

	recorder := NewMetricsRecorder()
	require.NotNil(t, recorder)
}

func TestRecordInsert(t *testing.T) {
	reader, cleanup := setupMetricsTest(t)
	defer cleanup()

	m, err := newOtelMetrics()
	require.NoError(t, err)

	ctx := context.Background()
	m.RecordInsert(ctx, "reg-1")
	m.RecordInsert(ctx, "reg-1")

	rm := collectMetrics(t, reader)

	inserts := findMetric(rm, "objmap.inserts")
	require.NotNil(t, inserts)
	assert.Equal(t, int64(2), sumValue(t, inserts))

	live := findMetric(rm, "objmap.live_entries")
	require.NotNil(t, live)
	assert.Equal(t, int64(2), sumValue(t, live))
}

func TestRecordInsertError(t *testing.T) {
	reader, cleanup := setupMetricsTest(t)
	defer cleanup()

	m, err := newOtelMetrics()
	require.NoError(t, err)

	ctx := context.Background()
	m.RecordInsertError(ctx, "reg-1", "overflow")
	m.RecordInsertError(ctx, "reg-1", "store_rejected")

	rm := collectMetrics(t, reader)
	errs := findMetric(rm, "objmap.insert_errors")
	require.NotNil(t, errs)
	assert.Equal(t, int64(2), sumValue(t, errs))

	sum, ok := errs.Data.(metricdata.Sum[int64])
	require.True(t, ok)
	assert.Len(t, sum.DataPoints, 2, "one data point per failure reason")
}

func TestRecordRemove(t *testing.T) {
	reader, cleanup := setupMetricsTest(t)
	defer cleanup()

	m, err := newOtelMetrics()
	require.NoError(t, err)

	ctx := context.Background()
	m.RecordInsert(ctx, "reg-1")
	m.RecordRemove(ctx, "reg-1")

	rm := collectMetrics(t, reader)

	removals := findMetric(rm, "objmap.removals")
	require.NotNil(t, removals)
	assert.Equal(t, int64(1), sumValue(t, removals))

	live := findMetric(rm, "objmap.live_entries")
	require.NotNil(t, live)
	assert.Equal(t, int64(0), sumValue(t, live), "insert then remove nets to zero")
}

func TestRecordBulkRelease(t *testing.T) {
	reader, cleanup := setupMetricsTest(t)
	defer cleanup()

	m, err := newOtelMetrics()
	require.NoError(t, err)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		m.RecordInsert(ctx, "reg-1")
	}
	m.RecordBulkRelease(ctx, "reg-1", "flush", 3, 5*time.Millisecond)

	rm := collectMetrics(t, reader)

	released := findMetric(rm, "objmap.released")
	require.NotNil(t, released)
	assert.Equal(t, int64(3), sumValue(t, released))

	live := findMetric(rm, "objmap.live_entries")
	require.NotNil(t, live)
	assert.Equal(t, int64(0), sumValue(t, live))

	duration := findMetric(rm, "objmap.release.duration_ms")
	require.NotNil(t, duration)
	hist, ok := duration.Data.(metricdata.Histogram[float64])
	require.True(t, ok, "expected Histogram[float64]")
	require.NotEmpty(t, hist.DataPoints)
	assert.Equal(t, uint64(1), hist.DataPoints[0].Count)
}
