package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
)

func TestNoopMetrics(t *testing.T) {
	ctx := context.Background()
	m := NoopMetrics{}

	// All methods must be safe no-ops.
	m.RecordInsert(ctx, "reg-1")
	m.RecordInsertError(ctx, "reg-1", "overflow")
	m.RecordRemove(ctx, "reg-1")
	m.RecordBulkRelease(ctx, "reg-1", "flush", 10, time.Millisecond)
}

func TestNoopSpanManager(t *testing.T) {
	ctx := context.Background()
	sm := NoopSpanManager{}

	gotCtx, span := sm.StartBulkSpan(ctx, "flush", "reg-1", 3)
	assert.Equal(t, ctx, gotCtx, "context must pass through unchanged")
	assert.NotNil(t, span)
	assert.False(t, span.IsRecording())

	sm.EndSpanWithError(span, errors.New("ignored"))
	sm.EndSpanWithError(nil, nil)
	sm.AddSpanEvent(ctx, "ignored", attribute.Int("n", 1))
}
