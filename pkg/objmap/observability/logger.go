// Package observability provides optional instrumentation for handle
// registries: structured logging, metrics, and tracing of bulk releases.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// Everything is opt-in. A registry built without options logs nothing and
// records against no-op implementations, so the hot path stays free of
// instrumentation cost.
package observability

import (
	"log/slog"
)

// EnrichLogger adds registry context to a logger.
// Returns a new logger carrying the registry_id field.
func EnrichLogger(logger *slog.Logger, registryID string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("registry_id", registryID),
	)
}

// LogInsert logs a successful handle issuance.
func LogInsert(logger *slog.Logger, registryID string, handle uint64) {
	if logger == nil {
		return
	}
	logger.Debug("handle issued",
		slog.String("registry_id", registryID),
		slog.Uint64("handle", handle),
	)
}

// LogRemove logs the removal of an entry with ownership transfer.
func LogRemove(logger *slog.Logger, registryID string, handle uint64) {
	if logger == nil {
		return
	}
	logger.Debug("handle removed",
		slog.String("registry_id", registryID),
		slog.Uint64("handle", handle),
	)
}

// LogBulkRelease logs a flush, reset or close releasing stored objects.
func LogBulkRelease(logger *slog.Logger, registryID, op string, released int) {
	if logger == nil {
		return
	}
	logger.Info("registry entries released",
		slog.String("registry_id", registryID),
		slog.String("operation", op),
		slog.Int("released", released),
	)
}

// LogKeySpaceExhausted logs a failed insert due to key exhaustion.
// This is fatal for the registry instance until a reset.
func LogKeySpaceExhausted(logger *slog.Logger, registryID string) {
	if logger == nil {
		return
	}
	logger.Error("handle key space exhausted",
		slog.String("registry_id", registryID),
	)
}

// LogStoreRejected logs a failed insert rejected by the backing store.
func LogStoreRejected(logger *slog.Logger, registryID string, err error) {
	if logger == nil {
		return
	}
	logger.Error("backing store rejected insertion",
		slog.String("registry_id", registryID),
		slog.String("error", err.Error()),
	)
}
