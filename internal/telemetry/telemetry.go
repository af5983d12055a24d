// Package telemetry provides the crash/error reporting shim consumed by the storage
// and store layers. Reporters are fire-and-forget and never return errors to callers.
package telemetry

import "log/slog"

// Reporter records errors and messages for later correlation.
// Implementations must never panic or block the caller.
type Reporter interface {
	RecordError(err error, context map[string]any)
	Log(msg string)
}

// SlogReporter forwards reports to a structured logger.
// This is the default reporter when no crash-reporting backend is attached.
type SlogReporter struct {
	logger *slog.Logger
}

// NewSlogReporter creates a reporter backed by the given logger.
func NewSlogReporter(logger *slog.Logger) *SlogReporter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &SlogReporter{logger: logger}
}

// RecordError logs the error with its context attributes.
func (r *SlogReporter) RecordError(err error, context map[string]any) {
	if err == nil {
		return
	}
	args := make([]any, 0, len(context)*2+2)
	args = append(args, "error", err.Error())
	for k, v := range context {
		args = append(args, k, v)
	}
	r.logger.Error("telemetry error", args...)
}

// Log logs an informational message.
func (r *SlogReporter) Log(msg string) {
	r.logger.Info(msg)
}

// NoopReporter discards all reports. Useful in tests.
type NoopReporter struct{}

// RecordError implements Reporter.RecordError as a no-op.
func (NoopReporter) RecordError(error, map[string]any) {}

// Log implements Reporter.Log as a no-op.
func (NoopReporter) Log(string) {}

// NewNoopReporter creates a new no-op reporter for testing.
func NewNoopReporter() Reporter {
	return NoopReporter{}
}
