// Package storage provides the typed JSON façade over the active key-value
// backend. The process-wide instance lives in the DI container and is handed
// to the stores as an explicit dependency.
//
// The error policy is deliberately asymmetric: reads degrade to absence
// (corrupt or unreadable data is logged, reported, and treated as "no
// data"), while write failures propagate so mutating callers can tell that
// their optimistic in-memory update did not become durable.
package storage

import (
	"context"
	"encoding/json/v2"
	"log/slog"
	"sync"

	apperrors "github.com/kitaplikapp/kitaplik-core/internal/errors"
	"github.com/kitaplikapp/kitaplik-core/internal/kv"
	"github.com/kitaplikapp/kitaplik-core/internal/telemetry"
)

// Service wraps one active kv.Store with typed JSON (de)serialization.
// The adapter is swappable at runtime without disturbing callers that
// hold the Service.
type Service struct {
	mu       sync.RWMutex
	adapter  kv.Store
	logger   *slog.Logger
	reporter telemetry.Reporter
}

// New creates a storage service over the given adapter.
func New(adapter kv.Store, logger *slog.Logger, reporter telemetry.Reporter) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if reporter == nil {
		reporter = telemetry.NewNoopReporter()
	}
	return &Service{
		adapter:  adapter,
		logger:   logger,
		reporter: reporter,
	}
}

// Adapter returns the currently active backend.
func (s *Service) Adapter() kv.Store {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.adapter
}

// Swap replaces the active backend and returns the previous one so the
// caller can close it. The Service identity is preserved; stores holding
// it see the new backend on their next operation.
func (s *Service) Swap(adapter kv.Store) kv.Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	previous := s.adapter
	s.adapter = adapter
	return previous
}

// GetItem reads and JSON-decodes the value under key.
// Missing keys, read failures, and undecodable payloads all come back as
// absence; the latter two are logged and reported, never surfaced.
func GetItem[T any](ctx context.Context, s *Service, key string) (T, bool) {
	var zero T

	raw, ok, err := s.Adapter().Get(ctx, key)
	if err != nil {
		s.logger.Warn("storage read failed, treating as no data", "key", key, "error", err)
		s.reporter.RecordError(err, map[string]any{"key": key, "op": "get"})
		return zero, false
	}
	if !ok {
		return zero, false
	}

	var value T
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		decodeErr := apperrors.Wrapf(err, apperrors.CodeDecode, "decode value under %s", key)
		s.logger.Warn("discarding undecodable stored value", "key", key, "error", err)
		s.reporter.RecordError(decodeErr, map[string]any{"key": key, "op": "decode"})
		return zero, false
	}

	return value, true
}

// SetItem JSON-encodes value and writes it under key. Write failures are
// reported and returned to the caller.
func SetItem[T any](ctx context.Context, s *Service, key string, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return apperrors.Wrapf(err, apperrors.CodeInternal, "encode value for %s", key)
	}

	if err := s.Adapter().Set(ctx, key, string(data)); err != nil {
		s.reporter.RecordError(err, map[string]any{"key": key, "op": "set"})
		return err
	}
	return nil
}

// RemoveItem deletes key. Idempotent.
func (s *Service) RemoveItem(ctx context.Context, key string) error {
	return s.Adapter().Remove(ctx, key)
}

// AllKeys enumerates every stored key, unordered.
func (s *Service) AllKeys(ctx context.Context) ([]string, error) {
	return s.Adapter().Keys(ctx)
}

// Clear removes all keys from the active backend.
func (s *Service) Clear(ctx context.Context) error {
	return s.Adapter().Clear(ctx)
}
