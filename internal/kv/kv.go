// Package kv defines the key-value persistence contract and its backends.
//
// Persisted app state is a small set of fixed string keys mapping to JSON
// documents. Two interchangeable persistent backends sit behind the Store
// interface - a disk-backed LSM store (badger) and a memory-mapped B+tree
// store (bolt) - plus an in-memory fake for tests. Each Set call is atomic
// for its key; the contract does not serialize concurrent writers beyond
// that.
package kv

import "context"

// Store is the contract every backend implements.
//
// Get never fails on a missing key; absence is reported through the bool.
// Remove is idempotent. Keys enumerates in no particular order. All
// operations surface I/O failures as storage-coded domain errors.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
	Clear(ctx context.Context) error

	// Close releases backend resources. Safe to call once.
	Close() error

	// Name identifies the backend ("badger", "bolt", "memory").
	Name() string
}
