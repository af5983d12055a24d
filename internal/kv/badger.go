package kv

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dgraph-io/badger/v4"

	apperrors "github.com/kitaplikapp/kitaplik-core/internal/errors"
)

// BadgerStore is the disk-backed Store implementation.
type BadgerStore struct {
	db     *badger.DB
	logger *slog.Logger
}

// NewBadgerStore opens (or creates) a badger database at path.
func NewBadgerStore(path string, logger *slog.Logger) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil            // Disable Badger's internal logging
	opts.SyncWrites = true       // Ensure writes are synced to disk to prevent corruption on crashes
	opts.CompactL0OnClose = true // Compact L0 tables on close for faster startup

	db, err := badger.Open(opts)
	if err != nil {
		return nil, apperrors.Wrapf(err, apperrors.CodeStorage, "open badger db at %s", path)
	}

	if logger != nil {
		logger.Info("badger store opened", "path", path)
	}

	return &BadgerStore{db: db, logger: logger}, nil
}

// Get returns the raw value stored under key, or absence.
func (s *BadgerStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	var value string
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			value = string(val)
			return nil
		})
	})

	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, apperrors.Wrapf(err, apperrors.CodeStorage, "get %s", key)
	}
	return value, true, nil
}

// Set overwrites the value under key atomically.
func (s *BadgerStore) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), []byte(value))
	})
	if err != nil {
		return apperrors.Wrapf(err, apperrors.CodeStorage, "set %s", key)
	}
	return nil
}

// Remove deletes key. Removing an absent key is not an error.
func (s *BadgerStore) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		return apperrors.Wrapf(err, apperrors.CodeStorage, "remove %s", key)
	}
	return nil
}

// Keys enumerates all stored keys, unordered.
func (s *BadgerStore) Keys(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var keys []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			keys = append(keys, string(it.Item().KeyCopy(nil)))
		}
		return nil
	})
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeStorage, "enumerate keys")
	}
	return keys, nil
}

// Clear removes all keys.
func (s *BadgerStore) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.db.DropAll(); err != nil {
		return apperrors.Wrap(err, apperrors.CodeStorage, "clear store")
	}
	return nil
}

// Close gracefully closes the database.
func (s *BadgerStore) Close() error {
	if s.logger != nil {
		s.logger.Info("closing badger store")
	}
	return s.db.Close()
}

// Name identifies the backend.
func (s *BadgerStore) Name() string { return "badger" }
