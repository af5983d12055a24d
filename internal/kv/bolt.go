package kv

import (
	"context"
	"log/slog"
	"time"

	bolt "go.etcd.io/bbolt"

	apperrors "github.com/kitaplikapp/kitaplik-core/internal/errors"
)

// bucketName holds all app keys; one flat namespace matches the contract.
var bucketName = []byte("kv")

// BoltStore is the memory-mapped Store implementation. Reads go straight
// to the mapped pages, which makes it the fast synchronous backend of the
// pair.
type BoltStore struct {
	db     *bolt.DB
	logger *slog.Logger
}

// NewBoltStore opens (or creates) a bolt database file at path.
func NewBoltStore(path string, logger *slog.Logger) (*BoltStore, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, apperrors.Wrapf(err, apperrors.CodeStorage, "open bolt db at %s", path)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, apperrors.Wrap(err, apperrors.CodeStorage, "create bucket")
	}

	if logger != nil {
		logger.Info("bolt store opened", "path", path)
	}

	return &BoltStore{db: db, logger: logger}, nil
}

// Get returns the raw value stored under key, or absence.
func (s *BoltStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	var value string
	found := false
	err := s.db.View(func(tx *bolt.Tx) error {
		// Bucket values are only valid inside the transaction; copy out.
		if raw := tx.Bucket(bucketName).Get([]byte(key)); raw != nil {
			value = string(raw)
			found = true
		}
		return nil
	})
	if err != nil {
		return "", false, apperrors.Wrapf(err, apperrors.CodeStorage, "get %s", key)
	}
	return value, found, nil
}

// Set overwrites the value under key atomically.
func (s *BoltStore) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(key), []byte(value))
	})
	if err != nil {
		return apperrors.Wrapf(err, apperrors.CodeStorage, "set %s", key)
	}
	return nil
}

// Remove deletes key. Removing an absent key is not an error.
func (s *BoltStore) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Delete([]byte(key))
	})
	if err != nil {
		return apperrors.Wrapf(err, apperrors.CodeStorage, "remove %s", key)
	}
	return nil
}

// Keys enumerates all stored keys, unordered.
func (s *BoltStore) Keys(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var keys []string
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).ForEach(func(k, _ []byte) error {
			keys = append(keys, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeStorage, "enumerate keys")
	}
	return keys, nil
}

// Clear removes all keys.
func (s *BoltStore) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(bucketName); err != nil {
			return err
		}
		_, err := tx.CreateBucket(bucketName)
		return err
	})
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeStorage, "clear store")
	}
	return nil
}

// Close gracefully closes the database.
func (s *BoltStore) Close() error {
	if s.logger != nil {
		s.logger.Info("closing bolt store")
	}
	return s.db.Close()
}

// Name identifies the backend.
func (s *BoltStore) Name() string { return "bolt" }
