package library

import (
	"context"

	"github.com/kitaplikapp/kitaplik-core/internal/domain"
)

// EventEmitter is the interface for broadcasting collection changes to UI
// observers. The collection uses it to stay reactive without depending on
// any presentation detail. Emit must not block.
type EventEmitter interface {
	Emit(event any)
}

// NoopEmitter is a no-op implementation of EventEmitter for testing.
type NoopEmitter struct{}

// Emit implements EventEmitter.Emit as a no-op.
func (NoopEmitter) Emit(_ any) {}

// NewNoopEmitter creates a new no-op emitter for testing.
func NewNoopEmitter() EventEmitter {
	return NoopEmitter{}
}

// SearchIndexer is the interface for keeping the library search index in
// sync with the collection. Index failures never fail a mutation.
type SearchIndexer interface {
	IndexBook(ctx context.Context, book *domain.Book) error
	DeleteBook(ctx context.Context, bookID string) error
}

// NoopSearchIndexer is a no-op implementation for testing.
type NoopSearchIndexer struct{}

// IndexBook is a no-op.
func (NoopSearchIndexer) IndexBook(context.Context, *domain.Book) error { return nil }

// DeleteBook is a no-op.
func (NoopSearchIndexer) DeleteBook(context.Context, string) error { return nil }

// NewNoopSearchIndexer creates a new no-op search indexer for testing.
func NewNoopSearchIndexer() SearchIndexer {
	return NoopSearchIndexer{}
}

// Events emitted on collection changes.

// BookAddedEvent is emitted after a book joins the collection.
type BookAddedEvent struct {
	Book domain.Book
}

// BookUpdatedEvent is emitted after any field of a book changes.
type BookUpdatedEvent struct {
	Book domain.Book
}

// BookDeletedEvent is emitted after a book is removed.
type BookDeletedEvent struct {
	BookID string
}

// HydratedEvent is emitted once the collection has loaded from storage.
type HydratedEvent struct {
	Count int
}
