// Package library implements the book collection store: the in-memory,
// insertion-ordered list of the user's books, hydrated once from storage
// and persisted whole after every mutation.
//
// Mutations are optimistic: the in-memory collection is updated first and
// is authoritative for the session even when the follow-up persist fails.
// Persist errors propagate to the caller but are never rolled back.
package library

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/kitaplikapp/kitaplik-core/internal/domain"
	apperrors "github.com/kitaplikapp/kitaplik-core/internal/errors"
	"github.com/kitaplikapp/kitaplik-core/internal/genre"
	"github.com/kitaplikapp/kitaplik-core/internal/id"
	"github.com/kitaplikapp/kitaplik-core/internal/storage"
)

// collectionSchemaVersion is the version stamped into the persisted
// document. Bump it when the layout changes and add an upgrade path in
// Hydrate.
const collectionSchemaVersion = 1

// collectionDocument is the persisted form of the collection. Earlier
// releases stored a bare JSON array of books; Hydrate still reads that
// form and upgrades it to the envelope on first load.
type collectionDocument struct {
	Version int           `json:"version"`
	Books   []domain.Book `json:"books"`
}

// Collection is the reactive store for the user's books. All reads return
// copies; the internal slice never escapes.
type Collection struct {
	mu      sync.RWMutex
	books   []domain.Book
	storage *storage.Service
	logger  *slog.Logger
	emitter EventEmitter
	indexer SearchIndexer
}

// NewCollection creates an empty, unhydrated collection over the given
// storage service.
func NewCollection(store *storage.Service, logger *slog.Logger, emitter EventEmitter) *Collection {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if emitter == nil {
		emitter = NewNoopEmitter()
	}
	return &Collection{
		storage: store,
		logger:  logger,
		emitter: emitter,
		indexer: NewNoopSearchIndexer(),
	}
}

// SetSearchIndexer attaches a search indexer. Call before Hydrate so the
// initial load is indexed.
func (c *Collection) SetSearchIndexer(indexer SearchIndexer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if indexer == nil {
		indexer = NewNoopSearchIndexer()
	}
	c.indexer = indexer
}

// Hydrate loads the collection from storage. Absence (fresh install, or
// an unreadable document degraded to absence by the storage layer) yields
// an empty collection. A legacy bare-array document is accepted and
// re-persisted in the enveloped form. Returns the number of books loaded.
func (c *Collection) Hydrate(ctx context.Context) int {
	var books []domain.Book
	upgraded := false

	if doc, ok := storage.GetItem[collectionDocument](ctx, c.storage, storage.KeyBooks); ok && doc.Version >= 1 {
		books = doc.Books
	} else if legacy, ok := storage.GetItem[[]domain.Book](ctx, c.storage, storage.KeyBooks); ok {
		books = legacy
		upgraded = true
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.books = books

	if upgraded {
		c.logger.Info("upgrading legacy book document", "count", len(books))
		if err := c.persistLocked(ctx); err != nil {
			// The legacy form stays readable, so the upgrade retries on
			// the next mutation.
			c.logger.Warn("legacy document upgrade not persisted", "error", err)
		}
	}

	for i := range c.books {
		c.indexLocked(ctx, c.books[i])
	}
	c.emitter.Emit(HydratedEvent{Count: len(c.books)})
	return len(c.books)
}

// BookInput carries the fields a caller supplies when adding a book.
// Everything else (id, status, progress, addedAt) is assigned here.
type BookInput struct {
	Title     string
	Author    string
	Genre     string
	CoverURL  string
	PageCount int
	Notes     string
}

// Add appends a new book to the collection. The genre is normalized to a
// canonical label, a missing cover falls back to the default image, and
// the book starts in ToRead with zero progress.
func (c *Collection) Add(ctx context.Context, input BookInput) (domain.Book, error) {
	bookID, err := id.Generate("book")
	if err != nil {
		return domain.Book{}, apperrors.Wrap(err, apperrors.CodeInternal, "assign book id")
	}

	book := domain.Book{
		ID:        bookID,
		Title:     input.Title,
		Author:    input.Author,
		Genre:     genre.Normalize(input.Genre),
		CoverURL:  input.CoverURL,
		PageCount: input.PageCount,
		Notes:     input.Notes,
		AddedAt:   time.Now().UTC(),
	}
	if book.CoverURL == "" {
		book.CoverURL = domain.DefaultCoverURL
	}
	book.ApplyStatus(domain.StatusToRead)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.books = append(c.books, book)

	persistErr := c.persistLocked(ctx)
	c.emitter.Emit(BookAddedEvent{Book: book})
	c.indexLocked(ctx, book)
	return book, persistErr
}

// GetByID returns a copy of the book with the given id.
func (c *Collection) GetByID(bookID string) (domain.Book, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.books {
		if c.books[i].ID == bookID {
			return c.books[i], true
		}
	}
	return domain.Book{}, false
}

// List returns the collection in insertion order.
func (c *Collection) List() []domain.Book {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Book, len(c.books))
	copy(out, c.books)
	return out
}

// ListByStatus returns the books in the given reading state, in insertion order.
func (c *Collection) ListByStatus(status domain.Status) []domain.Book {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []domain.Book
	for i := range c.books {
		if c.books[i].Status == status {
			out = append(out, c.books[i])
		}
	}
	return out
}

// ListByGenre returns the books carrying the given canonical genre label,
// in insertion order.
func (c *Collection) ListByGenre(label string) []domain.Book {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []domain.Book
	for i := range c.books {
		if c.books[i].Genre == label {
			out = append(out, c.books[i])
		}
	}
	return out
}

// Len returns the number of books in the collection.
func (c *Collection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.books)
}

// CountReadInYear returns how many books count toward the reading
// challenge for the given calendar year.
func (c *Collection) CountReadInYear(year int) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	count := 0
	for i := range c.books {
		if c.books[i].CountsTowardGoal(year) {
			count++
		}
	}
	return count
}

// UpdateStatus transitions the book to the given reading state and
// recomputes progress. Unknown ids are a silent no-op.
func (c *Collection) UpdateStatus(ctx context.Context, bookID string, status domain.Status) error {
	return c.mutate(ctx, bookID, func(b *domain.Book) {
		b.ApplyStatus(status)
	})
}

// UpdateNotes replaces the book's notes verbatim. Unknown ids are a
// silent no-op.
func (c *Collection) UpdateNotes(ctx context.Context, bookID, notes string) error {
	return c.mutate(ctx, bookID, func(b *domain.Book) {
		b.Notes = notes
	})
}

// UpdateProgress replaces both page fields verbatim and recomputes the
// progress ratio without touching the reading state. Unknown ids are a
// silent no-op.
func (c *Collection) UpdateProgress(ctx context.Context, bookID string, currentPage, pageCount int) error {
	return c.mutate(ctx, bookID, func(b *domain.Book) {
		b.CurrentPage = currentPage
		b.PageCount = pageCount
		if b.Status == domain.StatusReading {
			b.Progress = b.PageRatio()
		}
	})
}

// BookPatch is a partial update of a book's descriptive fields. Nil
// fields are left unchanged.
type BookPatch struct {
	Title    *string
	Author   *string
	Genre    *string
	CoverURL *string
}

// Update applies a partial edit to the book's descriptive fields. A
// patched genre is normalized to a canonical label. Unknown ids are a
// silent no-op.
func (c *Collection) Update(ctx context.Context, bookID string, patch BookPatch) error {
	return c.mutate(ctx, bookID, func(b *domain.Book) {
		if patch.Title != nil {
			b.Title = *patch.Title
		}
		if patch.Author != nil {
			b.Author = *patch.Author
		}
		if patch.Genre != nil {
			b.Genre = genre.Normalize(*patch.Genre)
		}
		if patch.CoverURL != nil {
			b.CoverURL = *patch.CoverURL
		}
	})
}

// Delete removes the book with the given id. Deleting an absent id
// leaves the collection unchanged and returns nil.
func (c *Collection) Delete(ctx context.Context, bookID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := -1
	for i := range c.books {
		if c.books[i].ID == bookID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	c.books = append(c.books[:idx], c.books[idx+1:]...)

	persistErr := c.persistLocked(ctx)
	c.emitter.Emit(BookDeletedEvent{BookID: bookID})
	if err := c.indexer.DeleteBook(ctx, bookID); err != nil {
		c.logger.Warn("search index delete failed", "bookId", bookID, "error", err)
	}
	return persistErr
}

// mutate applies fn to the book with the given id and persists the
// collection. Unknown ids skip both the mutation and the persist.
func (c *Collection) mutate(ctx context.Context, bookID string, fn func(*domain.Book)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.books {
		if c.books[i].ID == bookID {
			fn(&c.books[i])
			persistErr := c.persistLocked(ctx)
			c.emitter.Emit(BookUpdatedEvent{Book: c.books[i]})
			c.indexLocked(ctx, c.books[i])
			return persistErr
		}
	}
	return nil
}

// persistLocked writes the whole collection as one enveloped document.
// Callers must hold the write lock, which serializes persists and keeps
// the stored document consistent with memory order.
func (c *Collection) persistLocked(ctx context.Context) error {
	doc := collectionDocument{Version: collectionSchemaVersion, Books: c.books}
	return storage.SetItem(ctx, c.storage, storage.KeyBooks, doc)
}

func (c *Collection) indexLocked(ctx context.Context, book domain.Book) {
	if err := c.indexer.IndexBook(ctx, &book); err != nil {
		c.logger.Warn("search index update failed", "bookId", book.ID, "error", err)
	}
}
