package library_test

import (
	"context"
	"testing"
	"time"

	"github.com/kitaplikapp/kitaplik-core/internal/domain"
	"github.com/kitaplikapp/kitaplik-core/internal/kv"
	"github.com/kitaplikapp/kitaplik-core/internal/library"
	"github.com/kitaplikapp/kitaplik-core/internal/storage"
	"github.com/kitaplikapp/kitaplik-core/internal/telemetry"
	"github.com/stretchr/testify/require"
)

func newCollection(t *testing.T) (*library.Collection, *kv.MemoryStore) {
	t.Helper()
	adapter := kv.NewMemoryStore()
	svc := storage.New(adapter, nil, telemetry.NewNoopReporter())
	return library.NewCollection(svc, nil, nil), adapter
}

// recordingEmitter captures emitted events for assertions.
type recordingEmitter struct {
	events []any
}

func (r *recordingEmitter) Emit(event any) {
	r.events = append(r.events, event)
}

func TestAdd_AssignsDefaultsAndNormalizesGenre(t *testing.T) {
	coll, _ := newCollection(t)
	ctx := context.Background()

	book, err := coll.Add(ctx, library.BookInput{
		Title:     "1984",
		Author:    "George Orwell",
		Genre:     "Science Fiction",
		PageCount: 328,
	})
	require.NoError(t, err)

	require.NotEmpty(t, book.ID)
	require.Equal(t, "Bilim Kurgu", book.Genre)
	require.Equal(t, domain.StatusToRead, book.Status)
	require.Zero(t, book.Progress)
	require.Zero(t, book.CurrentPage)
	require.Equal(t, domain.DefaultCoverURL, book.CoverURL)
	require.False(t, book.AddedAt.IsZero())
	require.Equal(t, 1, coll.Len())
}

func TestAdd_KeepsProvidedCover(t *testing.T) {
	coll, _ := newCollection(t)

	book, err := coll.Add(context.Background(), library.BookInput{
		Title:    "Dune",
		Author:   "Frank Herbert",
		Genre:    "Bilim Kurgu",
		CoverURL: "https://covers.example.com/dune.jpg",
	})
	require.NoError(t, err)
	require.Equal(t, "https://covers.example.com/dune.jpg", book.CoverURL)
}

func TestUpdateProgress_ThenMarkRead(t *testing.T) {
	coll, _ := newCollection(t)
	ctx := context.Background()

	book, err := coll.Add(ctx, library.BookInput{Title: "Kürk Mantolu Madonna", Author: "Sabahattin Ali", Genre: "Roman"})
	require.NoError(t, err)

	require.NoError(t, coll.UpdateStatus(ctx, book.ID, domain.StatusReading))
	require.NoError(t, coll.UpdateProgress(ctx, book.ID, 100, 200))

	got, ok := coll.GetByID(book.ID)
	require.True(t, ok)
	require.Equal(t, 100, got.CurrentPage)
	require.Equal(t, 200, got.PageCount)
	require.InDelta(t, 0.5, got.Progress, 1e-9)

	require.NoError(t, coll.UpdateStatus(ctx, book.ID, domain.StatusRead))

	got, ok = coll.GetByID(book.ID)
	require.True(t, ok)
	require.Equal(t, 200, got.CurrentPage)
	require.Equal(t, 200, got.PageCount)
	require.Equal(t, float64(1), got.Progress)
}

func TestUpdateProgress_WhileToReadLeavesProgressAlone(t *testing.T) {
	coll, _ := newCollection(t)
	ctx := context.Background()

	book, err := coll.Add(ctx, library.BookInput{Title: "Saatleri Ayarlama Enstitüsü", Author: "Ahmet Hamdi Tanpınar", Genre: "Roman"})
	require.NoError(t, err)

	// Page fields change verbatim; progress stays 0 until the book is Reading.
	require.NoError(t, coll.UpdateProgress(ctx, book.ID, 50, 400))

	got, _ := coll.GetByID(book.ID)
	require.Equal(t, 50, got.CurrentPage)
	require.Equal(t, 400, got.PageCount)
	require.Zero(t, got.Progress)
}

func TestMutations_UnknownIDAreSilentNoops(t *testing.T) {
	coll, adapter := newCollection(t)
	ctx := context.Background()

	_, err := coll.Add(ctx, library.BookInput{Title: "Tutunamayanlar", Author: "Oğuz Atay", Genre: "Roman"})
	require.NoError(t, err)
	before, _, err := adapter.Get(ctx, storage.KeyBooks)
	require.NoError(t, err)

	require.NoError(t, coll.UpdateStatus(ctx, "book-missing", domain.StatusRead))
	require.NoError(t, coll.UpdateNotes(ctx, "book-missing", "hi"))
	require.NoError(t, coll.Delete(ctx, "book-missing"))
	require.Equal(t, 1, coll.Len())

	// No-op mutations must not rewrite the stored document.
	after, _, err := adapter.Get(ctx, storage.KeyBooks)
	require.NoError(t, err)
	require.Equal(t, before, after)
}

func TestDelete_RemovesAndPreservesOrder(t *testing.T) {
	coll, _ := newCollection(t)
	ctx := context.Background()

	first, err := coll.Add(ctx, library.BookInput{Title: "A", Author: "X", Genre: "Roman"})
	require.NoError(t, err)
	second, err := coll.Add(ctx, library.BookInput{Title: "B", Author: "Y", Genre: "Şiir"})
	require.NoError(t, err)
	third, err := coll.Add(ctx, library.BookInput{Title: "C", Author: "Z", Genre: "Deneme"})
	require.NoError(t, err)

	require.NoError(t, coll.Delete(ctx, second.ID))

	books := coll.List()
	require.Len(t, books, 2)
	require.Equal(t, first.ID, books[0].ID)
	require.Equal(t, third.ID, books[1].ID)
}

func TestUpdate_PartialPatch(t *testing.T) {
	coll, _ := newCollection(t)
	ctx := context.Background()

	book, err := coll.Add(ctx, library.BookInput{Title: "Hobbit", Author: "J.R.R. Tolkien", Genre: "Fantasy"})
	require.NoError(t, err)
	require.Equal(t, "Fantastik", book.Genre)

	title := "The Hobbit"
	rawGenre := "Juvenile Fiction"
	require.NoError(t, coll.Update(ctx, book.ID, library.BookPatch{Title: &title, Genre: &rawGenre}))

	got, _ := coll.GetByID(book.ID)
	require.Equal(t, "The Hobbit", got.Title)
	require.Equal(t, "Çocuk Kitapları", got.Genre)
	require.Equal(t, "J.R.R. Tolkien", got.Author)
}

func TestListByStatusAndGenre(t *testing.T) {
	coll, _ := newCollection(t)
	ctx := context.Background()

	a, err := coll.Add(ctx, library.BookInput{Title: "A", Author: "X", Genre: "Roman"})
	require.NoError(t, err)
	_, err = coll.Add(ctx, library.BookInput{Title: "B", Author: "Y", Genre: "Roman"})
	require.NoError(t, err)
	c, err := coll.Add(ctx, library.BookInput{Title: "C", Author: "Z", Genre: "Şiir"})
	require.NoError(t, err)

	require.NoError(t, coll.UpdateStatus(ctx, a.ID, domain.StatusReading))

	reading := coll.ListByStatus(domain.StatusReading)
	require.Len(t, reading, 1)
	require.Equal(t, a.ID, reading[0].ID)

	romans := coll.ListByGenre("Roman")
	require.Len(t, romans, 2)

	poems := coll.ListByGenre("Şiir")
	require.Len(t, poems, 1)
	require.Equal(t, c.ID, poems[0].ID)
}

func TestCountReadInYear(t *testing.T) {
	coll, _ := newCollection(t)
	ctx := context.Background()

	read, err := coll.Add(ctx, library.BookInput{Title: "A", Author: "X", Genre: "Roman"})
	require.NoError(t, err)
	_, err = coll.Add(ctx, library.BookInput{Title: "B", Author: "Y", Genre: "Roman"})
	require.NoError(t, err)

	require.NoError(t, coll.UpdateStatus(ctx, read.ID, domain.StatusRead))

	year := time.Now().UTC().Year()
	require.Equal(t, 1, coll.CountReadInYear(year))
	require.Zero(t, coll.CountReadInYear(year-1))
}

func TestHydrate_RoundTrip(t *testing.T) {
	adapter := kv.NewMemoryStore()
	svc := storage.New(adapter, nil, telemetry.NewNoopReporter())
	ctx := context.Background()

	first := library.NewCollection(svc, nil, nil)
	book, err := first.Add(ctx, library.BookInput{Title: "1984", Author: "George Orwell", Genre: "Science Fiction", PageCount: 328})
	require.NoError(t, err)
	require.NoError(t, first.UpdateStatus(ctx, book.ID, domain.StatusReading))
	require.NoError(t, first.UpdateProgress(ctx, book.ID, 82, 328))

	// A second collection over the same storage sees the same state.
	second := library.NewCollection(svc, nil, nil)
	require.Equal(t, 1, second.Hydrate(ctx))

	got, ok := second.GetByID(book.ID)
	require.True(t, ok)
	require.Equal(t, "1984", got.Title)
	require.Equal(t, domain.StatusReading, got.Status)
	require.Equal(t, 82, got.CurrentPage)
	require.InDelta(t, 0.25, got.Progress, 1e-9)
}

func TestHydrate_EmptyStorage(t *testing.T) {
	coll, _ := newCollection(t)
	require.Zero(t, coll.Hydrate(context.Background()))
	require.Empty(t, coll.List())
}

func TestHydrate_LegacyBareArrayUpgraded(t *testing.T) {
	adapter := kv.NewMemoryStore()
	svc := storage.New(adapter, nil, telemetry.NewNoopReporter())
	ctx := context.Background()

	legacy := `[{"id":"book-legacy","title":"Beyaz Gemi","author":"Cengiz Aytmatov","genre":"Roman",` +
		`"coverUrl":"","status":"Read","currentPage":160,"pageCount":160,"progress":1,"notes":"",` +
		`"addedAt":"2023-06-01T00:00:00Z"}]`
	require.NoError(t, adapter.Set(ctx, storage.KeyBooks, legacy))

	coll := library.NewCollection(svc, nil, nil)
	require.Equal(t, 1, coll.Hydrate(ctx))

	got, ok := coll.GetByID("book-legacy")
	require.True(t, ok)
	require.Equal(t, "Beyaz Gemi", got.Title)
	require.Equal(t, domain.StatusRead, got.Status)

	// The stored document is rewritten in the enveloped form.
	raw, found, err := adapter.Get(ctx, storage.KeyBooks)
	require.NoError(t, err)
	require.True(t, found)
	require.Contains(t, raw, `"version":1`)
	require.Contains(t, raw, `"book-legacy"`)
}

func TestHydrate_CorruptDocumentStartsEmpty(t *testing.T) {
	adapter := kv.NewMemoryStore()
	svc := storage.New(adapter, nil, telemetry.NewNoopReporter())
	ctx := context.Background()

	require.NoError(t, adapter.Set(ctx, storage.KeyBooks, `{"version": garbage`))

	coll := library.NewCollection(svc, nil, nil)
	require.Zero(t, coll.Hydrate(ctx))
}

func TestPersistFailure_KeepsInMemoryState(t *testing.T) {
	coll, _ := newCollection(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// The write fails, the error propagates, and the optimistic in-memory
	// update stays.
	book, err := coll.Add(ctx, library.BookInput{Title: "A", Author: "X", Genre: "Roman"})
	require.Error(t, err)
	require.Equal(t, 1, coll.Len())

	_, ok := coll.GetByID(book.ID)
	require.True(t, ok)
}

func TestEvents_EmittedPerMutation(t *testing.T) {
	adapter := kv.NewMemoryStore()
	svc := storage.New(adapter, nil, telemetry.NewNoopReporter())
	emitter := &recordingEmitter{}
	coll := library.NewCollection(svc, nil, emitter)
	ctx := context.Background()

	book, err := coll.Add(ctx, library.BookInput{Title: "A", Author: "X", Genre: "Roman"})
	require.NoError(t, err)
	require.NoError(t, coll.UpdateNotes(ctx, book.ID, "güzel"))
	require.NoError(t, coll.Delete(ctx, book.ID))

	require.Len(t, emitter.events, 3)
	added, ok := emitter.events[0].(library.BookAddedEvent)
	require.True(t, ok)
	require.Equal(t, book.ID, added.Book.ID)

	updated, ok := emitter.events[1].(library.BookUpdatedEvent)
	require.True(t, ok)
	require.Equal(t, "güzel", updated.Book.Notes)

	deleted, ok := emitter.events[2].(library.BookDeletedEvent)
	require.True(t, ok)
	require.Equal(t, book.ID, deleted.BookID)
}
