package search_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kitaplikapp/kitaplik-core/internal/domain"
	"github.com/kitaplikapp/kitaplik-core/internal/kv"
	"github.com/kitaplikapp/kitaplik-core/internal/library"
	"github.com/kitaplikapp/kitaplik-core/internal/search"
	"github.com/kitaplikapp/kitaplik-core/internal/storage"
	"github.com/kitaplikapp/kitaplik-core/internal/telemetry"
)

func newIndex(t *testing.T) *search.Index {
	t.Helper()
	idx, err := search.NewMemoryIndex(nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = idx.Close() })
	return idx
}

func sampleBooks() []domain.Book {
	added := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	return []domain.Book{
		{ID: "book-1", Title: "Dune", Author: "Frank Herbert", Genre: "Bilim Kurgu", Status: domain.StatusRead, AddedAt: added},
		{ID: "book-2", Title: "Kürk Mantolu Madonna", Author: "Sabahattin Ali", Genre: "Roman", Status: domain.StatusReading, AddedAt: added},
		{ID: "book-3", Title: "Tutunamayanlar", Author: "Oğuz Atay", Genre: "Roman", Status: domain.StatusToRead, Notes: "başyapıt", AddedAt: added},
	}
}

func TestSearch_ByTitle(t *testing.T) {
	idx := newIndex(t)
	require.NoError(t, idx.IndexBooks(sampleBooks()))

	result, err := idx.Search(context.Background(), search.Params{Query: "dune", Limit: 10})
	require.NoError(t, err)
	require.EqualValues(t, 1, result.Total)
	require.Equal(t, "book-1", result.Hits[0].ID)
	require.Equal(t, "Dune", result.Hits[0].Title)
}

func TestSearch_ByAuthor(t *testing.T) {
	idx := newIndex(t)
	require.NoError(t, idx.IndexBooks(sampleBooks()))

	result, err := idx.Search(context.Background(), search.Params{Query: "herbert", Limit: 10})
	require.NoError(t, err)
	require.EqualValues(t, 1, result.Total)
	require.Equal(t, "book-1", result.Hits[0].ID)
}

func TestSearch_ByNotes(t *testing.T) {
	idx := newIndex(t)
	require.NoError(t, idx.IndexBooks(sampleBooks()))

	result, err := idx.Search(context.Background(), search.Params{Query: "başyapıt", Limit: 10})
	require.NoError(t, err)
	require.EqualValues(t, 1, result.Total)
	require.Equal(t, "book-3", result.Hits[0].ID)
}

func TestSearch_TitlePrefix(t *testing.T) {
	idx := newIndex(t)
	require.NoError(t, idx.IndexBooks(sampleBooks()))

	result, err := idx.Search(context.Background(), search.Params{Query: "tutun", Limit: 10})
	require.NoError(t, err)
	require.EqualValues(t, 1, result.Total)
	require.Equal(t, "book-3", result.Hits[0].ID)
}

func TestSearch_GenreFilter(t *testing.T) {
	idx := newIndex(t)
	require.NoError(t, idx.IndexBooks(sampleBooks()))

	result, err := idx.Search(context.Background(), search.Params{Genre: "Roman", Limit: 10})
	require.NoError(t, err)
	require.EqualValues(t, 2, result.Total)
}

func TestSearch_StatusFilter(t *testing.T) {
	idx := newIndex(t)
	require.NoError(t, idx.IndexBooks(sampleBooks()))

	result, err := idx.Search(context.Background(), search.Params{Status: string(domain.StatusReading), Limit: 10})
	require.NoError(t, err)
	require.EqualValues(t, 1, result.Total)
	require.Equal(t, "book-2", result.Hits[0].ID)
}

func TestSearch_EmptyParamsMatchesAll(t *testing.T) {
	idx := newIndex(t)
	require.NoError(t, idx.IndexBooks(sampleBooks()))

	result, err := idx.Search(context.Background(), search.DefaultParams())
	require.NoError(t, err)
	require.EqualValues(t, 3, result.Total)
}

func TestDeleteBook_RemovesFromResults(t *testing.T) {
	idx := newIndex(t)
	ctx := context.Background()
	require.NoError(t, idx.IndexBooks(sampleBooks()))

	require.NoError(t, idx.DeleteBook(ctx, "book-1"))

	count, err := idx.DocumentCount()
	require.NoError(t, err)
	require.EqualValues(t, 2, count)

	result, err := idx.Search(ctx, search.Params{Query: "dune", Limit: 10})
	require.NoError(t, err)
	require.Zero(t, result.Total)
}

func TestIndex_TracksCollectionMutations(t *testing.T) {
	idx := newIndex(t)
	ctx := context.Background()

	svc := storage.New(kv.NewMemoryStore(), nil, telemetry.NewNoopReporter())
	coll := library.NewCollection(svc, nil, nil)
	coll.SetSearchIndexer(idx)

	book, err := coll.Add(ctx, library.BookInput{Title: "Fahrenheit 451", Author: "Ray Bradbury", Genre: "Science Fiction"})
	require.NoError(t, err)

	result, err := idx.Search(ctx, search.Params{Query: "fahrenheit", Limit: 10})
	require.NoError(t, err)
	require.EqualValues(t, 1, result.Total)
	require.Equal(t, "Bilim Kurgu", result.Hits[0].Genre)

	require.NoError(t, coll.Delete(ctx, book.ID))

	result, err = idx.Search(ctx, search.Params{Query: "fahrenheit", Limit: 10})
	require.NoError(t, err)
	require.Zero(t, result.Total)
}
