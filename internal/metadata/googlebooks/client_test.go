package googlebooks_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kitaplikapp/kitaplik-core/internal/metadata/googlebooks"
)

const volumesFixture = `{
	"totalItems": 2,
	"items": [
		{
			"id": "vol-1",
			"volumeInfo": {
				"title": "1984",
				"authors": ["George Orwell"],
				"categories": ["Science Fiction"],
				"pageCount": 328,
				"imageLinks": {
					"smallThumbnail": "http://books.example.com/small.jpg",
					"thumbnail": "http://books.example.com/thumb.jpg"
				}
			}
		},
		{
			"id": "vol-2",
			"volumeInfo": {
				"title": "Nineteen Eighty-Four",
				"authors": ["George Orwell", "Thomas Pynchon"],
				"pageCount": 400
			}
		}
	]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *googlebooks.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return googlebooks.NewClient(nil,
		googlebooks.WithBaseURL(server.URL),
		googlebooks.WithHTTPClient(server.Client()),
	)
}

func TestSearch_ParsesVolumes(t *testing.T) {
	var gotQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/volumes", r.URL.Path)
		gotQuery = r.URL.Query().Get("q")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(volumesFixture))
	})

	suggestions, err := client.Search(context.Background(), "1984", "George Orwell")
	require.NoError(t, err)
	require.Equal(t, "intitle:1984 inauthor:George Orwell", gotQuery)
	require.Len(t, suggestions, 2)

	first := suggestions[0]
	require.Equal(t, "vol-1", first.ID)
	require.Equal(t, "1984", first.Title)
	require.Equal(t, "George Orwell", first.Author)
	require.Equal(t, "Science Fiction", first.Category)
	require.Equal(t, 328, first.PageCount)
	require.Equal(t, "https://books.example.com/thumb.jpg", first.CoverURL)

	second := suggestions[1]
	require.Equal(t, "George Orwell, Thomas Pynchon", second.Author)
	require.Empty(t, second.Category)
	require.Empty(t, second.CoverURL)
}

func TestSearch_EmptyTitleSkipsRequest(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	})

	suggestions, err := client.Search(context.Background(), "  ", "")
	require.NoError(t, err)
	require.Nil(t, suggestions)
}

func TestSearch_ServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := client.Search(context.Background(), "1984", "")
	require.Error(t, err)
	require.Contains(t, err.Error(), "status 429")
}

func TestBestMatch(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(volumesFixture))
	})

	match, ok, err := client.BestMatch(context.Background(), "1984", "")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "vol-1", match.ID)
}

func TestBestMatch_NoResults(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"totalItems":0,"items":[]}`))
	})

	_, ok, err := client.BestMatch(context.Background(), "nonexistent", "")
	require.NoError(t, err)
	require.False(t, ok)
}
