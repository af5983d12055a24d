// Package search provides full-text search over the book collection,
// backed by an in-memory Bleve index rebuilt on every launch from the
// hydrated collection. Nothing here is persisted.
package search

import (
	"github.com/kitaplikapp/kitaplik-core/internal/domain"
	"github.com/kitaplikapp/kitaplik-core/internal/genre"
)

// bookDocument is the indexed projection of a book.
type bookDocument struct {
	ID        string
	Title     string
	Author    string
	Notes     string
	Genre     string
	GenreSlug string
	Status    string
}

func documentFromBook(book *domain.Book) *bookDocument {
	return &bookDocument{
		ID:        book.ID,
		Title:     book.Title,
		Author:    book.Author,
		Notes:     book.Notes,
		Genre:     book.Genre,
		GenreSlug: genre.TranslationKey(book.Genre),
		Status:    string(book.Status),
	}
}

// toMap converts the document to a map so field names match the mapping.
func (d *bookDocument) toMap() map[string]any {
	return map[string]any{
		"id":         d.ID,
		"title":      d.Title,
		"author":     d.Author,
		"notes":      d.Notes,
		"genre":      d.Genre,
		"genre_slug": d.GenreSlug,
		"status":     d.Status,
	}
}
