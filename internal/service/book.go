// Package service holds the business-rule layer above the stores: input
// validation, genre normalization at the form boundary, and metadata
// autofill for the add-book flow.
package service

import (
	"context"
	"log/slog"

	"github.com/kitaplikapp/kitaplik-core/internal/domain"
	apperrors "github.com/kitaplikapp/kitaplik-core/internal/errors"
	"github.com/kitaplikapp/kitaplik-core/internal/genre"
	"github.com/kitaplikapp/kitaplik-core/internal/library"
	"github.com/kitaplikapp/kitaplik-core/internal/metadata/googlebooks"
	"github.com/kitaplikapp/kitaplik-core/internal/validation"
)

// MetadataSearcher is the part of the metadata client the service needs.
type MetadataSearcher interface {
	BestMatch(ctx context.Context, title, author string) (googlebooks.Suggestion, bool, error)
}

// BookService validates book input before it reaches the collection.
// The collection itself accepts anything; this is the gate the UI talks to.
type BookService struct {
	collection *library.Collection
	validator  *validation.Validator
	metadata   MetadataSearcher
	logger     *slog.Logger
}

// NewBookService creates the service. metadata may be nil, which
// disables autofill.
func NewBookService(collection *library.Collection, validator *validation.Validator, metadata MetadataSearcher, logger *slog.Logger) *BookService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if validator == nil {
		validator = validation.New()
	}
	return &BookService{
		collection: collection,
		validator:  validator,
		metadata:   metadata,
		logger:     logger,
	}
}

// CreateBookRequest is the add-book form payload.
type CreateBookRequest struct {
	Title     string `json:"title" validate:"required,max=500"`
	Author    string `json:"author" validate:"required,max=500"`
	Genre     string `json:"genre" validate:"max=200"`
	CoverURL  string `json:"coverUrl" validate:"omitempty,url"`
	PageCount int    `json:"pageCount" validate:"gte=0"`
	Notes     string `json:"notes" validate:"max=10000"`
}

// CreateBook validates the form and adds the book to the collection.
func (s *BookService) CreateBook(ctx context.Context, req CreateBookRequest) (domain.Book, error) {
	if err := s.validator.Validate(req); err != nil {
		return domain.Book{}, err
	}

	return s.collection.Add(ctx, library.BookInput{
		Title:     req.Title,
		Author:    req.Author,
		Genre:     req.Genre,
		CoverURL:  req.CoverURL,
		PageCount: req.PageCount,
		Notes:     req.Notes,
	})
}

// SetStatus transitions a book's reading state after checking the state
// is one of the three known values.
func (s *BookService) SetStatus(ctx context.Context, bookID string, status domain.Status) error {
	if !status.Valid() {
		return apperrors.Validationf("unknown reading state %q", status)
	}
	return s.collection.UpdateStatus(ctx, bookID, status)
}

// SetProgress updates a book's page fields after a bounds check.
func (s *BookService) SetProgress(ctx context.Context, bookID string, currentPage, pageCount int) error {
	if currentPage < 0 || pageCount < 0 {
		return apperrors.Validation("page numbers must not be negative")
	}
	return s.collection.UpdateProgress(ctx, bookID, currentPage, pageCount)
}

// AutofillSuggestion is the prefilled add-book form. Genre is already
// normalized to a canonical label.
type AutofillSuggestion struct {
	Title     string `json:"title"`
	Author    string `json:"author"`
	Genre     string `json:"genre"`
	PageCount int    `json:"pageCount"`
	CoverURL  string `json:"coverUrl"`
}

// Autofill looks the book up in the metadata provider and returns a
// prefilled form. ok is false when autofill is disabled or nothing
// matched; provider failures are returned so the UI can fall back to
// manual entry with a hint.
func (s *BookService) Autofill(ctx context.Context, title, author string) (AutofillSuggestion, bool, error) {
	if s.metadata == nil {
		return AutofillSuggestion{}, false, nil
	}

	match, ok, err := s.metadata.BestMatch(ctx, title, author)
	if err != nil {
		s.logger.Warn("metadata lookup failed", "title", title, "error", err)
		return AutofillSuggestion{}, false, err
	}
	if !ok {
		return AutofillSuggestion{}, false, nil
	}

	return AutofillSuggestion{
		Title:     match.Title,
		Author:    match.Author,
		Genre:     genre.Translate(match.Category),
		PageCount: match.PageCount,
		CoverURL:  match.CoverURL,
	}, true, nil
}
