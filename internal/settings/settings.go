// Package settings manages small per-install preferences: the UI
// language and the anonymous identifier used for crash correlation.
package settings

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/kitaplikapp/kitaplik-core/internal/domain"
	apperrors "github.com/kitaplikapp/kitaplik-core/internal/errors"
	"github.com/kitaplikapp/kitaplik-core/internal/storage"
)

// Store reads and writes install-level settings.
type Store struct {
	mu      sync.Mutex
	storage *storage.Service
	logger  *slog.Logger
}

// New creates a settings store.
func New(store *storage.Service, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{storage: store, logger: logger}
}

// Language returns the stored UI language, falling back to Turkish when
// nothing is stored or the stored value is not a known language.
func (s *Store) Language(ctx context.Context) domain.Language {
	lang, ok := storage.GetItem[domain.Language](ctx, s.storage, storage.KeyLanguage)
	if !ok || !lang.Valid() {
		return domain.DefaultLanguage
	}
	return lang
}

// SetLanguage stores the UI language. Unknown languages are rejected.
func (s *Store) SetLanguage(ctx context.Context, lang domain.Language) error {
	if !lang.Valid() {
		return apperrors.Validationf("unsupported language %q", lang)
	}
	return storage.SetItem(ctx, s.storage, storage.KeyLanguage, lang)
}

// AnonymousID returns the install's anonymous identifier, generating and
// persisting a UUIDv4 on first call. The id carries no user data; it only
// lets crash reports from one install be grouped together.
//
// When the persist fails the fresh id is still returned, so the session
// has a usable id and the next launch simply generates another.
func (s *Store) AnonymousID(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := storage.GetItem[string](ctx, s.storage, storage.KeyAnonymousID); ok && existing != "" {
		return existing, nil
	}

	fresh := uuid.NewString()
	if err := storage.SetItem(ctx, s.storage, storage.KeyAnonymousID, fresh); err != nil {
		s.logger.Warn("anonymous id not persisted, will regenerate next launch", "error", err)
		return fresh, err
	}
	return fresh, nil
}
