package providers

import (
	"context"

	"github.com/samber/do/v2"

	"github.com/kitaplikapp/kitaplik-core/internal/goal"
	"github.com/kitaplikapp/kitaplik-core/internal/library"
	"github.com/kitaplikapp/kitaplik-core/internal/logger"
	"github.com/kitaplikapp/kitaplik-core/internal/service"
	"github.com/kitaplikapp/kitaplik-core/internal/settings"
	"github.com/kitaplikapp/kitaplik-core/internal/storage"
	"github.com/kitaplikapp/kitaplik-core/internal/validation"
)

// ProvideEventEmitter provides the collection's event sink. The default
// is a no-op; an embedding application overrides this provider to route
// events into its UI layer.
func ProvideEventEmitter(_ do.Injector) (library.EventEmitter, error) {
	return library.NewNoopEmitter(), nil
}

// ProvideCollection provides the hydrated book collection with the
// search index attached, so launch leaves both memory and the index
// populated.
func ProvideCollection(i do.Injector) (*library.Collection, error) {
	store := do.MustInvoke[*storage.Service](i)
	log := do.MustInvoke[*logger.Logger](i)
	emitter := do.MustInvoke[library.EventEmitter](i)
	index := do.MustInvoke[*SearchIndexHandle](i)

	collection := library.NewCollection(store, log.Logger, emitter)
	collection.SetSearchIndexer(index.Index)

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	count := collection.Hydrate(ctx)
	log.Info("book collection hydrated", "count", count)

	return collection, nil
}

// ProvideGoalStore provides the reading challenge store.
func ProvideGoalStore(i do.Injector) (*goal.Store, error) {
	store := do.MustInvoke[*storage.Service](i)
	log := do.MustInvoke[*logger.Logger](i)
	collection := do.MustInvoke[*library.Collection](i)

	return goal.New(store, collection, log.Logger), nil
}

// ProvideSettingsStore provides the install settings store.
func ProvideSettingsStore(i do.Injector) (*settings.Store, error) {
	store := do.MustInvoke[*storage.Service](i)
	log := do.MustInvoke[*logger.Logger](i)

	return settings.New(store, log.Logger), nil
}

// ProvideValidator provides the input validator.
func ProvideValidator(_ do.Injector) (*validation.Validator, error) {
	return validation.New(), nil
}

// ProvideBookService provides the validated book service.
func ProvideBookService(i do.Injector) (*service.BookService, error) {
	collection := do.MustInvoke[*library.Collection](i)
	validator := do.MustInvoke[*validation.Validator](i)
	metadata := do.MustInvoke[*GoogleBooksHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	var searcher service.MetadataSearcher
	if metadata.Client != nil {
		searcher = metadata.Client
	}
	return service.NewBookService(collection, validator, searcher, log.Logger), nil
}
