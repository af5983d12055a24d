// Package di provides dependency injection configuration for the
// Kitaplık core.
package di

import (
	"github.com/samber/do/v2"

	"github.com/kitaplikapp/kitaplik-core/internal/di/providers"
	"github.com/kitaplikapp/kitaplik-core/internal/goal"
	"github.com/kitaplikapp/kitaplik-core/internal/library"
	"github.com/kitaplikapp/kitaplik-core/internal/service"
	"github.com/kitaplikapp/kitaplik-core/internal/settings"
	"github.com/kitaplikapp/kitaplik-core/internal/storage"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)
	do.Provide(injector, providers.ProvideSlogLogger)
	do.Provide(injector, providers.ProvideTelemetryReporter)

	// Storage layer
	do.Provide(injector, providers.ProvideKVStore)
	do.Provide(injector, providers.ProvideStorageService)

	// Search layer
	do.Provide(injector, providers.ProvideSearchIndex)

	// Metadata layer
	do.Provide(injector, providers.ProvideGoogleBooksClient)

	// Stores and services
	do.Provide(injector, providers.ProvideEventEmitter)
	do.Provide(injector, providers.ProvideCollection)
	do.Provide(injector, providers.ProvideGoalStore)
	do.Provide(injector, providers.ProvideSettingsStore)
	do.Provide(injector, providers.ProvideValidator)
	do.Provide(injector, providers.ProvideBookService)

	return injector
}

// Bootstrap eagerly initializes the core services. Hydration of the
// collection and the one-time backend migration happen here, before the
// caller touches any store.
func Bootstrap(injector *do.RootScope) error {
	if _, err := do.Invoke[*storage.Service](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*library.Collection](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*goal.Store](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*settings.Store](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*service.BookService](injector); err != nil {
		return err
	}
	return nil
}
