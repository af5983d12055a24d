// Package app exposes the Kitaplık core as one embeddable component: it
// owns the dependency injection container, boots the storage and stores,
// and hands the caller typed handles to them.
package app

import (
	"github.com/samber/do/v2"

	"github.com/kitaplikapp/kitaplik-core/internal/config"
	"github.com/kitaplikapp/kitaplik-core/internal/di"
	"github.com/kitaplikapp/kitaplik-core/internal/di/providers"
	"github.com/kitaplikapp/kitaplik-core/internal/goal"
	"github.com/kitaplikapp/kitaplik-core/internal/library"
	"github.com/kitaplikapp/kitaplik-core/internal/logger"
	"github.com/kitaplikapp/kitaplik-core/internal/search"
	"github.com/kitaplikapp/kitaplik-core/internal/service"
	"github.com/kitaplikapp/kitaplik-core/internal/settings"
	"github.com/kitaplikapp/kitaplik-core/internal/storage"
)

// App is the assembled application core. All fields are ready to use
// once New returns; the collection is hydrated and the search index
// populated.
type App struct {
	Books      *service.BookService
	Collection *library.Collection
	Goals      *goal.Store
	Settings   *settings.Store
	Search     *search.Index
	Storage    *storage.Service
	Logger     *logger.Logger

	injector *do.RootScope
}

// Option customizes the container before bootstrap.
type Option func(*do.RootScope)

// WithConfig bypasses the flag/env loader and uses the given
// configuration. Used by tests and embedders that manage config
// themselves.
func WithConfig(cfg *config.Config) Option {
	return func(injector *do.RootScope) {
		do.OverrideValue(injector, cfg)
	}
}

// WithEventEmitter routes collection events into the given sink instead
// of the default no-op.
func WithEventEmitter(emitter library.EventEmitter) Option {
	return func(injector *do.RootScope) {
		do.OverrideValue(injector, emitter)
	}
}

// New builds and boots the application core.
func New(opts ...Option) (*App, error) {
	injector := di.NewContainer()
	for _, opt := range opts {
		opt(injector)
	}

	if err := di.Bootstrap(injector); err != nil {
		_ = injector.Shutdown()
		return nil, err
	}

	app := &App{
		Books:      do.MustInvoke[*service.BookService](injector),
		Collection: do.MustInvoke[*library.Collection](injector),
		Goals:      do.MustInvoke[*goal.Store](injector),
		Settings:   do.MustInvoke[*settings.Store](injector),
		Search:     do.MustInvoke[*providers.SearchIndexHandle](injector).Index,
		Storage:    do.MustInvoke[*storage.Service](injector),
		Logger:     do.MustInvoke[*logger.Logger](injector),
		injector:   injector,
	}
	return app, nil
}

// Shutdown stops everything and closes the key-value store and search
// index. Safe to call once; the App is unusable afterwards.
func (a *App) Shutdown() error {
	err := a.injector.Shutdown()

	// Wrapper handles are closed by the container; anything invoked but
	// not shutdownable is already released. Report the first error only.
	if err != nil {
		a.Logger.Error("shutdown error", "error", err)
		return err
	}
	return nil
}
