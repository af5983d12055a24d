package providers

import (
	"github.com/samber/do/v2"

	"github.com/kitaplikapp/kitaplik-core/internal/config"
	"github.com/kitaplikapp/kitaplik-core/internal/logger"
	"github.com/kitaplikapp/kitaplik-core/internal/metadata/googlebooks"
)

// GoogleBooksHandle wraps the metadata client. Client is nil when
// autofill is disabled by configuration.
type GoogleBooksHandle struct {
	Client *googlebooks.Client
}

// ProvideGoogleBooksClient provides the metadata client, or a nil client
// when METADATA_ENABLED is false.
func ProvideGoogleBooksClient(i do.Injector) (*GoogleBooksHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	if !cfg.Metadata.Enabled {
		log.Info("metadata autofill disabled")
		return &GoogleBooksHandle{}, nil
	}
	return &GoogleBooksHandle{Client: googlebooks.NewClient(log.Logger)}, nil
}
