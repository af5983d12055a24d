package providers

import (
	"log/slog"

	"github.com/samber/do/v2"

	"github.com/kitaplikapp/kitaplik-core/internal/config"
	"github.com/kitaplikapp/kitaplik-core/internal/logger"
	"github.com/kitaplikapp/kitaplik-core/internal/telemetry"
)

// ProvideConfig loads the application configuration.
func ProvideConfig(_ do.Injector) (*config.Config, error) {
	return config.LoadConfig()
}

// ProvideLogger provides the configured logger.
func ProvideLogger(i do.Injector) (*logger.Logger, error) {
	cfg := do.MustInvoke[*config.Config](i)

	return logger.New(logger.Config{
		Environment: cfg.App.Environment,
		Level:       logger.ParseLevel(cfg.Logger.Level),
	}), nil
}

// ProvideSlogLogger provides the underlying slog.Logger for packages that need it.
func ProvideSlogLogger(i do.Injector) (*slog.Logger, error) {
	log := do.MustInvoke[*logger.Logger](i)
	return log.Logger, nil
}

// ProvideTelemetryReporter provides the error reporter. Crash reports go
// to the structured log; a remote sink can be swapped in by overriding
// this provider.
func ProvideTelemetryReporter(i do.Injector) (telemetry.Reporter, error) {
	log := do.MustInvoke[*logger.Logger](i)
	return telemetry.NewSlogReporter(log.Logger), nil
}
