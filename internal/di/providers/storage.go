package providers

import (
	"context"
	"os"
	"path/filepath"

	"github.com/samber/do/v2"

	"github.com/kitaplikapp/kitaplik-core/internal/config"
	"github.com/kitaplikapp/kitaplik-core/internal/kv"
	"github.com/kitaplikapp/kitaplik-core/internal/logger"
	"github.com/kitaplikapp/kitaplik-core/internal/storage"
	"github.com/kitaplikapp/kitaplik-core/internal/telemetry"
)

const (
	boltFileName  = "kitaplik.db"
	badgerDirName = "badger"
)

// KVStoreHandle wraps the active key-value backend with shutdown capability.
type KVStoreHandle struct {
	kv.Store
}

// Shutdown implements do.Shutdownable.
func (h *KVStoreHandle) Shutdown() error {
	return h.Close()
}

// ProvideKVStore opens the configured key-value backend and, when the
// retired backend's data is still on disk, copies it across once before
// first use. The retired data is left in place; a later release removes it.
func ProvideKVStore(i do.Injector) (*KVStoreHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	if err := os.MkdirAll(cfg.Storage.DataPath, 0o750); err != nil {
		return nil, err
	}

	boltPath := filepath.Join(cfg.Storage.DataPath, boltFileName)
	badgerPath := filepath.Join(cfg.Storage.DataPath, badgerDirName)

	var active kv.Store
	var err error
	switch cfg.Storage.Backend {
	case config.BackendBadger:
		active, err = kv.NewBadgerStore(badgerPath, log.Logger)
	default:
		active, err = kv.NewBoltStore(boltPath, log.Logger)
	}
	if err != nil {
		return nil, err
	}

	if err := migrateRetiredBackend(cfg, active, log); err != nil {
		log.Warn("backend migration failed, continuing with empty store", "error", err)
	}

	log.Info("key-value store ready", "backend", active.Name(), "path", cfg.Storage.DataPath)
	return &KVStoreHandle{Store: active}, nil
}

// migrateRetiredBackend copies data from the other backend's files into
// the active one, guarded by the migration flag so it runs at most once.
func migrateRetiredBackend(cfg *config.Config, active kv.Store, log *logger.Logger) error {
	boltPath := filepath.Join(cfg.Storage.DataPath, boltFileName)
	badgerPath := filepath.Join(cfg.Storage.DataPath, badgerDirName)

	var retiredPath string
	var openRetired func() (kv.Store, error)
	switch cfg.Storage.Backend {
	case config.BackendBadger:
		retiredPath = boltPath
		openRetired = func() (kv.Store, error) { return kv.NewBoltStore(boltPath, log.Logger) }
	default:
		retiredPath = badgerPath
		openRetired = func() (kv.Store, error) { return kv.NewBadgerStore(badgerPath, log.Logger) }
	}

	if _, err := os.Stat(retiredPath); err != nil {
		return nil
	}

	retired, err := openRetired()
	if err != nil {
		return err
	}
	defer retired.Close()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	copied, err := kv.Migrate(ctx, retired, active, storage.KeyStorageMigrated, log.Logger)
	if err != nil {
		return err
	}
	if copied > 0 {
		log.Info("migrated data from retired backend", "from", retired.Name(), "to", active.Name(), "keys", copied)
	}
	return nil
}

// ProvideStorageService provides the typed JSON façade over the active backend.
func ProvideStorageService(i do.Injector) (*storage.Service, error) {
	handle := do.MustInvoke[*KVStoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)
	reporter := do.MustInvoke[telemetry.Reporter](i)

	return storage.New(handle.Store, log.Logger, reporter), nil
}
