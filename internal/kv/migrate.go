package kv

import (
	"context"
	"log/slog"

	apperrors "github.com/kitaplikapp/kitaplik-core/internal/errors"
)

// Migrate copies every key from the old backend into the new one, exactly
// once. The flag key in the destination records completion so a second run
// is a no-op; existing destination values are overwritten (the source is
// authoritative during a backend swap).
//
// Returns the number of keys copied.
func Migrate(ctx context.Context, from, to Store, flagKey string, logger *slog.Logger) (int, error) {
	if flag, ok, err := to.Get(ctx, flagKey); err != nil {
		return 0, err
	} else if ok && flag == "true" {
		return 0, nil
	}

	keys, err := from.Keys(ctx)
	if err != nil {
		return 0, apperrors.Wrap(err, apperrors.CodeStorage, "migration: read source keys")
	}

	copied := 0
	for _, key := range keys {
		if key == flagKey {
			continue
		}
		value, ok, err := from.Get(ctx, key)
		if err != nil {
			return copied, apperrors.Wrapf(err, apperrors.CodeStorage, "migration: read %s", key)
		}
		if !ok {
			continue
		}
		if err := to.Set(ctx, key, value); err != nil {
			return copied, apperrors.Wrapf(err, apperrors.CodeStorage, "migration: write %s", key)
		}
		copied++
	}

	// Stored as a JSON boolean per the persisted-state layout.
	if err := to.Set(ctx, flagKey, "true"); err != nil {
		return copied, apperrors.Wrap(err, apperrors.CodeStorage, "migration: mark complete")
	}

	if logger != nil {
		logger.Info("storage migration complete",
			"from", from.Name(),
			"to", to.Name(),
			"keys", copied,
		)
	}

	return copied, nil
}
