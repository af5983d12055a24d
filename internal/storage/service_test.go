package storage_test

import (
	"context"
	"testing"

	"github.com/kitaplikapp/kitaplik-core/internal/domain"
	"github.com/kitaplikapp/kitaplik-core/internal/kv"
	"github.com/kitaplikapp/kitaplik-core/internal/storage"
	"github.com/kitaplikapp/kitaplik-core/internal/telemetry"
	"github.com/stretchr/testify/require"
)

func newService() (*storage.Service, *kv.MemoryStore) {
	adapter := kv.NewMemoryStore()
	return storage.New(adapter, nil, telemetry.NewNoopReporter()), adapter
}

func TestGetItem_NeverWrittenKey(t *testing.T) {
	svc, _ := newService()

	_, ok := storage.GetItem[domain.ReadingGoal](context.Background(), svc, storage.KeyReadingGoal)
	require.False(t, ok)
}

func TestSetItem_GetItem_RoundTrip(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	goal := domain.ReadingGoal{YearlyGoal: 42, CurrentYear: 2025}
	require.NoError(t, storage.SetItem(ctx, svc, storage.KeyReadingGoal, goal))

	got, ok := storage.GetItem[domain.ReadingGoal](ctx, svc, storage.KeyReadingGoal)
	require.True(t, ok)
	require.Equal(t, goal, got)
}

func TestGetItem_CorruptPayloadDegradesToAbsence(t *testing.T) {
	svc, adapter := newService()
	ctx := context.Background()

	require.NoError(t, adapter.Set(ctx, storage.KeyReadingGoal, `{"yearlyGoal": not json`))

	_, ok := storage.GetItem[domain.ReadingGoal](ctx, svc, storage.KeyReadingGoal)
	require.False(t, ok)
}

func TestSetItem_WriteFailurePropagates(t *testing.T) {
	svc, _ := newService()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := storage.SetItem(ctx, svc, storage.KeyLanguage, domain.LanguageTurkish)
	require.Error(t, err)
}

func TestGetItem_ReadFailureDegradesToAbsence(t *testing.T) {
	svc, adapter := newService()
	require.NoError(t, adapter.Set(context.Background(), storage.KeyLanguage, `"tr"`))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Unlike writes, read failures never surface.
	_, ok := storage.GetItem[domain.Language](ctx, svc, storage.KeyLanguage)
	require.False(t, ok)
}

func TestRemoveItem_Idempotent(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	require.NoError(t, storage.SetItem(ctx, svc, storage.KeyLanguage, domain.LanguageEnglish))
	require.NoError(t, svc.RemoveItem(ctx, storage.KeyLanguage))
	require.NoError(t, svc.RemoveItem(ctx, storage.KeyLanguage))

	_, ok := storage.GetItem[domain.Language](ctx, svc, storage.KeyLanguage)
	require.False(t, ok)
}

func TestSwap_PreservesServiceIdentity(t *testing.T) {
	svc, original := newService()
	ctx := context.Background()

	require.NoError(t, storage.SetItem(ctx, svc, storage.KeyLanguage, domain.LanguageTurkish))

	replacement := kv.NewMemoryStore()
	previous := svc.Swap(replacement)
	require.Same(t, kv.Store(original), previous)

	// Reads now hit the new adapter, which is empty.
	_, ok := storage.GetItem[domain.Language](ctx, svc, storage.KeyLanguage)
	require.False(t, ok)

	// Writes land in the new adapter.
	require.NoError(t, storage.SetItem(ctx, svc, storage.KeyLanguage, domain.LanguageEnglish))
	raw, found, err := replacement.Get(ctx, storage.KeyLanguage)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, `"en"`, raw)
}

func TestAllKeysAndClear(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	require.NoError(t, storage.SetItem(ctx, svc, storage.KeyLanguage, domain.LanguageTurkish))
	require.NoError(t, storage.SetItem(ctx, svc, storage.KeyAnonymousID, "00000000-0000-4000-8000-000000000000"))

	keys, err := svc.AllKeys(ctx)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{storage.KeyLanguage, storage.KeyAnonymousID}, keys)

	require.NoError(t, svc.Clear(ctx))
	keys, err = svc.AllKeys(ctx)
	require.NoError(t, err)
	require.Empty(t, keys)
}
