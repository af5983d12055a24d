package genre_test

import (
	"strings"
	"testing"

	"github.com/kitaplikapp/kitaplik-core/internal/genre"
	"github.com/stretchr/testify/require"
)

func TestTranslationKey_Transliteration(t *testing.T) {
	require.Equal(t, "genre_cocuk_kitaplari", genre.TranslationKey("Çocuk Kitapları"))
	require.Equal(t, "genre_oyku", genre.TranslationKey("Öykü"))
	require.Equal(t, "genre_siir", genre.TranslationKey("Şiir"))
	require.Equal(t, "genre_saglik", genre.TranslationKey("Sağlık"))
	require.Equal(t, "genre_egitim", genre.TranslationKey("Eğitim"))
	require.Equal(t, "genre_genclik", genre.TranslationKey("Gençlik"))
}

func TestTranslationKey_Overrides(t *testing.T) {
	require.Equal(t, "genre_sci_fi", genre.TranslationKey("Bilim Kurgu"))
	require.Equal(t, "genre_self_help", genre.TranslationKey("Kişisel Gelişim"))
	require.Equal(t, "genre_comics", genre.TranslationKey("Çizgi Roman"))
	require.Equal(t, "genre_other", genre.TranslationKey(genre.CatchAll))
}

func TestTranslationKey_Simple(t *testing.T) {
	require.Equal(t, "genre_roman", genre.TranslationKey("Roman"))
	require.Equal(t, "genre_tarih", genre.TranslationKey("Tarih"))
	require.Equal(t, "genre_ani", genre.TranslationKey("Anı"))
}

func TestTranslationKey_SlashAndSpaces(t *testing.T) {
	require.Equal(t, "genre_bilim_kurgu", genre.TranslationKey("Bilim/Kurgu"))
	require.Equal(t, "genre_bilim_kurgu", genre.TranslationKey("Bilim / Kurgu"))
}

func TestTranslationKey_AllCanonicalDistinct(t *testing.T) {
	seen := make(map[string]string, len(genre.Canonical))
	for _, label := range genre.Canonical {
		key := genre.TranslationKey(label)
		require.True(t, strings.HasPrefix(key, "genre_"), "key %q for %q", key, label)
		require.NotContains(t, key, " ")
		prev, dup := seen[key]
		require.False(t, dup, "labels %q and %q share key %q", prev, label, key)
		seen[key] = label
	}
}
