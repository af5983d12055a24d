package genre

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// translationKeyPrefix namespaces genre keys in the i18n string tables.
const translationKeyPrefix = "genre_"

// translationKeyOverrides bypasses generic slugging for labels where the
// generated key would collide with an existing string-table entry or just
// read badly on the other side.
var translationKeyOverrides = map[string]string{
	"Bilim Kurgu":     "genre_sci_fi",
	"Kişisel Gelişim": "genre_self_help",
	"Çizgi Roman":     "genre_comics",
	"Din ve Tasavvuf": "genre_religion",
	"İş ve Ekonomi":   "genre_business",
	CatchAll:          "genre_other",
}

// turkishASCII transliterates the Turkish letters that NFKD decomposition
// alone does not fold onto ASCII.
var turkishASCII = map[rune]rune{
	'ç': 'c', 'Ç': 'c',
	'ğ': 'g', 'Ğ': 'g',
	'ı': 'i', 'İ': 'i',
	'ö': 'o', 'Ö': 'o',
	'ş': 's', 'Ş': 's',
	'ü': 'u', 'Ü': 'u',
}

// TranslationKey returns the i18n string-table key for a canonical label.
// "Çocuk Kitapları" -> "genre_cocuk_kitaplari".
// Lowercases, transliterates diacritics, and replaces whitespace and "/"
// with underscores; a handful of labels carry hard-coded overrides.
func TranslationKey(canonical string) string {
	if key, ok := translationKeyOverrides[canonical]; ok {
		return key
	}

	// Fold Turkish letters first, then decompose whatever is left and
	// drop the combining marks.
	mapped := strings.Map(func(r rune) rune {
		if ascii, ok := turkishASCII[r]; ok {
			return ascii
		}
		return r
	}, canonical)
	mapped = norm.NFKD.String(mapped)

	var b strings.Builder
	b.WriteString(translationKeyPrefix)
	lastUnderscore := false
	for _, r := range strings.ToLower(mapped) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		case unicode.IsSpace(r), r == '/':
			if !lastUnderscore {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
		// Everything else (combining marks, punctuation) is dropped.
	}

	return strings.TrimSuffix(b.String(), "_")
}
