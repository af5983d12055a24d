package domain

// Language is the UI language preference persisted under the language key.
type Language string

// Supported languages.
const (
	LanguageTurkish Language = "tr"
	LanguageEnglish Language = "en"
)

// DefaultLanguage is used when no preference has been persisted.
const DefaultLanguage = LanguageTurkish

// Valid reports whether l is a supported language.
func (l Language) Valid() bool {
	return l == LanguageTurkish || l == LanguageEnglish
}
