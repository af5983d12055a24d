// Package genre normalizes free-text genre strings from external metadata
// sources onto the app's closed set of canonical Turkish genre labels.
package genre

// CatchAll is the designated fallback label used when no rule matches.
const CatchAll = "Diğer"

// Canonical is the closed, ordered set of genre labels a book may carry.
// The order is the display order in the genre picker; the catch-all is
// always last. Book.Genre only ever holds one of these values.
var Canonical = []string{
	"Roman",
	"Öykü",
	"Şiir",
	"Deneme",
	"Tiyatro",
	"Klasikler",
	"Bilim Kurgu",
	"Fantastik",
	"Polisiye",
	"Gerilim",
	"Korku",
	"Macera",
	"Romantik",
	"Tarih",
	"Biyografi",
	"Anı",
	"Çocuk Kitapları",
	"Gençlik",
	"Kişisel Gelişim",
	"Psikoloji",
	"Felsefe",
	"Din ve Tasavvuf",
	"Bilim",
	"Sanat",
	"İş ve Ekonomi",
	"Sağlık",
	"Mizah",
	"Çizgi Roman",
	"Seyahat",
	"Eğitim",
	CatchAll,
}

// canonicalSet is the membership index over Canonical.
var canonicalSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(Canonical))
	for _, label := range Canonical {
		set[label] = struct{}{}
	}
	return set
}()

// IsCanonical reports whether label is a member of the canonical set.
func IsCanonical(label string) bool {
	_, ok := canonicalSet[label]
	return ok
}
