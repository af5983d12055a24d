package genre

import "strings"

// synonyms maps raw genre labels, as external metadata sources emit them,
// to canonical labels. Keys are mostly English (Google Books categories)
// with a sprinkling of other languages seen in imported metadata.
var synonyms = map[string]string{
	// Broad fiction buckets
	"Fiction":            "Roman",
	"Novel":              "Roman",
	"Novels":             "Roman",
	"Literary Fiction":   "Roman",
	"General Fiction":    "Roman",
	"Contemporary":       "Roman",
	"Literature":         "Roman",
	"Literary":           "Roman",
	"Roman (fiction)":    "Roman",
	"Literatura":         "Roman",
	"Littérature":        "Roman",
	"Belletristik":       "Roman",
	"Women's Fiction":    "Roman",
	"Historical Fiction": "Roman",

	// Short forms
	"Short Stories":      "Öykü",
	"Short Story":        "Öykü",
	"Stories":            "Öykü",
	"Anthologies":        "Öykü",
	"Tales":              "Öykü",
	"Poetry":             "Şiir",
	"Poems":              "Şiir",
	"Verse":              "Şiir",
	"Essay":              "Deneme",
	"Essays":             "Deneme",
	"Literary Criticism": "Deneme",
	"Drama":              "Tiyatro",
	"Theatre":            "Tiyatro",
	"Theater":            "Tiyatro",
	"Plays":              "Tiyatro",

	// Classics
	"Classics":           "Klasikler",
	"Classic":            "Klasikler",
	"Classic Literature": "Klasikler",
	"World Classics":     "Klasikler",

	// Speculative
	"Science Fiction":   "Bilim Kurgu",
	"Sci-Fi":            "Bilim Kurgu",
	"SciFi":             "Bilim Kurgu",
	"Sci Fi":            "Bilim Kurgu",
	"Speculative":       "Bilim Kurgu",
	"Dystopian":         "Bilim Kurgu",
	"Dystopia":          "Bilim Kurgu",
	"Space Opera":       "Bilim Kurgu",
	"Cyberpunk":         "Bilim Kurgu",
	"Fantasy":           "Fantastik",
	"Epic Fantasy":      "Fantastik",
	"High Fantasy":      "Fantastik",
	"Urban Fantasy":     "Fantastik",
	"Magical Realism":   "Fantastik",
	"Fantastique":       "Fantastik",
	"Paranormal":        "Fantastik",
	"Mythology":         "Fantastik",
	"Fairy Tales":       "Fantastik",
	"Supernatural":      "Fantastik",

	// Crime and suspense
	"Mystery":           "Polisiye",
	"Crime":             "Polisiye",
	"Crime Fiction":     "Polisiye",
	"Detective":         "Polisiye",
	"Detective Fiction": "Polisiye",
	"Noir":              "Polisiye",
	"Whodunit":          "Polisiye",
	"True Crime":        "Polisiye",
	"Thriller":          "Gerilim",
	"Thrillers":         "Gerilim",
	"Suspense":          "Gerilim",
	"Psychological Thriller": "Gerilim",
	"Legal Thriller":    "Gerilim",
	"Espionage":         "Gerilim",
	"Horror":            "Korku",
	"Ghost Stories":     "Korku",
	"Gothic":            "Korku",

	// Adventure and romance
	"Adventure":            "Macera",
	"Action & Adventure":   "Macera",
	"Action":               "Macera",
	"Survival":             "Macera",
	"Romance":              "Romantik",
	"Love Stories":         "Romantik",
	"Contemporary Romance": "Romantik",
	"Romantic Comedy":      "Romantik",

	// Non-fiction
	"History":                   "Tarih",
	"Historical":                "Tarih",
	"World History":             "Tarih",
	"Military History":          "Tarih",
	"Ancient History":           "Tarih",
	"Ottoman History":           "Tarih",
	"Biography":                 "Biyografi",
	"Biographies":               "Biyografi",
	"Biography & Autobiography": "Biyografi",
	"Autobiography":             "Biyografi",
	"Memoir":                    "Anı",
	"Memoirs":                   "Anı",
	"Diaries":                   "Anı",
	"Letters":                   "Anı",
	"Personal Memoirs":          "Anı",

	// Children and young adult
	"Juvenile Fiction":    "Çocuk Kitapları",
	"Juvenile Nonfiction": "Çocuk Kitapları",
	"Children":            "Çocuk Kitapları",
	"Children's Books":    "Çocuk Kitapları",
	"Children's Fiction":  "Çocuk Kitapları",
	"Picture Books":       "Çocuk Kitapları",
	"Middle Grade":        "Çocuk Kitapları",
	"Young Adult":         "Gençlik",
	"Young Adult Fiction": "Gençlik",
	"Teen":                "Gençlik",
	"YA":                  "Gençlik",
	"Coming of Age":       "Gençlik",

	// Mind and self
	"Self-Help":            "Kişisel Gelişim",
	"Self Help":            "Kişisel Gelişim",
	"Personal Development": "Kişisel Gelişim",
	"Personal Growth":      "Kişisel Gelişim",
	"Motivation":           "Kişisel Gelişim",
	"Motivational":         "Kişisel Gelişim",
	"Productivity":         "Kişisel Gelişim",
	"Mindfulness":          "Kişisel Gelişim",
	"Psychology":           "Psikoloji",
	"Psychoanalysis":       "Psikoloji",
	"Mental Health":        "Psikoloji",
	"Philosophy":           "Felsefe",
	"Ethics":               "Felsefe",
	"Metaphysics":          "Felsefe",
	"Stoicism":             "Felsefe",
	"Religion":             "Din ve Tasavvuf",
	"Religious":            "Din ve Tasavvuf",
	"Spirituality":         "Din ve Tasavvuf",
	"Islam":                "Din ve Tasavvuf",
	"Sufism":               "Din ve Tasavvuf",
	"Theology":             "Din ve Tasavvuf",

	// Science, arts, work
	"Science":              "Bilim",
	"Popular Science":      "Bilim",
	"Mathematics":          "Bilim",
	"Physics":              "Bilim",
	"Biology":              "Bilim",
	"Astronomy":            "Bilim",
	"Nature":               "Bilim",
	"Technology":           "Bilim",
	"Computers":            "Bilim",
	"Art":                  "Sanat",
	"Arts":                 "Sanat",
	"Music":                "Sanat",
	"Photography":          "Sanat",
	"Architecture":         "Sanat",
	"Design":               "Sanat",
	"Performing Arts":      "Sanat",
	"Business":             "İş ve Ekonomi",
	"Business & Economics": "İş ve Ekonomi",
	"Economics":            "İş ve Ekonomi",
	"Finance":              "İş ve Ekonomi",
	"Investing":            "İş ve Ekonomi",
	"Management":           "İş ve Ekonomi",
	"Marketing":            "İş ve Ekonomi",
	"Entrepreneurship":     "İş ve Ekonomi",

	// Body and leisure
	"Health":           "Sağlık",
	"Health & Fitness": "Sağlık",
	"Fitness":          "Sağlık",
	"Medical":          "Sağlık",
	"Nutrition":        "Sağlık",
	"Cooking":          "Sağlık",
	"Humor":            "Mizah",
	"Humour":           "Mizah",
	"Comedy":           "Mizah",
	"Satire":           "Mizah",
	"Comics & Graphic Novels": "Çizgi Roman",
	"Comics":           "Çizgi Roman",
	"Graphic Novels":   "Çizgi Roman",
	"Graphic Novel":    "Çizgi Roman",
	"Manga":            "Çizgi Roman",
	"Travel":           "Seyahat",
	"Travel Writing":   "Seyahat",
	"Travelogue":       "Seyahat",
	"Guidebooks":       "Seyahat",

	// Learning
	"Education":         "Eğitim",
	"Educational":       "Eğitim",
	"Study Aids":        "Eğitim",
	"Language Arts":     "Eğitim",
	"Reference":         "Eğitim",
	"Teaching":          "Eğitim",
	"Social Science":    "Diğer",
	"Political Science": "Diğer",
	"Nonfiction":        "Diğer",
	"Non-Fiction":       "Diğer",
	"General":           "Diğer",
}

// foldedSynonyms indexes the synonym table by lowercased key for the
// case-insensitive tier. Built once at init.
var foldedSynonyms = func() map[string]string {
	folded := make(map[string]string, len(synonyms))
	for raw, canonical := range synonyms {
		folded[strings.ToLower(raw)] = canonical
	}
	return folded
}()
