// Package domain contains the core business entities and domain logic for the Kitaplık book tracker.
package domain

import "time"

// Status is the reading state of a book. The three states are mutually exclusive.
type Status string

// Reading states.
const (
	StatusToRead  Status = "ToRead"
	StatusReading Status = "Reading"
	StatusRead    Status = "Read"
)

// Valid reports whether s is one of the three known states.
func (s Status) Valid() bool {
	switch s {
	case StatusToRead, StatusReading, StatusRead:
		return true
	}
	return false
}

// DefaultCoverURL is the built-in fallback cover image used when a book has no cover.
const DefaultCoverURL = "https://kitaplikapp.com/assets/default-cover.png"

// Book represents a single book in the user's library.
//
// Progress is derived from status: 1 when Read, 0 when ToRead, and
// currentPage/pageCount while Reading (0 when pageCount is 0).
// AddedAt is assigned at creation and never changes; the reading challenge
// counts a book toward a year when it is Read and AddedAt falls in that year.
type Book struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	Genre       string    `json:"genre"`
	CoverURL    string    `json:"coverUrl"`
	Status      Status    `json:"status"`
	CurrentPage int       `json:"currentPage"`
	PageCount   int       `json:"pageCount"`
	Progress    float64   `json:"progress"`
	Notes       string    `json:"notes"`
	AddedAt     time.Time `json:"addedAt"`
}

// ApplyStatus transitions the book to the given status and recomputes progress.
// Read pins the current page to the page count; ToRead zeroes progress but
// leaves page fields alone; Reading derives progress from the page fields.
func (b *Book) ApplyStatus(s Status) {
	b.Status = s
	switch s {
	case StatusRead:
		b.CurrentPage = b.PageCount
		b.Progress = 1
	case StatusToRead:
		b.Progress = 0
	case StatusReading:
		b.Progress = b.PageRatio()
	}
}

// PageRatio returns currentPage/pageCount, clamped to [0,1].
// Returns 0 when pageCount is 0.
func (b *Book) PageRatio() float64 {
	if b.PageCount <= 0 {
		return 0
	}
	ratio := float64(b.CurrentPage) / float64(b.PageCount)
	if ratio > 1 {
		return 1
	}
	if ratio < 0 {
		return 0
	}
	return ratio
}

// CountsTowardGoal reports whether the book counts toward the reading
// challenge for the given calendar year. Completion date is not tracked
// separately, so the addition year stands in for it.
func (b *Book) CountsTowardGoal(year int) bool {
	return b.Status == StatusRead && b.AddedAt.Year() == year
}
