// Package goal implements the yearly reading challenge: a persisted
// target plus progress derived from the book collection.
package goal

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/kitaplikapp/kitaplik-core/internal/domain"
	apperrors "github.com/kitaplikapp/kitaplik-core/internal/errors"
	"github.com/kitaplikapp/kitaplik-core/internal/storage"
)

// BookCounter supplies how many books count toward the challenge for a
// year. The collection satisfies it.
type BookCounter interface {
	CountReadInYear(year int) int
}

// Progress is the state of the challenge for one year.
type Progress struct {
	Goal      domain.ReadingGoal `json:"goal"`
	BooksRead int                `json:"booksRead"`
	Completed bool               `json:"completed"`
	Ratio     float64            `json:"ratio"`
}

// Store reads and writes the reading goal. The goal belongs to the year
// it was set in; it is reported as-is across year boundaries until the
// user sets a new one.
type Store struct {
	mu      sync.Mutex
	storage *storage.Service
	counter BookCounter
	logger  *slog.Logger
	now     func() time.Time
}

// New creates a goal store. counter may be nil when progress is not needed.
func New(store *storage.Service, counter BookCounter, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{
		storage: store,
		counter: counter,
		logger:  logger,
		now:     time.Now,
	}
}

// Get returns the stored goal, or the default of 20 books for the
// current year when nothing is stored or the stored record is unreadable.
func (s *Store) Get(ctx context.Context) domain.ReadingGoal {
	if goal, ok := storage.GetItem[domain.ReadingGoal](ctx, s.storage, storage.KeyReadingGoal); ok {
		return goal
	}
	return domain.DefaultReadingGoal(s.now().Year())
}

// Set stores a new yearly target stamped with the current year.
// Targets outside [5,100] are rejected.
func (s *Store) Set(ctx context.Context, yearlyGoal int) (domain.ReadingGoal, error) {
	if yearlyGoal < domain.MinYearlyGoal || yearlyGoal > domain.MaxYearlyGoal {
		return domain.ReadingGoal{}, apperrors.Validationf(
			"yearly goal must be between %d and %d books", domain.MinYearlyGoal, domain.MaxYearlyGoal)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	goal := domain.ReadingGoal{YearlyGoal: yearlyGoal, CurrentYear: s.now().Year()}
	if err := storage.SetItem(ctx, s.storage, storage.KeyReadingGoal, goal); err != nil {
		return domain.ReadingGoal{}, err
	}
	return goal, nil
}

// CurrentProgress reports the challenge state for the goal's own year.
func (s *Store) CurrentProgress(ctx context.Context) Progress {
	goal := s.Get(ctx)
	return s.progressFor(goal)
}

// ProgressForYear reports the challenge state for an arbitrary year
// against the stored target.
func (s *Store) ProgressForYear(ctx context.Context, year int) Progress {
	goal := s.Get(ctx)
	goal.CurrentYear = year
	return s.progressFor(goal)
}

func (s *Store) progressFor(goal domain.ReadingGoal) Progress {
	read := 0
	if s.counter != nil {
		read = s.counter.CountReadInYear(goal.CurrentYear)
	}

	ratio := 0.0
	if goal.YearlyGoal > 0 {
		ratio = float64(read) / float64(goal.YearlyGoal)
		if ratio > 1 {
			ratio = 1
		}
	}
	return Progress{
		Goal:      goal,
		BooksRead: read,
		Completed: read >= goal.YearlyGoal,
		Ratio:     ratio,
	}
}
