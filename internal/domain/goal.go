package domain

// Yearly reading goal bounds. Goals outside [MinYearlyGoal, MaxYearlyGoal]
// are rejected at the validation boundary before reaching storage.
const (
	DefaultYearlyGoal = 20
	MinYearlyGoal     = 5
	MaxYearlyGoal     = 100
)

// ReadingGoal is the persisted yearly reading challenge record.
//
// CurrentYear is written when the goal is set but is never checked against
// the wall clock; there is no automatic year-rollover.
type ReadingGoal struct {
	YearlyGoal  int `json:"yearlyGoal"`
	CurrentYear int `json:"currentYear"`
}

// DefaultReadingGoal returns the built-in goal for the given year.
func DefaultReadingGoal(year int) ReadingGoal {
	return ReadingGoal{
		YearlyGoal:  DefaultYearlyGoal,
		CurrentYear: year,
	}
}
