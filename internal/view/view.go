// Package view derives the month-scoped and search-narrowed subsets the
// rendering layer consumes, and tracks the transient view selection.
// Nothing here is persisted.
package view

import (
	"strings"
	"time"

	"outlay/internal/core"
)

// AllCategories is the category filter sentinel meaning "no category
// restriction".
const AllCategories = "All Categories"

// State is the transient view selection: the month being looked at, the
// active search and category filters, and the selected record id (zero
// when nothing is selected).
type State struct {
	Year       int
	Month      time.Month
	Search     string
	Category   string
	SelectedID int64
}

func NewState(now time.Time) State {
	return State{
		Year:     now.Year(),
		Month:    now.Month(),
		Category: AllCategories,
	}
}

func (s *State) NextMonth() {
	t := time.Date(s.Year, s.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	s.Year, s.Month = t.Year(), t.Month()
}

func (s *State) PrevMonth() {
	t := time.Date(s.Year, s.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	s.Year, s.Month = t.Year(), t.Month()
}

func (s *State) GoToToday(now time.Time) {
	s.Year, s.Month = now.Year(), now.Month()
}

func (s State) MonthLabel() string {
	return core.MonthLabel(s.Year, s.Month)
}

func (s *State) Select(id int64) {
	s.SelectedID = id
}

func (s *State) ClearSelection() {
	s.SelectedID = 0
}

func (s State) HasSelection() bool {
	return s.SelectedID != 0
}

// Apply derives the narrowed subset for this view state: month scope first,
// then search and category filters.
func (s State) Apply(records []core.Expense) []core.Expense {
	return Narrow(ByMonth(records, s.Year, s.Month), s.Search, s.Category)
}

// ByMonth returns the records whose date falls in the given calendar
// year+month. The source order is preserved as-is; order is a consequence
// of insertion, never of the date field. The result is never nil, so an
// empty month renders as an empty state rather than a missing ledger.
func ByMonth(records []core.Expense, year int, month time.Month) []core.Expense {
	out := make([]core.Expense, 0, len(records))
	for _, e := range records {
		if core.InMonth(e.Date, year, month) {
			out = append(out, e)
		}
	}
	return out
}

// Narrow filters a candidate subset by free text and category. A record
// passes when the search text (case-insensitive) occurs in its description
// or category name, and the category selector is AllCategories or matches
// exactly (case-sensitive). The result is never nil.
func Narrow(subset []core.Expense, search, category string) []core.Expense {
	search = strings.ToLower(search)
	out := make([]core.Expense, 0, len(subset))
	for _, e := range subset {
		if !matchesSearch(e, search) {
			continue
		}
		if category != AllCategories && e.Category != category {
			continue
		}
		out = append(out, e)
	}
	return out
}

func matchesSearch(e core.Expense, lowered string) bool {
	if lowered == "" {
		return true
	}
	return strings.Contains(strings.ToLower(e.Description), lowered) ||
		strings.Contains(strings.ToLower(e.Category), lowered)
}
