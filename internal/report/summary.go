// Package report computes the derived numbers the rendering layer shows:
// the today/week/month summary with budget consumption, and the
// whole-ledger analytics.
package report

import (
	"fmt"
	"time"

	"outlay/internal/core"
)

// Severity classifies budget consumption for UI styling.
type Severity string

const (
	SeverityNormal  Severity = "normal"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

// BudgetStatus describes how the month total measures against the budget.
// PercentUsed is unclamped; BarPercent is the clamped 0-100 value a
// progress bar should use for its width.
type BudgetStatus struct {
	Set         bool
	PercentUsed float64
	BarPercent  float64
	Remaining   core.Money
	Severity    Severity
	Message     string
}

// Summary holds the totals for the narrowed subset of one month.
type Summary struct {
	Today  core.Money
	Week   core.Money
	Month  core.Money
	Budget BudgetStatus
}

// Summarize computes the summary panel numbers from the month-and-search
// narrowed subset. The subset is already month-scoped, so the month total
// is a plain sum. Today matches the full calendar day of now; the week
// runs from the start of now's week (Sunday) through now, inclusive.
func Summarize(narrowed []core.Expense, budget core.Money, now time.Time) Summary {
	weekStart := core.StartOfWeek(now)

	var s Summary
	for _, e := range narrowed {
		s.Month.Cents += e.Amount.Cents
		if core.SameDay(e.Date, now) {
			s.Today.Cents += e.Amount.Cents
		}
		if !e.Date.Before(weekStart) {
			s.Week.Cents += e.Amount.Cents
		}
	}
	s.Budget = budgetStatus(s.Month, budget)
	return s
}

func budgetStatus(monthTotal, budget core.Money) BudgetStatus {
	if budget.Cents <= 0 {
		return BudgetStatus{
			Severity: SeverityNormal,
			Message:  "No budget set",
		}
	}

	percent := float64(monthTotal.Cents) / float64(budget.Cents) * 100
	remaining := core.Money{Cents: budget.Cents - monthTotal.Cents}

	st := BudgetStatus{
		Set:         true,
		PercentUsed: percent,
		BarPercent:  percent,
		Remaining:   remaining,
		Severity:    severityFor(percent),
	}
	if st.BarPercent > 100 {
		st.BarPercent = 100
	}
	if remaining.Cents >= 0 {
		st.Message = fmt.Sprintf("%s of %s remaining", remaining, budget)
	} else {
		st.Message = fmt.Sprintf("%s over budget", remaining.Abs())
	}
	return st
}

// severityFor picks the highest tier whose threshold is met.
func severityFor(percentUsed float64) Severity {
	switch {
	case percentUsed >= 90:
		return SeverityDanger
	case percentUsed >= 75:
		return SeverityWarning
	default:
		return SeverityNormal
	}
}
