package ui

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"outlay/internal/core"
	"outlay/internal/report"
)

const barWidth = 30

var (
	headerColor  = color.New(color.Bold)
	amountColor  = color.New(color.FgGreen)
	mutedColor   = color.New(color.Faint)
	normalColor  = color.New(color.FgGreen)
	warningColor = color.New(color.FgYellow)
	dangerColor  = color.New(color.FgRed)
)

func severityColor(s report.Severity) *color.Color {
	switch s {
	case report.SeverityDanger:
		return dangerColor
	case report.SeverityWarning:
		return warningColor
	default:
		return normalColor
	}
}

func renderTable(w io.Writer, records []core.Expense, selectedID int64) {
	if len(records) == 0 {
		mutedColor.Fprintln(w, "  No expenses found")
		return
	}

	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "  \t%s\t%s\t%s\t%s\t%s\n",
		headerColor.Sprint("ID"),
		headerColor.Sprint("Date"),
		headerColor.Sprint("Category"),
		headerColor.Sprint("Description"),
		headerColor.Sprint("Amount"))
	for _, e := range records {
		marker := " "
		if e.ID == selectedID {
			marker = ">"
		}
		fmt.Fprintf(tw, "%s \t%d\t%s\t%s\t%s\t%s\n",
			marker,
			e.ID,
			e.Date.Format("Jan 2, 2006"),
			e.Category,
			e.Description,
			amountColor.Sprint(e.Amount))
	}
	tw.Flush()
}

func renderSummary(w io.Writer, s report.Summary) {
	fmt.Fprintf(w, "Today %s   Week %s   Month %s\n", s.Today, s.Week, s.Month)

	b := s.Budget
	if !b.Set {
		mutedColor.Fprintf(w, "%s\n", b.Message)
		return
	}
	c := severityColor(b.Severity)
	c.Fprintf(w, "%s %.0f%% used\n", bar(b.BarPercent), b.PercentUsed)
	fmt.Fprintf(w, "%s\n", b.Message)
}

// bar renders a progress bar from an already-clamped 0-100 percentage.
func bar(percent float64) string {
	filled := int(percent / 100 * barWidth)
	if filled > barWidth {
		filled = barWidth
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", barWidth-filled) + "]"
}

func renderAnalytics(w io.Writer, a report.Analytics) {
	top := a.TopCategory
	if top == "" {
		top = "None"
	}
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Total Expenses:\t%s\n", a.Total)
	fmt.Fprintf(tw, "Number of Expenses:\t%d\n", a.Count)
	fmt.Fprintf(tw, "Average Expense:\t%s\n", a.Average)
	fmt.Fprintf(tw, "Largest Expense:\t%s\n", a.Max)
	fmt.Fprintf(tw, "Top Category:\t%s\n", top)
	tw.Flush()
}

func renderCategoryReport(w io.Writer, shares []report.CategoryShare) {
	if len(shares) == 0 {
		mutedColor.Fprintln(w, "No expenses to analyze")
		return
	}
	for _, s := range shares {
		fmt.Fprintf(w, "%-16s %s (%.1f%%)\n", s.Name, s.Amount, s.Percent)
		fmt.Fprintf(w, "  %s\n", bar(s.Percent))
	}
}
