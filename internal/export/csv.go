// Package export serializes the full ledger for the external file-save
// collaborator.
package export

import (
	"strings"

	"outlay/internal/core"
)

// Attributes the save-file collaborator needs.
const (
	FileName    = "expenses.csv"
	ContentType = "text/csv"
)

const dateLayout = "Jan 2, 2006"

// CSV renders the ledger in its current order, every field double-quoted,
// dates as short human dates and amounts with exactly two decimals. An
// empty ledger yields just the header row; refusing to export in that case
// is the caller's policy. Embedded quotes are escaped by doubling, so the
// output stays well-formed CSV.
func CSV(records []core.Expense) string {
	var b strings.Builder
	writeRow(&b, "Date", "Category", "Description", "Amount")
	for _, e := range records {
		b.WriteByte('\n')
		writeRow(&b, e.Date.Format(dateLayout), e.Category, e.Description, e.Amount.Decimal())
	}
	return b.String()
}

func writeRow(b *strings.Builder, fields ...string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
}
