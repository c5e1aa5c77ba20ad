package export

import (
	"strings"
	"testing"
	"time"

	"outlay/internal/core"
)

func record(date time.Time, cat, desc string, cents int64) core.Expense {
	return core.Expense{ID: 1, Date: date, Amount: core.Money{Cents: cents}, Category: cat, Description: desc}
}

func TestCSVSingleRecord(t *testing.T) {
	got := CSV([]core.Expense{
		record(time.Date(2024, 1, 5, 9, 30, 0, 0, time.Local), "Food", "Lunch", 1250),
	})
	want := `"Date","Category","Description","Amount"` + "\n" + `"Jan 5, 2024","Food","Lunch","12.50"`
	if got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestCSVEmptyLedgerIsHeaderOnly(t *testing.T) {
	got := CSV(nil)
	if got != `"Date","Category","Description","Amount"` {
		t.Fatalf("got %q", got)
	}
}

func TestCSVPreservesLedgerOrder(t *testing.T) {
	got := CSV([]core.Expense{
		record(time.Date(2024, 2, 1, 0, 0, 0, 0, time.Local), "Bills", "newest", 100),
		record(time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local), "Food", "oldest", 200),
	})
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}
	if !strings.Contains(lines[1], "newest") || !strings.Contains(lines[2], "oldest") {
		t.Fatalf("rows out of order:\n%s", got)
	}
}

func TestCSVEscapesEmbeddedQuotesAndCommas(t *testing.T) {
	got := CSV([]core.Expense{
		record(time.Date(2024, 3, 10, 0, 0, 0, 0, time.Local), "Food", `the "good" cafe, downtown`, 999),
	})
	want := `"Mar 10, 2024","Food","the ""good"" cafe, downtown","9.99"`
	if lines := strings.Split(got, "\n"); lines[1] != want {
		t.Fatalf("got %q, want %q", lines[1], want)
	}
}
