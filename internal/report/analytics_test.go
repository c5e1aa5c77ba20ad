package report

import (
	"testing"
	"time"

	"outlay/internal/core"
)

func TestAnalyzeEmptyLedger(t *testing.T) {
	a := Analyze(nil)
	if a.Count != 0 || a.Total.Cents != 0 {
		t.Fatalf("unexpected totals: %+v", a)
	}
	if a.Average.Cents != 0 {
		t.Fatalf("average must be 0 on an empty ledger, got %d", a.Average.Cents)
	}
	if a.Max.Cents != 0 {
		t.Fatalf("max must be 0 on an empty ledger, got %d", a.Max.Cents)
	}
	if a.TopCategory != "" {
		t.Fatalf("top category must be the empty sentinel, got %q", a.TopCategory)
	}
}

func TestAnalyze(t *testing.T) {
	records := []core.Expense{
		exp("Food", 5000, at(2026, time.January, 10)),
		exp("Bills", 2000, at(2026, time.February, 1)),
		exp("Food", 1000, at(2025, time.December, 25)),
	}
	a := Analyze(records)
	if a.Total.Cents != 8000 {
		t.Fatalf("total = %d", a.Total.Cents)
	}
	if a.Count != 3 {
		t.Fatalf("count = %d", a.Count)
	}
	if a.Average.Cents != 2667 {
		t.Fatalf("average = %d, want 2667", a.Average.Cents)
	}
	if a.Max.Cents != 5000 {
		t.Fatalf("max = %d", a.Max.Cents)
	}
	if a.TopCategory != "Food" {
		t.Fatalf("top = %q", a.TopCategory)
	}
	if a.ByCategory.Amount("Food").Cents != 6000 || a.ByCategory.Amount("Bills").Cents != 2000 {
		t.Fatalf("category totals wrong: %+v", a.ByCategory)
	}
}

func TestCategoryTotalsSumEqualsTotal(t *testing.T) {
	records := []core.Expense{
		exp("Food", 1234, at(2026, time.January, 1)),
		exp("Bills", 991, at(2026, time.January, 2)),
		exp("Health", 7, at(2026, time.January, 3)),
		exp("Food", 40, at(2026, time.January, 4)),
	}
	a := Analyze(records)
	var sum int64
	for _, name := range a.ByCategory.Names() {
		sum += a.ByCategory.Amount(name).Cents
	}
	if sum != a.Total.Cents {
		t.Fatalf("category sums %d != total %d", sum, a.Total.Cents)
	}
}

func TestTopCategoryTieBreak(t *testing.T) {
	// Two categories at $30 each; the first one encountered wins,
	// reproducibly.
	records := []core.Expense{
		exp("Transport", 3000, at(2026, time.January, 1)),
		exp("Food", 1000, at(2026, time.January, 2)),
		exp("Food", 2000, at(2026, time.January, 3)),
	}
	for i := 0; i < 10; i++ {
		if got := Analyze(records).TopCategory; got != "Transport" {
			t.Fatalf("run %d: top = %q, want first-seen Transport", i, got)
		}
	}
}

func TestCategoryReport(t *testing.T) {
	records := []core.Expense{
		exp("Food", 2500, at(2026, time.January, 1)),
		exp("Bills", 5000, at(2026, time.January, 2)),
		exp("Health", 2500, at(2026, time.January, 3)),
	}
	shares := CategoryReport(records)
	if len(shares) != 3 {
		t.Fatalf("len = %d", len(shares))
	}
	if shares[0].Name != "Bills" || shares[0].Percent != 50 {
		t.Fatalf("first share: %+v", shares[0])
	}
	// Food and Health tie at 25%; stable sort keeps first-seen Food ahead.
	if shares[1].Name != "Food" || shares[2].Name != "Health" {
		t.Fatalf("tie order wrong: %q then %q", shares[1].Name, shares[2].Name)
	}
}

func TestCategoryReportEmpty(t *testing.T) {
	shares := CategoryReport(nil)
	if len(shares) != 0 {
		t.Fatalf("expected no shares, got %v", shares)
	}
}
