package report

import (
	"sort"

	"outlay/internal/core"
)

// CategoryAmount is an amount aggregated under one category name.
type CategoryAmount struct {
	Name   string
	Amount core.Money
}

// CategoryTotals maps category to summed amount while remembering the
// order categories were first seen in the ledger. That order is the
// documented tie-break everywhere a deterministic choice is needed.
type CategoryTotals struct {
	names  []string
	totals map[string]int64
}

func (ct *CategoryTotals) add(name string, cents int64) {
	if ct.totals == nil {
		ct.totals = map[string]int64{}
	}
	if _, ok := ct.totals[name]; !ok {
		ct.names = append(ct.names, name)
	}
	ct.totals[name] += cents
}

// Names returns the categories in first-seen order.
func (ct CategoryTotals) Names() []string {
	return append([]string(nil), ct.names...)
}

// Amount returns the summed amount for a category, zero when absent.
func (ct CategoryTotals) Amount(name string) core.Money {
	return core.Money{Cents: ct.totals[name]}
}

func (ct CategoryTotals) Len() int {
	return len(ct.names)
}

// Analytics are whole-ledger statistics, independent of any month or
// search scoping. TopCategory is empty on an empty ledger.
type Analytics struct {
	Total       core.Money
	Count       int
	Average     core.Money
	Max         core.Money
	TopCategory string
	ByCategory  CategoryTotals
}

// CategoryShare is one row of the category report. Percent keeps full
// precision; rounding to one decimal is a display concern.
type CategoryShare struct {
	CategoryAmount
	Percent float64
}

// Analyze computes whole-ledger statistics. Average and Max are zero on an
// empty ledger, never NaN. Ties for TopCategory go to the category first
// seen in ledger iteration order.
func Analyze(records []core.Expense) Analytics {
	a := Analytics{Count: len(records)}
	for _, e := range records {
		a.Total.Cents += e.Amount.Cents
		if e.Amount.Cents > a.Max.Cents {
			a.Max = e.Amount
		}
		a.ByCategory.add(e.Category, e.Amount.Cents)
	}
	if a.Count > 0 {
		a.Average = core.Money{Cents: (a.Total.Cents + int64(a.Count)/2) / int64(a.Count)}
	}

	var best int64 = -1
	for _, name := range a.ByCategory.names {
		if total := a.ByCategory.totals[name]; total > best {
			best = total
			a.TopCategory = name
		}
	}
	return a
}

// CategoryReport returns one share per category present in the ledger,
// sorted descending by total. The sort is stable, so equal totals keep
// their first-seen order.
func CategoryReport(records []core.Expense) []CategoryShare {
	a := Analyze(records)

	shares := make([]CategoryShare, 0, a.ByCategory.Len())
	for _, name := range a.ByCategory.names {
		amount := a.ByCategory.Amount(name)
		share := CategoryShare{CategoryAmount: CategoryAmount{Name: name, Amount: amount}}
		if a.Total.Cents > 0 {
			share.Percent = float64(amount.Cents) / float64(a.Total.Cents) * 100
		}
		shares = append(shares, share)
	}
	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].Amount.Cents > shares[j].Amount.Cents
	})
	return shares
}
