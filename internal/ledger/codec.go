package ledger

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"

	"outlay/internal/core"
)

// Wire format for the "expenses" state key: a JSON array of records with
// ISO-8601 date strings and the amount as a decimal number. The
// "monthlyBudget" key holds a plain decimal string.

type wireExpense struct {
	ID          int64   `json:"id"`
	Date        string  `json:"date"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}

func encodeExpenses(records []core.Expense) (string, error) {
	wire := make([]wireExpense, len(records))
	for i, e := range records {
		wire[i] = wireExpense{
			ID:          e.ID,
			Date:        e.Date.Format(time.RFC3339Nano),
			Amount:      e.Amount.Dollars(),
			Category:    e.Category,
			Description: e.Description,
		}
	}
	b, err := json.Marshal(wire)
	if err != nil {
		return "", fmt.Errorf("encode expenses: %w", err)
	}
	return string(b), nil
}

func decodeExpenses(data string) ([]core.Expense, error) {
	var wire []wireExpense
	if err := json.Unmarshal([]byte(data), &wire); err != nil {
		return nil, fmt.Errorf("decode expenses: %v: %w", err, core.ErrCorruptState)
	}
	records := make([]core.Expense, len(wire))
	for i, w := range wire {
		date, err := time.Parse(time.RFC3339Nano, w.Date)
		if err != nil {
			return nil, fmt.Errorf("decode expense %d date %q: %w", w.ID, w.Date, core.ErrCorruptState)
		}
		cents, err := dollarsToCents(w.Amount)
		if err != nil {
			return nil, fmt.Errorf("decode expense %d amount: %w", w.ID, core.ErrCorruptState)
		}
		records[i] = core.Expense{
			ID:          w.ID,
			Date:        date,
			Amount:      core.Money{Cents: cents},
			Category:    w.Category,
			Description: w.Description,
		}
	}
	return records, nil
}

func encodeBudget(b core.Money) string {
	return strconv.FormatFloat(b.Dollars(), 'f', -1, 64)
}

func decodeBudget(data string) (core.Money, error) {
	v, err := strconv.ParseFloat(data, 64)
	if err != nil {
		return core.Money{}, fmt.Errorf("decode budget %q: %w", data, core.ErrCorruptState)
	}
	cents, err := dollarsToCents(v)
	if err != nil || cents < 0 {
		return core.Money{}, fmt.Errorf("decode budget %q: %w", data, core.ErrCorruptState)
	}
	return core.Money{Cents: cents}, nil
}

func dollarsToCents(v float64) (int64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) > float64(math.MaxInt64)/200 {
		return 0, fmt.Errorf("amount out of range")
	}
	return int64(math.Round(v * 100)), nil
}
