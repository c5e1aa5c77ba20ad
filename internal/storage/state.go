// Package storage provides the persisted-state collaborators: simple
// get/set-by-key string stores the ledger writes through to.
package storage

import "context"

// State keys owned by the ledger engine.
const (
	KeyExpenses = "expenses"
	KeyBudget   = "monthlyBudget"
)

// StateStore is the outbound port for persisted state. Get reports ok=false
// when the key has never been written.
type StateStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Close() error
}
