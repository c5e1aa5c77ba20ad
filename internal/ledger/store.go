// Package ledger owns the canonical expense list and the monthly budget.
// Every mutation validates, applies in memory, then writes through to the
// state store before returning.
package ledger

import (
	"context"
	"fmt"
	"sync"
	"time"

	"outlay/internal/core"
	"outlay/internal/log"
	"outlay/internal/storage"
)

// Store is the expense ledger engine. Records are kept newest-first by
// insertion; editing never resorts.
type Store struct {
	mu      sync.Mutex
	state   storage.StateStore
	cats    core.Categories
	logger  *log.Logger
	clock   func() time.Time
	records []core.Expense
	budget  core.Money
	lastID  int64
}

// Open loads persisted state into a new Store. A missing state is an empty
// ledger and zero budget; unreadable state fails with core.ErrCorruptState
// and the caller decides whether to reset or abort.
func Open(ctx context.Context, state storage.StateStore, cats core.Categories, logger *log.Logger) (*Store, error) {
	s := newStore(state, cats, logger)
	if err := s.load(ctx); err != nil {
		return nil, err
	}
	logger.Info("Ledger loaded",
		log.FieldOperation, log.OpLoad,
		log.FieldCount, len(s.records),
		log.FieldBudgetCents, s.budget.Cents)
	return s, nil
}

// OpenEmpty returns a Store with no records and zero budget, ignoring
// whatever the state store holds. Used as the corrupt-state fallback.
func OpenEmpty(state storage.StateStore, cats core.Categories, logger *log.Logger) *Store {
	return newStore(state, cats, logger)
}

func newStore(state storage.StateStore, cats core.Categories, logger *log.Logger) *Store {
	return &Store{
		state:  state,
		cats:   cats,
		logger: logger.WithComponent(log.ComponentLedger),
		clock:  time.Now,
	}
}

// SetClock overrides the time source. Tests only.
func (s *Store) SetClock(clock func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clock = clock
}

// Categories returns the allowed category set.
func (s *Store) Categories() core.Categories {
	return s.cats
}

// Records returns a copy of the ledger, newest-first by insertion.
func (s *Store) Records() []core.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Expense(nil), s.records...)
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Budget returns the monthly budget; zero cents means no budget set.
func (s *Store) Budget() core.Money {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.budget
}

// Add validates and prepends a new expense, assigning a fresh id and the
// current timestamp, then persists.
func (s *Store) Add(ctx context.Context, amount core.Money, category, description string) (core.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock()
	e := core.Expense{
		ID:          s.nextID(now),
		Date:        now,
		Amount:      amount,
		Category:    category,
		Description: description,
	}
	if err := e.Validate(s.cats); err != nil {
		return core.Expense{}, err
	}

	s.records = append([]core.Expense{e}, s.records...)
	if err := s.persist(ctx); err != nil {
		return e, err
	}

	s.logger.Info("Expense added",
		log.FieldOperation, log.OpAdd,
		log.FieldExpenseID, e.ID,
		log.FieldAmountCents, e.Amount.Cents,
		log.FieldCategory, e.Category)
	return e, nil
}

// Update edits amount and description of an existing record in place.
// Date, category and id are unchanged.
func (s *Store) Update(ctx context.Context, id int64, amount core.Money, description string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("expense %d: %w", id, core.ErrNotFound)
	}
	if err := amount.Validate(); err != nil {
		return err
	}

	s.records[i].Amount = amount
	s.records[i].Description = description
	if err := s.persist(ctx); err != nil {
		return err
	}

	s.logger.Info("Expense updated",
		log.FieldOperation, log.OpUpdate,
		log.FieldExpenseID, id,
		log.FieldAmountCents, amount.Cents)
	return nil
}

// Remove deletes the record with the given id.
func (s *Store) Remove(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("expense %d: %w", id, core.ErrNotFound)
	}

	s.records = append(s.records[:i], s.records[i+1:]...)
	if err := s.persist(ctx); err != nil {
		return err
	}

	s.logger.Info("Expense removed",
		log.FieldOperation, log.OpRemove,
		log.FieldExpenseID, id)
	return nil
}

// Clear empties the ledger. A no-op when already empty; confirmation is the
// shell's concern, not this layer's.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.records) == 0 {
		return nil
	}
	removed := len(s.records)
	s.records = nil
	if err := s.persist(ctx); err != nil {
		return err
	}

	s.logger.Info("Ledger cleared",
		log.FieldOperation, log.OpClear,
		log.FieldCount, removed)
	return nil
}

// SetBudget stores the monthly budget. Zero clears it; negative values are
// rejected.
func (s *Store) SetBudget(ctx context.Context, budget core.Money) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if budget.Cents < 0 {
		return core.ErrNegativeBudget
	}

	s.budget = budget
	if err := s.persist(ctx); err != nil {
		return err
	}

	s.logger.Info("Budget set",
		log.FieldOperation, log.OpSetBudget,
		log.FieldBudgetCents, budget.Cents)
	return nil
}

func (s *Store) indexOf(id int64) int {
	for i, e := range s.records {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// nextID derives a unique id from the creation instant, bumping past the
// last assigned id when two records land in the same millisecond.
func (s *Store) nextID(now time.Time) int64 {
	id := now.UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// persist writes both state keys through to the store. A failed write is
// retried once; after that the in-memory mutation stands and the caller
// gets core.ErrPersistence.
func (s *Store) persist(ctx context.Context) error {
	expenses, err := encodeExpenses(s.records)
	if err != nil {
		return fmt.Errorf("%v: %w", err, core.ErrPersistence)
	}

	if err := s.setWithRetry(ctx, storage.KeyExpenses, expenses); err != nil {
		return err
	}
	return s.setWithRetry(ctx, storage.KeyBudget, encodeBudget(s.budget))
}

func (s *Store) setWithRetry(ctx context.Context, key, value string) error {
	err := s.state.Set(ctx, key, value)
	if err == nil {
		return nil
	}
	s.logger.Warn("State write failed, retrying",
		log.FieldOperation, log.OpPersist,
		log.FieldStateKey, key,
		log.FieldError, err)
	if err = s.state.Set(ctx, key, value); err != nil {
		return fmt.Errorf("write %q: %v: %w", key, err, core.ErrPersistence)
	}
	return nil
}

func (s *Store) load(ctx context.Context) error {
	data, ok, err := s.state.Get(ctx, storage.KeyExpenses)
	if err != nil {
		return fmt.Errorf("read %q: %w", storage.KeyExpenses, err)
	}
	if ok {
		records, err := decodeExpenses(data)
		if err != nil {
			return err
		}
		s.records = records
		for _, e := range records {
			if e.ID > s.lastID {
				s.lastID = e.ID
			}
		}
	}

	data, ok, err = s.state.Get(ctx, storage.KeyBudget)
	if err != nil {
		return fmt.Errorf("read %q: %w", storage.KeyBudget, err)
	}
	if ok {
		budget, err := decodeBudget(data)
		if err != nil {
			return err
		}
		s.budget = budget
	}
	return nil
}
