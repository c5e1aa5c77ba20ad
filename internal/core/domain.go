package core

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Error taxonomy roots. Layer-specific failures wrap one of these so
// callers can branch with errors.Is.
var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("expense not found")
	ErrCorruptState = errors.New("corrupt persisted state")
	ErrPersistence  = errors.New("persistence failed")
)

var (
	ErrInvalidAmount   = fmt.Errorf("invalid amount: %w", ErrValidation)
	ErrUnknownCategory = fmt.Errorf("unknown category: %w", ErrValidation)
	ErrNegativeBudget  = fmt.Errorf("negative budget: %w", ErrValidation)
)

type (
	Money struct {
		Cents int64
	}

	// Expense is a single ledger record. ID and Date are assigned at
	// creation and never change; Amount and Description may be edited
	// in place.
	Expense struct {
		ID          int64
		Date        time.Time
		Amount      Money
		Category    string
		Description string
	}

	// Categories is the allowed category set, preserving the order
	// categories were first declared in.
	Categories struct {
		names []string
		index map[string]struct{}
	}
)

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (e Expense) Validate(cats Categories) error {
	if e.Date.IsZero() {
		return errors.New("date cannot be zero")
	}
	if err := e.Amount.Validate(); err != nil {
		return err
	}
	if !cats.Contains(e.Category) {
		return fmt.Errorf("%q: %w", e.Category, ErrUnknownCategory)
	}
	if len(e.Description) > 200 {
		return fmt.Errorf("description too long (max 200 characters): %w", ErrValidation)
	}
	return nil
}

// NewCategories builds a category set from names, trimming whitespace and
// dropping duplicates while keeping first-seen order.
func NewCategories(names ...string) Categories {
	c := Categories{index: map[string]struct{}{}}
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if _, ok := c.index[n]; ok {
			continue
		}
		c.index[n] = struct{}{}
		c.names = append(c.names, n)
	}
	return c
}

// DefaultCategories is the built-in set used when no seed file is present.
func DefaultCategories() Categories {
	return NewCategories("Food", "Transport", "Shopping", "Entertainment", "Bills", "Health", "Other")
}

func (c Categories) Contains(name string) bool {
	_, ok := c.index[name]
	return ok
}

// Names returns the categories in declaration order.
func (c Categories) Names() []string {
	return append([]string(nil), c.names...)
}

func (c Categories) Len() int {
	return len(c.names)
}
