package core

import (
	"errors"
	"testing"
	"time"
)

func TestMoneyValidate(t *testing.T) {
	if err := (Money{Cents: 1}).Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := (Money{Cents: 0}).Validate(); err == nil {
		t.Fatalf("expected error for zero")
	}
	if err := (Money{Cents: -5}).Validate(); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestExpenseValidate(t *testing.T) {
	cats := DefaultCategories()
	date := time.Date(2026, 1, 10, 14, 30, 0, 0, time.Local)

	good := Expense{ID: 1, Date: date, Amount: Money{Cents: 100}, Category: "Food", Description: ""}
	if err := good.Validate(cats); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []Expense{
		{ID: 2, Amount: Money{Cents: 100}, Category: "Food"}, // zero date
		{ID: 3, Date: date, Amount: Money{Cents: 0}, Category: "Food"},
		{ID: 4, Date: date, Amount: Money{Cents: 100}, Category: "Rocketry"},
	}
	for i, e := range bads {
		if err := e.Validate(cats); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}

	if err := bads[2].Validate(cats); !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestCategoriesOrderAndDedupe(t *testing.T) {
	c := NewCategories(" Food ", "Bills", "Food", "", "Health")
	want := []string{"Food", "Bills", "Health"}
	got := c.Names()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
	if !c.Contains("Bills") || c.Contains("bills") {
		t.Fatalf("Contains should be exact and case-sensitive")
	}
}

func TestErrorTaxonomy(t *testing.T) {
	for _, err := range []error{ErrInvalidAmount, ErrUnknownCategory, ErrNegativeBudget} {
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("%v should wrap ErrValidation", err)
		}
	}
	if errors.Is(ErrNotFound, ErrValidation) {
		t.Fatalf("ErrNotFound must not be a validation error")
	}
}
