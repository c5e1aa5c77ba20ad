package storage

import (
	"context"
	"path/filepath"
	"testing"
)

func testStateStore(t *testing.T, s StateStore) {
	t.Helper()
	ctx := context.Background()

	if _, ok, err := s.Get(ctx, KeyExpenses); err != nil || ok {
		t.Fatalf("missing key: ok=%v err=%v", ok, err)
	}

	if err := s.Set(ctx, KeyExpenses, `[]`); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Set(ctx, KeyBudget, "100"); err != nil {
		t.Fatalf("set: %v", err)
	}

	v, ok, err := s.Get(ctx, KeyBudget)
	if err != nil || !ok || v != "100" {
		t.Fatalf("get: v=%q ok=%v err=%v", v, ok, err)
	}

	// overwrite
	if err := s.Set(ctx, KeyBudget, "250.5"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	v, ok, err = s.Get(ctx, KeyBudget)
	if err != nil || !ok || v != "250.5" {
		t.Fatalf("get after overwrite: v=%q ok=%v err=%v", v, ok, err)
	}
}

func TestMemoryStore(t *testing.T) {
	testStateStore(t, NewMemoryStore())
}

func TestSQLiteStore(t *testing.T) {
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()
	testStateStore(t, s)
}

func TestSQLiteStoreReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")
	ctx := context.Background()

	s, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.Set(ctx, KeyBudget, "42"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	s, err = NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	v, ok, err := s.Get(ctx, KeyBudget)
	if err != nil || !ok || v != "42" {
		t.Fatalf("value did not survive reopen: v=%q ok=%v err=%v", v, ok, err)
	}
}

func TestBoltStore(t *testing.T) {
	s, err := NewBoltStore(filepath.Join(t.TempDir(), "state.bolt"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()
	testStateStore(t, s)
}
