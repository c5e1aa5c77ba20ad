// Package backend selects and constructs the persisted-state store.
package backend

import (
	"fmt"

	"outlay/internal/config"
	"outlay/internal/log"
	"outlay/internal/storage"
)

// Type represents the kind of state store backing the ledger.
type Type string

const (
	SQLiteBackend Type = "sqlite"
	BoltBackend   Type = "bolt"
	MemoryBackend Type = "memory"
)

// String implements fmt.Stringer
func (t Type) String() string {
	return string(t)
}

// IsValid returns true if the backend type is valid
func (t Type) IsValid() bool {
	switch t {
	case SQLiteBackend, BoltBackend, MemoryBackend:
		return true
	default:
		return false
	}
}

// Open creates the state store named by the configuration. The caller owns
// the returned store and must Close it.
func Open(cfg *config.Config, logger *log.Logger) (storage.StateStore, error) {
	logger = logger.WithComponent(log.ComponentBackend)

	t := Type(cfg.DataBackend)
	if !t.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", t)
	}

	switch t {
	case SQLiteBackend:
		store, err := storage.NewSQLiteStore(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("create sqlite backend: %w", err)
		}
		logger.Info("Initialized SQLite backend", log.FieldBackend, t.String(), "path", cfg.SQLiteDBPath)
		return store, nil
	case BoltBackend:
		store, err := storage.NewBoltStore(cfg.BoltDBPath)
		if err != nil {
			return nil, fmt.Errorf("create bolt backend: %w", err)
		}
		logger.Info("Initialized Bolt backend", log.FieldBackend, t.String(), "path", cfg.BoltDBPath)
		return store, nil
	default:
		logger.Info("Initialized memory backend", log.FieldBackend, t.String())
		return storage.NewMemoryStore(), nil
	}
}
