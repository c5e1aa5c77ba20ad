package backend

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"outlay/internal/config"
	"outlay/internal/log"
)

func TestTypeIsValid(t *testing.T) {
	for _, valid := range []Type{SQLiteBackend, BoltBackend, MemoryBackend} {
		if !valid.IsValid() {
			t.Fatalf("%s should be valid", valid)
		}
	}
	if Type("sheets").IsValid() {
		t.Fatalf("unknown type should be invalid")
	}
}

func TestOpen(t *testing.T) {
	logger := log.New(log.Config{Level: slog.LevelError})
	dir := t.TempDir()

	cases := []struct {
		name string
		cfg  config.Config
	}{
		{"memory", config.Config{DataBackend: "memory"}},
		{"sqlite", config.Config{DataBackend: "sqlite", SQLiteDBPath: filepath.Join(dir, "s.db")}},
		{"bolt", config.Config{DataBackend: "bolt", BoltDBPath: filepath.Join(dir, "b.bolt")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store, err := Open(&tc.cfg, logger)
			if err != nil {
				t.Fatalf("open: %v", err)
			}
			defer store.Close()
			if err := store.Set(context.Background(), "k", "v"); err != nil {
				t.Fatalf("set: %v", err)
			}
		})
	}

	if _, err := Open(&config.Config{DataBackend: "nope"}, logger); err == nil {
		t.Fatalf("expected error for invalid backend")
	}
}
