// Package cli provides common process initialization utilities shared by
// the command entry points.
package cli

import (
	"bufio"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"outlay/internal/backend"
	"outlay/internal/config"
	"outlay/internal/core"
	"outlay/internal/ledger"
	"outlay/internal/log"
	"outlay/internal/storage"
)

// SetupLogger initializes structured logging at the given level and sets
// it as the default logger.
func SetupLogger(level string) *log.Logger {
	logger := log.New(log.Config{Level: log.ParseLevel(level), Component: log.ComponentApp})
	log.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *log.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", log.FieldError, err)
		os.Exit(1)
	}
	return cfg
}

// InitStateStore opens the configured state store or exits the process.
func InitStateStore(logger *log.Logger, cfg *config.Config) storage.StateStore {
	store, err := backend.Open(cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize state store", log.FieldError, err, log.FieldBackend, cfg.DataBackend)
		os.Exit(1)
	}
	return store
}

// InitLedger loads the ledger from the state store. Corrupt state falls
// back to an empty ledger and zero budget; that decision is deliberate and
// logged rather than silent. Any other failure exits the process.
func InitLedger(ctx context.Context, logger *log.Logger, state storage.StateStore, cats core.Categories) *ledger.Store {
	store, err := ledger.Open(ctx, state, cats, logger)
	if err == nil {
		return store
	}
	if errors.Is(err, core.ErrCorruptState) {
		logger.Warn("Persisted state is unreadable, starting with an empty ledger and zero budget",
			log.FieldOperation, log.OpLoad,
			log.FieldError, err)
		return ledger.OpenEmpty(state, cats, logger)
	}
	logger.Error("Failed to load ledger", log.FieldError, err)
	os.Exit(1)
	return nil
}

// LoadCategories reads the category seed file from the data directory,
// falling back to the built-in set when the file is missing or empty.
// Blank lines and lines starting with # are skipped.
func LoadCategories(logger *log.Logger, dataDir string) core.Categories {
	path := filepath.Join(dataDir, "categories.txt")
	names := readLines(path)
	if len(names) == 0 {
		return core.DefaultCategories()
	}
	cats := core.NewCategories(names...)
	logger.Info("Loaded category seed file", "path", path, log.FieldCount, cats.Len())
	return cats
}

func readLines(path string) []string {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out
}
