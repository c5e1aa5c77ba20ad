package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type Config struct {
	// Storage backend selection
	DataBackend string

	// Backend paths
	SQLiteDBPath string
	BoltDBPath   string

	// Directory holding the optional category seed file
	DataDir string

	// Logging
	LogLevel string
}

func Load() *Config {
	cfg := &Config{
		DataBackend:  getEnv("DATA_BACKEND", "sqlite"),
		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/outlay.db"),
		BoltDBPath:   getEnv("BOLT_DB_PATH", "./data/outlay.bolt"),
		DataDir:      getEnv("DATA_DIR", "./data"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}

	return cfg
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	validBackends := []string{"sqlite", "bolt", "memory"}
	isValidBackend := false
	for _, backend := range validBackends {
		if c.DataBackend == backend {
			isValidBackend = true
			break
		}
	}
	if !isValidBackend {
		errors = append(errors, fmt.Sprintf("invalid data backend '%s': must be one of %v", c.DataBackend, validBackends))
	}

	if c.DataBackend == "sqlite" {
		if msg := checkDBPath(c.SQLiteDBPath, "SQLite"); msg != "" {
			errors = append(errors, msg)
		}
	}
	if c.DataBackend == "bolt" {
		if msg := checkDBPath(c.BoltDBPath, "Bolt"); msg != "" {
			errors = append(errors, msg)
		}
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be debug, info, warn or error", c.LogLevel))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func checkDBPath(path, label string) string {
	if path == "" {
		return fmt.Sprintf("%s database path cannot be empty when using the %s backend", label, strings.ToLower(label))
	}
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Sprintf("cannot create %s database directory '%s': %v", label, dir, err)
			}
		}
	}
	return ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
