package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// loadFromEnv overrides config from HENHOUSE_* environment variables.
func loadFromEnv(cfg *Config) error {
	if v := os.Getenv("HENHOUSE_STORAGE"); v != "" {
		cfg.Storage = v
	}
	if v := os.Getenv("HENHOUSE_STORAGE_PATH"); v != "" {
		cfg.StoragePath = v
	}
	if v := os.Getenv("HENHOUSE_STORAGE_DSN"); v != "" {
		cfg.StorageDSN = v
	}
	if v := os.Getenv("HENHOUSE_STORAGE_KEY"); v != "" {
		cfg.StorageKey = v
	}
	if v := os.Getenv("HENHOUSE_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("HENHOUSE_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("HENHOUSE_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("HENHOUSE_LOG_TIMESTAMPS"); v != "" {
		cfg.LogTimestamps = boolFromString(v)
	}
	if v := os.Getenv("HENHOUSE_LOG_CALLER"); v != "" {
		cfg.LogCaller = boolFromString(v)
	}
	if v := os.Getenv("HENHOUSE_BAR_WIDTH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("HENHOUSE_BAR_WIDTH: %w", err)
		}
		cfg.BarWidth = n
	}
	return nil
}

func boolFromString(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
