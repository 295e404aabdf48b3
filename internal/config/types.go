package config

import (
	"fmt"

	"github.com/nibzard/henhouse/internal/kv"
)

// Default values.
const (
	DefaultDataDir   = "~/.henhouse"
	DefaultStorage   = string(kv.DriverFile)
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
	DefaultBarWidth  = 30

	fileStorageName   = "storage.json"
	sqliteStorageName = "storage.db"
)

// Config holds the full configuration for henhouse.
type Config struct {
	// Storage backend: file, sqlite, postgres or memory.
	Storage     string `toml:"storage"`
	StoragePath string `toml:"storage_path"`
	StorageDSN  string `toml:"storage_dsn"`
	StorageKey  string `toml:"storage_key"`

	// DataDir holds the default storage files and run logs.
	DataDir string `toml:"data_dir"`

	// Logging configuration
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
	LogCaller     bool   `toml:"log_caller"`

	// Width of rendered progress bars.
	BarWidth int `toml:"bar_width"`

	// Project root (computed)
	ProjectRoot string `toml:"-"`
}

// StorageOptions returns the kv options for the configured backend.
func (c *Config) StorageOptions() (kv.Options, error) {
	driver, err := kv.ParseDriver(c.Storage)
	if err != nil {
		return kv.Options{}, err
	}
	opts := kv.Options{Driver: driver, Path: c.StoragePath, DSN: c.StorageDSN}
	if driver == kv.DriverPostgres && opts.DSN == "" {
		return kv.Options{}, fmt.Errorf("storage_dsn is required for the postgres backend")
	}
	return opts, nil
}
