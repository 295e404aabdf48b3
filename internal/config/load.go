package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/nibzard/henhouse/internal/kv"
	"github.com/nibzard/henhouse/internal/store"
)

// Load loads configuration from multiple sources in priority order:
// 1. Defaults
// 2. User config file (~/.henhouse/henhouse.toml or OS-specific config dir)
// 3. Project config file (henhouse.toml or .henhouse.toml in current directory)
// 4. Environment variables
// 5. CLI flags
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := &Config{}

	// 1. Set defaults
	setDefaults(cfg)

	// 2. Try to load from user config file
	if userConfigFile := findUserConfigFile(); userConfigFile != "" {
		if err := loadConfigFile(cfg, userConfigFile); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", userConfigFile, err)
		}
	}

	// 3. Try to load from project config file (overrides user config)
	if projectConfigFile := findProjectConfigFile(); projectConfigFile != "" {
		if err := loadConfigFile(cfg, projectConfigFile); err != nil {
			return nil, fmt.Errorf("loading project config file %s: %w", projectConfigFile, err)
		}
	}

	// 4. Override from environment
	if err := loadFromEnv(cfg); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	// 5. Parse CLI flags (they override everything)
	if err := parseFlags(cfg, fs, args); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	// 6. Compute derived values
	if err := finalizeConfig(cfg); err != nil {
		return nil, fmt.Errorf("finalizing config: %w", err)
	}

	return cfg, nil
}

// loadConfigFile loads TOML config from the given file. Keys the file does
// not mention keep their current values.
func loadConfigFile(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return nil
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	cfg.Storage = DefaultStorage
	cfg.StorageKey = store.DefaultKey
	cfg.DataDir = DefaultDataDir
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
	cfg.BarWidth = DefaultBarWidth
}

// finalizeConfig normalizes the backend name and resolves paths.
func finalizeConfig(cfg *Config) error {
	driver, err := kv.ParseDriver(cfg.Storage)
	if err != nil {
		return err
	}
	cfg.Storage = string(driver)

	if cfg.ProjectRoot == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}
		cfg.ProjectRoot = wd
	}

	cfg.DataDir = resolvePath(cfg.ProjectRoot, expandPath(cfg.DataDir))

	if cfg.StoragePath == "" {
		switch driver {
		case kv.DriverFile:
			cfg.StoragePath = filepath.Join(cfg.DataDir, fileStorageName)
		case kv.DriverSQLite:
			cfg.StoragePath = filepath.Join(cfg.DataDir, sqliteStorageName)
		}
	} else {
		cfg.StoragePath = resolvePath(cfg.ProjectRoot, expandPath(cfg.StoragePath))
	}

	if cfg.StorageKey == "" {
		cfg.StorageKey = store.DefaultKey
	}
	if cfg.BarWidth <= 0 {
		cfg.BarWidth = DefaultBarWidth
	}
	return nil
}

func resolvePath(root, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}
