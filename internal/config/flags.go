package config

import "flag"

// parseFlags defines the global flags on fs and parses args. Flag defaults
// are the values loaded so far, so an unset flag keeps them.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string) error {
	if fs == nil {
		fs = flag.NewFlagSet("henhouse", flag.ContinueOnError)
	}

	// Storage
	fs.StringVar(&cfg.Storage, "storage", cfg.Storage, "Storage backend (file|sqlite|postgres|memory)")
	fs.StringVar(&cfg.StoragePath, "storage-path", cfg.StoragePath, "Storage file or database path (file and sqlite backends)")
	fs.StringVar(&cfg.StorageDSN, "dsn", cfg.StorageDSN, "PostgreSQL connection string (postgres backend)")
	fs.StringVar(&cfg.StorageKey, "key", cfg.StorageKey, "Storage key the checklist is saved under")
	fs.StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "Directory for default storage files and logs")

	// Logging
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug|info|warn|error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text|json|logfmt)")
	fs.BoolVar(&cfg.LogTimestamps, "log-timestamps", cfg.LogTimestamps, "Include timestamps in log output")
	fs.BoolVar(&cfg.LogCaller, "log-caller", cfg.LogCaller, "Include caller location in log output")

	// View
	fs.IntVar(&cfg.BarWidth, "bar-width", cfg.BarWidth, "Progress bar width in columns")

	return fs.Parse(args)
}
