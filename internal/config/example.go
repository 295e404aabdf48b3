package config

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# Hen House Tracker configuration file
# Values can be overridden by HENHOUSE_* environment variables or CLI flags.

# Storage backend: file, sqlite, postgres or memory
storage = "file"

# Storage file (file backend) or database (sqlite backend).
# Defaults to <data_dir>/storage.json or <data_dir>/storage.db.
# storage_path = "~/.henhouse/storage.json"

# PostgreSQL connection string (postgres backend only)
# storage_dsn = "postgres://localhost/henhouse?sslmode=disable"

# Key the checklist is saved under
storage_key = "hs_tracker_v2"

# Directory for default storage files and logs (supports ~ expansion)
data_dir = "~/.henhouse"

# Logging: debug, info, warn, error / text, json, logfmt
log_level = "info"
log_format = "text"
log_timestamps = false
log_caller = false

# Progress bar width in columns
bar_width = 30
`
}
