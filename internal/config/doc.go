// Package config handles configuration loading and defaults.
//
// Configuration is loaded from multiple sources in priority order:
// 1. Built-in defaults
// 2. User config file (~/.henhouse/henhouse.toml or OS-specific config directory)
// 3. Project config file (henhouse.toml or .henhouse.toml in the working directory)
// 4. Environment variables (HENHOUSE_*)
// 5. CLI flags
//
// Each level overrides the previous one, so CLI flags take precedence.
// HENHOUSE_CONFIG names an explicit user config file and skips the lookup.
//
// User-level config locations:
// - ~/.henhouse/henhouse.toml (preferred)
// - Windows: %APPDATA%\henhouse\henhouse.toml
// - macOS: ~/Library/Application Support/henhouse/henhouse.toml
// - Linux/BSD: $XDG_CONFIG_HOME/henhouse/henhouse.toml or ~/.config/henhouse/henhouse.toml
package config
