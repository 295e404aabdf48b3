package kv

import (
	"context"
	"fmt"
	"strings"
)

// Options selects and configures a backend.
type Options struct {
	Driver Driver
	Path   string // file and sqlite
	DSN    string // postgres
}

// ParseDriver normalizes a driver name. The empty string selects the file
// backend.
func ParseDriver(name string) (Driver, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "file", "json":
		return DriverFile, nil
	case "sqlite", "sqlite3":
		return DriverSQLite, nil
	case "postgres", "postgresql", "pg":
		return DriverPostgres, nil
	case "memory", "mem":
		return DriverMemory, nil
	default:
		return "", fmt.Errorf("unknown storage driver %q", name)
	}
}

// Open constructs the backend described by opts.
func Open(ctx context.Context, opts Options) (Storage, error) {
	switch opts.Driver {
	case DriverFile, "":
		return NewFile(opts.Path)
	case DriverSQLite:
		return OpenSQLite(ctx, opts.Path)
	case DriverPostgres:
		return OpenPostgres(ctx, opts.DSN)
	case DriverMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", opts.Driver)
	}
}
