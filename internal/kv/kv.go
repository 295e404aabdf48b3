// Package kv provides the string key-value storage that tracker state is
// persisted to, with memory, file, SQLite and PostgreSQL backends.
package kv

import "context"

// Driver identifies a storage backend.
type Driver string

const (
	DriverMemory   Driver = "memory"
	DriverFile     Driver = "file"
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

// Drivers lists the supported backends in display order.
func Drivers() []Driver {
	return []Driver{DriverFile, DriverSQLite, DriverPostgres, DriverMemory}
}

// Storage is a string key-value store. Set overwrites unconditionally.
type Storage interface {
	// Get returns the value stored under key. ok is false when the key is
	// absent; err is reserved for backend failures.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Driver() Driver
	Close() error
}
