package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SQL stores keys in a two-column table. SQLite and PostgreSQL share it and
// differ only in driver name and placeholder syntax.
type SQL struct {
	db        *sql.DB
	driver    Driver
	selectSQL string
	upsertSQL string
}

const createTableSQL = `CREATE TABLE IF NOT EXISTS kv (
	name TEXT PRIMARY KEY,
	value TEXT NOT NULL
)`

func newSQL(ctx context.Context, db *sql.DB, driver Driver, placeholder func(int) string) (*SQL, error) {
	if _, err := db.ExecContext(ctx, createTableSQL); err != nil {
		return nil, fmt.Errorf("create kv table: %w", err)
	}
	return &SQL{
		db:        db,
		driver:    driver,
		selectSQL: fmt.Sprintf(`SELECT value FROM kv WHERE name = %s`, placeholder(1)),
		upsertSQL: fmt.Sprintf(`INSERT INTO kv (name, value) VALUES (%s, %s)
			ON CONFLICT (name) DO UPDATE SET value = excluded.value`, placeholder(1), placeholder(2)),
	}, nil
}

// Get implements Storage.
func (s *SQL) Get(ctx context.Context, key string) (string, bool, error) {
	var v string
	err := s.db.QueryRowContext(ctx, s.selectSQL, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("select %s: %w", key, err)
	}
	return v, true, nil
}

// Set implements Storage.
func (s *SQL) Set(ctx context.Context, key, value string) error {
	if _, err := s.db.ExecContext(ctx, s.upsertSQL, key, value); err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}

// Driver implements Storage.
func (s *SQL) Driver() Driver { return s.driver }

// Close implements Storage.
func (s *SQL) Close() error { return s.db.Close() }
