package kv

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver
)

// OpenPostgres connects to PostgreSQL with dsn and ensures the kv table
// exists.
func OpenPostgres(ctx context.Context, dsn string) (*SQL, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres dsn is empty")
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	s, err := newSQL(ctx, db, DriverPostgres, func(n int) string { return "$" + strconv.Itoa(n) })
	if err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}
