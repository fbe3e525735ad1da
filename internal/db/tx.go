// Package db holds small database/sql helpers shared by the SQL backends.
package db

import (
	"context"
	"database/sql"
)

// OpenMemory opens a private in-memory SQLite database. The pool is pinned
// to one connection because every new connection to ":memory:" would see an
// empty database.
func OpenMemory(ctx context.Context, driver string) (*sql.DB, error) {
	conn, err := sql.Open(driver, ":memory:")
	if err != nil {
		return nil, err
	}
	conn.SetMaxOpenConns(1)
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, err
	}
	return conn, nil
}

// WithTx executes fn within a transaction.
// It handles Begin, Rollback on error, and Commit on success.
func WithTx(ctx context.Context, conn *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

// IntToNull wraps v as a sql.NullInt64 that is NULL unless valid.
func IntToNull(v int, valid bool) sql.NullInt64 {
	if !valid {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(v), Valid: true}
}

// NullInt64Value returns the int64 value or 0 if not valid.
func NullInt64Value(n sql.NullInt64) int64 {
	if !n.Valid {
		return 0
	}
	return n.Int64
}
