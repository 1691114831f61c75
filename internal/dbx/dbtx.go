// Package dbx provides the minimal database seam shared by storage code:
// an interface (DBTX) implemented by both *sql.DB and *sql.Tx, so callers
// can run against a plain connection or inside a transaction unchanged.
package dbx

import (
	"context"
	"database/sql"
)

// DBTX is the subset of database/sql used by the store.
// Both *sql.DB and *sql.Tx satisfy this interface.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
