package store

import (
	"context"
	"database/sql"
)

// DBTX is the database handle the location and country stores run their
// queries against. Both *sql.DB and *sql.Tx satisfy it, so a store bound
// via WithTx joins an enclosing transaction transparently.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
