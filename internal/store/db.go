package store

import (
	"context"
	"database/sql"
)

// DBTX is the query executor the stores run against. Both *sql.DB and
// *sql.Tx satisfy it, so a store can be bound to a plain connection or,
// via WithTx, to a transaction such as the user cascade delete.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
