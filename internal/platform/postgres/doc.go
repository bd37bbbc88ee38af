// Package postgres provides PostgreSQL implementations of the store
// interfaces defined in internal/store. All implementations map database
// error conditions (missing rows, unique and foreign key violations) to the
// store package's sentinel errors so callers never depend on driver details.
package postgres
