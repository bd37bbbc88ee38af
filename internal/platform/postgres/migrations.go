package postgres

import "embed"

// MigrationsFS holds the embedded goose migration files applied at startup.
//
//go:embed migrations/*.sql
var MigrationsFS embed.FS

// MigrationsDir is the directory inside MigrationsFS that goose reads from.
const MigrationsDir = "migrations"
