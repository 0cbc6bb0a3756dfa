// Package migrations holds the vault schema and applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// gooseDialects maps database/sql driver names to goose dialects.
var gooseDialects = map[string]goose.Dialect{
	"sqlite3": goose.DialectSQLite3,
	"pgx":     goose.DialectPostgres,
}

// Migrate applies every pending migration to db. driver is the
// database/sql driver name the connection was opened with.
func Migrate(ctx context.Context, db *sql.DB, driver string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	dialect, ok := gooseDialects[driver]
	if !ok {
		return fmt.Errorf("migration error: unsupported driver %q", driver)
	}

	provider, err := goose.NewProvider(dialect, db, embedMigrations)
	if err != nil {
		return fmt.Errorf("migration error creating provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
