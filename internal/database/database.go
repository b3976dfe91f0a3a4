// Package database opens the optional SQLite backend and creates the
// tables used by the SQL stores.
package database

import (
	"context"
	"database/sql"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/schema"
	_ "modernc.org/sqlite"
)

// DefaultDSN keeps the database next to the binary with foreign keys on.
const DefaultDSN = "file:showcase.db?_pragma=foreign_keys(1)"

// Open connects to SQLite and returns an ent SQL driver. The pool is
// limited to one connection: SQLite serialises writers anyway and an
// in-memory DSN is per-connection.
func Open(ctx context.Context, dsn string) (*entsql.Driver, error) {
	if dsn == "" {
		dsn = DefaultDSN
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	db.SetMaxOpenConns(1)

	// ent's SQLite migrator refuses to run with foreign keys off.
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}
	return entsql.OpenDB(dialect.SQLite, db), nil
}

// Migrate creates or upgrades every table the stores need.
func Migrate(ctx context.Context, drv dialect.Driver) error {
	m, err := schema.NewMigrate(drv)
	if err != nil {
		return fmt.Errorf("creating migrator: %w", err)
	}
	if err := m.Create(ctx, Tables...); err != nil {
		return fmt.Errorf("running schema migration: %w", err)
	}
	return nil
}

// OpenAndMigrate is the usual startup sequence.
func OpenAndMigrate(ctx context.Context, dsn string) (*entsql.Driver, error) {
	drv, err := Open(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err := Migrate(ctx, drv); err != nil {
		drv.Close()
		return nil, err
	}
	return drv, nil
}
