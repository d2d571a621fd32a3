// Package database opens the SQLite database behind the record stores.
package database

import (
	"context"
	"database/sql"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-gym-records/gym"
	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
)

// DriverName is the database/sql driver registered by mattn/go-sqlite3.
const DriverName = "sqlite3"

// InMemory is a private in-memory database. It lives as long as the single
// pooled connection.
const InMemory = ":memory:"

// Open opens path with driver and returns a bun handle with WAL enabled and a
// single connection, so that writes never contend for the file lock.
func Open(ctx context.Context, driver, path string) (*bun.DB, error) {
	if driver == "" {
		driver = DriverName
	}

	sqldb, err := sql.Open(driver, path)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryExternal, "failed to open database").
			WithMetadata(map[string]any{"path": path})
	}

	sqldb.SetMaxOpenConns(1)
	sqldb.SetMaxIdleConns(1)
	sqldb.SetConnMaxLifetime(0)

	for _, pragma := range []string{"PRAGMA journal_mode=WAL", "PRAGMA foreign_keys=ON"} {
		if _, err := sqldb.ExecContext(ctx, pragma); err != nil {
			_ = sqldb.Close()
			return nil, goerrors.Wrap(err, goerrors.CategoryExternal, "failed to configure database").
				WithMetadata(map[string]any{"path": path, "pragma": pragma})
		}
	}

	return bun.NewDB(sqldb, sqlitedialect.New()), nil
}

// Models lists the tables the application owns.
func Models() []any {
	return []any{
		(*gym.Admin)(nil),
		(*gym.Trainer)(nil),
		(*gym.Member)(nil),
	}
}

// CreateTables creates any missing table. Existing tables are left untouched.
func CreateTables(ctx context.Context, db *bun.DB) error {
	for _, model := range Models() {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return goerrors.Wrap(err, goerrors.CategoryExternal, "failed to create table").
				WithMetadata(map[string]any{"model": model})
		}
	}
	return nil
}
