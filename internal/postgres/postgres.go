// Package postgres opens the Postgres connection and owns the schema used by
// the SQL repositories.
package postgres

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq" // registers the "postgres" driver

	"github.com/KirkDiggler/armybook-api/internal/errors"
)

// Options configures the connection pool
type Options struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Open connects to url and verifies the connection
func Open(ctx context.Context, url string, opts *Options) (*sql.DB, error) {
	if url == "" {
		return nil, errors.InvalidArgument("postgres: url is required")
	}

	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, errors.Wrap(err, "postgres: failed to open")
	}

	if opts != nil {
		db.SetMaxOpenConns(opts.MaxOpenConns)
		db.SetMaxIdleConns(opts.MaxIdleConns)
		db.SetConnMaxLifetime(opts.ConnMaxLifetime)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close() // nolint:errcheck // already failing
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "postgres: ping failed")
	}

	return db, nil
}

// CreateSchema creates all tables the repositories need.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return errors.Wrap(err, "failed to create schema")
	}
	return nil
}

const schema = `
CREATE TABLE IF NOT EXISTS army_books (
    uid TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    enabled_game_systems INTEGER[] NOT NULL DEFAULT '{}',
    name TEXT NOT NULL,
    hint TEXT NOT NULL DEFAULT '',
    background TEXT NOT NULL DEFAULT '',
    version_string TEXT NOT NULL DEFAULT '',
    units JSONB NOT NULL DEFAULT '[]',
    upgrade_packages JSONB NOT NULL DEFAULT '[]',
    special_rules JSONB NOT NULL DEFAULT '[]',
    spells JSONB NOT NULL DEFAULT '[]',
    official BOOLEAN NOT NULL DEFAULT FALSE,
    public BOOLEAN NOT NULL DEFAULT FALSE,
    modified_at TIMESTAMPTZ NOT NULL,
    revision BIGINT NOT NULL DEFAULT 1
);

CREATE INDEX IF NOT EXISTS idx_army_books_user_id ON army_books(user_id);

CREATE TABLE IF NOT EXISTS army_books_pdfs (
    cache_key TEXT PRIMARY KEY,
    army_book_uid TEXT NOT NULL,
    flavor TEXT NOT NULL,
    pdf BYTEA NOT NULL,
    created_at TIMESTAMPTZ NOT NULL,
    revision BIGINT NOT NULL,
    source_service TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_army_books_pdfs_uid ON army_books_pdfs(army_book_uid);
`
