package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
	_ "modernc.org/sqlite"
)

// NewSQLiteDB opens (or creates) the sqlite file at path, creating the parent
// directory if needed, and makes sure the blog/post schema exists.
func NewSQLiteDB(ctx context.Context, path string) (_ *sql.DB, err error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	defer func() {
		if err != nil {
			err = multierr.Append(err, db.Close())
		}
	}()

	// single writer, and the pragmas below are per connection
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			return nil, fmt.Errorf("%s: %w", pragma, err)
		}
	}

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		return nil, fmt.Errorf("create schema: %w", err)
	}

	log.Debugf("sqlite database opened: %s", path)

	return db, nil
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS blog (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS post (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	blog_id INTEGER NOT NULL REFERENCES blog(id),
	title TEXT NOT NULL,
	content TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_post_blog_id ON post(blog_id);
`
